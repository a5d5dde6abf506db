package render

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/Firegrill/docs/internal/platform/telemetry"
	"github.com/Firegrill/docs/internal/ports"
)

// instrumented wraps a Renderer and records the duration of every render
// call on the render-duration histogram, labeled with the call's outcome.
type instrumented struct {
	next    ports.Renderer
	metrics *telemetry.Metrics
}

// Instrument wraps next with render-duration recording. When metrics is nil
// (telemetry disabled), next is returned unwrapped.
func Instrument(next ports.Renderer, metrics *telemetry.Metrics) ports.Renderer {
	if metrics == nil {
		return next
	}
	return &instrumented{next: next, metrics: metrics}
}

func (r *instrumented) Render(ctx context.Context, template string, bindings map[string]any) (string, error) {
	start := time.Now()
	out, err := r.next.Render(ctx, template, bindings)
	r.record(ctx, start, err)
	return out, err
}

func (r *instrumented) RenderPlainText(ctx context.Context, template string, bindings map[string]any) (string, error) {
	start := time.Now()
	out, err := r.next.RenderPlainText(ctx, template, bindings)
	r.record(ctx, start, err)
	return out, err
}

func (r *instrumented) record(ctx context.Context, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.metrics.RenderDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		telemetry.AttrResult.String(result),
	))
}
