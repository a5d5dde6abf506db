// Package render provides Liquid template rendering for track titles and
// conditional guide paths, plus the two-stage fallback combinator used when
// a primary render fails.
//
// Rendering a template:
//
//	renderer := render.New()
//	out, err := renderer.Render(ctx, "{% if ghes %}/admin/intro{% endif %}", bindings)
//
// Title rendering with language fallback:
//
//	title := render.Fallback(ctx,
//	    func(ctx context.Context) (string, error) { return renderer.RenderPlainText(ctx, tmpl, bindings) },
//	    func(ctx context.Context) (string, error) { return renderer.RenderPlainText(ctx, tmpl, defaultBindings) },
//	)
package render

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/osteele/liquid"

	"github.com/Firegrill/docs/internal/ports"
)

// Compile-time check that Renderer implements ports.Renderer.
var _ ports.Renderer = (*Renderer)(nil)

// tagPattern matches residual HTML/Liquid markup left after rendering,
// stripped by RenderPlainText.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// spacePattern collapses runs of whitespace introduced by stripped markup.
var spacePattern = regexp.MustCompile(`\s+`)

// Renderer renders Liquid templates. The underlying engine is stateless and
// safe for concurrent use; a single Renderer is shared across requests.
type Renderer struct {
	engine *liquid.Engine
}

// New creates a Renderer with a fresh Liquid engine.
func New() *Renderer {
	return &Renderer{engine: liquid.NewEngine()}
}

// Render renders the template with the given bindings and returns the
// trimmed output. The context is checked before rendering so canceled
// requests do not pay for template parsing.
func (r *Renderer) Render(ctx context.Context, template string, bindings map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := r.engine.ParseAndRenderString(template, bindings)
	if err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// RenderPlainText renders the template and strips any residual markup,
// producing a plain-text projection suitable for titles.
func (r *Renderer) RenderPlainText(ctx context.Context, template string, bindings map[string]any) (string, error) {
	out, err := r.Render(ctx, template, bindings)
	if err != nil {
		return "", err
	}

	out = tagPattern.ReplaceAllString(out, "")
	out = spacePattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(html.UnescapeString(out)), nil
}
