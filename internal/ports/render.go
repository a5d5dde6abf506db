package ports

import "context"

// Renderer renders Liquid-style templates against a set of bindings.
// Implemented by the platform render package; consumed by the learning-track
// resolver (track titles, conditional guide paths) and the page catalog.
type Renderer interface {
	// Render renders the template with the given bindings and returns the
	// trimmed output. Returns an error when the template fails to parse or
	// render; callers decide whether a failure is fatal or skippable.
	Render(ctx context.Context, template string, bindings map[string]any) (string, error)

	// RenderPlainText renders the template and strips any residual markup,
	// producing a plain-text projection suitable for titles.
	RenderPlainText(ctx context.Context, template string, bindings map[string]any) (string, error)
}
