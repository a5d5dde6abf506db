package render

import "context"

// Fn produces a rendered string. Implementations typically close over a
// template and a binding set.
type Fn func(ctx context.Context) (string, error)

// Fallback runs primary and returns its output when it succeeds with a
// non-empty result. On failure or empty output it runs fallback under the
// same rule. When both stages fail the empty string is returned. Errors are
// swallowed at every stage; rendering failures here are recoverable by
// definition.
func Fallback(ctx context.Context, primary, fallback Fn) string {
	if out, err := primary(ctx); err == nil && out != "" {
		return out
	}
	if out, err := fallback(ctx); err == nil && out != "" {
		return out
	}
	return ""
}
