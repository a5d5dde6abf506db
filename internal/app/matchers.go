package app

import (
	"context"

	"github.com/Firegrill/docs/internal/ports"
)

// Matcher locates the current page within an ordered list of guide paths.
// It returns the matched index and true, or -1 and false when nothing
// matches. Matchers never fail: an entry that cannot be evaluated is a
// non-match, not an error.
type Matcher func(ctx context.Context) (int, bool)

// firstMatch runs matchers in order and returns the first successful index.
func firstMatch(ctx context.Context, matchers ...Matcher) (int, bool) {
	for _, m := range matchers {
		if idx, ok := m(ctx); ok {
			return idx, true
		}
	}
	return -1, false
}

// exactMatch matches pagePath against guidePaths by direct string equality.
// This is the fast path for tracks whose guide paths carry no template
// syntax.
func exactMatch(pagePath string, guidePaths []string) Matcher {
	return func(context.Context) (int, bool) {
		for i, gp := range guidePaths {
			if gp == pagePath {
				return i, true
			}
		}
		return -1, false
	}
}

// templatedMatch renders each guide path with the given bindings before
// comparing it to pagePath, short-circuiting on the first equal result.
// Entries that fail to render, or render to an empty string, are skipped.
func templatedMatch(renderer ports.Renderer, pagePath string, guidePaths []string, bindings map[string]any) Matcher {
	return func(ctx context.Context) (int, bool) {
		for i, gp := range guidePaths {
			rendered, err := renderer.Render(ctx, gp, bindings)
			if err != nil || rendered == "" {
				continue
			}
			if rendered == pagePath {
				return i, true
			}
		}
		return -1, false
	}
}

// redirectMatch runs a templated scan of the full guide list once per
// redirect-source path, in redirect order, returning the first index that
// matches any redirect. Redirect sources cover pages that moved into or out
// of a track under a different path.
func redirectMatch(renderer ports.Renderer, redirects, guidePaths []string, bindings map[string]any) Matcher {
	return func(ctx context.Context) (int, bool) {
		for _, redirect := range redirects {
			if idx, ok := templatedMatch(renderer, redirect, guidePaths, bindings)(ctx); ok {
				return idx, true
			}
		}
		return -1, false
	}
}
