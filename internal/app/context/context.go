// Package appctx provides the request-scoped context built by the page
// context middleware and consumed by the learning-track middleware and the
// page handler.
//
// RequestContext extends Go's context.Context with the request's resolved
// site coordinates (language, version, page) together with in-memory
// caching for memoized data fetching so that repeated lookups within one
// request hit the same result.
//
// A new RequestContext is created per HTTP request and must not be shared
// between concurrent requests:
//
//	rc := appctx.New(ctx, "en", "free-pro-team@latest")
//	rc.Page = resolvedPage
//
//	// Memoized data fetching:
//	tracks, err := appctx.GetOrFetch(rc, "tracks:github", fetchTracks)
package appctx

import (
	"context"
	"errors"
	"fmt"

	"github.com/Firegrill/docs/internal/domain/page"
	"github.com/Firegrill/docs/internal/domain/track"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is a request-scoped context wrapper carrying the request's
// site coordinates and providing in-memory caching. It embeds
// context.Context and adds memoization via GetOrFetch.
//
// A RequestContext is strictly request-scoped: create a new instance for
// each HTTP request. It is NOT safe for concurrent use from multiple
// goroutines.
type RequestContext struct {
	context.Context

	// Language is the request's resolved site language code.
	Language string
	// Version is the request's resolved site version.
	Version string
	// Page is the catalog page the request resolved to, or nil when the
	// path matches no page.
	Page *page.Page
	// Bindings is the render context for this request's templates.
	Bindings map[string]any
	// DefaultBindings is the default-language render context used as the
	// title-render fallback.
	DefaultBindings map[string]any
	// CurrentTrack is the learning-track annotation for this request, or
	// nil when the page is not being read as part of a track.
	CurrentTrack *track.CurrentTrack

	cache map[string]cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// Both successful results and errors are cached to prevent redundant calls
// within the same request.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext wrapping the given context.Context with the
// resolved language and version. The returned RequestContext has no page
// and an empty cache.
func New(ctx context.Context, language, version string) *RequestContext {
	return &RequestContext{
		Context:  ctx,
		Language: language,
		Version:  version,
		cache:    make(map[string]cacheEntry),
	}
}

// contextKey is the unexported key type for storing a RequestContext in a
// context.Context.
type contextKey struct{}

// WithRequestContext returns a new context with the given RequestContext
// stored in it.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext extracts the RequestContext from the context, or nil when the
// request has not been contextualized.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(contextKey{}).(*RequestContext)
	return rc
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached to
// prevent redundant calls within the same request.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
//
// GetOrFetch is NOT safe for concurrent use. It is designed for sequential
// orchestration within a single request goroutine.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}
