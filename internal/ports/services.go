package ports

import (
	"context"

	"github.com/Firegrill/docs/internal/domain/track"
)

// TrackResolver defines the service port for learning-track resolution.
// Implemented by the application layer; called by the learning-track
// middleware.
type TrackResolver interface {
	// Resolve computes the learning-track annotation for a single request.
	// It returns nil whenever the request does not resolve to a track:
	// missing or multi-valued query parameters, unknown product or track,
	// no matching guide position, or an unresolvable required neighbor
	// link. Resolution failures are never surfaced as errors; the request
	// proceeds without a track.
	Resolve(ctx context.Context, req ResolveRequest) *track.CurrentTrack
}

// ResolveRequest carries the per-request inputs to track resolution.
type ResolveRequest struct {
	// TrackName is the `learn` query parameter. Empty disables tracking.
	TrackName string
	// LearnProduct is the optional `learnProduct` query override, used when
	// the page's product has no tracks.
	LearnProduct string
	// Product is the product of the requested page.
	Product string
	// Language is the request's resolved site language.
	Language string
	// Version is the request's resolved site version.
	Version string
	// PagePath is the requested page's canonical path (language and version
	// segments stripped).
	PagePath string
	// RedirectSources are the page's known redirect-source paths, tried in
	// order when the canonical path matches no guide.
	RedirectSources []string
	// Bindings is the request's render context for title and guide-path
	// templates.
	Bindings map[string]any
	// DefaultBindings is the default-language render context used as the
	// title-render fallback.
	DefaultBindings map[string]any
}
