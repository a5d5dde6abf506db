package ports

import (
	"context"

	"github.com/Firegrill/docs/internal/domain/page"
	"github.com/Firegrill/docs/internal/domain/track"
)

// TrackStore provides learning-track definitions per language.
// Implemented by the local YAML store and the remote content client.
//
// For non-English languages, implementations must serve the English-overlaid
// view: every track's guide list is the English one, and products or tracks
// absent from the English data set are not visible at all. Translated guide
// lists are never trusted.
type TrackStore interface {
	// ProductTracks returns the tracks defined for the product in the given
	// language, keyed by track name.
	// Returns domain.ErrNotFound when the product has no tracks.
	ProductTracks(ctx context.Context, language, product string) (map[string]track.LearningTrack, error)
}

// LinkResolver resolves guide path templates to version-appropriate link
// data. Guide paths may contain conditional template syntax; resolvers
// render them before lookup and treat unrenderable entries as absent.
type LinkResolver interface {
	// ResolveAll resolves each guide path to a {href, title} link for the
	// given language and version, preserving input order. Guides that do
	// not exist, fail to render, or are not available in the version are
	// dropped from the result rather than reported as errors.
	ResolveAll(ctx context.Context, guidePaths []string, language, version string) ([]track.Guide, error)

	// Resolve resolves a single guide path.
	// Returns domain.ErrNotFound when the guide does not exist or is not
	// available in the given version.
	Resolve(ctx context.Context, guidePath, language, version string) (*track.Guide, error)
}

// PageFinder looks up page metadata by canonical path. Used by the page
// context middleware to contextualize each request.
type PageFinder interface {
	// FindPage returns the page whose canonical path equals path, following
	// redirect-source paths when no direct entry exists.
	// Returns domain.ErrNotFound when no page matches.
	FindPage(ctx context.Context, path string) (*page.Page, error)
}
