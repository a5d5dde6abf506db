// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces.
package app

import (
	"context"
	"log/slog"

	appctx "github.com/Firegrill/docs/internal/app/context"
	"github.com/Firegrill/docs/internal/domain/page"
	"github.com/Firegrill/docs/internal/domain/track"
	"github.com/Firegrill/docs/internal/platform/render"
	"github.com/Firegrill/docs/internal/platform/telemetry"
	"github.com/Firegrill/docs/internal/ports"
	"go.opentelemetry.io/otel/metric"
)

// Compile-time check that TrackService implements ports.TrackResolver.
var _ ports.TrackResolver = (*TrackService)(nil)

// TrackService implements ports.TrackResolver. It selects the requested
// learning track, renders its title, locates the current guide within it,
// and resolves the neighboring guide links. Every failure along the way
// disables the track for the request instead of surfacing an error.
type TrackService struct {
	tracks    ports.TrackStore
	links     ports.LinkResolver
	renderer  ports.Renderer
	languages []string
	logger    *slog.Logger
	metrics   *telemetry.Metrics
}

// NewTrackService creates a TrackService. The languages list is used to
// canonicalize resolved guide hrefs before matching. Metrics may be nil,
// in which case no instruments are recorded.
func NewTrackService(
	tracks ports.TrackStore,
	links ports.LinkResolver,
	renderer ports.Renderer,
	languages []string,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *TrackService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TrackService{
		tracks:    tracks,
		links:     links,
		renderer:  renderer,
		languages: languages,
		logger:    logger,
		metrics:   metrics,
	}
}

// Resolve computes the learning-track annotation for a single request, or
// nil when the request does not resolve to a track. The resolution pipeline
// is a sequence of short-circuit stages: track selection, title rendering,
// guide position matching, neighbor link resolution. Only a request that
// clears every stage gets a track.
func (s *TrackService) Resolve(ctx context.Context, req ports.ResolveRequest) *track.CurrentTrack {
	if req.TrackName == "" {
		return nil
	}

	tr, trackProduct, ok := s.selectTrack(ctx, req)
	if !ok {
		s.recordOutcome(ctx, req.Product, "unknown_track")
		return nil
	}

	title := s.renderTitle(ctx, tr.Title, req)

	resolved, err := s.links.ResolveAll(ctx, tr.Guides, req.Language, req.Version)
	if err != nil {
		s.logger.WarnContext(ctx, "guide link resolution failed",
			slog.String("track", req.TrackName),
			slog.String("product", trackProduct),
			slog.Any("error", err),
		)
		s.recordOutcome(ctx, trackProduct, "resolve_error")
		return nil
	}
	if len(resolved) == 0 {
		s.recordOutcome(ctx, trackProduct, "no_guides")
		return nil
	}

	// Position matching scans the track's own guide templates; the
	// resolved list above only gates version availability. The link
	// resolver renders templates without the request's bindings and drops
	// entries it cannot ground, so a product-conditional guide is only
	// locatable from its raw template. Template syntax passes through
	// Canonicalize untouched.
	guidePaths := make([]string, len(tr.Guides))
	for i, g := range tr.Guides {
		guidePaths[i] = page.Canonicalize(g, s.languages)
	}

	idx, ok := firstMatch(ctx,
		exactMatch(req.PagePath, guidePaths),
		templatedMatch(s.renderer, req.PagePath, guidePaths, req.Bindings),
		redirectMatch(s.renderer, req.RedirectSources, guidePaths, req.Bindings),
	)
	if !ok {
		s.recordOutcome(ctx, trackProduct, "no_position")
		return nil
	}

	result := &track.CurrentTrack{
		TrackName:         req.TrackName,
		TrackProduct:      trackProduct,
		TrackTitle:        title,
		NumberOfGuides:    len(tr.Guides),
		CurrentGuideIndex: idx,
	}

	// Neighbor resolution is all-or-nothing: one unresolvable required
	// neighbor voids the whole annotation rather than producing a partial
	// prev/next pair.
	if idx > 0 {
		prev, ok := s.resolveNeighbor(ctx, guidePaths[idx-1], req)
		if !ok {
			s.recordOutcome(ctx, trackProduct, "neighbor_missing")
			return nil
		}
		result.PrevGuide = prev
	}
	if idx < len(tr.Guides)-1 {
		next, ok := s.resolveNeighbor(ctx, guidePaths[idx+1], req)
		if !ok {
			s.recordOutcome(ctx, trackProduct, "neighbor_missing")
			return nil
		}
		result.NextGuide = next
	}

	s.recordOutcome(ctx, trackProduct, "resolved")
	return result
}

// selectTrack looks up the named track under the page's product, falling
// back to the learnProduct override when the page's product has no tracks.
// Returns the track, the product that supplied it, and whether it was found.
func (s *TrackService) selectTrack(ctx context.Context, req ports.ResolveRequest) (track.LearningTrack, string, bool) {
	trackProduct := req.Product
	perProduct, err := s.productTracks(ctx, req.Language, trackProduct)
	if err != nil && req.LearnProduct != "" {
		trackProduct = req.LearnProduct
		perProduct, err = s.productTracks(ctx, req.Language, trackProduct)
	}
	if err != nil {
		return track.LearningTrack{}, "", false
	}

	tr, ok := perProduct[req.TrackName]
	if !ok {
		return track.LearningTrack{}, "", false
	}
	return tr, trackProduct, true
}

// productTracks fetches one product's track set from the store, memoized on
// the RequestContext when the request has been contextualized. Repeated
// lookups for the same language and product within one request, including
// ones that failed, hit the cache instead of the store.
func (s *TrackService) productTracks(ctx context.Context, language, product string) (map[string]track.LearningTrack, error) {
	fetch := func(ctx context.Context) (map[string]track.LearningTrack, error) {
		return s.tracks.ProductTracks(ctx, language, product)
	}

	rc := appctx.FromContext(ctx)
	if rc == nil {
		return fetch(ctx)
	}
	return appctx.GetOrFetch(rc, "learning-tracks:"+language+":"+product, fetch)
}

// renderTitle renders the track title to plain text with the request's
// bindings, falling back to the default-language bindings and then to an
// empty string. Title failures never disable the track.
func (s *TrackService) renderTitle(ctx context.Context, title string, req ports.ResolveRequest) string {
	return render.Fallback(ctx,
		func(ctx context.Context) (string, error) {
			return s.renderer.RenderPlainText(ctx, title, req.Bindings)
		},
		func(ctx context.Context) (string, error) {
			return s.renderer.RenderPlainText(ctx, title, req.DefaultBindings)
		},
	)
}

// resolveNeighbor resolves a single prev/next guide link. Any error or
// empty result counts as a missing neighbor.
func (s *TrackService) resolveNeighbor(ctx context.Context, guidePath string, req ports.ResolveRequest) (*track.Guide, bool) {
	guide, err := s.links.Resolve(ctx, guidePath, req.Language, req.Version)
	if err != nil || guide == nil {
		s.logger.DebugContext(ctx, "neighbor guide unresolved",
			slog.String("guide_path", guidePath),
			slog.String("version", req.Version),
		)
		return nil, false
	}
	return guide, true
}

func (s *TrackService) recordOutcome(ctx context.Context, product, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.TrackResolutionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrResult.String(outcome),
		telemetry.AttrTrackProduct.String(product),
	))
}
