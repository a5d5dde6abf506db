package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Firegrill/docs/internal/adapters/store/pages"
	appctx "github.com/Firegrill/docs/internal/app/context"
	"github.com/Firegrill/docs/internal/domain"
	"github.com/Firegrill/docs/internal/domain/track"
	"github.com/Firegrill/docs/internal/platform/render"
	"github.com/Firegrill/docs/internal/ports"
	"github.com/Firegrill/docs/mocks"
)

var testLanguages = []string{"en", "ja", "es"}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newService(tracks *mocks.MockTrackStore, links *mocks.MockLinkResolver, renderer *mocks.MockRenderer) *TrackService {
	return NewTrackService(tracks, links, renderer, testLanguages, discardLogger(), nil)
}

func baseRequest() ports.ResolveRequest {
	return ports.ResolveRequest{
		TrackName:       "get-started-track",
		Product:         "github",
		Language:        "en",
		Version:         "free-pro-team@latest",
		PagePath:        "/get-started/using-git",
		Bindings:        map[string]any{"currentLanguage": "en"},
		DefaultBindings: map[string]any{"currentLanguage": "en"},
	}
}

func gettingStartedTrack() track.LearningTrack {
	return track.LearningTrack{
		Title: "Get started with GitHub",
		Guides: []string{
			"/get-started/quickstart",
			"/get-started/using-git",
			"/get-started/collaborating",
		},
	}
}

// resolvedGuides returns what the link resolver would hand back for the
// getting-started track: one versioned href per guide path.
func resolvedGuides(language, version string) []track.Guide {
	paths := gettingStartedTrack().Guides
	guides := make([]track.Guide, len(paths))
	for i, p := range paths {
		guides[i] = track.Guide{
			Href:  fmt.Sprintf("/%s/%s%s", language, version, p),
			Title: "Guide " + p,
		}
	}
	return guides
}

// expectTitle stubs the plain-text title render as an identity pass-through.
func expectTitle(renderer *mocks.MockRenderer) {
	renderer.EXPECT().RenderPlainText(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, template string, _ map[string]any) (string, error) {
			return template, nil
		}).Maybe()
}

func TestNewTrackService_NilLogger(t *testing.T) {
	t.Parallel()
	svc := NewTrackService(mocks.NewMockTrackStore(t), mocks.NewMockLinkResolver(t), mocks.NewMockRenderer(t), testLanguages, nil, nil)
	if svc.logger == nil {
		t.Fatal("NewTrackService(nil logger) should create a no-op logger, got nil")
	}
}

func TestTrackService_Resolve_NoTrackName(t *testing.T) {
	t.Parallel()
	svc := newService(mocks.NewMockTrackStore(t), mocks.NewMockLinkResolver(t), mocks.NewMockRenderer(t))

	req := baseRequest()
	req.TrackName = ""

	if got := svc.Resolve(context.Background(), req); got != nil {
		t.Errorf("Resolve() with empty track name = %+v, want nil", got)
	}
}

func TestTrackService_Resolve_TrackSelection(t *testing.T) {
	t.Parallel()

	t.Run("unknown product disables the track", func(t *testing.T) {
		t.Parallel()
		tracks := mocks.NewMockTrackStore(t)
		tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
			Return(nil, domain.ErrNotFound)

		svc := newService(tracks, mocks.NewMockLinkResolver(t), mocks.NewMockRenderer(t))
		if got := svc.Resolve(context.Background(), baseRequest()); got != nil {
			t.Errorf("Resolve() = %+v, want nil", got)
		}
	})

	t.Run("unknown track name under a known product", func(t *testing.T) {
		t.Parallel()
		tracks := mocks.NewMockTrackStore(t)
		tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
			Return(map[string]track.LearningTrack{"other-track": gettingStartedTrack()}, nil)

		svc := newService(tracks, mocks.NewMockLinkResolver(t), mocks.NewMockRenderer(t))
		if got := svc.Resolve(context.Background(), baseRequest()); got != nil {
			t.Errorf("Resolve() = %+v, want nil", got)
		}
	})

	t.Run("falls back to the learnProduct override", func(t *testing.T) {
		t.Parallel()
		tracks := mocks.NewMockTrackStore(t)
		tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
			Return(nil, domain.ErrNotFound)
		tracks.EXPECT().ProductTracks(mock.Anything, "en", "actions").
			Return(map[string]track.LearningTrack{"get-started-track": gettingStartedTrack()}, nil)

		links := mocks.NewMockLinkResolver(t)
		links.EXPECT().ResolveAll(mock.Anything, gettingStartedTrack().Guides, "en", "free-pro-team@latest").
			Return(resolvedGuides("en", "free-pro-team@latest"), nil)
		links.EXPECT().Resolve(mock.Anything, "/get-started/quickstart", "en", "free-pro-team@latest").
			Return(&track.Guide{Href: "/en/free-pro-team@latest/get-started/quickstart", Title: "Quickstart"}, nil)
		links.EXPECT().Resolve(mock.Anything, "/get-started/collaborating", "en", "free-pro-team@latest").
			Return(&track.Guide{Href: "/en/free-pro-team@latest/get-started/collaborating", Title: "Collaborating"}, nil)

		renderer := mocks.NewMockRenderer(t)
		expectTitle(renderer)

		req := baseRequest()
		req.LearnProduct = "actions"

		got := newService(tracks, links, renderer).Resolve(context.Background(), req)
		if got == nil {
			t.Fatal("Resolve() = nil, want a track")
		}
		if got.TrackProduct != "actions" {
			t.Errorf("TrackProduct = %q, want %q (the override that supplied the track)", got.TrackProduct, "actions")
		}
	})

	t.Run("override is not tried when the page product succeeds", func(t *testing.T) {
		t.Parallel()
		tracks := mocks.NewMockTrackStore(t)
		tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
			Return(map[string]track.LearningTrack{}, nil)

		svc := newService(tracks, mocks.NewMockLinkResolver(t), mocks.NewMockRenderer(t))

		req := baseRequest()
		req.LearnProduct = "actions"

		// The page product returned an (empty) track set without error, so
		// the lookup fails on the track name, not the product.
		if got := svc.Resolve(context.Background(), req); got != nil {
			t.Errorf("Resolve() = %+v, want nil", got)
		}
	})
}

func TestTrackService_Resolve_GuideResolution(t *testing.T) {
	t.Parallel()

	t.Run("link resolution error disables the track", func(t *testing.T) {
		t.Parallel()
		tracks := mocks.NewMockTrackStore(t)
		tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
			Return(map[string]track.LearningTrack{"get-started-track": gettingStartedTrack()}, nil)

		links := mocks.NewMockLinkResolver(t)
		links.EXPECT().ResolveAll(mock.Anything, mock.Anything, "en", "free-pro-team@latest").
			Return(nil, errors.New("content api unreachable"))

		renderer := mocks.NewMockRenderer(t)
		expectTitle(renderer)

		if got := newService(tracks, links, renderer).Resolve(context.Background(), baseRequest()); got != nil {
			t.Errorf("Resolve() = %+v, want nil", got)
		}
	})

	t.Run("track with no resolvable guides disables the track", func(t *testing.T) {
		t.Parallel()
		tracks := mocks.NewMockTrackStore(t)
		tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
			Return(map[string]track.LearningTrack{"get-started-track": gettingStartedTrack()}, nil)

		links := mocks.NewMockLinkResolver(t)
		links.EXPECT().ResolveAll(mock.Anything, mock.Anything, "en", "free-pro-team@latest").
			Return([]track.Guide{}, nil)

		renderer := mocks.NewMockRenderer(t)
		expectTitle(renderer)

		if got := newService(tracks, links, renderer).Resolve(context.Background(), baseRequest()); got != nil {
			t.Errorf("Resolve() = %+v, want nil", got)
		}
	})
}

func TestTrackService_Resolve_Position(t *testing.T) {
	t.Parallel()

	successStore := func(t *testing.T) *mocks.MockTrackStore {
		t.Helper()
		tracks := mocks.NewMockTrackStore(t)
		tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
			Return(map[string]track.LearningTrack{"get-started-track": gettingStartedTrack()}, nil)
		return tracks
	}

	t.Run("middle guide gets both neighbors", func(t *testing.T) {
		t.Parallel()
		links := mocks.NewMockLinkResolver(t)
		links.EXPECT().ResolveAll(mock.Anything, gettingStartedTrack().Guides, "en", "free-pro-team@latest").
			Return(resolvedGuides("en", "free-pro-team@latest"), nil)
		links.EXPECT().Resolve(mock.Anything, "/get-started/quickstart", "en", "free-pro-team@latest").
			Return(&track.Guide{Href: "/en/free-pro-team@latest/get-started/quickstart", Title: "Quickstart"}, nil)
		links.EXPECT().Resolve(mock.Anything, "/get-started/collaborating", "en", "free-pro-team@latest").
			Return(&track.Guide{Href: "/en/free-pro-team@latest/get-started/collaborating", Title: "Collaborating"}, nil)

		renderer := mocks.NewMockRenderer(t)
		expectTitle(renderer)

		got := newService(successStore(t), links, renderer).Resolve(context.Background(), baseRequest())
		if got == nil {
			t.Fatal("Resolve() = nil, want a track")
		}
		if got.TrackName != "get-started-track" {
			t.Errorf("TrackName = %q", got.TrackName)
		}
		if got.TrackTitle != "Get started with GitHub" {
			t.Errorf("TrackTitle = %q", got.TrackTitle)
		}
		if got.NumberOfGuides != 3 || got.CurrentGuideIndex != 1 {
			t.Errorf("position = %d/%d, want 1/3", got.CurrentGuideIndex, got.NumberOfGuides)
		}
		if got.PrevGuide == nil || got.PrevGuide.Title != "Quickstart" {
			t.Errorf("PrevGuide = %+v, want Quickstart", got.PrevGuide)
		}
		if got.NextGuide == nil || got.NextGuide.Title != "Collaborating" {
			t.Errorf("NextGuide = %+v, want Collaborating", got.NextGuide)
		}
	})

	t.Run("first guide has no previous", func(t *testing.T) {
		t.Parallel()
		links := mocks.NewMockLinkResolver(t)
		links.EXPECT().ResolveAll(mock.Anything, mock.Anything, "en", "free-pro-team@latest").
			Return(resolvedGuides("en", "free-pro-team@latest"), nil)
		links.EXPECT().Resolve(mock.Anything, "/get-started/using-git", "en", "free-pro-team@latest").
			Return(&track.Guide{Href: "/en/free-pro-team@latest/get-started/using-git", Title: "Using Git"}, nil)

		renderer := mocks.NewMockRenderer(t)
		expectTitle(renderer)

		req := baseRequest()
		req.PagePath = "/get-started/quickstart"

		got := newService(successStore(t), links, renderer).Resolve(context.Background(), req)
		if got == nil {
			t.Fatal("Resolve() = nil, want a track")
		}
		if got.CurrentGuideIndex != 0 {
			t.Errorf("CurrentGuideIndex = %d, want 0", got.CurrentGuideIndex)
		}
		if got.PrevGuide != nil {
			t.Errorf("PrevGuide = %+v, want nil for the first guide", got.PrevGuide)
		}
		if got.NextGuide == nil {
			t.Error("NextGuide = nil, want the second guide")
		}
	})

	t.Run("last guide has no next", func(t *testing.T) {
		t.Parallel()
		links := mocks.NewMockLinkResolver(t)
		links.EXPECT().ResolveAll(mock.Anything, mock.Anything, "en", "free-pro-team@latest").
			Return(resolvedGuides("en", "free-pro-team@latest"), nil)
		links.EXPECT().Resolve(mock.Anything, "/get-started/using-git", "en", "free-pro-team@latest").
			Return(&track.Guide{Href: "/en/free-pro-team@latest/get-started/using-git", Title: "Using Git"}, nil)

		renderer := mocks.NewMockRenderer(t)
		expectTitle(renderer)

		req := baseRequest()
		req.PagePath = "/get-started/collaborating"

		got := newService(successStore(t), links, renderer).Resolve(context.Background(), req)
		if got == nil {
			t.Fatal("Resolve() = nil, want a track")
		}
		if got.CurrentGuideIndex != 2 {
			t.Errorf("CurrentGuideIndex = %d, want 2", got.CurrentGuideIndex)
		}
		if got.NextGuide != nil {
			t.Errorf("NextGuide = %+v, want nil for the last guide", got.NextGuide)
		}
		if got.PrevGuide == nil {
			t.Error("PrevGuide = nil, want the second guide")
		}
	})

	t.Run("page outside the track disables it", func(t *testing.T) {
		t.Parallel()
		links := mocks.NewMockLinkResolver(t)
		links.EXPECT().ResolveAll(mock.Anything, mock.Anything, "en", "free-pro-team@latest").
			Return(resolvedGuides("en", "free-pro-team@latest"), nil)

		renderer := mocks.NewMockRenderer(t)
		expectTitle(renderer)
		// Guide paths carry no template syntax, so the templated scan
		// renders them back unchanged and still misses.
		renderer.EXPECT().Render(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, template string, _ map[string]any) (string, error) {
				return template, nil
			}).Maybe()

		req := baseRequest()
		req.PagePath = "/actions/quickstart"

		if got := newService(successStore(t), links, renderer).Resolve(context.Background(), req); got != nil {
			t.Errorf("Resolve() = %+v, want nil", got)
		}
	})

	t.Run("unresolvable neighbor voids the whole track", func(t *testing.T) {
		t.Parallel()
		links := mocks.NewMockLinkResolver(t)
		links.EXPECT().ResolveAll(mock.Anything, mock.Anything, "en", "free-pro-team@latest").
			Return(resolvedGuides("en", "free-pro-team@latest"), nil)
		links.EXPECT().Resolve(mock.Anything, "/get-started/quickstart", "en", "free-pro-team@latest").
			Return(nil, domain.ErrNotFound)

		renderer := mocks.NewMockRenderer(t)
		expectTitle(renderer)

		got := newService(successStore(t), links, renderer).Resolve(context.Background(), baseRequest())
		if got != nil {
			t.Errorf("Resolve() = %+v, want nil when a required neighbor is unresolvable", got)
		}
	})
}

func TestTrackService_Resolve_TemplatedGuidePaths(t *testing.T) {
	t.Parallel()

	templated := "{% if ghes %}/admin/setup{% else %}/get-started/setup{% endif %}"

	tracks := mocks.NewMockTrackStore(t)
	tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
		Return(map[string]track.LearningTrack{"get-started-track": {
			Title:  "Get started with GitHub",
			Guides: []string{"/get-started/quickstart", templated},
		}}, nil)

	// The link resolver renders templates without the request's bindings
	// and drops the ones it cannot ground, so the templated guide is
	// absent from the resolved list; the scan must still find it in the
	// track's own guide templates.
	links := mocks.NewMockLinkResolver(t)
	links.EXPECT().ResolveAll(mock.Anything, mock.Anything, "en", "enterprise-server@3.12").
		Return([]track.Guide{
			{Href: "/en/enterprise-server@3.12/get-started/quickstart", Title: "Quickstart"},
		}, nil)
	links.EXPECT().Resolve(mock.Anything, "/get-started/quickstart", "en", "enterprise-server@3.12").
		Return(&track.Guide{Href: "/en/enterprise-server@3.12/get-started/quickstart", Title: "Quickstart"}, nil)

	renderer := mocks.NewMockRenderer(t)
	expectTitle(renderer)
	renderer.EXPECT().Render(mock.Anything, "/get-started/quickstart", mock.Anything).
		Return("/get-started/quickstart", nil).Maybe()
	renderer.EXPECT().Render(mock.Anything, templated, mock.Anything).
		Return("/admin/setup", nil)

	req := baseRequest()
	req.Version = "enterprise-server@3.12"
	req.PagePath = "/admin/setup"
	req.Bindings = map[string]any{"ghes": true}

	got := newService(tracks, links, renderer).Resolve(context.Background(), req)
	if got == nil {
		t.Fatal("Resolve() = nil, want a track located via the templated scan")
	}
	if got.CurrentGuideIndex != 1 || got.NumberOfGuides != 2 {
		t.Errorf("position = %d/%d, want 1/2", got.CurrentGuideIndex, got.NumberOfGuides)
	}
	if got.NextGuide != nil {
		t.Errorf("NextGuide = %+v, want nil", got.NextGuide)
	}
}

// TestTrackService_Resolve_ProductConditionalGuide runs the resolver against
// the real catalog and Liquid renderer. The catalog cannot ground the
// product-conditional guide (it renders without a product), so only the scan
// over the track's own templates, rendered with the request bindings, can
// place the page.
func TestTrackService_Resolve_ProductConditionalGuide(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dataDir, "en"), 0o755); err != nil {
		t.Fatal(err)
	}
	pagesYAML := `
- path: /get-started/quickstart
  title: Quickstart
  product: github
- path: /get-started/special
  title: Special setup
  product: github
`
	if err := os.WriteFile(filepath.Join(dataDir, "en", "pages.yaml"), []byte(pagesYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	shorts := map[string]string{"free-pro-team@latest": "fpt"}
	renderer := render.New()
	catalog, err := pages.Load(context.Background(), dataDir, []string{"en"}, "en", 1, renderer, shorts, discardLogger())
	if err != nil {
		t.Fatalf("pages.Load() error = %v", err)
	}

	conditional := `{% if currentProduct == "github" %}/get-started/special{% else %}/nope{% endif %}`
	tracks := mocks.NewMockTrackStore(t)
	tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
		Return(map[string]track.LearningTrack{"get-started-track": {
			Title:  "Get started with GitHub",
			Guides: []string{"/get-started/quickstart", conditional},
		}}, nil)

	bindings := render.SiteBindings("en", "free-pro-team@latest", "github", "/get-started/special", shorts)
	req := ports.ResolveRequest{
		TrackName:       "get-started-track",
		Product:         "github",
		Language:        "en",
		Version:         "free-pro-team@latest",
		PagePath:        "/get-started/special",
		Bindings:        bindings,
		DefaultBindings: bindings,
	}

	svc := NewTrackService(tracks, catalog, renderer, []string{"en"}, discardLogger(), nil)
	got := svc.Resolve(context.Background(), req)
	if got == nil {
		t.Fatal("Resolve() = nil, want a track located via the conditional guide template")
	}
	if got.CurrentGuideIndex != 1 || got.NumberOfGuides != 2 {
		t.Errorf("position = %d/%d, want 1/2", got.CurrentGuideIndex, got.NumberOfGuides)
	}
	if got.TrackTitle != "Get started with GitHub" {
		t.Errorf("TrackTitle = %q", got.TrackTitle)
	}
	if got.PrevGuide == nil || got.PrevGuide.Href != "/en/free-pro-team@latest/get-started/quickstart" {
		t.Errorf("PrevGuide = %+v, want the quickstart guide", got.PrevGuide)
	}
	if got.NextGuide != nil {
		t.Errorf("NextGuide = %+v, want nil for the last guide", got.NextGuide)
	}
}

func TestTrackService_Resolve_MemoizedTrackLookups(t *testing.T) {
	t.Parallel()

	tracks := mocks.NewMockTrackStore(t)
	tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
		Return(map[string]track.LearningTrack{"get-started-track": gettingStartedTrack()}, nil).Once()

	links := mocks.NewMockLinkResolver(t)
	links.EXPECT().ResolveAll(mock.Anything, mock.Anything, "en", "free-pro-team@latest").
		Return(resolvedGuides("en", "free-pro-team@latest"), nil)
	links.EXPECT().Resolve(mock.Anything, mock.Anything, "en", "free-pro-team@latest").RunAndReturn(
		func(_ context.Context, guidePath, _, _ string) (*track.Guide, error) {
			return &track.Guide{Href: "/en/free-pro-team@latest" + guidePath, Title: guidePath}, nil
		})

	renderer := mocks.NewMockRenderer(t)
	expectTitle(renderer)

	rc := appctx.New(context.Background(), "en", "free-pro-team@latest")
	ctx := appctx.WithRequestContext(context.Background(), rc)

	svc := newService(tracks, links, renderer)
	if got := svc.Resolve(ctx, baseRequest()); got == nil {
		t.Fatal("first Resolve() = nil, want a track")
	}
	// Second resolution within the same request context: the store was
	// stubbed .Once(), so this succeeds only if the lookup hit the cache.
	if got := svc.Resolve(ctx, baseRequest()); got == nil {
		t.Fatal("second Resolve() = nil, want the memoized track")
	}
}

func TestTrackService_Resolve_RedirectSources(t *testing.T) {
	t.Parallel()

	tracks := mocks.NewMockTrackStore(t)
	tracks.EXPECT().ProductTracks(mock.Anything, "en", "github").
		Return(map[string]track.LearningTrack{"get-started-track": gettingStartedTrack()}, nil)

	links := mocks.NewMockLinkResolver(t)
	links.EXPECT().ResolveAll(mock.Anything, mock.Anything, "en", "free-pro-team@latest").
		Return(resolvedGuides("en", "free-pro-team@latest"), nil)
	links.EXPECT().Resolve(mock.Anything, "/get-started/quickstart", "en", "free-pro-team@latest").
		Return(&track.Guide{Href: "/en/free-pro-team@latest/get-started/quickstart", Title: "Quickstart"}, nil)
	links.EXPECT().Resolve(mock.Anything, "/get-started/collaborating", "en", "free-pro-team@latest").
		Return(&track.Guide{Href: "/en/free-pro-team@latest/get-started/collaborating", Title: "Collaborating"}, nil)

	renderer := mocks.NewMockRenderer(t)
	expectTitle(renderer)
	renderer.EXPECT().Render(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, template string, _ map[string]any) (string, error) {
			return template, nil
		}).Maybe()

	// The page moved: its current path is not in the track, but one of its
	// redirect sources is the track's second guide.
	req := baseRequest()
	req.PagePath = "/get-started/git-basics"
	req.RedirectSources = []string{"/old/unrelated", "/get-started/using-git"}

	got := newService(tracks, links, renderer).Resolve(context.Background(), req)
	if got == nil {
		t.Fatal("Resolve() = nil, want a track located via redirect sources")
	}
	if got.CurrentGuideIndex != 1 {
		t.Errorf("CurrentGuideIndex = %d, want 1", got.CurrentGuideIndex)
	}
}

func TestTrackService_Resolve_TitleFallback(t *testing.T) {
	t.Parallel()

	newFixtures := func(t *testing.T) (*mocks.MockTrackStore, *mocks.MockLinkResolver) {
		t.Helper()
		tracks := mocks.NewMockTrackStore(t)
		tracks.EXPECT().ProductTracks(mock.Anything, "ja", "github").
			Return(map[string]track.LearningTrack{"get-started-track": gettingStartedTrack()}, nil)

		links := mocks.NewMockLinkResolver(t)
		links.EXPECT().ResolveAll(mock.Anything, mock.Anything, "ja", "free-pro-team@latest").
			Return(resolvedGuides("ja", "free-pro-team@latest"), nil)
		links.EXPECT().Resolve(mock.Anything, mock.Anything, "ja", "free-pro-team@latest").RunAndReturn(
			func(_ context.Context, guidePath, _, _ string) (*track.Guide, error) {
				return &track.Guide{Href: "/ja/free-pro-team@latest" + guidePath, Title: guidePath}, nil
			})
		return tracks, links
	}

	req := baseRequest()
	req.Language = "ja"
	req.Bindings = map[string]any{"currentLanguage": "ja"}

	t.Run("falls back to default-language bindings", func(t *testing.T) {
		t.Parallel()
		tracks, links := newFixtures(t)

		renderer := mocks.NewMockRenderer(t)
		renderer.EXPECT().RenderPlainText(mock.Anything, mock.Anything, req.Bindings).
			Return("", errors.New("render: bad variable")).Once()
		renderer.EXPECT().RenderPlainText(mock.Anything, mock.Anything, req.DefaultBindings).
			Return("Get started with GitHub", nil).Once()

		got := newService(tracks, links, renderer).Resolve(context.Background(), req)
		if got == nil {
			t.Fatal("Resolve() = nil, want a track")
		}
		if got.TrackTitle != "Get started with GitHub" {
			t.Errorf("TrackTitle = %q, want the default-language render", got.TrackTitle)
		}
	})

	t.Run("empty title when both renders fail", func(t *testing.T) {
		t.Parallel()
		tracks, links := newFixtures(t)

		renderer := mocks.NewMockRenderer(t)
		renderer.EXPECT().RenderPlainText(mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("render: bad variable")).Twice()

		got := newService(tracks, links, renderer).Resolve(context.Background(), req)
		if got == nil {
			t.Fatal("Resolve() = nil, want a track: title failures never disable it")
		}
		if got.TrackTitle != "" {
			t.Errorf("TrackTitle = %q, want empty", got.TrackTitle)
		}
	})
}
