package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Firegrill/docs/internal/adapters/http/dto"
	"github.com/Firegrill/docs/internal/adapters/http/handlers"
	"github.com/Firegrill/docs/internal/domain/track"
)

func TestServePage_KnownPage(t *testing.T) {
	t.Parallel()

	rc := newRequestContext("en", "free-pro-team@latest")
	rc.Page = quickstartPage()

	h := handlers.NewPageHandler(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/en/get-started/quickstart", nil)
	h.ServePage(rec, contextualize(req, rc))

	requireStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	resp := decodeJSON[dto.PageResponse](t, rec)
	if resp.Path != "/get-started/quickstart" || resp.Title != "Quickstart" {
		t.Errorf("page fields = %q/%q", resp.Path, resp.Title)
	}
	if resp.Language != "en" || resp.Version != "free-pro-team@latest" {
		t.Errorf("coordinates = %q/%q", resp.Language, resp.Version)
	}
	if resp.CurrentLearningTrack != nil {
		t.Errorf("CurrentLearningTrack = %+v, want nil without a track", resp.CurrentLearningTrack)
	}
}

func TestServePage_WithTrack(t *testing.T) {
	t.Parallel()

	rc := newRequestContext("en", "free-pro-team@latest")
	rc.Page = quickstartPage()
	rc.CurrentTrack = &track.CurrentTrack{
		TrackName:         "get-started-track",
		TrackTitle:        "Get started with GitHub",
		NumberOfGuides:    3,
		CurrentGuideIndex: 0,
		NextGuide:         &track.Guide{Href: "/en/get-started/using-git", Title: "Using Git"},
	}

	h := handlers.NewPageHandler(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/en/get-started/quickstart?learn=get-started-track", nil)
	h.ServePage(rec, contextualize(req, rc))

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.PageResponse](t, rec)
	if resp.CurrentLearningTrack == nil {
		t.Fatal("CurrentLearningTrack = nil, want the annotation")
	}
	if resp.CurrentLearningTrack.TrackName != "get-started-track" {
		t.Errorf("TrackName = %q", resp.CurrentLearningTrack.TrackName)
	}
	if resp.CurrentLearningTrack.NextGuide == nil {
		t.Error("NextGuide = nil, want the second guide")
	}
}

func TestServePage_UnknownPage(t *testing.T) {
	t.Parallel()

	rc := newRequestContext("en", "free-pro-team@latest")

	h := handlers.NewPageHandler(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/en/no/such/page", nil)
	h.ServePage(rec, contextualize(req, rc))

	requireStatus(t, rec, http.StatusNotFound)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestServePage_MissingRequestContext(t *testing.T) {
	t.Parallel()

	h := handlers.NewPageHandler(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/en/get-started/quickstart", nil)
	h.ServePage(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}
