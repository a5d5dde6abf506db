package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appctx "github.com/Firegrill/docs/internal/app/context"
	"github.com/Firegrill/docs/internal/domain/page"
)

func quickstartPage() *page.Page {
	return &page.Page{
		Path:    "/get-started/quickstart",
		Title:   "Quickstart",
		Intro:   "Get up and running.",
		Product: "github",
	}
}

// contextualize attaches a RequestContext to the request the way the page
// middleware chain would.
func contextualize(r *http.Request, rc *appctx.RequestContext) *http.Request {
	rc.Context = r.Context()
	return r.WithContext(appctx.WithRequestContext(r.Context(), rc))
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func newRequestContext(language, version string) *appctx.RequestContext {
	return appctx.New(context.Background(), language, version)
}
