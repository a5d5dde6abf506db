package appctx

import (
	"context"
	"errors"
	"testing"

	"github.com/Firegrill/docs/internal/domain/page"
)

const testFetchValue = "hello"

// --- GetOrFetch tests ---

func TestGetOrFetch_CacheMiss(t *testing.T) {
	t.Parallel()
	rc := New(context.Background(), "en", "free-pro-team@latest")
	calls := 0

	val, err := GetOrFetch(rc, "key", func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch() error = %v", err)
	}
	if val != testFetchValue {
		t.Errorf("val = %q, want %q", val, testFetchValue)
	}
	if calls != 1 {
		t.Errorf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CacheHit(t *testing.T) {
	t.Parallel()
	rc := New(context.Background(), "en", "free-pro-team@latest")
	calls := 0

	fetch := func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	}

	if _, err := GetOrFetch(rc, "key", fetch); err != nil {
		t.Fatal(err)
	}
	val, err := GetOrFetch(rc, "key", fetch)
	if err != nil {
		t.Fatal(err)
	}
	if val != testFetchValue {
		t.Errorf("val = %q, want %q", val, testFetchValue)
	}
	if calls != 1 {
		t.Errorf("fetchFn called %d times, want 1 (second call should hit cache)", calls)
	}
}

func TestGetOrFetch_ErrorCached(t *testing.T) {
	t.Parallel()
	rc := New(context.Background(), "en", "free-pro-team@latest")
	errFetch := errors.New("fetch failed")
	calls := 0

	fetch := func(_ context.Context) (string, error) {
		calls++
		return "", errFetch
	}

	if _, err := GetOrFetch(rc, "key", fetch); !errors.Is(err, errFetch) {
		t.Fatalf("first GetOrFetch() error = %v, want %v", err, errFetch)
	}
	if _, err := GetOrFetch(rc, "key", fetch); !errors.Is(err, errFetch) {
		t.Fatalf("second GetOrFetch() error = %v, want %v", err, errFetch)
	}
	if calls != 1 {
		t.Errorf("fetchFn called %d times, want 1 (errors are cached too)", calls)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background(), "en", "free-pro-team@latest")

	if _, err := GetOrFetch(rc, "key", func(_ context.Context) (string, error) {
		return testFetchValue, nil
	}); err != nil {
		t.Fatal(err)
	}

	_, err := GetOrFetch(rc, "key", func(_ context.Context) (int, error) {
		return 42, nil
	})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetOrFetch() error = %v, want ErrTypeMismatch", err)
	}
}

// --- Request context plumbing ---

func TestWithRequestContext_RoundTrip(t *testing.T) {
	t.Parallel()

	rc := New(context.Background(), "ja", "enterprise-server@3.12")
	rc.Page = &page.Page{Path: "/get-started/quickstart"}

	ctx := WithRequestContext(context.Background(), rc)
	got := FromContext(ctx)
	if got != rc {
		t.Fatal("FromContext should return the stored RequestContext")
	}
	if got.Language != "ja" || got.Version != "enterprise-server@3.12" {
		t.Errorf("coordinates = %q/%q", got.Language, got.Version)
	}
	if got.Page.Path != "/get-started/quickstart" {
		t.Errorf("page path = %q", got.Page.Path)
	}
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	if rc := FromContext(context.Background()); rc != nil {
		t.Errorf("FromContext on a bare context = %v, want nil", rc)
	}
}
