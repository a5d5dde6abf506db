package middleware

import (
	"net/http"

	appctx "github.com/Firegrill/docs/internal/app/context"
	"github.com/Firegrill/docs/internal/ports"
)

// Query parameters read by the learning-track middleware.
const (
	paramLearn        = "learn"
	paramLearnProduct = "learnProduct"
)

// LearningTrack returns middleware that annotates the request context with
// the learning track the page is being read as part of, or clears the
// annotation when the request does not resolve to one.
//
// The `learn` query parameter names the track; `learnProduct` optionally
// names the product to look it up under when the page's own product has no
// tracks. A missing or repeated parameter, an unknown page, or any
// resolution failure leaves the request without a track. The next handler
// runs unconditionally either way.
//
// LearningTrack requires PageContext to have run; it panics otherwise,
// since a missing page context is a wiring error, not a request condition.
func LearningTrack(resolver ports.TrackResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.FromContext(r.Context())
			if rc == nil {
				panic("middleware: LearningTrack requires a contextualized request; register PageContext first")
			}

			rc.CurrentTrack = nil

			query := r.URL.Query()
			trackName, ok := singleValue(query, paramLearn)
			if !ok || trackName == "" || rc.Page == nil {
				next.ServeHTTP(w, r)
				return
			}
			learnProduct, ok := singleValue(query, paramLearnProduct)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			rc.CurrentTrack = resolver.Resolve(r.Context(), ports.ResolveRequest{
				TrackName:       trackName,
				LearnProduct:    learnProduct,
				Product:         rc.Page.Product,
				Language:        rc.Language,
				Version:         rc.Version,
				PagePath:        rc.Page.Path,
				RedirectSources: rc.Page.RedirectFrom,
				Bindings:        rc.Bindings,
				DefaultBindings: rc.DefaultBindings,
			})

			next.ServeHTTP(w, r)
		})
	}
}

// singleValue returns the parameter's value when it appears at most once.
// A repeated parameter reports false: array-valued query parameters disable
// tracking rather than picking an arbitrary value.
func singleValue(query map[string][]string, name string) (string, bool) {
	vals := query[name]
	switch len(vals) {
	case 0:
		return "", true
	case 1:
		return vals[0], true
	default:
		return "", false
	}
}
