package middleware

import (
	"net/http"

	appctx "github.com/Firegrill/docs/internal/app/context"
	"github.com/Firegrill/docs/internal/domain/page"
	"github.com/Firegrill/docs/internal/platform/render"
	"github.com/Firegrill/docs/internal/ports"
)

// PageContextConfig carries the site coordinates the page context middleware
// needs to contextualize a request.
type PageContextConfig struct {
	Languages       []string
	DefaultLanguage string
	DefaultVersion  string
	// VersionShorts maps full version names to their template short names
	// (e.g. "enterprise-server@3.12" to "ghes").
	VersionShorts map[string]string
}

// PageContext returns middleware that contextualizes each request: it
// resolves the site version from the path, looks up the catalog page for
// the canonical path, builds the render bindings, and stores everything in
// an appctx.RequestContext for downstream middleware and handlers.
//
// A path that matches no page still gets a RequestContext, with a nil Page;
// deciding how to respond to an unknown page is the handler's concern.
//
// This middleware must run after Language.
func PageContext(finder ports.PageFinder, cfg PageContextConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			lang := LanguageFromContext(ctx)
			if lang == "" {
				lang = cfg.DefaultLanguage
			}
			version := page.Version(r.URL.Path, cfg.Languages)
			if version == "" {
				version = cfg.DefaultVersion
			}
			canonical := page.Canonicalize(r.URL.Path, cfg.Languages)

			rc := appctx.New(ctx, lang, version)
			if p, err := finder.FindPage(ctx, canonical); err == nil {
				rc.Page = p
			}

			product := ""
			if rc.Page != nil {
				product = rc.Page.Product
			}
			rc.Bindings = render.SiteBindings(lang, version, product, canonical, cfg.VersionShorts)
			rc.DefaultBindings = render.SiteBindings(cfg.DefaultLanguage, version, product, canonical, cfg.VersionShorts)

			ctx = appctx.WithRequestContext(ctx, rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
