package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/Firegrill/docs/internal/domain/page"
)

// languageKey is the context key for the resolved site language.
type languageKey struct{}

// LanguageFromContext extracts the resolved site language from the context.
// Returns an empty string if the language middleware has not run.
func LanguageFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(languageKey{}).(string); ok {
		return lang
	}
	return ""
}

// Language returns middleware that resolves the request's site language and
// stores it in the request context. A leading path segment matching one of
// the supported language codes wins; otherwise the Accept-Language header is
// matched against the supported set, falling back to the default language.
//
// The supported slice must contain defaultLanguage; it is listed first in
// the matcher so that an inconclusive header match lands on the default.
func Language(supported []string, defaultLanguage string) func(http.Handler) http.Handler {
	codes := make([]string, 0, len(supported))
	tags := make([]language.Tag, 0, len(supported))

	codes = append(codes, defaultLanguage)
	tags = append(tags, language.Make(defaultLanguage))
	for _, code := range supported {
		if code == defaultLanguage {
			continue
		}
		codes = append(codes, code)
		tags = append(tags, language.Make(code))
	}
	matcher := language.NewMatcher(tags)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := page.Language(r.URL.Path, supported)
			if lang == "" {
				_, idx := language.MatchStrings(matcher, r.Header.Get("Accept-Language"))
				lang = codes[idx]
			}

			ctx := context.WithValue(r.Context(), languageKey{}, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
