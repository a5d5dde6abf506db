package page

import "strings"

// versionSeparator marks a path segment as a site version. Versions are
// plan-qualified release names such as "free-pro-team@latest" or
// "enterprise-server@3.12", so a segment is a version segment exactly when
// it contains '@'.
const versionSeparator = "@"

// TrimLanguage removes a leading language segment from path when it matches
// one of the given language codes. "/ja/get-started/intro" becomes
// "/get-started/intro" when "ja" is a known language.
func TrimLanguage(path string, languages []string) string {
	rest, ok := strings.CutPrefix(path, "/")
	if !ok {
		return path
	}
	seg, tail, _ := strings.Cut(rest, "/")
	for _, lang := range languages {
		if seg == lang {
			if tail == "" {
				return "/"
			}
			return "/" + tail
		}
	}
	return path
}

// TrimVersion removes a leading version segment from path.
// "/enterprise-server@3.12/admin/intro" becomes "/admin/intro".
func TrimVersion(path string) string {
	rest, ok := strings.CutPrefix(path, "/")
	if !ok {
		return path
	}
	seg, tail, _ := strings.Cut(rest, "/")
	if !strings.Contains(seg, versionSeparator) {
		return path
	}
	if tail == "" {
		return "/"
	}
	return "/" + tail
}

// Canonicalize strips the language and version segments from a request or
// guide path, yielding the canonical path used for matching regardless of
// locale and version.
func Canonicalize(path string, languages []string) string {
	return TrimVersion(TrimLanguage(path, languages))
}

// Language returns the leading language segment of path if it matches one
// of the given language codes, or "" when the path carries no language
// prefix.
func Language(path string, languages []string) string {
	rest, ok := strings.CutPrefix(path, "/")
	if !ok {
		return ""
	}
	seg, _, _ := strings.Cut(rest, "/")
	for _, lang := range languages {
		if seg == lang {
			return lang
		}
	}
	return ""
}

// Version returns the version segment of path (after any language prefix),
// or "" when the path carries no version segment.
func Version(path string, languages []string) string {
	trimmed := TrimLanguage(path, languages)
	rest, ok := strings.CutPrefix(trimmed, "/")
	if !ok {
		return ""
	}
	seg, _, _ := strings.Cut(rest, "/")
	if strings.Contains(seg, versionSeparator) {
		return seg
	}
	return ""
}
