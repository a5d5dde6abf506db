package render

// SiteBindings builds the render bindings for a request or lookup scope.
// Beyond the current* values, every known version short name is bound to a
// boolean so that conditional guide paths like
// "{% if ghes %}/admin/guides/intro{% endif %}" render against the active
// version. versionShorts maps full version names to their short names
// (e.g. "enterprise-server@3.12" -> "ghes").
func SiteBindings(language, version, product, path string, versionShorts map[string]string) map[string]any {
	bindings := map[string]any{
		"currentLanguage": language,
		"currentVersion":  version,
		"currentProduct":  product,
		"currentPath":     path,
	}
	// Several full versions can share a short name (every enterprise-server
	// release is "ghes"); a short name is true when any of them is active.
	for full, short := range versionShorts {
		if full == version {
			bindings[short] = true
		} else if _, ok := bindings[short]; !ok {
			bindings[short] = false
		}
	}
	return bindings
}
