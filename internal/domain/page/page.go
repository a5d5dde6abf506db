// Package page contains the documentation-page domain model and the path
// canonicalization rules shared by the catalog and the learning-track
// resolver.
package page

import "slices"

// Page is the metadata for a single documentation page. Path is the
// canonical path: no language prefix and no version segment.
type Page struct {
	Path         string   `yaml:"path" json:"path"`
	Title        string   `yaml:"title" json:"title"`
	Intro        string   `yaml:"intro,omitempty" json:"intro,omitempty"`
	Product      string   `yaml:"product" json:"product"`
	Versions     []string `yaml:"versions" json:"versions"`
	RedirectFrom []string `yaml:"redirect_from,omitempty" json:"redirectFrom,omitempty"`
}

// AppliesTo reports whether the page is available in the given site version.
// A page with no version list applies to every version.
func (p *Page) AppliesTo(version string) bool {
	if len(p.Versions) == 0 {
		return true
	}
	return slices.Contains(p.Versions, version)
}
