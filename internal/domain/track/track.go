// Package track contains the learning-track domain model. A learning track
// is a named, ordered sequence of guide pages grouped under a product and
// presented as a guided path with prev/next navigation.
package track

import (
	"strings"

	"github.com/Firegrill/docs/internal/domain"
)

// LearningTrack is a curated, ordered sequence of guide pages. Title is a
// template string rendered per request; Guides holds guide-path templates
// that may contain conditional template syntax and must be rendered before
// they yield concrete paths. Guide order defines the reading sequence.
type LearningTrack struct {
	Title  string   `yaml:"title" json:"title"`
	Guides []string `yaml:"guides" json:"guides"`
}

// Validate checks business rules for a LearningTrack definition.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *LearningTrack) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = "is required"
	}
	if len(t.Guides) == 0 {
		fields["guides"] = "must contain at least one guide path"
	}
	for _, g := range t.Guides {
		if strings.TrimSpace(g) == "" {
			fields["guides"] = "must not contain empty guide paths"
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Guide is a resolved link to a single guide page within a track.
type Guide struct {
	Href  string `json:"href"`
	Title string `json:"title"`
}

// CurrentTrack is the per-request learning-track annotation attached to the
// request context when the requested page is a member of a track. It is
// created fresh per request, never persisted, and discarded when request
// handling ends.
type CurrentTrack struct {
	TrackName         string `json:"trackName"`
	TrackProduct      string `json:"trackProduct"`
	TrackTitle        string `json:"trackTitle"`
	NumberOfGuides    int    `json:"numberOfGuides"`
	CurrentGuideIndex int    `json:"currentGuideIndex"`
	PrevGuide         *Guide `json:"prevGuide,omitempty"`
	NextGuide         *Guide `json:"nextGuide,omitempty"`
}
