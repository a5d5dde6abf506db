package dto

import (
	appctx "github.com/Firegrill/docs/internal/app/context"
	"github.com/Firegrill/docs/internal/domain/track"
)

// PageResponse is the JSON representation of a contextualized page: the
// page's own metadata plus the request's resolved site coordinates and its
// learning-track annotation.
//
// CurrentLearningTrack is deliberately not omitempty: clients distinguish
// "no track for this request" (explicit null) from a missing field.
type PageResponse struct {
	Path                 string              `json:"path"`
	Title                string              `json:"title"`
	Intro                string              `json:"intro,omitempty"`
	Product              string              `json:"product"`
	Language             string              `json:"language"`
	Version              string              `json:"version"`
	CurrentLearningTrack *track.CurrentTrack `json:"currentLearningTrack"`
}

// ToPageResponse builds a PageResponse from the request context. The caller
// must ensure rc.Page is non-nil.
func ToPageResponse(rc *appctx.RequestContext) PageResponse {
	return PageResponse{
		Path:                 rc.Page.Path,
		Title:                rc.Page.Title,
		Intro:                rc.Page.Intro,
		Product:              rc.Page.Product,
		Language:             rc.Language,
		Version:              rc.Version,
		CurrentLearningTrack: rc.CurrentTrack,
	}
}
