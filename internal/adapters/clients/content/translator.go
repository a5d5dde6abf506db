package content

import "github.com/Firegrill/docs/internal/domain/track"

// trackDTO is the wire shape of a single learning-track definition.
type trackDTO struct {
	Title  string   `json:"title"`
	Guides []string `json:"guides"`
}

// tracksResponseDTO is the wire shape of GET /learning-tracks.
type tracksResponseDTO struct {
	Product string              `json:"product"`
	Tracks  map[string]trackDTO `json:"tracks"`
}

// linkResponseDTO is the wire shape of GET /links.
type linkResponseDTO struct {
	Href  string `json:"href"`
	Title string `json:"title"`
}

// toDomainTracks converts a tracks response to the domain track map.
func toDomainTracks(dto tracksResponseDTO) map[string]track.LearningTrack {
	tracks := make(map[string]track.LearningTrack, len(dto.Tracks))
	for name, t := range dto.Tracks {
		tracks[name] = track.LearningTrack{
			Title:  t.Title,
			Guides: t.Guides,
		}
	}
	return tracks
}

// toDomainGuide converts a link response to a domain guide link.
func toDomainGuide(dto linkResponseDTO) *track.Guide {
	return &track.Guide{
		Href:  dto.Href,
		Title: dto.Title,
	}
}
