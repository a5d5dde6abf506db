// Package tracks provides the YAML-backed learning-track store. Track
// definitions are loaded per language at startup and served read-only for
// the process lifetime.
package tracks

import "github.com/Firegrill/docs/internal/domain/track"

// Merge produces the English-overlaid view of a translated track set.
//
// Translated guide lists are distrusted: every track present in both sets
// keeps the translated title but takes the English guide list, and products
// or tracks absent from the English set are dropped entirely. The returned
// structure is freshly allocated; neither input map is mutated, so both can
// be shared across concurrent requests.
func Merge(english, translated map[string]map[string]track.LearningTrack) map[string]map[string]track.LearningTrack {
	merged := make(map[string]map[string]track.LearningTrack, len(translated))

	for product, translatedTracks := range translated {
		englishTracks, ok := english[product]
		if !ok {
			continue
		}

		products := make(map[string]track.LearningTrack, len(translatedTracks))
		for name, tr := range translatedTracks {
			englishTrack, ok := englishTracks[name]
			if !ok {
				continue
			}
			products[name] = track.LearningTrack{
				Title:  tr.Title,
				Guides: englishTrack.Guides,
			}
		}
		if len(products) > 0 {
			merged[product] = products
		}
	}

	return merged
}
