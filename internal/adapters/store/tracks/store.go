package tracks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Firegrill/docs/internal/app/fanout"
	"github.com/Firegrill/docs/internal/domain"
	"github.com/Firegrill/docs/internal/domain/track"
	"github.com/Firegrill/docs/internal/ports"
)

// trackFileName is the per-language track definition file within the data
// directory, at <dataDir>/<language>/learning-tracks.yaml.
const trackFileName = "learning-tracks.yaml"

// Compile-time checks for the ports the store implements.
var (
	_ ports.TrackStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store serves learning-track definitions loaded from per-language YAML
// files. Non-default languages are stored pre-merged against the default
// language's data, so every lookup already sees the overlaid view. The
// loaded maps are read-only after Load returns and safe for concurrent use.
type Store struct {
	defaultLanguage string

	// byLanguage maps language -> product -> track name -> track.
	byLanguage map[string]map[string]map[string]track.LearningTrack
}

// trackDef is the YAML shape of a single track definition.
type trackDef struct {
	Title  string   `yaml:"title"`
	Guides []string `yaml:"guides"`
}

// Load reads track definitions for every language from dataDir, loading
// language files concurrently with at most workers goroutines. The default
// language file is required; languages without a file fall back to the
// default language's data. Invalid track definitions fail the load.
func Load(ctx context.Context, dataDir string, languages []string, defaultLanguage string, workers int, logger *slog.Logger) (*Store, error) {
	if workers < 1 {
		workers = 1
	}

	type langData struct {
		language string
		tracks   map[string]map[string]track.LearningTrack
	}

	results := fanout.Run(ctx, workers, languages, func(_ context.Context, language string) (langData, error) {
		tracks, err := loadLanguage(dataDir, language)
		if err != nil {
			return langData{}, err
		}
		return langData{language: language, tracks: tracks}, nil
	})

	byLanguage := make(map[string]map[string]map[string]track.LearningTrack, len(languages))
	for _, res := range results {
		if res.Err != nil {
			return nil, res.Err
		}
		byLanguage[res.Value.language] = res.Value.tracks
	}

	english, ok := byLanguage[defaultLanguage]
	if !ok || english == nil {
		return nil, fmt.Errorf("loading tracks: no data for default language %q", defaultLanguage)
	}

	// Overlay every translation against the default language once at load
	// time. Languages without their own data serve the default set.
	for _, language := range languages {
		if language == defaultLanguage {
			continue
		}
		if byLanguage[language] == nil {
			byLanguage[language] = english
			continue
		}
		byLanguage[language] = Merge(english, byLanguage[language])
	}

	total := 0
	for _, perProduct := range english {
		total += len(perProduct)
	}
	logger.InfoContext(ctx, "learning tracks loaded",
		slog.String("data_dir", dataDir),
		slog.Int("languages", len(byLanguage)),
		slog.Int("tracks", total),
	)

	return &Store{
		defaultLanguage: defaultLanguage,
		byLanguage:      byLanguage,
	}, nil
}

// loadLanguage parses one language's track file. A missing file for a
// language is not an error here; the caller substitutes the default
// language's data.
func loadLanguage(dataDir, language string) (map[string]map[string]track.LearningTrack, error) {
	path := filepath.Join(dataDir, language, trackFileName)

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var file map[string]map[string]trackDef
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	tracks := make(map[string]map[string]track.LearningTrack, len(file))
	for product, defs := range file {
		perProduct := make(map[string]track.LearningTrack, len(defs))
		for name, def := range defs {
			tr := track.LearningTrack{Title: def.Title, Guides: def.Guides}
			if err := tr.Validate(); err != nil {
				return nil, fmt.Errorf("track %s/%s in %s: %w", product, name, path, err)
			}
			perProduct[name] = tr
		}
		tracks[product] = perProduct
	}
	return tracks, nil
}

// ProductTracks returns the tracks defined for the product in the given
// language. Unknown languages are served the default language's data. The
// returned map is shared and must not be mutated.
func (s *Store) ProductTracks(_ context.Context, language, product string) (map[string]track.LearningTrack, error) {
	perProduct, ok := s.byLanguage[language]
	if !ok {
		perProduct = s.byLanguage[s.defaultLanguage]
	}

	tracks, ok := perProduct[product]
	if !ok || len(tracks) == 0 {
		return nil, fmt.Errorf("learning tracks for product %q: %w", product, domain.ErrNotFound)
	}
	return tracks, nil
}

// Name identifies the store in health reports.
func (s *Store) Name() string {
	return "track-store"
}

// HealthCheck reports whether track data was loaded for the default
// language.
func (s *Store) HealthCheck(context.Context) error {
	if len(s.byLanguage[s.defaultLanguage]) == 0 {
		return fmt.Errorf("track store: no data loaded for %q", s.defaultLanguage)
	}
	return nil
}
