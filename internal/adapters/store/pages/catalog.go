// Package pages provides the in-memory page catalog: page metadata loaded
// from per-language YAML files, looked up by canonical path and resolved to
// version-appropriate link data.
package pages

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
	"github.com/Firegrill/docs/internal/domain/page"
	"github.com/Firegrill/docs/internal/domain/track"
	"github.com/Firegrill/docs/internal/platform/render"
	"github.com/Firegrill/docs/internal/ports"
)

// pageFileName is the per-language page metadata file within the data
// directory, at <dataDir>/<language>/pages.yaml.
const pageFileName = "pages.yaml"

// Compile-time checks for the ports the catalog implements.
var (
	_ ports.LinkResolver  = (*Catalog)(nil)
	_ ports.PageFinder    = (*Catalog)(nil)
	_ ports.HealthChecker = (*Catalog)(nil)
)

// Catalog is the in-memory page catalog. Pages are indexed per language by
// canonical path and by redirect-source path. The indexes are read-only
// after Load returns and safe for concurrent use.
type Catalog struct {
	defaultLanguage string
	renderer        ports.Renderer
	versionShorts   map[string]string

	byLanguage map[string]*languageIndex
}

// languageIndex holds one language's page lookups.
type languageIndex struct {
	byPath     map[string]*page.Page
	byRedirect map[string]*page.Page
}

// Load reads page metadata for every language from dataDir, loading
// language files concurrently with at most workers goroutines. The default
// language file is required; languages without a file are served the
// default language's pages. The renderer evaluates template syntax in guide
// paths and titles; versionShorts maps full version names to their template
// short names.
func Load(
	ctx context.Context,
	dataDir string,
	languages []string,
	defaultLanguage string,
	workers int,
	renderer ports.Renderer,
	versionShorts map[string]string,
	logger *slog.Logger,
) (*Catalog, error) {
	if workers < 1 {
		workers = 1
	}

	type langData struct {
		language string
		index    *languageIndex
	}

	results := fanout.Run(ctx, workers, languages, func(_ context.Context, language string) (langData, error) {
		index, err := loadLanguage(dataDir, language)
		if err != nil {
			return langData{}, err
		}
		return langData{language: language, index: index}, nil
	})

	byLanguage := make(map[string]*languageIndex, len(languages))
	for _, res := range results {
		if res.Err != nil {
			return nil, res.Err
		}
		byLanguage[res.Value.language] = res.Value.index
	}

	defaultIndex := byLanguage[defaultLanguage]
	if defaultIndex == nil {
		return nil, fmt.Errorf("loading pages: no data for default language %q", defaultLanguage)
	}
	for _, language := range languages {
		if byLanguage[language] == nil {
			byLanguage[language] = defaultIndex
		}
	}

	logger.InfoContext(ctx, "page catalog loaded",
		slog.String("data_dir", dataDir),
		slog.Int("languages", len(byLanguage)),
		slog.Int("pages", len(defaultIndex.byPath)),
	)

	return &Catalog{
		defaultLanguage: defaultLanguage,
		renderer:        renderer,
		versionShorts:   versionShorts,
		byLanguage:      byLanguage,
	}, nil
}

// loadLanguage parses one language's page file into its lookup index. A
// missing file is not an error here; the caller substitutes the default
// language's index.
func loadLanguage(dataDir, language string) (*languageIndex, error) {
	path := filepath.Join(dataDir, language, pageFileName)

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pages []page.Page
	if err := yaml.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	index := &languageIndex{
		byPath:     make(map[string]*page.Page, len(pages)),
		byRedirect: make(map[string]*page.Page),
	}
	for i := range pages {
		p := &pages[i]
		if p.Path == "" {
			return nil, fmt.Errorf("page %d in %s: path is required", i, path)
		}
		index.byPath[p.Path] = p
		for _, redirect := range p.RedirectFrom {
			index.byRedirect[redirect] = p
		}
	}
	return index, nil
}

// index returns the language's page index, falling back to the default
// language for unknown codes.
func (c *Catalog) index(language string) *languageIndex {
	if idx, ok := c.byLanguage[language]; ok {
		return idx
	}
	return c.byLanguage[c.defaultLanguage]
}

// FindPage returns the page whose canonical path equals path, following
// redirect-source paths when no direct entry exists.
func (c *Catalog) FindPage(_ context.Context, path string) (*page.Page, error) {
	idx := c.index(c.defaultLanguage)
	if p, ok := idx.byPath[path]; ok {
		return p, nil
	}
	if p, ok := idx.byRedirect[path]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("page %q: %w", path, domain.ErrNotFound)
}

// Resolve resolves a single guide path to version-appropriate link data.
// The guide path may contain template syntax; entries that fail to render,
// render to nothing, match no page, or are not available in the version are
// reported as domain.ErrNotFound.
func (c *Catalog) Resolve(ctx context.Context, guidePath, language, version string) (*track.Guide, error) {
	bindings := render.SiteBindings(language, version, "", guidePath, c.versionShorts)

	concrete, err := c.renderer.Render(ctx, guidePath, bindings)
	if err != nil || concrete == "" {
		return nil, fmt.Errorf("guide path %q: %w", guidePath, domain.ErrNotFound)
	}

	p, ok := c.index(language).byPath[concrete]
	if !ok || !p.AppliesTo(version) {
		return nil, fmt.Errorf("guide %q in %s: %w", concrete, version, domain.ErrNotFound)
	}

	title, err := c.renderer.RenderPlainText(ctx, p.Title, bindings)
	if err != nil || title == "" {
		title = p.Title
	}

	return &track.Guide{
		Href:  "/" + language + "/" + version + p.Path,
		Title: title,
	}, nil
}

// ResolveAll resolves each guide path for the given language and version,
// preserving input order and dropping guides that do not resolve. Only
// context cancellation is surfaced as an error.
func (c *Catalog) ResolveAll(ctx context.Context, guidePaths []string, language, version string) ([]track.Guide, error) {
	guides := make([]track.Guide, 0, len(guidePaths))
	for _, gp := range guidePaths {
		g, err := c.Resolve(ctx, gp, language, version)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			continue
		}
		guides = append(guides, *g)
	}
	return guides, nil
}

// Name identifies the catalog in health reports.
func (c *Catalog) Name() string {
	return "page-catalog"
}

// HealthCheck reports whether page data was loaded for the default
// language.
func (c *Catalog) HealthCheck(context.Context) error {
	idx := c.byLanguage[c.defaultLanguage]
	if idx == nil || len(idx.byPath) == 0 {
		return fmt.Errorf("page catalog: no data loaded for %q", c.defaultLanguage)
	}
	return nil
}
