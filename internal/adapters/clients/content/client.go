package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/Firegrill/docs/internal/adapters/store/tracks"
	"github.com/Firegrill/docs/internal/domain"
	"github.com/Firegrill/docs/internal/domain/track"
	"github.com/Firegrill/docs/internal/platform/httpclient"
	"github.com/Firegrill/docs/internal/ports"
)

// Compile-time checks for the ports the client implements.
var (
	_ ports.TrackStore    = (*Client)(nil)
	_ ports.LinkResolver  = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client is the outbound adapter for the remote content API. It implements
// ports.TrackStore and ports.LinkResolver against the API's read endpoints.
//
// The English overlay rule is enforced client-side: for non-default
// languages the client fetches both the translated and the English track
// set and merges them, so a remote source can never leak translated guide
// lists into resolution.
//
// The underlying httpclient.Client provides circuit breaking, retry with
// exponential backoff, and OpenTelemetry tracing for every outbound call.
type Client struct {
	req             *Requester
	defaultLanguage string
	logger          *slog.Logger
}

// New creates a content API client. The httpclient's BaseURL should point
// to the API root (e.g. "https://content-api.example.com").
func New(client *httpclient.Client, defaultLanguage string, logger *slog.Logger) *Client {
	return &Client{
		req:             NewRequester(client, logger),
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// ProductTracks fetches the product's tracks for the given language from
// GET /api/content/v1/learning-tracks. For non-default languages the
// translated set is overlaid against the English set before it is returned.
// Returns domain.ErrNotFound when the product has no tracks.
func (c *Client) ProductTracks(ctx context.Context, language, product string) (map[string]track.LearningTrack, error) {
	english, err := c.fetchTracks(ctx, c.defaultLanguage, product)
	if err != nil {
		return nil, err
	}
	if language == c.defaultLanguage {
		return english, nil
	}

	translated, err := c.fetchTracks(ctx, language, product)
	if errors.Is(err, domain.ErrNotFound) {
		// No translated definitions; serve the English set as-is.
		return english, nil
	}
	if err != nil {
		return nil, err
	}

	merged := tracks.Merge(
		map[string]map[string]track.LearningTrack{product: english},
		map[string]map[string]track.LearningTrack{product: translated},
	)
	result, ok := merged[product]
	if !ok {
		return nil, fmt.Errorf("learning tracks for product %q: %w", product, domain.ErrNotFound)
	}
	return result, nil
}

func (c *Client) fetchTracks(ctx context.Context, language, product string) (map[string]track.LearningTrack, error) {
	path := "/api/content/v1/learning-tracks?" + url.Values{
		"language": {language},
		"product":  {product},
	}.Encode()

	var dto tracksResponseDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	if len(dto.Tracks) == 0 {
		return nil, fmt.Errorf("learning tracks for product %q: %w", product, domain.ErrNotFound)
	}
	return toDomainTracks(dto), nil
}

// Resolve fetches link data for a single guide path from
// GET /api/content/v1/links. Returns domain.ErrNotFound when the guide does
// not exist or is not available in the given version.
func (c *Client) Resolve(ctx context.Context, guidePath, language, version string) (*track.Guide, error) {
	path := "/api/content/v1/links?" + url.Values{
		"language": {language},
		"version":  {version},
		"path":     {guidePath},
	}.Encode()

	var dto linkResponseDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	return toDomainGuide(dto), nil
}

// ResolveAll resolves each guide path in order, dropping guides the API
// reports as not found. Transport and server failures are surfaced so the
// caller can disable resolution rather than proceed with a partial list.
func (c *Client) ResolveAll(ctx context.Context, guidePaths []string, language, version string) ([]track.Guide, error) {
	guides := make([]track.Guide, 0, len(guidePaths))
	for _, gp := range guidePaths {
		g, err := c.Resolve(ctx, gp, language, version)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		guides = append(guides, *g)
	}
	return guides, nil
}

// Name identifies the content API in health reports.
func (c *Client) Name() string {
	return "content-api"
}

// HealthCheck probes GET /api/content/v1/health on the content API.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.req.Get(ctx, "/api/content/v1/health", nil)
}
