package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Firegrill/docs/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for the content API:
// request creation, execution via httpclient.Client, response body cleanup,
// status code validation, error translation, and JSON decoding. The content
// API is read-only, so only GET is supported.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// Get executes a GET against the configured base URL and decodes a 200
// response body into respBody. Any other status is translated to a domain
// error via TranslateHTTPError.
func (r *Requester) Get(ctx context.Context, path string, respBody any) error {
	url := r.client.BaseURL() + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are
		// exhausted on a retryable status (e.g. 5xx). In that case, translate
		// the HTTP response into a domain error rather than returning the raw
		// retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != http.StatusOK {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		err := TranslateHTTPError(resp)
		r.logger.DebugContext(ctx, "content API returned error status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)
		return err
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding GET %s response: %w", path, err)
	}
	return nil
}
