// Package handlers contains the inbound HTTP handlers: the page endpoint
// and the health endpoints.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Firegrill/docs/internal/adapters/http/dto"
	appctx "github.com/Firegrill/docs/internal/app/context"
	"github.com/Firegrill/docs/internal/domain"
)

// PageHandler serves contextualized page metadata. It is the terminal
// handler of the page middleware chain: by the time it runs, the request
// carries a RequestContext with the resolved page and any learning-track
// annotation.
type PageHandler struct {
	logger *slog.Logger
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(logger *slog.Logger) *PageHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PageHandler{logger: logger}
}

// ServePage handles GET requests for documentation pages. Requests whose
// canonical path matches no catalog page get a 404 Problem Details
// response.
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	rc := appctx.FromContext(r.Context())
	if rc == nil {
		h.logger.ErrorContext(r.Context(), "page handler reached without request context",
			slog.String("path", r.URL.Path),
		)
		dto.WriteErrorResponse(w, r, fmt.Errorf("request not contextualized"))
		return
	}

	if rc.Page == nil {
		dto.WriteErrorResponse(w, r, fmt.Errorf("page %q: %w", r.URL.Path, domain.ErrNotFound))
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPageResponse(rc))
}
