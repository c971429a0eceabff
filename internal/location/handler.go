package location

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity/internal/platform/middleware"
	"charity/pkg/platform/httputil"
)

type lookupService interface {
	Provinces(ctx context.Context) ([]Province, error)
	Cities(ctx context.Context, provinceID int64) ([]City, error)
}

// Handler serves the unpaginated location lookups.
type Handler struct {
	service lookupService
	logger  *slog.Logger
}

func NewHandler(service lookupService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the lookups on r. Callers apply authentication.
func (h *Handler) Register(r chi.Router) {
	r.Get("/lookups/provinces/", h.handleProvinces)
	r.Get("/lookups/cities/", h.handleCities)
}

func (h *Handler) handleProvinces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provinces, err := h.service.Provinces(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list provinces",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, provinces)
}

func (h *Handler) handleCities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provinceID, err := httputil.QueryID(r, "province")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	cities, err := h.service.Cities(ctx, provinceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list cities",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cities)
}
