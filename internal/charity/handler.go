package charity

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity/internal/platform/middleware"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/platform/httputil"
	"charity/pkg/requestcontext"
)

type profileService interface {
	Get(ctx context.Context, id int64) (*Charity, error)
	UpdateProfile(ctx context.Context, id int64, req *UpdateProfileRequest) (*Charity, error)
	Workfields(ctx context.Context, charityID int64) ([]Workfield, error)
	AddWorkfield(ctx context.Context, charityID int64, req *CreateWorkfieldRequest) (*Workfield, error)
	RemoveWorkfield(ctx context.Context, charityID, id int64) error
}

// Handler serves the calling charity's own profile and workfields.
type Handler struct {
	service profileService
	logger  *slog.Logger
}

func NewHandler(service profileService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register expects r to already require a staff or charity principal.
func (h *Handler) Register(r chi.Router) {
	r.Get("/profile/", h.handleGetProfile)
	r.Patch("/profile/", h.handleUpdateProfile)
	r.Get("/workfields/", h.handleListWorkfields)
	r.Post("/workfields/", h.handleCreateWorkfield)
	r.Delete("/workfields/{pk}/", h.handleDeleteWorkfield)
}

// callerCharity resolves the charity of the authenticated account. Staff have none.
func (h *Handler) callerCharity(w http.ResponseWriter, r *http.Request) (int64, bool) {
	p, _ := requestcontext.PrincipalFrom(r.Context())
	if p.Role != requestcontext.RoleCharity || p.CharityID == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "Only charity accounts have a profile."))
		return 0, false
	}
	return p.CharityID, true
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	charityID, ok := h.callerCharity(w, r)
	if !ok {
		return
	}
	c, err := h.service.Get(ctx, charityID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load charity profile",
			"request_id", middleware.GetRequestID(ctx),
			"charity_id", charityID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	charityID, ok := h.callerCharity(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateProfileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	c, err := h.service.UpdateProfile(ctx, charityID, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update charity profile",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleListWorkfields(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	charityID, ok := h.callerCharity(w, r)
	if !ok {
		return
	}
	out, err := h.service.Workfields(ctx, charityID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list workfields",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateWorkfield(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	charityID, ok := h.callerCharity(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateWorkfieldRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	wf, err := h.service.AddWorkfield(ctx, charityID, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create workfield",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, wf)
}

func (h *Handler) handleDeleteWorkfield(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	charityID, ok := h.callerCharity(w, r)
	if !ok {
		return
	}
	id, err := httputil.PathID(r, "pk")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.RemoveWorkfield(ctx, charityID, id); err != nil {
		h.logger.WarnContext(ctx, "failed to delete workfield",
			"request_id", middleware.GetRequestID(ctx),
			"workfield_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
