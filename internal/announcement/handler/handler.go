// Package handler serves announcements to beneficiaries and charities.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity/internal/announcement/models"
	"charity/internal/platform/middleware"
	rmodels "charity/internal/request/models"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/platform/httputil"
	"charity/pkg/requestcontext"
)

type Service interface {
	Unseen(ctx context.Context, beneficiaryID int64) ([]models.ToBeneficiary, error)
	Open(ctx context.Context, viewer rmodels.Actor, id int64) (*models.ToBeneficiary, error)
	UnseenOnRequests(ctx context.Context, beneficiaryID int64) ([]models.ForRequest, error)
	OpenOnRequest(ctx context.Context, viewer rmodels.Actor, id int64) (*models.ForRequest, error)

	ListForRequest(ctx context.Context, actor rmodels.Actor, requestID int64) ([]models.ForRequest, error)
	CreateForRequest(ctx context.Context, actor rmodels.Actor, requestID int64, req *models.AnnouncementRequest) (*models.ForRequest, error)
	GetForRequest(ctx context.Context, actor rmodels.Actor, id int64) (*models.ForRequest, error)
	UpdateForRequest(ctx context.Context, actor rmodels.Actor, id int64, req *models.AnnouncementRequest) (*models.ForRequest, error)
	DeleteForRequest(ctx context.Context, actor rmodels.Actor, id int64) error
	ListToBeneficiary(ctx context.Context, beneficiaryID int64) ([]models.ToBeneficiary, error)
	CreateToBeneficiary(ctx context.Context, actor rmodels.Actor, beneficiaryID int64, req *models.AnnouncementRequest) (*models.ToBeneficiary, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	args := append([]any{"request_id", middleware.GetRequestID(ctx), "error", err}, attrs...)
	h.logger.WarnContext(ctx, msg, args...)
	httputil.WriteError(w, err)
}

// RegisterBeneficiary mounts the /beneficiary/{pk}/... routes.
func (h *Handler) RegisterBeneficiary(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireBeneficiaryAccess("pk", h.logger))

		r.Get("/beneficiary/{pk}/announcements/", h.handleUnseen)
		r.Get("/beneficiary/{pk}/announcements/{aid}/", h.handleOpen)
		r.Get("/beneficiary/{pk}/request-announcements/", h.handleUnseenOnRequests)
		r.Get("/beneficiary/{pk}/request-announcements/{aid}/", h.handleOpenOnRequest)
	})
}

// RegisterCharity mounts the charity routes. r must already require a
// staff or charity principal.
func (h *Handler) RegisterCharity(r chi.Router) {
	r.Get("/requests/{rid}/announcements/", h.handleListForRequest)
	r.Post("/requests/{rid}/announcements/", h.handleCreateForRequest)
	r.Get("/request-announcements/{aid}/", h.handleGetForRequest)
	r.Put("/request-announcements/{aid}/", h.handleUpdateForRequest)
	r.Delete("/request-announcements/{aid}/", h.handleDeleteForRequest)
	r.Get("/beneficiaries/{pk}/announcements/", h.handleListToBeneficiary)
	r.Post("/beneficiaries/{pk}/announcements/", h.handleCreateToBeneficiary)
}

func pathIDs(w http.ResponseWriter, r *http.Request, first, second string) (int64, int64, bool) {
	a, err := httputil.PathID(r, first)
	if err != nil {
		httputil.WriteError(w, err)
		return 0, 0, false
	}
	if second == "" {
		return a, 0, true
	}
	b, err := httputil.PathID(r, second)
	if err != nil {
		httputil.WriteError(w, err)
		return 0, 0, false
	}
	return a, b, true
}

func (h *Handler) handleUnseen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bid, _, ok := pathIDs(w, r, "pk", "")
	if !ok {
		return
	}
	out, err := h.service.Unseen(ctx, bid)
	if err != nil {
		h.fail(ctx, w, "failed to list announcements", err, "beneficiary_id", bid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleOpen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bid, id, ok := pathIDs(w, r, "pk", "aid")
	if !ok {
		return
	}
	a, err := h.service.Open(ctx, viewer(ctx, bid), id)
	if err != nil {
		h.fail(ctx, w, "failed to open announcement", err, "beneficiary_id", bid, "announcement", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) handleUnseenOnRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bid, _, ok := pathIDs(w, r, "pk", "")
	if !ok {
		return
	}
	out, err := h.service.UnseenOnRequests(ctx, bid)
	if err != nil {
		h.fail(ctx, w, "failed to list request announcements", err, "beneficiary_id", bid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleOpenOnRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bid, id, ok := pathIDs(w, r, "pk", "aid")
	if !ok {
		return
	}
	a, err := h.service.OpenOnRequest(ctx, viewer(ctx, bid), id)
	if err != nil {
		h.fail(ctx, w, "failed to open request announcement", err, "beneficiary_id", bid, "announcement", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

// actor maps the caller to a charity-side actor; staff act for every charity.
func actor(w http.ResponseWriter, r *http.Request) (rmodels.Actor, bool) {
	p, ok := requestcontext.PrincipalFrom(r.Context())
	if !ok || !p.IsStaffOrCharity() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "You do not have permission to perform this action."))
		return rmodels.Actor{}, false
	}
	return charitySide(p), true
}

func charitySide(p requestcontext.Principal) rmodels.Actor {
	if p.IsStaff() {
		return rmodels.CharityActor(0)
	}
	return rmodels.CharityActor(p.CharityID)
}

// viewer is whoever reads the path beneficiary's announcements: the
// beneficiary itself, or a charity-side actor bound to it.
func viewer(ctx context.Context, beneficiaryID int64) rmodels.Actor {
	p, ok := requestcontext.PrincipalFrom(ctx)
	if !ok || !p.IsStaffOrCharity() {
		return rmodels.BeneficiaryActor(beneficiaryID)
	}
	a := charitySide(p)
	a.BeneficiaryID = beneficiaryID
	return a
}

func (h *Handler) handleListForRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	a, ok := actor(w, r)
	if !ok {
		return
	}
	rid, _, ok := pathIDs(w, r, "rid", "")
	if !ok {
		return
	}
	out, err := h.service.ListForRequest(ctx, a, rid)
	if err != nil {
		h.fail(ctx, w, "failed to list request announcements", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateForRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	a, ok := actor(w, r)
	if !ok {
		return
	}
	rid, _, ok := pathIDs(w, r, "rid", "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AnnouncementRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	created, err := h.service.CreateForRequest(ctx, a, rid, req)
	if err != nil {
		h.fail(ctx, w, "failed to create request announcement", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleGetForRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	a, ok := actor(w, r)
	if !ok {
		return
	}
	id, _, ok := pathIDs(w, r, "aid", "")
	if !ok {
		return
	}
	out, err := h.service.GetForRequest(ctx, a, id)
	if err != nil {
		h.fail(ctx, w, "failed to load request announcement", err, "announcement", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleUpdateForRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	a, ok := actor(w, r)
	if !ok {
		return
	}
	id, _, ok := pathIDs(w, r, "aid", "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AnnouncementRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	out, err := h.service.UpdateForRequest(ctx, a, id, req)
	if err != nil {
		h.fail(ctx, w, "failed to update request announcement", err, "announcement", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleDeleteForRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	a, ok := actor(w, r)
	if !ok {
		return
	}
	id, _, ok := pathIDs(w, r, "aid", "")
	if !ok {
		return
	}
	if err := h.service.DeleteForRequest(ctx, a, id); err != nil {
		h.fail(ctx, w, "failed to delete request announcement", err, "announcement", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListToBeneficiary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bid, _, ok := pathIDs(w, r, "pk", "")
	if !ok {
		return
	}
	out, err := h.service.ListToBeneficiary(ctx, bid)
	if err != nil {
		h.fail(ctx, w, "failed to list announcements", err, "beneficiary_id", bid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateToBeneficiary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	a, ok := actor(w, r)
	if !ok {
		return
	}
	bid, _, ok := pathIDs(w, r, "pk", "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AnnouncementRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	created, err := h.service.CreateToBeneficiary(ctx, a, bid, req)
	if err != nil {
		h.fail(ctx, w, "failed to send announcement", err, "beneficiary_id", bid)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}
