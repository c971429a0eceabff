package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity/internal/platform/middleware"
	"charity/internal/request/models"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/pagination"
	"charity/pkg/platform/httputil"
)

// CharityHandler serves /charity-platform/requests/... Staff see every
// request, a charity only its own.
type CharityHandler struct {
	base
}

func NewCharityHandler(service Service, logger *slog.Logger) *CharityHandler {
	h := &CharityHandler{base{service: service, logger: logger}}
	h.scope = charityScope
	return h
}

func charityScope(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := principalActor(r.Context())
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "You do not have permission to perform this action."))
		return models.Actor{}, false
	}
	return actor, true
}

// Register expects r to already require a staff or charity principal.
func (h *CharityHandler) Register(r chi.Router) {
	r.Post("/beneficiaries/{pk}/requests/", h.handleCreateFor)

	r.Get("/requests/", h.handleList)
	r.Get("/requests/new/", h.listView(h.service.ListNew))
	r.Get("/requests/old/onetime/", h.listView(h.service.ListOldOnetime))
	r.Get("/requests/old/ongoing/", h.listView(h.service.ListOldOngoing))

	h.registerShared(r, "/requests")
	r.Patch("/requests/{rid}/stage/", h.handleChangeStage)

	r.Post("/requests/{rid}/histories/", h.handleCreateHistory)
	r.Put("/requests/{rid}/histories/{hid}/", h.handleUpdateHistory)
	r.Delete("/requests/{rid}/histories/{hid}/", h.handleDeleteHistory)

	r.Patch("/requests/{rid}/children/{cid}/stage/", h.handleChangeChildStage)
}

func (h *CharityHandler) handleCreateFor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.scope(w, r)
	if !ok {
		return
	}
	beneficiaryID, err := httputil.PathID(r, "pk")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.CreateRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	created, err := h.service.Create(ctx, actor, beneficiaryID, req)
	if err != nil {
		h.fail(ctx, w, "failed to create request", err, "beneficiary_id", beneficiaryID)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *CharityHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.scope(w, r)
	if !ok {
		return
	}
	p, err := httputil.PageParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.List(ctx, actor, listQuery(r), p)
	if err != nil {
		h.fail(ctx, w, "failed to list requests", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

type listFunc func(ctx context.Context, actor models.Actor, p pagination.Params) (pagination.Page[models.Request], error)

func (h *CharityHandler) listView(list listFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actor, ok := h.scope(w, r)
		if !ok {
			return
		}
		p, err := httputil.PageParams(r)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		page, err := list(ctx, actor, p)
		if err != nil {
			h.fail(ctx, w, "failed to list requests", err, "path", r.URL.Path)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, page)
	}
}

func (h *CharityHandler) handleChangeStage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := h.target(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.ChangeStageRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	updated, err := h.service.ChangeStage(ctx, actor, rid, req.Stage)
	if err != nil {
		h.fail(ctx, w, "failed to change stage", err, "request", rid, "stage", req.Stage)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *CharityHandler) handleCreateHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := h.target(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.HistoryRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	created, err := h.service.CreateHistory(ctx, actor, rid, req)
	if err != nil {
		h.fail(ctx, w, "failed to create history", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *CharityHandler) handleUpdateHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, hid, ok := h.target(w, r, "hid")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.HistoryRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	updated, err := h.service.UpdateHistory(ctx, actor, rid, hid, req)
	if err != nil {
		h.fail(ctx, w, "failed to update history", err, "request", rid, "history", hid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *CharityHandler) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, hid, ok := h.target(w, r, "hid")
	if !ok {
		return
	}
	if err := h.service.DeleteHistory(ctx, actor, rid, hid); err != nil {
		h.fail(ctx, w, "failed to delete history", err, "request", rid, "history", hid)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CharityHandler) handleChangeChildStage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, cid, ok := h.target(w, r, "cid")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.ChangeStageRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	updated, err := h.service.ChangeChildStage(ctx, actor, rid, cid, req.Stage)
	if err != nil {
		h.fail(ctx, w, "failed to change child stage", err, "request", rid, "child", cid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}
