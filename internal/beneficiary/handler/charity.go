package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity/internal/beneficiary/models"
	"charity/internal/platform/middleware"
	"charity/pkg/platform/httputil"
)

// CharityHandler serves /charity-platform/beneficiaries/... Callers must be staff or a charity.
type CharityHandler struct {
	base
}

func NewCharityHandler(service Service, logger *slog.Logger) *CharityHandler {
	return &CharityHandler{base{service: service, logger: logger}}
}

// Register expects r to already require a staff or charity principal.
func (h *CharityHandler) Register(r chi.Router) {
	r.Get("/beneficiaries/", h.handleList)
	r.Get("/beneficiaries/{pk}/", h.handleDetail)
	r.Put("/beneficiaries/{pk}/user-information/", h.handleSaveInformation)
	r.Put("/beneficiaries/{pk}/address/", h.handleSaveAddress)
	r.Get("/beneficiaries/{pk}/additional-info/", h.handleListAdditionalInfo)
	r.Post("/beneficiaries/{pk}/additional-info/", h.handleCreateAdditionalInfo)
	r.Put("/beneficiaries/{pk}/additional-info/{info_pk}/", h.handleUpdateAdditionalInfo)
	r.Delete("/beneficiaries/{pk}/additional-info/{info_pk}/", h.handleDeleteAdditionalInfo)
}

func (h *CharityHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := httputil.PageParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.List(ctx, r.URL.Query().Get("search"), p)
	if err != nil {
		h.fail(ctx, w, "failed to list beneficiaries", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func (h *CharityHandler) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	d, err := h.service.Detail(ctx, id)
	if err != nil {
		h.fail(ctx, w, "failed to load beneficiary", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, d)
}

func (h *CharityHandler) handleSaveInformation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.InformationRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	info, err := h.service.SaveInformation(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "failed to save information", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, info)
}

func (h *CharityHandler) handleSaveAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AddressRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	a, err := h.service.SaveAddress(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "failed to save address", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *CharityHandler) handleListAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	out, err := h.service.AdditionalInfo(ctx, id, true)
	if err != nil {
		h.fail(ctx, w, "failed to list additional info", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *CharityHandler) handleCreateAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AdditionalInfoRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	a, err := h.service.CreateAdditionalInfo(ctx, id, req, true)
	if err != nil {
		h.fail(ctx, w, "failed to create additional info", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, a)
}

func (h *CharityHandler) handleUpdateAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, infoID, ok := ids(w, r, "info_pk")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AdditionalInfoRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	a, err := h.service.UpdateAdditionalInfo(ctx, id, infoID, req, true)
	if err != nil {
		h.fail(ctx, w, "failed to update additional info", err, "beneficiary_id", id, "info_id", infoID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *CharityHandler) handleDeleteAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, infoID, ok := ids(w, r, "info_pk")
	if !ok {
		return
	}
	if err := h.service.DeleteAdditionalInfo(ctx, id, infoID, true); err != nil {
		h.fail(ctx, w, "failed to delete additional info", err, "beneficiary_id", id, "info_id", infoID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
