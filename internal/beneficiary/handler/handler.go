// Package handler exposes beneficiary profiles to beneficiaries and to charities.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity/internal/beneficiary/models"
	"charity/internal/platform/middleware"
	"charity/pkg/pagination"
	"charity/pkg/platform/httputil"
)

// Service is the beneficiary service as seen by HTTP handlers.
type Service interface {
	Profile(ctx context.Context, id int64) (*models.Profile, error)
	UpdateRegistration(ctx context.Context, id int64, req *models.UpdateRegistrationRequest) (*models.Registration, error)
	Detail(ctx context.Context, id int64) (*models.Detail, error)
	List(ctx context.Context, query string, p pagination.Params) (pagination.Page[models.Summary], error)

	Information(ctx context.Context, beneficiaryID int64) (*models.Information, error)
	CreateInformation(ctx context.Context, beneficiaryID int64, req *models.InformationRequest) (*models.Information, error)
	UpdateInformation(ctx context.Context, beneficiaryID int64, req *models.InformationRequest) (*models.Information, error)
	SaveInformation(ctx context.Context, beneficiaryID int64, req *models.InformationRequest) (*models.Information, error)
	DeleteInformation(ctx context.Context, beneficiaryID int64) error

	Address(ctx context.Context, beneficiaryID int64) (*models.Address, error)
	CreateAddress(ctx context.Context, beneficiaryID int64, req *models.AddressRequest) (*models.Address, error)
	UpdateAddress(ctx context.Context, beneficiaryID int64, req *models.AddressRequest) (*models.Address, error)
	SaveAddress(ctx context.Context, beneficiaryID int64, req *models.AddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, beneficiaryID int64) error

	AdditionalInfo(ctx context.Context, beneficiaryID int64, byCharity bool) ([]models.AdditionalInfo, error)
	AdditionalInfoEntry(ctx context.Context, beneficiaryID, id int64) (*models.AdditionalInfo, error)
	CreateAdditionalInfo(ctx context.Context, beneficiaryID int64, req *models.AdditionalInfoRequest, byCharity bool) (*models.AdditionalInfo, error)
	UpdateAdditionalInfo(ctx context.Context, beneficiaryID, id int64, req *models.AdditionalInfoRequest, byCharity bool) (*models.AdditionalInfo, error)
	DeleteAdditionalInfo(ctx context.Context, beneficiaryID, id int64, byCharity bool) error
}

type base struct {
	service Service
	logger  *slog.Logger
}

func (b *base) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	args := append([]any{"request_id", middleware.GetRequestID(ctx), "error", err}, attrs...)
	b.logger.WarnContext(ctx, msg, args...)
	httputil.WriteError(w, err)
}

// ids reads the beneficiary id and, when name is set, a second path id.
func ids(w http.ResponseWriter, r *http.Request, name string) (int64, int64, bool) {
	beneficiaryID, err := httputil.PathID(r, "pk")
	if err != nil {
		httputil.WriteError(w, err)
		return 0, 0, false
	}
	if name == "" {
		return beneficiaryID, 0, true
	}
	id, err := httputil.PathID(r, name)
	if err != nil {
		httputil.WriteError(w, err)
		return 0, 0, false
	}
	return beneficiaryID, id, true
}

// BeneficiaryHandler serves /beneficiary-platform/beneficiary/{pk}/... to the
// beneficiary, staff and charities.
type BeneficiaryHandler struct {
	base
}

func NewBeneficiaryHandler(service Service, logger *slog.Logger) *BeneficiaryHandler {
	return &BeneficiaryHandler{base{service: service, logger: logger}}
}

func (h *BeneficiaryHandler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireBeneficiaryAccess("pk", h.logger))

		r.Get("/beneficiary/{pk}/information/", h.handleProfile)
		r.Patch("/beneficiary/{pk}/registration/", h.handleUpdateRegistration)

		r.Post("/beneficiary/{pk}/user-information/", h.handleCreateInformation)
		r.Get("/beneficiary/{pk}/user-information/", h.handleGetInformation)
		r.Put("/beneficiary/{pk}/user-information/", h.handleUpdateInformation)
		r.Delete("/beneficiary/{pk}/user-information/", h.handleDeleteInformation)

		r.Post("/beneficiary/{pk}/address/", h.handleCreateAddress)
		r.Get("/beneficiary/{pk}/address/", h.handleGetAddress)
		r.Put("/beneficiary/{pk}/address/", h.handleUpdateAddress)
		r.Delete("/beneficiary/{pk}/address/", h.handleDeleteAddress)

		r.Post("/beneficiary/{pk}/additional-info/", h.handleCreateAdditionalInfo)
		r.Get("/beneficiary/{pk}/additional-info/", h.handleListAdditionalInfo)
		r.Get("/beneficiary/{pk}/additional-info/{info_pk}/", h.handleGetAdditionalInfo)
		r.Put("/beneficiary/{pk}/additional-info/{info_pk}/", h.handleUpdateAdditionalInfo)
		r.Delete("/beneficiary/{pk}/additional-info/{info_pk}/", h.handleDeleteAdditionalInfo)
	})
}

func (h *BeneficiaryHandler) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	p, err := h.service.Profile(ctx, id)
	if err != nil {
		h.fail(ctx, w, "failed to load beneficiary profile", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *BeneficiaryHandler) handleUpdateRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateRegistrationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	reg, err := h.service.UpdateRegistration(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "failed to update registration", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, reg)
}

func (h *BeneficiaryHandler) handleCreateInformation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.InformationRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	info, err := h.service.CreateInformation(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "failed to create information", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, info)
}

func (h *BeneficiaryHandler) handleGetInformation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	info, err := h.service.Information(ctx, id)
	if err != nil {
		h.fail(ctx, w, "failed to load information", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, info)
}

func (h *BeneficiaryHandler) handleUpdateInformation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.InformationRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	info, err := h.service.UpdateInformation(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "failed to update information", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, info)
}

func (h *BeneficiaryHandler) handleDeleteInformation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	if err := h.service.DeleteInformation(ctx, id); err != nil {
		h.fail(ctx, w, "failed to delete information", err, "beneficiary_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BeneficiaryHandler) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AddressRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	a, err := h.service.CreateAddress(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "failed to create address", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, a)
}

func (h *BeneficiaryHandler) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	a, err := h.service.Address(ctx, id)
	if err != nil {
		h.fail(ctx, w, "failed to load address", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *BeneficiaryHandler) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AddressRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	a, err := h.service.UpdateAddress(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "failed to update address", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *BeneficiaryHandler) handleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	if err := h.service.DeleteAddress(ctx, id); err != nil {
		h.fail(ctx, w, "failed to delete address", err, "beneficiary_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BeneficiaryHandler) handleCreateAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AdditionalInfoRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	a, err := h.service.CreateAdditionalInfo(ctx, id, req, false)
	if err != nil {
		h.fail(ctx, w, "failed to create additional info", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, a)
}

func (h *BeneficiaryHandler) handleListAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _, ok := ids(w, r, "")
	if !ok {
		return
	}
	out, err := h.service.AdditionalInfo(ctx, id, false)
	if err != nil {
		h.fail(ctx, w, "failed to list additional info", err, "beneficiary_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *BeneficiaryHandler) handleGetAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, infoID, ok := ids(w, r, "info_pk")
	if !ok {
		return
	}
	a, err := h.service.AdditionalInfoEntry(ctx, id, infoID)
	if err != nil {
		h.fail(ctx, w, "failed to load additional info", err, "beneficiary_id", id, "info_id", infoID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *BeneficiaryHandler) handleUpdateAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, infoID, ok := ids(w, r, "info_pk")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AdditionalInfoRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	a, err := h.service.UpdateAdditionalInfo(ctx, id, infoID, req, false)
	if err != nil {
		h.fail(ctx, w, "failed to update additional info", err, "beneficiary_id", id, "info_id", infoID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *BeneficiaryHandler) handleDeleteAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, infoID, ok := ids(w, r, "info_pk")
	if !ok {
		return
	}
	if err := h.service.DeleteAdditionalInfo(ctx, id, infoID, false); err != nil {
		h.fail(ctx, w, "failed to delete additional info", err, "beneficiary_id", id, "info_id", infoID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
