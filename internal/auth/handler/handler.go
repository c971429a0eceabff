// Package handler serves the /user-api account endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity/internal/auth/models"
	bmodels "charity/internal/beneficiary/models"
	"charity/internal/platform/middleware"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/platform/httputil"
	"charity/pkg/requestcontext"
)

type Service interface {
	RegisterCharity(ctx context.Context, req *models.RegisterCharityRequest) (*models.Registered, error)
	RegisterBeneficiary(ctx context.Context, req *models.RegisterBeneficiaryRequest) (*models.Registered, error)
	LoginCharity(ctx context.Context, req *models.LoginRequest) (*models.TokenResult, error)
	LoginBeneficiary(ctx context.Context, req *models.LoginRequest) (*models.TokenResult, error)
	LoginStaff(ctx context.Context, req *models.LoginRequest) (*models.TokenResult, error)
	ChangeUsername(ctx context.Context, userID int64, req *models.ChangeUsernameRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID int64, req *models.ChangePasswordRequest) error
}

// RegistrationInfo updates a beneficiary's contact details.
type RegistrationInfo interface {
	UpdateRegistration(ctx context.Context, id int64, req *bmodels.UpdateRegistrationRequest) (*bmodels.Registration, error)
}

type Handler struct {
	service       Service
	registrations RegistrationInfo
	logger        *slog.Logger
}

func New(service Service, registrations RegistrationInfo, logger *slog.Logger) *Handler {
	return &Handler{service: service, registrations: registrations, logger: logger}
}

// Register mounts the public endpoints directly and the rest behind requireAuth.
func (h *Handler) Register(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Post("/charity/register/", h.handleRegisterCharity)
	r.Post("/charity/login/", h.login(h.service.LoginCharity))
	r.Post("/beneficiary/register/", h.handleRegisterBeneficiary)
	r.Post("/beneficiary/login/", h.login(h.service.LoginBeneficiary))
	r.Post("/staff/login/", h.login(h.service.LoginStaff))

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Patch("/charity/username/", h.handleChangeCharityUsername)
		r.Patch("/charity/password/", h.handleChangeCharityPassword)
		r.Patch("/beneficiary/{pk}/password/", h.handleChangeBeneficiaryPassword)
		r.With(middleware.RequireBeneficiaryAccess("pk", h.logger)).
			Put("/beneficiary/{pk}/register-info/", h.handleRegisterInfo)
	})
}

func (h *Handler) handleRegisterCharity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[models.RegisterCharityRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	res, err := h.service.RegisterCharity(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "charity registration failed", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) handleRegisterBeneficiary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[models.RegisterBeneficiaryRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	res, err := h.service.RegisterBeneficiary(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "beneficiary registration failed", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) login(fn func(context.Context, *models.LoginRequest) (*models.TokenResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := middleware.GetRequestID(ctx)
		req, ok := httputil.DecodeAndPrepare[models.LoginRequest](w, r, h.logger, ctx, requestID)
		if !ok {
			return
		}
		res, err := fn(ctx, req)
		if err != nil {
			h.logger.WarnContext(ctx, "login failed",
				"request_id", requestID,
				"path", r.URL.Path,
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, res)
	}
}

func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, role requestcontext.Role) (requestcontext.Principal, bool) {
	p, ok := requestcontext.PrincipalFrom(r.Context())
	if !ok || p.Role != role {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "You do not have permission to perform this action."))
		return p, false
	}
	return p, true
}

func (h *Handler) handleChangeCharityUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	p, ok := h.requireRole(w, r, requestcontext.RoleCharity)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.ChangeUsernameRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	u, err := h.service.ChangeUsername(ctx, p.UserID, req)
	if err != nil {
		h.logger.WarnContext(ctx, "username change failed", "request_id", requestID, "user_id", p.UserID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"username": u.Username})
}

func (h *Handler) handleChangeCharityPassword(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requireRole(w, r, requestcontext.RoleCharity)
	if !ok {
		return
	}
	h.changePassword(w, r, p.UserID)
}

// handleChangeBeneficiaryPassword is open to the owning beneficiary only.
func (h *Handler) handleChangeBeneficiaryPassword(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requireRole(w, r, requestcontext.RoleBeneficiary)
	if !ok {
		return
	}
	id, err := httputil.PathID(r, "pk")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if id != p.BeneficiaryID {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "You do not have permission to perform this action."))
		return
	}
	h.changePassword(w, r, p.UserID)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request, userID int64) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[models.ChangePasswordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.service.ChangePassword(ctx, userID, req); err != nil {
		h.logger.WarnContext(ctx, "password change failed", "request_id", requestID, "user_id", userID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully."})
}

func (h *Handler) handleRegisterInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	id, err := httputil.PathID(r, "pk")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[bmodels.UpdateRegistrationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	reg, err := h.registrations.UpdateRegistration(ctx, id, req)
	if err != nil {
		h.logger.WarnContext(ctx, "register info failed", "request_id", requestID, "beneficiary_id", id, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, reg)
}
