package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	dErrors "charity/pkg/domain-errors"
	"charity/pkg/platform/httputil"
	"charity/pkg/requestcontext"
)

// JWTValidator defines the interface for validating JWT tokens
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	UserID        int64
	Role          string
	CharityID     int64
	BeneficiaryID int64
}

// RequireAuth validates the bearer token and stores the principal in the context.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := GetRequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Missing or invalid Authorization header"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}

			ctx = requestcontext.WithPrincipal(ctx, requestcontext.Principal{
				UserID:        claims.UserID,
				Role:          requestcontext.Role(claims.Role),
				CharityID:     claims.CharityID,
				BeneficiaryID: claims.BeneficiaryID,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireStaffOrCharity allows staff and charity accounts only.
func RequireStaffOrCharity(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := requestcontext.PrincipalFrom(r.Context())
			if !ok || !p.IsStaffOrCharity() {
				logger.WarnContext(r.Context(), "forbidden - staff or charity required",
					"request_id", GetRequestID(r.Context()),
					"user_id", p.UserID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "You do not have permission to perform this action."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireBeneficiaryAccess allows staff, charities, and the beneficiary named by the URL parameter.
func RequireBeneficiaryAccess(param string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := requestcontext.PrincipalFrom(r.Context())
			beneficiaryID, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
			if err != nil {
				httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "beneficiary not found"))
				return
			}
			if !ok || !p.CanActAsBeneficiary(beneficiaryID) {
				logger.WarnContext(r.Context(), "forbidden - not the beneficiary owner",
					"request_id", GetRequestID(r.Context()),
					"user_id", p.UserID,
					"beneficiary_id", beneficiaryID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "You do not have permission to perform this action."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
