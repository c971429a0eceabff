package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"charity/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*JWTClaims, error) {
	return s.claims, s.err
}

type AuthMiddlewareSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

func (s *AuthMiddlewareSuite) SetupSuite() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *AuthMiddlewareSuite) router(v JWTValidator) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequireAuth(v, s.logger))
	r.Route("/beneficiary/{pk}", func(r chi.Router) {
		r.Use(RequireBeneficiaryAccess("pk", s.logger))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			p, ok := requestcontext.PrincipalFrom(r.Context())
			if !ok {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("X-Role", string(p.Role))
			w.WriteHeader(http.StatusOK)
		})
	})
	r.With(RequireStaffOrCharity(s.logger)).Get("/charity", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func (s *AuthMiddlewareSuite) do(h http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func (s *AuthMiddlewareSuite) TestRequireAuth() {
	s.Run("missing header is 401", func() {
		rr := s.do(s.router(stubValidator{}), "/charity", "")
		s.Equal(http.StatusUnauthorized, rr.Code)
		s.Contains(rr.Body.String(), "unauthorized")
	})

	s.Run("invalid token is 401", func() {
		rr := s.do(s.router(stubValidator{err: errors.New("bad")}), "/charity", "x")
		s.Equal(http.StatusUnauthorized, rr.Code)
	})
}

func (s *AuthMiddlewareSuite) TestBeneficiaryAccess() {
	owner := stubValidator{claims: &JWTClaims{UserID: 5, Role: "beneficiary", BeneficiaryID: 42}}

	s.Run("owner allowed", func() {
		rr := s.do(s.router(owner), "/beneficiary/42/", "t")
		s.Equal(http.StatusOK, rr.Code)
		s.Equal("beneficiary", rr.Header().Get("X-Role"))
	})

	s.Run("other beneficiary forbidden", func() {
		rr := s.do(s.router(owner), "/beneficiary/43/", "t")
		s.Equal(http.StatusForbidden, rr.Code)
	})

	s.Run("charity allowed", func() {
		charity := stubValidator{claims: &JWTClaims{UserID: 6, Role: "charity", CharityID: 1}}
		rr := s.do(s.router(charity), "/beneficiary/43/", "t")
		s.Equal(http.StatusOK, rr.Code)
	})
}

func (s *AuthMiddlewareSuite) TestStaffOrCharity() {
	beneficiary := stubValidator{claims: &JWTClaims{UserID: 5, Role: "beneficiary", BeneficiaryID: 42}}
	rr := s.do(s.router(beneficiary), "/charity", "t")
	s.Equal(http.StatusForbidden, rr.Code)

	staff := stubValidator{claims: &JWTClaims{UserID: 1, Role: "staff"}}
	rr = s.do(s.router(staff), "/charity", "t")
	s.Equal(http.StatusOK, rr.Code)
}

func TestRequestIDPropagation(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.NotEqual(t, "abc-123", seen)
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
