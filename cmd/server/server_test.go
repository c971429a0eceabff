package main

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmodels "charity/internal/auth/models"
	"charity/internal/platform/config"
	"charity/pkg/testutil"
)

func bearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// TestInMemoryServer runs the whole router without external services.
func TestInMemoryServer(t *testing.T) {
	cfg := config.Config{
		Server: config.Server{
			Addr:           ":0",
			JWTSigningKey:  "test-signing-key",
			JWTIssuer:      "charity-test",
			TokenTTL:       time.Hour,
			RequestTimeout: 5 * time.Second,
		},
		Documents: config.DocumentConfig{Backend: "disk", Dir: t.TempDir()},
		Lockout:   config.LockoutConfig{Attempts: 2, Window: time.Minute, LockFor: time.Minute},
		CacheTTL:  time.Minute,
	}
	log := slog.New(slog.DiscardHandler)
	ctx := context.Background()

	a, err := build(ctx, cfg, log)
	require.NoError(t, err)
	t.Cleanup(a.close)
	require.NoError(t, a.auth.SeedStaff(ctx, "admin", "staff-pass-1"))
	h := a.router(cfg, log)

	t.Run("health without backing services", func(t *testing.T) {
		rr := testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "status", "ok")
	})

	t.Run("platforms require a token", func(t *testing.T) {
		rr := testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/charity-platform/profile/"))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})

	var charityToken string
	t.Run("charity registers and logs in", func(t *testing.T) {
		body := map[string]any{"username": "helpinghands", "password": "s3cret-pass", "password2": "s3cret-pass"}
		rr := testutil.DoRequest(h, testutil.NewJSONRequest(t, http.MethodPost, "/user-api/charity/register/", body))
		testutil.AssertStatus(t, rr, http.StatusCreated)

		login := map[string]any{"username": "helpinghands", "password": "s3cret-pass"}
		rr = testutil.DoRequest(h, testutil.NewJSONRequest(t, http.MethodPost, "/user-api/charity/login/", login))
		testutil.AssertStatusOK(t, rr)
		tok := testutil.UnmarshalResponse[authmodels.TokenResult](t, rr)
		require.NotEmpty(t, tok.AccessToken)
		assert.NotZero(t, tok.CharityID)
		charityToken = tok.AccessToken

		rr = testutil.DoRequest(h, bearer(testutil.NewRequest(t, http.MethodGet, "/charity-platform/profile/"), charityToken))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "name", "helpinghands")
	})

	t.Run("staff see an empty request list", func(t *testing.T) {
		login := map[string]any{"username": "admin", "password": "staff-pass-1"}
		rr := testutil.DoRequest(h, testutil.NewJSONRequest(t, http.MethodPost, "/user-api/staff/login/", login))
		testutil.AssertStatusOK(t, rr)
		tok := testutil.UnmarshalResponse[authmodels.TokenResult](t, rr)

		rr = testutil.DoRequest(h, bearer(testutil.NewRequest(t, http.MethodGet, "/charity-platform/requests/"), tok.AccessToken))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertPageCount(t, rr, 0, 0)

		rr = testutil.DoRequest(h, bearer(testutil.NewRequest(t, http.MethodGet, "/charity-platform/requests/?page=9223372036854775807"), tok.AccessToken))
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})

	t.Run("uploads skip the JSON content type check", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/charity-platform/documents/", "")
		req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
		rr := testutil.DoRequest(h, bearer(req, charityToken))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorCode(t, rr, "validation_error")
	})

	t.Run("json routes reject other content types", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/charity-platform/workfields/", "title=x")
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := testutil.DoRequest(h, bearer(req, charityToken))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("repeated failed logins are throttled", func(t *testing.T) {
		login := map[string]any{"username": "ghost", "password": "not-it-1"}
		for range 2 {
			rr := testutil.DoRequest(h, testutil.NewJSONRequest(t, http.MethodPost, "/user-api/charity/login/", login))
			testutil.AssertStatus(t, rr, http.StatusUnauthorized)
		}
		rr := testutil.DoRequest(h, testutil.NewJSONRequest(t, http.MethodPost, "/user-api/charity/login/", login))
		testutil.AssertStatusAndError(t, rr, http.StatusTooManyRequests, "rate_limited")
	})
}
