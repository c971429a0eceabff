package jwttoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "charity/pkg/domain-errors"
)

func newTestService(now time.Time) *JWTService {
	s := NewJWTService("test-signing-key", "charity-test", "charity-api")
	s.now = func() time.Time { return now }
	return s
}

var beneficiary = Subject{UserID: 11, Role: "beneficiary", BeneficiaryID: 42}

func TestRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	token, err := svc.GenerateAccessToken(beneficiary, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, beneficiary, claims.Subject())
	assert.True(t, now.Add(time.Hour).Equal(claims.ExpiresAt.Time))
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateRejectsInconsistentSubjects(t *testing.T) {
	svc := newTestService(time.Now())
	for name, sub := range map[string]Subject{
		"charity without charity id": {UserID: 1, Role: "charity"},
		"staff with a beneficiary":   {UserID: 1, Role: "staff", BeneficiaryID: 3},
		"unknown role":               {UserID: 1, Role: "admin"},
		"missing user":               {Role: "staff"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.GenerateAccessToken(sub, time.Hour)
			assert.Error(t, err)
		})
	}
}

func TestValidateFailures(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
		t.Helper()
		out, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return out
	}
	registered := jwt.RegisteredClaims{
		Issuer:    "charity-test",
		Audience:  jwt.ClaimStrings{"charity-api"},
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	expired, err := svc.GenerateAccessToken(beneficiary, -time.Minute)
	require.NoError(t, err)
	otherKey, err := NewJWTService("another-key", "charity-test", "charity-api").GenerateAccessToken(beneficiary, time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
		msg   string
	}{
		{"garbage", "not-a-token", "invalid token"},
		{"expired", expired, "token has expired"},
		{"wrong key", otherKey, "invalid token"},
		{"none algorithm", sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType,
			Claims{UserID: 1, Role: "staff", RegisteredClaims: registered}), "invalid token"},
		{"wrong audience", sign(t, jwt.SigningMethodHS256, svc.signingKey,
			Claims{UserID: 1, Role: "staff", RegisteredClaims: jwt.RegisteredClaims{
				Issuer: "charity-test", Audience: jwt.ClaimStrings{"other"}, ExpiresAt: registered.ExpiresAt,
			}}), "invalid token"},
		{"no expiry", sign(t, jwt.SigningMethodHS256, svc.signingKey,
			Claims{UserID: 1, Role: "staff", RegisteredClaims: jwt.RegisteredClaims{
				Issuer: "charity-test", Audience: jwt.ClaimStrings{"charity-api"},
			}}), "invalid token"},
		{"charity role without charity", sign(t, jwt.SigningMethodHS256, svc.signingKey,
			Claims{UserID: 1, Role: "charity", RegisteredClaims: registered}), "invalid token claims"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestValidatorForMiddleware(t *testing.T) {
	svc := newTestService(time.Now())
	token, err := svc.GenerateAccessToken(Subject{UserID: 3, Role: "charity", CharityID: 9}, time.Hour)
	require.NoError(t, err)

	claims, err := svc.Validator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
	assert.Equal(t, int64(9), claims.CharityID)
	assert.Equal(t, "charity", claims.Role)

	_, err = svc.Validator().ValidateToken("x")
	assert.Error(t, err)
}
