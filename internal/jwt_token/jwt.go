// Package jwttoken issues and validates the HS256 access tokens used by all
// three platforms.
package jwttoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "charity/pkg/domain-errors"
)

// Claims is the signed token payload.
type Claims struct {
	UserID        int64  `json:"user_id"`
	Role          string `json:"role"`
	CharityID     int64  `json:"charity_id,omitempty"`
	BeneficiaryID int64  `json:"beneficiary_id,omitempty"`
	jwt.RegisteredClaims
}

// Subject identifies who a token is issued for.
type Subject struct {
	UserID        int64
	Role          string
	CharityID     int64
	BeneficiaryID int64
}

// valid reports whether the role and profile ids agree: charity tokens name
// a charity, beneficiary tokens a beneficiary, staff tokens neither.
func (s Subject) valid() bool {
	if s.UserID <= 0 {
		return false
	}
	switch s.Role {
	case "staff":
		return s.CharityID == 0 && s.BeneficiaryID == 0
	case "charity":
		return s.CharityID > 0 && s.BeneficiaryID == 0
	case "beneficiary":
		return s.BeneficiaryID > 0 && s.CharityID == 0
	}
	return false
}

type JWTService struct {
	signingKey []byte
	issuer     string
	audience   string
	now        func() time.Time
}

func NewJWTService(signingKey, issuer, audience string) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		now:        time.Now,
	}
}

func (s *JWTService) GenerateAccessToken(subject Subject, expiresIn time.Duration) (string, error) {
	if !subject.valid() {
		return "", errors.New("token subject has inconsistent role and profile ids")
	}
	now := s.now()
	claims := Claims{
		UserID:        subject.UserID,
		Role:          subject.Role,
		CharityID:     subject.CharityID,
		BeneficiaryID: subject.BeneficiaryID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

func (s *JWTService) keyFunc(token *jwt.Token) (any, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, jwt.ErrTokenUnverifiable
	}
	return s.signingKey, nil
}

// ValidateToken verifies signature, issuer, audience and expiry, then checks
// that the claimed role matches the profile ids it carries.
func (s *JWTService) ValidateToken(raw string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, s.keyFunc,
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
	case err != nil:
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	if !claims.Subject().valid() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return &claims, nil
}

func (c *Claims) Subject() Subject {
	return Subject{UserID: c.UserID, Role: c.Role, CharityID: c.CharityID, BeneficiaryID: c.BeneficiaryID}
}
