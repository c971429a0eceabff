package jwttoken

import "charity/internal/platform/middleware"

// Validator exposes the service through the middleware's narrow interface.
func (s *JWTService) Validator() middleware.JWTValidator {
	return validator{s}
}

type validator struct {
	service *JWTService
}

func (v validator) ValidateToken(raw string) (*middleware.JWTClaims, error) {
	claims, err := v.service.ValidateToken(raw)
	if err != nil {
		return nil, err
	}
	sub := claims.Subject()
	return &middleware.JWTClaims{
		UserID:        sub.UserID,
		Role:          sub.Role,
		CharityID:     sub.CharityID,
		BeneficiaryID: sub.BeneficiaryID,
	}, nil
}
