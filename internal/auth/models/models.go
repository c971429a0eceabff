// Package models holds account records and the bodies of the account endpoints.
package models

import (
	"strings"
	"time"

	dErrors "charity/pkg/domain-errors"
	"charity/pkg/requestcontext"
	"charity/pkg/validation"
)

// User is a login account. Charity and beneficiary profiles hang off it.
type User struct {
	ID           int64               `json:"id"`
	Username     string              `json:"username"`
	PasswordHash string              `json:"-"`
	Role         requestcontext.Role `json:"role"`
	IsActive     bool                `json:"is_active"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TokenResult is returned by both login endpoints.
type TokenResult struct {
	AccessToken   string `json:"access_token"`
	TokenType     string `json:"token_type"`
	ExpiresIn     int    `json:"expires_in"`
	UserID        int64  `json:"user_id"`
	CharityID     int64  `json:"charity_id,omitempty"`
	BeneficiaryID int64  `json:"beneficiary_id,omitempty"`
}

// Registered is the 201 body of the register endpoints.
type Registered struct {
	User    RegisteredUser `json:"user"`
	Message string         `json:"message"`
}

type RegisteredUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type RegisterCharityRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (r *RegisterCharityRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return dErrors.New(dErrors.CodeValidation, "username: This field is required.")
	}
	if r.Password != r.Password2 {
		return dErrors.New(dErrors.CodeValidation, "password: Password fields didn't match.")
	}
	if msg := validation.Password(r.Password); msg != "" {
		return dErrors.New(dErrors.CodeValidation, "password: "+msg)
	}
	return nil
}

// RegisterBeneficiaryRequest carries the identification number as username and
// the beneficiary id as the initial password.
type RegisterBeneficiaryRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *RegisterBeneficiaryRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Password = strings.TrimSpace(r.Password)
	if !validation.IdentificationNumber(r.Username) {
		return dErrors.New(dErrors.CodeValidation, "username: Length of identification number must be 10 digits")
	}
	if n := len([]rune(r.Password)); n == 0 || n > 10 {
		return dErrors.New(dErrors.CodeValidation, "password: beneficiary id must be between 1 and 10 characters")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" || r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "Must include 'username' and 'password'.")
	}
	return nil
}

type ChangeUsernameRequest struct {
	Username string `json:"username"`
}

func (r *ChangeUsernameRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return dErrors.New(dErrors.CodeValidation, "username: This field is required.")
	}
	return nil
}

// ChangePasswordRequest is shared by charities and beneficiaries.
// NewPassword2 is checked only when present.
type ChangePasswordRequest struct {
	OldPassword  string `json:"old_password"`
	NewPassword  string `json:"new_password"`
	NewPassword2 string `json:"new_password2"`
}

func (r *ChangePasswordRequest) Validate() error {
	if r.OldPassword == "" {
		return dErrors.New(dErrors.CodeValidation, "old_password: This field is required.")
	}
	if r.NewPassword2 != "" && r.NewPassword != r.NewPassword2 {
		return dErrors.New(dErrors.CodeValidation, "new_password: Password fields didn't match.")
	}
	if msg := validation.Password(r.NewPassword); msg != "" {
		return dErrors.New(dErrors.CodeValidation, "new_password: "+msg)
	}
	return nil
}
