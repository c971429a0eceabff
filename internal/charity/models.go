// Package charity manages charity profiles and their fields of work.
package charity

import (
	"strings"
	"time"

	dErrors "charity/pkg/domain-errors"
	"charity/pkg/validation"
)

type Charity struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Workfield struct {
	ID          int64     `json:"id"`
	CharityID   int64     `json:"charity"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateProfileRequest is a partial update; nil fields are left alone.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "name may not be blank")
	}
	if r.Phone != nil && *r.Phone != "" && !validation.Phone(*r.Phone) {
		return dErrors.New(dErrors.CodeValidation, "Phone number must be 11 digits and start with 09.")
	}
	if r.Email != nil && *r.Email != "" && !validation.Email(*r.Email) {
		return dErrors.New(dErrors.CodeValidation, "Enter a valid email address.")
	}
	return nil
}

func (r *UpdateProfileRequest) apply(c *Charity, now time.Time) {
	if r.Name != nil {
		c.Name = strings.TrimSpace(*r.Name)
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	c.UpdatedAt = now
}

type CreateWorkfieldRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r *CreateWorkfieldRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if len(r.Title) > 255 {
		return dErrors.New(dErrors.CodeValidation, "title must be at most 255 characters")
	}
	return nil
}
