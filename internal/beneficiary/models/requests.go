package models

import (
	"math"
	"strings"

	"charity/pkg/calendar"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/validation"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// UpdateRegistrationRequest sets the beneficiary's contact details.
// Omitted fields keep their value; an empty string clears it.
type UpdateRegistrationRequest struct {
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
}

func (r *UpdateRegistrationRequest) Validate() error {
	if r.PhoneNumber != nil {
		v := strings.TrimSpace(*r.PhoneNumber)
		r.PhoneNumber = &v
		if v != "" && !validation.Phone(v) {
			return dErrors.New(dErrors.CodeValidation, "Phone number must be 11 digits starting with '09'")
		}
	}
	if r.Email != nil {
		v := strings.TrimSpace(*r.Email)
		r.Email = &v
		if v != "" && !validation.Email(v) {
			return dErrors.New(dErrors.CodeValidation, "Enter a valid email address.")
		}
	}
	return nil
}

// Apply merges the request into reg and checks that a contact method remains.
func (r *UpdateRegistrationRequest) Apply(reg *Registration) error {
	if r.PhoneNumber != nil {
		reg.PhoneNumber = optional(*r.PhoneNumber)
	}
	if r.Email != nil {
		reg.Email = optional(*r.Email)
	}
	if reg.PhoneNumber == nil && reg.Email == nil {
		return dErrors.New(dErrors.CodeValidation, "Either phone number or email must be provided")
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type InformationRequest struct {
	UnderCharitySupport bool           `json:"under_charity_support"`
	FirstName           string         `json:"first_name"`
	LastName            string         `json:"last_name"`
	Gender              string         `json:"gender"`
	BirthDate           *calendar.Date `json:"birth_date"`
}

func (r *InformationRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	if r.FirstName != "" && !validation.PersianName(r.FirstName) {
		return dErrors.New(dErrors.CodeValidation, "first_name: This field must contain only Farsi (Persian) characters.")
	}
	if r.LastName != "" && !validation.PersianName(r.LastName) {
		return dErrors.New(dErrors.CodeValidation, "last_name: This field must contain only Farsi (Persian) characters.")
	}
	switch r.Gender {
	case "", GenderMale, GenderFemale:
	default:
		return dErrors.New(dErrors.CodeValidation, `gender: "`+r.Gender+`" is not a valid choice.`)
	}
	return nil
}

// CheckBirthDate rejects dates that are not in the past relative to now.
func (r *InformationRequest) CheckBirthDate(now calendar.Date) error {
	if r.BirthDate != nil && !r.BirthDate.Time.Before(now.Time) {
		return dErrors.New(dErrors.CodeValidation, "birth_date must be in the past")
	}
	return nil
}

func (r *InformationRequest) ApplyTo(info *Information) {
	info.UnderCharitySupport = r.UnderCharitySupport
	info.FirstName = r.FirstName
	info.LastName = r.LastName
	info.Gender = r.Gender
	info.BirthDate = r.BirthDate
}

type AddressRequest struct {
	ProvinceID     *int64   `json:"province"`
	CityID         *int64   `json:"city"`
	Neighborhood   string   `json:"neighborhood"`
	Street         string   `json:"street"`
	Alley          string   `json:"alley"`
	BuildingNumber string   `json:"building_number"`
	Unit           string   `json:"unit"`
	PostalCode     string   `json:"postal_code"`
	Longitude      *float64 `json:"longitude"`
	Latitude       *float64 `json:"latitude"`
}

func (r *AddressRequest) Validate() error {
	if (r.ProvinceID == nil) != (r.CityID == nil) {
		return dErrors.New(dErrors.CodeValidation, "province and city must be given together")
	}
	if r.PostalCode != "" && !validation.PostalCode(r.PostalCode) {
		return dErrors.New(dErrors.CodeValidation, "Postal code must be 10 digits")
	}
	if r.Longitude != nil && (math.IsNaN(*r.Longitude) || *r.Longitude < -180 || *r.Longitude > 180) {
		return dErrors.New(dErrors.CodeValidation, "Longitude must be between -180 and 180 degrees")
	}
	if r.Latitude != nil && (math.IsNaN(*r.Latitude) || *r.Latitude < -90 || *r.Latitude > 90) {
		return dErrors.New(dErrors.CodeValidation, "Latitude must be between -90 and 90 degrees")
	}
	return nil
}

func (r *AddressRequest) ApplyTo(a *Address) {
	a.ProvinceID = r.ProvinceID
	a.CityID = r.CityID
	a.Neighborhood = r.Neighborhood
	a.Street = r.Street
	a.Alley = r.Alley
	a.BuildingNumber = r.BuildingNumber
	a.Unit = r.Unit
	a.PostalCode = r.PostalCode
	a.Longitude = r.Longitude
	a.Latitude = r.Latitude
}

type AdditionalInfoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Document    string `json:"document"`
}

func (r *AdditionalInfoRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title: This field is required.")
	}
	if len([]rune(r.Title)) > 255 {
		return dErrors.New(dErrors.CodeValidation, "title: Ensure this field has no more than 255 characters.")
	}
	return nil
}
