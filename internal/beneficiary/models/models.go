// Package models holds beneficiary profile records and their request bodies.
package models

import (
	"time"

	"charity/pkg/calendar"
)

// Registration is the account-level record of a beneficiary.
type Registration struct {
	ID                   int64     `json:"id"`
	UserID               int64     `json:"-"`
	IdentificationNumber string    `json:"identification_number"`
	BeneficiaryID        string    `json:"beneficiary_id"`
	PhoneNumber          *string   `json:"phone_number"`
	Email                *string   `json:"email"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type Information struct {
	ID                  int64          `json:"id"`
	BeneficiaryID       int64          `json:"beneficiary"`
	UnderCharitySupport bool           `json:"under_charity_support"`
	FirstName           string         `json:"first_name"`
	LastName            string         `json:"last_name"`
	Gender              string         `json:"gender"`
	BirthDate           *calendar.Date `json:"birth_date"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func (i *Information) FullName() string {
	if i == nil {
		return ""
	}
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}

type Address struct {
	ID             int64     `json:"id"`
	BeneficiaryID  int64     `json:"beneficiary"`
	ProvinceID     *int64    `json:"province"`
	CityID         *int64    `json:"city"`
	Neighborhood   string    `json:"neighborhood"`
	Street         string    `json:"street"`
	Alley          string    `json:"alley"`
	BuildingNumber string    `json:"building_number"`
	Unit           string    `json:"unit"`
	PostalCode     string    `json:"postal_code"`
	Longitude      *float64  `json:"longitude"`
	Latitude       *float64  `json:"latitude"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AdditionalInfo struct {
	ID                 int64     `json:"id"`
	BeneficiaryID      int64     `json:"beneficiary"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Document           string    `json:"document"`
	IsCreatedByCharity bool      `json:"is_created_by_charity"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Summary is one row of the charity-side beneficiary list.
type Summary struct {
	ID                   int64     `json:"id"`
	IdentificationNumber string    `json:"identification_number"`
	BeneficiaryID        string    `json:"beneficiary_id"`
	PhoneNumber          *string   `json:"phone_number"`
	Email                *string   `json:"email"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	CreatedAt            time.Time `json:"created_at"`
}

// ListFilter restricts the beneficiary list. A non-nil IDs restricts the
// result to those ids, even when empty.
type ListFilter struct {
	IDs    []int64
	Offset int
	Limit  int
}

// Profile is what a beneficiary sees about themselves.
type Profile struct {
	Registration
	Information    *Information     `json:"beneficiary_user_information"`
	Address        *Address         `json:"beneficiary_user_address"`
	AdditionalInfo []AdditionalInfo `json:"beneficiary_user_additional_info"`
}

// AddressDetail is an address with its location names resolved.
type AddressDetail struct {
	Address
	ProvinceName string `json:"province_name"`
	CityName     string `json:"city_name"`
}

// Detail is the charity-side view of a beneficiary.
type Detail struct {
	Registration
	Information        *Information   `json:"beneficiary_user_information"`
	Address            *AddressDetail `json:"beneficiary_user_address"`
	AdditionalInfoList []string       `json:"additional_info_list"`
}
