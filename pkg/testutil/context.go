package testutil

import (
	"net/http"

	"charity/pkg/requestcontext"
)

// WithPrincipal attaches an authenticated caller to the request context.
// This simulates what the auth middleware would do for authenticated requests.
func WithPrincipal(req *http.Request, p requestcontext.Principal) *http.Request {
	return req.WithContext(requestcontext.WithPrincipal(req.Context(), p))
}

// AsStaff authenticates the request as a staff account.
func AsStaff(req *http.Request) *http.Request {
	return WithPrincipal(req, requestcontext.Principal{UserID: 1, Role: requestcontext.RoleStaff})
}

// AsCharity authenticates the request as the given charity.
func AsCharity(req *http.Request, charityID int64) *http.Request {
	return WithPrincipal(req, requestcontext.Principal{UserID: 100 + charityID, Role: requestcontext.RoleCharity, CharityID: charityID})
}

// AsBeneficiary authenticates the request as the given beneficiary.
func AsBeneficiary(req *http.Request, beneficiaryID int64) *http.Request {
	return WithPrincipal(req, requestcontext.Principal{UserID: 1000 + beneficiaryID, Role: requestcontext.RoleBeneficiary, BeneficiaryID: beneficiaryID})
}
