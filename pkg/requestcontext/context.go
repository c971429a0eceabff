// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets these values; services read them without importing net/http.
//
//	p, ok := requestcontext.PrincipalFrom(ctx)
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject them directly:
//
//	ctx = requestcontext.WithPrincipal(ctx, requestcontext.Principal{UserID: 1, Role: requestcontext.RoleStaff})
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"
)

type (
	principalKey   struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

var (
	ContextKeyPrincipal   = principalKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// Role is the kind of account behind an access token.
type Role string

const (
	RoleStaff       Role = "staff"
	RoleCharity     Role = "charity"
	RoleBeneficiary Role = "beneficiary"
)

// Principal is the authenticated caller.
// CharityID is set for charity accounts, BeneficiaryID for beneficiary accounts.
type Principal struct {
	UserID        int64
	Role          Role
	CharityID     int64
	BeneficiaryID int64
}

func (p Principal) IsStaff() bool {
	return p.Role == RoleStaff
}

// IsStaffOrCharity reports whether the caller may use charity-platform endpoints.
func (p Principal) IsStaffOrCharity() bool {
	return p.Role == RoleStaff || p.Role == RoleCharity
}

// CanActAsBeneficiary reports whether the caller may read or modify data owned
// by the given beneficiary: staff, any charity, or that beneficiary.
func (p Principal) CanActAsBeneficiary(beneficiaryID int64) bool {
	if p.IsStaffOrCharity() {
		return true
	}
	return p.Role == RoleBeneficiary && p.BeneficiaryID == beneficiaryID
}

// CanManageCharityRecord reports whether the caller may act on a record owned by charityID.
func (p Principal) CanManageCharityRecord(charityID int64) bool {
	if p.IsStaff() {
		return true
	}
	return p.Role == RoleCharity && p.CharityID == charityID
}

// PrincipalFrom retrieves the authenticated caller.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ContextKeyPrincipal).(Principal)
	return p, ok
}

// WithPrincipal injects the authenticated caller into the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, p)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() outside HTTP requests (worker, CLI).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
