package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalPermissions(t *testing.T) {
	staff := Principal{UserID: 1, Role: RoleStaff}
	charity := Principal{UserID: 2, Role: RoleCharity, CharityID: 7}
	owner := Principal{UserID: 3, Role: RoleBeneficiary, BeneficiaryID: 42}

	t.Run("beneficiary data", func(t *testing.T) {
		assert.True(t, staff.CanActAsBeneficiary(42))
		assert.True(t, charity.CanActAsBeneficiary(42))
		assert.True(t, owner.CanActAsBeneficiary(42))
		assert.False(t, owner.CanActAsBeneficiary(43))
	})

	t.Run("charity records", func(t *testing.T) {
		assert.True(t, staff.CanManageCharityRecord(7))
		assert.True(t, charity.CanManageCharityRecord(7))
		assert.False(t, charity.CanManageCharityRecord(8))
		assert.False(t, owner.CanManageCharityRecord(7))
	})

	t.Run("charity platform", func(t *testing.T) {
		assert.True(t, staff.IsStaffOrCharity())
		assert.True(t, charity.IsStaffOrCharity())
		assert.False(t, owner.IsStaffOrCharity())
	})
}

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()
	_, ok := PrincipalFrom(ctx)
	assert.False(t, ok)
	assert.Empty(t, RequestID(ctx))

	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx = WithPrincipal(ctx, Principal{UserID: 9, Role: RoleStaff})
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithTime(ctx, fixed)

	p, ok := PrincipalFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(9), p.UserID)
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, fixed, Now(ctx))
}
