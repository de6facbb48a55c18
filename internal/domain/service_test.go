package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceTier_Valid(t *testing.T) {
	assert.True(t, TierBasic.Valid())
	assert.True(t, TierPremium.Valid())
	assert.True(t, TierLuxury.Valid())
	assert.False(t, ServiceTier("GOLD").Valid())
}

func TestServiceTier_Rank(t *testing.T) {
	tiers := []ServiceTier{TierLuxury, TierBasic, TierPremium}
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Rank() < tiers[j].Rank()
	})
	assert.Equal(t, []ServiceTier{TierBasic, TierPremium, TierLuxury}, tiers)
}

func TestUserRole_Valid(t *testing.T) {
	assert.True(t, RoleCustomer.Valid())
	assert.True(t, RoleOperator.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, UserRole("SUPERUSER").Valid())
}

func TestUser_CanOwnBusinesses(t *testing.T) {
	assert.False(t, (&User{Role: RoleCustomer}).CanOwnBusinesses())
	assert.True(t, (&User{Role: RoleOperator}).CanOwnBusinesses())
	assert.True(t, (&User{Role: RoleAdmin}).CanOwnBusinesses())
}
