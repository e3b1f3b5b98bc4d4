package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleInventory.Valid())
	assert.True(t, RoleSales.Valid())
	assert.False(t, Role("MANAGER").Valid())
	assert.False(t, Role("").Valid())
}

func TestRole_Can(t *testing.T) {
	capabilities := []Capability{
		CapUsePOS,
		CapManageMembers,
		CapViewCatalog,
		CapEditInventory,
		CapSeeFinancials,
		CapManageStaff,
	}

	tests := []struct {
		role Role
		want map[Capability]bool
	}{
		{
			role: RoleAdmin,
			want: map[Capability]bool{
				CapUsePOS:        true,
				CapManageMembers: true,
				CapViewCatalog:   true,
				CapEditInventory: true,
				CapSeeFinancials: true,
				CapManageStaff:   true,
			},
		},
		{
			role: RoleSales,
			want: map[Capability]bool{
				CapUsePOS:        true,
				CapManageMembers: true,
				CapViewCatalog:   true,
				CapEditInventory: false,
				CapSeeFinancials: false,
				CapManageStaff:   false,
			},
		},
		{
			role: RoleInventory,
			want: map[Capability]bool{
				CapUsePOS:        false,
				CapManageMembers: false,
				CapViewCatalog:   true,
				CapEditInventory: true,
				CapSeeFinancials: false,
				CapManageStaff:   false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			for _, c := range capabilities {
				assert.Equalf(t, tt.want[c], tt.role.Can(c), "capability %v", c)
			}
		})
	}
}
