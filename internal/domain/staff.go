package domain

import "time"

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleInventory Role = "INVENTORY"
	RoleSales     Role = "SALES"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInventory, RoleSales:
		return true
	}
	return false
}

type Capability string

const (
	CapUsePOS        Capability = "pos"
	CapManageMembers Capability = "members"
	CapViewCatalog   Capability = "catalog"
	CapEditInventory Capability = "inventory"
	CapSeeFinancials Capability = "financials"
	CapManageStaff   Capability = "staff"
)

// Can is the single permission check for the whole API. Handlers ask it
// instead of comparing role strings screen by screen.
func (r Role) Can(c Capability) bool {
	if r == RoleAdmin {
		return true
	}

	switch c {
	case CapUsePOS, CapManageMembers:
		return r == RoleSales
	case CapEditInventory:
		return r == RoleInventory
	case CapViewCatalog:
		return true
	default:
		return false
	}
}

type StaffUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
