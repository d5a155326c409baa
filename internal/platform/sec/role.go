// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Roles

// UserRole is the authorization level carried in a dashboard token.
type UserRole string

const (
	// RoleAdmin sees the platform-wide admin dashboard.
	RoleAdmin UserRole = "admin"

	// RoleVendor sees their own vendor dashboard.
	RoleVendor UserRole = "vendor"

	// RoleBuyer is a registered buyer without dashboard access.
	RoleBuyer UserRole = "buyer"
)

// ParseRole maps a string to a known [UserRole]. ok is false for unknown roles.
func ParseRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.level() > 0
}

// AtLeast checks if the role meets or exceeds the target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleVendor:
		return 20
	case RoleBuyer:
		return 10
	default:
		return 0
	}
}
