// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package authz

// # User Roles

// Role represents the authorization level granted to an account.
//
// It is the single enumerated role type for the whole application; no other
// package compares raw role strings.
type Role string

const (
	// Unrestricted system access
	RoleAdmin Role = "admin"

	// Can moderate any review or comment, but cannot touch the catalog
	RoleModerator Role = "moderator"

	// Default role for standard registered users
	RoleUser Role = "user"
)

// Valid reports whether r is one of the known roles.
func Valid(r Role) bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleModerator:
		return 20
	case RoleUser:
		return 10
	default:
		return 0
	}
}
