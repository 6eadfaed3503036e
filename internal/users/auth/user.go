// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

// Package auth implements the identity store and the confirmation-code
// signup flow.
//
// # Architecture
//
// Registration is passwordless: a signup request stores (or reuses) the user
// record and emails a short-lived numeric code; presenting that code back
// redeems it for a bearer token. The [User] entity here is shared with the
// account and admin packages, which manage the same records through their
// own endpoints.
package auth

import (
	"time"

	"github.com/librate/librate/internal/authz"
)

// User represents a registered member of the Librate platform.
//
// # Rules
//   - Username is unique, matches the [\w.@+-] charset, and is never "me".
//   - Email is unique and validated.
//   - Role changes only through the admin endpoints; self-profile updates
//     silently ignore the role field.
//   - IsSuperuser implies the admin capability regardless of Role.
type User struct {
	ID          string     `json:"-"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Bio         string     `json:"bio"`
	Role        authz.Role `json:"role"`
	IsSuperuser bool       `json:"-"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}

// Actor converts the stored record into an authorization-engine actor.
func (u *User) Actor() *authz.Actor {
	return &authz.Actor{ID: u.ID, Role: u.Role, Superuser: u.IsSuperuser}
}
