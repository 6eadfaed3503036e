// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package auth

import (
	"context"
	"time"
)

// UserRepository defines the data access contract for user accounts.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresUserRepository]).
// The account and admin packages reuse this same contract rather than
// defining their own, so there is exactly one way to touch user rows.
type UserRepository interface {
	// Create persists a brand-new user account.
	//
	// Returns [apperr.Conflict] if the username or email is already taken.
	Create(ctx context.Context, user *User) error

	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername returns the account with the given username.
	//
	// Returns [apperr.NotFound] if the username is available.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmail returns the account with the given email.
	//
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update persists changes to mutable fields (names, bio, email, role).
	//
	// Returns [apperr.Conflict] if a unique constraint (email/username) fails.
	Update(ctx context.Context, user *User) error

	// Delete permanently removes the account with the given username.
	// Reviews and comments authored by the user are cascade-deleted by
	// the store's referential rules.
	//
	// Returns [apperr.NotFound] if the username does not exist.
	Delete(ctx context.Context, username string) error

	// List returns a page of accounts ordered by username, plus the total
	// match count. An empty search matches everything.
	List(ctx context.Context, search string, limit, offset int) ([]*User, int, error)
}

// CodeRepository stores pending confirmation codes.
//
// # Lifecycle
//
// A code is written (hashed) on every signup request, overwriting any prior
// code for that username, expires on its own after the configured TTL, and
// is deleted on first successful token issuance — codes are single-use.
type CodeRepository interface {
	// Set stores the bcrypt hash of a confirmation code for a username.
	Set(ctx context.Context, username, codeHash string, ttl time.Duration) error

	// Get retrieves the stored hash for a username.
	//
	// Returns [apperr.NotFound] if no code is pending or it has expired.
	Get(ctx context.Context, username string) (string, error)

	// Delete removes the pending code after successful use.
	Delete(ctx context.Context, username string) error
}

// Mailer is the outbound email collaborator.
//
// Failures are logged and swallowed by the service: the persisted code
// remains redeemable even when the email never arrives.
type Mailer interface {
	SendConfirmationCode(ctx context.Context, email, code string) error
}

// TokenProvider defines the contract for generating bearer tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, username, role string, superuser bool, timeToLive time.Duration) (string, error)
}
