// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package account

import (
	"context"
	"fmt"

	"github.com/librate/librate/internal/users/auth"
)

// Service orchestrates self-profile reads and updates.
type Service struct {
	userRepository auth.UserRepository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(userRepo auth.UserRepository) *Service {
	return &Service{userRepository: userRepo}
}

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfileInput defines the mutable subset of profile fields.
//
// Role is accepted in the transport payload for compatibility but is never
// applied: self-service role escalation is not a thing. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	Role      *string
}

/*
UpdateProfile applies a partial set of changes to the user's own account.

Description: Fetches the existing state, overlays the provided fields, and
persists. The stored role is carried over untouched regardless of what the
input claims.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated profile
  - error: Not found, Conflict (email taken), or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	// input.Role is deliberately not read: the persisted role stays whatever
	// the admin endpoints last set it to.

	if err := service.userRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_profile_failed: %w", err)
	}

	return user, nil
}
