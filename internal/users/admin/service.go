// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

/*
Package admin implements administrator-only user management.

It exposes the full CRUD surface over user accounts — including role
assignment, which is the one thing self-service profile updates refuse to
do. Every endpoint is gated behind the admin capability.
*/
package admin

import (
	"context"
	"fmt"

	"github.com/librate/librate/internal/authz"
	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/internal/users/auth"
	"github.com/librate/librate/pkg/pagination"
	"github.com/librate/librate/pkg/uuidv7"
)

// Service orchestrates administrative user management.
type Service struct {
	userRepository auth.UserRepository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(userRepo auth.UserRepository) *Service {
	return &Service{userRepository: userRepo}
}

/*
List returns a page of user accounts ordered by username.

Parameters:
  - context: context.Context
  - search: string (substring match on username/email, empty matches all)
  - params: pagination.Params

Returns:
  - []*auth.User: Page of accounts
  - pagination.Meta: Page metadata with the total match count
  - error: Execution failures
*/
func (service *Service) List(context context.Context, search string, params pagination.Params) ([]*auth.User, pagination.Meta, error) {
	users, total, err := service.userRepository.List(context, search, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("admin_service_list_failed: %w", err)
	}
	return users, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// CreateInput holds the data an administrator supplies for a new account.
type CreateInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Bio       string
	Role      string
}

/*
Create provisions a user account on behalf of an administrator.

Description: Unlike Signup, this path may assign any valid role up front.
The created account holds no confirmation code; the user obtains one by
going through Signup with the same (username, email) pair.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *auth.User: Created entity
  - error: Conflict (identity exists), validation, or storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*auth.User, error) {
	// Verify email uniqueness. Return a client-safe Conflict err.
	if _, err := service.userRepository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Verify username uniqueness. Return a client-safe Conflict err.
	if _, err := service.userRepository.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	role := authz.Role(input.Role)
	if input.Role == "" {
		role = authz.RoleUser
	}

	user := &auth.User{
		ID:        uuidv7.New(),
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Bio:       input.Bio,
		Role:      role,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

/*
Get retrieves a single account by username.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *auth.User: Hydrated account
  - error: apperr.NotFound or execution failures
*/
func (service *Service) Get(context context.Context, username string) (*auth.User, error) {
	return service.userRepository.FindByUsername(context, username)
}

// UpdateInput defines the fields an administrator may change on an account.
// Nil pointers mean "leave unchanged".
type UpdateInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	Role      *string
}

/*
Update applies a partial set of changes to an account, role included.

Parameters:
  - context: context.Context
  - username: string
  - input: UpdateInput

Returns:
  - *auth.User: Updated account
  - error: Not found, Conflict, or storage failures
*/
func (service *Service) Update(context context.Context, username string, input UpdateInput) (*auth.User, error) {
	user, err := service.userRepository.FindByUsername(context, username)
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
	if input.Role != nil {
		user.Role = authz.Role(*input.Role)
	}

	if err := service.userRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("admin_service_update_failed: %w", err)
	}

	return user, nil
}

/*
Delete permanently removes an account by username.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - error: apperr.NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, username string) error {
	return service.userRepository.Delete(context, username)
}
