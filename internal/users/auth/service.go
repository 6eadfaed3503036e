// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package auth

import (
	"context"
	"fmt"

	"github.com/librate/librate/internal/authz"
	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/internal/platform/constants"
	"github.com/librate/librate/internal/platform/ctxutil"
	"github.com/librate/librate/internal/platform/sec"
	"github.com/librate/librate/pkg/uuidv7"
)

// Service implements the signup and token-issuance use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to code generation,
// hashing, or the uniform token-denial response must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	codeRepository CodeRepository
	mailer         Mailer
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with its collaborators.
func NewService(
	userRepo UserRepository,
	codeRepo CodeRepository,
	mailer Mailer,
	tokenProv TokenProvider,
) *Service {
	return &Service{
		userRepository: userRepo,
		codeRepository: codeRepo,
		mailer:         mailer,
		tokenProvider:  tokenProv,
	}
}

// # Signup Flow

// SignupInput holds the data required to request a confirmation code.
type SignupInput struct {
	Username string
	Email    string
}

/*
Signup registers a user (or re-requests a code for an existing one) and
emails a fresh confirmation code.

Description: Get-or-create on the exact (username, email) pair. An existing
username with a different email — or the reverse — is a Conflict. Every call
rotates the pending code: the new bcrypt hash overwrites the previous one in
Redis and restarts the TTL.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *User: The persisted entity (fresh or pre-existing)
  - err: Conflict on identity mismatch, or storage errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*User, error) {
	user, err := service.userRepository.FindByUsername(context, input.Username)

	switch {
	case err == nil:
		// The username exists: only the exact same pair may re-request a code.
		if user.Email != input.Email {
			return nil, apperr.Conflict("Username is already taken")
		}

	default:
		// Fresh username: the email must not belong to someone else.
		if _, emailErr := service.userRepository.FindByEmail(context, input.Email); emailErr == nil {
			return nil, apperr.Conflict("Email is already registered")
		}

		// Time-sortable ID to prevent PG index fragmentation.
		user = &User{
			ID:       uuidv7.New(),
			Username: input.Username,
			Email:    input.Email,
			Role:     authz.RoleUser,
		}

		if err := service.userRepository.Create(context, user); err != nil {
			return nil, err
		}
	}

	// Generate the numeric confirmation code and store only its hash.
	code, err := sec.NumericCode(constants.ConfirmationCodeDigits)
	if err != nil {
		return nil, fmt.Errorf("auth_service_code_generation_failed: %w", err)
	}

	codeHash, err := sec.HashCode(code)
	if err != nil {
		return nil, fmt.Errorf("auth_service_code_hash_failed: %w", err)
	}

	if err := service.codeRepository.Set(context, user.Username, codeHash, constants.ConfirmationCodeTTL); err != nil {
		return nil, fmt.Errorf("auth_service_code_store_failed: %w", err)
	}

	// Email dispatch is best-effort: the stored code stays redeemable even
	// when delivery fails, so the failure is logged and swallowed.
	if err := service.mailer.SendConfirmationCode(context, user.Email, code); err != nil {
		ctxutil.GetLogger(context).Warn("confirmation_email_failed",
			"username", user.Username,
			"error", err.Error(),
		)
	}

	return user, nil
}

// # Token Issuance

/*
IssueToken redeems a confirmation code for a signed bearer token.

Description: Uniform denial — an unknown username, an expired or absent
code, and a mismatched code all produce the identical NotFound response, so
callers cannot enumerate accounts. A matching code is deleted before the
token is returned; each code works exactly once.

Parameters:
  - context: context.Context
  - username: string
  - code: string

Returns:
  - string: Signed JWT
  - err: NotFound on any verification failure
*/
func (service *Service) IssueToken(context context.Context, username, code string) (string, error) {
	denied := apperr.NotFound("User or confirmation code")

	user, err := service.userRepository.FindByUsername(context, username)
	if err != nil {
		return "", denied
	}

	codeHash, err := service.codeRepository.Get(context, username)
	if err != nil {
		return "", denied
	}

	if !sec.CheckCodeHash(code, codeHash) {
		return "", denied
	}

	// Single-use: consume the code before handing out the token. A failed
	// delete is logged but does not block issuance — the TTL still bounds it.
	if err := service.codeRepository.Delete(context, username); err != nil {
		ctxutil.GetLogger(context).Warn("confirmation_code_delete_failed",
			"username", username,
			"error", err.Error(),
		)
	}

	token, err := service.tokenProvider.GenerateAccessToken(
		user.ID,
		user.Username,
		string(user.Role),
		user.IsSuperuser,
		constants.AccessTokenTTL,
	)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return token, nil
}
