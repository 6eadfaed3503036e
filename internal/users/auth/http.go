// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/librate/librate/internal/platform/constants"
	requestutil "github.com/librate/librate/internal/platform/request"
	"github.com/librate/librate/internal/platform/respond"
	"github.com/librate/librate/internal/platform/validate"
)

// Handler implements the anonymous authentication endpoints.
//
// This layer is strictly responsible for transport concerns (status codes,
// headers, JSON); verification of input shapes happens here, identity rules
// live in [Service].
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with the authentication routes.
//
// # Endpoints
//   - POST /signup : Registers (or re-registers) and emails a confirmation code.
//   - POST /token  : Redeems a confirmation code for a bearer token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signup)
	router.Post("/token", handler.issueToken)

	return router
}

// # Request Payloads

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

/*
Signup handles the confirmation-code request for a (username, email) pair.

POST /api/v1/auth/signup

Description: Validates the identity pair, persists the account when new,
rotates the pending code, and triggers the email side effect. The code
itself never appears in the response.

Request:
  - Body: signupRequest (Username, Email)

Response:
  - 200: {username, email}: Echo of the accepted pair
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Pair collides with an existing identity
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		Username(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, constants.MaxUsernameLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		MaxLen(FieldEmail, input.Email, constants.MaxEmailLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Signup(request.Context(), SignupInput{
		Username: input.Username,
		Email:    input.Email,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		FieldUsername: user.Username,
		FieldEmail:    user.Email,
	})
}

/*
IssueToken exchanges a pending confirmation code for a signed bearer token.

POST /api/v1/auth/token

Description: Verifies the code against the stored hash and returns a JWT.
All verification failures collapse into a single generic 404.

Request:
  - Body: tokenRequest (Username, ConfirmationCode)

Response:
  - 200: {token}: Signed bearer token
  - 400: ErrInvalidJSON: Missing fields
  - 404: ErrNotFound: Unknown user, missing code, or code mismatch
*/
func (handler *Handler) issueToken(writer http.ResponseWriter, request *http.Request) {
	var input tokenRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		Required(FieldConfirmationCode, input.ConfirmationCode)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.IssueToken(request.Context(), input.Username, input.ConfirmationCode)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		FieldToken: token,
	})
}
