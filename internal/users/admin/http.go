// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/librate/librate/internal/authz"
	"github.com/librate/librate/internal/platform/constants"
	requestutil "github.com/librate/librate/internal/platform/request"
	"github.com/librate/librate/internal/platform/respond"
	"github.com/librate/librate/internal/platform/validate"
	"github.com/librate/librate/pkg/pagination"
)

// Handler implements the administrator-only user management endpoints.
type Handler struct {
	adminService *Service
}

// NewHandler constructs a new admin [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{adminService: service}
}

// Routes returns a [chi.Router] for user administration. The caller mounts
// it behind RequireAdmin.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{username}", handler.get)
	router.Patch("/{username}", handler.update)
	router.Delete("/{username}", handler.delete)

	return router
}

/*
List returns a paginated page of user accounts.

GET /api/v1/users?search=&page=&limit=

Response:
  - 200: []User + meta: Page of accounts
  - 403: ErrForbidden: Caller is not an administrator
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	search := request.URL.Query().Get("search")

	users, meta, err := handler.adminService.List(request.Context(), search, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, meta)
}

// createUserRequest defines the JSON payload for admin account creation.
type createUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

/*
Create provisions a new account, optionally with an elevated role.

POST /api/v1/users

Response:
  - 201: User: Created account
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Username or email already exists
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createUserRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("username", input.Username).
		Username("username", input.Username).
		MaxLen("username", input.Username, constants.MaxUsernameLength).
		Required("email", input.Email).
		Email("email", input.Email).
		MaxLen("email", input.Email, constants.MaxEmailLength)
	if input.Role != "" {
		validator.OneOf("role", input.Role,
			string(authz.RoleUser), string(authz.RoleModerator), string(authz.RoleAdmin))
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.adminService.Create(request.Context(), CreateInput{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Bio:       input.Bio,
		Role:      input.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
Get returns a single account by username.

GET /api/v1/users/{username}

Response:
  - 200: User: Hydrated account
  - 404: ErrNotFound: Unknown username
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	username := requestutil.Param(request, "username")

	user, err := handler.adminService.Get(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// updateUserRequest defines the JSON payload for admin account updates.
type updateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

/*
Update partially updates an account, role included.

PATCH /api/v1/users/{username}

Response:
  - 200: User: Updated account
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 404: ErrNotFound: Unknown username
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	username := requestutil.Param(request, "username")

	var input updateUserRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if input.Email != nil {
		validator.Required("email", *input.Email).
			Email("email", *input.Email).
			MaxLen("email", *input.Email, constants.MaxEmailLength)
	}
	if input.Role != nil {
		validator.OneOf("role", *input.Role,
			string(authz.RoleUser), string(authz.RoleModerator), string(authz.RoleAdmin))
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.adminService.Update(request.Context(), username, UpdateInput{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Bio:       input.Bio,
		Role:      input.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
Delete permanently removes an account.

DELETE /api/v1/users/{username}

Response:
  - 204: No Content: Account removed
  - 404: ErrNotFound: Unknown username
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	username := requestutil.Param(request, "username")

	if err := handler.adminService.Delete(request.Context(), username); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
