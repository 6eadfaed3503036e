// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/librate/librate/internal/platform/middleware"
	requestutil "github.com/librate/librate/internal/platform/request"
	"github.com/librate/librate/internal/platform/respond"
	"github.com/librate/librate/internal/platform/validate"
	"github.com/librate/librate/pkg/pagination"
)

// Handler implements the category HTTP endpoints.
type Handler struct {
	categoryService *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{categoryService: service}
}

// Routes returns a [chi.Router] for the category endpoints. Reads are
// public; writes sit behind the admin gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/", handler.create)
		r.Delete("/{slug}", handler.delete)
	})

	return router
}

/*
List returns a paginated page of categories.

GET /api/v1/categories?search=&page=&limit=

Response:
  - 200: []Category + meta
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	search := request.URL.Query().Get("search")

	categories, meta, err := handler.categoryService.List(request.Context(), search, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, categories, meta)
}

// createCategoryRequest defines the JSON payload for category creation.
type createCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

/*
Create registers a new category.

POST /api/v1/categories

Response:
  - 201: Category: Created entity
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Slug already exists
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createCategoryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("name", input.Name).
		MaxLen("name", input.Name, 256)
	if input.Slug != "" {
		validator.Slug("slug", input.Slug).
			MaxLen("slug", input.Slug, 50)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.categoryService.Create(request.Context(), CreateInput{
		Name: input.Name,
		Slug: input.Slug,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, category)
}

/*
Delete removes a category by slug.

DELETE /api/v1/categories/{slug}

Response:
  - 204: No Content
  - 404: ErrNotFound: Unknown slug
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	categorySlug := requestutil.Param(request, "slug")

	if err := handler.categoryService.Delete(request.Context(), categorySlug); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
