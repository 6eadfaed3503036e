// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/librate/librate/internal/platform/middleware"
	requestutil "github.com/librate/librate/internal/platform/request"
	"github.com/librate/librate/internal/platform/respond"
	"github.com/librate/librate/internal/platform/validate"
	"github.com/librate/librate/pkg/pagination"
)

// Handler implements the genre HTTP endpoints.
type Handler struct {
	genreService *Service
}

// NewHandler constructs a new genre [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{genreService: service}
}

// Routes returns a [chi.Router] for the genre endpoints.
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

// GET /api/v1/genres?search=&page=&limit=
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	search := request.URL.Query().Get("search")

	genres, meta, err := handler.genreService.List(request.Context(), search, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, genres, meta)
}

type createGenreRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// POST /api/v1/genres
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createGenreRequest
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

	genre, err := handler.genreService.Create(request.Context(), CreateInput{
		Name: input.Name,
		Slug: input.Slug,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, genre)
}

// DELETE /api/v1/genres/{slug}
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	genreSlug := requestutil.Param(request, "slug")

	if err := handler.genreService.Delete(request.Context(), genreSlug); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
