// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package title

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/librate/librate/internal/platform/middleware"
	requestutil "github.com/librate/librate/internal/platform/request"
	"github.com/librate/librate/internal/platform/respond"
	"github.com/librate/librate/internal/platform/validate"
	"github.com/librate/librate/pkg/pagination"
)

// Handler implements the title HTTP endpoints.
type Handler struct {
	titleService *Service
}

// NewHandler constructs a new title [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{titleService: service}
}

// Routes returns a [chi.Router] for the title endpoints. The review router
// is mounted beneath each title so review URLs stay scoped to their parent.
func (handler *Handler) Routes(reviewRoutes chi.Router) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{titleID}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/", handler.create)
		r.Patch("/{titleID}", handler.update)
		r.Delete("/{titleID}", handler.delete)
	})

	router.Mount("/{titleID}/reviews", reviewRoutes)

	return router
}

/*
List returns a filtered, paginated page of titles.

GET /api/v1/titles?category=&genre=&name=&year=&page=&limit=

Response:
  - 200: []Title + meta: Titles with computed ratings
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	query := request.URL.Query()

	year, _ := strconv.Atoi(query.Get("year"))
	filter := Filter{
		CategorySlug: query.Get("category"),
		GenreSlug:    query.Get("genre"),
		Name:         query.Get("name"),
		Year:         year,
	}

	titles, meta, err := handler.titleService.List(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, titles, meta)
}

/*
Get returns a single title.

GET /api/v1/titles/{titleID}

Response:
  - 200: Title: Hydrated entity with rating
  - 404: ErrNotFound: Unknown title
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "titleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	title, err := handler.titleService.Get(request.Context(), titleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, title)
}

// createTitleRequest defines the JSON payload for title creation.
type createTitleRequest struct {
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Genres      []string `json:"genres"`
}

/*
Create registers a new title.

POST /api/v1/titles

Response:
  - 201: Title: Created entity (rating starts null)
  - 400: ErrInvalidJSON: Bad input, or year in the future
  - 404: ErrNotFound: Unknown category or genre slug
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createTitleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("name", input.Name).
		MaxLen("name", input.Name, 256).
		YearNotFuture("year", input.Year)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	title, err := handler.titleService.Create(request.Context(), CreateInput{
		Name:         input.Name,
		Year:         input.Year,
		Description:  input.Description,
		CategorySlug: input.Category,
		GenreSlugs:   input.Genres,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, title)
}

// updateTitleRequest defines the JSON payload for title updates.
type updateTitleRequest struct {
	Name        *string   `json:"name"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genres      *[]string `json:"genres"`
}

/*
Update partially updates a title.

PATCH /api/v1/titles/{titleID}

Response:
  - 200: Title: Updated entity
  - 400: ErrInvalidJSON: Bad input, or year in the future
  - 404: ErrNotFound: Unknown title, category, or genre slug
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "titleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateTitleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		validator.Required("name", *input.Name).
			MaxLen("name", *input.Name, 256)
	}
	if input.Year != nil {
		validator.YearNotFuture("year", *input.Year)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	title, err := handler.titleService.Update(request.Context(), titleID, UpdateInput{
		Name:         input.Name,
		Year:         input.Year,
		Description:  input.Description,
		CategorySlug: input.Category,
		GenreSlugs:   input.Genres,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, title)
}

/*
Delete removes a title.

DELETE /api/v1/titles/{titleID}

Response:
  - 204: No Content
  - 404: ErrNotFound: Unknown title
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "titleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.titleService.Delete(request.Context(), titleID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
