// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/librate/librate/internal/authz"
	"github.com/librate/librate/internal/platform/middleware"
	requestutil "github.com/librate/librate/internal/platform/request"
	"github.com/librate/librate/internal/platform/respond"
	"github.com/librate/librate/internal/platform/validate"
	"github.com/librate/librate/pkg/pagination"
)

// Handler implements the review and comment HTTP endpoints. It is mounted
// beneath /titles/{titleID}, so every request carries the parent title ID.
type Handler struct {
	reviewService *Service
}

// NewHandler constructs a new review [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{reviewService: service}
}

// Routes returns a [chi.Router] for reviews and their nested comments.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listReviews)
	router.Get("/{reviewID}", handler.getReview)
	router.Get("/{reviewID}/comments", handler.listComments)
	router.Get("/{reviewID}/comments/{commentID}", handler.getComment)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.createReview)
		r.Patch("/{reviewID}", handler.updateReview)
		r.Delete("/{reviewID}", handler.deleteReview)
		r.Post("/{reviewID}/comments", handler.createComment)
		r.Patch("/{reviewID}/comments/{commentID}", handler.updateComment)
		r.Delete("/{reviewID}/comments/{commentID}", handler.deleteComment)
	})

	return router
}

// actor converts the request's claims (if any) into an authorization actor.
func actor(request *http.Request) *authz.Actor {
	return authz.ActorFromClaims(requestutil.Claims(request))
}

// # Review Endpoints

/*
ListReviews returns a paginated page of a title's reviews.

GET /api/v1/titles/{titleID}/reviews

Response:
  - 200: []Review + meta: Newest first
  - 404: ErrNotFound: Unknown title
*/
func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "titleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, meta, err := handler.reviewService.ListReviews(request.Context(), titleID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reviews, meta)
}

// GET /api/v1/titles/{titleID}/reviews/{reviewID}
func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, err := reviewPath(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.reviewService.GetReview(request.Context(), titleID, reviewID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, review)
}

// createReviewRequest defines the JSON payload for posting a review.
type createReviewRequest struct {
	Score int    `json:"score"`
	Text  string `json:"text"`
}

/*
CreateReview posts the caller's review of a title.

POST /api/v1/titles/{titleID}/reviews

Response:
  - 201: Review: Created entity
  - 400: ErrInvalidJSON: Bad input or score out of range
  - 404: ErrNotFound: Unknown title
  - 409: ErrConflict: Caller already reviewed this title
*/
func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "titleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createReviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Score("score", input.Score).
		Required("text", input.Text)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.reviewService.CreateReview(request.Context(), titleID, actor(request), input.Score, input.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, review)
}

// updateReviewRequest defines the JSON payload for editing a review.
type updateReviewRequest struct {
	Score *int    `json:"score"`
	Text  *string `json:"text"`
}

/*
UpdateReview edits an existing review.

PATCH /api/v1/titles/{titleID}/reviews/{reviewID}

Response:
  - 200: Review: Updated entity
  - 403: ErrForbidden: Caller is neither the author nor a moderator
  - 404: ErrNotFound: Unknown title or review
*/
func (handler *Handler) updateReview(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, err := reviewPath(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateReviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if input.Score != nil {
		validator.Score("score", *input.Score)
	}
	if input.Text != nil {
		validator.Required("text", *input.Text)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.reviewService.UpdateReview(request.Context(), titleID, reviewID, actor(request), UpdateReviewInput{
		Score: input.Score,
		Text:  input.Text,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, review)
}

// DELETE /api/v1/titles/{titleID}/reviews/{reviewID}
func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, err := reviewPath(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.reviewService.DeleteReview(request.Context(), titleID, reviewID, actor(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Comment Endpoints

// GET /api/v1/titles/{titleID}/reviews/{reviewID}/comments
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, err := reviewPath(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, meta, err := handler.reviewService.ListComments(request.Context(), titleID, reviewID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, comments, meta)
}

// GET /api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (handler *Handler) getComment(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, commentID, err := commentPath(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.reviewService.GetComment(request.Context(), titleID, reviewID, commentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment)
}

// commentTextRequest defines the JSON payload for posting or editing a comment.
type commentTextRequest struct {
	Text string `json:"text"`
}

/*
CreateComment attaches a comment to a review.

POST /api/v1/titles/{titleID}/reviews/{reviewID}/comments

Response:
  - 201: Comment: Created entity
  - 404: ErrNotFound: Unknown title or review
*/
func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, err := reviewPath(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input commentTextRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Text == "" {
		respond.Error(writer, request, validate.RequiredError("text", "is required"))
		return
	}

	comment, err := handler.reviewService.CreateComment(request.Context(), titleID, reviewID, actor(request), input.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment)
}

// PATCH /api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (handler *Handler) updateComment(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, commentID, err := commentPath(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input commentTextRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Text == "" {
		respond.Error(writer, request, validate.RequiredError("text", "is required"))
		return
	}

	comment, err := handler.reviewService.UpdateComment(request.Context(), titleID, reviewID, commentID, actor(request), input.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment)
}

// DELETE /api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, commentID, err := commentPath(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.reviewService.DeleteComment(request.Context(), titleID, reviewID, commentID, actor(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Path Helpers

// reviewPath extracts the title and review IDs from the URL.
func reviewPath(request *http.Request) (titleID, reviewID int64, err error) {
	if titleID, err = requestutil.IntParam(request, "titleID"); err != nil {
		return 0, 0, err
	}
	if reviewID, err = requestutil.IntParam(request, "reviewID"); err != nil {
		return 0, 0, err
	}
	return titleID, reviewID, nil
}

// commentPath extracts the title, review, and comment IDs from the URL.
func commentPath(request *http.Request) (titleID, reviewID, commentID int64, err error) {
	if titleID, reviewID, err = reviewPath(request); err != nil {
		return 0, 0, 0, err
	}
	if commentID, err = requestutil.IntParam(request, "commentID"); err != nil {
		return 0, 0, 0, err
	}
	return titleID, reviewID, commentID, nil
}
