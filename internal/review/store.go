// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package review

import (
	"context"

	"github.com/librate/librate/internal/catalog/title"
)

// ReviewRepository defines the data access contract for reviews.
type ReviewRepository interface {
	// Create persists a new review.
	//
	// Returns [apperr.Conflict] when the author already reviewed the title
	// (the unique constraint is the single source of truth for that rule)
	// and [apperr.NotFound] when the title does not exist.
	Create(ctx context.Context, review *Review) error

	// FindByID returns the review, scoped to its parent title.
	//
	// Returns [apperr.NotFound] if no such review exists under the title.
	FindByID(ctx context.Context, titleID, reviewID int64) (*Review, error)

	// ListByTitle returns a page of reviews, newest first, plus the total.
	ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]*Review, int, error)

	// Update persists changes to score and text.
	Update(ctx context.Context, review *Review) error

	// Delete removes the review; its comments cascade away.
	//
	// Returns [apperr.NotFound] if no such review exists under the title.
	Delete(ctx context.Context, titleID, reviewID int64) error
}

// CommentRepository defines the data access contract for comments.
type CommentRepository interface {
	// Create persists a new comment.
	//
	// Returns [apperr.NotFound] when the review does not exist.
	Create(ctx context.Context, comment *Comment) error

	// FindByID returns the comment, scoped to its parent review.
	FindByID(ctx context.Context, reviewID, commentID int64) (*Comment, error)

	// ListByReview returns a page of comments, newest first, plus the total.
	ListByReview(ctx context.Context, reviewID int64, limit, offset int) ([]*Comment, int, error)

	// Update persists changes to the text.
	Update(ctx context.Context, comment *Comment) error

	// Delete removes the comment.
	Delete(ctx context.Context, reviewID, commentID int64) error
}

// TitleResolver is the slice of the catalog this package needs: existence
// checks for the nested routes. Satisfied by the title store.
type TitleResolver interface {
	FindByID(ctx context.Context, id int64) (*title.Title, error)
}
