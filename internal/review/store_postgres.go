// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package review

import (
	"context"
	"fmt"
	"time"

	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/internal/platform/dberr"
	"github.com/librate/librate/internal/platform/postgres"
)

// # Review Repository

// PostgresReviewRepository implements [ReviewRepository] using pgx.
type PostgresReviewRepository struct {
	pool postgres.PgxPool
}

// NewReviewRepository creates a new PostgreSQL implementation of [ReviewRepository].
func NewReviewRepository(pool postgres.PgxPool) *PostgresReviewRepository {
	return &PostgresReviewRepository{pool: pool}
}

/*
Create persists a new review into social.review.

Description: The table's UNIQUE (titleid, authorid) constraint enforces the
one-review-per-author rule; a violation surfaces as Conflict. A missing
title trips the foreign key, which surfaces as NotFound.

Parameters:
  - context: context.Context
  - review: *Review (ID and CreatedAt are filled in on success)

Returns:
  - error: apperr.Conflict, apperr.NotFound, or execution errors
*/
func (repository *PostgresReviewRepository) Create(context context.Context, review *Review) error {
	const query = `
		INSERT INTO social.review (titleid, authorid, score, text, createdat)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	err := repository.pool.QueryRow(context, query,
		review.TitleID,
		review.AuthorID,
		review.Score,
		review.Text,
		review.CreatedAt,
	).Scan(&review.ID)

	if err != nil {
		return dberr.Wrap(err, "Review")
	}

	return nil
}

/*
FindByID retrieves one review scoped to its parent title, with the author's
username joined in.

Parameters:
  - context: context.Context
  - titleID: int64
  - reviewID: int64

Returns:
  - *Review: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresReviewRepository) FindByID(context context.Context, titleID, reviewID int64) (*Review, error) {
	const query = `
		SELECT r.id, r.titleid, r.authorid, a.username, r.score, r.text, r.createdat
		FROM social.review r
		JOIN users.account a ON a.id = r.authorid
		WHERE r.id = $1 AND r.titleid = $2`

	review := &Review{}
	err := repository.pool.QueryRow(context, query, reviewID, titleID).Scan(
		&review.ID,
		&review.TitleID,
		&review.AuthorID,
		&review.Author,
		&review.Score,
		&review.Text,
		&review.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Review")
	}

	return review, nil
}

/*
ListByTitle returns a page of reviews for a title, newest first.

Parameters:
  - context: context.Context
  - titleID: int64
  - limit: int
  - offset: int

Returns:
  - []*Review: Page of reviews
  - int: Total number of reviews for the title
  - error: Execution errors
*/
func (repository *PostgresReviewRepository) ListByTitle(context context.Context, titleID int64, limit, offset int) ([]*Review, int, error) {
	const countQuery = "SELECT COUNT(*) FROM social.review WHERE titleid = $1"

	var total int
	if err := repository.pool.QueryRow(context, countQuery, titleID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_review_repo_count_failed: %w", err)
	}

	const query = `
		SELECT r.id, r.titleid, r.authorid, a.username, r.score, r.text, r.createdat
		FROM social.review r
		JOIN users.account a ON a.id = r.authorid
		WHERE r.titleid = $1
		ORDER BY r.createdat DESC, r.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(context, query, titleID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_review_repo_list_failed: %w", err)
	}
	defer rows.Close()

	reviews := make([]*Review, 0, limit)
	for rows.Next() {
		review := &Review{}
		err := rows.Scan(
			&review.ID,
			&review.TitleID,
			&review.AuthorID,
			&review.Author,
			&review.Score,
			&review.Text,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_review_repo_scan_failed: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_review_repo_rows_failed: %w", err)
	}

	return reviews, total, nil
}

/*
Update persists changes to a review's score and text.

Parameters:
  - context: context.Context
  - review: *Review

Returns:
  - error: apperr.NotFound when the review is gone, or execution errors
*/
func (repository *PostgresReviewRepository) Update(context context.Context, review *Review) error {
	const query = `
		UPDATE social.review
		SET score = $2, text = $3
		WHERE id = $1`

	tag, err := repository.pool.Exec(context, query, review.ID, review.Score, review.Text)
	if err != nil {
		return fmt.Errorf("postgres_review_repo_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Review")
	}

	return nil
}

/*
Delete removes a review scoped to its parent title; comments cascade.

Parameters:
  - context: context.Context
  - titleID: int64
  - reviewID: int64

Returns:
  - error: apperr.NotFound when no such review exists under the title
*/
func (repository *PostgresReviewRepository) Delete(context context.Context, titleID, reviewID int64) error {
	const query = "DELETE FROM social.review WHERE id = $1 AND titleid = $2"

	tag, err := repository.pool.Exec(context, query, reviewID, titleID)
	if err != nil {
		return fmt.Errorf("postgres_review_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Review")
	}

	return nil
}

// # Comment Repository

// PostgresCommentRepository implements [CommentRepository] using pgx.
type PostgresCommentRepository struct {
	pool postgres.PgxPool
}

// NewCommentRepository creates a new PostgreSQL implementation of [CommentRepository].
func NewCommentRepository(pool postgres.PgxPool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create persists a new comment; a missing review trips the foreign key and
// surfaces as NotFound.
func (repository *PostgresCommentRepository) Create(context context.Context, comment *Comment) error {
	const query = `
		INSERT INTO social.comment (reviewid, authorid, text, createdat)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	err := repository.pool.QueryRow(context, query,
		comment.ReviewID,
		comment.AuthorID,
		comment.Text,
		comment.CreatedAt,
	).Scan(&comment.ID)

	if err != nil {
		return dberr.Wrap(err, "Review")
	}

	return nil
}

// FindByID retrieves one comment scoped to its parent review.
func (repository *PostgresCommentRepository) FindByID(context context.Context, reviewID, commentID int64) (*Comment, error) {
	const query = `
		SELECT c.id, c.reviewid, c.authorid, a.username, c.text, c.createdat
		FROM social.comment c
		JOIN users.account a ON a.id = c.authorid
		WHERE c.id = $1 AND c.reviewid = $2`

	comment := &Comment{}
	err := repository.pool.QueryRow(context, query, commentID, reviewID).Scan(
		&comment.ID,
		&comment.ReviewID,
		&comment.AuthorID,
		&comment.Author,
		&comment.Text,
		&comment.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Comment")
	}

	return comment, nil
}

// ListByReview returns a page of comments for a review, newest first.
func (repository *PostgresCommentRepository) ListByReview(context context.Context, reviewID int64, limit, offset int) ([]*Comment, int, error) {
	const countQuery = "SELECT COUNT(*) FROM social.comment WHERE reviewid = $1"

	var total int
	if err := repository.pool.QueryRow(context, countQuery, reviewID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_comment_repo_count_failed: %w", err)
	}

	const query = `
		SELECT c.id, c.reviewid, c.authorid, a.username, c.text, c.createdat
		FROM social.comment c
		JOIN users.account a ON a.id = c.authorid
		WHERE c.reviewid = $1
		ORDER BY c.createdat DESC, c.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(context, query, reviewID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_comment_repo_list_failed: %w", err)
	}
	defer rows.Close()

	comments := make([]*Comment, 0, limit)
	for rows.Next() {
		comment := &Comment{}
		err := rows.Scan(
			&comment.ID,
			&comment.ReviewID,
			&comment.AuthorID,
			&comment.Author,
			&comment.Text,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_comment_repo_scan_failed: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_comment_repo_rows_failed: %w", err)
	}

	return comments, total, nil
}

// Update persists changes to a comment's text.
func (repository *PostgresCommentRepository) Update(context context.Context, comment *Comment) error {
	const query = "UPDATE social.comment SET text = $2 WHERE id = $1"

	tag, err := repository.pool.Exec(context, query, comment.ID, comment.Text)
	if err != nil {
		return fmt.Errorf("postgres_comment_repo_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Comment")
	}

	return nil
}

// Delete removes a comment scoped to its parent review.
func (repository *PostgresCommentRepository) Delete(context context.Context, reviewID, commentID int64) error {
	const query = "DELETE FROM social.comment WHERE id = $1 AND reviewid = $2"

	tag, err := repository.pool.Exec(context, query, commentID, reviewID)
	if err != nil {
		return fmt.Errorf("postgres_comment_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Comment")
	}

	return nil
}
