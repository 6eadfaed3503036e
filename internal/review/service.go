// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package review

import (
	"context"
	"fmt"

	"github.com/librate/librate/internal/authz"
	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/pkg/pagination"
)

// Service orchestrates review and comment use cases.
//
// Object-level permissions are decided here through [authz.Can]: the author
// of a piece of content, moderators, and admins may change it; everyone
// else reads only.
type Service struct {
	reviewRepository  ReviewRepository
	commentRepository CommentRepository
	titleResolver     TitleResolver
}

// NewService constructs a new [Service] with its collaborators.
func NewService(
	reviewRepo ReviewRepository,
	commentRepo CommentRepository,
	titleResolver TitleResolver,
) *Service {
	return &Service{
		reviewRepository:  reviewRepo,
		commentRepository: commentRepo,
		titleResolver:     titleResolver,
	}
}

// requireTitle confirms the parent title exists before any nested work.
func (service *Service) requireTitle(context context.Context, titleID int64) error {
	_, err := service.titleResolver.FindByID(context, titleID)
	return err
}

// # Reviews

/*
CreateReview records the actor's scored opinion about a title.

Description: The duplicate-review rule is NOT pre-checked: the insert runs
unconditionally and the store's unique constraint decides, so two racing
requests from the same author still produce exactly one review.

Parameters:
  - context: context.Context
  - titleID: int64
  - actor: *authz.Actor (the authenticated author)
  - score: int (1-10, validated at the transport edge)
  - text: string

Returns:
  - *Review: Created entity
  - err: NotFound (title), Conflict (already reviewed), or Forbidden
*/
func (service *Service) CreateReview(context context.Context, titleID int64, actor *authz.Actor, score int, text string) (*Review, error) {
	if !authz.Can(actor, authz.ActionCreate, authz.Resource{Kind: authz.KindReview}) {
		return nil, apperr.Forbidden("Authentication required to post reviews")
	}

	if err := service.requireTitle(context, titleID); err != nil {
		return nil, err
	}

	review := &Review{
		TitleID:  titleID,
		AuthorID: actor.ID,
		Score:    score,
		Text:     text,
	}

	if err := service.reviewRepository.Create(context, review); err != nil {
		return nil, err
	}

	return service.reviewRepository.FindByID(context, titleID, review.ID)
}

// GetReview returns one review under a title.
func (service *Service) GetReview(context context.Context, titleID, reviewID int64) (*Review, error) {
	if err := service.requireTitle(context, titleID); err != nil {
		return nil, err
	}
	return service.reviewRepository.FindByID(context, titleID, reviewID)
}

/*
ListReviews returns a page of a title's reviews, newest first.

Parameters:
  - context: context.Context
  - titleID: int64
  - params: pagination.Params

Returns:
  - []*Review: Page of reviews
  - pagination.Meta: Page metadata
  - err: NotFound (title) or execution failures
*/
func (service *Service) ListReviews(context context.Context, titleID int64, params pagination.Params) ([]*Review, pagination.Meta, error) {
	if err := service.requireTitle(context, titleID); err != nil {
		return nil, pagination.Meta{}, err
	}

	reviews, total, err := service.reviewRepository.ListByTitle(context, titleID, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("review_service_list_failed: %w", err)
	}

	return reviews, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// UpdateReviewInput defines the fields a review PATCH may change.
type UpdateReviewInput struct {
	Score *int
	Text  *string
}

/*
UpdateReview applies changes to an existing review.

Description: Gated by [authz.Can] — author, moderator, or admin. The
one-review-per-author rule is not re-checked: an update never changes the
(author, title) pair.

Parameters:
  - context: context.Context
  - titleID: int64
  - reviewID: int64
  - actor: *authz.Actor
  - input: UpdateReviewInput

Returns:
  - *Review: Updated entity
  - err: NotFound, Forbidden, or storage failures
*/
func (service *Service) UpdateReview(context context.Context, titleID, reviewID int64, actor *authz.Actor, input UpdateReviewInput) (*Review, error) {
	review, err := service.GetReview(context, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if !authz.Can(actor, authz.ActionModify, authz.Resource{Kind: authz.KindReview, OwnerID: review.AuthorID}) {
		return nil, apperr.Forbidden("Only the author or a moderator may edit this review")
	}

	if input.Score != nil {
		review.Score = *input.Score
	}
	if input.Text != nil {
		review.Text = *input.Text
	}

	if err := service.reviewRepository.Update(context, review); err != nil {
		return nil, err
	}

	return review, nil
}

/*
DeleteReview removes a review and, through the store, its comments.

Parameters:
  - context: context.Context
  - titleID: int64
  - reviewID: int64
  - actor: *authz.Actor

Returns:
  - err: NotFound, Forbidden, or storage failures
*/
func (service *Service) DeleteReview(context context.Context, titleID, reviewID int64, actor *authz.Actor) error {
	review, err := service.GetReview(context, titleID, reviewID)
	if err != nil {
		return err
	}

	if !authz.Can(actor, authz.ActionDelete, authz.Resource{Kind: authz.KindReview, OwnerID: review.AuthorID}) {
		return apperr.Forbidden("Only the author or a moderator may delete this review")
	}

	return service.reviewRepository.Delete(context, titleID, reviewID)
}

// # Comments

/*
CreateComment attaches a comment to a review.

Parameters:
  - context: context.Context
  - titleID: int64
  - reviewID: int64
  - actor: *authz.Actor
  - text: string

Returns:
  - *Comment: Created entity
  - err: NotFound (title or review), Forbidden, or storage failures
*/
func (service *Service) CreateComment(context context.Context, titleID, reviewID int64, actor *authz.Actor, text string) (*Comment, error) {
	if !authz.Can(actor, authz.ActionCreate, authz.Resource{Kind: authz.KindComment}) {
		return nil, apperr.Forbidden("Authentication required to post comments")
	}

	// Resolve the parent chain so a review under a different title 404s.
	if _, err := service.GetReview(context, titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &Comment{
		ReviewID: reviewID,
		AuthorID: actor.ID,
		Text:     text,
	}

	if err := service.commentRepository.Create(context, comment); err != nil {
		return nil, err
	}

	return service.commentRepository.FindByID(context, reviewID, comment.ID)
}

// GetComment returns one comment under a review.
func (service *Service) GetComment(context context.Context, titleID, reviewID, commentID int64) (*Comment, error) {
	if _, err := service.GetReview(context, titleID, reviewID); err != nil {
		return nil, err
	}
	return service.commentRepository.FindByID(context, reviewID, commentID)
}

// ListComments returns a page of a review's comments, newest first.
func (service *Service) ListComments(context context.Context, titleID, reviewID int64, params pagination.Params) ([]*Comment, pagination.Meta, error) {
	if _, err := service.GetReview(context, titleID, reviewID); err != nil {
		return nil, pagination.Meta{}, err
	}

	comments, total, err := service.commentRepository.ListByReview(context, reviewID, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("comment_service_list_failed: %w", err)
	}

	return comments, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
UpdateComment changes the text of an existing comment.

Parameters:
  - context: context.Context
  - titleID: int64
  - reviewID: int64
  - commentID: int64
  - actor: *authz.Actor
  - text: string

Returns:
  - *Comment: Updated entity
  - err: NotFound, Forbidden, or storage failures
*/
func (service *Service) UpdateComment(context context.Context, titleID, reviewID, commentID int64, actor *authz.Actor, text string) (*Comment, error) {
	comment, err := service.GetComment(context, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if !authz.Can(actor, authz.ActionModify, authz.Resource{Kind: authz.KindComment, OwnerID: comment.AuthorID}) {
		return nil, apperr.Forbidden("Only the author or a moderator may edit this comment")
	}

	comment.Text = text
	if err := service.commentRepository.Update(context, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment removes a comment.
func (service *Service) DeleteComment(context context.Context, titleID, reviewID, commentID int64, actor *authz.Actor) error {
	comment, err := service.GetComment(context, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if !authz.Can(actor, authz.ActionDelete, authz.Resource{Kind: authz.KindComment, OwnerID: comment.AuthorID}) {
		return apperr.Forbidden("Only the author or a moderator may delete this comment")
	}

	return service.commentRepository.Delete(context, reviewID, commentID)
}
