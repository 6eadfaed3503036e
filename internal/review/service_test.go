// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package review

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librate/librate/internal/authz"
	"github.com/librate/librate/internal/catalog/title"
	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/pkg/pagination"
)

// # Test Doubles

type reviewKey struct {
	titleID  int64
	authorID string
}

type fakeReviewRepository struct {
	byID    map[int64]*Review
	byOwner map[reviewKey]bool
	nextID  int64
}

func newFakeReviewRepository() *fakeReviewRepository {
	return &fakeReviewRepository{byID: map[int64]*Review{}, byOwner: map[reviewKey]bool{}, nextID: 1}
}

func (f *fakeReviewRepository) Create(_ context.Context, review *Review) error {
	key := reviewKey{titleID: review.TitleID, authorID: review.AuthorID}
	if f.byOwner[key] {
		return apperr.Conflict("Review already exists")
	}
	review.ID = f.nextID
	f.nextID++
	review.Author = review.AuthorID
	f.byID[review.ID] = review
	f.byOwner[key] = true
	return nil
}

func (f *fakeReviewRepository) FindByID(_ context.Context, titleID, reviewID int64) (*Review, error) {
	if review, ok := f.byID[reviewID]; ok && review.TitleID == titleID {
		copied := *review
		return &copied, nil
	}
	return nil, apperr.NotFound("Review")
}

func (f *fakeReviewRepository) ListByTitle(_ context.Context, titleID int64, _, _ int) ([]*Review, int, error) {
	reviews := []*Review{}
	for _, review := range f.byID {
		if review.TitleID == titleID {
			reviews = append(reviews, review)
		}
	}
	return reviews, len(reviews), nil
}

func (f *fakeReviewRepository) Update(_ context.Context, review *Review) error {
	if _, ok := f.byID[review.ID]; !ok {
		return apperr.NotFound("Review")
	}
	f.byID[review.ID] = review
	return nil
}

func (f *fakeReviewRepository) Delete(_ context.Context, titleID, reviewID int64) error {
	review, ok := f.byID[reviewID]
	if !ok || review.TitleID != titleID {
		return apperr.NotFound("Review")
	}
	delete(f.byID, reviewID)
	delete(f.byOwner, reviewKey{titleID: review.TitleID, authorID: review.AuthorID})
	return nil
}

type fakeCommentRepository struct {
	byID   map[int64]*Comment
	nextID int64
}

func newFakeCommentRepository() *fakeCommentRepository {
	return &fakeCommentRepository{byID: map[int64]*Comment{}, nextID: 1}
}

func (f *fakeCommentRepository) Create(_ context.Context, comment *Comment) error {
	comment.ID = f.nextID
	f.nextID++
	comment.Author = comment.AuthorID
	f.byID[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepository) FindByID(_ context.Context, reviewID, commentID int64) (*Comment, error) {
	if comment, ok := f.byID[commentID]; ok && comment.ReviewID == reviewID {
		copied := *comment
		return &copied, nil
	}
	return nil, apperr.NotFound("Comment")
}

func (f *fakeCommentRepository) ListByReview(_ context.Context, reviewID int64, _, _ int) ([]*Comment, int, error) {
	comments := []*Comment{}
	for _, comment := range f.byID {
		if comment.ReviewID == reviewID {
			comments = append(comments, comment)
		}
	}
	return comments, len(comments), nil
}

func (f *fakeCommentRepository) Update(_ context.Context, comment *Comment) error {
	if _, ok := f.byID[comment.ID]; !ok {
		return apperr.NotFound("Comment")
	}
	f.byID[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepository) Delete(_ context.Context, reviewID, commentID int64) error {
	comment, ok := f.byID[commentID]
	if !ok || comment.ReviewID != reviewID {
		return apperr.NotFound("Comment")
	}
	delete(f.byID, commentID)
	return nil
}

type fakeTitleResolver struct {
	existing map[int64]bool
}

func (f *fakeTitleResolver) FindByID(_ context.Context, id int64) (*title.Title, error) {
	if f.existing[id] {
		return &title.Title{ID: id}, nil
	}
	return nil, apperr.NotFound("Title")
}

func newTestService(titleIDs ...int64) (*Service, *fakeReviewRepository, *fakeCommentRepository) {
	reviews := newFakeReviewRepository()
	comments := newFakeCommentRepository()
	titles := &fakeTitleResolver{existing: map[int64]bool{}}
	for _, id := range titleIDs {
		titles.existing[id] = true
	}
	return NewService(reviews, comments, titles), reviews, comments
}

var (
	alice     = &authz.Actor{ID: "alice", Role: authz.RoleUser}
	bob       = &authz.Actor{ID: "bob", Role: authz.RoleUser}
	moderator = &authz.Actor{ID: "mod", Role: authz.RoleModerator}
	admin     = &authz.Actor{ID: "root", Role: authz.RoleAdmin}
)

// # Reviews

func TestService_CreateReview(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		service, _, _ := newTestService(1)

		review, err := service.CreateReview(context.Background(), 1, alice, 8, "Loved it.")

		require.NoError(t, err)
		assert.Equal(t, 8, review.Score)
		assert.Equal(t, "alice", review.AuthorID)
	})

	t.Run("duplicate author and title conflicts", func(t *testing.T) {
		service, _, _ := newTestService(1)

		_, err := service.CreateReview(context.Background(), 1, alice, 8, "First.")
		require.NoError(t, err)

		_, err = service.CreateReview(context.Background(), 1, alice, 3, "Changed my mind.")
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusConflict, appError.HTTPStatus)
	})

	t.Run("same author may review another title", func(t *testing.T) {
		service, _, _ := newTestService(1, 2)

		_, err := service.CreateReview(context.Background(), 1, alice, 8, "One.")
		require.NoError(t, err)
		_, err = service.CreateReview(context.Background(), 2, alice, 9, "Two.")
		require.NoError(t, err)
	})

	t.Run("unknown title", func(t *testing.T) {
		service, _, _ := newTestService()

		_, err := service.CreateReview(context.Background(), 99, alice, 8, "Ghost.")
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		service, _, _ := newTestService(1)

		_, err := service.CreateReview(context.Background(), 1, nil, 8, "Drive-by.")
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusForbidden, appError.HTTPStatus)
	})
}

func TestService_UpdateReview_PermissionGate(t *testing.T) {
	newScore := 2

	testCases := []struct {
		name      string
		actor     *authz.Actor
		wantAllow bool
	}{
		{"author may edit", alice, true},
		{"stranger may not", bob, false},
		{"moderator may edit", moderator, true},
		{"admin may edit", admin, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service, _, _ := newTestService(1)
			created, err := service.CreateReview(context.Background(), 1, alice, 9, "Original.")
			require.NoError(t, err)

			updated, err := service.UpdateReview(context.Background(), 1, created.ID, testCase.actor, UpdateReviewInput{Score: &newScore})

			if testCase.wantAllow {
				require.NoError(t, err)
				assert.Equal(t, 2, updated.Score)
			} else {
				appError := apperr.As(err)
				require.NotNil(t, appError)
				assert.Equal(t, http.StatusForbidden, appError.HTTPStatus)
			}
		})
	}
}

func TestService_DeleteReview_PermissionGate(t *testing.T) {
	testCases := []struct {
		name      string
		actor     *authz.Actor
		wantAllow bool
	}{
		{"author may delete", alice, true},
		{"stranger may not", bob, false},
		{"moderator may delete", moderator, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service, reviews, _ := newTestService(1)
			created, err := service.CreateReview(context.Background(), 1, alice, 9, "Original.")
			require.NoError(t, err)

			err = service.DeleteReview(context.Background(), 1, created.ID, testCase.actor)

			if testCase.wantAllow {
				require.NoError(t, err)
				assert.Empty(t, reviews.byID)
			} else {
				appError := apperr.As(err)
				require.NotNil(t, appError)
				assert.Equal(t, http.StatusForbidden, appError.HTTPStatus)
			}
		})
	}
}

func TestService_ListReviews_UnknownTitle(t *testing.T) {
	service, _, _ := newTestService()

	_, _, err := service.ListReviews(context.Background(), 99, pagination.Params{Page: 1, Limit: 10})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
}

// # Comments

func TestService_CreateComment(t *testing.T) {
	t.Run("happy path without per-author limit", func(t *testing.T) {
		service, _, _ := newTestService(1)
		created, err := service.CreateReview(context.Background(), 1, alice, 9, "Original.")
		require.NoError(t, err)

		_, err = service.CreateComment(context.Background(), 1, created.ID, bob, "Agreed.")
		require.NoError(t, err)
		_, err = service.CreateComment(context.Background(), 1, created.ID, bob, "Still agreed.")
		require.NoError(t, err)
	})

	t.Run("review under a different title is not reachable", func(t *testing.T) {
		service, _, _ := newTestService(1, 2)
		created, err := service.CreateReview(context.Background(), 1, alice, 9, "Original.")
		require.NoError(t, err)

		_, err = service.CreateComment(context.Background(), 2, created.ID, bob, "Misrouted.")

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
	})
}

func TestService_UpdateComment_PermissionGate(t *testing.T) {
	service, _, _ := newTestService(1)
	created, err := service.CreateReview(context.Background(), 1, alice, 9, "Original.")
	require.NoError(t, err)
	comment, err := service.CreateComment(context.Background(), 1, created.ID, bob, "Mine.")
	require.NoError(t, err)

	_, err = service.UpdateComment(context.Background(), 1, created.ID, comment.ID, alice, "Hijack.")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusForbidden, appError.HTTPStatus)

	updated, err := service.UpdateComment(context.Background(), 1, created.ID, comment.ID, moderator, "Moderated.")
	require.NoError(t, err)
	assert.Equal(t, "Moderated.", updated.Text)
}
