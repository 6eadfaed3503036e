// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package review

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/librate/librate/internal/platform/apperr"
)

func newMockReviewRepository(t *testing.T) (*PostgresReviewRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewReviewRepository(mock), mock
}

func TestPostgresReviewRepository_Create_ConstraintMapping(t *testing.T) {
	repository, mock := newMockReviewRepository(t)
	defer mock.Close()
	ctx := context.Background()

	review := &Review{TitleID: 7, AuthorID: "id-1", Score: 8, Text: "Solid."}

	// Happy path returns the generated ID.
	mock.ExpectQuery(`INSERT INTO social\.review`).
		WithArgs(review.TitleID, review.AuthorID, review.Score, review.Text, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	require.NoError(t, repository.Create(ctx, review))
	require.Equal(t, int64(1), review.ID)

	// The unique (titleid, authorid) constraint maps to 409.
	mock.ExpectQuery(`INSERT INTO social\.review`).
		WithArgs(review.TitleID, review.AuthorID, review.Score, review.Text, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := repository.Create(ctx, review)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Equal(t, http.StatusConflict, appError.HTTPStatus)

	// A missing title trips the foreign key and maps to 404.
	mock.ExpectQuery(`INSERT INTO social\.review`).
		WithArgs(review.TitleID, review.AuthorID, review.Score, review.Text, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	err = repository.Create(ctx, review)
	appError = apperr.As(err)
	require.NotNil(t, appError)
	require.Equal(t, http.StatusNotFound, appError.HTTPStatus)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_Delete_Scoped(t *testing.T) {
	repository, mock := newMockReviewRepository(t)
	defer mock.Close()
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM social\.review WHERE id = \$1 AND titleid = \$2`).
		WithArgs(int64(5), int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repository.Delete(ctx, 7, 5))

	// The right review ID under the wrong title must not match.
	mock.ExpectExec(`DELETE FROM social\.review WHERE id = \$1 AND titleid = \$2`).
		WithArgs(int64(5), int64(8)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	err := repository.Delete(ctx, 8, 5)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Equal(t, http.StatusNotFound, appError.HTTPStatus)

	require.NoError(t, mock.ExpectationsWereMet())
}
