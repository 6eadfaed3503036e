// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/librate/librate/internal/authz"
	"github.com/librate/librate/internal/platform/apperr"
)

func newMockRepository(t *testing.T) (*PostgresUserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewUserRepository(mock), mock
}

func TestPostgresUserRepository_Create(t *testing.T) {
	repository, mock := newMockRepository(t)
	defer mock.Close()
	ctx := context.Background()

	user := &User{
		ID:       "0192f0c1-0000-7000-8000-000000000001",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     authz.RoleUser,
	}

	mock.ExpectExec(`INSERT INTO users\.account`).
		WithArgs(user.ID, user.Username, user.Email, user.Role, user.IsSuperuser,
			user.FirstName, user.LastName, user.Bio, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repository.Create(ctx, user))

	// A duplicate username/email surfaces as a client-safe Conflict.
	mock.ExpectExec(`INSERT INTO users\.account`).
		WithArgs(user.ID, user.Username, user.Email, user.Role, user.IsSuperuser,
			user.FirstName, user.LastName, user.Bio, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := repository.Create(ctx, user)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Equal(t, http.StatusConflict, appError.HTTPStatus)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_FindByUsername(t *testing.T) {
	repository, mock := newMockRepository(t)
	defer mock.Close()
	ctx := context.Background()
	now := time.Now()

	columns := []string{"id", "username", "email", "role", "issuperuser",
		"firstname", "lastname", "bio", "createdat", "updatedat"}

	mock.ExpectQuery(`SELECT (.+) FROM users\.account\s+WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("id-1", "alice", "alice@example.com", authz.RoleUser, false, "", "", "", now, now))
	user, err := repository.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, authz.RoleUser, user.Role)

	mock.ExpectQuery(`SELECT (.+) FROM users\.account\s+WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)
	_, err = repository.FindByUsername(ctx, "ghost")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Equal(t, http.StatusNotFound, appError.HTTPStatus)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Delete(t *testing.T) {
	repository, mock := newMockRepository(t)
	defer mock.Close()
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM users\.account WHERE username = \$1`).
		WithArgs("alice").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repository.Delete(ctx, "alice"))

	mock.ExpectExec(`DELETE FROM users\.account WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	err := repository.Delete(ctx, "ghost")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Equal(t, http.StatusNotFound, appError.HTTPStatus)

	require.NoError(t, mock.ExpectationsWereMet())
}
