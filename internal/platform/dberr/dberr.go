// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Why classify in one place?
//
// The one-review-per-author invariant and all slug uniqueness rules are
// enforced by PostgreSQL constraints, not by application pre-checks. The
// store layer therefore needs a single, reliable translation from SQLSTATE
// codes to the [apperr] taxonomy so concurrent writers surface clean
// CONFLICT responses instead of opaque 500s.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/librate/librate/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The resource name is used in client-facing NOT_FOUND / CONFLICT messages.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Missing row.
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Constraint violations carry a SQLSTATE.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict(resource + " already exists")
		case pgerrcode.ForeignKeyViolation:
			// A dangling reference (e.g. review for a deleted title) reads
			// as a missing resource from the caller's point of view.
			return apperr.NotFound(resource)
		}
	}

	// 3. Unknown query errors become Internal Server Errors.
	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
