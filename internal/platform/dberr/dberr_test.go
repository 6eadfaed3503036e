// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/internal/platform/dberr"
)

/*
TestWrap_Classification maps driver errors onto the apperr taxonomy.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"no_rows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"unique_violation", &pgconn.PgError{Code: "23505"}, "CONFLICT", http.StatusConflict},
		{"fk_violation", &pgconn.PgError{Code: "23503"}, "NOT_FOUND", http.StatusNotFound},
		{"unknown", errors.New("connection reset"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "Review")
			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Review"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, dberr.IsUniqueViolation(pgx.ErrNoRows))
	assert.False(t, dberr.IsUniqueViolation(nil))
}
