// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package genre

import (
	"context"
	"fmt"

	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/internal/platform/dberr"
	"github.com/librate/librate/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool postgres.PgxPool
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(pool postgres.PgxPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create persists a new genre. A duplicate slug surfaces as Conflict.
func (repository *PostgresRepository) Create(context context.Context, genre *Genre) error {
	const query = `
		INSERT INTO catalog.genre (name, slug)
		VALUES ($1, $2)
		RETURNING id`

	if err := repository.pool.QueryRow(context, query, genre.Name, genre.Slug).Scan(&genre.ID); err != nil {
		return dberr.Wrap(err, "Genre")
	}

	return nil
}

// FindBySlug retrieves a genre by its unique slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Genre, error) {
	const query = `
		SELECT id, name, slug
		FROM catalog.genre
		WHERE slug = $1`

	genre := &Genre{}
	if err := repository.pool.QueryRow(context, query, slug).Scan(&genre.ID, &genre.Name, &genre.Slug); err != nil {
		return nil, dberr.Wrap(err, "Genre")
	}

	return genre, nil
}

// List returns a page of genres ordered by name, plus the total count.
func (repository *PostgresRepository) List(context context.Context, search string, limit, offset int) ([]*Genre, int, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM catalog.genre
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'`

	var total int
	if err := repository.pool.QueryRow(context, countQuery, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_genre_repo_count_failed: %w", err)
	}

	const query = `
		SELECT id, name, slug
		FROM catalog.genre
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(context, query, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_genre_repo_list_failed: %w", err)
	}
	defer rows.Close()

	genres := make([]*Genre, 0, limit)
	for rows.Next() {
		genre := &Genre{}
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.Slug); err != nil {
			return nil, 0, fmt.Errorf("postgres_genre_repo_scan_failed: %w", err)
		}
		genres = append(genres, genre)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_genre_repo_rows_failed: %w", err)
	}

	return genres, total, nil
}

// DeleteBySlug removes a genre permanently; join rows cascade away.
func (repository *PostgresRepository) DeleteBySlug(context context.Context, slug string) error {
	const query = "DELETE FROM catalog.genre WHERE slug = $1"

	tag, err := repository.pool.Exec(context, query, slug)
	if err != nil {
		return fmt.Errorf("postgres_genre_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Genre")
	}

	return nil
}
