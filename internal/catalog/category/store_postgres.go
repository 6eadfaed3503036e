// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package category

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

/*
Create persists a new category into catalog.category.

Description: The slug's uniqueness is guarded by the table constraint; a
collision surfaces as a client-safe Conflict.

Parameters:
  - context: context.Context
  - category: *Category

Returns:
  - error: apperr.Conflict on duplicate slug, or execution errors
*/
func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	const query = `
		INSERT INTO catalog.category (name, slug)
		VALUES ($1, $2)
		RETURNING id`

	if err := repository.pool.QueryRow(context, query, category.Name, category.Slug).Scan(&category.ID); err != nil {
		return dberr.Wrap(err, "Category")
	}

	return nil
}

/*
FindBySlug retrieves a category by its unique slug.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - *Category: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Category, error) {
	const query = `
		SELECT id, name, slug
		FROM catalog.category
		WHERE slug = $1`

	category := &Category{}
	if err := repository.pool.QueryRow(context, query, slug).Scan(&category.ID, &category.Name, &category.Slug); err != nil {
		return nil, dberr.Wrap(err, "Category")
	}

	return category, nil
}

/*
List returns a page of categories ordered by name, plus the total count.

Parameters:
  - context: context.Context
  - search: string (substring match on name, empty matches all)
  - limit: int
  - offset: int

Returns:
  - []*Category: Page of categories
  - int: Total number of matches
  - error: Execution errors
*/
func (repository *PostgresRepository) List(context context.Context, search string, limit, offset int) ([]*Category, int, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM catalog.category
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'`

	var total int
	if err := repository.pool.QueryRow(context, countQuery, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_category_repo_count_failed: %w", err)
	}

	const query = `
		SELECT id, name, slug
		FROM catalog.category
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(context, query, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_category_repo_list_failed: %w", err)
	}
	defer rows.Close()

	categories := make([]*Category, 0, limit)
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug); err != nil {
			return nil, 0, fmt.Errorf("postgres_category_repo_scan_failed: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_category_repo_rows_failed: %w", err)
	}

	return categories, total, nil
}

/*
DeleteBySlug removes a category permanently.

Description: Titles pointing at the deleted category keep existing with a
null category (FK ON DELETE SET NULL).

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - error: apperr.NotFound when the slug does not exist
*/
func (repository *PostgresRepository) DeleteBySlug(context context.Context, slug string) error {
	const query = "DELETE FROM catalog.category WHERE slug = $1"

	tag, err := repository.pool.Exec(context, query, slug)
	if err != nil {
		return fmt.Errorf("postgres_category_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}

	return nil
}
