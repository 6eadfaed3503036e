// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package title

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/librate/librate/internal/catalog/category"
	"github.com/librate/librate/internal/catalog/genre"
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

// titleSelect is the shared projection: the title row, its (possibly null)
// category, and the live-aggregated rating. AVG returns NULL for a title
// with no reviews, which scans into a nil pointer.
const titleSelect = `
	SELECT t.id, t.name, t.year, COALESCE(t.description, ''),
	       c.id, c.name, c.slug,
	       (SELECT AVG(r.score)::float8 FROM social.review r WHERE r.titleid = t.id) AS rating
	FROM catalog.title t
	LEFT JOIN catalog.category c ON c.id = t.categoryid`

// scanTitle hydrates one projected row, folding the nullable category
// columns into an optional Category value.
func scanTitle(row interface{ Scan(...any) error }) (*Title, error) {
	title := &Title{}
	var categoryID *int64
	var categoryName, categorySlug *string

	err := row.Scan(
		&title.ID,
		&title.Name,
		&title.Year,
		&title.Description,
		&categoryID,
		&categoryName,
		&categorySlug,
		&title.Rating,
	)
	if err != nil {
		return nil, err
	}

	if categoryID != nil {
		title.Category = &category.Category{ID: *categoryID, Name: *categoryName, Slug: *categorySlug}
	}

	return title, nil
}

/*
Create persists a new title and its genre links in one transaction.

Parameters:
  - context: context.Context
  - title: *Title (ID is filled in on success)
  - categoryID: *int64 (nil for no category)
  - genreIDs: []int64

Returns:
  - error: Execution or commit failures
*/
func (repository *PostgresRepository) Create(context context.Context, title *Title, categoryID *int64, genreIDs []int64) error {
	transaction, err := repository.pool.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("postgres_title_repo_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	const query = `
		INSERT INTO catalog.title (name, year, description, categoryid)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id`

	if err := transaction.QueryRow(context, query, title.Name, title.Year, title.Description, categoryID).Scan(&title.ID); err != nil {
		return dberr.Wrap(err, "Title")
	}

	if err := repository.replaceGenres(context, transaction, title.ID, genreIDs); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_title_repo_commit_failed: %w", err)
	}

	return nil
}

/*
FindByID returns one title with category, genres, and rating.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Title: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Title, error) {
	query := titleSelect + " WHERE t.id = $1"

	title, err := scanTitle(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Title")
	}

	if err := repository.loadGenres(context, []*Title{title}); err != nil {
		return nil, err
	}

	return title, nil
}

/*
List returns a filtered page of titles plus the total match count.

Description: Builds the WHERE clause dynamically from the filter's non-zero
fields; genre filtering goes through an EXISTS on the join table so a title
matches when any of its genres carries the slug.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Title: Page of titles, id ascending
  - int: Total number of matches
  - error: Execution errors
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Title, int, error) {
	var conditions []string
	var args []any

	if filter.CategorySlug != "" {
		args = append(args, filter.CategorySlug)
		conditions = append(conditions, fmt.Sprintf("c.slug = $%d", len(args)))
	}
	if filter.GenreSlug != "" {
		args = append(args, filter.GenreSlug)
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (
				SELECT 1 FROM catalog.titlegenre tg
				JOIN catalog.genre g ON g.id = tg.genreid
				WHERE tg.titleid = t.id AND g.slug = $%d)`, len(args)))
	}
	if filter.Name != "" {
		args = append(args, filter.Name)
		conditions = append(conditions, fmt.Sprintf("t.name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("t.year = $%d", len(args)))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `
		SELECT COUNT(*)
		FROM catalog.title t
		LEFT JOIN catalog.category c ON c.id = t.categoryid` + whereClause

	var total int
	if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_title_repo_count_failed: %w", err)
	}

	pageQuery := fmt.Sprintf("%s%s ORDER BY t.id LIMIT $%d OFFSET $%d",
		titleSelect, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_title_repo_list_failed: %w", err)
	}
	defer rows.Close()

	titles := make([]*Title, 0, limit)
	for rows.Next() {
		title, err := scanTitle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_title_repo_scan_failed: %w", err)
		}
		titles = append(titles, title)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_title_repo_rows_failed: %w", err)
	}

	if err := repository.loadGenres(context, titles); err != nil {
		return nil, 0, err
	}

	return titles, total, nil
}

/*
Update rewrites the title's scalar fields and, optionally, its genre set.

Parameters:
  - context: context.Context
  - title: *Title (merged state to persist)
  - categoryID: *int64
  - genreIDs: []int64
  - replaceGenres: bool

Returns:
  - error: apperr.NotFound if the title does not exist
*/
func (repository *PostgresRepository) Update(context context.Context, title *Title, categoryID *int64, genreIDs []int64, replaceGenres bool) error {
	transaction, err := repository.pool.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("postgres_title_repo_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	const query = `
		UPDATE catalog.title
		SET name = $2, year = $3, description = NULLIF($4, ''), categoryid = $5
		WHERE id = $1`

	tag, err := transaction.Exec(context, query, title.ID, title.Name, title.Year, title.Description, categoryID)
	if err != nil {
		return dberr.Wrap(err, "Title")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Title")
	}

	if replaceGenres {
		if err := repository.replaceGenres(context, transaction, title.ID, genreIDs); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_title_repo_commit_failed: %w", err)
	}

	return nil
}

/*
Delete removes a title permanently; reviews, comments, and genre links
cascade away through the referential rules.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: apperr.NotFound when the title does not exist
*/
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	const query = "DELETE FROM catalog.title WHERE id = $1"

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_title_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Title")
	}

	return nil
}

// replaceGenres swaps the full genre set of a title inside the caller's
// transaction: clear, then batch-insert.
func (repository *PostgresRepository) replaceGenres(context context.Context, transaction pgx.Tx, titleID int64, genreIDs []int64) error {
	if _, err := transaction.Exec(context, "DELETE FROM catalog.titlegenre WHERE titleid = $1", titleID); err != nil {
		return fmt.Errorf("postgres_title_repo_clear_genres_failed: %w", err)
	}

	if len(genreIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue("INSERT INTO catalog.titlegenre (titleid, genreid) VALUES ($1, $2)", titleID, genreID)
	}

	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return fmt.Errorf("postgres_title_repo_insert_genres_failed: %w", err)
	}

	return nil
}

// loadGenres hydrates the Genres slice for every title in one round trip.
func (repository *PostgresRepository) loadGenres(context context.Context, titles []*Title) error {
	if len(titles) == 0 {
		return nil
	}

	byID := make(map[int64]*Title, len(titles))
	titleIDs := make([]int64, 0, len(titles))
	for _, title := range titles {
		title.Genres = []*genre.Genre{}
		byID[title.ID] = title
		titleIDs = append(titleIDs, title.ID)
	}

	const query = `
		SELECT tg.titleid, g.id, g.name, g.slug
		FROM catalog.titlegenre tg
		JOIN catalog.genre g ON g.id = tg.genreid
		WHERE tg.titleid = ANY($1)
		ORDER BY g.name`

	rows, err := repository.pool.Query(context, query, titleIDs)
	if err != nil {
		return fmt.Errorf("postgres_title_repo_load_genres_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var titleID int64
		linked := &genre.Genre{}
		if err := rows.Scan(&titleID, &linked.ID, &linked.Name, &linked.Slug); err != nil {
			return fmt.Errorf("postgres_title_repo_genre_scan_failed: %w", err)
		}
		if title, ok := byID[titleID]; ok {
			title.Genres = append(title.Genres, linked)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("postgres_title_repo_genre_rows_failed: %w", err)
	}

	return nil
}
