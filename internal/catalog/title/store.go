// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package title

import "context"

// Repository defines the data access contract for titles.
//
// Category and genre references arrive pre-resolved as IDs; slug resolution
// belongs to the service, which owns the NotFound semantics for unknown
// taxonomy entries.
type Repository interface {
	// Create persists a new title and its genre links atomically.
	Create(ctx context.Context, title *Title, categoryID *int64, genreIDs []int64) error

	// FindByID returns the title with its category, genres, and the
	// computed rating.
	//
	// Returns [apperr.NotFound] if the title does not exist.
	FindByID(ctx context.Context, id int64) (*Title, error)

	// List returns a filtered page of titles plus the total match count.
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Title, int, error)

	// Update rewrites the title's scalar fields and category reference.
	// When replaceGenres is true the genre set is replaced with genreIDs.
	//
	// Returns [apperr.NotFound] if the title does not exist.
	Update(ctx context.Context, title *Title, categoryID *int64, genreIDs []int64, replaceGenres bool) error

	// Delete removes the title; reviews and genre links cascade away.
	//
	// Returns [apperr.NotFound] if the title does not exist.
	Delete(ctx context.Context, id int64) error
}
