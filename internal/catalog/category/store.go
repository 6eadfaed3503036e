// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package category

import "context"

// Repository defines the data access contract for categories.
type Repository interface {
	// Create persists a new category.
	//
	// Returns [apperr.Conflict] if the slug is already taken.
	Create(ctx context.Context, category *Category) error

	// FindBySlug returns the category with the given slug.
	//
	// Returns [apperr.NotFound] if it does not exist.
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// List returns a page of categories ordered by name, plus the total
	// match count. An empty search matches everything.
	List(ctx context.Context, search string, limit, offset int) ([]*Category, int, error)

	// DeleteBySlug removes the category; titles referencing it fall back to
	// no category via the store's referential rules.
	//
	// Returns [apperr.NotFound] if the slug does not exist.
	DeleteBySlug(ctx context.Context, slug string) error
}
