// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

// Package genre manages the genre taxonomy of the catalog. A title carries
// any number of genres through a join table; the taxonomy itself is flat.
package genre

import "context"

// Genre represents a single genre label.
type Genre struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Repository defines the data access contract for genres.
type Repository interface {
	Create(ctx context.Context, genre *Genre) error
	FindBySlug(ctx context.Context, slug string) (*Genre, error)
	List(ctx context.Context, search string, limit, offset int) ([]*Genre, int, error)
	DeleteBySlug(ctx context.Context, slug string) error
}
