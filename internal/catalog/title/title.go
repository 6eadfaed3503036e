// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

/*
Package title manages catalog titles — the works that reviews attach to.

# Architecture

  - Entity: Title, referencing one optional category and any number of
    genres (taxonomies are addressed by slug at the API edge).
  - Rating: the arithmetic mean of all review scores for the title,
    recomputed by the store on every read and never persisted. A title with
    no reviews carries a null rating, which is distinct from any numeric
    value.
  - Writes are admin-only; reads are public.
*/
package title

import (
	"github.com/librate/librate/internal/catalog/category"
	"github.com/librate/librate/internal/catalog/genre"
)

// Title represents a reviewable catalog entry.
type Title struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Year        int                `json:"year"`
	Description string             `json:"description"`
	Rating      *float64           `json:"rating"`
	Category    *category.Category `json:"category"`
	Genres      []*genre.Genre     `json:"genres"`
}

// CategoryID returns the referenced category's ID, or nil when detached.
func (t *Title) CategoryID() *int64 {
	if t.Category == nil {
		return nil
	}
	return &t.Category.ID
}

// Filter narrows a title listing. Zero values mean "no constraint".
type Filter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         int
}
