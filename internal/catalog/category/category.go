// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

/*
Package category manages the category taxonomy of the catalog.

A category is a coarse classification a title belongs to (for instance
"Books", "Films", "Music"). Each title references at most one category;
deleting a category detaches its titles rather than removing them.

# Architecture

  - Entity: Category, addressed externally by its unique slug.
  - Writes are admin-only; reads are public. There is no update operation —
    a taxonomy entry is created, listed, or deleted.
*/
package category

// Category represents a single catalog classification.
type Category struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
