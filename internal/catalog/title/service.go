// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package title

import (
	"context"
	"fmt"

	"github.com/librate/librate/internal/catalog/category"
	"github.com/librate/librate/internal/catalog/genre"
	"github.com/librate/librate/pkg/pagination"
)

// Service orchestrates title catalog operations.
//
// Taxonomy slugs are resolved here against the category and genre
// repositories, so an unknown slug fails with NotFound before any title
// row is touched.
type Service struct {
	titleRepository    Repository
	categoryRepository category.Repository
	genreRepository    genre.Repository
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(
	titleRepo Repository,
	categoryRepo category.Repository,
	genreRepo genre.Repository,
) *Service {
	return &Service{
		titleRepository:    titleRepo,
		categoryRepository: categoryRepo,
		genreRepository:    genreRepo,
	}
}

// resolveCategory maps a category slug to its ID. An empty slug means "no
// category" and resolves to nil.
func (service *Service) resolveCategory(context context.Context, categorySlug string) (*int64, error) {
	if categorySlug == "" {
		return nil, nil
	}
	resolved, err := service.categoryRepository.FindBySlug(context, categorySlug)
	if err != nil {
		return nil, err
	}
	return &resolved.ID, nil
}

// resolveGenres maps genre slugs to IDs, failing on the first unknown slug.
func (service *Service) resolveGenres(context context.Context, genreSlugs []string) ([]int64, error) {
	genreIDs := make([]int64, 0, len(genreSlugs))
	for _, genreSlug := range genreSlugs {
		resolved, err := service.genreRepository.FindBySlug(context, genreSlug)
		if err != nil {
			return nil, err
		}
		genreIDs = append(genreIDs, resolved.ID)
	}
	return genreIDs, nil
}

// CreateInput holds the data for a new title.
type CreateInput struct {
	Name         string
	Year         int
	Description  string
	CategorySlug string
	GenreSlugs   []string
}

/*
Create registers a new title in the catalog.

Description: Resolves the referenced taxonomy slugs, persists the title with
its genre links, and re-reads the stored entity so the response carries the
hydrated category, genres, and (null) rating.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Title: Created entity
  - error: NotFound for unknown slugs, or storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Title, error) {
	categoryID, err := service.resolveCategory(context, input.CategorySlug)
	if err != nil {
		return nil, err
	}

	genreIDs, err := service.resolveGenres(context, input.GenreSlugs)
	if err != nil {
		return nil, err
	}

	title := &Title{
		Name:        input.Name,
		Year:        input.Year,
		Description: input.Description,
	}

	if err := service.titleRepository.Create(context, title, categoryID, genreIDs); err != nil {
		return nil, fmt.Errorf("title_service_create_failed: %w", err)
	}

	return service.titleRepository.FindByID(context, title.ID)
}

// Get returns one title with its computed rating.
func (service *Service) Get(context context.Context, id int64) (*Title, error) {
	return service.titleRepository.FindByID(context, id)
}

/*
List returns a filtered page of titles.

Parameters:
  - context: context.Context
  - filter: Filter
  - params: pagination.Params

Returns:
  - []*Title: Page of titles
  - pagination.Meta: Page metadata
  - error: Execution failures
*/
func (service *Service) List(context context.Context, filter Filter, params pagination.Params) ([]*Title, pagination.Meta, error) {
	titles, total, err := service.titleRepository.List(context, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("title_service_list_failed: %w", err)
	}
	return titles, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// UpdateInput defines the fields a PATCH may change. Nil pointers mean
// "leave unchanged"; a non-nil GenreSlugs replaces the whole genre set.
type UpdateInput struct {
	Name         *string
	Year         *int
	Description  *string
	CategorySlug *string
	GenreSlugs   *[]string
}

/*
Update applies a partial set of changes to a title.

Description: Fetches the current state, overlays the provided fields, and
persists. A provided empty CategorySlug detaches the category; a provided
genre list replaces the previous set entirely.

Parameters:
  - context: context.Context
  - id: int64
  - input: UpdateInput

Returns:
  - *Title: Updated entity, re-read with fresh rating
  - error: NotFound (title or slug), or storage errors
*/
func (service *Service) Update(context context.Context, id int64, input UpdateInput) (*Title, error) {
	title, err := service.titleRepository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		title.Name = *input.Name
	}
	if input.Year != nil {
		title.Year = *input.Year
	}
	if input.Description != nil {
		title.Description = *input.Description
	}

	categoryID := title.CategoryID()
	if input.CategorySlug != nil {
		categoryID, err = service.resolveCategory(context, *input.CategorySlug)
		if err != nil {
			return nil, err
		}
	}

	var genreIDs []int64
	replaceGenres := input.GenreSlugs != nil
	if replaceGenres {
		genreIDs, err = service.resolveGenres(context, *input.GenreSlugs)
		if err != nil {
			return nil, err
		}
	}

	if err := service.titleRepository.Update(context, title, categoryID, genreIDs, replaceGenres); err != nil {
		return nil, err
	}

	return service.titleRepository.FindByID(context, id)
}

// Delete removes a title by ID.
func (service *Service) Delete(context context.Context, id int64) error {
	return service.titleRepository.Delete(context, id)
}
