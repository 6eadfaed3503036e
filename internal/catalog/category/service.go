// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package category

import (
	"context"
	"fmt"

	"github.com/librate/librate/pkg/pagination"
	"github.com/librate/librate/pkg/slug"
)

// Service orchestrates category taxonomy operations.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repo Repository) *Service {
	return &Service{repository: repo}
}

// CreateInput holds the data for a new category. An empty Slug is derived
// from Name.
type CreateInput struct {
	Name string
	Slug string
}

/*
Create registers a new category.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Category: Created entity
  - error: Conflict on duplicate slug, or storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Category, error) {
	category := &Category{
		Name: input.Name,
		Slug: input.Slug,
	}

	if category.Slug == "" {
		category.Slug = slug.From(category.Name)
	}

	if err := service.repository.Create(context, category); err != nil {
		return nil, err
	}

	return category, nil
}

/*
List returns a page of categories.

Parameters:
  - context: context.Context
  - search: string
  - params: pagination.Params

Returns:
  - []*Category: Page of categories
  - pagination.Meta: Page metadata
  - error: Execution failures
*/
func (service *Service) List(context context.Context, search string, params pagination.Params) ([]*Category, pagination.Meta, error) {
	categories, total, err := service.repository.List(context, search, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("category_service_list_failed: %w", err)
	}
	return categories, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Delete removes a category by slug.
func (service *Service) Delete(context context.Context, categorySlug string) error {
	return service.repository.DeleteBySlug(context, categorySlug)
}
