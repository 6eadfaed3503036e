// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package genre

import (
	"context"
	"fmt"

	"github.com/librate/librate/pkg/pagination"
	"github.com/librate/librate/pkg/slug"
)

// Service orchestrates genre taxonomy operations.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repo Repository) *Service {
	return &Service{repository: repo}
}

// CreateInput holds the data for a new genre. An empty Slug is derived from
// Name.
type CreateInput struct {
	Name string
	Slug string
}

// Create registers a new genre.
func (service *Service) Create(context context.Context, input CreateInput) (*Genre, error) {
	genre := &Genre{
		Name: input.Name,
		Slug: input.Slug,
	}

	if genre.Slug == "" {
		genre.Slug = slug.From(genre.Name)
	}

	if err := service.repository.Create(context, genre); err != nil {
		return nil, err
	}

	return genre, nil
}

// List returns a page of genres.
func (service *Service) List(context context.Context, search string, params pagination.Params) ([]*Genre, pagination.Meta, error) {
	genres, total, err := service.repository.List(context, search, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("genre_service_list_failed: %w", err)
	}
	return genres, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Delete removes a genre by slug.
func (service *Service) Delete(context context.Context, genreSlug string) error {
	return service.repository.DeleteBySlug(context, genreSlug)
}
