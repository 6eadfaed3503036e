// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package category

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librate/librate/internal/platform/apperr"
)

type fakeRepository struct {
	bySlug map[string]*Category
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bySlug: map[string]*Category{}}
}

func (f *fakeRepository) Create(_ context.Context, category *Category) error {
	if _, ok := f.bySlug[category.Slug]; ok {
		return apperr.Conflict("Category already exists")
	}
	category.ID = int64(len(f.bySlug) + 1)
	f.bySlug[category.Slug] = category
	return nil
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*Category, error) {
	if category, ok := f.bySlug[slug]; ok {
		return category, nil
	}
	return nil, apperr.NotFound("Category")
}

func (f *fakeRepository) List(_ context.Context, _ string, _, _ int) ([]*Category, int, error) {
	categories := make([]*Category, 0, len(f.bySlug))
	for _, category := range f.bySlug {
		categories = append(categories, category)
	}
	return categories, len(categories), nil
}

func (f *fakeRepository) DeleteBySlug(_ context.Context, slug string) error {
	if _, ok := f.bySlug[slug]; !ok {
		return apperr.NotFound("Category")
	}
	delete(f.bySlug, slug)
	return nil
}

func TestService_Create_DerivesSlugFromName(t *testing.T) {
	service := NewService(newFakeRepository())

	category, err := service.Create(context.Background(), CreateInput{Name: "Science Fiction"})

	require.NoError(t, err)
	assert.Equal(t, "science-fiction", category.Slug)
}

func TestService_Create_KeepsExplicitSlug(t *testing.T) {
	service := NewService(newFakeRepository())

	category, err := service.Create(context.Background(), CreateInput{Name: "Books", Slug: "reading"})

	require.NoError(t, err)
	assert.Equal(t, "reading", category.Slug)
}

func TestService_Create_DuplicateSlugConflicts(t *testing.T) {
	service := NewService(newFakeRepository())

	_, err := service.Create(context.Background(), CreateInput{Name: "Books"})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), CreateInput{Name: "Books"})
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusConflict, appError.HTTPStatus)
}
