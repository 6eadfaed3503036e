// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librate/librate/internal/authz"
	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/internal/users/auth"
)

type fakeUserRepository struct {
	byID map[string]*auth.User
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := f.byID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range f.byID {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) Update(_ context.Context, user *auth.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepository) Delete(_ context.Context, username string) error {
	for id, user := range f.byID {
		if user.Username == username {
			delete(f.byID, id)
			return nil
		}
	}
	return apperr.NotFound("User")
}

func (f *fakeUserRepository) List(_ context.Context, _ string, _, _ int) ([]*auth.User, int, error) {
	return nil, 0, nil
}

func strPtr(s string) *string { return &s }

func TestService_UpdateProfile_AppliesSubset(t *testing.T) {
	repo := &fakeUserRepository{byID: map[string]*auth.User{
		"id-1": {ID: "id-1", Username: "alice", Email: "alice@example.com", Role: authz.RoleUser},
	}}
	service := NewService(repo)

	user, err := service.UpdateProfile(context.Background(), "id-1", UpdateProfileInput{
		FirstName: strPtr("Alice"),
		Bio:       strPtr("Reads everything."),
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "Reads everything.", user.Bio)
	assert.Equal(t, "alice@example.com", user.Email, "omitted fields stay untouched")
}

func TestService_UpdateProfile_RoleIsIgnored(t *testing.T) {
	repo := &fakeUserRepository{byID: map[string]*auth.User{
		"id-1": {ID: "id-1", Username: "alice", Email: "alice@example.com", Role: authz.RoleModerator},
	}}
	service := NewService(repo)

	user, err := service.UpdateProfile(context.Background(), "id-1", UpdateProfileInput{
		Role: strPtr("admin"),
	})

	require.NoError(t, err)
	assert.Equal(t, authz.RoleModerator, user.Role, "self-service must never change the role")
	assert.Equal(t, authz.RoleModerator, repo.byID["id-1"].Role)
}

func TestService_GetProfile_NotFound(t *testing.T) {
	service := NewService(&fakeUserRepository{byID: map[string]*auth.User{}})

	_, err := service.GetProfile(context.Background(), "ghost")

	require.NotNil(t, apperr.As(err))
}
