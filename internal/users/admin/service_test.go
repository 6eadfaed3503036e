// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package admin

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librate/librate/internal/authz"
	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/internal/users/auth"
)

type fakeUserRepository struct {
	byUsername map[string]*auth.User
}

func newFakeUserRepository(users ...*auth.User) *fakeUserRepository {
	repo := &fakeUserRepository{byUsername: map[string]*auth.User{}}
	for _, user := range users {
		repo.byUsername[user.Username] = user
	}
	return repo
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	f.byUsername[user.Username] = user
	return nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	for _, user := range f.byUsername {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	if user, ok := f.byUsername[username]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range f.byUsername {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) Update(_ context.Context, user *auth.User) error {
	f.byUsername[user.Username] = user
	return nil
}

func (f *fakeUserRepository) Delete(_ context.Context, username string) error {
	if _, ok := f.byUsername[username]; !ok {
		return apperr.NotFound("User")
	}
	delete(f.byUsername, username)
	return nil
}

func (f *fakeUserRepository) List(_ context.Context, _ string, _, _ int) ([]*auth.User, int, error) {
	users := make([]*auth.User, 0, len(f.byUsername))
	for _, user := range f.byUsername {
		users = append(users, user)
	}
	return users, len(users), nil
}

func strPtr(s string) *string { return &s }

func TestService_Create_AssignsRequestedRole(t *testing.T) {
	service := NewService(newFakeUserRepository())

	user, err := service.Create(context.Background(), CreateInput{
		Username: "mod",
		Email:    "mod@example.com",
		Role:     "moderator",
	})

	require.NoError(t, err)
	assert.Equal(t, authz.RoleModerator, user.Role)
	assert.NotEmpty(t, user.ID)
}

func TestService_Create_DefaultsToUserRole(t *testing.T) {
	service := NewService(newFakeUserRepository())

	user, err := service.Create(context.Background(), CreateInput{
		Username: "plain",
		Email:    "plain@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, authz.RoleUser, user.Role)
}

func TestService_Create_Conflicts(t *testing.T) {
	existing := &auth.User{ID: "id-1", Username: "alice", Email: "alice@example.com", Role: authz.RoleUser}

	testCases := []struct {
		name  string
		input CreateInput
	}{
		{"duplicate username", CreateInput{Username: "alice", Email: "new@example.com"}},
		{"duplicate email", CreateInput{Username: "bob", Email: "alice@example.com"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service := NewService(newFakeUserRepository(existing))

			_, err := service.Create(context.Background(), testCase.input)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, http.StatusConflict, appError.HTTPStatus)
		})
	}
}

func TestService_Update_ChangesRole(t *testing.T) {
	repo := newFakeUserRepository(
		&auth.User{ID: "id-1", Username: "alice", Email: "alice@example.com", Role: authz.RoleUser},
	)
	service := NewService(repo)

	user, err := service.Update(context.Background(), "alice", UpdateInput{
		Role: strPtr("moderator"),
	})

	require.NoError(t, err)
	assert.Equal(t, authz.RoleModerator, user.Role)
	assert.Equal(t, authz.RoleModerator, repo.byUsername["alice"].Role)
}

func TestService_Delete_Unknown(t *testing.T) {
	service := NewService(newFakeUserRepository())

	err := service.Delete(context.Background(), "ghost")

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
}
