// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/librate/librate/internal/authz"
	"github.com/librate/librate/internal/platform/sec"
)

var (
	anonymous *authz.Actor
	user      = &authz.Actor{ID: "u1", Role: authz.RoleUser}
	moderator = &authz.Actor{ID: "m1", Role: authz.RoleModerator}
	admin     = &authz.Actor{ID: "a1", Role: authz.RoleAdmin}
	superuser = &authz.Actor{ID: "s1", Role: authz.RoleUser, Superuser: true}
)

/*
TestCan_PermissionMatrix walks the full decision table row by row.
*/
func TestCan_PermissionMatrix(t *testing.T) {
	tests := []struct {
		name     string
		actor    *authz.Actor
		action   authz.Action
		resource authz.Resource
		allowed  bool
	}{
		// Reads are public for catalog and community content.
		{"anon_read_catalog", anonymous, authz.ActionRead, authz.Resource{Kind: authz.KindCatalog}, true},
		{"anon_read_review", anonymous, authz.ActionRead, authz.Resource{Kind: authz.KindReview, OwnerID: "u1"}, true},
		{"anon_read_comment", anonymous, authz.ActionRead, authz.Resource{Kind: authz.KindComment, OwnerID: "u1"}, true},

		// Catalog writes are admin-only; moderator is deliberately insufficient.
		{"anon_create_catalog", anonymous, authz.ActionCreate, authz.Resource{Kind: authz.KindCatalog}, false},
		{"user_create_catalog", user, authz.ActionCreate, authz.Resource{Kind: authz.KindCatalog}, false},
		{"moderator_create_catalog", moderator, authz.ActionCreate, authz.Resource{Kind: authz.KindCatalog}, false},
		{"moderator_delete_catalog", moderator, authz.ActionDelete, authz.Resource{Kind: authz.KindCatalog}, false},
		{"admin_create_catalog", admin, authz.ActionCreate, authz.Resource{Kind: authz.KindCatalog}, true},
		{"superuser_create_catalog", superuser, authz.ActionCreate, authz.Resource{Kind: authz.KindCatalog}, true},

		// Review/comment creation requires authentication only.
		{"anon_create_review", anonymous, authz.ActionCreate, authz.Resource{Kind: authz.KindReview}, false},
		{"user_create_review", user, authz.ActionCreate, authz.Resource{Kind: authz.KindReview}, true},

		// Review/comment modification: author or moderator-and-above.
		{"user_modify_own_review", user, authz.ActionModify, authz.Resource{Kind: authz.KindReview, OwnerID: "u1"}, true},
		{"user_modify_other_review", user, authz.ActionModify, authz.Resource{Kind: authz.KindReview, OwnerID: "u2"}, false},
		{"user_delete_other_comment", user, authz.ActionDelete, authz.Resource{Kind: authz.KindComment, OwnerID: "u2"}, false},
		{"moderator_modify_any_review", moderator, authz.ActionModify, authz.Resource{Kind: authz.KindReview, OwnerID: "u2"}, true},
		{"moderator_delete_any_comment", moderator, authz.ActionDelete, authz.Resource{Kind: authz.KindComment, OwnerID: "u2"}, true},
		{"admin_delete_any_review", admin, authz.ActionDelete, authz.Resource{Kind: authz.KindReview, OwnerID: "u2"}, true},
		{"superuser_modify_any_review", superuser, authz.ActionModify, authz.Resource{Kind: authz.KindReview, OwnerID: "u2"}, true},

		// User administration is admin-only.
		{"anon_user_admin", anonymous, authz.ActionRead, authz.Resource{Kind: authz.KindUserAdmin}, false},
		{"user_user_admin", user, authz.ActionRead, authz.Resource{Kind: authz.KindUserAdmin}, false},
		{"moderator_user_admin", moderator, authz.ActionModify, authz.Resource{Kind: authz.KindUserAdmin}, false},
		{"admin_user_admin", admin, authz.ActionModify, authz.Resource{Kind: authz.KindUserAdmin}, true},
		{"superuser_user_admin", superuser, authz.ActionDelete, authz.Resource{Kind: authz.KindUserAdmin}, true},

		// Profiles are owner-only, regardless of rank.
		{"anon_read_profile", anonymous, authz.ActionRead, authz.Resource{Kind: authz.KindProfile, OwnerID: "u1"}, false},
		{"user_read_own_profile", user, authz.ActionRead, authz.Resource{Kind: authz.KindProfile, OwnerID: "u1"}, true},
		{"user_modify_own_profile", user, authz.ActionModify, authz.Resource{Kind: authz.KindProfile, OwnerID: "u1"}, true},
		{"admin_read_other_profile", admin, authz.ActionRead, authz.Resource{Kind: authz.KindProfile, OwnerID: "u1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, authz.Can(tt.actor, tt.action, tt.resource))
		})
	}
}

/*
TestRole_AtLeast verifies the role hierarchy ordering.
*/
func TestRole_AtLeast(t *testing.T) {
	assert.True(t, authz.RoleAdmin.AtLeast(authz.RoleModerator))
	assert.True(t, authz.RoleModerator.AtLeast(authz.RoleUser))
	assert.True(t, authz.RoleUser.AtLeast(authz.RoleUser))
	assert.False(t, authz.RoleUser.AtLeast(authz.RoleModerator))
	assert.False(t, authz.RoleModerator.AtLeast(authz.RoleAdmin))
	assert.False(t, authz.Role("unknown").AtLeast(authz.RoleUser))
}

/*
TestRole_Valid rejects arbitrary role strings.
*/
func TestRole_Valid(t *testing.T) {
	assert.True(t, authz.Valid(authz.RoleUser))
	assert.True(t, authz.Valid(authz.RoleModerator))
	assert.True(t, authz.Valid(authz.RoleAdmin))
	assert.False(t, authz.Valid(authz.Role("owner")))
	assert.False(t, authz.Valid(authz.Role("")))
}

/*
TestActorFromClaims maps verified JWT claims onto an actor, preserving anonymity.
*/
func TestActorFromClaims(t *testing.T) {
	assert.Nil(t, authz.ActorFromClaims(nil))

	actor := authz.ActorFromClaims(&sec.AuthClaims{
		UserID:    "u9",
		Username:  "bob",
		Role:      "moderator",
		Superuser: false,
	})

	assert.Equal(t, "u9", actor.ID)
	assert.Equal(t, authz.RoleModerator, actor.Role)
	assert.False(t, actor.IsAdmin())

	su := authz.ActorFromClaims(&sec.AuthClaims{UserID: "u10", Role: "user", Superuser: true})
	assert.True(t, su.IsAdmin())
}
