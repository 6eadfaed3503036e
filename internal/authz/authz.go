// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

/*
Package authz implements the authorization engine: a pure decision function
over (actor, action, resource).

Every permission rule in the application funnels through [Can]. Handlers and
services never compare role strings themselves, which keeps the permission
matrix in one reviewable place:

	Actor          Read   Catalog-write   Review/Comment-write        Users-admin   /me
	anonymous      allow  deny            deny                        deny          deny
	user           allow  deny            create; modify own          deny          own
	moderator      allow  deny            create; modify any          deny          own
	admin          allow  allow           create; modify any          allow         own

Note the asymmetry: moderators may moderate any review or comment, yet have
no write access to the catalog — that remains admin-only.
*/
package authz

import "github.com/librate/librate/internal/platform/sec"

// Action enumerates the operations an actor can attempt on a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionModify Action = "modify"
	ActionDelete Action = "delete"
)

// Kind enumerates the protected resource classes.
type Kind string

const (
	// KindCatalog covers categories, genres, and titles.
	KindCatalog Kind = "catalog"
	// KindReview covers reviews posted on titles.
	KindReview Kind = "review"
	// KindComment covers comments posted on reviews.
	KindComment Kind = "comment"
	// KindUserAdmin covers the /users administration endpoints.
	KindUserAdmin Kind = "user_admin"
	// KindProfile covers the actor's own /users/me profile.
	KindProfile Kind = "profile"
)

// Resource identifies a concrete object an action targets.
type Resource struct {
	Kind Kind

	// OwnerID is the user ID of the object's author/subject, when the kind
	// carries ownership (reviews, comments, profiles). Empty otherwise.
	OwnerID string
}

// Actor is the authenticated principal a decision is evaluated for.
// A nil *Actor represents an anonymous request.
type Actor struct {
	ID        string
	Role      Role
	Superuser bool
}

// IsAdmin reports whether the actor holds the admin capability.
//
// The superuser flag grants admin regardless of the stored role, matching
// the identity model where superusers are implicit admins.
func (a *Actor) IsAdmin() bool {
	return a != nil && (a.Role == RoleAdmin || a.Superuser)
}

// isModerator reports whether the actor can moderate community content.
func (a *Actor) isModerator() bool {
	return a != nil && (a.Role.AtLeast(RoleModerator) || a.Superuser)
}

// owns reports whether the actor is the owner of the resource.
func (a *Actor) owns(resource Resource) bool {
	return a != nil && resource.OwnerID != "" && a.ID == resource.OwnerID
}

// ActorFromClaims converts verified JWT claims into an [*Actor].
// Returns nil for nil claims, preserving anonymous semantics.
func ActorFromClaims(claims *sec.AuthClaims) *Actor {
	if claims == nil {
		return nil
	}
	return &Actor{
		ID:        claims.UserID,
		Role:      Role(claims.Role),
		Superuser: claims.Superuser,
	}
}

// Can is the authorization decision function.
//
// It is pure: no I/O, no clock, no hidden state. Precedence follows the
// permission matrix — reads first, then per-kind write rules.
func Can(actor *Actor, action Action, resource Resource) bool {
	switch resource.Kind {

	case KindCatalog:
		// Public reads; writes are admin-only. Moderator is NOT sufficient.
		if action == ActionRead {
			return true
		}
		return actor.IsAdmin()

	case KindReview, KindComment:
		if action == ActionRead {
			return true
		}
		if actor == nil {
			return false
		}
		if action == ActionCreate {
			return true
		}
		// Modify/delete: author or moderator-and-above.
		return actor.owns(resource) || actor.isModerator()

	case KindUserAdmin:
		return actor.IsAdmin()

	case KindProfile:
		// Profiles are private to their owner; admins go through the
		// user-admin endpoints instead, never through /me.
		return actor.owns(resource)
	}

	return false
}
