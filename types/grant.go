package types

import "context"

// Grant is a fine-grained permission from the grant store: one actor may
// perform an action on a resource. Grants are not deduplicated; a grant set
// is a multiset and is evaluated by existence check only.
type Grant struct {
	Resource    Resource
	Action      Action
	Description string
}

// GrantStore serves per-actor grants from an external storage.
// It is consulted only when no role rule decides a request.
type GrantStore interface {
	// ListGrants returns all grants of the actor.
	// Transient failures wrap ErrStoreUnavailable.
	ListGrants(ctx context.Context, actorID string) ([]Grant, error)
}

// IdentitySource supplies the actor of the current session.
// It returns nil, nil when unauthenticated: absence of an actor is a state,
// not an error.
type IdentitySource interface {
	CurrentActor(ctx context.Context) (*Actor, error)
}
