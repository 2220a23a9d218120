package types

import "context"

// Authorizer is the top level interface for end use.
// It decides if an actor can perform an action on a resource, and which
// branch of data the actor may see. Decisions are pure functions of the
// supplied actor and the static role catalog, plus at most one grant store
// read; they are never cached across calls.
type Authorizer interface {
	// Decide tells if actor may perform action on resource.
	// A nil actor is the unauthenticated state and is always denied.
	// All failure modes degrade to a deny decision, never to an error.
	Decide(ctx context.Context, actor *Actor, resource Resource, action Action) AccessDecision

	// DecideCurrent is Decide for the actor of the current session,
	// resolved through the configured identity source.
	DecideCurrent(ctx context.Context, resource Resource, action Action) AccessDecision

	// ResolveBranchFilter computes the data partition actor may see.
	// It depends on the actor only, never on a resource or action.
	ResolveBranchFilter(actor *Actor) BranchFilter

	// CanAccessBranchData tells if actor may see data of the target branch.
	// A NoBranch target means globally visible data and is always allowed
	// for authenticated actors.
	CanAccessBranchData(actor *Actor, target BranchID) bool

	// RoleDisplayName is a presentation helper for UI collaborators
	RoleDisplayName(role Role) string
}
