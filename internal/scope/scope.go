// Package scope computes which data partition an actor may see.
// Branch scoping is independent of resource-level authorization: it is a
// pure function of the actor's role, branch assignment, and all-branches
// flag, and never looks at a resource or action.
package scope

import (
	"github.com/opsboard/authz/internal/catalog"
	"github.com/opsboard/authz/types"
)

// Resolver produces branch filters for actors
type Resolver struct {
	cat *catalog.Catalog
}

// NewResolver creates a branch scope resolver over the given role catalog
func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{cat: cat}
}

// Resolve computes the branch filter of an actor. Precedence:
// bypass role or all-branches flag wins, then an actor without a branch
// assignment sees everything (global data, not a denial), else the actor is
// restricted to its own branch. A nil actor resolves to the restricted
// zero filter.
func (r *Resolver) Resolve(actor *types.Actor) types.BranchFilter {
	if actor == nil {
		return types.BranchFilter{}
	}

	if r.cat.IsBypass(actor.Role) || actor.AllBranches {
		return types.BranchFilter{Unrestricted: true}
	}

	if actor.Branch == types.NoBranch {
		return types.BranchFilter{Unrestricted: true}
	}

	return types.BranchFilter{Branch: actor.Branch}
}

// CanAccess tells if actor may see data of the target branch.
// A NoBranch target means globally visible data and is allowed for every
// authenticated actor; otherwise the target must match the resolved filter.
func (r *Resolver) CanAccess(actor *types.Actor, target types.BranchID) bool {
	if actor == nil {
		return false
	}

	filter := r.Resolve(actor)
	if filter.Unrestricted {
		return true
	}
	if target == types.NoBranch {
		return true
	}

	return filter.Branch == target
}
