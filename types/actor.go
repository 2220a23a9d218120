package types

// BranchID identifies a data partition: a physical or operational location.
type BranchID int

// NoBranch marks an actor not bound to any branch, or a query that does not
// target a specific branch. It is a valid state, not a denial.
const NoBranch BranchID = 0

// Actor is the authenticated subject whose access is being evaluated.
// It is constructed once per session by the identity source and never
// mutated afterwards; a nil *Actor is the unauthenticated state.
type Actor struct {
	// ID identifies the actor in the grant store
	ID string

	// Role is the single active role
	Role Role

	// Branch is the branch the actor is bound to, NoBranch if none
	Branch BranchID

	// AllBranches lets the actor see every branch regardless of Role
	AllBranches bool
}

// BranchFilter scopes list queries to the data an actor may see.
// It is a filter descriptor, not a boolean: either everything is visible,
// or only rows of a single branch.
type BranchFilter struct {
	Unrestricted bool
	Branch       BranchID
}
