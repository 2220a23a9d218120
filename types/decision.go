package types

// AccessRequest asks whether an action may be performed on a resource
type AccessRequest struct {
	Resource Resource
	Action   Action
}

// Reason identifies the rule that produced a decision
type Reason string

// possible reasons, ordered by rule precedence
const (
	// ReasonNoActor denies unauthenticated requests
	ReasonNoActor Reason = "no_actor"
	// ReasonRoleBypass allows everything for the bypass-all role
	ReasonRoleBypass Reason = "role_bypass"
	// ReasonRoleDenyList decides for roles allowed everything except a denied set
	ReasonRoleDenyList Reason = "role_deny_list"
	// ReasonRoleAllowList decides for roles with a static resource allow-list
	ReasonRoleAllowList Reason = "role_allow_list"
	// ReasonGrantMatch allows on a matching grant from the grant store
	ReasonGrantMatch Reason = "grant_match"
	// ReasonGrantNoMatch denies when no grant matches
	ReasonGrantNoMatch Reason = "grant_no_match"
	// ReasonStoreUnavailable denies fail-closed when the grant store cannot be read
	ReasonStoreUnavailable Reason = "store_unavailable"
)

// AccessDecision is the outcome of evaluating one AccessRequest for one Actor.
// Reason names the rule that fired, for audit logs.
type AccessDecision struct {
	Allowed bool
	Reason  Reason
}
