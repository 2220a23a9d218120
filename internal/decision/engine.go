// Package decision implements the access decision engine: one stateless
// evaluation per request over the actor snapshot, the static role catalog,
// and at most one grant store read.
package decision

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/opsboard/authz/internal/catalog"
	"github.com/opsboard/authz/types"
)

// Engine decides access requests.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cat   *catalog.Catalog
	store types.GrantStore
	log   logr.Logger
}

// NewEngine creates a decision engine.
// store may be nil: the fallback rule then never matches.
func NewEngine(cat *catalog.Catalog, store types.GrantStore, l logr.Logger) *Engine {
	return &Engine{
		cat:   cat,
		store: store,
		log:   l,
	}
}

// Decide tells if actor may perform the requested action on the requested
// resource. Rules run in order, first match wins:
//
//  1. no actor: deny
//  2. bypass role: allow, unconditionally
//  3. deny-list role: allow unless the resource is in the denied set
//  4. role with a static allow-list: allow iff the resource is listed
//  5. otherwise fall back to the grant store
//
// The ordering is load-bearing. Every failure mode of the fallback degrades
// to a deny, never to an allow; the store call honors ctx cancellation
// through the store implementation.
func (e *Engine) Decide(ctx context.Context, actor *types.Actor, req types.AccessRequest) types.AccessDecision {
	d := e.decide(ctx, actor, req)

	kv := []interface{}{"resource", req.Resource, "action", req.Action, "allowed", d.Allowed, "reason", d.Reason}
	if actor != nil {
		kv = append(kv, "actor", actor.ID, "role", actor.Role)
	}
	e.log.V(6).Info("decide", kv...)

	return d
}

func (e *Engine) decide(ctx context.Context, actor *types.Actor, req types.AccessRequest) types.AccessDecision {
	if actor == nil {
		return types.AccessDecision{Reason: types.ReasonNoActor}
	}

	if e.cat.IsBypass(actor.Role) {
		return types.AccessDecision{Allowed: true, Reason: types.ReasonRoleBypass}
	}

	if e.cat.IsDenyList(actor.Role) {
		return types.AccessDecision{
			Allowed: !e.cat.IsDenied(actor.Role, req.Resource),
			Reason:  types.ReasonRoleDenyList,
		}
	}

	if allowed, listed := e.cat.Allows(actor.Role, req.Resource); listed {
		return types.AccessDecision{Allowed: allowed, Reason: types.ReasonRoleAllowList}
	}

	return e.decideByGrants(ctx, actor, req)
}

// decideByGrants is the fallback for roles without a static rule: the role
// is unknown to the catalog and the actor may still hold individual grants.
func (e *Engine) decideByGrants(ctx context.Context, actor *types.Actor, req types.AccessRequest) types.AccessDecision {
	if e.store == nil {
		return types.AccessDecision{Reason: types.ReasonGrantNoMatch}
	}

	grants, err := e.store.ListGrants(ctx, actor.ID)
	if err != nil {
		e.log.Error(err, "list grants", "actor", actor.ID)
		return types.AccessDecision{Reason: types.ReasonStoreUnavailable}
	}

	for _, g := range grants {
		if g.Resource == "" || !g.Action.IsValid() {
			// malformed grants are skipped one by one, they never abort the rest
			e.log.V(4).Info("skip malformed grant", "actor", actor.ID, "grant", g)
			continue
		}
		if g.Resource == req.Resource && g.Action.Includes(req.Action) {
			return types.AccessDecision{Allowed: true, Reason: types.ReasonGrantMatch}
		}
	}

	return types.AccessDecision{Reason: types.ReasonGrantNoMatch}
}
