// Package authz decides, for an authenticated actor, whether a requested
// action on a named resource is permitted, and which branch of data the
// actor may see. It is an in-process library: decisions are synchronous,
// stateless, and safe for concurrent callers.
package authz

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/opsboard/authz/internal/catalog"
	"github.com/opsboard/authz/internal/decision"
	"github.com/opsboard/authz/internal/scope"
	"github.com/opsboard/authz/types"
)

// New creates an Authorizer over the built-in role catalog
func New(opts ...Option) (types.Authorizer, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.log.GetSink() == nil {
		cfg.log = stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
	}

	// the role catalog is static data, shipped with the library,
	// not runtime configuration
	cat := catalog.Default()

	a := &authorizer{
		identity: cfg.identity,
		engine:   decision.NewEngine(cat, cfg.store, cfg.log.WithName("decision")),
		scope:    scope.NewResolver(cat),
		log:      cfg.log,
	}

	return a, nil
}

// WithGrantStore sets the store serving fine-grained per-actor grants.
// Could be omitted if every role is decided by the catalog alone: the
// fallback rule then never matches.
func WithGrantStore(s types.GrantStore) Option {
	return func(cfg *Config) {
		cfg.store = s
	}
}

// WithIdentitySource sets the source of the current session's actor,
// enabling DecideCurrent
func WithIdentitySource(src types.IdentitySource) Option {
	return func(cfg *Config) {
		cfg.identity = src
	}
}

// WithLogger sets the logger for all components
func WithLogger(l logr.Logger) Option {
	return func(cfg *Config) {
		cfg.log = l
	}
}

// Config works together with Option to control the initialization of an authorizer
type Config struct {
	store    types.GrantStore
	identity types.IdentitySource
	log      logr.Logger
}

// Option controls how to init an authorizer
type Option func(*Config)

var _ types.Authorizer = (*authorizer)(nil)

type authorizer struct {
	identity types.IdentitySource
	engine   *decision.Engine
	scope    *scope.Resolver
	log      logr.Logger
}

// Decide tells if actor may perform action on resource
func (a *authorizer) Decide(ctx context.Context, actor *types.Actor, resource types.Resource, action types.Action) types.AccessDecision {
	return a.engine.Decide(ctx, actor, types.AccessRequest{Resource: resource, Action: action})
}

// DecideCurrent is Decide for the actor of the current session.
// Without an identity source, or when the source fails or reports no
// session, the request is denied as unauthenticated.
func (a *authorizer) DecideCurrent(ctx context.Context, resource types.Resource, action types.Action) types.AccessDecision {
	if a.identity == nil {
		return a.Decide(ctx, nil, resource, action)
	}

	actor, e := a.identity.CurrentActor(ctx)
	if e != nil {
		a.log.Error(e, "resolve current actor")
		return types.AccessDecision{Reason: types.ReasonNoActor}
	}

	return a.Decide(ctx, actor, resource, action)
}

// ResolveBranchFilter computes the data partition actor may see
func (a *authorizer) ResolveBranchFilter(actor *types.Actor) types.BranchFilter {
	return a.scope.Resolve(actor)
}

// CanAccessBranchData tells if actor may see data of the target branch
func (a *authorizer) CanAccessBranchData(actor *types.Actor, target types.BranchID) bool {
	return a.scope.CanAccess(actor, target)
}

// RoleDisplayName is a presentation helper for UI collaborators
func (a *authorizer) RoleDisplayName(role types.Role) string {
	return role.DisplayName()
}
