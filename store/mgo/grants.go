// Package mgo is a GrantStore backed by mongodb.
// Each grant is one document, indexed by actor; duplicates are kept as the
// grant model is a multiset.
package mgo

import (
	"context"
	"errors"
	"fmt"

	"github.com/globalsign/mgo"
	"github.com/globalsign/mgo/bson"

	"github.com/opsboard/authz/types"
)

var _ types.GrantStore = (*GrantStore)(nil)

// GrantStore serves and manages permission grants in a mongodb collection
type GrantStore struct {
	*collection
}

// NewGrantStore uses the given mongodb collection as backend for grants
func NewGrantStore(coll *mgo.Collection, opts ...collectionOption) (*GrantStore, error) {
	s := &GrantStore{&collection{Collection: coll}}
	for _, opt := range opts {
		opt(s.collection)
	}
	s.ensureLogger()

	ss := s.copySession()
	defer ss.closeSession()

	if e := ss.EnsureIndex(mgo.Index{Key: []string{"actor"}}); e != nil {
		return nil, fmt.Errorf("ensure grants index: %w", e)
	}

	return s, nil
}

type grantDO struct {
	ID          bson.ObjectId  `bson:"_id,omitempty"`
	Actor       string         `bson:"actor"`
	Resource    types.Resource `bson:"resource"`
	Action      types.Action   `bson:"action"`
	Description string         `bson:"description,omitempty"`
}

func (g *grantDO) asGrant() types.Grant {
	return types.Grant{
		Resource:    g.Resource,
		Action:      g.Action,
		Description: g.Description,
	}
}

// ListGrants returns all grants of the actor.
// Transient mongodb failures are reported as ErrStoreUnavailable; the engine
// turns them into fail-closed denies.
func (s *GrantStore) ListGrants(ctx context.Context, actorID string) ([]types.Grant, error) {
	if e := ctx.Err(); e != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStoreUnavailable, e)
	}

	ss := s.copySession()
	defer ss.closeSession()

	iter := ss.Find(bson.M{"actor": actorID}).Iter()
	defer iter.Close()

	grants := make([]types.Grant, 0)
	var do grantDO
	for iter.Next(&do) {
		grants = append(grants, do.asGrant())
		do = grantDO{}
	}
	if e := iter.Err(); e != nil {
		return nil, parseMgoError(e)
	}

	s.log.V(6).Info("list grants", "actor", actorID, "grants", len(grants))

	return grants, nil
}

// Grant records a grant for the actor
func (s *GrantStore) Grant(actorID string, g types.Grant) error {
	ss := s.copySession()
	defer ss.closeSession()

	s.log.V(4).Info("insert grant", "actor", actorID, "grant", g)

	return parseMgoError(ss.Insert(&grantDO{
		Actor:       actorID,
		Resource:    g.Resource,
		Action:      g.Action,
		Description: g.Description,
	}))
}

// Revoke removes every grant of the actor on the resource
func (s *GrantStore) Revoke(actorID string, res types.Resource) error {
	ss := s.copySession()
	defer ss.closeSession()

	s.log.V(4).Info("remove grants", "actor", actorID, "resource", res)

	_, e := ss.RemoveAll(bson.M{"actor": actorID, "resource": res})
	return parseMgoError(e)
}

func parseMgoError(e error) error {
	if e == nil {
		return nil
	}
	if errors.Is(e, mgo.ErrNotFound) {
		return types.ErrNotFound
	}
	return fmt.Errorf("%w: %v", types.ErrStoreUnavailable, e)
}
