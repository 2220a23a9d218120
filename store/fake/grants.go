// Package fake provides an in-memory grant store for tests and local runs.
package fake

import (
	"context"
	"sync"

	"github.com/opsboard/authz/types"
)

var _ types.GrantStore = (*GrantStore)(nil)

// GrantStore keeps grants in memory.
// Grants are stored as given: duplicates are kept, nothing is validated.
// All methods are safe for concurrent use.
type GrantStore struct {
	mu     sync.RWMutex
	grants map[string][]types.Grant
	err    error
}

// NewGrantStore returns an empty in-memory grant store
func NewGrantStore() *GrantStore {
	return &GrantStore{
		grants: make(map[string][]types.Grant),
	}
}

// Grant records a grant for the actor
func (s *GrantStore) Grant(actorID string, g types.Grant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[actorID] = append(s.grants[actorID], g)
}

// Revoke removes all grants of the actor on the resource
func (s *GrantStore) Revoke(actorID string, res types.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.grants[actorID][:0]
	for _, g := range s.grants[actorID] {
		if g.Resource != res {
			kept = append(kept, g)
		}
	}
	s.grants[actorID] = kept
}

// SetError makes every following ListGrants call fail with err,
// to simulate a store outage. Pass nil to recover.
func (s *GrantStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// ListGrants returns a copy of the grants of the actor
func (s *GrantStore) ListGrants(ctx context.Context, actorID string) ([]types.Grant, error) {
	if e := ctx.Err(); e != nil {
		return nil, e
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return nil, s.err
	}

	out := make([]types.Grant, len(s.grants[actorID]))
	copy(out, s.grants[actorID])
	return out, nil
}
