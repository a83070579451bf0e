// Package redirects remembers where the browser wanted to go before it was
// sent through login. Entries are keyed by the flow's CSRF state, but here
// the state is only a correlation key, never a security token: validating it
// is the authorization-request store's job.
//
// Kept separate from the authorization-request record on purpose, so the
// library-shaped flow record and this application-owned value never fight
// over one record format.
package redirects

import (
	"context"
	"fmt"
	"time"

	"github.com/likelion-sku/lionauth/kv"
)

const keyPrefix = "oauth2_redirect:"

// DefaultTarget is where the browser lands when the caller never said.
const DefaultTarget = "/"

// DefaultTTL matches the authorization-request TTL so both halves of a flow
// expire together.
const DefaultTTL = 5 * time.Minute

// Store persists one post-login destination per in-flight login flow.
type Store struct {
	kv  kv.Store
	ttl time.Duration
}

// NewStore creates a store over the given backend. A non-positive TTL falls
// back to DefaultTTL.
func NewStore(store kv.Store, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{kv: store, ttl: ttl}
}

// Save records the caller's destination under the CSRF state generated for
// this flow. The state must be the generated one, never the caller-supplied
// value. A blank destination is stored as DefaultTarget.
func (s *Store) Save(ctx context.Context, state, destination string) error {
	if state == "" {
		return fmt.Errorf("state is required")
	}
	if destination == "" {
		destination = DefaultTarget
	}
	if err := s.kv.Set(ctx, keyPrefix+state, destination, s.ttl); err != nil {
		return fmt.Errorf("persist redirect target: %w", err)
	}
	return nil
}

// ConsumeOnce returns the destination for the state and deletes it. After the
// first call, or after expiry, it returns kv.ErrNotFound and the caller falls
// back to DefaultTarget.
func (s *Store) ConsumeOnce(ctx context.Context, state string) (string, error) {
	if state == "" {
		return "", kv.ErrNotFound
	}
	return s.kv.GetDel(ctx, keyPrefix+state)
}
