package authrequest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	errs "github.com/likelion-sku/lionauth/internal/errors"
	"github.com/likelion-sku/lionauth/kv"
)

const keyPrefix = "oauth2_auth_request:"

// DefaultTTL bounds how long an unconsumed authorization request survives.
// Abandoned flows self-clean without operator intervention.
const DefaultTTL = 5 * time.Minute

// Store persists authorization requests keyed by their CSRF state. Records
// are write-once, read-once-then-deleted.
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

// Save serializes the request and writes it under its state token with the
// store TTL. A request without a state token is rejected: the state is the
// only correlation key the callback leg has.
func (s *Store) Save(ctx context.Context, req *Request) error {
	if req == nil {
		return fmt.Errorf("authorization request is required")
	}
	if req.State == "" {
		return fmt.Errorf("authorization request state is required")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}
	if err := s.kv.Set(ctx, keyPrefix+req.State, string(payload), s.ttl); err != nil {
		return fmt.Errorf("persist authorization request: %w", err)
	}
	return nil
}

// Load returns the stored request for the state carried by an incoming
// callback, without deleting it. kv.ErrNotFound when the key is absent,
// expired, or the incoming request carried no state at all.
func (s *Store) Load(ctx context.Context, state string) (*Request, error) {
	if state == "" {
		return nil, kv.ErrNotFound
	}
	payload, err := s.kv.Get(ctx, keyPrefix+state)
	if err != nil {
		return nil, err
	}
	return decode(payload)
}

// Consume returns the stored request and unconditionally deletes it. Called
// exactly once per flow, at the point the provider callback is validated; a
// second call (replay) finds nothing.
func (s *Store) Consume(ctx context.Context, state string) (*Request, error) {
	if state == "" {
		return nil, kv.ErrNotFound
	}
	payload, err := s.kv.GetDel(ctx, keyPrefix+state)
	if err != nil {
		return nil, err
	}
	return decode(payload)
}

// Clear removes any record for the given exchange. Clearing a state that has
// no record is a no-op.
func (s *Store) Clear(ctx context.Context, state string) error {
	if state == "" {
		return nil
	}
	return s.kv.Del(ctx, keyPrefix+state)
}

func decode(payload string) (*Request, error) {
	var req Request
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		// A record that cannot be decoded is fatal for its flow; guessing
		// field defaults would validate a CSRF exchange we cannot trust.
		return nil, fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}
	return &req, nil
}
