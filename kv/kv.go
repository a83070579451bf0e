// Package kv abstracts the expiring key-value store that coordinates login
// flows across redirects. The login flow only needs atomic set-with-expiry,
// get, and get-then-delete; anything providing those semantics can back it.
// Production uses Redis, tests and local development use the in-memory store.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key is absent or has expired.
var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	// Set writes the value under key with the given TTL. A TTL of zero or
	// less means the entry never expires.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// GetDel atomically returns the value stored under key and deletes it,
	// or returns ErrNotFound. A concurrent GetDel for the same key succeeds
	// for at most one caller.
	GetDel(ctx context.Context, key string) (string, error)

	// Del removes the key. Deleting a missing key is not an error.
	Del(ctx context.Context, key string) error
}
