// Package refresh issues the long-lived opaque credential granted to
// elevated-role accounts at login.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/likelion-sku/lionauth/kv"
)

const keyPrefix = "refresh:"

// DefaultExpiry is how long a refresh credential stays valid.
const DefaultExpiry = 30 * 24 * time.Hour // 30 days

// Manager stores at most one active refresh credential per account, keyed by
// email. Issuing a new credential overwrites the previous one.
type Manager struct {
	kv     kv.Store
	expiry time.Duration
}

// NewManager creates a new refresh credential manager. A non-positive expiry
// falls back to DefaultExpiry.
func NewManager(store kv.Store, expiry time.Duration) *Manager {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Manager{kv: store, expiry: expiry}
}

// Issue generates a fresh random credential for the account and stores it
// with the configured expiry, replacing any prior value.
func (m *Manager) Issue(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("email is required")
	}

	token := uuid.New().String()
	if err := m.kv.Set(ctx, keyPrefix+email, token, m.expiry); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return token, nil
}

// Get returns the active refresh credential for the account, or
// kv.ErrNotFound when none exists or it has expired.
func (m *Manager) Get(ctx context.Context, email string) (string, error) {
	return m.kv.Get(ctx, keyPrefix+email)
}

// Revoke deletes the account's refresh credential, if any.
func (m *Manager) Revoke(ctx context.Context, email string) error {
	return m.kv.Del(ctx, keyPrefix+email)
}
