package accounts

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface, keyed by lower-cased email.
type InMemoryRepo struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

var _ Repo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates a new empty in-memory account repository.
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{accounts: make(map[string]Account)}
}

// NewInMemoryRepoFromFile loads accounts from a JSON file containing an array
// of Account objects.
func NewInMemoryRepoFromFile(path string) (*InMemoryRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}

	var loaded []Account
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse accounts file %q: %w", path, err)
	}

	repo := NewInMemoryRepo()
	for _, account := range loaded {
		repo.Upsert(account)
	}
	return repo, nil
}

// Upsert stores or replaces an account.
func (r *InMemoryRepo) Upsert(account Account) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[strings.ToLower(account.Email)] = account
}

// GetByEmail retrieves an account by its email, case-insensitively.
func (r *InMemoryRepo) GetByEmail(email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent external modifications
	found := account
	return &found, nil
}
