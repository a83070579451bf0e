package refresh_test

import (
	"context"
	"testing"
	"time"

	"github.com/likelion-sku/lionauth/kv"
	"github.com/likelion-sku/lionauth/token/refresh"
	"github.com/stretchr/testify/require"
)

const testEmail = "admin@example.com"

func TestManager_IssueAndGet(t *testing.T) {
	manager := refresh.NewManager(kv.NewMemoryStore(), 0)
	ctx := context.Background()

	token, err := manager.Issue(ctx, testEmail)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	stored, err := manager.Get(ctx, testEmail)
	require.NoError(t, err)
	require.Equal(t, token, stored)
}

func TestManager_IssueOverwrites(t *testing.T) {
	manager := refresh.NewManager(kv.NewMemoryStore(), 0)
	ctx := context.Background()

	first, err := manager.Issue(ctx, testEmail)
	require.NoError(t, err)

	second, err := manager.Issue(ctx, testEmail)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// Only the newest credential is active
	stored, err := manager.Get(ctx, testEmail)
	require.NoError(t, err)
	require.Equal(t, second, stored)
}

func TestManager_IssueRequiresEmail(t *testing.T) {
	manager := refresh.NewManager(kv.NewMemoryStore(), 0)

	_, err := manager.Issue(context.Background(), "")
	require.Error(t, err)
}

func TestManager_CredentialExpires(t *testing.T) {
	now := time.Now()
	kv.NowTimeFunc = func() time.Time { return now }
	defer func() { kv.NowTimeFunc = time.Now }()

	manager := refresh.NewManager(kv.NewMemoryStore(), 0)
	ctx := context.Background()

	_, err := manager.Issue(ctx, testEmail)
	require.NoError(t, err)

	now = now.Add(refresh.DefaultExpiry + time.Hour)
	_, err = manager.Get(ctx, testEmail)
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestManager_Revoke(t *testing.T) {
	manager := refresh.NewManager(kv.NewMemoryStore(), 0)
	ctx := context.Background()

	_, err := manager.Issue(ctx, testEmail)
	require.NoError(t, err)

	require.NoError(t, manager.Revoke(ctx, testEmail))

	_, err = manager.Get(ctx, testEmail)
	require.ErrorIs(t, err, kv.ErrNotFound)

	// Revoking again is a no-op
	require.NoError(t, manager.Revoke(ctx, testEmail))
}
