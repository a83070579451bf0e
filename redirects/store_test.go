package redirects_test

import (
	"context"
	"testing"
	"time"

	"github.com/likelion-sku/lionauth/kv"
	"github.com/likelion-sku/lionauth/redirects"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndConsumeOnce(t *testing.T) {
	store := redirects.NewStore(kv.NewMemoryStore(), 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "csrf-state", "/dashboard"))

	destination, err := store.ConsumeOnce(ctx, "csrf-state")
	require.NoError(t, err)
	require.Equal(t, "/dashboard", destination)

	// Retrievable at most once
	_, err = store.ConsumeOnce(ctx, "csrf-state")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_BlankDestinationDefaults(t *testing.T) {
	store := redirects.NewStore(kv.NewMemoryStore(), 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "csrf-state", ""))

	destination, err := store.ConsumeOnce(ctx, "csrf-state")
	require.NoError(t, err)
	require.Equal(t, redirects.DefaultTarget, destination)
}

func TestStore_SaveRequiresState(t *testing.T) {
	store := redirects.NewStore(kv.NewMemoryStore(), 0)
	require.Error(t, store.Save(context.Background(), "", "/dashboard"))
}

func TestStore_ConsumeMissingState(t *testing.T) {
	store := redirects.NewStore(kv.NewMemoryStore(), 0)
	ctx := context.Background()

	_, err := store.ConsumeOnce(ctx, "never-stored")
	require.ErrorIs(t, err, kv.ErrNotFound)

	_, err = store.ConsumeOnce(ctx, "")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_EntriesExpire(t *testing.T) {
	now := time.Now()
	kv.NowTimeFunc = func() time.Time { return now }
	defer func() { kv.NowTimeFunc = time.Now }()

	store := redirects.NewStore(kv.NewMemoryStore(), 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "csrf-state", "/dashboard"))

	now = now.Add(redirects.DefaultTTL + time.Second)
	_, err := store.ConsumeOnce(ctx, "csrf-state")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_SecondLoginOverwrites(t *testing.T) {
	store := redirects.NewStore(kv.NewMemoryStore(), 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "csrf-state", "/first"))
	require.NoError(t, store.Save(ctx, "csrf-state", "/second"))

	destination, err := store.ConsumeOnce(ctx, "csrf-state")
	require.NoError(t, err)
	require.Equal(t, "/second", destination)
}
