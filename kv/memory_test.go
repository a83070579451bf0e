package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/likelion-sku/lionauth/kv"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", "v1", time.Minute))

	value, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, "v1", value)

	// Get does not consume the entry
	value, err = store.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, "v1", value)
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := kv.NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestMemoryStore_GetDelIsOneTimeUse(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", "v1", time.Minute))

	value, err := store.GetDel(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, "v1", value)

	_, err = store.GetDel(ctx, "k1")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	now := time.Now()
	kv.NowTimeFunc = func() time.Time { return now }
	defer func() { kv.NowTimeFunc = time.Now }()

	store := kv.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", "v1", 5*time.Minute))

	// Just before expiry the entry is still readable
	now = now.Add(5*time.Minute - time.Second)
	value, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, "v1", value)

	// At expiry it is gone, even without a sweeper
	now = now.Add(time.Second)
	_, err = store.Get(ctx, "k1")
	require.ErrorIs(t, err, kv.ErrNotFound)

	_, err = store.GetDel(ctx, "k1")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", "v1", time.Minute))
	require.NoError(t, store.Set(ctx, "k1", "v2", time.Minute))

	value, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, "v2", value)
}

func TestMemoryStore_DelMissingKeyIsNoError(t *testing.T) {
	store := kv.NewMemoryStore()
	require.NoError(t, store.Del(context.Background(), "missing"))
}
