package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newSQLiteTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	return store
}

// Tests SQLiteStore round trips
func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSQLiteTestStore(t)

	require.NoError(t, store.Set(ctx, "coinRatio", 0.8))

	var ratio float64
	found, err := store.Get(ctx, "coinRatio", &ratio)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 0.8, ratio)

	// Upsert replaces the previous value.
	require.NoError(t, store.Set(ctx, "coinRatio", 0.9))
	found, err = store.Get(ctx, "coinRatio", &ratio)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 0.9, ratio)
}

// Absent keys report found=false without an error.
func TestSQLiteStore_MissingKey(t *testing.T) {
	t.Parallel()

	store := newSQLiteTestStore(t)

	var out string
	found, err := store.Get(context.Background(), "missing", &out)
	require.NoError(t, err)
	require.False(t, found)
}

// Tests Remove
func TestSQLiteStore_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSQLiteTestStore(t)

	require.NoError(t, store.Set(ctx, "instanceId", "abc-123"))
	require.NoError(t, store.Remove(ctx, "instanceId"))

	var out string
	found, err := store.Get(ctx, "instanceId", &out)
	require.NoError(t, err)
	require.False(t, found)
}

// Persisted values survive a close/reopen cycle.
func TestSQLiteStore_Persistence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scout.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "enableExtension", true))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	var enabled bool
	found, err := reopened.Get(ctx, "enableExtension", &enabled)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, enabled)
}
