package savestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	store, err := Open(context.Background(), Options{
		Backend: BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "nested", "saves.db"),
	})
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "saves.db")

	store, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, testKey, []byte(`{"xp":3}`)))
	require.NoError(t, store.Close())

	store, err = OpenSQLite(ctx, path)
	require.NoError(t, err, "migrations are idempotent")
	defer store.Close()

	data, err := store.Load(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, `{"xp":3}`, string(data))
}
