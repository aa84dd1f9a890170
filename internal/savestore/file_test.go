package savestore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	tests := []struct {
		name     string
		compress bool
	}{
		{"plain", false},
		{"zstd", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := OpenFile(t.TempDir(), tt.compress)
			require.NoError(t, err)
			defer store.Close()

			exerciseStore(t, store)
		})
	}
}

func TestFileStore_CompressionOnDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	payload := bytes.Repeat([]byte(`{"state":"empty","cropId":null},`), 48)

	store, err := OpenFile(dir, true)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, testKey, payload))
	require.NoError(t, store.Close())

	onDisk, err := os.ReadFile(filepath.Join(dir, testKey+saveFileExt))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(onDisk, zstdMagic))
	assert.Less(t, len(onDisk), len(payload))

	plain, err := OpenFile(dir, false)
	require.NoError(t, err)
	defer plain.Close()

	data, err := plain.Load(ctx, testKey)
	require.NoError(t, err, "compressed saves stay readable with compression off")
	assert.Equal(t, payload, data)
}

func TestFileStore_NoTempFilesLeft(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := OpenFile(dir, false)
	require.NoError(t, err)
	defer store.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, testKey, []byte{byte('0' + i)}))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, testKey+saveFileExt, entries[0].Name())
}
