package pdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fifteenpuzzle/solver/pkg/pdb"
)

func TestCacheSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := pdb.NewCache(pdb.WithCacheDir(t.TempDir()))

	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	require.NoError(t, c.Save(ctx, "test.pdb", data))

	loaded, ok := c.Load(ctx, "test.pdb", len(data), pdb.Hash(data))
	require.True(t, ok)
	assert.Equal(t, data, loaded)
}

func TestCacheLoadMissingFile(t *testing.T) {
	ctx := context.Background()
	c := pdb.NewCache(pdb.WithCacheDir(t.TempDir()))

	_, ok := c.Load(ctx, "missing.pdb", 8, 0)
	assert.False(t, ok)
}

func TestCacheLoadHashMismatchRebuildsSignal(t *testing.T) {
	ctx := context.Background()
	c := pdb.NewCache(pdb.WithCacheDir(t.TempDir()))

	data := []byte{1, 2, 3}
	require.NoError(t, c.Save(ctx, "test.pdb", data))

	_, ok := c.Load(ctx, "test.pdb", len(data), pdb.Hash(data)+1)
	assert.False(t, ok)
}

func TestCacheLoadCachedRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := pdb.NewCache(pdb.WithCacheDir(t.TempDir()))

	data := []byte{9, 8, 7, 6, 5}
	require.NoError(t, c.Save(ctx, "test.pdb", data))

	loaded, ok := c.LoadCached(ctx, "test.pdb")
	require.True(t, ok)
	assert.Equal(t, data, loaded)
}

func TestCacheLoadCachedMissingSidecar(t *testing.T) {
	ctx := context.Background()
	c := pdb.NewCache(pdb.WithCacheDir(t.TempDir()))

	_, ok := c.LoadCached(ctx, "never-saved.pdb")
	assert.False(t, ok)
}

func TestCacheSaveLoadRoundTripCompressed(t *testing.T) {
	ctx := context.Background()
	c := pdb.NewCache(pdb.WithCacheDir(t.TempDir()), pdb.WithCompression())

	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 7)
	}
	require.NoError(t, c.Save(ctx, "test.pdb", data))

	loaded, ok := c.Load(ctx, "test.pdb", len(data), pdb.Hash(data))
	require.True(t, ok)
	assert.Equal(t, data, loaded)
}
