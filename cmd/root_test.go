package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfbridge/storytel-provider/internal/cache"
	"github.com/shelfbridge/storytel-provider/internal/config"
)

func TestNewStoreDefaultsToMemory(t *testing.T) {
	orig := config.CacheDBFile
	config.CacheDBFile = ""
	t.Cleanup(func() { config.CacheDBFile = orig })

	store, err := newStore()
	require.NoError(t, err)
	assert.IsType(t, &cache.Memory{}, store)
}

func TestNewStoreUsesSQLiteWhenConfigured(t *testing.T) {
	orig := config.CacheDBFile
	config.CacheDBFile = filepath.Join(t.TempDir(), "cache.db")
	t.Cleanup(func() { config.CacheDBFile = orig })

	store, err := newStore()
	require.NoError(t, err)
	require.IsType(t, &cache.SQLite{}, store)
	require.NoError(t, store.(*cache.SQLite).Close())
}
