package cache

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfbridge/storytel-provider/internal/metadata"
)

func sampleResult(title string) metadata.SearchResult {
	return metadata.SearchResult{
		Matches: []metadata.BookMetadata{{Title: title, Language: "de"}},
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory(10 * time.Minute)

	_, ok := store.Get("missing")
	assert.False(t, ok)

	key := Key("der+schwarm", "", "de")
	store.Set(key, sampleResult("Der Schwarm"))

	got, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, "Der Schwarm", got.Matches[0].Title)
}

func TestMemoryExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemory(10*time.Minute, WithClock(clock))

	key := Key("dune", "Frank Herbert", "en")
	store.Set(key, sampleResult("Dune"))

	clock.Advance(9 * time.Minute)
	_, ok := store.Get(key)
	assert.True(t, ok, "entry should survive inside the TTL window")

	clock.Advance(2 * time.Minute)
	_, ok = store.Get(key)
	assert.False(t, ok, "entry should expire after the TTL window")

	// Expired entries are reaped on read.
	assert.Zero(t, store.Len())
}

func TestMemoryLastWriterWins(t *testing.T) {
	store := NewMemory(10 * time.Minute)

	key := Key("dune", "", "en")
	store.Set(key, sampleResult("first"))
	store.Set(key, sampleResult("second"))

	got, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, "second", got.Matches[0].Title)
}

func TestMemoryDefaultTTL(t *testing.T) {
	store := NewMemory(0)
	assert.Equal(t, DefaultTTL, store.ttl)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "der+schwarm-Frank Schätzing-de", Key("der+schwarm", "Frank Schätzing", "de"))
}
