package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shelfbridge/storytel-provider/internal/metadata"
)

// Memory is an in-process TTL store. Entries expire based on elapsed time
// and are reaped lazily on read; there is no capacity bound.
type Memory struct {
	ttl   time.Duration
	clock clockwork.Clock

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	result  metadata.SearchResult
	expires time.Time
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithClock sets the clock used for expiry. Tests use a fake clock to step
// through the TTL window without sleeping.
func WithClock(clock clockwork.Clock) MemoryOption {
	return func(m *Memory) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// NewMemory creates an in-memory store. A non-positive ttl selects
// DefaultTTL.
func NewMemory(ttl time.Duration, opts ...MemoryOption) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Memory{
		ttl:     ttl,
		clock:   clockwork.NewRealClock(),
		entries: make(map[string]memoryEntry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the stored result if present and not expired.
func (m *Memory) Get(key string) (metadata.SearchResult, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return metadata.SearchResult{}, false
	}
	if !m.clock.Now().Before(entry.expires) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return metadata.SearchResult{}, false
	}
	return entry.result, true
}

// Set stores a result with the configured TTL starting now.
func (m *Memory) Set(key string, result metadata.SearchResult) {
	expires := m.clock.Now().Add(m.ttl)

	m.mu.Lock()
	m.entries[key] = memoryEntry{result: result, expires: expires}
	m.mu.Unlock()
}

// Len returns the number of entries currently held, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
