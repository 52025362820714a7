package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	_ "modernc.org/sqlite"

	"github.com/shelfbridge/storytel-provider/internal/metadata"
)

const searchCacheSchema = `
CREATE TABLE IF NOT EXISTS search_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_search_cached_at ON search_cache(cached_at);
`

// SQLite is a Store backed by a SQLite database file, for deployments that
// want the result cache to survive restarts. Read and write failures degrade
// to cache misses; the Store contract has no error channel.
type SQLite struct {
	ttl   time.Duration
	clock clockwork.Clock

	mu sync.Mutex
	db *sql.DB
}

// SQLiteOption configures a SQLite store.
type SQLiteOption func(*SQLite)

// WithSQLiteClock sets the clock used for expiry.
func WithSQLiteClock(clock clockwork.Clock) SQLiteOption {
	return func(s *SQLite) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewSQLite opens (or creates) the cache database at dbPath. A non-positive
// ttl selects DefaultTTL.
func NewSQLite(dbPath string, ttl time.Duration, opts ...SQLiteOption) (*SQLite, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := db.Ping(); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("failed to connect to cache database: %w", err), closeErr)
	}

	if _, err := db.Exec(searchCacheSchema); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("failed to create cache table: %w", err), closeErr)
	}

	store := &SQLite{
		ttl:   ttl,
		clock: clockwork.NewRealClock(),
		db:    db,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// Get returns the stored result if present and not expired.
func (s *SQLite) Get(key string) (metadata.SearchResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		data     string
		cachedAt int64
	)
	err := s.db.QueryRow(
		"SELECT data, cached_at FROM search_cache WHERE cache_key = ?", key,
	).Scan(&data, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return metadata.SearchResult{}, false
	}
	if err != nil {
		slog.Warn("Cache read failed, treating as miss", "key", key, "error", err)
		return metadata.SearchResult{}, false
	}

	if s.clock.Now().Unix()-cachedAt >= int64(s.ttl.Seconds()) {
		if _, err := s.db.Exec("DELETE FROM search_cache WHERE cache_key = ?", key); err != nil {
			slog.Warn("Failed to delete expired cache entry", "key", key, "error", err)
		}
		return metadata.SearchResult{}, false
	}

	var result metadata.SearchResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		slog.Warn("Failed to unmarshal cached result, treating as miss", "key", key, "error", err)
		return metadata.SearchResult{}, false
	}
	return result, true
}

// Set stores a result with the configured TTL starting now.
func (s *SQLite) Set(key string, result metadata.SearchResult) {
	data, err := json.Marshal(result)
	if err != nil {
		slog.Warn("Failed to marshal result for caching", "key", key, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO search_cache (cache_key, data, cached_at) VALUES (?, ?, ?)",
		key, string(data), s.clock.Now().Unix(),
	)
	if err != nil {
		slog.Warn("Cache write failed", "key", key, "error", err)
	}
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
