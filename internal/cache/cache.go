// Package cache provides time-bounded memoization of search results so
// identical lookups inside the TTL window never hit the catalog twice.
package cache

import (
	"fmt"
	"time"

	"github.com/shelfbridge/storytel-provider/internal/metadata"
)

// DefaultTTL is the default time-to-live for cached search results.
const DefaultTTL = 10 * time.Minute

// Store is a time-bounded key/value store for search results. Get never
// fails; an expired or unknown key is simply a miss. Concurrent writes for
// the same key are last-writer-wins.
type Store interface {
	Get(key string) (metadata.SearchResult, bool)
	Set(key string, result metadata.SearchResult)
}

// Key builds the cache key for one search request. The query is expected to
// be in its normalized transport form.
func Key(query, author, locale string) string {
	return fmt.Sprintf("%s-%s-%s", query, author, locale)
}
