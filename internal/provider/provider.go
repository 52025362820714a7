// Package provider implements the search orchestration: one free-text query
// in, a list of normalized metadata matches out.
package provider

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/shelfbridge/storytel-provider/internal/cache"
	"github.com/shelfbridge/storytel-provider/internal/metadata"
	"github.com/shelfbridge/storytel-provider/internal/storytel"
)

// defaultMaxCandidates bounds fan-out cost and upstream load per search.
const defaultMaxCandidates = 5

// Catalog is the subset of the Storytel client the orchestrator needs.
type Catalog interface {
	Search(ctx context.Context, query, locale string) (*storytel.SearchResponse, error)
	GetBook(ctx context.Context, bookID, locale string) (*storytel.BookDetails, error)
}

// Provider turns search queries into aggregated, normalized results.
type Provider struct {
	catalog       Catalog
	store         cache.Store
	assembler     metadata.Assembler
	defaultLocale string
	maxCandidates int
}

// Option is a functional option for configuring the Provider.
type Option func(*Provider)

// WithMaxCandidates overrides the candidate fan-out cap.
func WithMaxCandidates(n int) Option {
	return func(p *Provider) {
		if n > 0 {
			p.maxCandidates = n
		}
	}
}

// WithAssembler overrides the metadata assembler.
func WithAssembler(a metadata.Assembler) Option {
	return func(p *Provider) {
		p.assembler = a
	}
}

// New creates a Provider. defaultLocale is used both as the request locale
// when the caller supplies none and as the language fallback for records
// without one.
func New(catalog Catalog, store cache.Store, defaultLocale string, opts ...Option) *Provider {
	if defaultLocale == "" {
		defaultLocale = "de"
	}
	p := &Provider{
		catalog:       catalog,
		store:         store,
		assembler:     metadata.NewAssembler(defaultLocale, ""),
		defaultLocale: defaultLocale,
		maxCandidates: defaultMaxCandidates,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NormalizeQuery truncates the query at the first ":" (the search endpoint
// rejects descriptive subtitles) and collapses whitespace runs into a "+"
// separator for transport.
func NormalizeQuery(query string) string {
	base, _, _ := strings.Cut(query, ":")
	return strings.Join(strings.Fields(base), "+")
}

// Search resolves a query to normalized matches. It never returns an error:
// upstream search failures degrade to an empty result, failed candidates are
// dropped from the aggregation. Match order follows the candidate order of
// the search response.
func (p *Provider) Search(ctx context.Context, query, author, locale string) metadata.SearchResult {
	if locale == "" {
		locale = p.defaultLocale
	}

	normalized := NormalizeQuery(query)
	key := cache.Key(normalized, author, locale)

	if result, ok := p.store.Get(key); ok {
		slog.Debug("Cache hit", "key", key)
		return result
	}

	result := metadata.SearchResult{Matches: []metadata.BookMetadata{}}

	response, err := p.catalog.Search(ctx, normalized, locale)
	if err != nil {
		slog.Warn("Catalog search failed", "query", normalized, "locale", locale, "error", err)
		return result
	}

	ids := response.CandidateIDs(p.maxCandidates)
	if len(ids) == 0 {
		// Empty results are not cached; a later retry may find the book.
		slog.Info("No candidates found", "query", normalized, "locale", locale)
		return result
	}

	// Details are fetched concurrently; the indexed slice keeps the output
	// in candidate order with failures left as gaps.
	matches := make([]*metadata.BookMetadata, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			details, err := p.catalog.GetBook(gctx, id, locale)
			if err != nil {
				slog.Debug("Dropping candidate, detail fetch failed", "bookId", id, "error", err)
				return nil
			}
			if meta := p.assembler.Assemble(details); meta != nil {
				matches[i] = meta
			} else {
				slog.Debug("Dropping candidate, no usable record", "bookId", id)
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, match := range matches {
		if match != nil {
			result.Matches = append(result.Matches, *match)
		}
	}

	slog.Info("Search completed",
		"query", normalized,
		"locale", locale,
		"attempted", len(ids),
		"matched", len(result.Matches))

	p.store.Set(key, result)
	return result
}
