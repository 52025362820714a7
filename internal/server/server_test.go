package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfbridge/storytel-provider/internal/metadata"
)

type fakeSearcher struct {
	lastQuery  string
	lastAuthor string
	lastLocale string
	result     metadata.SearchResult
}

func (f *fakeSearcher) Search(_ context.Context, query, author, locale string) metadata.SearchResult {
	f.lastQuery = query
	f.lastAuthor = author
	f.lastLocale = locale
	return f.result
}

func doSearch(t *testing.T, srv *Server, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestSearchEndpoint(t *testing.T) {
	searcher := &fakeSearcher{
		result: metadata.SearchResult{
			Matches: []metadata.BookMetadata{{Title: "Dune", Author: "Frank Herbert", Language: "en"}},
		},
	}
	srv := New(searcher, "")

	rec := doSearch(t, srv, "/search?query=dune&author=Frank+Herbert&locale=en", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "dune", searcher.lastQuery)
	assert.Equal(t, "Frank Herbert", searcher.lastAuthor)
	assert.Equal(t, "en", searcher.lastLocale)

	var result metadata.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Dune", result.Matches[0].Title)
}

func TestSearchMissingQuery(t *testing.T) {
	srv := New(&fakeSearcher{}, "")

	rec := doSearch(t, srv, "/search", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Query parameter is required")
}

func TestSearchAuthToken(t *testing.T) {
	srv := New(&fakeSearcher{}, "secret")

	rec := doSearch(t, srv, "/search?query=dune", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doSearch(t, srv, "/search?query=dune", http.Header{"Authorization": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doSearch(t, srv, "/search?query=dune", http.Header{"Authorization": {"secret"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmptyMatchesSerializedAsArray(t *testing.T) {
	searcher := &fakeSearcher{result: metadata.SearchResult{Matches: []metadata.BookMetadata{}}}
	srv := New(searcher, "")

	rec := doSearch(t, srv, "/search?query=unknown", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matches":[]}`, rec.Body.String())
}
