// Package server exposes the provider over the Audiobookshelf custom
// metadata provider HTTP contract. It stays thin: validation, auth and CORS
// only, with all engine logic behind the Searcher interface.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/shelfbridge/storytel-provider/internal/metadata"
)

// Searcher is the engine entry point the server forwards requests to.
type Searcher interface {
	Search(ctx context.Context, query, author, locale string) metadata.SearchResult
}

// Server handles the inbound HTTP API.
type Server struct {
	searcher  Searcher
	authToken string
	router    chi.Router
}

// New creates a Server. When authToken is non-empty, requests must carry it
// in the Authorization header.
func New(searcher Searcher, authToken string) *Server {
	s := &Server{
		searcher:  searcher,
		authToken: authToken,
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(requestLogger)
	r.Get("/search", s.handleSearch)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.authToken != "" && r.Header.Get("Authorization") != s.authToken {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query parameter is required")
		return
	}
	author := r.URL.Query().Get("author")
	locale := r.URL.Query().Get("locale")

	result := s.searcher.Search(r.Context(), query, author, locale)
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}
