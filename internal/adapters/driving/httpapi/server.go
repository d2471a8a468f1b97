// Package httpapi exposes the read-only query surface over HTTP. The
// server answers searches and health checks; it never writes to the
// index and has no access to the sync runner.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driving"
	"github.com/custodia-labs/driveindex/internal/logger"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

// SearchResponse is the body returned by GET /search.
type SearchResponse struct {
	Query        string                `json:"query"`
	TotalResults int                   `json:"total_results"`
	Results      []domain.SearchResult `json:"results"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status         string `json:"status"`
	IndexConnected bool   `json:"index_connected"`
	DocumentCount  uint64 `json:"document_count"`
}

// ErrorResponse is the body returned for request failures.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Server serves the query API backed by a SearchService.
type Server struct {
	search driving.SearchService
	mux    *http.ServeMux
}

// NewServer constructs a Server with its routes registered.
func NewServer(search driving.SearchService) *Server {
	s := &Server{
		search: search,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/search", s.handleSearch)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("Serving query API on http://%s", addr)
	return srv.ListenAndServe()
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found", "")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "driveindex query API",
		"endpoints": map[string]string{
			"search": "/search?q=<query>&limit=<optional_limit>",
			"health": "/health",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	resp := HealthResponse{Status: "unhealthy"}
	if s.search.Healthy(r.Context()) {
		resp.Status = "healthy"
		resp.IndexConnected = true
		if count, err := s.search.Count(r.Context()); err == nil {
			resp.DocumentCount = count
		}
	}

	status := http.StatusOK
	if !resp.IndexConnected {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query", "q parameter is required")
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSearchLimit {
			writeError(w, http.StatusBadRequest, "invalid limit",
				"limit must be an integer between 1 and 100")
			return
		}
		limit = parsed
	}

	results, err := s.search.Search(r.Context(), query, limit)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		writeError(w, http.StatusInternalServerError, "search failed", err.Error())
		return
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Query:        query,
		TotalResults: len(results),
		Results:      results,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Detail: detail})
}
