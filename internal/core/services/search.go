package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
	"github.com/custodia-labs/driveindex/internal/core/ports/driving"
	"github.com/custodia-labs/driveindex/internal/logger"
)

// DefaultSearchLimit is used when the caller does not specify one.
const DefaultSearchLimit = 10

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService is a stateless passthrough to the index store's query
// capability. Ranking and highlighting are delegated to the store.
type SearchService struct {
	index driven.IndexStore
}

// NewSearchService creates a new search service.
func NewSearchService(index driven.IndexStore) *SearchService {
	return &SearchService{index: index}
}

// Search performs a ranked full-text query over indexed documents.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	logger.Debug("Limit: %d", limit)

	results, err := s.index.Search(ctx, query, limit)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Debug("Results: %d documents", len(results))
	return results, nil
}

// Count returns the number of indexed documents.
func (s *SearchService) Count(ctx context.Context) (uint64, error) {
	count, err := s.index.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return count, nil
}

// Healthy reports whether the index store is reachable.
func (s *SearchService) Healthy(ctx context.Context) bool {
	return s.index.Ping(ctx) == nil
}
