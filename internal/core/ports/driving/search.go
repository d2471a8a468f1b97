package driving

import (
	"context"

	"github.com/custodia-labs/driveindex/internal/core/domain"
)

// SearchService provides read-only query capabilities to external actors.
// It contains no synchronization logic.
type SearchService interface {
	// Search performs a ranked full-text query over indexed documents.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)

	// Count returns the number of indexed documents.
	Count(ctx context.Context) (uint64, error)

	// Healthy reports whether the index store is reachable.
	Healthy(ctx context.Context) bool
}
