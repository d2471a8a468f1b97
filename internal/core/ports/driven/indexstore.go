package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/driveindex/internal/core/domain"
)

// IndexStore persists indexed documents and serves full-text queries.
// It is the external system boundary to the search backend.
type IndexStore interface {
	// Upsert stores or replaces the document keyed by its FileID.
	// Idempotent: the store holds exactly one document per file id.
	Upsert(ctx context.Context, doc *domain.IndexedDocument) error

	// Delete removes the document with the given file id.
	// A no-op when the id is absent; it must not fail for that case.
	Delete(ctx context.Context, fileID string) error

	// ListIDsWithTimestamps returns every indexed file id mapped to its
	// stored source modification time. A lightweight projection used by
	// the sync orchestrator to classify files without loading documents.
	ListIDsWithTimestamps(ctx context.Context) (map[string]time.Time, error)

	// Search performs a ranked full-text query with highlighted excerpts.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)

	// Count returns the number of indexed documents.
	Count(ctx context.Context) (uint64, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
