// Package memory provides in-memory implementations of the driven
// ports, used as substitutable backends in tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// IndexStore is an in-memory implementation of driven.IndexStore.
// Search is a naive substring match; good enough for exercising the
// orchestrator and query surfaces without a real index.
type IndexStore struct {
	mu        sync.RWMutex
	documents map[string]domain.IndexedDocument

	// Failure injection for orchestrator tests.
	UpsertErr error
	DeleteErr error
	ListErr   error
	PingErr   error
}

// NewIndexStore creates a new in-memory index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{documents: make(map[string]domain.IndexedDocument)}
}

// Upsert stores or replaces the document keyed by its FileID.
func (s *IndexStore) Upsert(_ context.Context, doc *domain.IndexedDocument) error {
	if s.UpsertErr != nil {
		return s.UpsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.FileID] = *doc
	return nil
}

// Delete removes a document; absent ids are a no-op.
func (s *IndexStore) Delete(_ context.Context, fileID string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, fileID)
	return nil
}

// ListIDsWithTimestamps returns indexed ids with stored update times.
func (s *IndexStore) ListIDsWithTimestamps(_ context.Context) (map[string]time.Time, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make(map[string]time.Time, len(s.documents))
	for id, doc := range s.documents {
		ids[id] = doc.UpdatedTime
	}
	return ids, nil
}

// Search matches the query as a case-insensitive substring over text,
// name and path, ranked by a crude hit count.
func (s *IndexStore) Search(_ context.Context, query string, limit int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var results []domain.SearchResult
	for _, doc := range s.documents {
		score := 0.0
		if strings.Contains(strings.ToLower(doc.ExtractedText), q) {
			score++
		}
		if strings.Contains(strings.ToLower(doc.FileName), q) {
			score += 2
		}
		if strings.Contains(strings.ToLower(doc.FilePath), q) {
			score++
		}
		if score == 0 {
			continue
		}
		results = append(results, domain.SearchResult{
			FileID:      doc.FileID,
			FileName:    doc.FileName,
			FilePath:    doc.FilePath,
			URL:         doc.URL,
			MIMEType:    doc.MIMEType,
			Score:       score,
			UpdatedTime: doc.UpdatedTime,
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Count returns the number of stored documents.
func (s *IndexStore) Count(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.documents)), nil
}

// Ping reports the injected failure, if any.
func (s *IndexStore) Ping(_ context.Context) error {
	return s.PingErr
}

// Close is a no-op.
func (s *IndexStore) Close() error {
	return nil
}

// Get returns a stored document by id, for test assertions.
func (s *IndexStore) Get(fileID string) (domain.IndexedDocument, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[fileID]
	return doc, ok
}

// Len returns the number of stored documents, for test assertions.
func (s *IndexStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
