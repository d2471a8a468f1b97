// Package bleve implements the IndexStore port on a Bleve full-text
// index. One Bleve document is stored per file id; search, ranking and
// highlighting are delegated to Bleve's BM25 scoring.
package bleve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
)

// Highlight sizing mirrors the fragment settings the query surfaces
// were designed around.
const (
	highlightField = "extracted_text"
	maxFragments   = 3
)

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

// Store is a Bleve-backed index store.
type Store struct {
	mu     sync.RWMutex
	index  bleve.Index
	path   string
	closed bool
}

// NewStore opens or creates a Bleve index at path.
// An empty path creates an in-memory index, used by tests.
func NewStore(path string) (*Store, error) {
	indexMapping := buildIndexMapping()

	var idx bleve.Index
	var err error

	if path == "" {
		idx, err = bleve.NewMemOnly(indexMapping)
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create index directory: %w", err)
		}
		idx, err = bleve.Open(path)
		if err == bleve.ErrorIndexPathDoesNotExist {
			idx, err = bleve.New(path, indexMapping)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	return &Store{index: idx, path: path}, nil
}

// buildIndexMapping defines the document schema: analysed text for
// content and names, keyword fields for identifiers, datetimes for the
// sync timestamps. Field names follow the persisted-record contract.
func buildIndexMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()

	kw := bleve.NewTextFieldMapping()
	kw.Analyzer = keyword.Name

	date := bleve.NewDateTimeFieldMapping()
	num := bleve.NewNumericFieldMapping()

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("file_id", kw)
	doc.AddFieldMappingsAt("file_name", text)
	doc.AddFieldMappingsAt("file_path", text)
	doc.AddFieldMappingsAt("url", kw)
	doc.AddFieldMappingsAt("mime_type", kw)
	doc.AddFieldMappingsAt("extracted_text", text)
	doc.AddFieldMappingsAt("updated_time", date)
	doc.AddFieldMappingsAt("indexed_time", date)
	doc.AddFieldMappingsAt("size", num)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

// Upsert stores or replaces the document keyed by its FileID.
func (s *Store) Upsert(_ context.Context, doc *domain.IndexedDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("index is closed")
	}
	if doc == nil || doc.FileID == "" {
		return domain.ErrInvalidInput
	}

	if err := s.index.Index(doc.FileID, doc); err != nil {
		return fmt.Errorf("index document %s: %w", doc.FileID, err)
	}
	return nil
}

// Delete removes the document with the given file id.
// Deleting an absent id is a no-op.
func (s *Store) Delete(_ context.Context, fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("index is closed")
	}

	if err := s.index.Delete(fileID); err != nil {
		return fmt.Errorf("delete document %s: %w", fileID, err)
	}
	return nil
}

// ListIDsWithTimestamps returns every indexed file id mapped to its
// stored source modification time.
func (s *Store) ListIDsWithTimestamps(ctx context.Context) (map[string]time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("index is closed")
	}

	count, err := s.index.DocCount()
	if err != nil {
		return nil, fmt.Errorf("doc count: %w", err)
	}

	req := bleve.NewSearchRequest(bleve.NewMatchAllQuery())
	req.Size = int(count)
	req.Fields = []string{"updated_time"}

	result, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list ids: %w", err)
	}

	ids := make(map[string]time.Time, len(result.Hits))
	for _, hit := range result.Hits {
		ids[hit.ID] = fieldTime(hit.Fields, "updated_time")
	}
	return ids, nil
}

// Search performs a ranked multi-field query with highlighted excerpts
// from the extracted text. File name matches are boosted over content.
func (s *Store) Search(ctx context.Context, queryStr string, limit int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("index is closed")
	}
	if limit <= 0 {
		limit = 10
	}

	req := bleve.NewSearchRequest(buildQuery(queryStr))
	req.Size = limit
	req.Fields = []string{"file_name", "file_path", "url", "mime_type", "updated_time"}
	req.Highlight = bleve.NewHighlight()
	req.Highlight.AddField(highlightField)

	result, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(result.Hits))
	for _, hit := range result.Hits {
		r := domain.SearchResult{
			FileID:      hit.ID,
			FileName:    fieldString(hit.Fields, "file_name"),
			FilePath:    fieldString(hit.Fields, "file_path"),
			URL:         fieldString(hit.Fields, "url"),
			MIMEType:    fieldString(hit.Fields, "mime_type"),
			Score:       hit.Score,
			UpdatedTime: fieldTime(hit.Fields, "updated_time"),
		}
		if fragments, ok := hit.Fragments[highlightField]; ok {
			if len(fragments) > maxFragments {
				fragments = fragments[:maxFragments]
			}
			r.Highlights = fragments
		}
		results = append(results, r)
	}
	return results, nil
}

// buildQuery matches the query against extracted text, file name
// (boosted) and file path, mirroring the search contract.
func buildQuery(queryStr string) query.Query {
	content := bleve.NewMatchQuery(queryStr)
	content.SetField("extracted_text")

	name := bleve.NewMatchQuery(queryStr)
	name.SetField("file_name")
	name.SetBoost(2.0)

	path := bleve.NewMatchQuery(queryStr)
	path.SetField("file_path")

	return bleve.NewDisjunctionQuery(content, name, path)
}

// Count returns the number of indexed documents.
func (s *Store) Count(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, fmt.Errorf("index is closed")
	}
	return s.index.DocCount()
}

// Ping verifies the index is open and readable.
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return fmt.Errorf("index is closed")
	}
	if _, err := s.index.DocCount(); err != nil {
		return fmt.Errorf("index unreadable: %w", err)
	}
	return nil
}

// Close releases the underlying index.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.index.Close()
}

// Path returns the index location on disk, empty for in-memory.
func (s *Store) Path() string {
	return s.path
}

// fieldString reads a stored string field from a search hit.
func fieldString(fields map[string]interface{}, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}
	return ""
}

// fieldTime reads a stored datetime field from a search hit.
// Bleve returns stored datetimes as RFC 3339 strings.
func fieldTime(fields map[string]interface{}, name string) time.Time {
	v, ok := fields[name].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
