// Package memory provides an in-memory FileSource, used as a
// substitutable backend in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
)

// Ensure FileSource implements the interface.
var _ driven.FileSource = (*FileSource)(nil)

// FileSource is an in-memory implementation of driven.FileSource.
type FileSource struct {
	mu      sync.RWMutex
	files   []domain.RemoteFile
	content map[string][]byte

	// Failure injection for orchestrator tests.
	ListErr  error
	PingErr  error
	FetchErr map[string]error
}

// NewFileSource creates a new in-memory file source.
func NewFileSource() *FileSource {
	return &FileSource{
		content:  make(map[string][]byte),
		FetchErr: make(map[string]error),
	}
}

// Add registers a file and its content.
func (s *FileSource) Add(file domain.RemoteFile, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, file)
	s.content[file.ID] = content
}

// Remove deletes a file from the inventory.
func (s *FileSource) Remove(fileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	files := s.files[:0]
	for _, f := range s.files {
		if f.ID != fileID {
			files = append(files, f)
		}
	}
	s.files = files
	delete(s.content, fileID)
}

// SetFiles replaces the whole inventory.
func (s *FileSource) SetFiles(files []domain.RemoteFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = files
}

// ListFiles returns the configured inventory.
func (s *FileSource) ListFiles(_ context.Context) ([]domain.RemoteFile, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RemoteFile, len(s.files))
	copy(out, s.files)
	return out, nil
}

// FetchContent returns the stored bytes for a file id.
func (s *FileSource) FetchContent(_ context.Context, fileID string) ([]byte, error) {
	if err, ok := s.FetchErr[fileID]; ok {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.content[fileID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, fileID)
	}
	return content, nil
}

// Ping reports the injected failure, if any.
func (s *FileSource) Ping(_ context.Context) error {
	return s.PingErr
}
