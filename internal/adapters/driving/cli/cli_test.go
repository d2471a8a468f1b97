package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driving"
)

// mockSyncRunner implements driving.SyncRunner for testing.
type mockSyncRunner struct {
	report *domain.SyncReport
	err    error
	status driving.SyncStatus

	gotOpts domain.SyncOptions
}

func (m *mockSyncRunner) Run(_ context.Context, opts domain.SyncOptions) (*domain.SyncReport, error) {
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.report != nil {
		return m.report, nil
	}
	return &domain.SyncReport{RunID: "run-1", Mode: opts.Mode, Started: time.Now()}, nil
}

func (m *mockSyncRunner) Status(_ context.Context) (*driving.SyncStatus, error) {
	status := m.status
	return &status, nil
}

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
	count   uint64
	healthy bool
}

func (m *mockSearchService) Search(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockSearchService) Count(_ context.Context) (uint64, error) {
	return m.count, nil
}

func (m *mockSearchService) Healthy(_ context.Context) bool {
	return m.healthy
}

// setupTestServices swaps in mocks and returns them with a restore func.
func setupTestServices() (*mockSyncRunner, *mockSearchService, func()) {
	oldSync := syncRunner
	oldSearch := searchService

	sync := &mockSyncRunner{}
	search := &mockSearchService{healthy: true}
	syncRunner = sync
	searchService = search

	return sync, search, func() {
		syncRunner = oldSync
		searchService = oldSearch
	}
}
