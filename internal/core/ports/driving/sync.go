package driving

import (
	"context"

	"github.com/custodia-labs/driveindex/internal/core/domain"
)

// SyncRunner converges the index store to match the remote inventory.
type SyncRunner interface {
	// Run executes one sync pass and returns its report. A non-nil error
	// means the run aborted before or during classification (source or
	// index unreachable); per-file failures are recorded in the report,
	// not returned as errors.
	Run(ctx context.Context, opts domain.SyncOptions) (*domain.SyncReport, error)

	// Status returns progress of the active run, or an idle status.
	Status(ctx context.Context) (*SyncStatus, error)
}

// SyncStatus represents the current state of a sync run.
type SyncStatus struct {
	// Running indicates whether a run is currently in progress.
	Running bool

	// FilesProcessed is the count of files processed so far.
	FilesProcessed int

	// ErrorCount is the number of per-file failures so far.
	ErrorCount int
}
