package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
	"github.com/custodia-labs/driveindex/internal/core/ports/driving"
	"github.com/custodia-labs/driveindex/internal/logger"
)

// Ensure SyncRunner implements the interface.
var _ driving.SyncRunner = (*SyncRunner)(nil)

// decidedFile pairs a remote file with its sync classification.
type decidedFile struct {
	file     domain.RemoteFile
	decision domain.SyncDecision
}

// SyncRunner converges the index store to match the remote inventory.
// It assumes it is the sole writer to the index for the duration of a
// run; no locking is implemented.
type SyncRunner struct {
	source    driven.FileSource
	index     driven.IndexStore
	extractor driven.ExtractorRegistry

	// Status tracking
	mu     sync.RWMutex
	active *driving.SyncStatus
}

// NewSyncRunner creates a new sync runner.
func NewSyncRunner(
	source driven.FileSource,
	index driven.IndexStore,
	extractor driven.ExtractorRegistry,
) *SyncRunner {
	return &SyncRunner{
		source:    source,
		index:     index,
		extractor: extractor,
	}
}

// Run executes one sync pass: classify every remote file against the
// indexed inventory, drive extraction and indexing for added/changed
// files, delete stale documents, and aggregate the outcome.
func (r *SyncRunner) Run(ctx context.Context, opts domain.SyncOptions) (*domain.SyncReport, error) {
	report := &domain.SyncReport{
		RunID:   uuid.New().String(),
		Mode:    opts.Mode,
		Clean:   opts.Clean,
		Started: time.Now(),
	}
	defer func() { report.Duration = time.Since(report.Started) }()

	r.setStatus(&driving.SyncStatus{Running: true})
	defer r.clearStatus()

	logger.Section("Sync Run")
	logger.Info("Starting %s sync (run %s, clean=%t)", opts.Mode, report.RunID, opts.Clean)

	// Unreachable source or index aborts the run before any writes.
	if err := r.source.Ping(ctx); err != nil {
		return report, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	if err := r.index.Ping(ctx); err != nil {
		return report, fmt.Errorf("%w: %w", domain.ErrIndexUnavailable, err)
	}

	if opts.Clean {
		if err := r.cleanIndex(ctx); err != nil {
			return report, fmt.Errorf("clean index: %w", err)
		}
	}

	remote, err := r.source.ListFiles(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: list files: %w", domain.ErrSourceUnavailable, err)
	}
	report.TotalFiles = len(remote)
	logger.Info("Found %d files at source", len(remote))

	indexed, err := r.index.ListIDsWithTimestamps(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: list indexed ids: %w", domain.ErrIndexUnavailable, err)
	}
	logger.Info("Index currently holds %d documents", len(indexed))

	work, stale := classify(remote, indexed, opts.Mode)

	for _, d := range work {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		switch d.decision {
		case domain.DecisionSkipUnchanged:
			logger.Debug("Skipping unchanged %s (%s)", d.file.Path, d.file.ID)
			report.Skipped++

		case domain.DecisionIndexNew, domain.DecisionIndexUpdated:
			logger.Debug("Processing %s: %s", d.decision, d.file.Path)
			if r.processFile(ctx, d.file, report) {
				report.Indexed++
			} else {
				r.trackError()
			}
		}
		r.trackProcessed()
	}

	// Deletion sync: documents with no remote counterpart are removed.
	for _, fileID := range stale {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		logger.Debug("Deleting stale document %s", fileID)
		if err := r.index.Delete(ctx, fileID); err != nil {
			logger.Warn("Failed to delete %s: %v", fileID, err)
			report.RecordFailure(fileID, domain.FailureIndexDelete, err)
			r.trackError()
			continue
		}
		report.Deleted++
	}

	logger.Info("Sync complete: %d indexed, %d skipped, %d deleted, %d failed",
		report.Indexed, report.Skipped, report.Deleted, report.Failed)
	return report, nil
}

// classify computes the per-file decisions from the two id-keyed
// inventories. Remote files are classified new/updated/unchanged; indexed
// ids with no remote counterpart are returned as stale.
func classify(
	remote []domain.RemoteFile,
	indexed map[string]time.Time,
	mode domain.SyncMode,
) (work []decidedFile, stale []string) {
	remoteIDs := make(map[string]struct{}, len(remote))
	work = make([]decidedFile, 0, len(remote))

	for _, f := range remote {
		remoteIDs[f.ID] = struct{}{}

		// The index round-trips timestamps at second precision, so the
		// comparison must happen at the same granularity or sub-second
		// source timestamps reclassify every file as updated.
		modified := f.ModifiedTime.Truncate(time.Second)

		indexedAt, present := indexed[f.ID]
		switch {
		case !present:
			work = append(work, decidedFile{file: f, decision: domain.DecisionIndexNew})
		case mode == domain.SyncModeFull:
			// Full mode always reprocesses to repair prior extraction errors.
			work = append(work, decidedFile{file: f, decision: domain.DecisionIndexUpdated})
		case modified.After(indexedAt):
			work = append(work, decidedFile{file: f, decision: domain.DecisionIndexUpdated})
		default:
			// Equal timestamps count as unchanged; strict greater-than
			// avoids redundant reprocessing from clock-granularity ties.
			work = append(work, decidedFile{file: f, decision: domain.DecisionSkipUnchanged})
		}
	}

	for id := range indexed {
		if _, ok := remoteIDs[id]; !ok {
			stale = append(stale, id)
		}
	}
	return work, stale
}

// processFile transforms one remote file into one indexed document,
// isolating any failure to that single file. Returns true when a document
// was written to the index. Makes exactly zero or one upsert call.
func (r *SyncRunner) processFile(ctx context.Context, f domain.RemoteFile, report *domain.SyncReport) bool {
	content, err := r.source.FetchContent(ctx, f.ID)
	if err != nil {
		// Permanent and transient fetch failures are both skip-and-record;
		// the previous indexed state stays untouched.
		logger.Warn("Fetch failed for %s: %v", f.Path, err)
		report.RecordFailure(f.ID, domain.FailureFetch, err)
		return false
	}

	text, err := r.extractor.Extract(ctx, content, f.MIMEType)
	if err != nil {
		// The file is still indexed with empty text so it stays
		// discoverable by name and path.
		text = ""
		if errors.Is(err, domain.ErrUnsupportedContent) {
			logger.Debug("No extractor for %s (%s)", f.Path, f.MIMEType)
			report.RecordFailure(f.ID, domain.FailureExtractionUnsupported, err)
		} else {
			logger.Warn("Extraction failed for %s: %v", f.Path, err)
			report.RecordFailure(f.ID, domain.FailureExtraction, err)
		}
	}

	// UpdatedTime is stored at the precision the index returns it with,
	// so the next run's classification compares like with like.
	doc := &domain.IndexedDocument{
		FileID:        f.ID,
		FileName:      f.Name,
		FilePath:      f.Path,
		URL:           f.URL,
		MIMEType:      f.MIMEType,
		ExtractedText: text,
		UpdatedTime:   f.ModifiedTime.Truncate(time.Second),
		Size:          f.Size,
		IndexedTime:   time.Now().UTC(),
	}

	if err := r.index.Upsert(ctx, doc); err != nil {
		logger.Warn("Index write failed for %s: %v", f.Path, err)
		report.RecordFailure(f.ID, domain.FailureIndexWrite, err)
		return false
	}

	logger.Debug("Indexed %s (%d chars)", f.Path, len(text))
	return true
}

// cleanIndex deletes every currently-indexed document.
func (r *SyncRunner) cleanIndex(ctx context.Context) error {
	ids, err := r.index.ListIDsWithTimestamps(ctx)
	if err != nil {
		return fmt.Errorf("list indexed ids: %w", err)
	}

	logger.Info("Clean mode: removing %d indexed documents", len(ids))
	for id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.index.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete %s: %w", id, err)
		}
	}
	return nil
}

// Status returns progress of the active run, or an idle status.
func (r *SyncRunner) Status(_ context.Context) (*driving.SyncStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.active != nil {
		// Return a copy to avoid race conditions
		return &driving.SyncStatus{
			Running:        r.active.Running,
			FilesProcessed: r.active.FilesProcessed,
			ErrorCount:     r.active.ErrorCount,
		}, nil
	}
	return &driving.SyncStatus{Running: false}, nil
}

// trackProcessed bumps the processed counter of the active run.
// Status may be called from another goroutine while a run is in
// progress, so every mutation goes through the mutex.
func (r *SyncRunner) trackProcessed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != nil {
		r.active.FilesProcessed++
	}
}

// trackError bumps the error counter of the active run.
func (r *SyncRunner) trackError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != nil {
		r.active.ErrorCount++
	}
}

// setStatus publishes the status for the active run.
func (r *SyncRunner) setStatus(status *driving.SyncStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = status
}

// clearStatus removes the active run status.
func (r *SyncRunner) clearStatus() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = nil
}
