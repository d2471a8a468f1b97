package domain

import "time"

// SyncMode selects the reindexing strategy for a sync run.
type SyncMode int

const (
	// SyncModeFull reprocesses every remote file, even if unchanged.
	// Repairs any prior extraction errors.
	SyncModeFull SyncMode = iota

	// SyncModeIncremental reprocesses only files whose source modification
	// time is strictly newer than the indexed one.
	SyncModeIncremental
)

// String returns the mode name for logs and reports.
func (m SyncMode) String() string {
	switch m {
	case SyncModeFull:
		return "full"
	case SyncModeIncremental:
		return "incremental"
	default:
		return "unknown"
	}
}

// SyncDecision is the per-file classification computed by comparing the
// remote inventory against the indexed inventory. Never persisted.
type SyncDecision int

const (
	// DecisionIndexNew indicates the file is not present in the index.
	DecisionIndexNew SyncDecision = iota

	// DecisionIndexUpdated indicates the file is present and must be
	// reprocessed.
	DecisionIndexUpdated

	// DecisionSkipUnchanged indicates the indexed copy is current.
	DecisionSkipUnchanged

	// DecisionDeleteStale indicates the indexed document no longer exists
	// at the source.
	DecisionDeleteStale
)

// String returns the decision name for logs.
func (d SyncDecision) String() string {
	switch d {
	case DecisionIndexNew:
		return "index_new"
	case DecisionIndexUpdated:
		return "index_updated"
	case DecisionSkipUnchanged:
		return "skip_unchanged"
	case DecisionDeleteStale:
		return "delete_stale"
	default:
		return "unknown"
	}
}

// FailureReason classifies a per-file failure recorded in the sync report.
type FailureReason string

const (
	// FailureFetch indicates the file content could not be fetched.
	// The file is skipped; no upsert is made.
	FailureFetch FailureReason = "fetch_failed"

	// FailureExtractionUnsupported indicates no extractor is registered
	// for the content type. The file is still indexed with empty text.
	FailureExtractionUnsupported FailureReason = "extraction_unsupported"

	// FailureExtraction indicates the extractor rejected the content.
	// The file is still indexed with empty text.
	FailureExtraction FailureReason = "extraction_failed"

	// FailureIndexWrite indicates the upsert into the index store failed.
	// The only failure that leaves no indexed record for the file.
	FailureIndexWrite FailureReason = "index_write_failed"

	// FailureIndexDelete indicates a stale document could not be removed.
	FailureIndexDelete FailureReason = "index_delete_failed"
)

// SyncFailure pairs a file with the reason it failed during a run.
type SyncFailure struct {
	// FileID identifies the file at the source.
	FileID string `json:"file_id"`

	// Reason classifies the failure.
	Reason FailureReason `json:"reason"`

	// Detail is the underlying error message, for diagnostics.
	Detail string `json:"detail,omitempty"`
}

// SyncOptions configures a sync run.
type SyncOptions struct {
	// Mode selects full or incremental reindexing.
	Mode SyncMode

	// Clean deletes every indexed document before processing, forcing a
	// full rebuild. Orthogonal to Mode.
	Clean bool
}

// SyncReport is the aggregate outcome of one sync run. Constructed fresh
// per run and returned to the caller; never persisted.
type SyncReport struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`

	// Mode is the mode the run executed in.
	Mode SyncMode `json:"-"`

	// Clean records whether the index was dropped before the run.
	Clean bool `json:"clean"`

	// TotalFiles is the size of the remote inventory.
	TotalFiles int `json:"total_files"`

	// Indexed counts new and updated documents written to the index.
	Indexed int `json:"indexed"`

	// Skipped counts files left untouched as unchanged.
	Skipped int `json:"skipped"`

	// Deleted counts stale documents removed from the index.
	Deleted int `json:"deleted"`

	// Failed counts files with a recorded failure.
	Failed int `json:"failed"`

	// Failures lists each failed file with its reason.
	Failures []SyncFailure `json:"failures,omitempty"`

	// Started is when the run began.
	Started time.Time `json:"started"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration"`
}

// RecordFailure appends a failure and bumps the failed counter.
func (r *SyncReport) RecordFailure(fileID string, reason FailureReason, err error) {
	f := SyncFailure{FileID: fileID, Reason: reason}
	if err != nil {
		f.Detail = err.Error()
	}
	r.Failures = append(r.Failures, f)
	r.Failed++
}
