package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransientIO indicates a network or I/O failure that may succeed
	// on a later run. The orchestrator records it and moves on.
	ErrTransientIO = errors.New("transient I/O failure")

	// ErrUnsupportedContent indicates no extractor is registered for a
	// content type. Callers treat it as a valid, empty-text outcome.
	ErrUnsupportedContent = errors.New("unsupported content type")

	// ErrExtraction indicates an extractor rejected malformed content.
	ErrExtraction = errors.New("extraction failed")

	// ErrSourceUnavailable indicates the file source is unreachable.
	// Fatal for a sync run.
	ErrSourceUnavailable = errors.New("file source unavailable")

	// ErrIndexUnavailable indicates the index store is unreachable.
	// Fatal for a sync run.
	ErrIndexUnavailable = errors.New("index store unavailable")

	// ErrAuthRequired indicates the file source requires authentication
	// but no usable credentials are configured.
	ErrAuthRequired = errors.New("authentication required")
)
