package driven

import "context"

// Extractor converts raw bytes of a single format into plain text.
// Implementations must not panic on malformed input; they return
// domain.ErrExtraction (wrapped) instead.
type Extractor interface {
	// MIMETypes returns the content types this extractor handles.
	MIMETypes() []string

	// Extract converts raw content to plain text.
	Extract(ctx context.Context, content []byte) (string, error)
}

// ExtractorRegistry dispatches content to the extractor registered for
// its declared content type.
type ExtractorRegistry interface {
	// Extract converts raw content of the given MIME type to plain text.
	// Returns domain.ErrUnsupportedContent when no extractor is
	// registered for the type; callers must treat that as a valid,
	// empty-text outcome rather than a hard failure.
	Extract(ctx context.Context, content []byte, mimeType string) (string, error)

	// Supports reports whether an extractor is registered for the type.
	Supports(mimeType string) bool
}

// CommandRunner executes an external binary and returns its stdout.
// Extractors that wrap external tools (pdftotext, tesseract) depend on
// this seam so tests can substitute a double.
type CommandRunner interface {
	// Run executes the named binary with args and returns stdout.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
