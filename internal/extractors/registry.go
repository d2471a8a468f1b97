package extractors

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
	"github.com/custodia-labs/driveindex/internal/extractors/csvtext"
	"github.com/custodia-labs/driveindex/internal/extractors/image"
	"github.com/custodia-labs/driveindex/internal/extractors/pdf"
	"github.com/custodia-labs/driveindex/internal/extractors/plaintext"
	"github.com/custodia-labs/driveindex/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps a MIME type to the extractor registered for it.
// Adding a format means registering a new extractor; no subclassing.
type Registry struct {
	byMIME map[string]driven.Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byMIME: make(map[string]driven.Extractor)}
}

// DefaultRegistry creates a registry with the standard set of
// extractors: plain text, CSV and PDF. Image OCR is registered only
// when enabled, since it needs the tesseract binary installed.
func DefaultRegistry(runner driven.CommandRunner, withOCR bool) *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(csvtext.New())
	r.Register(pdf.New(runner))
	if withOCR {
		r.Register(image.New(runner))
		logger.Info("Image OCR extractor enabled")
	}
	return r
}

// Register adds an extractor for every MIME type it declares.
// A later registration for the same type replaces the earlier one.
func (r *Registry) Register(e driven.Extractor) {
	for _, mt := range e.MIMETypes() {
		r.byMIME[normaliseMIME(mt)] = e
	}
}

// Extract converts raw content of the given MIME type to plain text.
// Returns domain.ErrUnsupportedContent when no extractor is registered.
func (r *Registry) Extract(ctx context.Context, content []byte, mimeType string) (string, error) {
	e, ok := r.byMIME[normaliseMIME(mimeType)]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedContent, mimeType)
	}

	text, err := e.Extract(ctx, content)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", mimeType, err)
	}
	return text, nil
}

// Supports reports whether an extractor is registered for the type.
func (r *Registry) Supports(mimeType string) bool {
	_, ok := r.byMIME[normaliseMIME(mimeType)]
	return ok
}

// normaliseMIME strips parameters ("text/plain; charset=utf-8") and
// lowercases the type for lookup.
func normaliseMIME(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
