// Package pdf extracts embedded text from PDF documents by shelling
// out to pdftotext (poppler-utils), preserving layout order: left to
// right, top to bottom, page by page.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF content via an external pdftotext binary.
type Extractor struct {
	runner driven.CommandRunner
}

// New creates a new PDF extractor using the given command runner.
func New(runner driven.CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// MIMETypes returns the content types this extractor handles.
func (e *Extractor) MIMETypes() []string {
	return []string{"application/pdf"}
}

// Extract writes the content to a temp file and runs pdftotext on it.
// Malformed PDFs surface as domain.ErrExtraction.
func (e *Extractor) Extract(ctx context.Context, content []byte) (string, error) {
	tmp, err := writeTempFile(content, "*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp)

	// -layout keeps reading order; "-" sends text to stdout.
	out, err := e.runner.Run(ctx, "pdftotext", "-layout", tmp, "-")
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrExtraction, err)
	}

	return strings.TrimSpace(string(out)), nil
}

// InstallInstructions explains how to get the pdftotext binary.
func InstallInstructions() string {
	return "pdftotext is required for PDF extraction:\n" +
		"  macOS:  brew install poppler\n" +
		"  Linux:  apt install poppler-utils"
}

// writeTempFile stores content in a temp file and returns its path.
func writeTempFile(content []byte, pattern string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return filepath.Clean(f.Name()), nil
}
