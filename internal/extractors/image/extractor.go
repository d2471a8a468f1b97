// Package image performs optical character recognition on images by
// shelling out to the tesseract binary. Output is best effort:
// low-confidence text is returned rather than rejected.
package image

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles image content via an external tesseract binary.
type Extractor struct {
	runner driven.CommandRunner
}

// New creates a new OCR extractor using the given command runner.
func New(runner driven.CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// MIMETypes returns the content types this extractor handles.
func (e *Extractor) MIMETypes() []string {
	return []string{
		"image/png",
		"image/jpeg",
		"image/tiff",
		"image/bmp",
	}
}

// Extract runs OCR over the image and returns whatever text tesseract
// recognises, however little.
func (e *Extractor) Extract(ctx context.Context, content []byte) (string, error) {
	f, err := os.CreateTemp("", "ocr-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.Write(content); err != nil {
		f.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	// "stdout" makes tesseract print recognised text instead of
	// writing an output file.
	out, err := e.runner.Run(ctx, "tesseract", tmp, "stdout")
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrExtraction, err)
	}

	return strings.TrimSpace(string(out)), nil
}

// InstallInstructions explains how to get the tesseract binary.
func InstallInstructions() string {
	return "tesseract is required for image OCR:\n" +
		"  macOS:  brew install tesseract\n" +
		"  Linux:  apt install tesseract-ocr"
}
