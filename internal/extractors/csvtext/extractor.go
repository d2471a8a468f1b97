// Package csvtext renders tabular files into a flattened text form.
// The header line is preserved so column semantics remain searchable.
package csvtext

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
	"github.com/custodia-labs/driveindex/internal/extractors/plaintext"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles CSV content.
type Extractor struct{}

// New creates a new CSV extractor.
func New() *Extractor {
	return &Extractor{}
}

// MIMETypes returns the content types this extractor handles.
func (e *Extractor) MIMETypes() []string {
	return []string{
		"text/csv",
		"application/csv",
	}
}

// Extract renders rows into searchable text. The first row becomes a
// "Headers:" line; each following non-empty row becomes "Row N: a | b".
func (e *Extractor) Extract(_ context.Context, content []byte) (string, error) {
	reader := csv.NewReader(strings.NewReader(plaintext.Decode(content)))
	reader.FieldsPerRecord = -1 // ragged rows are common in the wild

	rows, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: parse csv: %w", domain.ErrExtraction, err)
	}
	if len(rows) == 0 {
		return "", nil
	}

	lines := make([]string, 0, len(rows))
	lines = append(lines, "Headers: "+strings.Join(rows[0], ", "))

	for i, row := range rows[1:] {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("Row %d: %s", i+1, strings.Join(cells, " | ")))
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
