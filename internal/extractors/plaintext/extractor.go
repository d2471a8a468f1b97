package plaintext

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text content. It never fails: any byte
// sequence decodes either as UTF-8 or through the Latin-1 fallback.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// MIMETypes returns the content types this extractor handles.
func (e *Extractor) MIMETypes() []string {
	return []string{
		"text/plain",
		"text/txt",
		"text/markdown",
		"application/txt",
	}
}

// Extract decodes the content as UTF-8, falling back to ISO-8859-1
// when the bytes are not valid UTF-8. Latin-1 maps every byte to a
// rune, so the fallback cannot fail.
func (e *Extractor) Extract(_ context.Context, content []byte) (string, error) {
	return strings.TrimSpace(Decode(content)), nil
}

// Decode converts raw bytes to a string, preferring UTF-8 with an
// ISO-8859-1 fallback. Shared with the CSV extractor.
func Decode(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		// Unreachable for ISO-8859-1, but keep the raw bytes usable.
		return string(content)
	}
	return string(decoded)
}
