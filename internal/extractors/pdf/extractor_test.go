package pdf

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
)

// mockRunner is a test double for CommandRunner.
type mockRunner struct {
	output []byte
	err    error

	name string
	args []string
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	m.name = name
	m.args = args
	return m.output, m.err
}

func TestNew(t *testing.T) {
	extractor := New(&mockRunner{})
	require.NotNil(t, extractor)
}

func TestMIMETypes(t *testing.T) {
	extractor := New(&mockRunner{})
	assert.Equal(t, []string{"application/pdf"}, extractor.MIMETypes())
}

func TestExtract(t *testing.T) {
	runner := &mockRunner{output: []byte("Page one text.\n\nPage two text.\n")}
	extractor := New(runner)

	text, err := extractor.Extract(context.Background(), []byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "Page one text.\n\nPage two text.", text)

	assert.Equal(t, "pdftotext", runner.name)
	require.Len(t, runner.args, 3)
	assert.Equal(t, "-layout", runner.args[0])
	assert.Equal(t, "-", runner.args[2])
}

func TestExtract_RunnerError(t *testing.T) {
	runner := &mockRunner{err: errors.New("pdftotext crashed")}
	extractor := New(runner)

	text, err := extractor.Extract(context.Background(), []byte("not a pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtraction)
	assert.Empty(t, text)
}

func TestExtract_EmptyOutput(t *testing.T) {
	runner := &mockRunner{output: []byte("  \n\n")}
	extractor := New(runner)

	text, err := extractor.Extract(context.Background(), []byte("%PDF-1.4 scanned"))
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestInstallInstructions(t *testing.T) {
	instructions := InstallInstructions()
	assert.Contains(t, instructions, "pdftotext")
	assert.Contains(t, instructions, "brew install poppler")
	assert.Contains(t, instructions, "apt install poppler-utils")
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Extractor = (*Extractor)(nil)
}
