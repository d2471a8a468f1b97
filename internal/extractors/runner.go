package extractors

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
)

// Ensure ExecRunner implements the interface.
var _ driven.CommandRunner = (*ExecRunner)(nil)

// ExecRunner runs external binaries with os/exec. Extractors wrapping
// command-line tools (pdftotext, tesseract) use it in production; tests
// substitute a double.
type ExecRunner struct{}

// NewExecRunner creates a new command runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the named binary with args and returns stdout.
// Stderr is folded into the error on failure.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%s: %w: %s", name, err, stderr.String())
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return stdout.Bytes(), nil
}
