// Package logger writes the --verbose diagnostic stream for driveindex.
// All output is gated on verbose mode and goes to one writer, so the
// listing, extraction and indexing stages can narrate what they do
// without touching the command's own stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose turns the diagnostic stream on or off.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetOutput redirects the stream, which defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func emit(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Section marks the start of a pipeline stage in the stream.
func Section(name string) {
	emit("", "\n=== %s ===", name)
}

// Debug reports a per-file or per-page detail.
func Debug(format string, args ...any) {
	emit("[DEBUG] ", format, args...)
}

// Info reports stage-level progress.
func Info(format string, args ...any) {
	emit("[INFO] ", format, args...)
}

// Warn reports a recoverable problem, such as a file that failed to sync.
func Warn(format string, args ...any) {
	emit("[WARN] ", format, args...)
}
