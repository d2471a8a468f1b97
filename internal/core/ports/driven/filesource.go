package driven

import (
	"context"

	"github.com/custodia-labs/driveindex/internal/core/domain"
)

// FileSource fetches the remote file inventory and raw file content.
// It is the external system boundary to the document store being synced.
type FileSource interface {
	// ListFiles returns the full remote inventory under the configured
	// root, traversing nested folders transitively. The listing is
	// exhaustive and deterministic in id set for a stable remote state;
	// order is not guaranteed.
	ListFiles(ctx context.Context) ([]domain.RemoteFile, error)

	// FetchContent returns the raw bytes for a file id.
	// Fails with domain.ErrNotFound for missing files and
	// domain.ErrTransientIO for network failures, so callers can in
	// principle differentiate permanent from retryable failures.
	FetchContent(ctx context.Context, fileID string) ([]byte, error)

	// Ping verifies the source is reachable and authenticated.
	Ping(ctx context.Context) error
}
