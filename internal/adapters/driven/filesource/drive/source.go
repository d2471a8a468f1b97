// Package drive implements the FileSource port against the Google
// Drive v3 API. Listing walks the configured root folder transitively;
// content is downloaded directly for regular files and exported for
// Google Workspace formats.
package drive

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.FileSource = (*Source)(nil)

// Source is a Google Drive file source rooted at one folder.
type Source struct {
	svc     *drive.Service
	root    string
	limiter *RateLimiter
}

// NewSource creates a Drive file source for the given root folder id.
func NewSource(ctx context.Context, ts oauth2.TokenSource, rootFolderID string) (*Source, error) {
	if rootFolderID == "" {
		return nil, fmt.Errorf("drive: root folder id is required")
	}

	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &Source{
		svc:     svc,
		root:    rootFolderID,
		limiter: NewRateLimiter(),
	}, nil
}

// Ping makes a shallow API call to verify reachability and auth.
func (s *Source) Ping(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := s.svc.About.Get().Fields("user").Context(ctx).Do(); err != nil {
		return fmt.Errorf("drive unreachable: %w", wrapAPIError(err))
	}
	return nil
}
