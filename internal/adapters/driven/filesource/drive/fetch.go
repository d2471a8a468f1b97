package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/logger"
)

// ExportMIMEType is the format Google Workspace files are exported as.
const ExportMIMEType = "application/pdf"

// MaxFetchSize caps downloaded content at 20MB. Larger files are
// fetched truncated rather than failing the whole pipeline step.
const MaxFetchSize = 20 * 1024 * 1024

// FetchContent downloads the raw bytes for a file id. Workspace files
// are exported as PDF; regular files are downloaded as-is.
func (s *Source) FetchContent(ctx context.Context, fileID string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	meta, err := s.svc.Files.Get(fileID).Fields("mimeType").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get metadata for %s: %w", fileID, wrapAPIError(err))
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var resp *http.Response
	if isWorkspaceFile(meta.MimeType) {
		logger.Debug("Exporting workspace file %s as %s", fileID, ExportMIMEType)
		resp, err = s.svc.Files.Export(fileID, ExportMIMEType).Context(ctx).Download()
	} else {
		resp, err = s.svc.Files.Get(fileID).Context(ctx).Download()
	}
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", fileID, wrapAPIError(err))
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(io.LimitReader(resp.Body, MaxFetchSize))
	if err != nil {
		return nil, fmt.Errorf("read content of %s: %w", fileID, domain.ErrTransientIO)
	}

	logger.Debug("Downloaded %d bytes for %s", len(content), fileID)
	return content, nil
}

// isWorkspaceFile reports whether the MIME type is a Google Workspace
// format that must be exported rather than downloaded.
func isWorkspaceFile(mimeType string) bool {
	return strings.HasPrefix(mimeType, workspaceMIMEPrefix)
}

// wrapAPIError maps Drive API failures onto the domain error taxonomy:
// 404 is permanent, everything else is treated as retryable on a later
// run.
func wrapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", domain.ErrAuthRequired, err)
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrTransientIO, err)
}
