package drive

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/logger"
)

// Google Workspace MIME types that need export instead of download.
const (
	MIMETypeFolder      = "application/vnd.google-apps.folder"
	workspaceMIMEPrefix = "application/vnd.google-apps"
	listFields          = "nextPageToken, files(id, name, mimeType, size, webViewLink, modifiedTime)"
	listPageSize        = 100
)

// folderEntry is one pending folder in the breadth-first walk.
type folderEntry struct {
	id   string
	path string
}

// ListFiles walks the root folder breadth-first and returns every
// non-trashed file, transitively. Drive folders form a tree by id, so
// the walk cannot loop.
func (s *Source) ListFiles(ctx context.Context) ([]domain.RemoteFile, error) {
	var files []domain.RemoteFile
	queue := []folderEntry{{id: s.root, path: ""}}

	for len(queue) > 0 {
		folder := queue[0]
		queue = queue[1:]

		query := fmt.Sprintf("'%s' in parents and trashed=false", folder.id)
		pageToken := ""

		for {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, err
			}

			call := s.svc.Files.List().
				Q(query).
				PageSize(listPageSize).
				Fields(listFields).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}

			result, err := call.Do()
			if err != nil {
				return nil, fmt.Errorf("list folder %s: %w", folder.id, wrapAPIError(err))
			}

			for _, item := range result.Files {
				itemPath := joinPath(folder.path, item.Name)
				if item.MimeType == MIMETypeFolder {
					queue = append(queue, folderEntry{id: item.Id, path: itemPath})
					logger.Debug("Found subfolder: %s", itemPath)
					continue
				}
				files = append(files, itemToRemoteFile(item, itemPath))
				logger.Debug("Found file: %s", itemPath)
			}

			pageToken = result.NextPageToken
			if pageToken == "" {
				break
			}
		}
	}

	logger.Info("Found %d files under folder %s", len(files), s.root)
	return files, nil
}

// itemToRemoteFile converts a Drive API item to a RemoteFile snapshot.
// Workspace files are declared with their export content type so the
// extractor registry can dispatch on what FetchContent will return.
func itemToRemoteFile(item *drive.File, path string) domain.RemoteFile {
	modified, err := time.Parse(time.RFC3339, item.ModifiedTime)
	if err != nil {
		modified = time.Time{}
	}

	return domain.RemoteFile{
		ID:           item.Id,
		Name:         item.Name,
		Path:         path,
		MIMEType:     declaredMIMEType(item.MimeType),
		Size:         item.Size,
		ModifiedTime: modified,
		URL:          item.WebViewLink,
	}
}

// declaredMIMEType maps Workspace formats to the type their content is
// exported as; everything else keeps its own type.
func declaredMIMEType(mimeType string) string {
	if isWorkspaceFile(mimeType) {
		return ExportMIMEType
	}
	return mimeType
}

// joinPath appends a name to a slash-separated source-relative path.
func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
