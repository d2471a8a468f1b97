package drive

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	drivev3 "google.golang.org/api/drive/v3"

	"github.com/custodia-labs/driveindex/internal/core/domain"
)

func TestItemToRemoteFile(t *testing.T) {
	item := &drivev3.File{
		Id:           "abc123",
		Name:         "report.pdf",
		MimeType:     "application/pdf",
		Size:         2048,
		WebViewLink:  "https://drive.google.com/file/d/abc123/view",
		ModifiedTime: "2026-04-01T09:30:00.000Z",
	}

	f := itemToRemoteFile(item, "projects/report.pdf")

	assert.Equal(t, "abc123", f.ID)
	assert.Equal(t, "report.pdf", f.Name)
	assert.Equal(t, "projects/report.pdf", f.Path)
	assert.Equal(t, "application/pdf", f.MIMEType)
	assert.Equal(t, int64(2048), f.Size)
	assert.Equal(t, "https://drive.google.com/file/d/abc123/view", f.URL)

	expected := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	assert.True(t, f.ModifiedTime.Equal(expected))
}

func TestItemToRemoteFile_BadTimestamp(t *testing.T) {
	item := &drivev3.File{Id: "x", ModifiedTime: "not-a-time"}

	f := itemToRemoteFile(item, "x")
	assert.True(t, f.ModifiedTime.IsZero())
}

func TestItemToRemoteFile_WorkspaceFileDeclaredAsExportType(t *testing.T) {
	item := &drivev3.File{
		Id:           "doc1",
		Name:         "Meeting notes",
		MimeType:     "application/vnd.google-apps.document",
		ModifiedTime: "2026-04-01T09:30:00Z",
	}

	f := itemToRemoteFile(item, "Meeting notes")

	// Declared type must match what FetchContent will return.
	assert.Equal(t, ExportMIMEType, f.MIMEType)
}

func TestDeclaredMIMEType(t *testing.T) {
	assert.Equal(t, "text/plain", declaredMIMEType("text/plain"))
	assert.Equal(t, ExportMIMEType, declaredMIMEType("application/vnd.google-apps.document"))
	assert.Equal(t, ExportMIMEType, declaredMIMEType("application/vnd.google-apps.spreadsheet"))
}

func TestIsWorkspaceFile(t *testing.T) {
	assert.True(t, isWorkspaceFile("application/vnd.google-apps.document"))
	assert.True(t, isWorkspaceFile(MIMETypeFolder))
	assert.False(t, isWorkspaceFile("application/pdf"))
	assert.False(t, isWorkspaceFile("text/plain"))
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "a.txt", joinPath("", "a.txt"))
	assert.Equal(t, "docs/a.txt", joinPath("docs", "a.txt"))
	assert.Equal(t, "docs/sub/a.txt", joinPath("docs/sub", "a.txt"))
}

func TestWrapAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "404 is permanent",
			err:      &googleapi.Error{Code: http.StatusNotFound},
			expected: domain.ErrNotFound,
		},
		{
			name:     "401 needs auth",
			err:      &googleapi.Error{Code: http.StatusUnauthorized},
			expected: domain.ErrAuthRequired,
		},
		{
			name:     "403 needs auth",
			err:      &googleapi.Error{Code: http.StatusForbidden},
			expected: domain.ErrAuthRequired,
		},
		{
			name:     "500 is transient",
			err:      &googleapi.Error{Code: http.StatusInternalServerError},
			expected: domain.ErrTransientIO,
		},
		{
			name:     "network error is transient",
			err:      errors.New("connection reset"),
			expected: domain.ErrTransientIO,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := wrapAPIError(tc.err)
			assert.ErrorIs(t, wrapped, tc.expected)
		})
	}
}

func TestRateLimiter_AllowsBurst(t *testing.T) {
	limiter := NewRateLimiter()
	ctx := context.Background()

	// The burst allowance must pass without measurable waiting.
	start := time.Now()
	for i := 0; i < burstSize; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestRateLimiter_RespectsCancellation(t *testing.T) {
	limiter := NewRateLimiter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Drain the burst so the next wait would block.
	for i := 0; i < burstSize; i++ {
		_ = limiter.Wait(context.Background())
	}
	err := limiter.Wait(ctx)
	assert.Error(t, err)
}
