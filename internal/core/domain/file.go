package domain

import "time"

// RemoteFile is one file as seen at the remote source.
// It is a point-in-time snapshot taken during a listing, never a live handle.
type RemoteFile struct {
	// ID is the stable unique identifier assigned by the source.
	ID string

	// Name is the file name.
	Name string

	// Path is the slash-separated path relative to the sync root.
	Path string

	// MIMEType is the declared content type (e.g., "application/pdf").
	MIMEType string

	// Size is the file size in bytes.
	Size int64

	// ModifiedTime is the last modification time on the source clock.
	ModifiedTime time.Time

	// URL is the web link for opening the file at the source.
	URL string
}
