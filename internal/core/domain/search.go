package domain

import "time"

// SearchResult represents a single ranked search hit returned by the
// index store. The JSON shape is the query-surface contract.
type SearchResult struct {
	// FileID identifies the matched document.
	FileID string `json:"file_id"`

	// FileName is the file name at the source.
	FileName string `json:"file_name"`

	// FilePath is the source-relative path.
	FilePath string `json:"file_path"`

	// URL is the web link for opening the file at the source.
	URL string `json:"url"`

	// MIMEType is the declared content type.
	MIMEType string `json:"mime_type"`

	// Score is the relevance score assigned by the index store.
	Score float64 `json:"score"`

	// UpdatedTime is the source modification time of the indexed copy.
	UpdatedTime time.Time `json:"updated_time"`

	// Highlights contains excerpt fragments with matched terms.
	Highlights []string `json:"highlights,omitempty"`
}
