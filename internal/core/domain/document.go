package domain

import "time"

// IndexedDocument is one document as persisted in the index store.
// The JSON field names are the contract the query surfaces depend on;
// do not rename them.
type IndexedDocument struct {
	// FileID matches the RemoteFile.ID that produced this document.
	FileID string `json:"file_id"`

	// FileName is the file name at the source.
	FileName string `json:"file_name"`

	// FilePath is the source-relative path.
	FilePath string `json:"file_path"`

	// URL is the web link for opening the file at the source.
	URL string `json:"url"`

	// MIMEType is the declared content type.
	MIMEType string `json:"mime_type"`

	// ExtractedText is the full text content. Empty when extraction was
	// unsupported or failed; the document stays discoverable by metadata.
	ExtractedText string `json:"extracted_text"`

	// UpdatedTime is the source modification time recorded at indexing.
	UpdatedTime time.Time `json:"updated_time"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// IndexedTime is when the document was last written to the index.
	IndexedTime time.Time `json:"indexed_time"`
}
