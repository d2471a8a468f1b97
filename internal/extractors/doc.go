// Package extractors converts raw file content into plain text for
// indexing. Each format lives in its own subpackage implementing
// driven.Extractor; the Registry in this package dispatches by declared
// MIME type.
//
// Extraction is best effort. An unregistered MIME type yields
// domain.ErrUnsupportedContent, which the sync pipeline treats as a
// valid empty-text outcome so the file stays searchable by metadata.
package extractors
