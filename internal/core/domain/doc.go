// Package domain defines the core business entities for driveindex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RemoteFile: One file as seen at the remote source
//   - IndexedDocument: One document as persisted in the index store
//   - SyncDecision / SyncReport: Per-file classification and run outcome
//   - SearchResult: A ranked hit from the index store
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
