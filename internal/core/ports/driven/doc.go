// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FileSource: Lists the remote inventory and fetches raw file content
//   - IndexStore: Persists indexed documents and serves full-text queries
//   - ExtractorRegistry: Dispatches raw bytes to a per-format extractor
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
