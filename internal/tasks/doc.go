// Package tasks runs long playlist operations against a setlist server with progress reporting.
//
// # Bulk Export
//
// [Exporter.BulkExport] exports many playlists concurrently:
//   - Resolves the playlist names (all playlists when none are given)
//   - Fans names out to a bounded worker pool sharing one [rate.Limiter]
//   - Writes one file per playlist in the requested [formatter.Format]
//   - Writes export_manifest.json summarizing successes and failures
//
// A failed playlist is recorded in the result and does not stop the others.
//
// # Progress Reporting
//
// Progress is sent on an optional channel as [ProgressUpdate] values.
// Updates use select with default to prevent blocking, so a slow reader only misses updates.
package tasks
