// Package store defines the persistence contract for saved graph snapshots.
//
// A Record is what the editor saves between sessions: the graph Snapshot
// plus the UI selections (source, target, mode) and a display name. Results
// and traces are never persisted — they are cheap to recompute and replaying
// a stale trace against an edited graph would mislead.
//
// Implementations share one expiry policy: every record carries its SavedAt
// stamp, and records older than the backend's configured time-to-live stop
// resolving — Load reports ErrNotFound and List omits them, exactly as if
// they had been deleted.
//
// Two backends implement the interface:
//
//   - store/badgerstore — embedded Badger database, zero external services.
//   - store/postgres    — pgx connection pool for shared deployments.
//
// All methods take a context and are safe for concurrent use.
package store
