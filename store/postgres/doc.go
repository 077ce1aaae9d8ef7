// Package postgres persists snapshot records in PostgreSQL through a
// pgx connection pool. It mirrors the Badger backend's semantics in SQL:
// records live in a single `records` table, and the time-to-live policy is
// enforced at read time by filtering on `saved_at` instead of relying on
// database jobs. Rows past the threshold stop resolving immediately; Purge
// deletes them for real.
//
// Open both creates the pool and applies the embedded schema, so a fresh
// database needs no migration step:
//
//	st, err := postgres.Open(ctx, "postgres://localhost/bellman", 7*24*time.Hour)
//	if err != nil { ... }
//	defer st.Close()
//
//	id, err := st.Save(ctx, &store.Record{Name: "demo", Snapshot: snap})
//
// A zero TTL disables expiry: every saved record stays visible and Purge
// becomes a no-op.
package postgres
