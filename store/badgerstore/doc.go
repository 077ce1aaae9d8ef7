// Package badgerstore persists records in an embedded Badger database.
//
// Records are stored as JSON values under "record/<id>" keys. The expiry
// policy rides on Badger's native entry TTL: an expired key simply stops
// resolving, so Load reports store.ErrNotFound and List skips it without any
// sweeper of our own. Value-log garbage collection runs on a background
// ticker for persistent stores; in-memory stores (tests) skip it.
//
// Open a production store with DefaultConfig and a directory path, or an
// isolated throwaway one with InMemoryConfig:
//
//	st, err := badgerstore.Open(badgerstore.DefaultConfig("/var/lib/bellman"))
//	if err != nil { ... }
//	defer st.Close()
//
// The Store is safe for concurrent use.
package badgerstore
