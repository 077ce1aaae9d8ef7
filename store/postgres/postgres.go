package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ryan2486/Bellman/store"
)

// Store implements store.Store on a PostgreSQL pool. Expiry is read-side:
// Load and List ignore rows whose saved_at is older than the TTL, and Purge
// removes them. The zero TTL keeps records forever.
type Store struct {
	db  *pgxpool.Pool
	ttl time.Duration
}

var _ store.Store = (*Store)(nil)

// New wraps an existing pool the caller manages. The schema is assumed to be
// in place; use CreateSchema or Open otherwise.
func New(db *pgxpool.Pool, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// Open creates a pool from a connection URL and applies the embedded schema.
// The context bounds both the pool construction and the schema round trip, so
// an unreachable database fails here rather than on first use.
func Open(ctx context.Context, url string, ttl time.Duration) (*Store, error) {
	db, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("postgres: create pool: %w", err)
	}

	s := New(db, ttl)
	if err := s.CreateSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: apply schema: %w", err)
	}

	return s, nil
}

// Close releases the pool. Safe to call once all queries have returned.
func (s *Store) Close() error {
	s.db.Close()
	return nil
}

// cutoff is the oldest saved_at still considered live. The zero time admits
// every row, which is how a zero TTL disables expiry.
func (s *Store) cutoff() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}

	return time.Now().UTC().Add(-s.ttl)
}
