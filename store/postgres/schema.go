package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
    id       UUID PRIMARY KEY,
    name     TEXT NOT NULL DEFAULT '',
    source   TEXT NOT NULL DEFAULT '',
    target   TEXT NOT NULL DEFAULT '',
    mode     TEXT NOT NULL DEFAULT 'minimize',
    snapshot JSONB NOT NULL DEFAULT '{}',
    saved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_records_saved_at ON records(saved_at);
`

// CreateSchema creates the records table and its saved_at index if they
// don't exist.
func (s *Store) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the records table.
func (s *Store) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS records CASCADE;`)
	return err
}
