package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Ryan2486/Bellman/bellmanford"
	"github.com/Ryan2486/Bellman/store"
)

// Save upserts a record. An empty ID gets a fresh UUID, SavedAt is always
// restamped, and the snapshot travels as jsonb. Returns the record's ID.
func (s *Store) Save(ctx context.Context, rec *store.Record) (string, error) {
	if rec == nil {
		return "", store.ErrNilRecord
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.SavedAt = time.Now().UTC()

	modeText, err := rec.Mode.MarshalText()
	if err != nil {
		return "", fmt.Errorf("postgres: encode mode: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO records (id, name, source, target, mode, snapshot, saved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		     name     = EXCLUDED.name,
		     source   = EXCLUDED.source,
		     target   = EXCLUDED.target,
		     mode     = EXCLUDED.mode,
		     snapshot = EXCLUDED.snapshot,
		     saved_at = EXCLUDED.saved_at`,
		rec.ID, rec.Name, rec.Source, rec.Target, string(modeText), rec.Snapshot, rec.SavedAt,
	)
	if err != nil {
		return "", fmt.Errorf("postgres: save record: %w", err)
	}

	return rec.ID, nil
}

// Load fetches one live record. Rows older than the TTL are treated exactly
// like missing ones: store.ErrNotFound.
func (s *Store) Load(ctx context.Context, id string) (*store.Record, error) {
	if id == "" {
		return nil, store.ErrEmptyID
	}

	rec := store.Record{ID: id}
	var modeText string
	err := s.db.QueryRow(ctx,
		`SELECT name, source, target, mode, snapshot, saved_at
		 FROM records WHERE id = $1 AND saved_at > $2`,
		id, s.cutoff(),
	).Scan(&rec.Name, &rec.Source, &rec.Target, &modeText, &rec.Snapshot, &rec.SavedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("postgres: load record: %w", err)
	}

	rec.Mode, err = bellmanford.ParseMode(modeText)
	if err != nil {
		return nil, fmt.Errorf("postgres: decode mode: %w", err)
	}

	return &rec, nil
}

// List returns all live records, newest first. Returns an empty slice (not
// nil) when the table holds nothing live.
func (s *Store) List(ctx context.Context) ([]store.Record, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, source, target, mode, snapshot, saved_at
		 FROM records WHERE saved_at > $1 ORDER BY saved_at DESC`,
		s.cutoff(),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: list records: %w", err)
	}
	defer rows.Close()

	out := []store.Record{}
	for rows.Next() {
		var rec store.Record
		var modeText string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Source, &rec.Target,
			&modeText, &rec.Snapshot, &rec.SavedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan record: %w", err)
		}
		if rec.Mode, err = bellmanford.ParseMode(modeText); err != nil {
			return nil, fmt.Errorf("postgres: decode mode: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: rows records: %w", err)
	}

	return out, nil
}

// Delete removes a record by ID, expired or not. store.ErrNotFound when no
// row carries the ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return store.ErrEmptyID
	}

	ct, err := s.db.Exec(ctx, `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: delete record: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}

// Purge deletes every expired row and reports how many went. A no-op with a
// zero TTL, since nothing ever expires.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}

	ct, err := s.db.Exec(ctx, `DELETE FROM records WHERE saved_at <= $1`, s.cutoff())
	if err != nil {
		return 0, fmt.Errorf("postgres: purge records: %w", err)
	}

	return ct.RowsAffected(), nil
}
