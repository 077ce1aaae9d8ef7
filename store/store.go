package store

import (
	"context"
	"errors"
	"time"

	"github.com/Ryan2486/Bellman/bellmanford"
	"github.com/Ryan2486/Bellman/core"
)

var (
	// ErrNotFound is returned by Load and Delete when no live record has
	// the given ID — absent and expired records are indistinguishable.
	ErrNotFound = errors.New("store: record not found")

	// ErrEmptyID is returned by Load and Delete when the ID is empty.
	ErrEmptyID = errors.New("store: empty record id")

	// ErrNilRecord is returned by Save when the record is nil.
	ErrNilRecord = errors.New("store: nil record")
)

// Record is one saved editor session: the graph snapshot plus the selections
// needed to re-run it.
type Record struct {
	// ID is the record's UUID. Save assigns one when empty.
	ID string `json:"id"`

	// Name is the user-facing display name. May be empty.
	Name string `json:"name"`

	// Snapshot is the full graph: nodes (with metadata) and edges.
	Snapshot core.Snapshot `json:"snapshot"`

	// Source and Target are the saved endpoint selections.
	Source string `json:"source"`
	Target string `json:"target"`

	// Mode is the saved optimization direction.
	Mode bellmanford.Mode `json:"mode"`

	// SavedAt is stamped by Save (UTC) and drives the expiry policy.
	SavedAt time.Time `json:"savedAt"`
}

// Store persists Records with a time-to-live expiry policy.
type Store interface {
	// Save upserts the record, assigning a UUID when ID is empty and
	// stamping SavedAt with the current UTC time. Returns the record's ID.
	Save(ctx context.Context, rec *Record) (string, error)

	// Load returns the live record with the given ID, or ErrNotFound when
	// it is absent or expired.
	Load(ctx context.Context, id string) (*Record, error)

	// List returns every live record, newest first. Never nil.
	List(ctx context.Context) ([]Record, error)

	// Delete removes the record with the given ID, or ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases the backend's resources.
	Close() error
}
