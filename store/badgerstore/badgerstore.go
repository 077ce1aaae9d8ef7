package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/Ryan2486/Bellman/store"
)

// recordPrefix namespaces every record key; the UUID follows directly.
const recordPrefix = "record/"

// DefaultTTL is the record lifetime applied by DefaultConfig.
const DefaultTTL = 7 * 24 * time.Hour

// Config holds configuration for a badgerstore instance.
type Config struct {
	// Path is the directory for the database files. Required unless
	// InMemory is set; created if it does not exist.
	Path string

	// InMemory keeps everything in RAM with no disk persistence.
	InMemory bool

	// TTL is the record lifetime; 0 disables expiry.
	TTL time.Duration

	// SyncWrites forces synchronous writes for durability.
	SyncWrites bool

	// Logger receives Badger's internal logging and the store's own
	// operational events. Nil silences both.
	Logger *slog.Logger

	// GCInterval is how often value-log garbage collection runs;
	// 0 disables it. Always disabled for in-memory stores.
	GCInterval time.Duration

	// GCDiscardRatio is the minimum discardable share of the value log
	// before a GC pass rewrites it.
	GCDiscardRatio float64
}

// DefaultConfig returns the production configuration for a store at path:
// durable writes, week-long TTL, five-minute GC cadence.
func DefaultConfig(path string) Config {
	return Config{
		Path:           path,
		TTL:            DefaultTTL,
		SyncWrites:     true,
		GCInterval:     5 * time.Minute,
		GCDiscardRatio: 0.5,
	}
}

// InMemoryConfig returns an isolated throwaway configuration for tests:
// no disk I/O, no expiry, no GC.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Store implements store.Store on an embedded Badger database.
// Construct with Open.
type Store struct {
	db     *badger.DB
	ttl    time.Duration
	logger *slog.Logger

	gcStop chan struct{}
	gcDone chan struct{}
}

var _ store.Store = (*Store)(nil)

// Open opens (or creates) the database described by cfg.
// The caller owns the returned Store and must Close it.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badgerstore: path required for a persistent store")
	}

	// 1) Translate Config into Badger options.
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("badgerstore: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	// 2) Open and wire the lifecycle.
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerstore: open database: %w", err)
	}
	s := &Store{db: db, ttl: cfg.TTL, logger: cfg.Logger}
	if cfg.GCInterval > 0 && !cfg.InMemory {
		s.gcStop = make(chan struct{})
		s.gcDone = make(chan struct{})
		go s.runGC(cfg.GCInterval, cfg.GCDiscardRatio)
	}

	return s, nil
}

// Save upserts the record under record/<id>, assigning a UUID when ID is
// empty and stamping SavedAt. The configured TTL is attached to the entry.
func (s *Store) Save(ctx context.Context, rec *store.Record) (string, error) {
	if rec == nil {
		return "", store.ErrNilRecord
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.SavedAt = time.Now().UTC()

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("badgerstore: encode record: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(recordKey(rec.ID), data)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}

		return txn.SetEntry(e)
	})
	if err != nil {
		return "", fmt.Errorf("badgerstore: save record: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug("record saved",
			slog.String("id", rec.ID),
			slog.Int("bytes", len(data)))
	}

	return rec.ID, nil
}

// Load returns the live record with the given ID. Expired entries stop
// resolving inside Badger itself, so they surface as store.ErrNotFound.
func (s *Store) Load(ctx context.Context, id string) (*store.Record, error) {
	if id == "" {
		return nil, store.ErrEmptyID
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rec store.Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("badgerstore: load record: %w", err)
	}

	return &rec, nil
}

// List returns every live record, newest first. The iterator already skips
// expired entries; ordering is by SavedAt since key order is UUID order.
func (s *Store) List(ctx context.Context) ([]store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := []byte(recordPrefix)
	out := []store.Record{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec store.Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			out = append(out, rec)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badgerstore: list records: %w", err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })

	return out, nil
}

// Delete removes the record with the given ID, or store.ErrNotFound when no
// live entry has it.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return store.ErrEmptyID
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	key := recordKey(id)
	err := s.db.Update(func(txn *badger.Txn) error {
		// Get first: Badger's Delete is silent on missing keys.
		if _, err := txn.Get(key); err != nil {
			return err
		}

		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("badgerstore: delete record: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug("record deleted", slog.String("id", id))
	}

	return nil
}

// Close stops the GC loop (if running) and closes the database.
func (s *Store) Close() error {
	if s.gcStop != nil {
		close(s.gcStop)
		<-s.gcDone
	}

	return s.db.Close()
}

// runGC rewrites the value log on a ticker until Close.
func (s *Store) runGC(interval time.Duration, ratio float64) {
	defer close(s.gcDone)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.gcStop:
			return
		case <-ticker.C:
			// ErrNoRewrite just means there was nothing worth collecting.
			err := s.db.RunValueLogGC(ratio)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) && s.logger != nil {
				s.logger.Warn("badger value log GC", slog.String("error", err.Error()))
			}
		}
	}
}

func recordKey(id string) []byte { return []byte(recordPrefix + id) }

// badgerLogger adapts slog.Logger to Badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
