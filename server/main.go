// The bellman server exposes the engine and the snapshot store over HTTP:
// POST /solve for one-shot runs, /graphs for saved snapshots, and
// GET /graphs/:id/solve to run a saved snapshot's stored selections.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v3"

	"github.com/Ryan2486/Bellman/store"
	"github.com/Ryan2486/Bellman/store/badgerstore"
	"github.com/Ryan2486/Bellman/store/postgres"
)

func main() {
	cfg, err := LoadConfig(configPath())
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	st, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer st.Close()

	app := fiber.New()
	srv := &server{store: st, logger: logger}
	srv.register(app)

	logger.Info("listening", "addr", cfg.Listen, "backend", cfg.Store.Backend)
	log.Fatal(app.Listen(cfg.Listen))
}

// openStore builds the configured backend. "memory" is Badger's in-memory
// mode, handy for demos and tests; it forgets everything on shutdown.
func openStore(ctx context.Context, cfg Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.Store.Backend {
	case "badger":
		bcfg := badgerstore.DefaultConfig(cfg.Store.Path)
		bcfg.TTL = cfg.TTL()
		bcfg.Logger = logger
		return badgerstore.Open(bcfg)
	case "memory":
		bcfg := badgerstore.InMemoryConfig()
		bcfg.TTL = cfg.TTL()
		bcfg.Logger = logger
		return badgerstore.Open(bcfg)
	case "postgres":
		return postgres.Open(ctx, cfg.Store.PostgresURL, cfg.TTL())
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
