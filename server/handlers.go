package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Ryan2486/Bellman/bellmanford"
	"github.com/Ryan2486/Bellman/core"
	"github.com/Ryan2486/Bellman/store"
)

// solveRequest is the POST /solve body: a one-shot run with the graph
// inlined. Nodes are bare IDs here; saved records carry full node objects.
type solveRequest struct {
	Nodes  []string    `json:"nodes"`
	Edges  []core.Edge `json:"edges"`
	Source string      `json:"source"`
	Target string      `json:"target"`
	Mode   string      `json:"mode"`
}

// server bundles the handlers' dependencies.
type server struct {
	store  store.Store
	logger *slog.Logger
}

func (s *server) register(app *fiber.App) {
	app.Use(s.logRequests)

	app.Post("/solve", s.handleSolve)
	app.Post("/graphs", s.handleSaveGraph)
	app.Get("/graphs", s.handleListGraphs)
	app.Get("/graphs/:id", s.handleGetGraph)
	app.Delete("/graphs/:id", s.handleDeleteGraph)
	app.Get("/graphs/:id/solve", s.handleSolveGraph)
}

// logRequests logs one line per request after the handler responds.
func (s *server) logRequests(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.logger.Info("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)

	return err
}

func (s *server) handleSolve(c fiber.Ctx) error {
	var req solveRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	mode, err := parseMode(req.Mode)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	b := core.NewBuilder()
	for _, id := range req.Nodes {
		b.AddNode(id)
	}
	for _, e := range req.Edges {
		b.AddEdge(e.From, e.To, e.Weight)
	}
	g, err := b.Build()
	if err != nil {
		return s.fail(c, err)
	}

	res, err := bellmanford.Run(g, req.Source, req.Target, bellmanford.WithMode(mode))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(res)
}

func (s *server) handleSaveGraph(c fiber.Ctx) error {
	var rec store.Record
	if err := c.Bind().JSON(&rec); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	// Reject snapshots that cannot build before they are persisted.
	if _, err := rec.Snapshot.Build(); err != nil {
		return s.fail(c, err)
	}

	id, err := s.store.Save(c.Context(), &rec)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"id": id})
}

func (s *server) handleListGraphs(c fiber.Ctx) error {
	list, err := s.store.List(c.Context())
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(list)
}

func (s *server) handleGetGraph(c fiber.Ctx) error {
	rec, err := s.store.Load(c.Context(), c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(rec)
}

func (s *server) handleDeleteGraph(c fiber.Ctx) error {
	if err := s.store.Delete(c.Context(), c.Params("id")); err != nil {
		return s.fail(c, err)
	}

	return c.SendStatus(204)
}

// handleSolveGraph loads a saved record and runs the engine with its stored
// selections. ?mode= overrides the stored mode for the one run without
// touching the record.
func (s *server) handleSolveGraph(c fiber.Ctx) error {
	rec, err := s.store.Load(c.Context(), c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}

	mode := rec.Mode
	if q := c.Query("mode"); q != "" {
		if mode, err = bellmanford.ParseMode(q); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	g, err := rec.Snapshot.Build()
	if err != nil {
		return s.fail(c, err)
	}
	res, err := bellmanford.Run(g, rec.Source, rec.Target, bellmanford.WithMode(mode))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(res)
}

// fail maps domain errors onto HTTP statuses. Unreachable targets and
// detected cycles are not errors — they come back as 200 Results; only
// rejected inputs and missing records land here. Unrecognized errors are
// 500s and the only ones logged loudly.
func (s *server) fail(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "record not found"})
	case errors.Is(err, store.ErrEmptyID):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, core.ErrInvalidGraph),
		errors.Is(err, bellmanford.ErrMissingEndpoint),
		errors.Is(err, bellmanford.ErrEndpointNotFound),
		errors.Is(err, bellmanford.ErrInvalidGraph):
		return c.Status(422).JSON(fiber.Map{"error": err.Error()})
	default:
		s.logger.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
}

// parseMode treats an absent mode as Minimize, the engine default.
func parseMode(s string) (bellmanford.Mode, error) {
	if s == "" {
		return bellmanford.Minimize, nil
	}

	return bellmanford.ParseMode(s)
}
