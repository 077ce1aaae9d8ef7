// Package bellman is a generalized Bellman–Ford toolkit: one relaxation
// engine that minimizes or maximizes path weight, proves its negative or
// positive cycles, enumerates every optimal path, and logs each relaxation
// step so the whole run can be replayed like a film.
//
// 🚀 What is Bellman?
//
//	A small, deterministic engine plus the plumbing around it:
//		• Core snapshot: immutable directed weighted graphs, validated once at build
//		• Engine: ≤ V−1 relaxation sweeps in a frozen edge order, early exit at the fixpoint
//		• Modes: Minimize (shortest) and Maximize (longest / critical path) — same loop
//		• Certification: one extra sweep turns "still improving" into cycle witnesses
//		• Ties: every optimal predecessor is kept, every optimal path enumerated
//		• Playback: a cursor that replays the step trace frame by frame
//		• Persistence: snapshot records with TTL in Badger or PostgreSQL
//		• HTTP: a Fiber server exposing solve-and-save endpoints
//
// ✨ Why choose it?
//
//   - Deterministic – identical input yields byte-identical results, replay included
//   - Honest about cycles – a detected cycle suppresses paths instead of fabricating them
//   - Tie-friendly – "the" shortest path is a set, and you get all of it
//   - Pure engine – the solver does no I/O and takes no context; the edges do
//
// Under the hood, everything is organized under six subpackages:
//
//	core/        — immutable Graph, Node, Edge, validating Builder, JSON Snapshot
//	bellmanford/ — the engine: Run, Mode, Distance, Step trace, Result
//	playback/    — step-trace replay cursor for visualizers
//	store/       — Record + Store contract, with badgerstore/ and postgres/ backends
//	server/      — Fiber HTTP service over the engine and the store
//	examples/    — runnable demos: route planning, critical path, playback
//
// Quick ASCII example:
//
//	    A ──2── B
//	    │       │
//	    2       3      Minimize A→F: both A-B-D-F and A-C-D-F cost 9,
//	    │       │      and the engine reports both.
//	    C ──3── D ──4── F
//
//	go get github.com/Ryan2486/Bellman
package bellman
