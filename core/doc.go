// Package core provides the immutable graph snapshot that every algorithm in
// this module consumes: a validating Builder, the frozen Graph, and a JSON
// Snapshot codec for wire transfer and persistence.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Directed edges only, one edge per ordered (from,to) pair.
//   - Signed 64-bit integer weights; negative weights are legal
//     (improving-cycle analysis is a downstream concern, not a build error).
//   - Opaque per-node metadata (json.RawMessage) that no algorithm inspects.
//   - No mutation after Build — a Graph is a value frozen in time, safe to
//     share across goroutines without locks.
//   - Deterministic iteration — Nodes() and Edges() return the caller's
//     insertion order, never a sorted or hashed order. The edge order is the
//     canonical sweep order for relaxation, trace generation and
//     tied-predecessor bookkeeping.
//
// Why an immutable snapshot?
//
//   - Optimal-path computation is a pure function of one graph state; an
//     editor mutating mid-run would silently corrupt distances.
//   - Reproducibility — the same declaration sequence always yields the same
//     Graph, the same edge sweep, and therefore the same output, bit for bit.
//   - Sharing — concurrent solves on one Graph need no coordination.
//
// Construction:
//
//	g, err := core.NewBuilder().
//	    AddNode("A").
//	    AddNode("B", core.WithMeta(json.RawMessage(`{"x":40,"y":25}`))).
//	    AddEdge("A", "B", 2).
//	    Build()
//
// Builder methods chain and never panic; the first structural violation is
// recorded and returned by Build, wrapped in ErrInvalidGraph:
//
//	ErrEmptyNodeID     - node declared with an empty ID
//	ErrDuplicateNode   - node ID declared twice
//	ErrUnknownEndpoint - edge endpoint never declared
//	ErrDuplicateEdge   - second edge on the same ordered pair
//
// Wire form:
//
//	snap := g.Snapshot()            // Graph → Snapshot (JSON-taggable)
//	g2, err := snap.Build()         // Snapshot → Graph, same validation
//
// Array order in the Snapshot document is the node/edge order of the built
// Graph, so a decode→build→snapshot round trip is order-preserving.
//
// Core Methods:
//
//	NodeCount() int            // O(1)
//	EdgeCount() int            // O(1)
//	HasNode(id string) bool    // O(1)
//	Node(id string) (Node, bool) // O(1)
//	Nodes() []Node             // O(V), insertion order, fresh copy
//	Edges() []Edge             // O(E), insertion order, fresh copy
//	Snapshot() Snapshot        // O(V+E)
package core
