// Package bellmanford provides a generalized Bellman-Ford engine on directed
// weighted graphs: single-source optimal distances under a configurable
// optimization mode, exhaustive tied-predecessor tracking, improving-cycle
// certification, and enumeration of every optimal source→target path.
//
// Overview:
//
//   - Relaxation sweeps every edge up to |V|−1 times in the graph's frozen
//     insertion order, improving distances under the selected Mode
//     (Minimize = shortest path, Maximize = longest / critical path).
//   - Distances are tagged values (Finite(x) | Unreached), never literal
//     infinities, so Maximize needs no −∞ arithmetic and Minimize no +∞.
//   - Every node keeps ALL tied optimal predecessors in insertion order, not
//     just one parent, which is what makes exhaustive path enumeration
//     possible.
//   - After the rounds, one certification pass re-checks every edge: any
//     edge that would still strictly improve proves an improving cycle
//     (negative under Minimize, positive under Maximize) reachable from the
//     source, and path output is suppressed.
//   - Everything the engine does is logged into an append-only Step trace
//     that an external player can replay one event per time unit.
//
// When to use:
//
//   - Shortest paths in the presence of negative edge weights, where
//     Dijkstra-style greedy expansion is unsound.
//   - Longest-path / critical-path analysis on the same machinery, by
//     flipping the Mode instead of negating weights.
//   - Whenever you need every optimal route, not an arbitrary one: tied
//     routes survive into the Result as predecessor sets and full paths.
//   - Detecting arbitrage-style improving cycles as a certified outcome
//     rather than a crash or an infinite loop.
//
// Key properties:
//
//   - Pure function: Run shares no state between invocations; the Result
//     owns every table it returns. Concurrent runs need no coordination.
//   - Deterministic: one canonical edge order drives the sweeps, the trace
//     order, tied-predecessor insertion order, and path discovery order.
//     Identical inputs produce deep-equal Results.
//   - Early exit: a sweep with zero improvements ends relaxation; ties
//     cannot be missed by this because tie discovery only reads distances
//     that have already stabilized. WithFullSweep() disables the exit.
//   - Unreachable targets and certified cycles are normal outcomes encoded
//     in the Result (OptimalDistance Unreached, OptimalPaths empty), never
//     errors.
//
// Performance and complexity:
//
//   - Time:  O(V·E) relaxation + certification, plus O(P·L) enumeration
//     (P optimal paths of length L). P can grow combinatorially on
//     deliberately tie-heavy graphs; enumeration cost is output-bound.
//   - Space: O(V + E) working tables plus the trace and the paths.
//
// Error handling (sentinel errors):
//
//   - ErrMissingEndpoint: source or target ID is empty.
//   - ErrNilGraph: nil *core.Graph.
//   - ErrEndpointNotFound: source or target not declared in the graph.
//   - ErrInvalidGraph: an edge references an undeclared node (pre-run
//     scan; unreachable for graphs built by core).
//   - ErrBadMode: unknown Mode (panics at option construction).
//
// API reference:
//
//	func Run(
//	    g *core.Graph,
//	    source, target string,
//	    opts ...Option,
//	) (*Result, error)
//
//	  - g:      immutable snapshot from core.NewBuilder or core.Snapshot.
//	  - source: start node; its distance is pinned at Finite(0) and its
//	            predecessor set stays empty.
//	  - target: destination for path enumeration; distances are computed to
//	            every node regardless.
//	  - opts:   WithMode(m) / WithMaximize() / WithFullSweep().
//
// Thread safety:
//
//   - Run never mutates g. Any number of runs may share one Graph
//     concurrently; each owns its working tables and its Result.
//
// See also:
//
//   - core: snapshot construction, validation, and the canonical edge-order
//     contract the engine's determinism rests on.
//   - playback: a replay cursor over Result.Steps implementing the
//     animation-player contract.
package bellmanford
