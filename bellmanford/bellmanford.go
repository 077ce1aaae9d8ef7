// Package bellmanford implements a generalized Bellman-Ford relaxation
// engine on directed weighted graphs.
//
// Run computes optimal distances from a single source to every node under a
// configurable optimization mode (Minimize or Maximize), records every tied
// optimal predecessor, certifies improving cycles with one extra edge pass,
// and enumerates all optimal source→target paths by backward DFS over the
// predecessor sets. Every event is logged into an append-only step trace
// that external players can replay.
//
// Complexity:
//
//   - Time:  O(V·E) for relaxation
//   - Up to V−1 rounds; each round sweeps every edge once.
//   - One additional full edge pass certifies the fixpoint.
//   - Plus O(P·L) for enumeration, P = number of optimal paths, L = path length.
//   - Space: O(V + E + S)
//   - O(V) distance and predecessor tables.
//   - O(E) for the cached canonical edge order.
//   - O(S) for the step trace, S = number of logged events.
//
// Notes on implementation choices:
//
//   - One mode-parameterized comparison decides improvements for both modes;
//     there are no duplicated </> branches.
//   - The edge sweep order is the graph's frozen insertion order, identical
//     in every round and in the certification pass. Trace order and
//     tied-predecessor insertion order derive from it.
//   - distance[source] is pinned at 0 and predecessors[source] stays empty;
//     edges into the source are skipped during relaxation. The certification
//     pass still inspects every edge, so an improving cycle through the
//     source is reported by its closing edge.
//   - A round with zero improvements is a fixpoint; ties found in that final
//     round are complete because tie discovery only reads stable distances.
package bellmanford

import (
	"fmt"

	"github.com/Ryan2486/Bellman/core"
)

// Run executes one engine run over g from source to target and returns the
// owned Result. Distances are computed to all nodes; the target only directs
// path enumeration.
//
// Preconditions and validation (in order):
//  1. source and target must be non-empty (ErrMissingEndpoint).
//  2. g must be non-nil (ErrNilGraph).
//  3. source and target must be declared in g (ErrEndpointNotFound).
//  4. Every edge endpoint must be declared in g (ErrInvalidGraph). Graphs
//     built by core cannot violate this; the scan catches hand-assembled
//     snapshots.
//
// Unreachable targets and detected cycles are normal outcomes encoded in
// the Result, never errors. Two runs over the same graph and parameters
// yield deep-equal Results.
//
// Options customization:
//
//   - WithMode(m): optimization direction (default Minimize).
//   - WithMaximize(): shorthand for WithMode(Maximize).
//   - WithFullSweep(): force all |V|−1 rounds (no early exit).
//
// Complexity:
//
//   - Time:  O(V·E + P·L)
//   - Space: O(V + E + S)
func Run(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate both endpoints are designated.
	if source == "" {
		return nil, fmt.Errorf("%w: source", ErrMissingEndpoint)
	}
	if target == "" {
		return nil, fmt.Errorf("%w: target", ErrMissingEndpoint)
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate both endpoints are declared.
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", ErrEndpointNotFound, source)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: target %q", ErrEndpointNotFound, target)
	}

	// 5) Re-scan edge endpoints against the node set. Fail fast rather than
	//    compute distances over a corrupt snapshot.
	edges := g.Edges()
	var e core.Edge
	for _, e = range edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			return nil, fmt.Errorf("%w: edge %s→%s", ErrInvalidGraph, e.From, e.To)
		}
	}

	// 6) Initialize runner state and execute the phases in order:
	//    relaxation rounds → cycle certification → path enumeration.
	r := &runner{
		g:      g,
		cfg:    cfg,
		source: source,
		target: target,
		edges:  edges,
	}
	r.init()
	r.relax()
	r.certify()

	return r.result(), nil
}

// runner holds the mutable working tables for a single engine run.
type runner struct {
	g      *core.Graph
	cfg    Options
	source string
	target string

	edges []core.Edge // canonical sweep order, cached once per run

	dist    map[string]Distance            // node ID → best known distance
	preds   map[string][]string            // node ID → tied predecessors, insertion order
	predSet map[string]map[string]struct{} // membership mirror of preds
	steps   []Step                         // append-only trace
	rounds  int                            // relaxation rounds actually executed
	cycle   bool                           // improving cycle certified
}

// init seeds the working tables: source at Finite(0), every other node
// Unreached, every predecessor set empty.
func (r *runner) init() {
	nodes := r.g.Nodes()
	r.dist = make(map[string]Distance, len(nodes))
	r.preds = make(map[string][]string, len(nodes))
	r.predSet = make(map[string]map[string]struct{}, len(nodes))
	r.steps = []Step{}

	var n core.Node
	for _, n = range nodes {
		r.dist[n.ID] = Unreached()
		r.preds[n.ID] = []string{}
	}
	r.dist[r.source] = Finite(0)
}

// relax performs up to |V|−1 sweeps over the canonical edge order. Without
// FullSweep, the first sweep producing zero improvements ends the loop; that
// sweep still ran in full, so late ties discovered at the fixpoint are in.
func (r *runner) relax() {
	limit := r.g.NodeCount() - 1
	var improved bool
	for round := 1; round <= limit; round++ {
		improved = r.sweep(round)
		r.rounds = round
		if !improved && !r.cfg.FullSweep {
			break // fixpoint reached
		}
	}
}

// sweep visits every edge once, in canonical order, and applies the
// mode-parameterized relaxation rule. Returns whether any distance improved.
func (r *runner) sweep(round int) bool {
	improved := false
	var e core.Edge
	var du, dv Distance
	var cand int64
	for _, e = range r.edges {
		// Relaxation only flows out of reached nodes.
		du = r.dist[e.From]
		if !du.reached {
			continue
		}

		// distance[source] is pinned; edges into the source never relax.
		if e.To == r.source {
			continue
		}

		cand = du.value + e.Weight
		dv = r.dist[e.To]

		if r.cfg.Mode.improves(cand, dv) {
			// Improvement: replace the distance, reset the predecessor set
			// to the single relaxing node, log.
			r.dist[e.To] = Finite(cand)
			r.resetPred(e.To, e.From)
			r.log(round, e.To, Finite(cand), e.From, StepImprovement,
				fmt.Sprintf("distance[%s] = %d via %s→%s (w=%d)", e.To, cand, e.From, e.To, e.Weight))
			improved = true

			continue
		}

		if dv.reached && cand == dv.value && !r.hasPred(e.To, e.From) {
			// Tie: an equal-value alternative through a new predecessor.
			r.addPred(e.To, e.From)
			r.log(round, e.To, dv, e.From, StepTie,
				fmt.Sprintf("tie: %s→%s also reaches %s at %d", e.From, e.To, e.To, cand))
		}
	}

	return improved
}

// certify performs one additional full pass over every edge with the same
// comparison as sweep. Any edge that would still strictly improve witnesses
// an improving cycle reachable from the source; each such edge is logged,
// and the pass always completes so the trace shows the whole picture.
func (r *runner) certify() {
	pass := r.rounds + 1
	var e core.Edge
	var du Distance
	var cand int64
	for _, e = range r.edges {
		du = r.dist[e.From]
		if !du.reached {
			continue
		}
		cand = du.value + e.Weight
		if r.cfg.Mode.improves(cand, r.dist[e.To]) {
			r.cycle = true
			r.log(pass, e.To, Finite(cand), e.From, StepCycleWitness,
				fmt.Sprintf("edge %s→%s would still improve %s to %d (improving cycle)", e.From, e.To, e.To, cand))
		}
	}
}

// result assembles the Result. Path output is produced only when no cycle
// was certified and the target is reached; otherwise it stays none/empty as
// a normal outcome.
func (r *runner) result() *Result {
	res := &Result{
		Distances:       r.dist,
		Predecessors:    r.preds,
		Steps:           r.steps,
		CycleDetected:   r.cycle,
		OptimalDistance: Unreached(),
		OptimalPaths:    [][]string{},
	}

	if r.cycle {
		return res
	}
	dt := r.dist[r.target]
	if !dt.reached {
		return res
	}

	res.OptimalDistance = dt
	res.OptimalPaths = r.enumerate()

	return res
}

// resetPred makes u the sole predecessor of v.
func (r *runner) resetPred(v, u string) {
	r.preds[v] = []string{u}
	r.predSet[v] = map[string]struct{}{u: {}}
}

// hasPred reports whether u is already a recorded predecessor of v.
func (r *runner) hasPred(v, u string) bool {
	_, ok := r.predSet[v][u]

	return ok
}

// addPred appends u to v's predecessor set, preserving insertion order.
func (r *runner) addPred(v, u string) {
	r.preds[v] = append(r.preds[v], u)
	set := r.predSet[v]
	if set == nil {
		set = make(map[string]struct{})
		r.predSet[v] = set
	}
	set[u] = struct{}{}
}

// log appends one trace record.
func (r *runner) log(iter int, node string, d Distance, pred string, kind StepKind, desc string) {
	r.steps = append(r.steps, Step{
		Iteration:   iter,
		Node:        node,
		Distance:    d,
		Predecessor: pred,
		Kind:        kind,
		Description: desc,
	})
}
