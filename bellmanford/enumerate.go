package bellmanford

// pathFinder walks the predecessor relation backward from the target,
// reconstructing every optimal path. certify has already ruled out improving
// cycles, so any cycle left in the relation is a zero-weight tie cycle
// (every edge around it preserves the optimal distance exactly); the onStack
// guard skips those, since a repeated node can never extend a simple path.
type pathFinder struct {
	source  string
	preds   map[string][]string
	stack   []string            // current backward walk, target first
	onStack map[string]struct{} // nodes of the current walk
	paths   [][]string          // completed paths, source first
}

// enumerate reconstructs all optimal source→target simple paths in DFS
// discovery order. Caller guarantees the target is reached and no improving
// cycle was certified.
//
// Complexity:
//
//   - Time:  O(P·L), P = number of optimal paths, L = path length
//   - Space: O(L) for the walk stack, plus the output
func (r *runner) enumerate() [][]string {
	f := &pathFinder{
		source:  r.source,
		preds:   r.preds,
		stack:   []string{r.target},
		onStack: map[string]struct{}{r.target: {}},
		paths:   [][]string{},
	}
	f.walk(r.target)

	return f.paths
}

// walk recurses from node toward the source. Reaching the source completes
// one path; otherwise every stored predecessor is explored in its insertion
// order, which fixes the discovery order of the output.
func (f *pathFinder) walk(node string) {
	if node == f.source {
		f.record()

		return
	}

	var p string
	for _, p = range f.preds[node] {
		if _, open := f.onStack[p]; open {
			continue // zero-weight tie cycle; not a simple path
		}
		f.stack = append(f.stack, p)
		f.onStack[p] = struct{}{}
		f.walk(p)
		delete(f.onStack, p)
		f.stack = f.stack[:len(f.stack)-1]
	}
}

// record snapshots the current stack reversed, yielding a source→target
// path.
func (f *pathFinder) record() {
	n := len(f.stack)
	path := make([]string, n)
	var i int
	for i = range f.stack {
		path[n-1-i] = f.stack[i]
	}
	f.paths = append(f.paths, path)
}
