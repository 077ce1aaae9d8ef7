package core

// Graph is an immutable snapshot of nodes and directed weighted edges.
//
// A Graph can only be obtained from (*Builder).Build or Snapshot.Build, which
// enforce the structural invariants: unique non-empty node IDs, declared edge
// endpoints, at most one edge per ordered (from,to) pair. It exposes no
// mutating methods, so a single Graph may back any number of concurrent runs
// without locks.
//
// Node order and edge order are the caller's insertion order, frozen at build
// time. The edge order doubles as the canonical visitation order for every
// deterministic consumer: two runs over the same Graph observe the same edges
// in the same sequence.
type Graph struct {
	nodes   []Node
	nodeIdx map[string]int // node ID → index into nodes
	edges   []Edge
}

// NodeCount returns the number of declared nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of declared edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether id names a declared node.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeIdx[id]

	return ok
}

// Node returns the declared node with the given ID and whether it exists.
// Complexity: O(1)
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.nodeIdx[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Nodes returns all nodes in insertion order. The returned slice is a fresh
// copy; Meta bytes are shared.
// Complexity: O(V)
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns all edges in insertion order. The returned slice is a fresh
// copy. The order is identical on every call and identical across runs built
// from the same declaration sequence; relaxation sweeps, trace ordering and
// tied-predecessor insertion order all derive from it.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
