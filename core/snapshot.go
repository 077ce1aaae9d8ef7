package core

// Snapshot is the wire and persistence form of a Graph: plain slices with
// JSON tags, in canonical order. It is what an editor posts over HTTP and
// what the snapshot stores persist; array order in the JSON document IS the
// node/edge order of the built Graph.
//
//	{
//	  "nodes": [{"id":"A","meta":{"x":40,"y":25}}, {"id":"B"}],
//	  "edges": [{"from":"A","to":"B","weight":2}]
//	}
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Build validates the snapshot under the same rules as the Builder and
// returns the immutable Graph. Every violation wraps ErrInvalidGraph.
// Complexity: O(V + E)
func (s Snapshot) Build() (*Graph, error) {
	b := NewBuilder()
	for _, n := range s.Nodes {
		b.AddNode(n.ID, WithMeta(n.Meta))
	}
	for _, e := range s.Edges {
		b.AddEdge(e.From, e.To, e.Weight)
	}

	return b.Build()
}

// Snapshot converts the Graph back to its wire form. Node and edge slices
// are fresh copies in canonical order; Meta bytes are shared. A round trip
// through Snapshot and Build preserves both orders exactly.
// Complexity: O(V + E)
func (g *Graph) Snapshot() Snapshot {
	return Snapshot{Nodes: g.Nodes(), Edges: g.Edges()}
}
