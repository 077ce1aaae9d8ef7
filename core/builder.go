package core

import "fmt"

// Builder accumulates nodes and edges and validates them into an immutable
// Graph. Construct with NewBuilder; the zero Builder is not usable.
//
// Builder methods chain and never panic: the first violation is recorded and
// surfaced by Build, so a whole snapshot can be assembled fluently and
// checked once, in the same spirit as (*bufio.Writer).Flush.
//
// A Builder is not safe for concurrent use; build the snapshot on one
// goroutine, then share the resulting Graph freely.
type Builder struct {
	nodes   []Node
	nodeIdx map[string]int                 // node ID → index into nodes
	edgeSet map[string]map[string]struct{} // from → to → present
	edges   []Edge
	err     error // first violation; surfaced by Build
}

// NewBuilder returns an empty Builder.
// Complexity: O(1)
func NewBuilder() *Builder {
	return &Builder{
		nodeIdx: make(map[string]int),
		edgeSet: make(map[string]map[string]struct{}),
	}
}

// AddNode declares a node, optionally configured by NodeOptions.
//
// Empty and duplicate IDs fail the build (ErrEmptyNodeID, ErrDuplicateNode).
// Insertion order is preserved and becomes the Graph's node order.
// Complexity: O(1) amortized
func (b *Builder) AddNode(id string, opts ...NodeOption) *Builder {
	// 1) A recorded violation freezes the Builder; keep the first error.
	if b.err != nil {
		return b
	}

	// 2) Validate the ID.
	if id == "" {
		b.err = ErrEmptyNodeID
		return b
	}
	if _, dup := b.nodeIdx[id]; dup {
		b.err = fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		return b
	}

	// 3) Materialize the node and apply options.
	n := Node{ID: id}
	for _, opt := range opts {
		opt(&n)
	}

	// 4) Record in insertion order.
	b.nodeIdx[id] = len(b.nodes)
	b.nodes = append(b.nodes, n)

	return b
}

// AddEdge declares a directed edge from→to with the given weight.
//
// Both endpoints must already be declared via AddNode (ErrUnknownEndpoint);
// a second edge on the same ordered pair fails the build (ErrDuplicateEdge).
// Self-loops are legal. Insertion order is preserved and becomes the Graph's
// canonical edge order.
// Complexity: O(1) amortized
func (b *Builder) AddEdge(from, to string, weight int64) *Builder {
	// 1) A recorded violation freezes the Builder; keep the first error.
	if b.err != nil {
		return b
	}

	// 2) Both endpoints must reference declared nodes.
	if _, ok := b.nodeIdx[from]; !ok {
		b.err = fmt.Errorf("%w: edge %s→%s references %q", ErrUnknownEndpoint, from, to, from)
		return b
	}
	if _, ok := b.nodeIdx[to]; !ok {
		b.err = fmt.Errorf("%w: edge %s→%s references %q", ErrUnknownEndpoint, from, to, to)
		return b
	}

	// 3) Reject a second edge on the same ordered pair.
	if _, dup := b.edgeSet[from][to]; dup {
		b.err = fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
		return b
	}
	if b.edgeSet[from] == nil {
		b.edgeSet[from] = make(map[string]struct{})
	}
	b.edgeSet[from][to] = struct{}{}

	// 4) Record in insertion order.
	b.edges = append(b.edges, Edge{From: from, To: to, Weight: weight})

	return b
}

// Err returns the first recorded violation without building, or nil.
// Complexity: O(1)
func (b *Builder) Err() error { return b.err }

// Build returns the accumulated snapshot frozen into an immutable Graph, or
// the first violation recorded by AddNode/AddEdge (every violation wraps
// ErrInvalidGraph).
//
// Build copies: the Builder may continue to accumulate afterwards, and
// repeated Build calls yield independent Graphs.
// Complexity: O(V + E)
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	g := &Graph{
		nodes:   make([]Node, len(b.nodes)),
		nodeIdx: make(map[string]int, len(b.nodes)),
		edges:   make([]Edge, len(b.edges)),
	}
	copy(g.nodes, b.nodes)
	copy(g.edges, b.edges)
	for id, i := range b.nodeIdx {
		g.nodeIdx[id] = i
	}

	return g, nil
}
