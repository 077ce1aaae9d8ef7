// Package core defines the immutable graph snapshot consumed by every
// algorithm in this module: Node, Edge, the validating Builder, the frozen
// Graph, and the JSON Snapshot codec.
//
// This file declares Node, Edge, NodeOption and the sentinel errors.
//
// Errors:
//
//	ErrInvalidGraph    - umbrella for every structural violation.
//	ErrEmptyNodeID     - node declared with an empty ID.
//	ErrDuplicateNode   - node ID declared twice.
//	ErrUnknownEndpoint - edge endpoint references an undeclared node.
//	ErrDuplicateEdge   - second edge on the same ordered (from,to) pair.
package core

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for snapshot construction.
//
// Each specific violation wraps ErrInvalidGraph, so callers may branch on the
// whole class with errors.Is(err, ErrInvalidGraph) or on the exact violation.
var (
	// ErrInvalidGraph is the umbrella error for every structural violation
	// detected while building a snapshot.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrEmptyNodeID indicates a node was declared with an empty ID.
	ErrEmptyNodeID = fmt.Errorf("%w: empty node ID", ErrInvalidGraph)

	// ErrDuplicateNode indicates the same node ID was declared twice.
	ErrDuplicateNode = fmt.Errorf("%w: duplicate node ID", ErrInvalidGraph)

	// ErrUnknownEndpoint indicates an edge references a node that was never
	// declared.
	ErrUnknownEndpoint = fmt.Errorf("%w: edge endpoint not declared", ErrInvalidGraph)

	// ErrDuplicateEdge indicates a second edge was declared on an ordered
	// (from,to) pair that already holds one (directed multigraphs are not
	// supported).
	ErrDuplicateEdge = fmt.Errorf("%w: duplicate directed edge", ErrInvalidGraph)
)

// Node represents a vertex in the graph.
//
// ID uniquely identifies this Node within its Graph. Meta carries arbitrary
// caller-supplied JSON (canvas position, start/end role, labels) that no
// algorithm in this module ever inspects.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string `json:"id"`

	// Meta stores caller-supplied JSON verbatim. The bytes are shared, not
	// deep-copied; treat them as read-only once handed to a Builder.
	Meta json.RawMessage `json:"meta,omitempty"`
}

// Edge represents a directed connection From→To with a signed weight.
//
// An Edge is identified by its ordered (From, To) pair. Weights are exact
// 64-bit integers; negative values are legal, and interpreting them is the
// consumer's concern, not a construction error.
type Edge struct {
	// From is the source node ID.
	From string `json:"from"`

	// To is the destination node ID.
	To string `json:"to"`

	// Weight is the signed cost of traversing the edge.
	Weight int64 `json:"weight"`
}

// NodeOption configures properties of an individual node when declared.
type NodeOption func(*Node)

// WithMeta attaches caller-supplied metadata to a node. The bytes are stored
// verbatim and round-trip through Snapshot untouched.
func WithMeta(meta json.RawMessage) NodeOption {
	return func(n *Node) { n.Meta = meta }
}
