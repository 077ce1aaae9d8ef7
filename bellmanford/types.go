// Package bellmanford defines the core types and configuration options for
// the generalized Bellman-Ford engine: optimization modes, tagged distances,
// step-trace records, the Result struct, and the sentinel errors.
//
// Bellman-Ford computes optimal (minimum- or maximum-weight) walk distances
// from a single source to every node of a directed weighted graph, tracks
// every tied optimal predecessor, certifies improving cycles, and enumerates
// all optimal source→target paths.
//
// Errors (sentinel):
//
//	– ErrMissingEndpoint  if the source or target ID is empty.
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrEndpointNotFound if the source or target is not declared in the graph.
//	– ErrInvalidGraph     if an edge references an undeclared node.
//	– ErrBadMode          if an unknown OptimizationMode is configured.
package bellmanford

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by Run.
var (
	// ErrMissingEndpoint indicates that the source or target was not
	// designated (empty ID). The engine refuses to run rather than guess a
	// default.
	ErrMissingEndpoint = errors.New("bellmanford: source or target not designated")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrEndpointNotFound indicates that a designated source or target does
	// not exist in the provided graph.
	ErrEndpointNotFound = errors.New("bellmanford: endpoint not found in graph")

	// ErrInvalidGraph indicates the pre-run scan found an edge whose endpoint
	// is not declared in the graph. Snapshots built by core cannot trip this;
	// it catches hand-assembled graphs before they produce wrong distances.
	ErrInvalidGraph = errors.New("bellmanford: invalid graph")

	// ErrBadMode indicates a Mode outside Minimize/Maximize.
	ErrBadMode = errors.New("bellmanford: unknown optimization mode")
)

// Mode selects the optimization direction: which candidate distance beats
// the current one, and what the unreached sentinel conceptually stands for
// (+∞ under Minimize, −∞ under Maximize).
type Mode int

const (
	// Minimize treats smaller path-weight sums as better (shortest path).
	Minimize Mode = iota

	// Maximize treats larger path-weight sums as better (longest /
	// critical path).
	Maximize
)

// String returns the Go-facing name of the mode.
func (m Mode) String() string {
	if m == Maximize {
		return "Maximize"
	}

	return "Minimize"
}

// MarshalText encodes the mode in its wire form ("minimize" / "maximize").
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Minimize:
		return []byte("minimize"), nil
	case Maximize:
		return []byte("maximize"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(m))
	}
}

// UnmarshalText decodes the wire form accepted by ParseMode.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// ParseMode converts a wire-form mode name into a Mode. Matching is
// case-insensitive; the empty string is not a mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "minimize":
		return Minimize, nil
	case "maximize":
		return Maximize, nil
	default:
		return Minimize, fmt.Errorf("%w: %q", ErrBadMode, s)
	}
}

// improves reports whether candidate strictly beats current under m.
// An unreached current is beaten by any finite candidate in both modes;
// equality is never an improvement (ties are tracked separately).
func (m Mode) improves(candidate int64, current Distance) bool {
	if !current.reached {
		return true
	}
	if m == Maximize {
		return candidate > current.value
	}

	return candidate < current.value
}

// Distance is a tagged optimal-distance value: either Finite(x) or
// Unreached. The tag replaces literal ±infinity sentinels, so no
// floating-point infinity arithmetic can leak in, and the zero value is
// Unreached.
type Distance struct {
	value   int64
	reached bool
}

// Finite returns a reached Distance of value v.
func Finite(v int64) Distance { return Distance{value: v, reached: true} }

// Unreached returns the not-yet-reached sentinel. Its meaning is
// mode-dependent: conceptually +∞ under Minimize, −∞ under Maximize.
func Unreached() Distance { return Distance{} }

// Reached reports whether the distance is finite.
func (d Distance) Reached() bool { return d.reached }

// Value returns the finite value and true, or 0 and false when unreached.
func (d Distance) Value() (int64, bool) { return d.value, d.reached }

// String renders the finite value in decimal, or "unreached".
func (d Distance) String() string {
	if !d.reached {
		return "unreached"
	}

	return strconv.FormatInt(d.value, 10)
}

// MarshalJSON encodes a finite distance as a JSON number and an unreached
// one as null.
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.reached {
		return []byte("null"), nil
	}

	return strconv.AppendInt(nil, d.value, 10), nil
}

// UnmarshalJSON decodes null as Unreached and a JSON number as Finite.
func (d *Distance) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Unreached()

		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("bellmanford: decode distance: %w", err)
	}
	*d = Finite(v)

	return nil
}

// StepKind classifies one step-trace event.
type StepKind int

const (
	// StepImprovement records a strict improvement: the node's distance was
	// replaced and its predecessor set reset to the single relaxing node.
	StepImprovement StepKind = iota

	// StepTie records an equal-value alternative: the relaxing node was
	// appended to the node's predecessor set, distance unchanged.
	StepTie

	// StepCycleWitness records an edge that would still strictly improve
	// after the relaxation rounds, certifying an improving cycle.
	StepCycleWitness
)

// String returns the canonical kind name, which is also its wire form.
func (k StepKind) String() string {
	switch k {
	case StepTie:
		return "Tie"
	case StepCycleWitness:
		return "CycleWitness"
	default:
		return "Improvement"
	}
}

// MarshalText encodes the kind under its canonical name.
func (k StepKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a canonical kind name.
func (k *StepKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Improvement":
		*k = StepImprovement
	case "Tie":
		*k = StepTie
	case "CycleWitness":
		*k = StepCycleWitness
	default:
		return fmt.Errorf("bellmanford: unknown step kind %q", string(text))
	}

	return nil
}

// Step is one append-only trace record. An external player replays steps
// strictly in order, one per fixed time unit, highlighting the edge
// (Predecessor → Node) only for Improvement steps.
type Step struct {
	// Iteration is the 1-based relaxation round, or rounds+1 for the
	// certification pass that emits CycleWitness steps.
	Iteration int `json:"iteration"`

	// Node is the affected node.
	Node string `json:"node"`

	// Distance is the node's new distance (for Improvement), its standing
	// distance (for Tie), or the candidate that would still improve (for
	// CycleWitness).
	Distance Distance `json:"distance"`

	// Predecessor is the relaxing node on the other end of the edge.
	Predecessor string `json:"predecessor,omitempty"`

	// Kind classifies the event.
	Kind StepKind `json:"kind"`

	// Description is a deterministic human-readable account of the event.
	Description string `json:"description"`
}

// Result is the complete outcome of one engine run. All fields are owned by
// the caller; the engine retains nothing between runs.
type Result struct {
	// Distances maps every node to its final distance (Unreached marshals
	// as null).
	Distances map[string]Distance `json:"distances"`

	// Predecessors maps every node to its tied optimal predecessors in
	// insertion order. Always empty for the source.
	Predecessors map[string][]string `json:"predecessors"`

	// Steps is the full trace: relaxation rounds first, then any
	// certification witnesses.
	Steps []Step `json:"steps"`

	// CycleDetected reports an improving cycle reachable from the source.
	// When true, Distances and Predecessors are not trustworthy for nodes
	// reachable through the cycle, and path output is suppressed.
	CycleDetected bool `json:"cycleDetected"`

	// OptimalDistance is the target's distance, or Unreached when the
	// target is unreachable or a cycle was detected.
	OptimalDistance Distance `json:"optimalDistance"`

	// OptimalPaths holds every optimal source→target path in discovery
	// order; empty when unreachable or a cycle was detected.
	OptimalPaths [][]string `json:"optimalPaths"`
}

// Options configures the behavior of Run.
//
// Mode      – optimization direction (default Minimize).
// FullSweep – force all |V|−1 relaxation rounds instead of exiting early at
// the first round with zero improvements. Distances and predecessors are
// identical either way; the switch exists so that equivalence stays
// observable.
type Options struct {
	Mode      Mode // Minimize or Maximize
	FullSweep bool // disable the early-exit optimization
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithMode selects the optimization direction.
// Passing a value outside Minimize/Maximize panics with ErrBadMode: an
// invalid configuration is a programming error, caught at the call site.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Minimize && m != Maximize {
			panic(ErrBadMode.Error())
		}
		o.Mode = m
	}
}

// WithMaximize selects Maximize mode (longest / critical path).
func WithMaximize() Option {
	return func(o *Options) { o.Mode = Maximize }
}

// WithFullSweep forces all |V|−1 relaxation rounds even after a fixpoint
// round. Useful for verifying early-exit equivalence and for replaying a
// worst-case trace.
func WithFullSweep() Option {
	return func(o *Options) { o.FullSweep = true }
}

// DefaultOptions returns the Options Run starts from before applying
// functional overrides.
//
// Defaults:
//   - Mode:      Minimize (shortest path).
//   - FullSweep: false (exit at the first round with zero improvements).
func DefaultOptions() Options {
	return Options{
		Mode:      Minimize,
		FullSweep: false,
	}
}
