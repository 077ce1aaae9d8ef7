package playback

import "github.com/Ryan2486/Bellman/bellmanford"

// Edge identifies the highlighted edge of an Improvement frame.
type Edge struct {
	From string
	To   string
}

// Frame is the display state after applying one step.
type Frame struct {
	// Step is the trace record this frame was produced from.
	Step bellmanford.Step

	// Distances is the display table accumulated over every step applied so
	// far. It is a copy owned by the caller.
	Distances map[string]bellmanford.Distance

	// Highlight is the edge to flash, non-nil only for Improvement steps.
	Highlight *Edge

	// CycleSeen latches to true once any CycleWitness step has been applied
	// and stays true for the rest of the replay.
	CycleSeen bool
}

// Cursor replays a trace one step per Next call. Construct with New; the
// zero Cursor is an exhausted empty replay.
type Cursor struct {
	steps     []bellmanford.Step
	source    string
	pos       int
	display   map[string]bellmanford.Distance
	cycleSeen bool
}

// Option configures a Cursor at construction time.
type Option func(*Cursor)

// WithSource seeds the display with the run's source pinned at distance 0.
// The trace itself never mentions the source (it is pinned, never improved),
// so without this option the source is simply absent from Frame.Distances.
func WithSource(id string) Option {
	return func(c *Cursor) { c.source = id }
}

// New returns a Cursor positioned before the first step. The steps slice is
// copied, so the caller's Result may be mutated or released afterwards.
// Complexity: O(S)
func New(steps []bellmanford.Step, opts ...Option) *Cursor {
	c := &Cursor{steps: append([]bellmanford.Step(nil), steps...)}
	var opt Option
	for _, opt = range opts {
		opt(c)
	}
	c.Rewind()

	return c
}

// Next applies one step and returns the resulting Frame. The second return
// is false once the trace is exhausted; the Frame is then the zero value.
// Complexity: O(V) per call, for the display copy handed to the caller.
func (c *Cursor) Next() (Frame, bool) {
	if c.pos >= len(c.steps) {
		return Frame{}, false
	}

	// 1) Apply the step to the display state.
	s := c.steps[c.pos]
	c.pos++
	var highlight *Edge
	switch s.Kind {
	case bellmanford.StepImprovement:
		c.display[s.Node] = s.Distance
		highlight = &Edge{From: s.Predecessor, To: s.Node}
	case bellmanford.StepCycleWitness:
		// Evidence of divergence only; the display distance stands.
		c.cycleSeen = true
	case bellmanford.StepTie:
		// The tied alternative equals the standing distance; nothing moves.
	}

	// 2) Snapshot the display into an owned Frame.
	dist := make(map[string]bellmanford.Distance, len(c.display))
	for id, d := range c.display {
		dist[id] = d
	}

	return Frame{
		Step:      s,
		Distances: dist,
		Highlight: highlight,
		CycleSeen: c.cycleSeen,
	}, true
}

// Rewind resets the Cursor to the initial display state: position zero, no
// cycle seen, only the seeded source (if any) at distance 0.
// Complexity: O(1)
func (c *Cursor) Rewind() {
	c.pos = 0
	c.cycleSeen = false
	c.display = make(map[string]bellmanford.Distance)
	if c.source != "" {
		c.display[c.source] = bellmanford.Finite(0)
	}
}

// Pos returns the number of steps applied since the last Rewind.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total number of steps in the trace.
func (c *Cursor) Len() int { return len(c.steps) }
