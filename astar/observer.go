package astar

import "time"

// EventKind tags an observer Event.
type EventKind int

const (
	// EventStart fires once, when the source is pushed.
	EventStart EventKind = iota
	// EventExpand fires when a node is closed and about to be expanded.
	EventExpand
	// EventRelax fires when a neighbor's g strictly improves.
	EventRelax
	// EventFinish fires once, on entering a terminal state.
	EventFinish
)

// String returns the dotted event name used by log and trace observers.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "search.start"
	case EventExpand:
		return "search.expand"
	case EventRelax:
		return "search.relax"
	case EventFinish:
		return "search.finish"
	default:
		return "search.unknown"
	}
}

// Event describes one point in a search.
//
// Node and From hold values of the graph's node type. From is set on
// EventRelax only. Cost, State, Elapsed and Err are set on EventFinish only.
type Event struct {
	RunID    string
	Kind     EventKind
	Step     int // expansions so far
	Node     any
	From     any
	G        float64
	F        float64
	Cost     float64
	State    State
	Elapsed  time.Duration
	Err      error
	Frontier int // heap size, stale entries included
}

// Observer receives search events synchronously from the search loop.
// Implementations must not block and must not call back into the Engine.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }
