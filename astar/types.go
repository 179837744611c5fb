// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Engine states, tie-break policies, options, results and sentinel errors.

package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors returned by the Engine. Invalid-state errors wrap
// core.ErrInvalidState.
var (
	// ErrTerminal indicates Step or Run was called on an Engine in a terminal state.
	ErrTerminal = fmt.Errorf("%w: engine already finished", core.ErrInvalidState)

	// ErrNotSucceeded indicates Path was requested before a successful search.
	ErrNotSucceeded = fmt.Errorf("%w: destination was not reached", core.ErrInvalidState)

	// ErrBrokenChain indicates the predecessor chain does not lead back to the source.
	ErrBrokenChain = fmt.Errorf("%w: predecessor chain is broken", core.ErrInvalidState)

	// ErrExpansionLimit indicates the WithMaxExpansions cap stopped the search.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = fmt.Errorf("%w: MaxExpansions must be non-negative", core.ErrInvalidArgument)
)

// State is the lifecycle position of an Engine.
type State int

const (
	// Ready: inputs validated, nothing searched yet.
	Ready State = iota
	// Running: the frontier has been seeded and the loop is in progress.
	Running
	// Succeeded: the destination was popped; Path is available.
	Succeeded
	// Exhausted: the frontier emptied first; no path exists.
	Exhausted
	// Aborted: a wrapping bound or a lookup error stopped the loop.
	Aborted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether s is final.
func (s State) Terminal() bool {
	return s == Succeeded || s == Exhausted || s == Aborted
}

// TieBreak decides the order of frontier entries with equal f.
type TieBreak int

const (
	// TieFIFO pops equal-f entries in push order.
	TieFIFO TieBreak = iota
	// TieDeepest pops the entry with the larger g first, then in push order.
	TieDeepest
)

// Options configures an Engine.
//
//   - TieBreak: order of equal-f entries. Default TieFIFO.
//   - MaxExpansions: cap on closed nodes; 0 means no cap. Hitting it aborts
//     the search with ErrExpansionLimit.
//   - UniformCost: ignore the heuristic table (h ≡ 0).
//   - Observer: receives lifecycle events; nil disables them.
type Options struct {
	TieBreak      TieBreak
	MaxExpansions int
	UniformCost   bool
	Observer      Observer
}

// Option is a functional option for NewEngine, Search and ShortestPath.
type Option func(*Options)

// DefaultOptions returns the defaults: FIFO ties, no cap, heuristic on, no observer.
func DefaultOptions() Options {
	return Options{TieBreak: TieFIFO}
}

// WithTieBreak selects the equal-f ordering policy.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) { o.TieBreak = tb }
}

// WithMaxExpansions caps the number of expanded (closed) nodes.
// Negative values make NewEngine fail with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithUniformCost runs uniform-cost search regardless of the table contents.
func WithUniformCost() Option {
	return func(o *Options) { o.UniformCost = true }
}

// WithObserver attaches an Observer to the Engine.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// Result is the outcome of a finished search.
//
// Found is false when the destination is unreachable; Path is then nil and
// Cost is +Inf. RunID correlates the result with observer output.
type Result[N comparable] struct {
	Path     []N
	Cost     float64
	Expanded int
	Found    bool
	State    State
	RunID    string
}
