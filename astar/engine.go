// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: The search loop as a single-use state machine (Ready → Running → terminal).
// Policy:
//   - All input validation happens in NewEngine, before any search work.
//   - The loop never reopens closed nodes and never mutates the Graph.

package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/shortpath/core"
)

// Engine runs one search from source to destination over a core.Graph.
type Engine[N comparable] struct {
	g    *core.Graph[N]
	opts Options

	src, dst int
	dstID    N

	st       *nodeState
	pq       frontier
	seq      uint64
	state    State
	expanded int
	err      error

	runID   string
	started time.Time
	elapsed time.Duration
}

// NewEngine validates inputs and returns an Engine in the Ready state.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. source and destination must not be zero values (core.ErrZeroNode).
//  3. both must exist in g (core.ErrNodeNotFound).
//  4. MaxExpansions ≥ 0 (ErrBadMaxExpansions).
//  5. unless UniformCost, every node must have an estimate toward destination
//     (core.ErrMissingEstimate), so lookups inside the loop cannot fail.
//
// Complexity: O(V) for state allocation and the estimate check.
func NewEngine[N comparable](g *core.Graph[N], source, destination N, opts ...Option) (*Engine[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, core.ErrNilGraph
	}
	var zero N
	if source == zero || destination == zero {
		return nil, core.ErrZeroNode
	}
	src, ok := g.Index(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %v", core.ErrNodeNotFound, source)
	}
	dst, ok := g.Index(destination)
	if !ok {
		return nil, fmt.Errorf("%w: destination %v", core.ErrNodeNotFound, destination)
	}
	if cfg.MaxExpansions < 0 {
		return nil, ErrBadMaxExpansions
	}

	nodes := g.Nodes()
	if !cfg.UniformCost {
		for _, id := range nodes {
			if _, err := g.Estimate(id, destination); err != nil {
				return nil, err
			}
		}
	}

	e := &Engine[N]{
		g:     g,
		opts:  cfg,
		src:   src,
		dst:   dst,
		dstID: destination,
		st:    newNodeState(len(nodes)),
		pq:    frontier{items: make([]frontierItem, 0, len(nodes)), tie: cfg.TieBreak},
		state: Ready,
		runID: uuid.NewString(),
	}

	return e, nil
}

// State returns the current lifecycle state.
func (e *Engine[N]) State() State { return e.state }

// RunID returns the identifier attached to every event of this search.
func (e *Engine[N]) RunID() string { return e.runID }

// Expanded returns the number of nodes closed so far.
func (e *Engine[N]) Expanded() int { return e.expanded }

// Err returns the error that aborted the search, if any.
func (e *Engine[N]) Err() error { return e.err }

// Cost returns the best known cost from the source to id and whether id was
// reached. After Succeeded, the destination's cost is final; so is the cost of
// every closed node.
func (e *Engine[N]) Cost(id N) (float64, bool) {
	i, ok := e.g.Index(id)
	if !ok || i >= len(e.st.g) || math.IsInf(e.st.g[i], 1) {
		return math.Inf(1), false
	}

	return e.st.g[i], true
}

// Predecessor returns the node from which id's current best cost was reached.
// The source and unreached nodes have no predecessor.
func (e *Engine[N]) Predecessor(id N) (N, bool) {
	var zero N
	i, ok := e.g.Index(id)
	if !ok || i >= len(e.st.pred) || e.st.pred[i] == noPred {
		return zero, false
	}

	return e.g.ID(e.st.pred[i]), true
}

// Step advances the search by one expansion.
//
// Implementation:
//   - Stage 1: Terminal engines return (true, ErrTerminal).
//   - Stage 2: A Ready engine seeds the frontier with the source (g=0) and moves to Running.
//   - Stage 3: Pop entries until a live one is found; an empty heap ⇒ Exhausted.
//   - Stage 4: The destination ⇒ Succeeded. Otherwise close the node and relax its arcs.
//
// Returns done=true once the engine is terminal. The error is non-nil only
// for ErrTerminal and for aborts (expansion cap, missing estimate).
func (e *Engine[N]) Step() (bool, error) {
	if e.state.Terminal() {
		return true, ErrTerminal
	}
	if e.state == Ready {
		if err := e.start(); err != nil {
			e.abort(err)
			return true, err
		}
	}

	for e.pq.Len() > 0 {
		it := heap.Pop(&e.pq).(frontierItem)
		u := it.node
		if e.st.closed[u] || it.g != e.st.g[u] {
			continue // stale
		}

		if u == e.dst {
			e.finish(Succeeded)
			return true, nil
		}

		if e.opts.MaxExpansions > 0 && e.expanded >= e.opts.MaxExpansions {
			e.abort(fmt.Errorf("%w: %d", ErrExpansionLimit, e.opts.MaxExpansions))
			return true, e.err
		}

		e.st.closed[u] = true
		e.expanded++
		e.emit(Event{Kind: EventExpand, Node: e.g.ID(u), G: e.st.g[u], F: e.st.f[u]})

		if err := e.relax(u); err != nil {
			e.abort(err)
			return true, err
		}

		return false, nil
	}

	e.finish(Exhausted)

	return true, nil
}

// Run drives Step until the engine is terminal and returns the Result.
// An unreachable destination is not an error: Result.Found is false.
func (e *Engine[N]) Run() (*Result[N], error) {
	return e.RunContext(context.Background())
}

// RunContext is Run with cancellation checked before every Step.
// Cancellation aborts the search and returns the context's error.
func (e *Engine[N]) RunContext(ctx context.Context) (*Result[N], error) {
	if e.state.Terminal() {
		return nil, ErrTerminal
	}
	for {
		if err := ctx.Err(); err != nil {
			e.abort(err)
			r, _ := e.result()
			return r, err
		}
		done, err := e.Step()
		if err != nil {
			r, _ := e.result()
			return r, err
		}
		if done {
			return e.result()
		}
	}
}

// start seeds the frontier with the source.
func (e *Engine[N]) start() error {
	h, err := e.estimate(e.src)
	if err != nil {
		return err
	}
	e.started = time.Now()
	e.state = Running
	e.st.set(e.src, 0, h, noPred)
	e.push(e.src)
	e.emit(Event{Kind: EventStart, Node: e.g.ID(e.src), G: 0, F: e.st.f[e.src]})

	return nil
}

// relax applies the strict-improvement test to every open neighbor of u.
func (e *Engine[N]) relax(u int) error {
	gu := e.st.g[u]
	for _, a := range e.g.IndexArcs(u) {
		v := a.To
		if e.st.closed[v] {
			continue
		}
		tentative := gu + a.Weight
		if tentative >= e.st.g[v] {
			continue
		}
		h, err := e.estimate(v)
		if err != nil {
			return err
		}
		e.st.set(v, tentative, h, u)
		e.push(v)
		e.emit(Event{Kind: EventRelax, Node: e.g.ID(v), From: e.g.ID(u), G: tentative, F: e.st.f[v]})
	}

	return nil
}

// estimate looks up h(i, destination); uniform-cost mode answers 0.
func (e *Engine[N]) estimate(i int) (float64, error) {
	if e.opts.UniformCost {
		return 0, nil
	}

	return e.g.Estimate(e.g.ID(i), e.dstID)
}

// push inserts a fresh entry for node i with its current g and f.
func (e *Engine[N]) push(i int) {
	heap.Push(&e.pq, frontierItem{node: i, f: e.st.f[i], g: e.st.g[i], seq: e.seq})
	e.seq++
}

// finish enters a normal terminal state.
func (e *Engine[N]) finish(s State) {
	e.state = s
	if !e.started.IsZero() {
		e.elapsed = time.Since(e.started)
	}
	cost := math.Inf(1)
	if s == Succeeded {
		cost = e.st.g[e.dst]
	}
	e.emit(Event{Kind: EventFinish, Node: e.dstID, Cost: cost, State: s, Elapsed: e.elapsed})
}

// abort records err and enters Aborted.
func (e *Engine[N]) abort(err error) {
	e.err = err
	e.state = Aborted
	if !e.started.IsZero() {
		e.elapsed = time.Since(e.started)
	}
	e.emit(Event{Kind: EventFinish, Node: e.dstID, Cost: math.Inf(1), State: Aborted, Elapsed: e.elapsed, Err: err})
}

// emit stamps and forwards ev to the observer, if any.
func (e *Engine[N]) emit(ev Event) {
	if e.opts.Observer == nil {
		return
	}
	ev.RunID = e.runID
	ev.Step = e.expanded
	ev.Frontier = e.pq.Len()
	e.opts.Observer.Observe(ev)
}

// result snapshots the engine into a Result. A Succeeded engine whose
// predecessor chain does not lead back to the source yields ErrBrokenChain.
func (e *Engine[N]) result() (*Result[N], error) {
	r := &Result[N]{
		Cost:     math.Inf(1),
		Expanded: e.expanded,
		State:    e.state,
		RunID:    e.runID,
	}
	if e.state != Succeeded {
		return r, nil
	}
	path, err := e.Path()
	if err != nil {
		e.err = err
		return r, err
	}
	r.Path = path
	r.Cost = e.st.g[e.dst]
	r.Found = true

	return r, nil
}
