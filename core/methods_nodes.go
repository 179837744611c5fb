// File: methods_nodes.go
// Role: Node lifecycle & queries, plus the dense-index surface used by engines.
//
// Determinism:
//   - Nodes() returns IDs in insertion order; dense indices follow the same order.
//
// Concurrency:
//   - AddNode under the write lock; every query under the read lock.
package core

import "fmt"

// AddNode registers id in the Graph.
//
// Implementation:
//   - Stage 1: Reject the zero ID (ErrZeroNode).
//   - Stage 2: Require a heuristic row for id (ErrNoHeuristicRow).
//   - Stage 3: Under the write lock, intern id to the next dense index.
//
// Behavior highlights:
//   - Idempotent: re-adding a known node is a no-op and keeps its edges.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddNode(id N) error {
	if isZero(id) {
		return ErrZeroNode
	}
	// The table is frozen after NewGraph, so this check needs no lock.
	if !g.table.HasRow(id) {
		return fmt.Errorf("%w: %v", ErrNoHeuristicRow, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[id]; exists {
		return nil
	}
	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
	g.adj = append(g.adj, nil)
	g.pos = append(g.pos, make(map[int]int))

	return nil
}

// HasNode reports whether id is registered. The zero ID is never registered.
func (g *Graph[N]) HasNode(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Nodes returns all node IDs in insertion order. The slice is a fresh copy.
//
// Complexity: O(V).
func (g *Graph[N]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]N, len(g.ids))
	copy(out, g.ids)

	return out
}

// NodeCount returns the number of registered nodes.
func (g *Graph[N]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// Index returns the dense index of id and whether id is registered.
// Indices are stable for the lifetime of the Graph.
func (g *Graph[N]) Index(id N) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]

	return i, ok
}

// ID returns the node stored at dense index i.
// It panics if i is out of range, like a slice access.
func (g *Graph[N]) ID(i int) N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.ids[i]
}

// Heuristic returns a copy of the table the Graph was built with.
//
// Complexity: O(R·C).
func (g *Graph[N]) Heuristic() Table[N] {
	return g.table.Clone()
}

// Estimate returns h(from, to) from the frozen table.
// Missing entries yield ErrMissingEstimate.
func (g *Graph[N]) Estimate(from, to N) (float64, error) {
	return g.table.Estimate(from, to)
}
