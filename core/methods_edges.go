// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/EdgesFrom/HasEdge/Weight/EdgeCount,
//       plus IndexArcs for engines.
// Determinism:
//   - EdgesFrom() returns arcs in the order their edge was first added.
// Concurrency:
//   - Mutation under the write lock; queries under the read lock.

package core

import "fmt"

// AddEdge inserts the undirected edge a—b with the given weight.
//
// Implementation:
//   - Stage 1: Reject zero IDs (ErrZeroNode) and bad weights (ErrBadWeight).
//   - Stage 2: Under the write lock, resolve both endpoints (ErrNodeNotFound).
//   - Stage 3: Upsert arc a→b and its mirror b→a.
//
// Behavior highlights:
//   - Re-adding a—b overwrites the weight in both directions; no parallel edges.
//   - A self-loop a—a is stored once. It never shortens a path.
//   - All validation precedes mutation, so a failed call leaves the Graph unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(a, b N, weight float64) error {
	if isZero(a) || isZero(b) {
		return ErrZeroNode
	}
	if !validWeight(weight) {
		return fmt.Errorf("%w: %v—%v weight=%v", ErrBadWeight, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ia, ok := g.index[a]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, a)
	}
	ib, ok := g.index[b]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, b)
	}

	if !g.upsertArc(ia, ib, weight) {
		g.edges++
	}
	if ia != ib {
		g.upsertArc(ib, ia, weight)
	}

	return nil
}

// upsertArc writes arc from→to and reports whether it already existed.
// Caller must hold the write lock.
func (g *Graph[N]) upsertArc(from, to int, weight float64) bool {
	if p, ok := g.pos[from][to]; ok {
		g.adj[from][p].Weight = weight
		return true
	}
	g.pos[from][to] = len(g.adj[from])
	g.adj[from] = append(g.adj[from], IndexArc{To: to, Weight: weight})

	return false
}

// EdgesFrom returns a copy of id's outgoing arcs.
// Unknown id yields ErrNodeNotFound; the zero id yields ErrZeroNode.
//
// Complexity: O(deg(id)).
func (g *Graph[N]) EdgesFrom(id N) ([]Arc[N], error) {
	if isZero(id) {
		return nil, ErrZeroNode
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
	out := make([]Arc[N], len(g.adj[i]))
	for k, a := range g.adj[i] {
		out[k] = Arc[N]{To: g.ids[a.To], Weight: a.Weight}
	}

	return out, nil
}

// IndexArcs returns the outgoing arcs of dense index i.
//
// The returned slice aliases internal storage and must be treated as read-only.
// It stays valid until the next AddEdge touching i, which callers must not
// issue while a search is running.
func (g *Graph[N]) IndexArcs(i int) []IndexArc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[i]
}

// HasEdge reports whether a—b exists. Unknown nodes simply yield false.
func (g *Graph[N]) HasEdge(a, b N) bool {
	_, ok := g.Weight(a, b)
	return ok
}

// Weight returns the weight of a—b and whether the edge exists.
func (g *Graph[N]) Weight(a, b N) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ia, ok := g.index[a]
	if !ok {
		return 0, false
	}
	ib, ok := g.index[b]
	if !ok {
		return 0, false
	}
	p, ok := g.pos[ia][ib]
	if !ok {
		return 0, false
	}

	return g.adj[ia][p].Weight, true
}

// EdgeCount returns the number of undirected edges. Self-loops count once.
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
