// Package core provides the Graph Store and Heuristic Table consumed by the
// shortest-path engines in this module.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Nodes are caller-chosen keys of any comparable type N. The zero value of N
//     is reserved as the "absent" identifier and is always rejected.
//   - Every node must own a row in the Heuristic Table supplied at construction.
//   - AddEdge(a,b,w) stores the arc on both endpoints; re-adding overwrites the
//     weight on both sides, so at most one edge exists per pair.
//   - Weights are finite and non-negative.
//
// Internally every node receives a dense index (0..V-1) in insertion order.
// Adjacency is a slice of arcs per index plus a position map used to overwrite
// duplicates in O(1):
//
//	adj[i]      = []IndexArc{{To: j, Weight: w}, ...}
//	pos[i][j]   = offset of the arc i→j inside adj[i]
//
// Search engines address per-node state by these indices (see package astar),
// so the store never hands out mutable per-node objects.
//
// Heuristic Table:
//
//	Table[N] is map[node]map[destination]estimate. It is copied at NewGraph and
//	frozen afterwards. Missing rows or columns are caller errors
//	(ErrMissingEstimate), never silently treated as zero. ZeroTable builds the
//	degenerate all-zero table that turns A* into uniform-cost search.
//
// Core methods:
//
//	NewGraph(table, opts...) (*Graph[N], error)   // O(V²) table copy + validation
//	AddNode(id) error                             // O(1)
//	AddEdge(a, b, w) error                        // O(1)
//	EdgesFrom(id) ([]Arc[N], error)               // O(deg)
//	HasNode / HasEdge / Weight / Nodes / Estimate // read-only queries
//	CheckConsistent(g, dst) error                 // O(E) heuristic precondition check
//
// Errors:
//
//	ErrInvalidArgument – root: zero IDs, bad weights, bad or missing estimates.
//	ErrNotFound        – root: unknown node.
//	ErrNoPathFound     – a well-formed search exhausted its frontier.
//	ErrInvalidState    – contract violation by the caller or the engine.
//
// Concrete sentinels (ErrZeroNode, ErrBadWeight, ...) wrap one of the roots, so
// callers classify with errors.Is(err, core.ErrInvalidArgument).
//
// Concurrency: a single sync.RWMutex guards the store. Mutations take the
// write lock, queries the read lock. The store is not expected to change while
// a search is running.
package core
