// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Error taxonomy, Graph/Arc types, GraphOption and the NewGraph constructor.
// Policy:
//   - Every concrete sentinel wraps exactly one taxonomy root.
//   - NewGraph validates and copies the heuristic table before any node exists.

package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Taxonomy roots. Classify errors with errors.Is against these.
var (
	// ErrInvalidArgument indicates malformed input: zero IDs, bad weights, bad or missing estimates.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrNotFound indicates an operation referenced a node not registered in the Graph.
	ErrNotFound = errors.New("core: not found")

	// ErrNoPathFound indicates a well-formed search exhausted its frontier before
	// reaching the destination. It is an expected outcome, not a defect.
	ErrNoPathFound = errors.New("core: no path found")

	// ErrInvalidState indicates an internal contract violation, e.g. asking for a
	// path from a search that did not succeed.
	ErrInvalidState = errors.New("core: invalid state")
)

// Concrete sentinels for Graph Store and Heuristic Table operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where one is required.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidArgument)

	// ErrZeroNode indicates the node ID equals the zero value of its type.
	ErrZeroNode = fmt.Errorf("%w: node ID is the zero value", ErrInvalidArgument)

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = fmt.Errorf("%w: edge weight must be finite and non-negative", ErrInvalidArgument)

	// ErrNilHeuristic indicates NewGraph was called without a heuristic table.
	ErrNilHeuristic = fmt.Errorf("%w: heuristic table is nil", ErrInvalidArgument)

	// ErrBadHeuristic indicates a negative, NaN or infinite estimate in the table.
	ErrBadHeuristic = fmt.Errorf("%w: heuristic estimate must be finite and non-negative", ErrInvalidArgument)

	// ErrNoHeuristicRow indicates AddNode was called for a node absent from the table.
	ErrNoHeuristicRow = fmt.Errorf("%w: node has no heuristic row", ErrInvalidArgument)

	// ErrMissingEstimate indicates a (node, destination) pair absent from the table.
	ErrMissingEstimate = fmt.Errorf("%w: heuristic estimate missing", ErrInvalidArgument)

	// ErrInconsistentHeuristic indicates h(u) > w(u,v) + h(v) for some edge.
	ErrInconsistentHeuristic = fmt.Errorf("%w: heuristic is not consistent", ErrInvalidArgument)

	// ErrNodeNotFound indicates an operation referenced an unknown node.
	ErrNodeNotFound = fmt.Errorf("%w: node", ErrNotFound)
)

// Arc is one outgoing edge record as seen from a node: target and weight.
type Arc[N comparable] struct {
	// To is the neighbor node.
	To N

	// Weight is the non-negative edge cost.
	Weight float64
}

// IndexArc is the dense form of Arc used by search engines.
// To is the neighbor's index as returned by Graph.Index.
type IndexArc struct {
	To     int
	Weight float64
}

// GraphOption configures a Graph before any node is added.
type GraphOption func(*graphConfig)

type graphConfig struct {
	capacity int
}

// WithCapacity preallocates storage for n nodes. Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Graph is the undirected weighted Graph Store.
//
// Nodes are interned to dense indices in insertion order; ids[i] is the key of
// index i, and adj[i] its outgoing arcs. pos[i][j] locates the arc i→j inside
// adj[i] so that re-adding an edge overwrites instead of appending.
type Graph[N comparable] struct {
	mu sync.RWMutex // guards everything below

	table Table[N]      // frozen copy; never mutated after NewGraph
	index map[N]int     // node → dense index
	ids   []N           // dense index → node
	adj   [][]IndexArc  // dense index → outgoing arcs (insertion order)
	pos   []map[int]int // dense index → neighbor index → offset in adj
	edges int           // undirected edge count (self-loops count once)
}

// NewGraph creates an empty Graph backed by a copy of table.
//
// Implementation:
//   - Stage 1: Reject a nil table (ErrNilHeuristic).
//   - Stage 2: Validate every estimate is finite and ≥ 0 (ErrBadHeuristic).
//   - Stage 3: Deep-copy the table so later caller mutations cannot leak into searches.
//   - Stage 4: Apply options and allocate storage.
//
// Complexity: O(R·C) for R rows and C columns of the table.
func NewGraph[N comparable](table Table[N], opts ...GraphOption) (*Graph[N], error) {
	if table == nil {
		return nil, ErrNilHeuristic
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	cfg := graphConfig{capacity: len(table)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N]{
		table: table.Clone(),
		index: make(map[N]int, cfg.capacity),
		ids:   make([]N, 0, cfg.capacity),
		adj:   make([][]IndexArc, 0, cfg.capacity),
		pos:   make([]map[int]int, 0, cfg.capacity),
	}, nil
}

// validWeight reports whether w is usable as an edge weight.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1) && !math.IsNaN(w)
}

// isZero reports whether id is the zero value of N.
func isZero[N comparable](id N) bool {
	var zero N
	return id == zero
}
