// SPDX-License-Identifier: MIT
//
// File: heuristic.go
// Role: Heuristic Table type, lookups, validation and the zero (uniform-cost) table.
// Policy:
//   - A missing (node, destination) pair is a caller error, never an implicit zero.
//   - Tables are copied on graph construction and treated as immutable afterwards.

package core

import (
	"fmt"
	"math"
)

// Table maps a node to its estimated remaining cost toward every destination:
//
//	table[node][destination] = estimate
//
// Estimates must be finite and non-negative. For A* to return optimal paths
// without reopening closed nodes, the estimates toward the searched destination
// must also be consistent (see CheckConsistent).
type Table[N comparable] map[N]map[N]float64

// ZeroTable returns a complete all-zero table over ids: every (id, id') pair
// maps to 0. Searching with it is exactly uniform-cost search (Dijkstra).
//
// Complexity: O(len(ids)²) time and space.
func ZeroTable[N comparable](ids ...N) Table[N] {
	t := make(Table[N], len(ids))
	for _, from := range ids {
		row := make(map[N]float64, len(ids))
		for _, to := range ids {
			row[to] = 0
		}
		t[from] = row
	}

	return t
}

// HasRow reports whether the table carries a row for id.
func (t Table[N]) HasRow(id N) bool {
	_, ok := t[id]
	return ok
}

// Estimate returns h(from, to).
// A missing row or column yields ErrMissingEstimate.
func (t Table[N]) Estimate(from, to N) (float64, error) {
	row, ok := t[from]
	if !ok {
		return 0, fmt.Errorf("%w: no row for %v", ErrMissingEstimate, from)
	}
	h, ok := row[to]
	if !ok {
		return 0, fmt.Errorf("%w: h(%v, %v)", ErrMissingEstimate, from, to)
	}

	return h, nil
}

// Validate checks that every estimate is finite and non-negative.
// The first offending entry found is reported with ErrBadHeuristic; map order
// makes "first" unspecified when several entries are bad.
func (t Table[N]) Validate() error {
	for from, row := range t {
		for to, h := range row {
			if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
				return fmt.Errorf("%w: h(%v, %v)=%v", ErrBadHeuristic, from, to, h)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the table. A nil table clones to nil.
func (t Table[N]) Clone() Table[N] {
	if t == nil {
		return nil
	}
	out := make(Table[N], len(t))
	for from, row := range t {
		cp := make(map[N]float64, len(row))
		for to, h := range row {
			cp[to] = h
		}
		out[from] = cp
	}

	return out
}
