// SPDX-License-Identifier: MIT
//
// File: consistency.go
// Role: Optional precondition check for heuristic consistency toward one destination.
// Policy:
//   - Engines never reopen closed nodes; optimality therefore relies on a consistent
//     heuristic. This check lets callers verify that assumption up front.

package core

import "fmt"

// consistencyEpsilon absorbs float rounding in h(u) ≤ w(u,v) + h(v).
const consistencyEpsilon = 1e-9

// CheckConsistent verifies h(u,dst) ≤ w(u,v) + h(v,dst) for every arc u→v of g.
//
// Implementation:
//   - Stage 1: Validate g and dst (ErrNilGraph, ErrZeroNode, ErrNodeNotFound).
//   - Stage 2: Walk nodes in insertion order and their arcs in insertion order.
//   - Stage 3: Report the first violating arc with ErrInconsistentHeuristic.
//
// Missing estimates surface as ErrMissingEstimate. A consistent heuristic with
// h(dst,dst)=0 is also admissible.
//
// Complexity: O(V + E).
func CheckConsistent[N comparable](g *Graph[N], dst N) error {
	if g == nil {
		return ErrNilGraph
	}
	if isZero(dst) {
		return ErrZeroNode
	}
	if !g.HasNode(dst) {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, dst)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for u, arcs := range g.adj {
		hu, err := g.table.Estimate(g.ids[u], dst)
		if err != nil {
			return err
		}
		for _, a := range arcs {
			hv, err := g.table.Estimate(g.ids[a.To], dst)
			if err != nil {
				return err
			}
			if hu > a.Weight+hv+consistencyEpsilon {
				return fmt.Errorf("%w: h(%v)=%v > w(%v,%v)=%v + h(%v)=%v",
					ErrInconsistentHeuristic, g.ids[u], hu, g.ids[u], g.ids[a.To], a.Weight, g.ids[a.To], hv)
			}
		}
	}

	return nil
}
