package astar

import "math"

// noPred marks a node that was never relaxed.
const noPred = -1

// nodeState holds per-node search bookkeeping as parallel arrays indexed by
// the graph's dense node index. One nodeState belongs to exactly one Engine.
type nodeState struct {
	g      []float64 // best known cost from source; +Inf until reached
	h      []float64 // estimate toward the active destination
	f      []float64 // g + h
	pred   []int     // predecessor index or noPred
	closed []bool    // expanded nodes
}

// newNodeState allocates state for n nodes with g = +Inf everywhere.
func newNodeState(n int) *nodeState {
	s := &nodeState{
		g:      make([]float64, n),
		h:      make([]float64, n),
		f:      make([]float64, n),
		pred:   make([]int, n),
		closed: make([]bool, n),
	}
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		s.g[i] = inf
		s.f[i] = inf
		s.pred[i] = noPred
	}

	return s
}

// set records an improved cost for node i reached from pred.
func (s *nodeState) set(i int, g, h float64, pred int) {
	s.g[i] = g
	s.h[i] = h
	s.f[i] = g + h
	s.pred[i] = pred
}
