// Package gridgraph turns a 2D grid of integer cell costs into a
// core.Graph with a consistent distance heuristic toward chosen goals.
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a *core.Graph[CellID] plus heuristic table
//   - Identification of connected components of passable cells
//
// Cells with value < LandThreshold are walls; passable cells cost their value.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	minCost := math.Inf(1)
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			if v >= opts.LandThreshold && float64(v) < minCost {
				minCost = float64(v)
			}
		}
	}
	if math.IsInf(minCost, 1) || minCost < 0 {
		minCost = 0
	}

	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
		minCost:         minCost,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// ID returns the node identifier of cell (x,y). It does not check bounds.
func (gg *GridGraph) ID(x, y int) CellID {
	return CellID(y*gg.Width + x + 1)
}

// Coordinate converts a CellID back to (x,y).
// Returns ErrBadCell for the zero ID or an ID past the last cell.
func (gg *GridGraph) Coordinate(id CellID) (x, y int, err error) {
	i := int(id) - 1
	if i < 0 || i >= gg.Width*gg.Height {
		return 0, 0, fmt.Errorf("%w: %d", ErrBadCell, id)
	}

	return i % gg.Width, i / gg.Width, nil
}

// Estimate returns the heuristic distance between two cells: Manhattan
// distance under Conn4, octile distance under Conn8, both scaled by the
// cheapest passable cell. It never overestimates the true path cost and
// changes by at most one edge weight across any edge.
func (gg *GridGraph) Estimate(ax, ay, bx, by int) float64 {
	dx := math.Abs(float64(ax - bx))
	dy := math.Abs(float64(ay - by))
	if gg.Conn == Conn8 {
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)
		return gg.minCost * ((hi - lo) + math.Sqrt2*lo)
	}

	return gg.minCost * (dx + dy)
}

// stepWeight is the undirected weight of moving between two adjacent cells:
// the mean of both cell costs, times √2 for a diagonal step.
func (gg *GridGraph) stepWeight(ux, uy, vx, vy int) float64 {
	w := float64(gg.CellValues[uy][ux]+gg.CellValues[vy][vx]) / 2
	if ux != vx && uy != vy {
		w *= math.Sqrt2
	}

	return w
}

// ToCoreGraph converts the GridGraph into a *core.Graph[CellID].
//
// Implementation:
//   - Stage 1: Validate goals; each must be a passable cell (ErrBadGoal).
//   - Stage 2: Build a heuristic table with one row per passable cell and one
//     column per goal, filled from Estimate.
//   - Stage 3: Add passable cells in row-major order, then one edge per
//     adjacent passable pair weighted by stepWeight.
//
// With no goals the rows are empty, which suits uniform-cost search only.
// Complexity: O(W×H×(d + |goals|)) time, Memory: O(W×H×|goals| + E).
func (gg *GridGraph) ToCoreGraph(goals ...CellID) (*core.Graph[CellID], error) {
	type point struct{ x, y int }
	gs := make([]point, 0, len(goals))
	for _, id := range goals {
		x, y, err := gg.Coordinate(id)
		if err != nil || !gg.Passable(x, y) {
			return nil, fmt.Errorf("%w: %d", ErrBadGoal, id)
		}
		gs = append(gs, point{x, y})
	}

	table := make(core.Table[CellID], gg.Width*gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			row := make(map[CellID]float64, len(gs))
			for i, p := range gs {
				row[goals[i]] = gg.Estimate(x, y, p.x, p.y)
			}
			table[gg.ID(x, y)] = row
		}
	}

	g, err := core.NewGraph(table, core.WithCapacity(len(table)))
	if err != nil {
		return nil, err
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Passable(x, y) {
				if err = g.AddNode(gg.ID(x, y)); err != nil {
					return nil, err
				}
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			u := gg.ID(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) {
					continue
				}
				v := gg.ID(nx, ny)
				if v < u {
					continue // added from the other side
				}
				if err = g.AddEdge(u, v, gg.stepWeight(x, y, nx, ny)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}
