package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// CellID identifies a cell as a graph node: y*Width + x + 1.
// The zero CellID is the absent identifier, so (0,0) maps to 1.
type CellID int

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// LandThreshold is the minimum cell value that is passable.
	// Lower values are walls and become no node at all.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are passable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer cost grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the cost of
// standing on (x, y).
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	neighborOffsets [][2]int
	minCost         float64 // cheapest passable cell, floored at 0
}
