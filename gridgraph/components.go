package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Components are listed in row-major order of their first cell; each holds
// CellIDs in BFS discovery order.
//
// Two cells in different components have no path between them, so a
// search between them ends Exhausted.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]CellID {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]CellID

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue // wall
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := [][2]int{{x, y}}
			seen[i0] = true
			var comp []CellID

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := queue[qi][0], queue[qi][1]
				comp = append(comp, gg.ID(ux, uy))
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Passable(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, [2]int{vx, vy})
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
