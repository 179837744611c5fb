// Package dijkstra provides uniform-cost shortest-path search on weighted,
// undirected core.Graph values with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra is A* with h ≡ 0. This package runs the astar engine with
//     astar.WithUniformCost(), so there is exactly one search loop in the module.
//   - NewGraph builds a Graph backed by core.ZeroTable, for callers that never
//     had a heuristic in the first place.
//   - Graphs built with a real heuristic table may be searched here too; the
//     table is simply not consulted.
//
// When to use:
//
//   - You need exact shortest paths and have no admissible estimate.
//   - You want a reference cost to compare A* runs against.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is closed at most once.
//   - Each strict relaxation pushes one heap entry (lazy decrease-key), up to E pushes.
//   - Space: O(V + E)
//
// Errors:
//
//   - Validation errors are those of core and astar (core.ErrNilGraph,
//     core.ErrZeroNode, core.ErrNodeNotFound, ...).
//   - ShortestPath reports an unreachable destination as core.ErrNoPathFound;
//     Search reports it as Result.Found == false.
//
// Example usage:
//
//	g, err := dijkstra.NewGraph("A", "B", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	path, cost, err := dijkstra.ShortestPath(g, "A", "C")
package dijkstra
