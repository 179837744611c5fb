// Package shortpath is an in-memory single-source shortest-path engine for
// undirected weighted graphs. A* and uniform-cost (Dijkstra) search share one
// search loop; they differ only in the heuristic that orders the frontier.
//
// What is inside:
//
//	• Core store: nodes, symmetric weighted edges, heuristic tables, under R/W locks
//	• A* engine: step-wise state machine with lazy-deletion frontier
//	• Dijkstra: the same engine with the heuristic pinned to zero
//	• Observers: slog records, Prometheus metrics, OpenTelemetry spans
//	• Loaders: YAML graph documents and 2D cost grids
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      — Graph[N], Table[N], error taxonomy, consistency check
//	astar/     — Engine, Search, ShortestPath, options and observer hook
//	dijkstra/  — uniform-cost facade over astar
//	observe/   — LogObserver, Metrics, TraceObserver, Multi
//	loader/    — YAML documents → core.Graph[string]
//	gridgraph/ — 2D cost grids → core.Graph[CellID] with Manhattan/octile estimates
//
// Quick example (five-node map, straight-line estimates toward F):
//
//	A─10─B─7─C─9─F
//	│        │   │
//	20       8   6
//	│        │   │
//	E────────┘───┘   (C─E 8, E─F 6)
//
//	res, _ := astar.Search(g, "A", "F")
//	fmt.Println(res.Path, res.Cost) // [A E F] 26
//
// Preconditions: edge weights are finite and ≥ 0; estimates are finite and
// ≥ 0. Results are optimal when the heuristic is consistent
// (core.CheckConsistent); closed nodes are never reopened.
package shortpath
