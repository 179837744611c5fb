// Package astar implements single-source, single-destination shortest-path
// search over a core.Graph. Dijkstra and A* are the same loop: the only
// difference is the heuristic table the graph was built with (or
// WithUniformCost, which substitutes h ≡ 0).
//
// Entry points:
//
//   - Search / ShortestPath: build an Engine and run it to completion.
//   - Engine: a single-use state machine driven one expansion at a time via
//     Step, or to completion via Run / RunContext.
//
// State machine:
//
//	Ready ──Step──▶ Running ──▶ Succeeded   (destination popped)
//	                        ├─▶ Exhausted   (frontier empty: no path)
//	                        └─▶ Aborted     (context cancelled, expansion cap,
//	                                         or a missing estimate)
//
// Terminal states are final. An Engine never restarts; build a new one.
//
// Loop, one Step:
//
//  1. Pop the frontier entry with minimum f = g + h. Empty ⇒ Exhausted.
//  2. Drop stale entries: node already closed, or entry g ≠ current g.
//  3. Popped node is the destination ⇒ Succeeded.
//  4. Close the node.
//  5. For each arc (v, w) with v not closed: if g(u)+w < g(v), set g(v),
//     look up h(v, dst), set f(v), pred(v)=u and push a fresh entry.
//
// Frontier strategy: lazy deletion. Improving a node pushes a new entry; the
// old one stays in the heap and is discarded on pop (step 2). The heap holds
// at most V + E entries.
//
// Precondition: closed nodes are never reopened. Results are optimal for
// uniform-cost search and for A* with a consistent heuristic. An admissible
// but inconsistent heuristic may yield a suboptimal path; core.CheckConsistent
// verifies the precondition up front.
//
// Per-node state (g, h, f, predecessor, closed) lives in dense arrays indexed
// by core.Graph.Index and is allocated per Engine, so independent engines may
// search the same Graph concurrently. A single Engine is not safe for
// concurrent use.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package astar
