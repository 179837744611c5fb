package astar_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/core"
	"github.com/stretchr/testify/require"
)

// edge is a test-local undirected edge literal.
type edge struct {
	a, b string
	w    float64
}

// buildGraph creates a graph over table, adds every row as a node in the
// given order, then adds edges in order.
func buildGraph(t testing.TB, table core.Table[string], order []string, edges []edge) *core.Graph[string] {
	t.Helper()
	g, err := core.NewGraph(table)
	require.NoError(t, err)
	for _, id := range order {
		require.NoError(t, g.AddNode(id))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.a, e.b, e.w))
	}

	return g
}

// fiveNodeTable is the straight-line estimate table of the five-node map:
// row = node, column = destination.
func fiveNodeTable() core.Table[string] {
	return core.Table[string]{
		"A": {"A": 0, "B": 10, "C": 17, "E": 20, "F": 26},
		"B": {"A": 10, "B": 0, "C": 7, "E": 8, "F": 16},
		"C": {"A": 17, "B": 7, "C": 0, "E": 8, "F": 9},
		"E": {"A": 20, "B": 15, "C": 8, "E": 0, "F": 6},
		"F": {"A": 26, "B": 16, "C": 9, "E": 6, "F": 0},
	}
}

var fiveNodeEdges = []edge{
	{"A", "B", 10},
	{"A", "E", 20},
	{"B", "C", 7},
	{"C", "E", 8},
	{"C", "F", 9},
	{"E", "F", 6},
}

// fiveNode builds the five-node A*/heuristic scenario.
func fiveNode(t testing.TB) *core.Graph[string] {
	return buildGraph(t, fiveNodeTable(), []string{"A", "B", "C", "E", "F"}, fiveNodeEdges)
}

var sixNodeIDs = []string{"A", "B", "C", "D", "H", "X"}

// sixNodeReduced keeps only the last adjacency assigned per vertex in the
// uniform-cost demo, where each assignment replaced the previous list.
func sixNodeReduced(t testing.TB) *core.Graph[string] {
	return buildGraph(t, core.ZeroTable(sixNodeIDs...), sixNodeIDs, []edge{
		{"A", "C", 3},
		{"B", "C", 1},
		{"C", "H", 7},
		{"D", "X", 3},
		{"H", "X", 4},
		{"X", "H", 4},
	})
}

// sixNodeFull declares every edge of the uniform-cost demo.
func sixNodeFull(t testing.TB) *core.Graph[string] {
	return buildGraph(t, core.ZeroTable(sixNodeIDs...), sixNodeIDs, []edge{
		{"A", "B", 2},
		{"A", "C", 3},
		{"B", "C", 1},
		{"C", "D", 2},
		{"C", "H", 7},
		{"D", "X", 3},
		{"H", "X", 4},
	})
}
