// Package dijkstra_test contains unit tests for the uniform-cost facade.
// These tests validate input handling, basic shortest paths, unreachable
// destinations and that heuristic tables are ignored.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/shortpath/astar"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestNewGraph_ZeroID(t *testing.T) {
	// The zero value is the absent identifier and must be rejected.
	_, err := dijkstra.NewGraph("A", "")
	if !errors.Is(err, core.ErrZeroNode) {
		t.Fatalf("Expected ErrZeroNode, got %v", err)
	}
}

func TestSearch_NilGraph(t *testing.T) {
	_, err := dijkstra.Search[string](nil, "A", "B")
	if !errors.Is(err, core.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestSearch_UnknownVertex(t *testing.T) {
	g, err := dijkstra.NewGraph("A")
	if err != nil {
		t.Fatal(err)
	}
	_, err = dijkstra.Search(g, "A", "X")
	if !errors.Is(err, core.ErrNodeNotFound) {
		t.Fatalf("Expected ErrNodeNotFound, got %v", err)
	}
}

func TestNewGraph_NegativeWeightRejected(t *testing.T) {
	g, err := dijkstra.NewGraph("A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if err = g.AddEdge("A", "B", -5); !errors.Is(err, core.ErrBadWeight) {
		t.Fatalf("Expected ErrBadWeight, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality.
// ------------------------------------------------------------------------

func TestShortestPath_Triangle(t *testing.T) {
	// Graph: A—B(1), B—C(2), A—C(5).
	g, err := dijkstra.NewGraph("A", "B", "C", "A")
	if err != nil {
		t.Fatal(err)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)
	if got := g.NodeCount(); got != 3 {
		t.Fatalf("NodeCount = %d; want 3", got)
	}

	path, cost, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if cost != 3 {
		t.Errorf("cost = %v; want 3", cost)
	}
	want := []string{"A", "B", "C"}
	if len(path) != len(want) {
		t.Fatalf("path = %v; want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v; want %v", path, want)
		}
	}
}

func TestShortestPath_Chain(t *testing.T) {
	// A—B—C—D—E with a D—F—G spur; every edge weighs 1.
	g, err := dijkstra.NewGraph("A", "B", "C", "D", "E", "F", "G")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"D", "F"}, {"F", "G"}} {
		if err = g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatal(err)
		}
	}

	expected := map[string]float64{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 4, "G": 5}
	for dst, want := range expected {
		_, cost, err := dijkstra.ShortestPath(g, "A", dst)
		if err != nil {
			t.Fatalf("A→%s: %v", dst, err)
		}
		if cost != want {
			t.Errorf("cost(A→%s) = %v; want %v", dst, cost, want)
		}
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g, err := dijkstra.NewGraph("A", "B", "Z")
	if err != nil {
		t.Fatal(err)
	}
	_ = g.AddEdge("A", "B", 1)

	_, _, err = dijkstra.ShortestPath(g, "A", "Z")
	if !errors.Is(err, core.ErrNoPathFound) {
		t.Fatalf("Expected ErrNoPathFound, got %v", err)
	}

	res, err := dijkstra.Search(g, "A", "Z")
	if err != nil {
		t.Fatal(err)
	}
	if res.Found || res.State != astar.Exhausted {
		t.Fatalf("Expected exhausted search, got %+v", res)
	}
}

func TestSearch_IgnoresHeuristicTable(t *testing.T) {
	// A wildly inadmissible table would mislead A*; uniform-cost ignores it.
	table := core.Table[string]{
		"A": {"C": 0},
		"B": {"C": 100},
		"C": {"C": 0},
		"D": {"C": 0},
	}
	g, err := core.NewGraph(table)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("A", "D", 5)
	_ = g.AddEdge("D", "C", 5)

	guided, err := astar.Search(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if guided.Cost != 10 {
		t.Fatalf("A* with inadmissible h: cost = %v; want 10", guided.Cost)
	}

	// Callers cannot turn uniform-cost mode off through forwarded options.
	res, err := dijkstra.Search(g, "A", "C", astar.WithTieBreak(astar.TieDeepest))
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 2 {
		t.Fatalf("cost = %v; want 2", res.Cost)
	}
}
