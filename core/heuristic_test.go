package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/shortpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroTable(t *testing.T) {
	table := core.ZeroTable("A", "B")
	assert.Equal(t, core.Table[string]{
		"A": {"A": 0, "B": 0},
		"B": {"A": 0, "B": 0},
	}, table)
	assert.Empty(t, core.ZeroTable[string]())
}

func TestTable_Estimate(t *testing.T) {
	table := core.Table[string]{"A": {"B": 3}}

	h, err := table.Estimate("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, h)

	_, err = table.Estimate("B", "A")
	assert.ErrorIs(t, err, core.ErrMissingEstimate)
	_, err = table.Estimate("A", "C")
	assert.ErrorIs(t, err, core.ErrMissingEstimate)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestTable_CloneIsDeep(t *testing.T) {
	var nilTable core.Table[string]
	assert.Nil(t, nilTable.Clone())

	table := core.Table[string]{"A": {"B": 1}}
	cp := table.Clone()
	cp["A"]["B"] = 2
	assert.Equal(t, 1.0, table["A"]["B"])
}

// consistencyGraph is a path A—B—C with configurable estimates toward C.
func consistencyGraph(t *testing.T, hA, hB float64) *core.Graph[string] {
	t.Helper()
	table := core.Table[string]{
		"A": {"C": hA},
		"B": {"C": hB},
		"C": {"C": 0},
	}
	g, err := core.NewGraph(table)
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 3))

	return g
}

func TestCheckConsistent(t *testing.T) {
	assert.NoError(t, core.CheckConsistent(consistencyGraph(t, 5, 3), "C"))

	// h(A)=6 > w(A,B)+h(B)=2+3.
	err := core.CheckConsistent(consistencyGraph(t, 6, 3), "C")
	assert.ErrorIs(t, err, core.ErrInconsistentHeuristic)

	// Missing column for destination A.
	err = core.CheckConsistent(consistencyGraph(t, 5, 3), "A")
	assert.ErrorIs(t, err, core.ErrMissingEstimate)

	assert.ErrorIs(t, core.CheckConsistent[string](nil, "C"), core.ErrNilGraph)
	assert.ErrorIs(t, core.CheckConsistent(consistencyGraph(t, 5, 3), ""), core.ErrZeroNode)
	assert.ErrorIs(t, core.CheckConsistent(consistencyGraph(t, 5, 3), "Q"), core.ErrNodeNotFound)
}

// TestConcurrentReads runs readers against a writer; run with -race.
func TestConcurrentReads(t *testing.T) {
	const n = 64
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("V%d", i)
	}
	g, err := core.NewGraph(core.ZeroTable(ids...))
	require.NoError(t, err)
	for _, id := range ids {
		require.NoError(t, g.AddNode(id))
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2*(n-1)) // one send per goroutine
	for i := 1; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			errs <- g.AddEdge(ids[i-1], ids[i], float64(i))
		}(i)
		go func(i int) {
			defer wg.Done()
			_, err := g.EdgesFrom(ids[i])
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, n-1, g.EdgeCount())
}
