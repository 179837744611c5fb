package astar_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/shortpath/astar"
	"github.com/katalvlaran/shortpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// costTolerance absorbs float summation order differences against the oracle.
const costTolerance = 1e-9

// randomCase is a seeded random undirected graph mirrored into gonum.
// Node IDs run 1..n so that 0 stays the absent identifier.
type randomCase struct {
	n      int
	edges  [][3]float64 // a, b, w
	oracle *simple.WeightedUndirectedGraph
}

// newRandomCase generates n nodes and m edge insertions (duplicates overwrite,
// self-loops skipped) with weights in [0, 20).
func newRandomCase(seed int64, n, m int) randomCase {
	r := rand.New(rand.NewSource(seed))
	rc := randomCase{n: n, oracle: simple.NewWeightedUndirectedGraph(0, math.Inf(1))}
	for i := 1; i <= n; i++ {
		rc.oracle.AddNode(simple.Node(i))
	}
	for k := 0; k < m; k++ {
		a, b := 1+r.Intn(n), 1+r.Intn(n)
		if a == b {
			continue
		}
		w := math.Floor(r.Float64()*200) / 10
		rc.edges = append(rc.edges, [3]float64{float64(a), float64(b), w})
		rc.oracle.SetWeightedEdge(rc.oracle.NewWeightedEdge(simple.Node(a), simple.Node(b), w))
	}

	return rc
}

// ids returns 1..n.
func (rc randomCase) ids() []int {
	out := make([]int, rc.n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// build loads the case into a core.Graph with the given table.
func (rc randomCase) build(t testing.TB, table core.Table[int]) *core.Graph[int] {
	t.Helper()
	g, err := core.NewGraph(table)
	require.NoError(t, err)
	for _, id := range rc.ids() {
		require.NoError(t, g.AddNode(id))
	}
	for _, e := range rc.edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

// distancesTo returns the oracle's true distance from every node to dst.
func (rc randomCase) distancesTo(dst int) map[int]float64 {
	sh := path.DijkstraFrom(simple.Node(dst), rc.oracle)
	out := make(map[int]float64, rc.n)
	for _, id := range rc.ids() {
		out[id] = sh.WeightTo(int64(id))
	}

	return out
}

// scaledTable builds h(v, dst) = alpha·d(v, dst), which is consistent for
// alpha in [0, 1]. Unreachable nodes get 0.
func (rc randomCase) scaledTable(alpha float64) core.Table[int] {
	table := make(core.Table[int], rc.n)
	for _, id := range rc.ids() {
		table[id] = make(map[int]float64, rc.n)
	}
	for _, dst := range rc.ids() {
		for v, d := range rc.distancesTo(dst) {
			if math.IsInf(d, 1) {
				d = 0
			}
			table[v][dst] = alpha * d
		}
	}

	return table
}

func TestProperty_UniformCostMatchesDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rc := newRandomCase(seed, 30, 60)
		g := rc.build(t, core.ZeroTable(rc.ids()...))
		oracle := path.DijkstraFrom(simple.Node(1), rc.oracle)

		for _, dst := range rc.ids() {
			res, err := astar.Search(g, 1, dst)
			require.NoError(t, err)

			want := oracle.WeightTo(int64(dst))
			if math.IsInf(want, 1) {
				assert.False(t, res.Found, "seed %d dst %d should be unreachable", seed, dst)
				assert.Nil(t, res.Path)
				continue
			}
			require.True(t, res.Found, "seed %d dst %d", seed, dst)
			assert.InDelta(t, want, res.Cost, costTolerance, "seed %d dst %d", seed, dst)
			assert.InDelta(t, res.Cost, pathCost(t, g, res.Path), costTolerance)
		}
	}
}

func TestProperty_ConsistentHeuristicIsOptimal(t *testing.T) {
	for seed := int64(10); seed <= 14; seed++ {
		rc := newRandomCase(seed, 25, 70)
		for _, alpha := range []float64{0.5, 1} {
			g := rc.build(t, rc.scaledTable(alpha))
			for _, dst := range []int{2, 7, 25} {
				require.NoError(t, core.CheckConsistent(g, dst))

				want := rc.distancesTo(dst)[1]
				res, err := astar.Search(g, 1, dst)
				require.NoError(t, err)
				if math.IsInf(want, 1) {
					assert.False(t, res.Found)
					continue
				}
				require.True(t, res.Found)
				assert.InDelta(t, want, res.Cost, costTolerance, "seed %d alpha %v dst %d", seed, alpha, dst)
			}
		}
	}
}

func TestProperty_IdempotentAndSymmetric(t *testing.T) {
	rc := newRandomCase(99, 20, 45)
	g := rc.build(t, core.ZeroTable(rc.ids()...))

	for a := 1; a <= rc.n; a += 3 {
		for b := 2; b <= rc.n; b += 4 {
			ab1, err := astar.Search(g, a, b)
			require.NoError(t, err)
			ab2, err := astar.Search(g, a, b)
			require.NoError(t, err)
			ba, err := astar.Search(g, b, a)
			require.NoError(t, err)

			assert.Equal(t, ab1.Found, ab2.Found)
			assert.Equal(t, ab1.Cost, ab2.Cost)
			assert.Equal(t, ab1.Path, ab2.Path, "fixed tie-break ⇒ same path")
			assert.Equal(t, ab1.Found, ba.Found)
			if ab1.Found {
				assert.InDelta(t, ab1.Cost, ba.Cost, costTolerance)
			}
		}
	}
}

func TestProperty_ConcurrentSearches(t *testing.T) {
	rc := newRandomCase(7, 40, 120)
	g := rc.build(t, core.ZeroTable(rc.ids()...))
	oracle := path.DijkstraFrom(simple.Node(1), rc.oracle)

	var wg sync.WaitGroup
	results := make([]*astar.Result[int], rc.n+1)
	errs := make([]error, rc.n+1)
	for _, dst := range rc.ids() {
		wg.Add(1)
		go func(dst int) {
			defer wg.Done()
			results[dst], errs[dst] = astar.Search(g, 1, dst)
		}(dst)
	}
	wg.Wait()

	for _, dst := range rc.ids() {
		require.NoError(t, errs[dst])
		want := oracle.WeightTo(int64(dst))
		if math.IsInf(want, 1) {
			assert.False(t, results[dst].Found)
			continue
		}
		assert.InDelta(t, want, results[dst].Cost, costTolerance)
	}
}

// pathCost sums the weights along p and fails on a missing edge.
func pathCost[N comparable](t testing.TB, g *core.Graph[N], p []N) float64 {
	t.Helper()
	var sum float64
	for i := 1; i < len(p); i++ {
		w, ok := g.Weight(p[i-1], p[i])
		require.True(t, ok, "edge %v—%v missing", p[i-1], p[i])
		sum += w
	}

	return sum
}
