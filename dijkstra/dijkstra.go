package dijkstra

import (
	"github.com/katalvlaran/shortpath/astar"
	"github.com/katalvlaran/shortpath/core"
)

// NewGraph returns a Graph over ids backed by an all-zero heuristic table,
// with every id already added as a node. Duplicate ids are added once.
//
// Complexity: O(V²) for the zero table.
func NewGraph[N comparable](ids ...N) (*core.Graph[N], error) {
	g, err := core.NewGraph(core.ZeroTable(ids...), core.WithCapacity(len(ids)))
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if err = g.AddNode(id); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Search runs uniform-cost search from source to destination.
// Extra options (tie-break, expansion cap, observer) are forwarded to astar.
func Search[N comparable](g *core.Graph[N], source, destination N, opts ...astar.Option) (*astar.Result[N], error) {
	return astar.Search(g, source, destination, uniform(opts)...)
}

// ShortestPath runs uniform-cost search and returns the path and its cost.
// An unreachable destination yields core.ErrNoPathFound.
func ShortestPath[N comparable](g *core.Graph[N], source, destination N, opts ...astar.Option) ([]N, float64, error) {
	return astar.ShortestPath(g, source, destination, uniform(opts)...)
}

// uniform appends WithUniformCost last so callers cannot switch it off.
func uniform(opts []astar.Option) []astar.Option {
	out := make([]astar.Option, 0, len(opts)+1)
	out = append(out, opts...)

	return append(out, astar.WithUniformCost())
}
