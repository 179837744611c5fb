package astar

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Search builds an Engine for (source, destination) and runs it to completion.
//
// Returns:
//   - a Result with Found=true, the path and its cost; or
//   - a Result with Found=false when no path exists (nil error); or
//   - a validation or abort error.
//
// Example:
//
//	res, err := astar.Search(g, "A", "F")
//	if err != nil {
//	    return err
//	}
//	if !res.Found {
//	    // unreachable
//	}
func Search[N comparable](g *core.Graph[N], source, destination N, opts ...Option) (*Result[N], error) {
	e, err := NewEngine(g, source, destination, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run()
}

// ShortestPath is Search for callers preferring an error over Result.Found:
// an unreachable destination yields core.ErrNoPathFound.
func ShortestPath[N comparable](g *core.Graph[N], source, destination N, opts ...Option) ([]N, float64, error) {
	res, err := Search(g, source, destination, opts...)
	if err != nil {
		return nil, 0, err
	}
	if !res.Found {
		return nil, res.Cost, fmt.Errorf("%w: %v → %v", core.ErrNoPathFound, source, destination)
	}

	return res.Path, res.Cost, nil
}
