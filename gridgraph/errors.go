package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = fmt.Errorf("%w: gridgraph: input grid must have at least one row and one column", core.ErrInvalidArgument)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: gridgraph: all rows must have the same length", core.ErrInvalidArgument)
	// ErrBadGoal indicates a goal that is outside the grid or not passable.
	ErrBadGoal = fmt.Errorf("%w: gridgraph: goal must be a passable cell", core.ErrInvalidArgument)
	// ErrBadCell indicates a CellID that does not address a cell of this grid.
	ErrBadCell = errors.New("gridgraph: cell id out of range")
)
