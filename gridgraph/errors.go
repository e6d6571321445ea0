package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidDigit indicates a row character outside '0'..'9'.
	ErrInvalidDigit = errors.New("gridgraph: cell must be a decimal digit")
	// ErrNegativeCost indicates a negative entry cost in a parsed grid.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrTileFactor indicates an expansion factor below one, or one whose
	// result would exceed MaxExpandedCells.
	ErrTileFactor = errors.New("gridgraph: tile factor out of range")
	// ErrUnrenderable indicates a cost above 9, which has no single-digit form.
	ErrUnrenderable = errors.New("gridgraph: cost has no single-digit form")
)
