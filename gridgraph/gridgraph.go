package gridgraph

import (
	"fmt"
	"strings"
)

// FromLines constructs a GridGraph from rows of decimal digit characters.
// Each character is the cost of entering that cell.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs,
// ErrInvalidDigit if a character is not '0'..'9'.
// Complexity: O(W×H) time and memory.
func FromLines(lines []string) (*GridGraph, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	costs := make([]int, 0, w*h)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(line), w)
		}
		for x := 0; x < w; x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidDigit, c, x, y)
			}
			costs = append(costs, int(c-'0'))
		}
	}

	return &GridGraph{width: w, height: h, costs: costs}, nil
}

// From2D constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed as values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCost if any value is below zero.
// Complexity: O(W×H) time and memory.
func From2D(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	costs := make([]int, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeCost, v, x, y)
			}
		}
		costs = append(costs, row...)
	}

	return &GridGraph{width: w, height: h, costs: costs}, nil
}

// Width returns the number of columns.
func (gg *GridGraph) Width() int { return gg.width }

// Height returns the number of rows.
func (gg *GridGraph) Height() int { return gg.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.width && y >= 0 && y < gg.height
}

// CostAt returns the cost of entering (x,y).
// The second result is false for any coordinate outside the grid.
// Complexity: O(1).
func (gg *GridGraph) CostAt(x, y int) (int, bool) {
	if !gg.InBounds(x, y) {
		return 0, false
	}

	return gg.costs[gg.Index(x, y)], true
}

// Neighbors returns the in-bounds orthogonal neighbors of (x,y), each paired
// with its own entry cost, in the order up, down, left, right.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(x, y int) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if v, ok := gg.CostAt(nx, ny); ok {
			out = append(out, Cell{X: nx, Y: ny, Value: v})
		}
	}

	return out
}

// Values returns a deep copy of the costs as values[y][x].
// Complexity: O(W×H).
func (gg *GridGraph) Values() [][]int {
	out := make([][]int, gg.height)
	for y := range out {
		out[y] = make([]int, gg.width)
		copy(out[y], gg.costs[y*gg.width:(y+1)*gg.width])
	}

	return out
}

// String renders the grid as newline-separated digit rows.
// Costs above 9 are not representable in this form and are
// rendered by their last digit; use MarshalText to have them rejected.
func (gg *GridGraph) String() string {
	var sb strings.Builder
	sb.Grow((gg.width + 1) * gg.height)
	for y := 0; y < gg.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range gg.costs[y*gg.width : (y+1)*gg.width] {
			sb.WriteByte(byte('0' + v%10))
		}
	}

	return sb.String()
}

// MarshalText renders the grid like String but fails with ErrUnrenderable,
// naming the first offending cell, when a cost exceeds 9.
func (gg *GridGraph) MarshalText() ([]byte, error) {
	buf := make([]byte, 0, (gg.width+1)*gg.height)
	for idx, v := range gg.costs {
		if v > maxCost {
			x, y := gg.Coordinate(idx)
			return nil, fmt.Errorf("%w: %d at row %d, col %d", ErrUnrenderable, v, y, x)
		}
		if idx > 0 && idx%gg.width == 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, byte('0'+v))
	}

	return buf, nil
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.width, idx / gg.width
}
