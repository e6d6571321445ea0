package gridgraph

import "fmt"

// MaxExpandedCells bounds the cell count of an expanded grid.
const MaxExpandedCells = 1 << 28

// Expand tiles gg DefaultTiles times along each axis. See ExpandN.
func Expand(gg *GridGraph) (*GridGraph, error) {
	return ExpandN(gg, DefaultTiles)
}

// ExpandN builds a new GridGraph that repeats gg tiles times horizontally
// and tiles times vertically. Tile (i, j), with i the horizontal and j the
// vertical repeat, has every cost raised by i+j; costs past 9 wrap back to 1,
// so a raised cost never becomes 0 and never exceeds 9.
//
// Behavior:
//  1. Validate tiles ≥ 1 and a result of at most MaxExpandedCells cells
//     (ErrTileFactor).
//  2. Tile (0,0) copies gg verbatim.
//  3. Every other tile maps base cost b to ((b-1+i+j) mod 9) + 1.
//
// The input is left untouched; the result shares no storage with it.
//
// Complexity: O(tiles²·W·H) time and memory.
func ExpandN(gg *GridGraph, tiles int) (*GridGraph, error) {
	if gg == nil || gg.width == 0 || gg.height == 0 {
		return nil, ErrEmptyGrid
	}
	if tiles < 1 {
		return nil, ErrTileFactor
	}
	// Divide before multiplying so a huge factor cannot wrap around.
	if tiles > MaxExpandedCells/gg.width || tiles > MaxExpandedCells/gg.height {
		return nil, fmt.Errorf("%w: %d tiles of %dx%d exceed %d cells", ErrTileFactor, tiles, gg.width, gg.height, MaxExpandedCells)
	}
	w, h := gg.width*tiles, gg.height*tiles
	if w > MaxExpandedCells/h {
		return nil, fmt.Errorf("%w: %d tiles of %dx%d exceed %d cells", ErrTileFactor, tiles, gg.width, gg.height, MaxExpandedCells)
	}

	costs := make([]int, w*h)
	for y := 0; y < h; y++ {
		j, by := y/gg.height, y%gg.height
		for x := 0; x < w; x++ {
			i, bx := x/gg.width, x%gg.width
			costs[y*w+x] = TileCost(gg.costs[gg.Index(bx, by)], i, j)
		}
	}

	return &GridGraph{width: w, height: h, costs: costs}, nil
}

// TileCost returns the cost a base cell carries in tile (i, j).
// Tile (0,0) keeps the base cost; any other tile applies the wrap rule
// ((base-1+i+j) mod 9) + 1.
func TileCost(base, i, j int) int {
	if i+j == 0 {
		return base
	}
	// base 0 would give a negative dividend; shift by maxCost to keep the remainder in range.
	return ((base-1+i+j)%maxCost+maxCost)%maxCost + 1
}
