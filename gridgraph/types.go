package gridgraph

// DefaultTiles is the number of repeats per axis used by Expand.
const DefaultTiles = 5

// maxCost is the largest cost an expanded cell may carry; costs past it wrap to 1.
const maxCost = 9

// Cell represents a single grid cell with its coordinates and entry cost.
type Cell struct {
	X, Y  int // Coordinates within the grid (X column, Y row)
	Value int // Cost of entering (X, Y)
}

// neighborOffsets lists the 4-neighborhood in the fixed order up, down, left, right.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// GridGraph treats a rectangular grid of entry costs as an implicit graph:
// every cell is a vertex, edges join orthogonal neighbors, and the weight of
// an edge is the cost of the cell it enters. It is immutable once built.
//
// Costs are stored row-major in a flat slice: cost(x,y) = costs[y*width+x].
type GridGraph struct {
	width, height int
	costs         []int
}
