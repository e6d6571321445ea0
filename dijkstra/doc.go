// Package dijkstra provides the lowest-total-risk search: Dijkstra's
// shortest-path algorithm specialised to grids of non-negative entry costs.
//
// Overview:
//
//   - LowestRisk computes the minimum total cost of moving from the top-left
//     cell to the bottom-right cell (or a chosen target) through orthogonal
//     neighbors, in O(N log N) time for N = W×H cells.
//   - Entering a cell costs that cell's value; starting in the origin is free.
//   - It relies on a min-heap (priority queue) to always settle the next-closest cell.
//   - Only the total cost is returned; paths are not reconstructed.
//
// When to use:
//
//   - Any grid where movement cost is a property of the destination cell:
//     risk maps, terrain difficulty, congestion tiles.
//   - Together with gridgraph.Expand, to solve a tiled copy of a map through
//     the very same Grid contract; the search never special-cases tiled grids.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithTarget: settle a cell other than the bottom-right one.
//   - WithMaxDistance: abort once the target provably lies beyond a cap.
//   - WithStats: count pushes, pops, stale entries and settled cells.
//
// Performance and complexity:
//
//   - Time:  O(N log N)
//   - Each cell is settled at most once.
//   - Each settlement pushes at most four entries (one per neighbor).
//   - Space: O(N)
//   - Flat row-major distance table and settled flags.
//   - O(N) worst-case heap entries under “lazy decrease-key”.
//   - Distances accumulate in int64; the largest possible total is 9×W×H.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          the grid is nil or a nil pointer.
//   - ErrDegenerateGrid:   the grid has zero width or height.
//   - ErrTargetOutOfRange: WithTarget named a cell outside the grid.
//   - ErrBadMaxDistance:   WithMaxDistance was given a negative value.
//   - ErrDistanceExceeded: the target could not be settled within MaxDistance.
//   - ErrNoPath:           the frontier drained first (only for Grids with holes).
//   - ErrNeighborOutOfRange: the Grid reported a neighbor outside its bounds.
//
// API reference:
//
//	func LowestRisk(g Grid, opts ...Option) (int64, error)
//
//	  - g:    any Grid; *gridgraph.GridGraph is the standard implementation.
//	  - opts: WithTarget(x, y), WithMaxDistance(int64), WithStats(*Stats).
//
// Thread safety:
//
//   - Each call owns its distance table and frontier; a *gridgraph.GridGraph
//     is immutable, so concurrent searches on the same grid are safe.
package dijkstra
