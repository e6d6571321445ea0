// Package gridgraph treats a rectangular grid of entry costs as an implicit
// graph, the input model for grid shortest-path searches.
//
// What:
//
//   - GridGraph stores a W×H rectangle of non-negative costs, row-major.
//   - Cost semantics: moving into a cell costs that cell's value.
//   - Neighbors follow 4-adjacency in the fixed order up, down, left, right.
//   - Expand/ExpandN tile a grid into a larger one, raising each tile's costs.
//
// Complexity:
//
//   - FromLines, From2D: O(W×H), Memory: O(W×H).
//   - CostAt, InBounds, Neighbors: O(1).
//   - ExpandN(tiles):   O(tiles²×W×H), Memory: O(tiles²×W×H).
//
// Expansion rule:
//
//	tile (i, j) cost = ((base - 1 + i + j) mod 9) + 1   for i+j > 0
//
// so 9+1 wraps to 1, never to 0 or 10.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidDigit: a row character is not a decimal digit.
//   - ErrNegativeCost: a parsed cost is below zero.
//   - ErrTileFactor: expansion factor below one, or a result above MaxExpandedCells.
//   - ErrUnrenderable: MarshalText met a cost above 9.
package gridgraph
