// Package chiton finds the lowest total risk path through a cave risk map.
//
// A risk map is a rectangle of digits; entering a cell costs its digit, and
// the path runs from the top-left cell to the bottom-right one through
// orthogonal moves. The starting cell is never paid for.
//
// Under the hood, everything is organized under two subpackages and a command:
//
//	gridgraph/   — immutable GridGraph: costs, bounds, 4-adjacency, 5×5 expansion
//	dijkstra/    — LowestRisk: lazy-deletion Dijkstra over any gridgraph-shaped Grid
//	cmd/chiton/  — CLI: reads a map, prints the base and expanded answers
//
// Quick ASCII example:
//
//	1 2 3
//	4 5 6      right, right, down, down: 2 + 3 + 6 + 9 = 20
//	7 8 9
//
//	go install github.com/katalvlaran/chiton/cmd/chiton@latest
package chiton
