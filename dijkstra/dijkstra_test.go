// Package dijkstra_test contains unit tests for the lowest-risk search.
// These tests validate input checking, the canonical scenarios, options,
// and algebraic properties checked against independent oracles.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/chiton/dijkstra"
	"github.com/katalvlaran/chiton/gridgraph"
)

// exampleLines is the canonical 10×10 risk map.
var exampleLines = []string{
	"1163751742",
	"1381373672",
	"2136511328",
	"3694931569",
	"7463417111",
	"1319128137",
	"1359912421",
	"3125421639",
	"1293138521",
	"2311944581",
}

// corridorLines is cheap only along the left column and the bottom row.
// Any route enters at least 18 cells; the corridor enters 17 cells of cost 1
// and the target of cost 3.
var corridorLines = []string{
	"1999999999",
	"1999999999",
	"1999999999",
	"1999999999",
	"1999999999",
	"1999999999",
	"1999999999",
	"1999999999",
	"1999999999",
	"1111111113",
}

// LowestRiskSuite exercises LowestRisk under various scenarios.
type LowestRiskSuite struct {
	suite.Suite
	example *gridgraph.GridGraph
}

func (s *LowestRiskSuite) SetupSuite() {
	gg, err := gridgraph.FromLines(exampleLines)
	s.Require().NoError(err)
	s.example = gg
}

func TestLowestRiskSuite(t *testing.T) {
	suite.Run(t, new(LowestRiskSuite))
}

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs.
// ------------------------------------------------------------------------

// TestNilGrid covers an untyped nil and typed nil pointers of two Grid types.
func (s *LowestRiskSuite) TestNilGrid() {
	_, err := dijkstra.LowestRisk(nil)
	s.Require().ErrorIs(err, dijkstra.ErrNilGrid)

	var gg *gridgraph.GridGraph
	_, err = dijkstra.LowestRisk(gg)
	s.Require().ErrorIs(err, dijkstra.ErrNilGrid)

	// A nil pointer of some other Grid type must not reach its methods.
	var pg *pointerGrid
	s.Require().NotPanics(func() {
		_, err = dijkstra.LowestRisk(pg)
	})
	s.Require().ErrorIs(err, dijkstra.ErrNilGrid)
}

// TestNeighborOutOfRange rejects adjacency that leaves the grid, both from
// the origin and from a settled interior cell.
func (s *LowestRiskSuite) TestNeighborOutOfRange() {
	cases := []struct {
		name string
		grid strayGrid
	}{
		{"FromOrigin", strayGrid{w: 2, h: 1, from: 0, stray: gridgraph.Cell{X: 5, Y: 5, Value: 1}}},
		{"NegativeFromOrigin", strayGrid{w: 2, h: 2, from: 0, stray: gridgraph.Cell{X: -1, Y: 0, Value: 1}}},
		{"FromSettledCell", strayGrid{w: 3, h: 3, from: 1, stray: gridgraph.Cell{X: 1, Y: 3, Value: 1}}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			var err error
			s.Require().NotPanics(func() {
				_, err = dijkstra.LowestRisk(tc.grid)
			})
			s.Require().ErrorIs(err, dijkstra.ErrNeighborOutOfRange)
		})
	}
}

// TestDegenerateGrid reports zero-sized grids distinctly.
func (s *LowestRiskSuite) TestDegenerateGrid() {
	_, err := dijkstra.LowestRisk(fakeGrid{w: 0, h: 3})
	s.Require().ErrorIs(err, dijkstra.ErrDegenerateGrid)

	_, err = dijkstra.LowestRisk(fakeGrid{w: 3, h: 0})
	s.Require().ErrorIs(err, dijkstra.ErrDegenerateGrid)

	_, err = dijkstra.LowestRisk(&gridgraph.GridGraph{})
	s.Require().ErrorIs(err, dijkstra.ErrDegenerateGrid)
	s.Require().NotErrorIs(err, dijkstra.ErrNoPath)
}

// TestTargetOutOfRange rejects targets outside the grid.
func (s *LowestRiskSuite) TestTargetOutOfRange() {
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		_, err := dijkstra.LowestRisk(s.example, dijkstra.WithTarget(xy[0], xy[1]))
		s.Require().ErrorIs(err, dijkstra.ErrTargetOutOfRange, "target %v", xy)
	}
}

// TestBadMaxDistance rejects a negative cap.
func (s *LowestRiskSuite) TestBadMaxDistance() {
	_, err := dijkstra.LowestRisk(s.example, dijkstra.WithMaxDistance(-1))
	s.Require().ErrorIs(err, dijkstra.ErrBadMaxDistance)
}

// TestNoPath surfaces a drained frontier on a Grid with no adjacency.
func (s *LowestRiskSuite) TestNoPath() {
	_, err := dijkstra.LowestRisk(fakeGrid{w: 2, h: 2})
	s.Require().ErrorIs(err, dijkstra.ErrNoPath)
}

// ------------------------------------------------------------------------
// 2. Canonical scenarios.
// ------------------------------------------------------------------------

// TestExample verifies the 10×10 example map costs 40.
func (s *LowestRiskSuite) TestExample() {
	got, err := dijkstra.LowestRisk(s.example)
	s.Require().NoError(err)
	s.Require().Equal(int64(40), got)
}

// TestCorridor verifies the left-column/bottom-row corridor costs 20.
func (s *LowestRiskSuite) TestCorridor() {
	gg, err := gridgraph.FromLines(corridorLines)
	s.Require().NoError(err)

	got, err := dijkstra.LowestRisk(gg)
	s.Require().NoError(err)
	s.Require().Equal(int64(20), got)
}

// TestExpandedExample verifies the 50×50 expansion of the example costs 315.
func (s *LowestRiskSuite) TestExpandedExample() {
	ex, err := gridgraph.Expand(s.example)
	s.Require().NoError(err)

	got, err := dijkstra.LowestRisk(ex)
	s.Require().NoError(err)
	s.Require().Equal(int64(315), got)
}

// TestSingleCell returns zero: the origin is the target and is never paid for.
func (s *LowestRiskSuite) TestSingleCell() {
	gg, err := gridgraph.FromLines([]string{"9"})
	s.Require().NoError(err)

	var st dijkstra.Stats
	got, err := dijkstra.LowestRisk(gg, dijkstra.WithStats(&st))
	s.Require().NoError(err)
	s.Require().Zero(got)
	s.Require().Equal(dijkstra.Stats{Settled: 1}, st)
}

// TestOriginCostIgnored shows the origin's cost never enters the total.
func (s *LowestRiskSuite) TestOriginCostIgnored() {
	cheap, _ := gridgraph.FromLines([]string{"12", "34"})
	dear, _ := gridgraph.FromLines([]string{"92", "34"})

	a, err := dijkstra.LowestRisk(cheap)
	s.Require().NoError(err)
	b, err := dijkstra.LowestRisk(dear)
	s.Require().NoError(err)
	s.Require().Equal(int64(6), a) // right (2) then down (4)
	s.Require().Equal(a, b)
}

// TestZeroCosts handles free cells.
func (s *LowestRiskSuite) TestZeroCosts() {
	gg, _ := gridgraph.FromLines([]string{"000", "000"})
	got, err := dijkstra.LowestRisk(gg)
	s.Require().NoError(err)
	s.Require().Zero(got)
}

// TestSingleRowAndColumn sums every cell after the origin.
func (s *LowestRiskSuite) TestSingleRowAndColumn() {
	row, _ := gridgraph.FromLines([]string{"51234"})
	got, err := dijkstra.LowestRisk(row)
	s.Require().NoError(err)
	s.Require().Equal(int64(10), got)

	col, _ := gridgraph.FromLines([]string{"5", "1", "2", "3", "4"})
	got, err = dijkstra.LowestRisk(col)
	s.Require().NoError(err)
	s.Require().Equal(int64(10), got)
}

// TestDetour prefers a longer cheap route over a short expensive one.
func (s *LowestRiskSuite) TestDetour() {
	gg, _ := gridgraph.FromLines([]string{
		"11111",
		"99991",
		"11111",
		"19999",
		"11111",
	})
	got, err := dijkstra.LowestRisk(gg)
	s.Require().NoError(err)
	s.Require().Equal(int64(16), got) // snaking through the 1s ties with cutting through (0,1)
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

// TestWithTarget settles intermediate cells of the example map.
func (s *LowestRiskSuite) TestWithTarget() {
	got, err := dijkstra.LowestRisk(s.example, dijkstra.WithTarget(0, 0))
	s.Require().NoError(err)
	s.Require().Zero(got)

	got, err = dijkstra.LowestRisk(s.example, dijkstra.WithTarget(1, 0))
	s.Require().NoError(err)
	s.Require().Equal(int64(1), got)

	got, err = dijkstra.LowestRisk(s.example, dijkstra.WithTarget(0, 2))
	s.Require().NoError(err)
	s.Require().Equal(int64(3), got)

	got, err = dijkstra.LowestRisk(s.example, dijkstra.WithTarget(9, 9))
	s.Require().NoError(err)
	s.Require().Equal(int64(40), got)
}

// TestWithMaxDistance stops early when the target lies beyond the cap.
func (s *LowestRiskSuite) TestWithMaxDistance() {
	got, err := dijkstra.LowestRisk(s.example, dijkstra.WithMaxDistance(40))
	s.Require().NoError(err)
	s.Require().Equal(int64(40), got)

	_, err = dijkstra.LowestRisk(s.example, dijkstra.WithMaxDistance(39))
	s.Require().ErrorIs(err, dijkstra.ErrDistanceExceeded)
}

// TestWithStats checks counter consistency.
func (s *LowestRiskSuite) TestWithStats() {
	st := dijkstra.Stats{Pushes: 99}
	_, err := dijkstra.LowestRisk(s.example, dijkstra.WithStats(&st))
	s.Require().NoError(err)

	s.Require().Positive(st.Pushes)
	s.Require().LessOrEqual(st.Pops, st.Pushes)
	s.Require().Equal(st.Pops, st.Settled-1+st.Stale) // origin is settled without a pop
	s.Require().LessOrEqual(st.Settled, len(exampleLines)*len(exampleLines[0]))
}

// ------------------------------------------------------------------------
// 4. Properties on random grids.
// ------------------------------------------------------------------------

// TestPropertiesRandom checks, on many small random grids:
//   - the result matches an independent Bellman–Ford oracle,
//   - it is never above the staircase (right, then down) path,
//   - it is positive unless the grid is a single cell.
func TestPropertiesRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 200; n++ {
		w, h := 1+rng.Intn(8), 1+rng.Intn(8)
		values := randomValues(rng, w, h, 1)
		gg, err := gridgraph.From2D(values)
		require.NoError(t, err)

		got, err := dijkstra.LowestRisk(gg)
		require.NoError(t, err)

		require.Equal(t, bellmanFord(values, w-1, h-1), got, "grid %v", values)
		require.LessOrEqual(t, got, staircase(values), "grid %v", values)
		if w == 1 && h == 1 {
			require.Zero(t, got)
		} else {
			require.Positive(t, got)
		}
	}
}

// TestPropertiesZeroCosts compares with the oracle when costs may be zero.
func TestPropertiesZeroCosts(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 100; n++ {
		w, h := 1+rng.Intn(6), 1+rng.Intn(6)
		values := randomValues(rng, w, h, 0)
		gg, err := gridgraph.From2D(values)
		require.NoError(t, err)

		got, err := dijkstra.LowestRisk(gg)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, int64(0))
		require.Equal(t, bellmanFord(values, w-1, h-1), got, "grid %v", values)
	}
}

// TestMonotonicity bumps single cells on random grids:
//   - bumping the target cell by k raises the distance to it by exactly k;
//   - bumping a cell farther than the bottom-right total never changes the total.
func TestMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 60; n++ {
		w, h := 2+rng.Intn(6), 2+rng.Intn(6)
		values := randomValues(rng, w, h, 1)
		gg, err := gridgraph.From2D(values)
		require.NoError(t, err)

		total, err := dijkstra.LowestRisk(gg)
		require.NoError(t, err)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if x == 0 && y == 0 {
					continue
				}
				before, err := dijkstra.LowestRisk(gg, dijkstra.WithTarget(x, y))
				require.NoError(t, err)

				bumped := bump(t, gg, x, y, 5)
				after, err := dijkstra.LowestRisk(bumped, dijkstra.WithTarget(x, y))
				require.NoError(t, err)
				require.Equal(t, before+5, after, "cell (%d,%d)", x, y)

				newTotal, err := dijkstra.LowestRisk(bumped)
				require.NoError(t, err)
				require.GreaterOrEqual(t, newTotal, total, "cell (%d,%d)", x, y)
				if before > total {
					require.Equal(t, total, newTotal, "off-path cell (%d,%d)", x, y)
				}
			}
		}
	}
}

// TestExpandedProperties checks the expanded random grids against the oracle.
func TestExpandedProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 0; n < 10; n++ {
		w, h := 1+rng.Intn(4), 1+rng.Intn(4)
		gg, err := gridgraph.From2D(randomValues(rng, w, h, 1))
		require.NoError(t, err)
		ex, err := gridgraph.Expand(gg)
		require.NoError(t, err)

		got, err := dijkstra.LowestRisk(ex)
		require.NoError(t, err)
		require.Equal(t, bellmanFord(ex.Values(), ex.Width()-1, ex.Height()-1), got)
	}
}

// ------------------------------------------------------------------------
// Helpers.
// ------------------------------------------------------------------------

// fakeGrid is a Grid with the given size and no adjacency at all.
type fakeGrid struct{ w, h int }

func (f fakeGrid) Width() int                          { return f.w }
func (f fakeGrid) Height() int                         { return f.h }
func (f fakeGrid) Neighbors(x, y int) []gridgraph.Cell { return nil }

// pointerGrid is a Grid implemented on a pointer receiver.
type pointerGrid struct{ w, h int }

func (p *pointerGrid) Width() int                          { return p.w }
func (p *pointerGrid) Height() int                         { return p.h }
func (p *pointerGrid) Neighbors(x, y int) []gridgraph.Cell { return nil }

// strayGrid is a w×h grid of unit costs whose cell at row-major index from
// also reports stray as a neighbor.
type strayGrid struct {
	w, h  int
	from  int
	stray gridgraph.Cell
}

func (g strayGrid) Width() int  { return g.w }
func (g strayGrid) Height() int { return g.h }

func (g strayGrid) Neighbors(x, y int) []gridgraph.Cell {
	var out []gridgraph.Cell
	for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if nx >= 0 && nx < g.w && ny >= 0 && ny < g.h {
			out = append(out, gridgraph.Cell{X: nx, Y: ny, Value: 1})
		}
	}
	if y*g.w+x == g.from {
		out = append(out, g.stray)
	}

	return out
}

// randomValues returns an h×w grid of costs in [lo, 9].
func randomValues(rng *rand.Rand, w, h, lo int) [][]int {
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			values[y][x] = lo + rng.Intn(10-lo)
		}
	}

	return values
}

// staircase is the cost of moving right along row 0, then down the last column.
func staircase(values [][]int) int64 {
	var sum int64
	w := len(values[0])
	for x := 1; x < w; x++ {
		sum += int64(values[0][x])
	}
	for y := 1; y < len(values); y++ {
		sum += int64(values[y][w-1])
	}

	return sum
}

// bellmanFord relaxes every cell until nothing improves; an oracle
// independent of heap ordering.
func bellmanFord(values [][]int, tx, ty int) int64 {
	const inf = int64(1) << 62
	h, w := len(values), len(values[0])
	dist := make([][]int64, h)
	for y := range dist {
		dist[y] = make([]int64, w)
		for x := range dist[y] {
			dist[y][x] = inf
		}
	}
	dist[0][0] = 0
	for changed := true; changed; {
		changed = false
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if dist[y][x] == inf {
					continue
				}
				for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
					nx, ny := x+d[0], y+d[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					if nd := dist[y][x] + int64(values[ny][nx]); nd < dist[ny][nx] {
						dist[ny][nx] = nd
						changed = true
					}
				}
			}
		}
	}

	return dist[ty][tx]
}

// bump returns a copy of gg whose cell (x,y) costs k more.
func bump(t *testing.T, gg *gridgraph.GridGraph, x, y, k int) *gridgraph.GridGraph {
	t.Helper()
	values := gg.Values()
	values[y][x] += k
	out, err := gridgraph.From2D(values)
	require.NoError(t, err)

	return out
}
