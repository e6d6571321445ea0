// Package dijkstra implements the lowest-total-risk search on grid graphs.
//
// The search is Dijkstra's algorithm over an implicit graph: cells are
// vertices, orthogonal neighbors are joined, and entering a cell costs that
// cell's value. It processes cells in order of increasing distance using a
// min-heap priority queue.
//
// Notes on implementation choices:
//
//   - The distance table doubles as the visited set: a cell gets an entry
//     exactly once, the first time it is popped, and that entry is final.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - The frontier is seeded with the origin's neighbors keyed by their own
//     cost; the origin is settled at 0 and its cost is never added.
//   - We stop as soon as the target is settled; the rest of the heap is dropped.
package dijkstra

import (
	"container/heap"
	"fmt"
	"reflect"
)

// LowestRisk computes the minimum total entry cost of a path from (0,0) to
// the target cell of g (bottom-right unless WithTarget is given).
//
// Preconditions and validation (in order):
//  1. g must be neither nil nor a nil pointer of any type (ErrNilGrid).
//  2. g must have at least one row and one column (ErrDegenerateGrid).
//  3. MaxDistance must be ≥ 0 (ErrBadMaxDistance).
//  4. The target must lie inside g (ErrTargetOutOfRange).
//
// A 1×1 grid, or a target equal to the origin, yields 0. A neighbor that g
// reports outside its own bounds aborts the search with ErrNeighborOutOfRange.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H
//   - Space: O(N)
func LowestRisk(g Grid, opts ...Option) (int64, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid
	if g == nil {
		return 0, ErrNilGrid
	}
	if v := reflect.ValueOf(g); v.Kind() == reflect.Pointer && v.IsNil() {
		return 0, ErrNilGrid
	}
	w, h := g.Width(), g.Height()
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("%w: got %dx%d", ErrDegenerateGrid, w, h)
	}

	// 3) Validate options
	if cfg.MaxDistance < 0 {
		return 0, ErrBadMaxDistance
	}
	tx, ty := w-1, h-1
	if cfg.HasTarget {
		tx, ty = cfg.TargetX, cfg.TargetY
		if tx < 0 || tx >= w || ty < 0 || ty >= h {
			return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrTargetOutOfRange, tx, ty, w, h)
		}
	}

	// 4) Run the search on fresh per-call state
	st := cfg.Stats
	if st == nil {
		st = &Stats{}
	}
	*st = Stats{}
	r := &runner{
		g:       g,
		width:   w,
		height:  h,
		target:  ty*w + tx,
		maxDist: cfg.MaxDistance,
		dist:    make([]int64, w*h),
		settled: make([]bool, w*h),
		pq:      make(cellPQ, 0, 4*w),
		stats:   st,
	}
	if err := r.init(); err != nil {
		return 0, err
	}

	return r.process()
}

// runner holds the mutable state for a single search.
type runner struct {
	g       Grid    // The input grid; read-only within the search.
	width   int     // Cached g.Width() for index arithmetic.
	height  int     // Cached g.Height() for neighbor bounds checks.
	target  int     // Row-major index of the target cell.
	maxDist int64   // Distance cap.
	dist    []int64 // Final distance per cell; valid only where settled is true.
	settled []bool  // Whether a cell's distance is final.
	pq      cellPQ  // Min-heap frontier with lazy deletion.
	stats   *Stats  // Counters, never nil.
}

// init settles the origin at distance 0 and seeds the frontier with its
// neighbors, each keyed by its own entry cost.
func (r *runner) init() error {
	r.dist[0] = 0
	r.settled[0] = true
	r.stats.Settled++

	heap.Init(&r.pq)

	return r.relax(0, 0, 0)
}

// process is the core loop: pop the cheapest entry, skip it if stale,
// otherwise settle it and relax its neighbors, until the target is settled.
func (r *runner) process() (int64, error) {
	for !r.settled[r.target] {
		if r.pq.Len() == 0 {
			return 0, ErrNoPath
		}

		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(cellItem)
		r.stats.Pops++
		idx := item.y*r.width + item.x

		// 2) Skip stale entries for cells already settled.
		if r.settled[idx] {
			r.stats.Stale++
			continue
		}

		// 3) The heap minimum past the cap means nothing cheaper remains.
		if item.dist > r.maxDist {
			return 0, fmt.Errorf("%w: %d", ErrDistanceExceeded, r.maxDist)
		}

		// 4) Settle: first pop of a cell is final under non-negative costs.
		r.dist[idx] = item.dist
		r.settled[idx] = true
		r.stats.Settled++

		// 5) Queue every unsettled neighbor.
		if err := r.relax(item.x, item.y, item.dist); err != nil {
			return 0, err
		}
	}

	return r.dist[r.target], nil
}

// relax pushes (d + cost, n) for every unsettled neighbor n of (x,y).
// No decrease-key: duplicates are pruned at pop time.
func (r *runner) relax(x, y int, d int64) error {
	for _, n := range r.g.Neighbors(x, y) {
		if n.X < 0 || n.X >= r.width || n.Y < 0 || n.Y >= r.height {
			return fmt.Errorf("%w: (%d,%d) reported for (%d,%d) in %dx%d grid",
				ErrNeighborOutOfRange, n.X, n.Y, x, y, r.width, r.height)
		}
		if r.settled[n.Y*r.width+n.X] {
			continue
		}
		heap.Push(&r.pq, cellItem{x: n.X, y: n.Y, dist: d + int64(n.Value)})
		r.stats.Pushes++
	}

	return nil
}

// cellItem is a frontier entry: a cell and a tentative distance to it.
type cellItem struct {
	x, y int
	dist int64
}

// cellPQ is a min-heap of cellItem ordered by dist ascending.
// Ties are broken arbitrarily; results do not depend on the order.
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to cellItem.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
