// Package dijkstra defines core types and configuration options
// for the lowest-total-risk search over grid graphs.
//
// The search computes the minimum total entry cost of a path from the
// top-left cell to a target cell (bottom-right by default), moving only
// between orthogonal neighbors. The origin's own cost is never counted.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = W×H cells
//	   • Each cell is settled at most once.
//	   • Each settlement pushes at most 4 entries (lazy deletion, no decrease-key).
//	– Space: O(N)
//	   • Flat distance table and settled flags, one slot per cell.
//	   • Up to 4N entries in the frontier in the worst case.
//
// Options:
//
//	– Target:      cell whose distance ends the search (default: bottom-right).
//	– MaxDistance: optional cap; the search gives up once every frontier entry exceeds it.
//	– Stats:       optional counters filled in during the search.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid is nil or a nil pointer.
//	– ErrDegenerateGrid   if the grid has zero width or height.
//	– ErrTargetOutOfRange if the target lies outside the grid.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrDistanceExceeded if the target lies farther than MaxDistance.
//	– ErrNoPath           if the frontier drains before the target settles.
//	– ErrNeighborOutOfRange if the grid reports a neighbor outside its bounds.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/chiton/gridgraph"
)

// Sentinel errors returned by LowestRisk.
var (
	// ErrNilGrid indicates that LowestRisk got a nil interface or a nil
	// pointer of any type. Other nil-valued implementations (a nil map or
	// slice type) are not detected and must handle their own methods.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrDegenerateGrid indicates a grid with zero width or height; there is
	// no origin to start from and no target to reach.
	ErrDegenerateGrid = errors.New("dijkstra: grid must have at least one row and one column")

	// ErrTargetOutOfRange indicates that WithTarget named a cell outside the grid.
	ErrTargetOutOfRange = errors.New("dijkstra: target cell out of range")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrDistanceExceeded indicates that the target could not be settled
	// within MaxDistance.
	ErrDistanceExceeded = errors.New("dijkstra: target lies beyond MaxDistance")

	// ErrNoPath indicates the frontier emptied before the target was settled.
	// A rectangular grid with 4-adjacency is always connected, so this only
	// surfaces for Grid implementations with holes.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrNeighborOutOfRange indicates that Grid.Neighbors returned a cell
	// outside [0,Width)×[0,Height).
	ErrNeighborOutOfRange = errors.New("dijkstra: neighbor cell out of range")
)

// Grid is the read-only view LowestRisk needs: dimensions and 4-adjacency
// with entry costs. *gridgraph.GridGraph satisfies it.
//
// Neighbors must return cells inside [0,Width)×[0,Height) only; LowestRisk
// stops with ErrNeighborOutOfRange on the first one that is not. Costs must
// be non-negative.
type Grid interface {
	Width() int
	Height() int
	Neighbors(x, y int) []gridgraph.Cell
}

// Stats collects counters for a single search.
type Stats struct {
	Pushes  int // frontier insertions
	Pops    int // frontier extractions
	Stale   int // popped entries discarded because their cell was already settled
	Settled int // cells whose distance became final
}

// Options configures the behavior of LowestRisk.
//
// TargetX, TargetY – target cell; meaningful only when HasTarget is true.
// MaxDistance      – give up once the cheapest frontier entry exceeds this value.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Stats            – if non-nil, reset and filled during the search.
type Options struct {
	TargetX, TargetY int
	HasTarget        bool
	MaxDistance      int64
	Stats            *Stats
}

// Option represents a functional option for configuring LowestRisk.
type Option func(*Options)

// WithTarget ends the search at (x, y) instead of the bottom-right cell.
func WithTarget(x, y int) Option {
	return func(o *Options) {
		o.TargetX, o.TargetY = x, y
		o.HasTarget = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values make LowestRisk return ErrBadMaxDistance.
func WithMaxDistance(limit int64) Option {
	return func(o *Options) {
		o.MaxDistance = limit
	}
}

// WithStats records search counters into st.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// bottom-right target, no distance cap, no stats.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
	}
}
