package engine

import (
	"fmt"
)

type Algorithm int

const (
	AlphaBeta Algorithm = iota
	Minimax
)

func (a Algorithm) String() string {
	if a == Minimax {
		return "minimax"
	}
	return "alphabeta"
}

type Options struct {
	Algorithm Algorithm
	// Depth is the search depth in plies. Negative means unlimited.
	Depth    int
	Caching  bool
	Ordering bool
	// StrictCache keys cache hits by remaining depth and alpha-beta bound.
	// Without it, a cached value is reused whatever depth and window it was
	// computed under.
	StrictCache bool
}

func NewOptions() Options {
	return Options{
		Algorithm: AlphaBeta,
		Depth:     6,
		Caching:   false,
		Ordering:  true,
	}
}

func (o Options) String() string {
	var depth = "unlimited"
	if o.Depth >= 0 {
		depth = fmt.Sprint(o.Depth)
	}
	return fmt.Sprintf("algorithm %v depth %v caching %v ordering %v strictcache %v",
		o.Algorithm, depth, o.Caching, o.Ordering, o.StrictCache)
}
