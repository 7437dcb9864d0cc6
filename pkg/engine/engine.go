package engine

import (
	"fmt"
	"time"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

// Engine picks moves. It owns the transposition table and clears it before
// every search, so nothing cached survives from one turn to the next.
// An Engine must not be used from several goroutines at once.
type Engine struct {
	Options    Options
	transTable *transTable
	searcher   *searcher
}

type SearchParams struct {
	Board common.Board
	Side  common.Color
}

type SearchInfo struct {
	Move      common.Move
	Score     int
	Depth     int
	Nodes     int64
	CacheHits int64
	Cutoffs   int64
	CacheSize int
	Time      time.Duration
}

func (si SearchInfo) String() string {
	return fmt.Sprintf("move %v score %v depth %v nodes %v cachehits %v cutoffs %v cachesize %v time %v",
		si.Move, si.Score, si.Depth, si.Nodes, si.CacheHits, si.Cutoffs, si.CacheSize, si.Time)
}

func NewEngine(options Options) *Engine {
	return &Engine{
		Options: options,
	}
}

func (e *Engine) Prepare() {
	if e.transTable == nil {
		e.transTable = newTransTable()
	}
	if e.searcher == nil {
		e.searcher = &searcher{engine: e}
	}
}

func (e *Engine) Clear() {
	if e.transTable != nil {
		e.transTable.Clear()
	}
}

// Search returns the move chosen for searchParams.Side with the engine
// Options. Move is MoveEmpty when the side has no legal move.
func (e *Engine) Search(searchParams SearchParams) SearchInfo {
	return e.search(searchParams, e.Options)
}

// SelectMoveMinimax searches with plain minimax. A negative depthLimit
// means unlimited depth.
func (e *Engine) SelectMoveMinimax(b common.Board, color common.Color,
	depthLimit int, caching bool) common.Move {
	var options = e.Options
	options.Algorithm = Minimax
	options.Depth = depthLimit
	options.Caching = caching
	return e.search(SearchParams{Board: b, Side: color}, options).Move
}

// SelectMoveAlphaBeta searches with alpha-beta pruning. A negative
// depthLimit means unlimited depth.
func (e *Engine) SelectMoveAlphaBeta(b common.Board, color common.Color,
	depthLimit int, caching, ordering bool) common.Move {
	var options = e.Options
	options.Algorithm = AlphaBeta
	options.Depth = depthLimit
	options.Caching = caching
	options.Ordering = ordering
	return e.search(SearchParams{Board: b, Side: color}, options).Move
}

func (e *Engine) search(searchParams SearchParams, options Options) SearchInfo {
	var start = time.Now()
	e.Prepare()
	e.transTable.Clear()

	var depth = options.Depth
	if depth < 0 {
		depth = depthInfinite
	} else if depth == 0 {
		// the root is always expanded, so depth 0 picks the best
		// immediate utility
		depth = 1
	}

	var s = e.searcher
	s.reset(options, searchParams.Side)
	var b = searchParams.Board
	var move common.Move
	var score int
	if options.Algorithm == Minimax {
		move, score = s.minimaxMax(&b, depth, 0)
	} else {
		move, score = s.alphaBetaMax(&b, -valueInfinity, valueInfinity, depth, 0)
	}
	return SearchInfo{
		Move:      move,
		Score:     score,
		Depth:     depth,
		Nodes:     s.nodes,
		CacheHits: s.cacheHits,
		Cutoffs:   s.cutoffs,
		CacheSize: e.transTable.Size(),
		Time:      time.Since(start),
	}
}
