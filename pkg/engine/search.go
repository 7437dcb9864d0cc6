package engine

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

// searcher holds the state of one top-level search. Static evaluation is
// always from root's point of view, at MIN nodes too.
type searcher struct {
	engine    *Engine
	options   Options
	root      common.Color
	nodes     int64
	cacheHits int64
	cutoffs   int64
	stack     [stackSize]struct {
		moveList [common.MaxMoves]common.Move
		ordered  [common.MaxMoves]orderedMove
	}
}

func (s *searcher) reset(options Options, root common.Color) {
	s.options = options
	s.root = root
	s.nodes = 0
	s.cacheHits = 0
	s.cutoffs = 0
}

// probe looks b up in the transposition table. With StrictCache a hit must
// have been searched to the same depth and its bound must decide the
// (alpha, beta) window.
func (s *searcher) probe(b *common.Board, depth, alpha, beta int) (common.Move, int, bool) {
	var ttDepth, ttValue, ttBound, ttMove, ttHit = s.engine.transTable.Read(b)
	if !ttHit {
		return common.MoveEmpty, 0, false
	}
	if s.options.StrictCache {
		if ttDepth != depth {
			return common.MoveEmpty, 0, false
		}
		if !(ttBound == boundExact ||
			ttValue >= beta && (ttBound&boundLower) != 0 ||
			ttValue <= alpha && (ttBound&boundUpper) != 0) {
			return common.MoveEmpty, 0, false
		}
	}
	s.cacheHits++
	return ttMove, ttValue, true
}

// store records the result of a child board once its parent has evaluated it.
func (s *searcher) store(child *common.Board, depth, score, alpha, beta int, move common.Move) {
	s.engine.transTable.Update(child, depth, score, boundFor(score, alpha, beta), move)
}

func (s *searcher) genMoves(b *common.Board, side common.Color, height int) []common.Move {
	return b.GenerateMoves(side, s.stack[height].moveList[:])
}

func (s *searcher) evaluate(b *common.Board) int {
	return ComputeUtility(b, s.root)
}
