package engine

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

func (s *searcher) minimaxMax(b *common.Board, depth, height int) (common.Move, int) {
	s.nodes++
	if s.options.Caching {
		if move, score, ok := s.probe(b, depth, -valueInfinity, valueInfinity); ok {
			return move, score
		}
	}
	var ml = s.genMoves(b, s.root, height)
	if len(ml) == 0 || depth == 0 {
		return common.MoveEmpty, s.evaluate(b)
	}
	var childDepth = nextDepth(depth)
	var bestMove, best = common.MoveEmpty, -valueInfinity
	for _, move := range ml {
		var child = b.MakeMove(s.root, move)
		var childMove, score = s.minimaxMin(&child, childDepth, height+1)
		if s.options.Caching {
			s.store(&child, childDepth, score, -valueInfinity, valueInfinity, childMove)
		}
		if score > best {
			bestMove, best = move, score
		}
	}
	return bestMove, best
}

func (s *searcher) minimaxMin(b *common.Board, depth, height int) (common.Move, int) {
	s.nodes++
	if s.options.Caching {
		if move, score, ok := s.probe(b, depth, -valueInfinity, valueInfinity); ok {
			return move, score
		}
	}
	var side = s.root.Opponent()
	var ml = s.genMoves(b, side, height)
	if len(ml) == 0 || depth == 0 {
		return common.MoveEmpty, s.evaluate(b)
	}
	var childDepth = nextDepth(depth)
	var bestMove, best = common.MoveEmpty, valueInfinity
	for _, move := range ml {
		var child = b.MakeMove(side, move)
		var childMove, score = s.minimaxMax(&child, childDepth, height+1)
		if s.options.Caching {
			s.store(&child, childDepth, score, -valueInfinity, valueInfinity, childMove)
		}
		if score < best {
			bestMove, best = move, score
		}
	}
	return bestMove, best
}
