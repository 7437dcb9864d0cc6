package engine

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

func (s *searcher) alphaBetaMax(b *common.Board, alpha, beta, depth, height int) (common.Move, int) {
	s.nodes++
	if s.options.Caching {
		if move, score, ok := s.probe(b, depth, alpha, beta); ok {
			return move, score
		}
	}
	var ml = s.genMoves(b, s.root, height)
	if len(ml) == 0 || depth == 0 {
		return common.MoveEmpty, s.evaluate(b)
	}
	if s.options.Ordering {
		orderMoves(b, s.root, s.root, ml, s.stack[height].ordered[:])
	}
	var childDepth = nextDepth(depth)
	var bestMove, best = common.MoveEmpty, -valueInfinity
	for _, move := range ml {
		var child = b.MakeMove(s.root, move)
		var childMove, score = s.alphaBetaMin(&child, alpha, beta, childDepth, height+1)
		if s.options.Caching {
			s.store(&child, childDepth, score, alpha, beta, childMove)
		}
		if score > best {
			bestMove, best = move, score
		}
		alpha = max(alpha, score)
		if beta <= alpha {
			s.cutoffs++
			break
		}
	}
	return bestMove, best
}

func (s *searcher) alphaBetaMin(b *common.Board, alpha, beta, depth, height int) (common.Move, int) {
	s.nodes++
	if s.options.Caching {
		if move, score, ok := s.probe(b, depth, alpha, beta); ok {
			return move, score
		}
	}
	var side = s.root.Opponent()
	var ml = s.genMoves(b, side, height)
	if len(ml) == 0 || depth == 0 {
		return common.MoveEmpty, s.evaluate(b)
	}
	if s.options.Ordering {
		orderMoves(b, side, s.root, ml, s.stack[height].ordered[:])
	}
	var childDepth = nextDepth(depth)
	var bestMove, best = common.MoveEmpty, valueInfinity
	for _, move := range ml {
		var child = b.MakeMove(side, move)
		var childMove, score = s.alphaBetaMax(&child, alpha, beta, childDepth, height+1)
		if s.options.Caching {
			s.store(&child, childDepth, score, alpha, beta, childMove)
		}
		if score < best {
			bestMove, best = move, score
		}
		beta = min(beta, score)
		if beta <= alpha {
			s.cutoffs++
			break
		}
	}
	return bestMove, best
}
