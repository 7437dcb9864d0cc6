package engine

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

type orderedMove struct {
	Move common.Move
	Key  int32
}

// OrderMoves returns the legal moves of side ranked by one ply lookahead,
// scored from perspective's point of view. When side is perspective the
// best moves come first, otherwise the worst ones do. Ties keep the
// enumeration order.
func OrderMoves(b *common.Board, side, perspective common.Color) []common.Move {
	var buffer [common.MaxMoves]common.Move
	var ordered [common.MaxMoves]orderedMove
	var ml = b.GenerateMoves(side, buffer[:])
	orderMoves(b, side, perspective, ml, ordered[:])
	return append([]common.Move(nil), ml...)
}

// orderMoves sorts ml in place.
func orderMoves(b *common.Board, side, perspective common.Color,
	ml []common.Move, buffer []orderedMove) {
	var items = buffer[:len(ml)]
	for i, move := range ml {
		var child = b.MakeMove(side, move)
		var score = ComputeUtility(&child, perspective)
		if side != perspective {
			score = -score
		}
		items[i] = orderedMove{Move: move, Key: int32(score)}
	}
	sortMoves(items)
	for i := range items {
		ml[i] = items[i].Move
	}
}

// sortMoves is a stable insertion sort, highest key first.
func sortMoves(moves []orderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}

func isSorted(moves []orderedMove) bool {
	for i := 1; i < len(moves); i++ {
		if moves[i-1].Key < moves[i].Key {
			return false
		}
	}
	return true
}
