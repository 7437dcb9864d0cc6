package engine

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

const (
	stackSize     = common.MaxMoves + 4
	valueInfinity = common.MaxMoves + 1
	// depthInfinite disables the depth check; the search stops only at
	// boards where the side to move has no legal moves.
	depthInfinite = -1
)

func nextDepth(depth int) int {
	if depth == depthInfinite {
		return depth
	}
	return depth - 1
}

// ComputeUtility is the disk difference from color's point of view.
func ComputeUtility(b *common.Board, color common.Color) int {
	var dark, light = b.Score()
	if color == common.Dark {
		return dark - light
	}
	return light - dark
}
