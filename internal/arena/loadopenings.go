package arena

import (
	"context"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

// generateOpenings plays count random lines of plies half moves from the
// starting position. Duplicates and finished games are dropped, so fewer
// than count openings may be returned.
func generateOpenings(rng *frand.RNG, count, plies, size int) ([]opening, error) {
	var start, err = common.NewBoard(size)
	if err != nil {
		return nil, err
	}
	var result = make([]opening, 0, count)
	for i := 0; i < count; i++ {
		var o = randomOpening(rng, start, plies)
		if o.board.IsGameOver() {
			continue
		}
		result = append(result, o)
	}
	return lo.Uniq(result), nil
}

func randomOpening(rng *frand.RNG, b common.Board, plies int) opening {
	var side = common.Dark
	var buffer [common.MaxMoves]common.Move
	for ply := 0; ply < plies; ply++ {
		var ml = b.GenerateMoves(side, buffer[:])
		if len(ml) == 0 {
			if !b.HasMoves(side.Opponent()) {
				break
			}
			side = side.Opponent()
			continue
		}
		b = b.MakeMove(side, ml[rng.Intn(len(ml))])
		side = side.Opponent()
	}
	return opening{board: b, side: side}
}

// loadOpenings sends every opening twice, once with each engine playing dark.
func loadOpenings(
	ctx context.Context,
	openings []opening,
	gameInfos chan<- gameInfo,
) error {
	for i, o := range openings {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: o, engineAIsDark: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: o, engineAIsDark: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}
