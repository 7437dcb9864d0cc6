package arena

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
)

func playGame(
	engineA, engineB IEngine,
	info gameInfo,
) (gameResult, error) {

	log.Printf("Started game %v\n", info.gameNumber)

	engineA.Clear()
	engineB.Clear()

	var b = info.opening.board
	var side = info.opening.side
	var plies = 0
	var passes = 0

	for {
		if !b.HasMoves(side) {
			if !b.HasMoves(side.Opponent()) {
				break
			}
			passes++
			side = side.Opponent()
			continue
		}
		var eng IEngine
		if (side == common.Dark) == info.engineAIsDark {
			eng = engineA
		} else {
			eng = engineB
		}
		var searchResult = eng.Search(engine.SearchParams{
			Board: b,
			Side:  side,
		})
		if !b.IsLegal(side, searchResult.Move) {
			return gameResult{}, errors.Errorf("game %v: illegal move %v by %v on %v",
				info.gameNumber, searchResult.Move, side, b.String())
		}
		b = b.MakeMove(side, searchResult.Move)
		side = side.Opponent()
		plies++
	}

	var dark, light = b.Score()
	var result = gameResultDraw
	if dark > light {
		result = gameResultDarkWins
	} else if light > dark {
		result = gameResultLightWins
	}
	return gameResult{
		gameInfo: info,
		board:    b,
		plies:    plies,
		comment:  fmt.Sprintf("%v-%v, %v passes", dark, light, passes),
		result:   result,
	}, nil
}
