package arena

import (
	"context"
	"log"
	"math"

	"github.com/samber/lo"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

func showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
) (Summary, error) {
	var results []gameResult
	var wins, losses, draws int
	for gameResult := range gameResults {
		results = append(results, gameResult)
		log.Printf("Finished game %v: %v {%v}\n",
			gameResult.gameInfo.gameNumber,
			gameResultString(gameResult.result),
			gameResult.comment)
		switch engineAPoints(gameResult) {
		case 1:
			wins++
		case -1:
			losses++
		default:
			draws++
		}
		var stat = computeStat(wins, losses, draws)
		log.Printf("Score: %v - %v - %v  [%.3f] %v\n",
			wins, losses, draws, stat.winningFraction, len(results))
		log.Printf("Elo difference: %.1f, LOS: %.1f %%\n",
			stat.eloDifference, stat.los*100)
	}
	var summary = summarize(results)
	log.Printf("%+v\n", summary)
	return summary, ctx.Err()
}

// engineAPoints is 1 when engine A won the game, -1 when it lost.
func engineAPoints(res gameResult) int {
	if res.result == gameResultDraw {
		return 0
	}
	if (res.result == gameResultDarkWins) == res.gameInfo.engineAIsDark {
		return 1
	}
	return -1
}

func disksA(res gameResult) int {
	var dark, light = res.board.Score()
	if res.gameInfo.engineAIsDark {
		return dark
	}
	return light
}

func disksB(res gameResult) int {
	var dark, light = res.board.Score()
	if res.gameInfo.engineAIsDark {
		return light
	}
	return dark
}

func summarize(results []gameResult) Summary {
	return Summary{
		Games:  len(results),
		Wins:   lo.CountBy(results, func(res gameResult) bool { return engineAPoints(res) == 1 }),
		Losses: lo.CountBy(results, func(res gameResult) bool { return engineAPoints(res) == -1 }),
		Draws:  lo.CountBy(results, func(res gameResult) bool { return engineAPoints(res) == 0 }),
		DisksA: lo.SumBy(results, disksA),
		DisksB: lo.SumBy(results, disksB),
	}
}

type GameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

//https://chessprogramming.wikispaces.com/Match%20Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	var winning_fraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var elo_difference = -math.Log(1/winning_fraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	return GameStatistics{
		winningFraction: winning_fraction,
		eloDifference:   elo_difference,
		los:             los,
	}
}

func gameResultString(v int) string {
	switch v {
	case gameResultDarkWins:
		return common.Dark.String() + " wins"
	case gameResultLightWins:
		return common.Light.String() + " wins"
	case gameResultDraw:
		return "draw"
	}
	return ""
}
