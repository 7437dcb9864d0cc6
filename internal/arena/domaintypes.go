package arena

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
)

const (
	gameResultDraw = iota
	gameResultDarkWins
	gameResultLightWins
)

type IEngine interface {
	Clear()
	Search(searchParams engine.SearchParams) engine.SearchInfo
}

type Config struct {
	Concurrency  int
	Openings     int
	OpeningPlies int
	BoardSize    int
	EngineA      engine.Options
	EngineB      engine.Options
}

type opening struct {
	board common.Board
	side  common.Color
}

type gameInfo struct {
	opening       opening
	engineAIsDark bool
	gameNumber    int
}

type gameResult struct {
	gameInfo gameInfo
	board    common.Board
	plies    int
	comment  string
	result   int
}

// Summary is the match result from engine A's point of view.
type Summary struct {
	Games  int
	Wins   int
	Losses int
	Draws  int
	DisksA int
	DisksB int
}
