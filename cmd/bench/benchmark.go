package main

import (
	"fmt"
	"time"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
)

type benchConfig struct {
	name    string
	options engine.Options
}

var benchConfigs = []benchConfig{
	{"minimax", engine.Options{Algorithm: engine.Minimax}},
	{"minimax cache", engine.Options{Algorithm: engine.Minimax, Caching: true}},
	{"alphabeta", engine.Options{Algorithm: engine.AlphaBeta}},
	{"alphabeta order", engine.Options{Algorithm: engine.AlphaBeta, Ordering: true}},
	{"alphabeta cache", engine.Options{Algorithm: engine.AlphaBeta, Caching: true}},
	{"alphabeta cache order", engine.Options{Algorithm: engine.AlphaBeta, Caching: true, Ordering: true}},
	{"alphabeta strict order", engine.Options{Algorithm: engine.AlphaBeta, Caching: true, StrictCache: true, Ordering: true}},
}

// benchPositions walks a fixed line from the starting position and keeps
// every few plies where the side to move has a choice.
func benchPositions(size, count int) ([]engine.SearchParams, error) {
	var b, err = common.NewBoard(size)
	if err != nil {
		return nil, err
	}
	var side = common.Dark
	var result []engine.SearchParams
	var buffer [common.MaxMoves]common.Move
	for ply := 0; len(result) < count; ply++ {
		var ml = b.GenerateMoves(side, buffer[:])
		if len(ml) == 0 {
			if !b.HasMoves(side.Opponent()) {
				break
			}
			side = side.Opponent()
			continue
		}
		if ply%4 == 0 && len(ml) > 1 {
			result = append(result, engine.SearchParams{Board: b, Side: side})
		}
		b = b.MakeMove(side, ml[(ply*7+3)%len(ml)])
		side = side.Opponent()
	}
	return result, nil
}

func benchmark(positions []engine.SearchParams, depth int) {
	logger.Println("benchmark started",
		"positions", len(positions),
		"depth", depth)
	defer logger.Println("benchmark finished")

	for _, bc := range benchConfigs {
		var options = bc.options
		options.Depth = depth
		var eng = engine.NewEngine(options)
		var start = time.Now()
		var nodes, cacheHits, cutoffs int64
		var score int
		for _, p := range positions {
			var si = eng.Search(p)
			nodes += si.Nodes
			cacheHits += si.CacheHits
			cutoffs += si.Cutoffs
			score += si.Score
		}
		var elapsed = time.Since(start)
		fmt.Printf("%-24v nodes %10v cachehits %9v cutoffs %9v scores %5v time %v kNPS %v\n",
			bc.name, nodes, cacheHits, cutoffs, score, elapsed,
			nodes/(elapsed.Milliseconds()+1))
	}
}
