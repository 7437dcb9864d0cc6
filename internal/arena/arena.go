package arena

import (
	"context"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
)

// Run plays engine A against engine B from random openings and reports
// the result from engine A's point of view.
func Run(ctx context.Context, config Config) (Summary, error) {
	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"gameConcurrency", config.Concurrency)

	log.Printf("engine A: %v\n", config.EngineA)
	log.Printf("engine B: %v\n", config.EngineB)

	var openings, err = generateOpenings(frand.New(),
		config.Openings, config.OpeningPlies, config.BoardSize)
	if err != nil {
		return Summary{}, err
	}
	log.Println("openings", len(openings))

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, openings, gameInfos)
	})

	var summary Summary
	g.Go(func() error {
		var err error
		summary, err = showResults(ctx, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < max(1, config.Concurrency); i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, newEngine(config.EngineA), newEngine(config.EngineB),
				gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	err = g.Wait()
	return summary, err
}

func newEngine(options engine.Options) IEngine {
	var eng = engine.NewEngine(options)
	eng.Prepare()
	return eng
}

func playGames(
	ctx context.Context,
	engineA, engineB IEngine,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for gameInfo := range gameInfos {
		var res, err = playGame(engineA, engineB, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
