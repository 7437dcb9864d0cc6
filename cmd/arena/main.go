package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/ChizhovVadim/CounterOthello/internal/arena"
)

type Config struct {
	Concurrency  int
	Openings     int
	OpeningPlies int
	BoardSize    int
	EngineA      string
	EngineB      string
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of threads")
	flag.IntVar(&config.Openings, "openings", 50, "Number of random openings")
	flag.IntVar(&config.OpeningPlies, "plies", 6, "Random plies per opening")
	flag.IntVar(&config.BoardSize, "size", 8, "Board size")
	flag.StringVar(&config.EngineA, "a", "alphabeta,order,depth=4", "Engine A settings")
	flag.StringVar(&config.EngineB, "b", "minimax,depth=3", "Engine B settings")
	flag.Parse()

	log.Printf("%+v", config)

	var engineA, err = arena.ParseOptions(config.EngineA)
	if err != nil {
		return err
	}
	engineB, err := arena.ParseOptions(config.EngineB)
	if err != nil {
		return err
	}
	_, err = arena.Run(context.Background(), arena.Config{
		Concurrency:  config.Concurrency,
		Openings:     config.Openings,
		OpeningPlies: config.OpeningPlies,
		BoardSize:    config.BoardSize,
		EngineA:      engineA,
		EngineB:      engineB,
	})
	return err
}
