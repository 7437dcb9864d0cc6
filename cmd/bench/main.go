package main

import (
	"flag"
	"log"
	"os"

	"github.com/pkg/profile"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

type Config struct {
	Depth     int
	BoardSize int
	Positions int
	Profile   string
}

var config Config

func main() {
	var err = run()
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.IntVar(&config.Depth, "depth", 5, "Search depth, negative for unlimited")
	flag.IntVar(&config.BoardSize, "size", 8, "Board size")
	flag.IntVar(&config.Positions, "positions", 6, "Number of test positions")
	flag.StringVar(&config.Profile, "profile", "", "cpu or mem; go tool pprof cpu.pprof")
	flag.Parse()

	logger.Printf("%+v", config)

	switch config.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		logger.Println("unknown profile", config.Profile)
	}

	var positions, err = benchPositions(config.BoardSize, config.Positions)
	if err != nil {
		return err
	}
	benchmark(positions, config.Depth)
	return nil
}
