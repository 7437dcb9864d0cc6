package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
	"github.com/ChizhovVadim/CounterOthello/pkg/protocol"
)

const name = "Othello AI"

var (
	versionName    = "dev"
	buildDate      = "(null)"
	gitRevision    = "(null)"
	flgStrictCache bool
)

func main() {
	flag.BoolVar(&flgStrictCache, "strictcache", false, "reuse cached values only for the same depth and window")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
	)

	var options = engine.NewOptions()
	options.StrictCache = flgStrictCache
	var eng = engine.NewEngine(options)

	var p = protocol.New(name, eng, &eng.Options, os.Stdin, os.Stdout)
	if err := p.Run(logger); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}
