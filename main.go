package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	corrected  = flag.Bool("corrected", false, "probe drop depth after the right shift instead of before (fixes the legacy probing order)")
	play       = flag.Bool("play", false, "run a self-play game in the terminal")
	render     = flag.Bool("render", false, "run a self-play game in a window")
	train      = flag.Bool("train", false, "optimize strategy weights with cross entropy")
	games      = flag.Int("games", 1, "self-play games per trial when training")
	seed       = flag.Int64("seed", 0, "piece source seed for self-play")
	speed      = flag.Int("speed", 0, "milliseconds between printed frames in play mode")
	verbose    = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal().Err(err).Msg("create profile")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := searchConfig{corrected: *corrected}
	switch {
	case *train:
		newCrossEntropy(defaultStrategy(), *games, cfg).run()

	case *render:
		frames := make(chan frame, 1)
		a := newAgent(*seed, cfg, 0)
		a.frames = frames
		go func() {
			pieces, lines := a.run()
			close(frames)
			log.Info().Int("pieces", pieces).Int("lines", lines).Msg("game over")
		}()
		watch(frames)

	case *play:
		now := time.Now()
		pieces, lines := newAgent(*seed, cfg, *speed).run()
		fmt.Println(pieces, "pieces,", lines, "lines in", time.Since(now))

	default:
		planOnce(cfg, flag.Args())
	}
}

// planOnce is the dropblox AI entry point: two positional arguments
// carry a JSON game state and the seconds remaining in the game. The
// winning move list goes to stdout, one token per line, with the
// trailing drop left implicit.
func planOnce(cfg searchConfig, args []string) {
	if len(args) != 2 {
		log.Fatal().Msg("usage: dropblox [flags] <state-json> <seconds-left>")
	}
	secondsLeft, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		log.Fatal().Err(err).Msg("bad seconds argument")
	}
	log.Debug().Float64("seconds_left", secondsLeft).Msg("planning one placement")
	b, err := boardFromJSON([]byte(args[0]))
	if err != nil {
		log.Fatal().Err(err).Msg("bad game state")
	}
	moves, err := planMoves(b, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("planning failed")
	}
	fmt.Println(formatMoves(moves))
}
