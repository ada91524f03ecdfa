// Command gg-train runs the self-play training driver, writing a CSV
// training log (and, optionally, a debug strategy-table JSON dump).
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jal9o3/OLA/pkg/training"
)

func main() {
	iterations := flag.Int("iterations", 10, "CFR iterations per solve call")
	depth := flag.Int("depth", 2, "depth-limited search cutoff")
	seed := flag.Int64("seed", 1, "RNG seed for formation sampling and action selection")
	targetRows := flag.Int("rows", 1000, "number of training rows to emit before exiting")
	output := flag.String("out", "training.csv", "training row CSV output path")
	dumpFile := flag.String("dump", "", "optional debug strategy-profile JSON dump path (off by default)")
	verbose := flag.Bool("verbose", false, "debug-level logging")
	flag.Parse()

	initLogger(*verbose)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatal().Err(err).Str("path", *output).Msg("cannot open training log")
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(*seed))
	var lastGame *training.Game
	stats, err := training.Run(ctx, f, *targetRows, *iterations, *depth, rng, &lastGame)
	if err != nil {
		log.Error().Err(err).Msg("training run ended early")
	}

	log.Info().
		Int("games", stats.GamesPlayed).
		Int("rows", stats.RowsWritten).
		Int("repetition_draws", stats.RepetitionDraws).
		Msg("training run complete")

	if *dumpFile != "" && lastGame != nil {
		if err := lastGame.Profile().SaveToFile(*dumpFile); err != nil {
			log.Warn().Err(err).Str("path", *dumpFile).Msg("could not write debug strategy dump")
		} else {
			log.Info().Str("path", *dumpFile).Int("infosets", lastGame.Profile().NumInfoSets()).Msg("wrote debug strategy dump")
		}
	}
}

func initLogger(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}
