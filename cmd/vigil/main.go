package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rotisserie/eris"

	"github.com/plus3/vigil/ecs"
	"github.com/plus3/vigil/internal/story"
)

func main() {
	seed := flag.Uint64("seed", 0, "Random seed for the story; 0 picks one from the clock.")
	verbose := flag.Bool("v", false, "Log engine activity to stderr.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <hero> <city> <media>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Invalid number of arguments. Pass hero, city and media source")
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	args := story.Args{Hero: flag.Arg(0), City: flag.Arg(1), Media: flag.Arg(2)}
	if err := run(os.Stdout, logger, *seed, args); err != nil {
		fmt.Fprintf(os.Stderr, "vigil: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, logger *slog.Logger, seed uint64, args story.Args) error {
	world := ecs.NewWorld[story.Args]()
	world.Scheduler.SetLogger(logger)

	story.Seed(world.Storage)
	logger.Debug("world seeded", "entities", world.EntityCount(), "seed", seed)

	rng := rand.New(rand.NewPCG(seed, seed))
	story.Register(world.Scheduler, out, rng)

	if err := world.ProcessSystems(args); err != nil {
		return eris.Wrapf(err, "tell the story of %s in %s", args.Hero, args.City)
	}
	return nil
}
