package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connect3/agent"
	"connect3/display"
	"connect3/engine"
	"connect3/game"
	"connect3/meta"
	"connect3/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		fmt.Println("\nKeyboard Interrupt, exiting.")
		os.Exit(meta.ExitAborted)
	}()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays one match and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("connect3", flag.ContinueOnError)
	fs.SetOutput(stderr)
	depth := fs.Int("depth", meta.DefaultDepth, "Search depth in plies for minimax players")
	seed := fs.Uint64("seed", 0, "Seed for random players (0 picks one from the clock)")
	level := fs.String("log-level", "warn", "Log level: debug, info, warn or error")
	color := fs.Bool("color", true, "Colorize the board when writing to a terminal")
	if err := fs.Parse(args); err != nil {
		return meta.ExitUsage
	}

	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(stderr, "Error - invalid log level %q\n", *level)
		return meta.ExitUsage
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen})

	printer := display.NewPrinter(stdout, *color)
	if fs.NArg() != 2 {
		fmt.Fprintln(stdout, "Unrecognized use. Usage: connect3 [flags] <player1> <player2>")
		printer.PrintCatalog(agent.Catalog)
		return meta.ExitUsage
	}

	entries := make([]agent.Entry, 2)
	for i, name := range fs.Args() {
		entries[i], err = agent.Lookup(name)
		if err != nil {
			fmt.Fprintf(stdout, "Error - %s is not a valid player type\n", name)
			printer.PrintCatalog(agent.Catalog)
			return meta.ExitUnknownPlayer
		}
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	cfg := agent.Config{
		Depth:   *depth,
		Seed:    *seed,
		Metrics: logLevel <= zerolog.DebugLevel,
		In:      bufio.NewScanner(stdin),
		Out:     stdout,
	}
	first := entries[0].New(game.XToken, cfg)
	cfg.Seed++
	second := entries[1].New(game.OToken, cfg)
	log.Info().Msgf("%s (X) vs %s (O), depth %d, seed %d", entries[0].Name, entries[1].Name, *depth, *seed)

	e := engine.New(first, second, engine.WithObserver(printer.PrintUpdate))
	printer.PrintBoard(e.State())
	result, err := e.Run()
	if err != nil {
		return exitCode(err, stderr)
	}

	printer.PrintResult(result)
	printer.PrintHistory(result.History)
	return meta.ExitOK
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case errors.Is(err, agent.ErrAborted):
		log.Warn().Err(err).Msg("match aborted")
		return meta.ExitAborted
	case errors.Is(err, searcher.ErrInvariant):
		fmt.Fprintf(stderr, "Internal error - %v\n", err)
		return meta.ExitInvariant
	default:
		fmt.Fprintf(stderr, "Error - %v\n", err)
		return meta.ExitFailure
	}
}
