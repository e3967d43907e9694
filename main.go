package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"loot-arena/internal/config"
	"loot-arena/internal/game"
)

func main() {
	configPath := flag.String("config", "", "arena preset (YAML); the built-in arena when empty")
	seed := flag.Int64("seed", 0, "random seed; overrides the preset's seed when non-zero")
	plain := flag.Bool("plain", false, "fight every bout without a screen and print the transcript")
	verbose := flag.Bool("v", false, "debug logging")
	recordPath := flag.String("record", "", "append one JSON line per finished bout to this file")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	arena, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	opts := game.Options{Arena: arena, Seed: arena.Seed, Logger: logger}
	if *seed != 0 {
		opts.Seed = *seed
	}

	if err := run(opts, *recordPath, *plain, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts game.Options, recordPath string, plain bool, out io.Writer) error {
	if recordPath != "" {
		f, err := os.OpenFile(recordPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening record file: %w", err)
		}
		defer f.Close()
		opts.Records = f
	}

	if plain {
		g, err := game.New(nil, opts)
		if err != nil {
			return err
		}
		return g.Play(out)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	g, err := game.New(screen, opts)
	if err != nil {
		screen.Fini()
		return err
	}
	g.Run()
	return nil
}
