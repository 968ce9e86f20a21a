package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/citygrid/taskgraph/graphjson"
)

// main is the entrypoint for the taskgraph CLI.
func main() {
	// Use a minimal logger until flags have been parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the CLI logic so tests can drive it with an
// in-memory writer and synthetic argument lists.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(outW, args)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	configureLogger(cfg.verbose)

	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}

	if err := analyze(outW, g); err != nil {
		return err
	}

	if cfg.output != "" {
		if err := graphjson.Save(g, cfg.output); err != nil {
			return err
		}
		slog.Debug("graph written", "path", cfg.output)
	}
	return nil
}

// configureLogger replaces the default slog handler once the verbosity
// flag is known.
func configureLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
