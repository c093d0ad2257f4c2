package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/absx/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		outputPath        string
		configPath        string
		title             string
		maxPages          int
		minPatternChars   int
		minParagraphChars int
		scanWindow        int
		manifest          bool
		jobs              int
		verbose           bool
	)

	flag.StringVar(&outputPath, "output", "", "Output PDF path (single input only; default <stem>_abstract.pdf beside the input)")
	flag.StringVar(&outputPath, "o", "", "Shorthand for -output")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file")
	flag.StringVar(&title, "title", "", "Override the output document title")
	flag.IntVar(&maxPages, "max.pages", app.MaxPagesDefault, "Pages to scan from the start of each document (0 scans all)")
	flag.IntVar(&minPatternChars, "min.patternChars", app.MinPatternCharsDefault, "Minimum capture length for a labeled section match")
	flag.IntVar(&minParagraphChars, "min.paragraphChars", app.MinParagraphCharsDefault, "Minimum length for the paragraph fallback")
	flag.IntVar(&scanWindow, "scan.window", app.ScanWindowDefault, "Line window for the keyword scan fallback")
	flag.BoolVar(&manifest, "manifest", false, "Write a JSON sidecar manifest next to each output")
	flag.IntVar(&jobs, "jobs", app.JobsDefault, "Documents to process in parallel")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] input.pdf [more.pdf ...]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := app.Config{
		Inputs:            flag.Args(),
		OutputPath:        outputPath,
		Title:             title,
		MaxPages:          maxPages,
		MinPatternChars:   minPatternChars,
		MinParagraphChars: minParagraphChars,
		ScanWindow:        scanWindow,
		WriteManifest:     manifest,
		Jobs:              jobs,
		Verbose:           verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		flag.Usage()
		os.Exit(1)
	}

	if err := app.New(cfg).Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 when nothing succeeded, 3 when a batch partially
		// failed, 1 for anything unexpected.
		switch {
		case errors.Is(err, app.ErrAllFailed):
			os.Exit(2)
		case errors.Is(err, app.ErrPartialFailure):
			os.Exit(3)
		default:
			os.Exit(1)
		}
	}
}
