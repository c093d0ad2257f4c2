package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hyperifyio/absx/internal/cleanse"
	"github.com/hyperifyio/absx/internal/locate"
	"github.com/hyperifyio/absx/internal/pdfio"
)

// ErrAllFailed is returned when no input produced an abstract document. Per
// the exit code policy this maps to a hard failure.
var ErrAllFailed = errors.New("no documents processed successfully")

// ErrPartialFailure is returned when a batch completed but some inputs
// failed; successful outputs are kept.
var ErrPartialFailure = errors.New("some documents failed")

// App wires the pipeline: read, locate, clean, render. It holds no mutable
// state, so one App can process a whole batch concurrently.
type App struct {
	cfg     Config
	reader  *pdfio.Reader
	writer  *pdfio.Writer
	locator *locate.Locator
}

// Result records the outcome of one document for logging and the manifest.
type Result struct {
	Input    string
	Output   string
	Strategy locate.Strategy
	Chars    int
	Err      error
}

func New(cfg Config) *App {
	return &App{
		cfg:    cfg,
		reader: &pdfio.Reader{MaxPages: cfg.MaxPages},
		writer: &pdfio.Writer{Layout: pdfio.DefaultLayout()},
		locator: locate.New(locate.Options{
			MinPatternChars:   cfg.MinPatternChars,
			MinParagraphChars: cfg.MinParagraphChars,
			ScanWindow:        cfg.ScanWindow,
		}),
	}
}

// Run processes every configured input. Each document is independent, so a
// failure is logged and counted without aborting the rest of the batch.
func (a *App) Run(ctx context.Context) error {
	jobs := a.cfg.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	results := make([]Result, len(a.cfg.Inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, input := range a.cfg.Inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Input: input, Err: err}
				return nil
			}
			results[i] = a.processOne(input)
			return nil
		})
	}
	// Workers never return errors; failures live in results.
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Error().Err(r.Err).Str("input", r.Input).Msg("document failed")
			continue
		}
		log.Info().
			Str("input", r.Input).
			Str("output", r.Output).
			Str("strategy", string(r.Strategy)).
			Int("chars", r.Chars).
			Msg("abstract extracted")
	}

	switch {
	case failed == len(results):
		return ErrAllFailed
	case failed > 0:
		return fmt.Errorf("%w: %d of %d", ErrPartialFailure, failed, len(results))
	}
	return nil
}

// processOne runs the full pipeline for a single document.
func (a *App) processOne(input string) Result {
	out := outputPathFor(input, a.cfg.OutputPath)
	res := Result{Input: input, Output: out}

	log.Debug().Str("input", input).Int("maxPages", a.cfg.MaxPages).Msg("extracting text")
	text, err := a.reader.ExtractText(input)
	if err != nil {
		res.Err = err
		return res
	}

	cand, err := a.locator.Locate(text)
	if err != nil {
		res.Err = fmt.Errorf("locate abstract in %s: %w", input, err)
		return res
	}

	cleaned := cleanse.Clean(cand.Text)
	if cleaned == "" {
		// The candidate was nothing but artifacts; treat as not found rather
		// than rendering an empty document.
		res.Err = fmt.Errorf("locate abstract in %s: %w", input, locate.ErrNotFound)
		return res
	}
	res.Strategy = cand.Strategy
	res.Chars = len(cleaned)
	log.Debug().
		Str("strategy", string(cand.Strategy)).
		Int("chars", len(cleaned)).
		Str("preview", preview(cleaned, 100)).
		Msg("abstract located")

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			res.Err = &pdfio.WriteError{Path: out, Err: err}
			return res
		}
	}
	if err := a.writer.Write(cleaned, titleFor(input, a.cfg.Title), out); err != nil {
		res.Err = err
		return res
	}

	if a.cfg.WriteManifest {
		entry := manifestEntry{
			Source:      input,
			Output:      out,
			Strategy:    string(cand.Strategy),
			SHA256:      computeSHA256Hex(cleaned),
			Chars:       len(cleaned),
			GeneratedAt: time.Now().UTC(),
		}
		if err := writeManifest(out+".manifest.json", entry); err != nil {
			res.Err = &pdfio.WriteError{Path: out + ".manifest.json", Err: err}
			return res
		}
	}
	return res
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
