package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Config is the fully resolved runtime configuration after flags and any
// config file have been merged.
type Config struct {
	// Inputs are the source PDF paths. More than one makes this a batch run.
	Inputs []string
	// OutputPath overrides the derived destination; only valid with a single
	// input. Empty derives "<stem>_abstract.pdf" next to each input.
	OutputPath string
	// Title overrides the derived "Abstract from <stem>" title.
	Title string

	// MaxPages bounds how many pages are scanned per document; 0 scans all.
	MaxPages int
	// MinPatternChars and MinParagraphChars are the locator substance
	// thresholds; ScanWindow bounds the keyword scan.
	MinPatternChars   int
	MinParagraphChars int
	ScanWindow        int

	// WriteManifest emits a JSON sidecar next to each output.
	WriteManifest bool
	// Jobs bounds how many documents are processed concurrently.
	Jobs int

	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if len(cfg.Inputs) == 0 {
		return errors.New("config: at least one input PDF is required")
	}
	for _, in := range cfg.Inputs {
		if strings.TrimSpace(in) == "" {
			return errors.New("config: empty input path")
		}
		if !strings.EqualFold(filepath.Ext(in), ".pdf") {
			return fmt.Errorf("config: input %q must be a .pdf file", in)
		}
	}
	if cfg.OutputPath != "" && len(cfg.Inputs) > 1 {
		return errors.New("config: -output is only valid with a single input")
	}
	if cfg.MaxPages < 0 || cfg.MinPatternChars < 0 || cfg.MinParagraphChars < 0 || cfg.ScanWindow < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	if cfg.Jobs < 0 {
		return errors.New("config: negative job count is not allowed")
	}
	return nil
}

// outputPathFor derives the destination for one input: the explicit override
// when set, otherwise "<stem>_abstract.pdf" beside the input.
func outputPathFor(input, override string) string {
	if override != "" {
		return override
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), stem+"_abstract.pdf")
}

// titleFor derives the output title for one input.
func titleFor(input, override string) string {
	if override != "" {
		return override
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return "Abstract from " + stem
}
