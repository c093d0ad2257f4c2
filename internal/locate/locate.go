package locate

import (
	"errors"

	"github.com/hyperifyio/absx/internal/normalize"
)

// Strategy identifies which detection tier produced a candidate.
type Strategy string

const (
	StrategyPattern   Strategy = "pattern"
	StrategyKeyword   Strategy = "keyword"
	StrategyParagraph Strategy = "paragraph"
)

// Candidate is a located but not-yet-cleaned abstract span together with the
// strategy that found it. It is consumed immediately by the cleaner and never
// retained.
type Candidate struct {
	Text     string
	Strategy Strategy
}

// ErrNotFound is returned when no strategy located a candidate abstract. A
// readable document without a detectable abstract is not a read failure, so
// callers must report this outcome distinctly.
var ErrNotFound = errors.New("no abstract found")

// Options carries the tunable constants of the locator. The defaults mirror
// the historical behavior of the tool; none of the numbers are load-bearing.
type Options struct {
	// MinPatternChars is the minimum captured length for a section-pattern
	// match to count as substance rather than a bare table-of-contents label.
	MinPatternChars int
	// MinParagraphChars is the minimum paragraph length for the last-resort
	// paragraph fallback.
	MinParagraphChars int
	// ScanWindow bounds the keyword scan's forward search for an end line
	// when no end keyword is present.
	ScanWindow int
}

const (
	defaultMinPatternChars   = 50
	defaultMinParagraphChars = 100
	defaultScanWindow        = 10
)

func (o Options) withDefaults() Options {
	if o.MinPatternChars <= 0 {
		o.MinPatternChars = defaultMinPatternChars
	}
	if o.MinParagraphChars <= 0 {
		o.MinParagraphChars = defaultMinParagraphChars
	}
	if o.ScanWindow <= 0 {
		o.ScanWindow = defaultScanWindow
	}
	return o
}

// source holds the two normal forms the strategies reason over. Both are
// derived once per Locate call from the same raw text.
type source struct {
	// joined is the line-preserving normal form: whitespace collapsed within
	// each line, line boundaries intact.
	joined string
	// lines is joined split back into its lines, for index-based scanning.
	lines []string
}

type strategy interface {
	tryLocate(src source) (Candidate, bool)
}

// Locator finds the abstract section in extracted document text by trying an
// ordered list of strategies until one succeeds. A Locator is immutable after
// New and safe for concurrent use.
type Locator struct {
	strategies []strategy
}

// New builds a Locator with the three standard tiers: labeled section
// patterns, a line-oriented keyword scan, and a first-substantial-paragraph
// fallback, in that order.
func New(opts Options) *Locator {
	opts = opts.withDefaults()
	return &Locator{
		strategies: []strategy{
			&patternStrategy{patterns: defaultSectionPatterns(), minChars: opts.MinPatternChars},
			&keywordStrategy{window: opts.ScanWindow},
			&paragraphStrategy{minChars: opts.MinParagraphChars},
		},
	}
}

// Locate returns the best candidate abstract span in raw, or ErrNotFound when
// no tier produces one. The candidate text keeps the original casing of the
// input; only whitespace has been normalized.
func (l *Locator) Locate(raw string) (Candidate, error) {
	lines := normalize.Lines(raw)
	src := source{joined: normalize.Join(lines), lines: lines}
	if normalize.Flatten(src.joined) == "" {
		return Candidate{}, ErrNotFound
	}
	for _, s := range l.strategies {
		if cand, ok := s.tryLocate(src); ok {
			return cand, nil
		}
	}
	return Candidate{}, ErrNotFound
}
