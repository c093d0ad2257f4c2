package locate

import (
	"fmt"
	"regexp"
	"strings"
)

// sectionPattern pairs a start label with a compiled search expression whose
// first capture group is the section body. Patterns are consulted in order;
// earlier labels win.
type sectionPattern struct {
	label string
	re    *regexp.Regexp
}

// endBoundary terminates a captured section at the first blank line, a known
// next-section label, or a numbered heading like "1." on a fresh line.
const endBoundary = `(?:\n[ \t]*\n|\nkeywords?\b|\nintroduction\b|\nbackground\b|\n\d+\.)`

func newSectionPattern(label string) sectionPattern {
	// The label must stand alone as a word; "abstracted" must not anchor a
	// match. Separator whitespace stays within the label line so that a bare
	// label followed by a blank line yields an empty capture, which the
	// substance filter then rejects.
	expr := fmt.Sprintf(`(?s)\b%s\b[: \t]*(.+?)%s`, label, endBoundary)
	return sectionPattern{label: label, re: regexp.MustCompile(expr)}
}

func defaultSectionPatterns() []sectionPattern {
	return []sectionPattern{
		newSectionPattern("abstract"),
		newSectionPattern("summary"),
		newSectionPattern("overview"),
	}
}

// patternStrategy searches a case-folded copy of the line-preserving text and
// maps any accepted capture back onto the original casing.
type patternStrategy struct {
	patterns []sectionPattern
	minChars int
}

func (s *patternStrategy) tryLocate(src source) (Candidate, bool) {
	folded := strings.ToLower(src.joined)
	for _, p := range s.patterns {
		m := p.re.FindStringSubmatchIndex(folded)
		if m == nil {
			continue
		}
		captured := strings.TrimSpace(originalSpan(src.joined, folded, m[2], m[3]))
		if len(captured) < s.minChars {
			continue
		}
		return Candidate{Text: captured, Strategy: StrategyPattern}, true
	}
	return Candidate{}, false
}
