// Package cleanse post-processes located abstract candidates into prose fit
// for rendering: it folds extraction artifacts away and repairs the sentence
// spacing that PDF text extraction tends to destroy.
package cleanse

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/hyperifyio/absx/internal/normalize"
)

// fusedSentenceRe matches a period glued directly to a letter, e.g.
// "data.Results", which happens when extraction drops inter-sentence spacing.
var fusedSentenceRe = regexp.MustCompile(`\.([a-zA-Z])`)

// Clean normalizes a candidate abstract. Steps in order: NFKC-fold the text so
// ligatures and width variants survive the artifact strip as plain letters,
// collapse whitespace, replace characters outside the allowed prose set with
// spaces, re-collapse, then insert the missing space after any period fused to
// a letter. Total over any input; empty in yields empty out.
func Clean(candidate string) string {
	s := norm.NFKC.String(candidate)
	s = normalize.Flatten(s)
	s = stripArtifacts(s)
	s = normalize.Flatten(s)
	s = fusedSentenceRe.ReplaceAllString(s, ". $1")
	return strings.TrimSpace(s)
}

// stripArtifacts replaces every character outside the allowed set (word
// characters, spaces, and common sentence punctuation) with a space, so that
// an artifact run between two words never fuses them together.
func stripArtifacts(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if allowedRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func allowedRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ' ' {
		return true
	}
	switch r {
	case '.', ',', ';', ':', '!', '?', '(', ')', '-', '&':
		return true
	}
	return false
}
