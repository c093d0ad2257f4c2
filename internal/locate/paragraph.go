package locate

import (
	"regexp"

	"github.com/hyperifyio/absx/internal/normalize"
)

var (
	paragraphSplitRe = regexp.MustCompile(`\n[ \t]*\n+`)
	boilerplateRe    = regexp.MustCompile(`(?i)^\s*(?:copyright\b|©|\(c\)\s|all rights reserved)`)
)

// paragraphStrategy is the last resort for documents with no label at all: it
// returns the first paragraph of real length that is not front-matter
// boilerplate. It deliberately ignores the word "abstract".
type paragraphStrategy struct {
	minChars int
}

func (s *paragraphStrategy) tryLocate(src source) (Candidate, bool) {
	for _, para := range paragraphSplitRe.Split(src.joined, -1) {
		flat := normalize.Flatten(para)
		if len(flat) <= s.minChars {
			continue
		}
		if boilerplateRe.MatchString(flat) {
			continue
		}
		return Candidate{Text: flat, Strategy: StrategyParagraph}, true
	}
	return Candidate{}, false
}
