package locate

import (
	"regexp"
	"strings"
)

var (
	abstractWordRe  = regexp.MustCompile(`(?i)\babstract\b`)
	leadingLabelRe  = regexp.MustCompile(`(?i)^\s*abstract[:\s]*`)
	scanEndKeywords = []string{"keywords", "introduction", "background", "1.", "i."}
)

// keywordStrategy is the line-oriented fallback: find the first line carrying
// the standalone word "abstract", then walk forward to a line that looks like
// the start of the next section. When no such line exists the scan ends at
// the first blank line inside the window, or exactly window lines down.
type keywordStrategy struct {
	window int
}

func (s *keywordStrategy) tryLocate(src source) (Candidate, bool) {
	start := -1
	for i, line := range src.lines {
		if abstractWordRe.MatchString(line) {
			start = i
			break
		}
	}
	if start == -1 {
		return Candidate{}, false
	}

	end := -1
	for i := start + 1; i < len(src.lines); i++ {
		if containsEndKeyword(src.lines[i]) {
			end = i
			break
		}
	}
	if end == -1 {
		stop := min(start+s.window+1, len(src.lines))
		for i := start + 1; i < stop; i++ {
			if src.lines[i] == "" {
				end = i
				break
			}
		}
	}
	if end == -1 {
		end = min(start+s.window, len(src.lines))
	}

	joined := strings.TrimSpace(strings.Join(src.lines[start:end], " "))
	joined = strings.TrimSpace(leadingLabelRe.ReplaceAllString(joined, ""))
	if joined == "" {
		return Candidate{}, false
	}
	return Candidate{Text: joined, Strategy: StrategyKeyword}, true
}

func containsEndKeyword(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, kw := range scanEndKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
