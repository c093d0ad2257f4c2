package normalize

import "strings"

// Flatten collapses every whitespace run in raw into a single space and trims
// both ends. The result contains no tabs, newlines, or adjacent spaces, which
// makes it suitable for pattern search across paragraph boundaries. Flatten is
// idempotent and total over any input, including empty.
func Flatten(raw string) string {
	return strings.TrimSpace(collapseSpaces(raw))
}

// Lines splits raw into lines, collapsing whitespace runs within each line and
// trimming the line ends, while preserving every line boundary one-to-one with
// the input. Blank lines stay in place because they mark paragraph breaks for
// the line-oriented search strategies.
func Lines(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSpace(collapseSpaces(line))
	}
	return out
}

// Join reassembles normalized lines into a single text with newline
// separators. Combined with Lines it yields the line-preserving normal form.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
