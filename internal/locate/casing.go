package locate

import "strings"

// originalSpan maps a [start, end) byte range found in a case-folded copy of
// text back onto the original casing. strings.ToLower preserves byte offsets
// for almost all inputs; when folding changed the length, the folded span is
// re-located by search instead, and returned as-is if even that fails.
func originalSpan(original, folded string, start, end int) string {
	if start < 0 || end > len(folded) || start > end {
		return ""
	}
	if len(original) == len(folded) {
		return original[start:end]
	}
	span := folded[start:end]
	if idx := strings.Index(strings.ToLower(original), span); idx >= 0 && idx+len(span) <= len(original) {
		return original[idx : idx+len(span)]
	}
	return span
}
