package summarizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const ellipsis = "..."

// TrimToLimit shortens s to at most limit characters (runes). When it has to
// cut, it prefers a word boundary as long as that keeps more than 60% of the
// budget, and marks the cut with an ellipsis that counts towards the limit.
func TrimToLimit(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}

	budget := limit - len(ellipsis)
	trimmed := strings.TrimRightFunc(string(runes[:budget]), unicode.IsSpace)
	if i := strings.LastIndex(trimmed, " "); i >= 0 && float64(utf8.RuneCountInString(trimmed[:i])) > float64(budget)*0.6 {
		trimmed = trimmed[:i]
	}
	return strings.TrimRight(trimmed, ". ") + ellipsis
}

// splitChunks cuts text into pieces of at most size runes.
func splitChunks(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
