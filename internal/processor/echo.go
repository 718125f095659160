package processor

import "unicode/utf8"

// EchoThreshold is the longest summary, in characters, that is also shown on the terminal.
const EchoThreshold = 1000

// ShouldEcho reports whether a summary is short enough to print. It depends
// only on the summary length, never on the target used to produce it.
func ShouldEcho(summary string) bool {
	return utf8.RuneCountInString(summary) <= EchoThreshold
}
