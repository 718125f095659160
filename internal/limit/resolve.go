// Package limit turns the CLI's length arguments into a single summary Target.
//
// Two inputs are accepted: a positional paragraph count and a --limit
// directive. A directive is either a bare integer (character cap) or an
// integer followed by "p" (paragraph count). When a directive is present it
// always wins and the positional count is ignored.
package limit

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const formatHint = "use <N> characters (e.g. 800) or <N>p paragraphs (e.g. 3p)"

var reDirective = regexp.MustCompile(`^(-?\d+)(p?)$`)

// Input holds the raw length arguments of one invocation.
type Input struct {
	// Paragraphs is the positional paragraph count, nil when omitted.
	Paragraphs *int
	// Directive is the raw --limit value, nil when the flag was not given.
	Directive *string
}

// Overrides reports whether a directive discards an explicit positional count.
func (in Input) Overrides() bool {
	return in.Paragraphs != nil && in.Directive != nil
}

// Resolve maps the raw inputs to a Target. It has no side effects.
func Resolve(in Input) (Target, error) {
	if in.Directive != nil {
		return ParseDirective(*in.Directive)
	}
	if in.Paragraphs != nil {
		return NewParagraphs(*in.Paragraphs)
	}
	return Default(), nil
}

// ParseDirective parses a --limit value such as "1000" or "2p".
func ParseDirective(raw string) (Target, error) {
	lv := strings.ToLower(strings.TrimSpace(raw))
	m := reDirective.FindStringSubmatch(lv)
	if m == nil {
		return Target{}, newError(ErrInvalidLimitFormat, raw, formatHint)
	}

	n, err := parseInt(m[1], raw)
	if err != nil {
		return Target{}, err
	}

	if m[2] == "p" {
		if n <= 0 {
			return Target{}, newError(ErrInvalidLimitValue, raw, "paragraph limit must be positive")
		}
		return Target{kind: KindParagraphs, value: n}, nil
	}

	if n <= 0 {
		return Target{}, newError(ErrInvalidLimitValue, raw, "character limit must be positive")
	}
	return Target{kind: KindCharacters, value: n}, nil
}

// ParseParagraphs parses the positional paragraph argument. Only the format is
// checked here; Resolve rejects non-positive counts when the value is used.
func ParseParagraphs(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, newError(ErrInvalidLimitFormat, raw, "paragraph count must be an integer")
	}
	if _, err := strconv.Atoi(s); err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, newError(ErrInvalidLimitFormat, raw, "paragraph count must be an integer")
	}
	return parseInt(s, raw)
}

func parseInt(s, raw string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newError(ErrInvalidLimitValue, raw, "value is out of range")
		}
		return 0, newError(ErrInvalidLimitFormat, raw, formatHint)
	}
	return n, nil
}
