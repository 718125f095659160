package limit

import "fmt"

// Kind tells which constraint a Target carries.
type Kind int

const (
	KindParagraphs Kind = iota + 1
	KindCharacters
)

// DefaultParagraphs is used when neither a positional count nor --limit is given.
const DefaultParagraphs = 3

// Target is the normalized summary length constraint for one run.
// The zero value is not valid; build one with NewParagraphs, NewCharacters or Resolve.
type Target struct {
	kind  Kind
	value int
}

// Default returns the three-paragraph target.
func Default() Target {
	return Target{kind: KindParagraphs, value: DefaultParagraphs}
}

// NewParagraphs returns a paragraph-count target.
func NewParagraphs(n int) (Target, error) {
	if n <= 0 {
		return Target{}, newError(ErrInvalidLimitValue, fmt.Sprint(n), "paragraph count must be a positive integer")
	}
	return Target{kind: KindParagraphs, value: n}, nil
}

// NewCharacters returns a character-limit target.
func NewCharacters(n int) (Target, error) {
	if n <= 0 {
		return Target{}, newError(ErrInvalidLimitValue, fmt.Sprint(n), "character limit must be a positive integer")
	}
	return Target{kind: KindCharacters, value: n}, nil
}

func (t Target) Kind() Kind { return t.kind }

// Value is the paragraph count or the character cap, depending on Kind.
func (t Target) Value() int { return t.value }

func (t Target) IsParagraphs() bool { return t.kind == KindParagraphs }

func (t Target) IsCharacters() bool { return t.kind == KindCharacters }

func (t Target) IsZero() bool { return t.kind == 0 }

func (t Target) String() string {
	switch t.kind {
	case KindParagraphs:
		if t.value == 1 {
			return "1 paragraph"
		}
		return fmt.Sprintf("%d paragraphs", t.value)
	case KindCharacters:
		return fmt.Sprintf("%d characters", t.value)
	default:
		return "unset"
	}
}
