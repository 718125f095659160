package limit

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		wantKind  Kind
		wantValue int
	}{
		{"defaults to three paragraphs", Input{}, KindParagraphs, 3},
		{"positional paragraphs", Input{Paragraphs: intPtr(5)}, KindParagraphs, 5},
		{"character limit beats positional", Input{Paragraphs: intPtr(5), Directive: strPtr("1200")}, KindCharacters, 1200},
		{"paragraph directive beats positional", Input{Paragraphs: intPtr(5), Directive: strPtr("2p")}, KindParagraphs, 2},
		{"paragraph directive alone", Input{Directive: strPtr("2p")}, KindParagraphs, 2},
		{"character directive alone", Input{Directive: strPtr("800")}, KindCharacters, 800},
		{"leading zeros", Input{Directive: strPtr("002p")}, KindParagraphs, 2},
		{"upper case suffix", Input{Directive: strPtr("4P")}, KindParagraphs, 4},
		{"surrounding whitespace", Input{Directive: strPtr(" 1000 ")}, KindCharacters, 1000},
		{"directive ignores invalid positional", Input{Paragraphs: intPtr(0), Directive: strPtr("500")}, KindCharacters, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got.Kind() != tt.wantKind || got.Value() != tt.wantValue {
				t.Errorf("Resolve() = %v, want kind %d value %d", got, tt.wantKind, tt.wantValue)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{"zero characters", Input{Directive: strPtr("0")}, ErrInvalidLimitValue},
		{"zero paragraphs", Input{Directive: strPtr("0p")}, ErrInvalidLimitValue},
		{"negative characters", Input{Directive: strPtr("-5")}, ErrInvalidLimitValue},
		{"negative paragraphs", Input{Directive: strPtr("-2p")}, ErrInvalidLimitValue},
		{"zero positional", Input{Paragraphs: intPtr(0)}, ErrInvalidLimitValue},
		{"negative positional", Input{Paragraphs: intPtr(-1)}, ErrInvalidLimitValue},
		{"letters", Input{Directive: strPtr("abc")}, ErrInvalidLimitFormat},
		{"wrong suffix", Input{Directive: strPtr("3x")}, ErrInvalidLimitFormat},
		{"prefix instead of suffix", Input{Directive: strPtr("p3")}, ErrInvalidLimitFormat},
		{"empty", Input{Directive: strPtr("")}, ErrInvalidLimitFormat},
		{"bare suffix", Input{Directive: strPtr("p")}, ErrInvalidLimitFormat},
		{"space inside", Input{Directive: strPtr("3 p")}, ErrInvalidLimitFormat},
		{"overflow", Input{Directive: strPtr("99999999999999999999999")}, ErrInvalidLimitValue},
		{"plus sign characters", Input{Directive: strPtr("+5")}, ErrInvalidLimitFormat},
		{"plus sign paragraphs", Input{Directive: strPtr("+2p")}, ErrInvalidLimitFormat},
		{"plus sign leading zeros", Input{Directive: strPtr("+0005")}, ErrInvalidLimitFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
			if !got.IsZero() {
				t.Errorf("Resolve() returned %v alongside an error", got)
			}
		})
	}
}

func TestErrorQuotesRawValue(t *testing.T) {
	_, err := ParseDirective("3x")

	var limitErr *Error
	if !errors.As(err, &limitErr) {
		t.Fatalf("error %v is not a *Error", err)
	}
	if limitErr.Raw != "3x" {
		t.Errorf("Raw = %q, want %q", limitErr.Raw, "3x")
	}
	if !strings.Contains(err.Error(), `"3x"`) {
		t.Errorf("Error() = %q, should quote the raw value", err.Error())
	}
}

func TestResolvePropertyRanges(t *testing.T) {
	for n := 1; n <= 200; n++ {
		got, err := Resolve(Input{Paragraphs: intPtr(n)})
		if err != nil || !got.IsParagraphs() || got.Value() != n {
			t.Fatalf("positional %d resolved to %v, %v", n, got, err)
		}

		got, err = Resolve(Input{Paragraphs: intPtr(7), Directive: strPtr(strconv.Itoa(n))})
		if err != nil || !got.IsCharacters() || got.Value() != n {
			t.Fatalf("--limit %d resolved to %v, %v", n, got, err)
		}

		got, err = Resolve(Input{Paragraphs: intPtr(7), Directive: strPtr(strconv.Itoa(n) + "p")})
		if err != nil || !got.IsParagraphs() || got.Value() != n {
			t.Fatalf("--limit %dp resolved to %v, %v", n, got, err)
		}
	}
}

func TestOverrides(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  bool
	}{
		{"nothing", Input{}, false},
		{"positional only", Input{Paragraphs: intPtr(2)}, false},
		{"directive only", Input{Directive: strPtr("2p")}, false},
		{"both", Input{Paragraphs: intPtr(2), Directive: strPtr("100")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Overrides(); got != tt.want {
				t.Errorf("Overrides() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseParagraphs(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr error
	}{
		{"5", 5, nil},
		{"0", 0, nil},
		{"-1", -1, nil},
		{"five", 0, ErrInvalidLimitFormat},
		{"", 0, ErrInvalidLimitFormat},
		{"3p", 0, ErrInvalidLimitFormat},
		{"99999999999999999999999", 0, ErrInvalidLimitValue},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseParagraphs(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseParagraphs(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseParagraphs(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTargetString(t *testing.T) {
	one, _ := NewParagraphs(1)
	chars, _ := NewCharacters(1000)

	tests := []struct {
		target Target
		want   string
	}{
		{Default(), "3 paragraphs"},
		{one, "1 paragraph"},
		{chars, "1000 characters"},
		{Target{}, "unset"},
	}

	for _, tt := range tests {
		if got := tt.target.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
