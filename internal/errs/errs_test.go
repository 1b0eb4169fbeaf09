// ABOUTME: Tests for the error taxonomy
// ABOUTME: Verifies messages name the offending token and kinds survive wrapping
package errs

import (
	"fmt"
	"strings"
	"testing"
)

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "invalid choice with valid set",
			err:      InvalidChoice("9", "1", "2", "3"),
			contains: []string{"'9'", "1, 2, 3"},
		},
		{
			name:     "invalid choice without valid set",
			err:      InvalidChoice("x"),
			contains: []string{"'x'"},
		},
		{
			name:     "invalid format",
			err:      InvalidFormat("3;4"),
			contains: []string{"'3;4'", "x,y"},
		},
		{
			name:     "invalid number",
			err:      InvalidNumber("abc", "X coordinate"),
			contains: []string{"'abc'", "X coordinate"},
		},
		{
			name:     "empty input",
			err:      EmptyInput(),
			contains: []string{"empty"},
		},
		{
			name:     "no points entered",
			err:      NoPointsEntered(),
			contains: []string{"no points entered"},
		},
		{
			name:     "insufficient points",
			err:      InsufficientPoints(2, 1),
			contains: []string{"need 2", "have 1"},
		},
		{
			name:     "unknown method",
			err:      UnknownMethod("bogus"),
			contains: []string{"'bogus'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want to contain %q", msg, want)
				}
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"foreign error", fmt.Errorf("boom"), KindUnknown},
		{"direct", EmptyInput(), KindEmptyInput},
		{"wrapped", fmt.Errorf("processing: %w", UnknownMethod("x")), KindUnknownMethod},
		{"no points entered is empty input", NoPointsEntered(), KindEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	if Is(nil, KindUnknown) {
		t.Error("Is(nil, KindUnknown) = true, want false")
	}
	if !Is(InvalidChoice("9"), KindInvalidChoice) {
		t.Error("Is(InvalidChoice) should match KindInvalidChoice")
	}
	if Is(InvalidChoice("9"), KindInvalidFormat) {
		t.Error("Is(InvalidChoice) should not match KindInvalidFormat")
	}
}

func TestKind_Recoverable(t *testing.T) {
	recoverable := map[Kind]bool{
		KindInvalidChoice:      true,
		KindInvalidFormat:      true,
		KindInvalidNumber:      true,
		KindEmptyInput:         false,
		KindInsufficientPoints: false,
		KindUnknownMethod:      false,
	}
	for kind, want := range recoverable {
		if got := kind.Recoverable(); got != want {
			t.Errorf("%v.Recoverable() = %v, want %v", kind, got, want)
		}
	}
}

func TestKind_String(t *testing.T) {
	if KindInsufficientPoints.String() != "insufficient-points" {
		t.Errorf("String() = %q", KindInsufficientPoints.String())
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("String() = %q, want kind(99)", Kind(99).String())
	}
}

func TestNotPositive(t *testing.T) {
	err := NotPositive("0", "point count")
	if err.Kind != KindInvalidNumber {
		t.Errorf("Kind = %v, want invalid-number", err.Kind)
	}
	if !strings.Contains(err.Error(), "point count must be positive") || !strings.Contains(err.Error(), "'0'") {
		t.Errorf("Error() = %q", err.Error())
	}
}
