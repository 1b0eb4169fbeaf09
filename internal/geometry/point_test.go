// ABOUTME: Tests for point parsing, formatting and arithmetic
// ABOUTME: Covers the "x,y" text format and its failure kinds
package geometry

import (
	"testing"

	"github.com/harper/pointwise/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Point
		wantKind errs.Kind
		field    string
	}{
		{name: "integers", input: "3,4", want: Pt(3, 4)},
		{name: "decimals and signs", input: "-1.5,+2.75", want: Pt(-1.5, 2.75)},
		{name: "whitespace around comma", input: " 3 , -4 ", want: Pt(3, -4)},
		{name: "leading dot", input: ".5,0", want: Pt(0.5, 0)},
		{name: "no comma", input: "3 4", wantKind: errs.KindInvalidFormat},
		{name: "three fields", input: "1,2,3", wantKind: errs.KindInvalidFormat},
		{name: "empty", input: "", wantKind: errs.KindInvalidFormat},
		{name: "bad x", input: "a,4", wantKind: errs.KindInvalidNumber, field: "X coordinate"},
		{name: "bad y", input: "3,b", wantKind: errs.KindInvalidNumber, field: "Y coordinate"},
		{name: "missing y", input: "3,", wantKind: errs.KindInvalidNumber, field: "Y coordinate"},
		{name: "decimal comma", input: "3,5,4", wantKind: errs.KindInvalidFormat},
		{name: "infinity rejected", input: "inf,1", wantKind: errs.KindInvalidNumber, field: "X coordinate"},
		{name: "nan rejected", input: "1,NaN", wantKind: errs.KindInvalidNumber, field: "Y coordinate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoint(tt.input)
			if tt.wantKind == errs.KindUnknown {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, errs.KindOf(err))

			var e *errs.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.field, e.Field)
			if tt.wantKind == errs.KindInvalidFormat {
				assert.Contains(t, err.Error(), tt.input)
			}
		})
	}
}

func TestPoint_Add(t *testing.T) {
	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
	assert.Equal(t, Pt(0, 0), Pt(-1.5, 2).Add(Pt(1.5, -2)))
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(3, 4)", Pt(3, 4).String())
	assert.Equal(t, "(-1.5, 0.25)", Pt(-1.5, 0.25).String())
}

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "[]", FormatPoints(nil))
	assert.Equal(t, "[(1, 2), (3, 4)]", FormatPoints([]Point{Pt(1, 2), Pt(3, 4)}))
}

func TestPoint_EqualityByValue(t *testing.T) {
	a := Pt(1, 2)
	b := Pt(1, 2)
	assert.True(t, a == b)
	assert.False(t, a == Pt(2, 1))
}
