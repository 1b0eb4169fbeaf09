// ABOUTME: Tests for the Method enumeration and its textual forms
// ABOUTME: Pins the "1".."4" menu mapping shared by both front ends
package points

import (
	"encoding/json"
	"testing"

	"github.com/harper/pointwise/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodForChoice(t *testing.T) {
	mapping := map[string]Method{
		"1": Original,
		"2": Sequential,
		"3": MinSum,
		"4": MinX,
	}
	for choice, want := range mapping {
		got, err := MethodForChoice(choice)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, choice, want.Choice())
	}

	for _, bad := range []string{"0", "5", "", "one", " 1"} {
		_, err := MethodForChoice(bad)
		assert.True(t, errs.Is(err, errs.KindUnknownMethod), "choice %q", bad)
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods {
		got, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMethod("ORIGINAL")
	assert.True(t, errs.Is(err, errs.KindUnknownMethod))
}

func TestMethod_Strings(t *testing.T) {
	assert.Equal(t, "min_sum", MinSum.String())
	assert.Equal(t, "Minimum X", MinX.Title())
	assert.Equal(t, "unset", MethodUnset.String())
	assert.Equal(t, "method(9)", Method(9).String())
	assert.False(t, MethodUnset.Valid())
	assert.Equal(t, "", MethodUnset.Choice())
}

func TestMethod_MarshalText(t *testing.T) {
	data, err := json.Marshal(map[string]Method{"m": Sequential})
	require.NoError(t, err)
	assert.JSONEq(t, `{"m":"sequential"}`, string(data))

	_, err = json.Marshal(MethodUnset)
	assert.Error(t, err)
}
