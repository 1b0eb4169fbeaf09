// ABOUTME: Closed enumeration of the four point-processing methods
// ABOUTME: Holds the single "1".."4" menu mapping shared by every front end
package points

import (
	"strconv"

	"github.com/harper/pointwise/internal/errs"
)

// Method selects how each point's partner is chosen
type Method int

const (
	// MethodUnset is the zero value; it is never a valid processing method
	MethodUnset Method = iota

	// Original pairs each point with its nearest distinct neighbour
	Original

	// Sequential pairs each point with the next one, wrapping around
	Sequential

	// MinSum pairs every point with the point of minimal x+y
	MinSum

	// MinX pairs every point with the point of minimal x (then y)
	MinX
)

// Methods lists the valid methods in menu order
var Methods = []Method{Original, Sequential, MinSum, MinX}

var methodNames = map[Method]string{
	Original:   "original",
	Sequential: "sequential",
	MinSum:     "min_sum",
	MinX:       "min_x",
}

var methodTitles = map[Method]string{
	Original:   "Original (nearest)",
	Sequential: "Sequential",
	MinSum:     "Minimum sum",
	MinX:       "Minimum X",
}

// Valid reports whether m is one of the four processing methods
func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// String returns the identifier used at textual boundaries ("min_sum")
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	if m == MethodUnset {
		return "unset"
	}
	return "method(" + strconv.Itoa(int(m)) + ")"
}

// Title returns the human-readable method name
func (m Method) Title() string {
	if title, ok := methodTitles[m]; ok {
		return title
	}
	return m.String()
}

// Choice returns the menu key for m ("1".."4"), or "" for invalid methods
func (m Method) Choice() string {
	for i, candidate := range Methods {
		if candidate == m {
			return strconv.Itoa(i + 1)
		}
	}
	return ""
}

// ParseMethod resolves an identifier such as "sequential"
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return MethodUnset, errs.UnknownMethod(name)
}

// MethodForChoice resolves a menu key "1".."4"
func MethodForChoice(choice string) (Method, error) {
	for _, m := range Methods {
		if m.Choice() == choice {
			return m, nil
		}
	}
	return MethodUnset, errs.UnknownMethod(choice)
}

// MarshalText encodes m by identifier so JSON/YAML output stays readable
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errs.UnknownMethod(m.String())
	}
	return []byte(m.String()), nil
}
