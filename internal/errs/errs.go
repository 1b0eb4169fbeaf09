// ABOUTME: Error taxonomy shared by the point algorithms and the state machine
// ABOUTME: One typed error with a closed Kind enumeration instead of an error hierarchy
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure
type Kind int

const (
	// KindUnknown is returned by KindOf for errors outside the taxonomy
	KindUnknown Kind = iota

	// KindInvalidChoice - menu input outside the valid set for the current state
	KindInvalidChoice

	// KindInvalidFormat - point text not splittable into exactly two fields
	KindInvalidFormat

	// KindInvalidNumber - a field or count that is not a valid number
	KindInvalidNumber

	// KindEmptyInput - processing requested with zero points
	KindEmptyInput

	// KindInsufficientPoints - an operation needs more points than it was given
	KindInsufficientPoints

	// KindUnknownMethod - method identifier outside the closed enumeration
	KindUnknownMethod
)

var kindNames = map[Kind]string{
	KindUnknown:            "unknown",
	KindInvalidChoice:      "invalid-choice",
	KindInvalidFormat:      "invalid-format",
	KindInvalidNumber:      "invalid-number",
	KindEmptyInput:         "empty-input",
	KindInsufficientPoints: "insufficient-points",
	KindUnknownMethod:      "unknown-method",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Recoverable reports whether the user can fix the failure by re-entering input
func (k Kind) Recoverable() bool {
	return k == KindInvalidChoice || k == KindInvalidFormat || k == KindInvalidNumber
}

// Error is the single error type of the taxonomy.
// Only the fields relevant to Kind are populated.
type Error struct {
	Kind     Kind
	Token    string   // offending user input
	Field    string   // which value was malformed, e.g. "X coordinate"
	Valid    []string // accepted choices for KindInvalidChoice
	Required int
	Actual   int
	Message  string // overrides the generated message when set
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	switch e.Kind {
	case KindInvalidChoice:
		if len(e.Valid) > 0 {
			return fmt.Sprintf("invalid choice: '%s'. Valid options: %s", e.Token, strings.Join(e.Valid, ", "))
		}
		return fmt.Sprintf("invalid choice: '%s'", e.Token)
	case KindInvalidFormat:
		return fmt.Sprintf("invalid input format: '%s'. Expected 'x,y'", e.Token)
	case KindInvalidNumber:
		return fmt.Sprintf("invalid %s: '%s'. Expected a number", e.Field, e.Token)
	case KindEmptyInput:
		return "point list is empty, nothing to process"
	case KindInsufficientPoints:
		return fmt.Sprintf("not enough points: need %d, have %d", e.Required, e.Actual)
	case KindUnknownMethod:
		return fmt.Sprintf("unknown processing method: '%s'", e.Token)
	}
	return "unknown error"
}

// InvalidChoice reports a menu choice outside valid
func InvalidChoice(choice string, valid ...string) *Error {
	return &Error{Kind: KindInvalidChoice, Token: choice, Valid: valid}
}

// InvalidFormat reports point text that is not "x,y"
func InvalidFormat(text string) *Error {
	return &Error{Kind: KindInvalidFormat, Token: text}
}

// InvalidNumber reports a value that does not parse, or is out of range, for field
func InvalidNumber(value, field string) *Error {
	return &Error{Kind: KindInvalidNumber, Token: value, Field: field}
}

// NotPositive reports a count that parsed but is zero or negative
func NotPositive(value, field string) *Error {
	return &Error{
		Kind:    KindInvalidNumber,
		Token:   value,
		Field:   field,
		Message: fmt.Sprintf("%s must be positive, got '%s'", field, value),
	}
}

// EmptyInput reports processing with no points
func EmptyInput() *Error {
	return &Error{Kind: KindEmptyInput}
}

// NoPointsEntered is the empty-input failure of a manual entry committed with no points
func NoPointsEntered() *Error {
	return &Error{Kind: KindEmptyInput, Message: "no points entered"}
}

// InsufficientPoints reports that required points were needed but only actual given
func InsufficientPoints(required, actual int) *Error {
	return &Error{Kind: KindInsufficientPoints, Required: required, Actual: actual}
}

// UnknownMethod reports a method identifier outside the enumeration
func UnknownMethod(method string) *Error {
	return &Error{Kind: KindUnknownMethod, Token: method}
}

// KindOf returns the Kind of err, unwrapping as needed.
// Errors outside the taxonomy (including nil) yield KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
