// ABOUTME: Session context carried across state transitions
// ABOUTME: Holds the current points, last chosen method and last result
package session

import (
	"github.com/harper/pointwise/internal/geometry"
	"github.com/harper/pointwise/internal/points"
)

// Context is the mutable data of one session.
// States validate before writing; Context itself does no validation.
type Context struct {
	Points []geometry.Point
	Method points.Method
	Result []geometry.Point
}

// New returns an empty context
func New() *Context {
	return &Context{}
}

// HasPoints reports whether any points are loaded
func (c *Context) HasPoints() bool {
	return len(c.Points) > 0
}

// HasResult reports whether a processing result is available
func (c *Context) HasResult() bool {
	return len(c.Result) > 0
}

// Clear empties points and resets method and result to unset
func (c *Context) Clear() {
	c.Points = nil
	c.Method = points.MethodUnset
	c.Result = nil
}
