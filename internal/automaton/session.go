// ABOUTME: Per-user session: current state, shared context and entry sub-mode
// ABOUTME: Sessions are isolated; the Machine itself holds no per-user data
package automaton

import (
	"github.com/google/uuid"

	"github.com/harper/pointwise/internal/geometry"
	"github.com/harper/pointwise/internal/points"
	"github.com/harper/pointwise/internal/session"
)

// EntryMode is the Input state's sub-mode
type EntryMode int

const (
	EntryMenu   EntryMode = iota // choosing manual or random input
	EntryManual                  // reading points one per line
	EntryCount                   // waiting for the random point count
)

// Session is everything one user's conversation needs between inputs
type Session struct {
	ID      string
	State   State
	Context *session.Context

	entry EntryMode
	draft []geometry.Point
}

// NewSession creates a session in the Menu state with an empty context
func NewSession() *Session {
	return NewSessionWithID(uuid.NewString())
}

// NewSessionWithID creates a session with a caller-chosen id (e.g. a chat id)
func NewSessionWithID(id string) *Session {
	return &Session{
		ID:      id,
		State:   Menu,
		Context: session.New(),
	}
}

// Entry returns the current Input sub-mode
func (s *Session) Entry() EntryMode {
	return s.entry
}

// Draft returns the points typed so far in manual entry
func (s *Session) Draft() []geometry.Point {
	return s.draft
}

// Done reports whether the session reached Exit
func (s *Session) Done() bool {
	return s.State.Terminal()
}

// Reset clears the context and returns to the Menu state
func (s *Session) Reset() {
	s.Context.Clear()
	s.State = Menu
	s.leaveEntry()
}

func (s *Session) leaveEntry() {
	s.entry = EntryMenu
	s.draft = nil
}

// replacePoints installs a new point set, invalidating any previous result
func (s *Session) replacePoints(pts []geometry.Point) {
	s.Context.Points = pts
	s.Context.Method = points.MethodUnset
	s.Context.Result = nil
}
