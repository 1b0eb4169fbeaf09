// ABOUTME: Driver for the interaction state machine
// ABOUTME: Owns handler dispatch, auto-transitions, error reporting and recovery
package automaton

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/harper/pointwise/internal/errs"
	"github.com/harper/pointwise/internal/logging"
	"github.com/harper/pointwise/internal/points"
	"github.com/harper/pointwise/internal/render"
)

// Handler is one state's behaviour.
//
// Enter renders the state's prompt. It returns auto=true to move to next
// without consuming input; that only happens when prerequisite data is
// missing, or for the terminal state.
//
// Handle validates one line of input, mutates the session and selects the
// next state. A non-nil error leaves the current state unchanged.
type Handler interface {
	Enter(s *Session, out io.Writer) (next State, auto bool)
	Handle(s *Session, line string, out io.Writer) (State, error)
}

// Options configures a Machine
type Options struct {
	Renderer  render.Renderer
	Generator *points.Generator

	// DefaultCount is used when the random count prompt is left blank
	DefaultCount int

	// MaxCount caps random generation; 0 means no cap
	MaxCount int

	Logger *log.Logger
}

// Machine dispatches sessions through the state handlers.
// It keeps no per-session data and is safe to share between sessions.
type Machine struct {
	handlers map[State]Handler
	opts     Options
	log      *log.Logger
}

// maxAutoTransitions bounds chained auto-transitions in one Render
const maxAutoTransitions = 8

// New creates a Machine with every state handler registered
func New(opts Options) *Machine {
	if opts.Generator == nil {
		opts.Generator = points.NewGenerator(points.DefaultRandomMin, points.DefaultRandomMax, nil)
	}
	if opts.DefaultCount <= 0 {
		opts.DefaultCount = 5
	}
	if opts.Logger == nil {
		opts.Logger = logging.New("automaton")
	}

	m := &Machine{opts: opts, log: opts.Logger}
	m.handlers = map[State]Handler{
		Menu:    &menuState{m},
		Input:   &inputState{m},
		Process: &processState{m},
		View:    &viewState{m},
		Exit:    &exitState{m},
	}
	return m
}

// Banner writes the application heading
func (m *Machine) Banner(out io.Writer) {
	fmt.Fprintln(out, m.opts.Renderer.Banner("POINTWISE: POINT PROCESSING ON THE PLANE"))
}

// Render enters the current state, following auto-transitions until a state
// waits for input or Exit is reached.
func (m *Machine) Render(s *Session, out io.Writer) {
	for i := 0; i < maxAutoTransitions; i++ {
		next, auto, err := m.enter(s, out)
		if err != nil {
			m.recoverTo(s, err, out)
			continue
		}
		if !auto || next == s.State {
			return
		}
		m.transition(s, next)
	}
	m.log.Error("auto-transition limit reached", "session", s.ID, "state", s.State)
}

// Feed hands one line of input to the current state.
// Taxonomy errors are reported and keep the state; anything else resets to Menu.
func (m *Machine) Feed(s *Session, line string, out io.Writer) {
	if s.Done() {
		return
	}

	next, err := m.handle(s, strings.TrimSpace(line), out)
	if err != nil {
		if kind := errs.KindOf(err); kind != errs.KindUnknown {
			m.log.Debug("input rejected", "session", s.ID, "state", s.State, "kind", kind, "err", err)
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		m.recoverTo(s, err, out)
		return
	}
	m.transition(s, next)
}

// Step feeds one line and renders whatever state follows
func (m *Machine) Step(s *Session, line string, out io.Writer) {
	m.Feed(s, line, out)
	m.Render(s, out)
}

// Run drives s from the console until it reaches Exit.
// End of input and interruption both exit with a farewell.
func (m *Machine) Run(ctx context.Context, s *Session, in LineReader, out io.Writer) error {
	m.Banner(out)

	for {
		m.Render(s, out)
		if s.Done() {
			return nil
		}

		line, err := in.ReadLine(ctx)
		if err != nil {
			return m.stop(s, err, out)
		}
		m.Feed(s, line, out)
	}
}

func (m *Machine) stop(s *Session, err error, out io.Writer) error {
	interrupted := errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
	if interrupted {
		fmt.Fprintln(out, "\n\nProgram interrupted")
	} else {
		fmt.Fprintln(out)
	}

	m.transition(s, Exit)
	m.Render(s, out)

	if interrupted || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

func (m *Machine) enter(s *Session, out io.Writer) (next State, auto bool, err error) {
	h, ok := m.handlers[s.State]
	if !ok {
		return s.State, false, fmt.Errorf("no handler for state %s", s.State)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic entering %s state: %v", s.State, r)
		}
	}()

	next, auto = h.Enter(s, out)
	return next, auto, nil
}

func (m *Machine) handle(s *Session, line string, out io.Writer) (next State, err error) {
	h, ok := m.handlers[s.State]
	if !ok {
		return s.State, fmt.Errorf("no handler for state %s", s.State)
	}

	defer func() {
		if r := recover(); r != nil {
			next, err = s.State, fmt.Errorf("panic handling %s state: %v", s.State, r)
		}
	}()

	return h.Handle(s, line, out)
}

// recoverTo reports an unexpected failure and forces the session back to Menu
func (m *Machine) recoverTo(s *Session, err error, out io.Writer) {
	m.log.Error("state handler failed", "session", s.ID, "state", s.State, "err", err)
	fmt.Fprintf(out, "Critical error: %v\n", err)
	s.leaveEntry()
	s.State = Menu
}

func (m *Machine) transition(s *Session, next State) {
	if next != Input {
		s.leaveEntry()
	}
	if next != s.State {
		m.log.Debug("transition", "session", s.ID, "from", s.State, "to", next)
	}
	s.State = next
}
