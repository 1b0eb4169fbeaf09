// ABOUTME: Input state handler: input menu, manual point entry and random generation
// ABOUTME: Sub-modes live on the Session so one handler serves every session
package automaton

import (
	"fmt"
	"io"
	"strconv"

	"github.com/harper/pointwise/internal/errs"
	"github.com/harper/pointwise/internal/geometry"
)

type inputState struct{ m *Machine }

func (st *inputState) Enter(s *Session, out io.Writer) (State, bool) {
	switch s.entry {
	case EntryManual:
		fmt.Fprintf(out, "Point %d: ", len(s.draft)+1)
	case EntryCount:
		fmt.Fprintf(out, "How many points? (%d): ", st.m.opts.DefaultCount)
	default:
		st.m.writeMenu(out, "POINT INPUT", []string{
			"1. Manual entry",
			"2. Random generation",
			"0. Back",
		}, "Your choice: ")
	}
	return Input, false
}

func (st *inputState) Handle(s *Session, line string, out io.Writer) (State, error) {
	switch s.entry {
	case EntryManual:
		return st.handleManual(s, line, out)
	case EntryCount:
		return st.handleCount(s, line, out)
	}

	switch line {
	case "0":
		return Menu, nil
	case "1":
		s.entry = EntryManual
		s.draft = nil
		st.manualHelp(out)
		return Input, nil
	case "2":
		s.entry = EntryCount
		fmt.Fprintln(out, "\nRANDOM GENERATION")
		fmt.Fprintln(out, "Leave blank or type 'default' for the default count, 'cancel' to go back")
		return Input, nil
	}
	return Input, errs.InvalidChoice(line, "0", "1", "2")
}

func (st *inputState) manualHelp(out io.Writer) {
	fmt.Fprintln(out, "\nMANUAL ENTRY")
	fmt.Fprintln(out, "Format: x,y  (e.g. 3,4 or -1.5,2.7)")
	fmt.Fprintln(out, "Commands: 'stop' or 'done' to finish, 'clear' to start over, 'cancel' to abort")
}

func (st *inputState) handleManual(s *Session, line string, out io.Writer) (State, error) {
	switch {
	case line == "" || matches(doneTokens, line):
		if len(s.draft) == 0 {
			return Input, errs.NoPointsEntered()
		}
		s.replacePoints(s.draft)
		fmt.Fprintf(out, "Points entered: %d\n", len(s.Context.Points))
		fmt.Fprintln(out, geometry.FormatPoints(s.Context.Points))
		return Process, nil

	case matches(cancelTokens, line):
		fmt.Fprintln(out, "Entry cancelled.")
		return Menu, nil

	case matches(clearTokens, line):
		s.draft = nil
		fmt.Fprintln(out, "All points cleared.")
		return Input, nil
	}

	p, err := geometry.ParsePoint(line)
	if err != nil {
		return Input, err
	}
	s.draft = append(s.draft, p)
	fmt.Fprintf(out, "Added %s, total points: %d\n", p, len(s.draft))
	return Input, nil
}

func (st *inputState) handleCount(s *Session, line string, out io.Writer) (State, error) {
	if matches(cancelTokens, line) {
		fmt.Fprintln(out, "Generation cancelled.")
		return Menu, nil
	}

	n := st.m.opts.DefaultCount
	if line != "" && !matches(defaultTokens, line) {
		parsed, err := strconv.Atoi(line)
		if err != nil {
			return Input, errs.InvalidNumber(line, "point count")
		}
		if parsed <= 0 {
			return Input, errs.NotPositive(line, "point count")
		}
		n = parsed
	}

	if limit := st.m.opts.MaxCount; limit > 0 && n > limit {
		fmt.Fprintf(out, "Capped at %d points for readability.\n", limit)
		n = limit
	}

	pts, err := st.m.opts.Generator.Generate(n)
	if err != nil {
		return Input, err
	}
	s.replacePoints(pts)

	fmt.Fprintf(out, "Generated %d random points:\n", n)
	fmt.Fprintln(out, st.m.opts.Renderer.Points(pts))
	return Process, nil
}
