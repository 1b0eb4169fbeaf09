// ABOUTME: Menu, Process, View and Exit state handlers
// ABOUTME: Each renders its prompt and maps validated input to the next state
package automaton

import (
	"fmt"
	"io"

	"github.com/harper/pointwise/internal/errs"
	"github.com/harper/pointwise/internal/points"
)

// writeMenu renders a heading, numbered options and the choice prompt
func (m *Machine) writeMenu(out io.Writer, title string, options []string, prompt string) {
	r := m.opts.Renderer
	fmt.Fprintln(out)
	fmt.Fprintln(out, r.Banner(title))
	for _, opt := range options {
		fmt.Fprintln(out, opt)
	}
	if rule := r.Rule(); rule != "" {
		fmt.Fprintln(out, rule)
	}
	fmt.Fprint(out, prompt)
}

// --- Menu ---

type menuState struct{ m *Machine }

func (st *menuState) Enter(s *Session, out io.Writer) (State, bool) {
	st.m.writeMenu(out, "MAIN MENU", []string{
		"1. Process points",
		"2. Compare all methods",
		"3. Exit",
	}, "Your choice (1-3): ")
	return Menu, false
}

func (st *menuState) Handle(s *Session, line string, out io.Writer) (State, error) {
	switch line {
	case "1":
		return Input, nil
	case "2":
		st.compare(s, out)
		return Menu, nil
	case "3":
		return Exit, nil
	}
	return Menu, errs.InvalidChoice(line, "1", "2", "3")
}

func (st *menuState) compare(s *Session, out io.Writer) {
	if !s.Context.HasPoints() {
		fmt.Fprintln(out, "\nNo points to compare!")
		fmt.Fprintln(out, "Enter points first (option 1)")
		return
	}

	r := st.m.opts.Renderer
	fmt.Fprintln(out)
	fmt.Fprintln(out, r.Banner("COMPARE ALL METHODS"))
	fmt.Fprintf(out, "Points: %d\n", len(s.Context.Points))
	fmt.Fprintln(out, r.Comparison(points.Compare(s.Context.Points)))
}

// --- Process ---

type processState struct{ m *Machine }

var processChoices = []string{"0", "1", "2", "3", "4"}

func (st *processState) Enter(s *Session, out io.Writer) (State, bool) {
	if !s.Context.HasPoints() {
		fmt.Fprintln(out, "No points to process!")
		return Input, true
	}

	options := make([]string, 0, len(points.Methods)+1)
	for _, method := range points.Methods {
		options = append(options, fmt.Sprintf("%s. %s", method.Choice(), method.Title()))
	}
	options = append(options, "0. Back")

	st.m.writeMenu(out, fmt.Sprintf("CHOOSE PROCESSING METHOD (%d points)", len(s.Context.Points)), options, "Your choice: ")
	return Process, false
}

func (st *processState) Handle(s *Session, line string, out io.Writer) (State, error) {
	if line == "0" {
		return Menu, nil
	}

	method, err := points.MethodForChoice(line)
	if err != nil {
		return Process, errs.InvalidChoice(line, processChoices...)
	}

	fmt.Fprintf(out, "\nProcessing with method '%s'...\n", method.Title())
	result, err := points.Process(s.Context.Points, method)
	if err != nil {
		return Process, fmt.Errorf("processing failed: %w", err)
	}

	s.Context.Method = method
	s.Context.Result = result
	return View, nil
}

// --- View ---

type viewState struct{ m *Machine }

func (st *viewState) Enter(s *Session, out io.Writer) (State, bool) {
	if !s.Context.HasResult() {
		fmt.Fprintln(out, "No results to display!")
		return Process, true
	}

	r := st.m.opts.Renderer
	fmt.Fprintln(out)
	fmt.Fprintln(out, r.Banner("PROCESSING RESULTS"))
	fmt.Fprintf(out, "Method: %s\n", s.Context.Method.Title())
	fmt.Fprintln(out, r.Result(s.Context.Points, s.Context.Result))

	st.m.writeMenu(out, "NEXT", []string{
		"1. Main menu",
		"2. Choose another method",
	}, "Your choice: ")
	return View, false
}

func (st *viewState) Handle(s *Session, line string, out io.Writer) (State, error) {
	switch line {
	case "1":
		return Menu, nil
	case "2":
		return Process, nil
	}
	return View, errs.InvalidChoice(line, "1", "2")
}

// --- Exit ---

type exitState struct{ m *Machine }

func (st *exitState) Enter(s *Session, out io.Writer) (State, bool) {
	fmt.Fprintln(out, "\nGoodbye!")
	return Exit, true
}

func (st *exitState) Handle(s *Session, line string, out io.Writer) (State, error) {
	return Exit, nil
}
