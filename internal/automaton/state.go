// ABOUTME: Interaction states of the menu automaton
// ABOUTME: Menu is initial, Exit is terminal
package automaton

import "strconv"

// State is one vertex of the interaction state machine
type State int

const (
	Menu State = iota
	Input
	Process
	View
	Exit
)

var stateNames = [...]string{
	Menu:    "menu",
	Input:   "input",
	Process: "process",
	View:    "view",
	Exit:    "exit",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Terminal reports whether s has no outgoing transitions
func (s State) Terminal() bool {
	return s == Exit
}
