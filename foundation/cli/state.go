// File: state.go
// Title: Engine States
// Description: The lifecycle of an App. Registration is allowed in Idle and
//              Registering; Run moves through Parsing to Dispatching,
//              HelpShown or Error and always ends in Done.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package cli

// State is a lifecycle state of an App
type State int

const (
	StateIdle State = iota
	StateRegistering
	StateParsing
	StateDispatching
	StateHelpShown
	StateError
	StateDone
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRegistering:
		return "registering"
	case StateParsing:
		return "parsing"
	case StateDispatching:
		return "dispatching"
	case StateHelpShown:
		return "help-shown"
	case StateError:
		return "error"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// acceptsRegistration reports whether declarations may still be added
func (s State) acceptsRegistration() bool {
	return s == StateIdle || s == StateRegistering
}
