// Package state defines the photo table loader state machine.
package state

import "fmt"

// LoaderState represents the state of the photo table loader.
type LoaderState int

const (
	// StateUninitialized is the state before the snapshot is taken.
	StateUninitialized LoaderState = iota
	// StateLoaded indicates the snapshot was read (possibly zero rows).
	StateLoaded
	// StateEmpty indicates the database could not be read.
	StateEmpty
	// StateViewerOpen is held while an image viewer is being opened.
	StateViewerOpen
)

// String returns the string representation of the state.
func (s LoaderState) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateLoaded:
		return "Loaded"
	case StateEmpty:
		return "Empty"
	case StateViewerOpen:
		return "ViewerOpen"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// validTransitions defines the allowed state transitions.
// Key is the current state, value is a list of valid target states.
var validTransitions = map[LoaderState][]LoaderState{
	StateUninitialized: {StateLoaded, StateEmpty},
	StateLoaded:        {StateViewerOpen},
	StateEmpty:         {}, // No data, nothing to activate
	StateViewerOpen:    {StateLoaded},
}

// CanTransitionTo checks if transitioning from the current state to the target state is valid.
func (s LoaderState) CanTransitionTo(target LoaderState) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// CanActivate returns true if a cell activation may open a viewer.
func (s LoaderState) CanActivate() bool {
	return s == StateLoaded
}

// TransitionError represents an invalid state transition attempt.
type TransitionError struct {
	From   LoaderState
	To     LoaderState
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid state transition from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// NewTransitionError creates a new TransitionError.
func NewTransitionError(from, to LoaderState, reason string) *TransitionError {
	return &TransitionError{From: from, To: to, Reason: reason}
}
