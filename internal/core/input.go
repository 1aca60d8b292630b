package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionFlap         // Space, Up, Enter, W, mouse click - start a climb
	ActionPause        // P - pause/unpause
	ActionQuit         // Esc, Q, Ctrl+C - end the run
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds everything the platform polled for one simulation tick.
// Actions keep their arrival order: a pause followed by a flap is not the
// same tick as a flap followed by a quit.
type InputFrame struct {
	Actions []Action

	// Time is the wall-clock offset since the loop started. It selects
	// animation frames only.
	Time time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action in arrival order. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear drains all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
