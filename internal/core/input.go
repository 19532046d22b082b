package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game core to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump (grounded only)
	ActionConfirm        // Enter - start the run from the idle screen
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart the run from any state
	ActionGodMode        // G - toggle invincibility
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionGodMode:
		return "GodMode"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction is the inverse of Action.String. Unknown names map to ActionNone.
func ParseAction(name string) Action {
	switch name {
	case "Jump":
		return ActionJump
	case "Confirm":
		return ActionConfirm
	case "Pause":
		return ActionPause
	case "Restart":
		return ActionRestart
	case "GodMode":
		return ActionGodMode
	case "Quit":
		return ActionQuit
	default:
		return ActionNone
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether an action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for a := range f.Actions {
		delete(f.Actions, a)
	}
}

// List returns the triggered actions in no particular order.
// Used by the replay recorder to serialize a frame.
func (f InputFrame) List() []Action {
	if len(f.Actions) == 0 {
		return nil
	}
	out := make([]Action, 0, len(f.Actions))
	for a, on := range f.Actions {
		if on {
			out = append(out, a)
		}
	}
	return out
}
