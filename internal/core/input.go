package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game logic to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionThrow               // Space - throw the next knife
	ActionConfirm             // Enter - confirm boss intro / advance to next stage
	ActionContinue            // C - continue after a fail (ad-gated, once per round)
	ActionDoubleReward        // D - double the stage reward after a win (ad-gated)
	ActionRestart             // R - restart the run from stage 1
	ActionQuit                // Q - end the session
	ActionPause               // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrow:
		return "Throw"
	case ActionConfirm:
		return "Confirm"
	case ActionContinue:
		return "Continue"
	case ActionDoubleReward:
		return "DoubleReward"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
