package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionJump             // Space, Up, W - flap
	ActionSuperJump        // X - stronger flap
	ActionConfirm          // Enter - dismiss the instructions
	ActionClick            // Primary pointer press, see InputFrame.Pointer
	ActionRestart          // R - play again after game over
	ActionQuit             // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionSuperJump:
		return "SuperJump"
	case ActionConfirm:
		return "Confirm"
	case ActionClick:
		return "Click"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// InputFrame collects the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool

	// Pointer is the world position of the last click this frame.
	// Only meaningful when ActionClick is set.
	Pointer Point
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

// Click records a pointer press at the given world position.
func (f *InputFrame) Click(p Point) {
	f.Set(ActionClick)
	f.Pointer = p
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
	f.Pointer = Point{}
}
