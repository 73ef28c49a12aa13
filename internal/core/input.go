package core

// Action represents a semantic control, abstracted from physical key presses.
// Platforms map their keys onto actions so the frame loop never sees raw
// key codes.
type Action int

const (
	ActionNone      Action = iota
	ActionForward          // W, Up arrow
	ActionBackward         // S, Down arrow
	ActionTurnLeft         // A, Left arrow - nudges the virtual cursor left
	ActionTurnRight        // D, Right arrow - nudges the virtual cursor right
	ActionToggleHUD        // H - show/hide the status line
	ActionQuit             // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionToggleHUD:
		return "ToggleHUD"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
// Terminals only report key presses, never releases, so the platform
// accumulates presses here and clears the frame after every tick.
type InputFrame struct {
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

// Snapshot converts the accumulated actions plus the current cursor column
// into the per-tick input the movement controller consumes.
func (f InputFrame) Snapshot(cursorX int) InputSnapshot {
	return InputSnapshot{
		Forward:  f.Has(ActionForward),
		Backward: f.Has(ActionBackward),
		CursorX:  cursorX,
	}
}

// InputSnapshot is the input sampled once per tick.
type InputSnapshot struct {
	Forward  bool
	Backward bool
	CursorX  int // Absolute cursor column; turning uses its offset from the screen center
}

// Idle returns a snapshot with no keys held and the cursor at the center of
// a screen w pixels wide.
func Idle(w int) InputSnapshot {
	return InputSnapshot{CursorX: w / 2}
}

// CursorDelta returns the cursor offset from the center of a screen w pixels wide.
func (in InputSnapshot) CursorDelta(w int) int {
	return in.CursorX - w/2
}
