package headless

import "github.com/vovakirdan/tui-raycast/internal/core"

// Script builds an input sequence for a screen w pixels wide.
type Script struct {
	w      int
	inputs []core.InputSnapshot
}

// NewScript starts an empty script.
func NewScript(w int) *Script {
	return &Script{w: w}
}

// Idle appends n ticks with no keys and a centered cursor.
func (s *Script) Idle(n int) *Script {
	for i := 0; i < n; i++ {
		s.inputs = append(s.inputs, core.Idle(s.w))
	}
	return s
}

// Forward appends n ticks holding forward.
func (s *Script) Forward(n int) *Script {
	for i := 0; i < n; i++ {
		in := core.Idle(s.w)
		in.Forward = true
		s.inputs = append(s.inputs, in)
	}
	return s
}

// Backward appends n ticks holding backward.
func (s *Script) Backward(n int) *Script {
	for i := 0; i < n; i++ {
		in := core.Idle(s.w)
		in.Backward = true
		s.inputs = append(s.inputs, in)
	}
	return s
}

// Turn appends one tick with the cursor dx pixels right of center.
func (s *Script) Turn(dx int) *Script {
	in := core.Idle(s.w)
	in.CursorX += dx
	s.inputs = append(s.inputs, in)
	return s
}

// Inputs returns the built sequence.
func (s *Script) Inputs() []core.InputSnapshot {
	return s.inputs
}

// Len returns the number of ticks in the script.
func (s *Script) Len() int {
	return len(s.inputs)
}
