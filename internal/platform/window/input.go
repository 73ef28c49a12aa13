package window

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputManager is the subset of ebiten's input state the window reads.
type InputManager interface {
	IsKeyPressed(key ebiten.Key) bool
	CursorPosition() (x, y int)
	IsClosing() bool
}

// EbitenInputManager reads ebiten's global input state.
type EbitenInputManager struct{}

// IsKeyPressed returns whether the specified key is currently pressed.
func (EbitenInputManager) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// CursorPosition returns the cursor position in layout pixels.
func (EbitenInputManager) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsClosing reports whether the user asked to close the window.
func (EbitenInputManager) IsClosing() bool {
	return ebiten.IsWindowBeingClosed()
}

// Key groups for each control.
var (
	forwardKeys  = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	backwardKeys = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	quitKeys     = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

func anyPressed(in InputManager, keys []ebiten.Key) bool {
	for _, k := range keys {
		if in.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
