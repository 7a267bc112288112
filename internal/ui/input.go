package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler samples the mouse once per frame and answers queries in
// logical coordinates, so the rest of the package never sees the HiDPI
// scale.
type InputHandler struct {
	cursorX, cursorY int
	left             bool
	leftClick        bool
	rightClick       bool
}

// NewInputHandler returns an empty handler; call Update each frame
// before reading it.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update samples cursor and button state for this frame.
func (ih *InputHandler) Update() {
	ih.cursorX, ih.cursorY = logicalCursor()
	ih.left = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	ih.leftClick = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.rightClick = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// logicalCursor maps the raw cursor position out of device pixels.
func logicalCursor() (int, int) {
	x, y := ebiten.CursorPosition()
	scale := UIScale
	if scale < 1 {
		scale = 1
	}
	return int(float64(x) / scale), int(float64(y) / scale)
}

// MousePosition reports the cursor in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.cursorX, ih.cursorY
}

// IsLeftJustPressed reports a left click that started this frame.
func (ih *InputHandler) IsLeftJustPressed() bool { return ih.leftClick }

// IsRightJustPressed reports a right click that started this frame.
func (ih *InputHandler) IsRightJustPressed() bool { return ih.rightClick }

// IsLeftPressed reports whether the left button is held.
func (ih *InputHandler) IsLeftPressed() bool { return ih.left }

// IsInBounds reports whether the cursor is inside the given logical
// rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.cursorX >= x && ih.cursorX < x+w &&
		ih.cursorY >= y && ih.cursorY < y+h
}

// ClickedInBounds reports a left click that started this frame inside
// the given rectangle.
func (ih *InputHandler) ClickedInBounds(x, y, w, h int) bool {
	return ih.leftClick && ih.IsInBounds(x, y, w, h)
}

// IsKeyJustPressed reports a key press that started this frame.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
