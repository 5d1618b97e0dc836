package tui

import (
	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	"github.com/alexisbeaulieu97/tealert/internal/geometry"
)

// KeyboardMsg reports the frame of an on-screen keyboard in screen cells.
// A nil Rect means the keyboard was hidden.
type KeyboardMsg struct {
	Rect *geometry.Rect
}

// PresentMsg asks the model to present a controller on its stage.
type PresentMsg struct {
	Controller *dialog.Controller
}

// fadeInDoneMsg ends the appear transition started for generation gen.
type fadeInDoneMsg struct {
	gen int
}

// fadeOutDoneMsg ends the removal transition started for generation gen.
type fadeOutDoneMsg struct {
	gen int
}
