package dialog

import (
	"github.com/alexisbeaulieu97/tealert/internal/geometry"
)

// DefaultKeyboardMargin is the number of rows kept free between the bottom
// of a dialog and the top of an on-screen keyboard.
const DefaultKeyboardMargin = 1

// Overlap returns how far a dialog ending at dialogBottom must move up to
// keep margin rows above a keyboard starting at keyboardTop.
func Overlap(dialogBottom, margin, keyboardTop int) int {
	return max(0, dialogBottom+margin-keyboardTop)
}

// KeyboardAvoidance tracks the upward shift applied to the whole dialog
// surface while a keyboard covers its lower part.
type KeyboardAvoidance struct {
	margin int
	offset int
}

// NewKeyboardAvoidance creates a tracker keeping margin rows free.
func NewKeyboardAvoidance(margin int) *KeyboardAvoidance {
	return &KeyboardAvoidance{margin: max(margin, 0)}
}

// Apply handles a keyboard appearing with the given frame. A nil or empty
// frame is ignored. A positive overlap replaces the offset; otherwise the
// offset is left as it was. Apply reports whether the offset changed.
func (k *KeyboardAvoidance) Apply(dialogBottom int, keyboard *geometry.Rect) (int, bool) {
	if keyboard == nil || keyboard.Empty() {
		return k.offset, false
	}
	overlap := Overlap(dialogBottom, k.margin, keyboard.Y)
	if overlap <= 0 || overlap == k.offset {
		return k.offset, false
	}
	k.offset = overlap
	return k.offset, true
}

// Offset returns the current upward shift in rows.
func (k *KeyboardAvoidance) Offset() int {
	return k.offset
}

// Margin returns the configured margin.
func (k *KeyboardAvoidance) Margin() int {
	return k.margin
}
