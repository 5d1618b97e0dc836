package dialog

import (
	"fmt"
	"strings"
)

// Style is the shape of a dialog. It is fixed at construction.
type Style int

const (
	// StyleAlert is a centred, width-capped card.
	StyleAlert Style = iota
	// StyleActionSheet is a bottom-anchored card with the cancel button in a
	// separate card below it.
	StyleActionSheet
)

func (s Style) String() string {
	switch s {
	case StyleAlert:
		return "alert"
	case StyleActionSheet:
		return "action_sheet"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// ParseStyle converts "alert" or "action_sheet".
func ParseStyle(value string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "alert":
		return StyleAlert, nil
	case "action_sheet", "actionsheet", "sheet":
		return StyleActionSheet, nil
	default:
		return StyleAlert, fmt.Errorf("unknown dialog style %q", value)
	}
}

// ButtonStyle selects a button's role and colour.
type ButtonStyle int

const (
	ButtonDefault ButtonStyle = iota
	// ButtonCancel marks the single escape action of a dialog.
	ButtonCancel
	ButtonDestructive
	// ButtonPreferred renders bold.
	ButtonPreferred
)

var buttonStyleNames = map[ButtonStyle]string{
	ButtonDefault:     "default",
	ButtonCancel:      "cancel",
	ButtonDestructive: "destructive",
	ButtonPreferred:   "preferred",
}

func (s ButtonStyle) String() string {
	if name, ok := buttonStyleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("button_style(%d)", int(s))
}

// ParseButtonStyle converts a button style name. The empty string is
// ButtonDefault.
func ParseButtonStyle(value string) (ButtonStyle, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ButtonDefault, nil
	}
	for style, name := range buttonStyleNames {
		if name == value {
			return style, nil
		}
	}
	return ButtonDefault, fmt.Errorf("unknown button style %q", value)
}

// State is a controller lifecycle stage. Controllers only move forward.
type State int

const (
	StateCreated State = iota
	StateConfiguring
	StatePresented
	// StateDismissing is set while the host removes the dialog. Taps are
	// ignored until the host reports completion.
	StateDismissing
	StateDismissed
)

var stateNames = [...]string{"created", "configuring", "presented", "dismissing", "dismissed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}
