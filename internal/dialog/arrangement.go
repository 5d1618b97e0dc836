package dialog

// Axis is the direction buttons are laid out along.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Arrangement is the ordered set of buttons in one card and the axis they
// share. Dividers sit strictly between adjacent buttons.
type Arrangement struct {
	Axis    Axis
	Buttons []ButtonSpec
}

// Dividers returns the number of dividers between the buttons.
func (a Arrangement) Dividers() int {
	if len(a.Buttons) < 2 {
		return 0
	}
	return len(a.Buttons) - 1
}

// Labels returns the button labels in order.
func (a Arrangement) Labels() []string {
	labels := make([]string, len(a.Buttons))
	for i, b := range a.Buttons {
		labels[i] = b.Label
	}
	return labels
}

// ArrangeAlertButtons orders the buttons of an alert. With exactly one other
// button the cancel button goes first, otherwise it goes last. Exactly two
// buttons share a row; any other count is stacked.
func ArrangeAlertButtons(buttons []ButtonSpec, cancel *ButtonSpec) Arrangement {
	all := make([]ButtonSpec, 0, len(buttons)+1)
	if cancel != nil && len(buttons) == 1 {
		all = append(all, *cancel)
		all = append(all, buttons...)
	} else {
		all = append(all, buttons...)
		if cancel != nil {
			all = append(all, *cancel)
		}
	}

	axis := AxisVertical
	if len(all) == 2 {
		axis = AxisHorizontal
	}
	return Arrangement{Axis: axis, Buttons: all}
}

// ArrangeSheetButtons stacks the non-cancel buttons of an action sheet. The
// cancel button is drawn in its own card and is not part of the result.
func ArrangeSheetButtons(buttons []ButtonSpec) Arrangement {
	return Arrangement{Axis: AxisVertical, Buttons: append([]ButtonSpec(nil), buttons...)}
}
