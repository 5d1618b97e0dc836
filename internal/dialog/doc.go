// Package dialog builds alerts and action sheets and runs their lifecycle.
//
// A Controller is configured with buttons, input fields and an optional
// image, then presented once on a Host:
//
//	c := dialog.New("Delete file?", "This cannot be undone.", dialog.StyleActionSheet)
//	_ = c.AddButtons(
//		dialog.NewButton("Delete", dialog.ButtonDestructive, onDelete),
//		dialog.NewButton("Cancel", dialog.ButtonCancel, nil),
//	)
//	c.Present(host)
//
// The host reports gestures back: TapButton, HandleBackgroundTap and
// HandleKeyboard. A tapped button's callback runs after the host has
// finished removing the dialog, so it may present the next one.
//
// Render lays the dialog out for a screen size and returns a Surface with
// the cards to draw and the rects used for hit testing. Alerts are a
// centred card whose two-button row sits side by side; action sheets
// anchor to the bottom with the cancel button in a card of its own.
package dialog
