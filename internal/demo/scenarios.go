package demo

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

// Section groups scenarios in the menu.
type Section string

const (
	SectionAlert       Section = "Alert"
	SectionActionSheet Section = "Action sheet"
)

// Scenario is one sample dialog.
type Scenario struct {
	// Name is the identifier accepted by Lookup.
	Name    string
	Section Section
	Title   string

	build func(*Demo) (*dialog.Controller, error)
}

// Scenarios lists the samples in menu order.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "standard-alert", Section: SectionAlert, Title: "Standard", build: (*Demo).standardAlert},
		{Name: "button-styles", Section: SectionAlert, Title: "All button styles", build: (*Demo).allStylesAlert},
		{Name: "image-alert", Section: SectionAlert, Title: "Image", build: (*Demo).imageAlert},
		{Name: "text-fields", Section: SectionAlert, Title: "Text fields", build: (*Demo).textFieldsAlert},
		{Name: "standard-sheet", Section: SectionActionSheet, Title: "Standard", build: (*Demo).standardSheet},
		{Name: "image-sheet", Section: SectionActionSheet, Title: "Image", build: (*Demo).imageSheet},
		{Name: "all-colors", Section: SectionActionSheet, Title: "All colors", build: (*Demo).allColorsSheet},
	}
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

func (d *Demo) standardAlert() (*dialog.Controller, error) {
	c := d.newController("Standard", "This is a standard alert.", dialog.StyleAlert)
	return withButtons(c,
		dialog.NewButton("OK", dialog.ButtonDefault, func(dialog.ButtonSpec) { d.note("Tapped OK") }),
		dialog.NewButton("Cancel", dialog.ButtonCancel, nil),
	)
}

func (d *Demo) allStylesAlert() (*dialog.Controller, error) {
	c := d.newController("All button styles", "These are buttons in all styles of tealert.", dialog.StyleAlert)
	return withButtons(c,
		dialog.NewButton("Default", dialog.ButtonDefault, func(dialog.ButtonSpec) {
			d.note("Tapped default button")
		}).WithColor(components.HueIndigo),
		dialog.NewButton("Preferred", dialog.ButtonPreferred, func(dialog.ButtonSpec) {
			d.note("Tapped preferred button")
		}).WithColor(components.HueIndigo),
		dialog.NewButton("Destructive", dialog.ButtonDestructive, func(dialog.ButtonSpec) {
			d.note("Tapped destructive button")
		}),
		dialog.NewButton("Cancel", dialog.ButtonCancel, func(dialog.ButtonSpec) {
			d.note("Tapped cancel button")
		}),
	)
}

func (d *Demo) imageAlert() (*dialog.Controller, error) {
	c := d.newController("Image", "This is an alert with an image. You can set only one image to a dialog.", dialog.StyleAlert)
	if err := c.AddImage(d.image); err != nil {
		return nil, err
	}
	return withButtons(c,
		dialog.NewButton("OK", dialog.ButtonDefault, func(dialog.ButtonSpec) { d.note("Tapped OK") }).
			WithColor(components.HuePurple),
		dialog.NewButton("Cancel", dialog.ButtonCancel, nil),
	)
}

func (d *Demo) textFieldsAlert() (*dialog.Controller, error) {
	c := d.newController("Text fields", "This is an alert with text fields.\nThis alert can't be dismissed via tap gesture.", dialog.StyleAlert)
	if err := c.AddInputField(func(f *dialog.InputField) {
		f.Placeholder = "username"
		f.Tag = 1
	}); err != nil {
		return nil, err
	}
	if err := c.AddInputField(func(f *dialog.InputField) {
		f.Placeholder = "password"
		f.Tag = 2
		f.Secure = true
	}); err != nil {
		return nil, err
	}

	ok := dialog.NewButton("OK", dialog.ButtonDefault, func(dialog.ButtonSpec) {
		for _, f := range c.InputFields() {
			switch f.Tag {
			case 1:
				d.note("username: %s", f.Value())
			case 2:
				d.note("password: %s", f.Value())
			}
		}
	})
	if err := c.AddButtons(ok, dialog.NewButton("Cancel", dialog.ButtonCancel, nil)); err != nil {
		return nil, err
	}
	c.SetDismissOnBackgroundTap(false)
	return c, nil
}

func (d *Demo) standardSheet() (*dialog.Controller, error) {
	c := d.newController("Standard", "This is a standard action sheet.", dialog.StyleActionSheet)
	fruits := []string{"Apple", "Orange", "Lemon"}
	for i, title := range fruits {
		b := dialog.NewButton(title, dialog.ButtonDefault, func(b dialog.ButtonSpec) {
			d.note("Selected %s", fruits[b.Tag])
		}).WithTag(i).WithColor(components.HueOrange)
		if err := c.AddButton(b); err != nil {
			return nil, err
		}
	}
	return withButtons(c, dialog.NewButton("Cancel", dialog.ButtonCancel, nil))
}

func (d *Demo) imageSheet() (*dialog.Controller, error) {
	c := d.newController("Image", "This is an action sheet with an image. You can set only one image to a dialog.", dialog.StyleActionSheet)
	if err := c.AddImage(d.image); err != nil {
		return nil, err
	}
	for i := 1; i <= 3; i++ {
		b := dialog.NewButton(optionLabel(i), dialog.ButtonDefault, func(b dialog.ButtonSpec) {
			d.note("Tapped option %d", b.Tag)
		}).WithTag(i).WithColor(components.HuePink)
		if err := c.AddButton(b); err != nil {
			return nil, err
		}
	}
	return withButtons(c, dialog.NewButton("Cancel", dialog.ButtonCancel, nil))
}

func (d *Demo) allColorsSheet() (*dialog.Controller, error) {
	c := d.newController("All colors", "These are all colors of tealert.", dialog.StyleActionSheet)
	for _, hue := range components.Hues() {
		b := dialog.NewButton(colorLabel(hue), dialog.ButtonDefault, func(b dialog.ButtonSpec) {
			d.note("Selected %s", b.Label)
		}).WithColor(hue)
		if err := c.AddButton(b); err != nil {
			return nil, err
		}
	}
	return withButtons(c, dialog.NewButton("Cancel", dialog.ButtonCancel, nil))
}

func withButtons(c *dialog.Controller, specs ...dialog.ButtonSpec) (*dialog.Controller, error) {
	if err := c.AddButtons(specs...); err != nil {
		return nil, err
	}
	return c, nil
}

func optionLabel(i int) string {
	return fmt.Sprintf("Option %d", i)
}

func colorLabel(h components.Hue) string {
	name := h.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
