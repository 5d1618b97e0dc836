// Package components is the lipgloss component library tealert draws
// dialogs with.
//
// Components render to strings and receive the theme and the space granted
// by their parent through a RenderContext:
//
//	ctx := components.NewContext(components.DarkTheme()).WithWidth(40)
//	card := components.NewCard(
//		components.TitleText("Delete file?"),
//		components.HorizontalDivider(),
//		components.HStack(
//			components.NewButton("Cancel").WithVariant(components.ButtonVariantCancel),
//			components.VerticalDivider(1),
//			components.NewButton("Delete").WithVariant(components.ButtonVariantDestructive),
//		),
//	)
//	out := card.ViewWithContext(ctx)
//
// # Layout
//
// Stack arranges children vertically or horizontally. Horizontal stacks
// split the width evenly between flexible children after fixed-width ones
// (vertical dividers) take their column. Container pads a stack; Card adds
// the rounded border and fill.
//
// # Colour
//
// Theme maps semantic roles (title, message, card, divider, button
// backgrounds, button variants, scrim) and nine named hues to
// lipgloss.AdaptiveColor values. AppearanceAuto lets lipgloss pick the
// light or dark value from the terminal background; AppearanceLight and
// AppearanceDark pin one.
//
// # Compositing
//
// Canvas overlays rendered blocks on a dimmed copy of the host view.
package components
