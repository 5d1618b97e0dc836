// Package ui holds the contracts shared by tealert's terminal renderers.
package ui

// Renderable is anything that can draw itself as a block of terminal text.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View implements Renderable.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}

// Static wraps pre-rendered text.
type Static string

// View implements Renderable.
func (s Static) View() string {
	return string(s)
}
