package components

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Image draws a picture with lower half-block characters, two pixel rows
// per terminal row, scaled to fit the available width and MaxRows.
type Image struct {
	BaseComponent
	img     image.Image
	maxRows int
}

// NewImage wraps img. A nil image renders nothing.
func NewImage(img image.Image) *Image {
	i := &Image{
		BaseComponent: NewBaseComponent(),
		img:           img,
		maxRows:       8,
	}
	i.SetAppliers(Background(RoleCard))
	return i
}

// WithMaxRows caps the height in terminal rows.
func (i *Image) WithMaxRows(rows int) *Image {
	if rows > 0 {
		i.maxRows = rows
	}
	return i
}

// View renders the image at its natural size.
func (i *Image) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the image centred in the available width.
func (i *Image) ViewWithContext(ctx RenderContext) string {
	if i.img == nil {
		return ""
	}
	width := ctx.Constraints.Width()
	cols, rows := i.Fit(width)
	if cols == 0 || rows == 0 {
		return ""
	}

	lines := halfBlockLines(scale(i.img, cols, rows*2))
	style := i.ComputeStyle(ctx.Theme).Align(lipgloss.Center)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Fit returns the cell size the image occupies within maxCols columns. A
// non-positive maxCols leaves the width unbounded.
func (i *Image) Fit(maxCols int) (cols, rows int) {
	if i.img == nil {
		return 0, 0
	}
	b := i.img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}

	w, h := srcW, srcH
	if maxCols > 0 && w > maxCols {
		h = h * maxCols / w
		w = maxCols
	}
	if limit := i.maxRows * 2; h > limit {
		w = w * limit / h
		h = limit
	}
	return max(w, 1), max((h+1)/2, 1)
}

func scale(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func halfBlockLines(img image.Image) []string {
	b := img.Bounds()
	lines := make([]string, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			cell := lipgloss.NewStyle().Background(lipgloss.Color(hexAt(img, x, y)))
			if y+1 < b.Max.Y {
				cell = cell.Foreground(lipgloss.Color(hexAt(img, x, y+1)))
			}
			sb.WriteString(cell.Render("▄"))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func hexAt(img image.Image, x, y int) string {
	const digits = "0123456789abcdef"
	r, g, b, _ := img.At(x, y).RGBA()
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, c := range []uint32{r >> 8, g >> 8, b >> 8} {
		out[1+i*2] = digits[c>>4]
		out[2+i*2] = digits[c&0x0f]
	}
	return string(out)
}
