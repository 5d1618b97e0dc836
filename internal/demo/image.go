package demo

import (
	"image"
	"image/color"

	"github.com/alexisbeaulieu97/tealert/internal/dialog"
)

const (
	sampleWidth  = 48
	sampleHeight = 24
)

// SampleImage draws the landscape shown by the image samples: a dusk sky,
// a sun and two rows of hills.
func SampleImage() dialog.ImageRef {
	img := image.NewRGBA(image.Rect(0, 0, sampleWidth, sampleHeight))
	top := color.RGBA{R: 38, G: 52, B: 110, A: 255}
	horizon := color.RGBA{R: 250, G: 150, B: 90, A: 255}
	sun := color.RGBA{R: 255, G: 220, B: 120, A: 255}
	far := color.RGBA{R: 70, G: 110, B: 90, A: 255}
	near := color.RGBA{R: 40, G: 80, B: 55, A: 255}

	for y := 0; y < sampleHeight; y++ {
		sky := lerp(top, horizon, float64(y)/float64(sampleHeight-1))
		for x := 0; x < sampleWidth; x++ {
			c := sky
			dx, dy := x-32, y-12
			if dx*dx+dy*dy <= 25 {
				c = sun
			}
			if y >= hill(x, 16, 3, 11) {
				c = far
			}
			if y >= hill(x+9, 19, 3, 8) {
				c = near
			}
			img.Set(x, y, c)
		}
	}
	return dialog.NewImageRef(img)
}

// hill returns the top row of a triangle-wave ridge at column x.
func hill(x, base, amplitude, period int) int {
	phase := x % (2 * period)
	if phase > period {
		phase = 2*period - phase
	}
	return base - amplitude*phase/period
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(p, q uint8) uint8 {
		return uint8(float64(p) + (float64(q)-float64(p))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
