package dialog

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageRef is an optional picture shown above a dialog's title. The zero
// value refers to nothing.
type ImageRef struct {
	img    image.Image
	source string
}

// NewImageRef wraps img.
func NewImageRef(img image.Image) ImageRef {
	return ImageRef{img: img}
}

// DecodeImage reads a png, jpeg, gif, bmp or webp image from r.
func DecodeImage(r io.Reader) (ImageRef, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return ImageRef{}, fmt.Errorf("decode image: %w", err)
	}
	return ImageRef{img: img, source: format}, nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (ImageRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageRef{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	ref, err := DecodeImage(f)
	if err != nil {
		return ImageRef{}, fmt.Errorf("%s: %w", path, err)
	}
	ref.source = path
	return ref, nil
}

// IsZero reports whether r resolves to no picture.
func (r ImageRef) IsZero() bool {
	return r.img == nil || r.img.Bounds().Empty()
}

// Image returns the wrapped picture, or nil.
func (r ImageRef) Image() image.Image {
	if r.IsZero() {
		return nil
	}
	return r.img
}

// Source is the file path or format the image was loaded from.
func (r ImageRef) Source() string {
	return r.source
}
