// Package source decodes image files into read-only pixel accessors.
package source

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/models"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// ErrNotFound indicates the image path does not reference an existing file.
var ErrNotFound = errors.New("image not found")

// ErrDecode indicates the image exists but could not be decoded.
var ErrDecode = errors.New("cannot decode image")

// Image is a decoded image addressed from (0, 0) regardless of the
// underlying bounds. It is never modified and is safe for concurrent reads.
type Image struct {
	img    image.Image
	bounds image.Rectangle
	format string
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) *Image {
	return &Image{img: img, bounds: img.Bounds()}
}

// Open decodes the image file at path, applying its EXIF orientation.
func Open(path string) (*Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrDecode, path)
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	result := FromImage(img)
	result.format = format
	return result, nil
}

// Decode reads an image from r without applying any orientation.
func Decode(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	result := FromImage(img)
	result.format = format
	return result, nil
}

func detectFormat(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return format, nil
}

// Width returns the number of pixel columns.
func (m *Image) Width() int { return m.bounds.Dx() }

// Height returns the number of pixel rows.
func (m *Image) Height() int { return m.bounds.Dy() }

// Format returns the registered format name ("png", "jpeg", ...), or ""
// for images built with FromImage.
func (m *Image) Format() string { return m.format }

// RGB returns the straight (non-premultiplied) color of pixel (x, y) with
// alpha dropped.
func (m *Image) RGB(x, y int) (models.RGB, error) {
	if x < 0 || x >= m.Width() || y < 0 || y >= m.Height() {
		return models.RGB{}, fmt.Errorf("pixel (%d, %d) outside %dx%d image", x, y, m.Width(), m.Height())
	}
	c := color.NRGBAModel.Convert(m.img.At(m.bounds.Min.X+x, m.bounds.Min.Y+y)).(color.NRGBA)
	return models.RGB{R: c.R, G: c.G, B: c.B}, nil
}
