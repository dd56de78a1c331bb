// Package imageio provides image loading and the pixel buffer consumed by the matcher.
package imageio

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Pixel is a single RGBA pixel value.
type Pixel struct {
	R, G, B, A uint8
}

// Equal returns true if all four channels are equal.
func (p Pixel) Equal(other Pixel) bool {
	return p == other
}

// IsWhite returns true if the R, G and B channels are all 255.
// The alpha channel is ignored.
func (p Pixel) IsWhite() bool {
	return p.R == 255 && p.G == 255 && p.B == 255
}

// Buffer is a read-only view over a decoded RGBA image.
// Pixels are stored row-major, four bytes per pixel.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// LoadError reports a failure to read or decode an image file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and decodes the image at path into a Buffer.
// PNG, JPEG, GIF, TIFF, BMP and WebP are supported.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}

	return FromImage(img), nil
}

// FromImage converts any image.Image into a Buffer.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	// Drop any row padding so pixel (x, y) sits at (y*w+x)*4.
	pix := rgba.Pix
	if rgba.Stride != w*4 {
		packed := make([]uint8, w*h*4)
		for y := 0; y < h; y++ {
			copy(packed[y*w*4:(y+1)*w*4], pix[y*rgba.Stride:y*rgba.Stride+w*4])
		}
		pix = packed
	}

	return &Buffer{width: w, height: h, pix: pix}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// At returns the pixel at (x, y). Coordinates must be in bounds.
func (b *Buffer) At(x, y int) Pixel {
	i := (y*b.width + x) * 4
	return Pixel{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// ToImage renders the buffer back into a standard library RGBA image.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}
