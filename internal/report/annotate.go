package report

import (
	"image"
	"image/color"
	"image/draw"

	"overlay-finder/internal/match"
)

// MatchColor is the outline color used for annotated match rectangles.
var MatchColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// Annotate returns a copy of the background with an outlined rectangle
// drawn over each match, sized to the overlay dimensions.
func Annotate(bg image.Image, overlayWidth, overlayHeight int, matches []match.Result) *image.RGBA {
	bounds := bg.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), bg, bounds.Min, draw.Src)

	for _, m := range matches {
		drawRectOutline(out, m.Rect(overlayWidth, overlayHeight).ToImageRect(), MatchColor)
	}
	return out
}

// drawRectOutline draws a one-pixel rectangle outline clipped to the image.
func drawRectOutline(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}

	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}
