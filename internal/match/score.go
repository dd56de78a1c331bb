package match

import "overlay-finder/internal/imageio"

// pixelsMatch compares a background pixel against an overlay pixel.
// With whiteTransparent set, a pure-white overlay pixel matches anything.
func pixelsMatch(bg, ov imageio.Pixel, whiteTransparent bool) bool {
	if whiteTransparent && ov.IsWhite() {
		return true
	}
	return bg.Equal(ov)
}

// scorePosition computes the match score for the overlay placed at (x, y).
// The score is the fraction of compared overlay pixels that are exactly
// equal, all four channels included, to the background pixel underneath.
// With whiteTransparent set, pure-white overlay pixels are excluded from
// both sides of the ratio. The placement must be in bounds and at least
// one overlay pixel must be compared.
func scorePosition(bg, ov *imageio.Buffer, x, y int, whiteTransparent bool) float64 {
	ovW, ovH := ov.Width(), ov.Height()
	matching := 0
	total := 0

	for ovY := 0; ovY < ovH; ovY++ {
		for ovX := 0; ovX < ovW; ovX++ {
			ovPixel := ov.At(ovX, ovY)
			if whiteTransparent && ovPixel.IsWhite() {
				continue
			}
			total++
			if bg.At(x+ovX, y+ovY).Equal(ovPixel) {
				matching++
			}
		}
	}

	return float64(matching) / float64(total)
}

// borderMatches reports whether every perimeter pixel of the overlay
// matches the background at placement (x, y), under the transparency rule.
func borderMatches(bg, ov *imageio.Buffer, x, y int, whiteTransparent bool) bool {
	ovW, ovH := ov.Width(), ov.Height()

	for ovX := 0; ovX < ovW; ovX++ {
		if !pixelsMatch(bg.At(x+ovX, y), ov.At(ovX, 0), whiteTransparent) {
			return false
		}
		if !pixelsMatch(bg.At(x+ovX, y+ovH-1), ov.At(ovX, ovH-1), whiteTransparent) {
			return false
		}
	}

	for ovY := 0; ovY < ovH; ovY++ {
		if !pixelsMatch(bg.At(x, y+ovY), ov.At(0, ovY), whiteTransparent) {
			return false
		}
		if !pixelsMatch(bg.At(x+ovW-1, y+ovY), ov.At(ovW-1, ovY), whiteTransparent) {
			return false
		}
	}

	return true
}

// fullyTransparent reports whether every overlay pixel is pure white in RGB.
func fullyTransparent(ov *imageio.Buffer) bool {
	for y := 0; y < ov.Height(); y++ {
		for x := 0; x < ov.Width(); x++ {
			if !ov.At(x, y).IsWhite() {
				return false
			}
		}
	}
	return true
}
