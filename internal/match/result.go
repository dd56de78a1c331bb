package match

import "overlay-finder/pkg/geometry"

// Result is the outcome of scoring one candidate placement of the overlay.
// X and Y are the top-left background coordinates of the placement.
type Result struct {
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Score       float64 `json:"match_score"`
	Perfect     bool    `json:"is_perfect"`
	BorderMatch bool    `json:"is_border_match"`
}

// Rect returns the placement rectangle for an overlay of the given size.
func (r Result) Rect(overlayWidth, overlayHeight int) geometry.RectInt {
	return geometry.NewRectInt(r.X, r.Y, overlayWidth, overlayHeight)
}
