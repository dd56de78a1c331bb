// Package match implements exhaustive exact-pixel template search: it
// locates every placement of a small overlay image inside a larger
// background image and scores each placement by the fraction of exactly
// matching pixels. Pure-white overlay pixels can optionally be treated as
// transparent, excluding them from comparison entirely.
package match

import (
	"errors"
	"runtime"
)

// Options configures a search.
type Options struct {
	WhiteTransparent bool // Treat pure-white overlay pixels as don't-care cells
	Workers          int  // Parallel workers (0 = number of CPUs)
	Debug            bool // Enable progress output
}

// DefaultOptions returns default search options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// ErrOverlayTooLarge indicates the overlay exceeds the background in width
// or height, leaving no valid placement.
var ErrOverlayTooLarge = errors.New("overlay larger than background")

// ErrOverlayFullyTransparent indicates that every overlay pixel is pure
// white while white-as-transparent is enabled, so no placement has any
// pixel to compare.
var ErrOverlayFullyTransparent = errors.New("overlay fully transparent")
