// Command markmatches runs the overlay search and writes a copy of the
// background image with each match outlined.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"gocv.io/x/gocv"

	"overlay-finder/internal/imageio"
	"overlay-finder/internal/match"
)

func main() {
	background := flag.String("background", "", "Path to the background image")
	overlay := flag.String("overlay", "", "Path to the overlay image")
	out := flag.String("out", "matches.png", "Path for the annotated output image")
	whiteTransparent := flag.Bool("white-transparent", false, "Treat pure-white overlay pixels as transparent")
	thickness := flag.Int("thickness", 2, "Rectangle outline thickness in pixels")
	flag.Parse()

	if *background == "" || *overlay == "" {
		fmt.Println("Usage: markmatches -background <path> -overlay <path> [-out matches.png]")
		os.Exit(1)
	}

	bg, err := imageio.Load(*background)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load background: %v\n", err)
		os.Exit(1)
	}
	ov, err := imageio.Load(*overlay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load overlay: %v\n", err)
		os.Exit(1)
	}

	opts := match.DefaultOptions()
	opts.WhiteTransparent = *whiteTransparent

	results, err := match.Find(bg, ov, opts)
	if err != nil {
		if errors.Is(err, match.ErrOverlayTooLarge) {
			fmt.Fprintf(os.Stderr, "Overlay does not fit: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Found %d match(es), best score %.2f at (%d, %d)\n",
		len(results), results[0].Score, results[0].X, results[0].Y)

	mat := gocv.IMRead(*background, gocv.IMReadColor)
	if mat.Empty() {
		fmt.Fprintf(os.Stderr, "Failed to read %s for annotation\n", *background)
		os.Exit(1)
	}
	defer mat.Close()

	outline := color.RGBA{R: 255, G: 0, B: 255, A: 255}
	for _, m := range results {
		rect := image.Rect(m.X, m.Y, m.X+ov.Width(), m.Y+ov.Height())
		gocv.Rectangle(&mat, rect, outline, *thickness)
	}

	if ok := gocv.IMWrite(*out, mat); !ok {
		fmt.Fprintf(os.Stderr, "Failed to write %s\n", *out)
		os.Exit(1)
	}
	fmt.Printf("Annotated image written to %s\n", *out)
}
