// Command matchview displays the background image with every overlay match
// outlined, in a desktop window.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"overlay-finder/internal/imageio"
	"overlay-finder/internal/match"
	"overlay-finder/internal/report"
)

func main() {
	background := flag.String("background", "", "Path to the background image")
	overlay := flag.String("overlay", "", "Path to the overlay image")
	whiteTransparent := flag.Bool("white-transparent", false, "Treat pure-white overlay pixels as transparent")
	flag.Parse()

	if *background == "" || *overlay == "" {
		fmt.Println("Usage: matchview -background <path> -overlay <path> [-white-transparent]")
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
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}

	annotated := report.Annotate(bg.ToImage(), ov.Width(), ov.Height(), results)

	myApp := app.New()
	window := myApp.NewWindow(fmt.Sprintf("Matches: %s", *overlay))

	img := canvas.NewImageFromImage(annotated)
	img.FillMode = canvas.ImageFillContain

	summary := widget.NewLabel(fmt.Sprintf("%d match(es), best score %.2f at (%d, %d)",
		len(results), results[0].Score, results[0].X, results[0].Y))

	window.SetContent(container.NewBorder(nil, summary, nil, nil, img))
	window.Resize(fyne.NewSize(float32(bg.Width()), float32(bg.Height())+40))
	window.ShowAndRun()
}
