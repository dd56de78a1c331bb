// Command overlay-finder locates the exact positions of overlay images
// within a background image and reports the matches as text or JSON.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"overlay-finder/internal/imageio"
	"overlay-finder/internal/match"
	"overlay-finder/internal/report"
)

const appVersion = "0.1.0"

func main() {
	background := flag.String("background", "", "Path to the background image")
	whiteTransparent := flag.Bool("white-transparent", false, "Treat pure-white overlay pixels as transparent")
	printFormat := flag.String("print-format", "text", "Output format: text or json")
	stats := flag.Bool("stats", false, "Include score-distribution statistics")
	workers := flag.Int("workers", 0, "Parallel workers (0 = number of CPUs)")
	debug := flag.Bool("debug", false, "Enable search progress output")
	flag.Parse()

	if *background == "" || flag.NArg() == 0 {
		fmt.Println("Usage: overlay-finder -background <path> [options] <overlay|glob>...")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *printFormat != "text" && *printFormat != "json" {
		fmt.Fprintf(os.Stderr, "Unknown print format %q (want text or json)\n", *printFormat)
		os.Exit(1)
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if *debug {
		log.Printf("overlay-finder v%s", appVersion)
	}

	opts := match.DefaultOptions()
	opts.WhiteTransparent = *whiteTransparent
	opts.Workers = *workers
	opts.Debug = *debug

	code := run(*background, flag.Args(), opts, *printFormat == "json", *stats)
	os.Exit(code)
}

// run processes every overlay against the background and emits the report.
// A failing overlay is reported and skipped; the exit code is nonzero only
// if the background fails to load or no overlay could be processed.
func run(backgroundPath string, patterns []string, opts match.Options, printJSON, withStats bool) int {
	bg, err := imageio.Load(backgroundPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load background: %v\n", err)
		return 1
	}

	overlayPaths, err := expandPatterns(patterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad overlay pattern: %v\n", err)
		return 1
	}
	if len(overlayPaths) == 0 {
		fmt.Fprintln(os.Stderr, "No overlay files matched")
		return 1
	}

	doc := &report.Document{
		Version: appVersion,
		Background: report.ImageInfo{
			Filename: filepath.Base(backgroundPath),
			Width:    bg.Width(),
			Height:   bg.Height(),
		},
		WhiteTransparent: opts.WhiteTransparent,
	}

	processed := 0
	for _, path := range overlayPaths {
		overlayReport, err := processOverlay(bg, path, opts, withStats)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", path, err)
			continue
		}
		processed++

		if !printJSON {
			fmt.Printf("\nOverlay: %s\n", path)
			report.WriteText(os.Stdout, overlayReport.Matches)
			if withStats {
				report.WriteStatsText(os.Stdout, overlayReport.Stats)
			}
		}
		doc.Overlays = append(doc.Overlays, *overlayReport)
	}

	if processed == 0 {
		fmt.Fprintln(os.Stderr, "No overlays could be processed")
		return 1
	}

	if printJSON {
		if err := doc.WriteJSON(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write JSON: %v\n", err)
			return 1
		}
	}

	return 0
}

// processOverlay loads one overlay and runs the search against the background.
func processOverlay(bg *imageio.Buffer, path string, opts match.Options, withStats bool) (*report.OverlayReport, error) {
	ov, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}

	all, err := match.FindAll(bg, ov, opts)
	if err != nil {
		return nil, err
	}

	r := &report.OverlayReport{
		ImageInfo: report.ImageInfo{
			Filename: filepath.Base(path),
			Width:    ov.Width(),
			Height:   ov.Height(),
		},
		Matches: match.Select(all),
	}
	if withStats {
		r.Stats = report.NewScoreStats(all)
	}
	return r, nil
}

// expandPatterns resolves overlay arguments, expanding glob patterns and
// passing literal paths through untouched.
func expandPatterns(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[") {
			paths = append(paths, pattern)
			continue
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			fmt.Fprintf(os.Stderr, "Pattern %q matched no files\n", pattern)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}
