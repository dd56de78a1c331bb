// Package report formats match results as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"overlay-finder/internal/match"
)

// ImageInfo describes one input image.
type ImageInfo struct {
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// OverlayReport holds the matches found for one overlay.
type OverlayReport struct {
	ImageInfo ImageInfo      `json:"image_info"`
	Matches   []match.Result `json:"matches"`
	Stats     *ScoreStats    `json:"score_stats,omitempty"`
}

// Document is the full structured output for one run.
type Document struct {
	Version          string          `json:"version"`
	Background       ImageInfo       `json:"background"`
	Overlays         []OverlayReport `json:"overlays"`
	WhiteTransparent bool            `json:"white_transparent"`
}

// WriteText writes the line-oriented match report for one overlay.
func WriteText(w io.Writer, results []match.Result) {
	fmt.Fprintln(w, "Match Report:")
	for i, r := range results {
		fmt.Fprintf(w, "Match %d: Position: (%d, %d), Score: %.2f, Perfect: %t, Border Match: %t\n",
			i+1, r.X, r.Y, r.Score, r.Perfect, r.BorderMatch)
	}
}

// WriteStatsText writes the score-distribution summary for one overlay.
func WriteStatsText(w io.Writer, s *ScoreStats) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "Score distribution: %d positions, mean %.4f, stddev %.4f, min %.4f, median %.4f, max %.4f\n",
		s.Positions, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
}

// WriteJSON writes the document as indented JSON.
func (d *Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
