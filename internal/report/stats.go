package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"overlay-finder/internal/match"
)

// ScoreStats summarizes the score distribution over every candidate
// position of one search, before selection.
type ScoreStats struct {
	Positions int     `json:"positions"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"stddev"`
	Min       float64 `json:"min"`
	Median    float64 `json:"median"`
	Max       float64 `json:"max"`
}

// NewScoreStats computes summary statistics over all results.
// Returns nil for an empty input.
func NewScoreStats(results []match.Result) *ScoreStats {
	if len(results) == 0 {
		return nil
	}

	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Score
	}
	// stat.Quantile requires ascending order.
	sort.Float64s(scores)

	s := &ScoreStats{
		Positions: len(scores),
		Mean:      stat.Mean(scores, nil),
		Min:       scores[0],
		Median:    stat.Quantile(0.5, stat.Empirical, scores, nil),
		Max:       scores[len(scores)-1],
	}
	if len(scores) > 1 {
		s.StdDev = stat.StdDev(scores, nil)
	}
	return s
}
