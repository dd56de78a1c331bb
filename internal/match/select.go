package match

// ScoreThreshold is the fixed cutoff for keeping multiple matches. When the
// best placement does not clear it, only the best placement is reported.
const ScoreThreshold = 0.5

// Select applies the keep/fallback policy to a score-sorted result list.
// If the best score exceeds ScoreThreshold, every result above the
// threshold is kept in order; otherwise only the best result is returned,
// however low its score. An empty input yields an empty output.
func Select(sorted []Result) []Result {
	if len(sorted) == 0 {
		return nil
	}

	if sorted[0].Score <= ScoreThreshold {
		return []Result{sorted[0]}
	}

	n := 0
	for _, r := range sorted {
		if r.Score > ScoreThreshold {
			n++
		}
	}

	selected := make([]Result, n)
	copy(selected, sorted[:n])
	return selected
}
