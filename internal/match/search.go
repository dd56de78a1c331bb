package match

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"overlay-finder/internal/imageio"
)

// FindAll scores every valid placement of the overlay within the background
// and returns one Result per placement, sorted by score descending. Ties
// break ascending by y, then by x, so the order is reproducible regardless
// of how the work was scheduled.
func FindAll(bg, ov *imageio.Buffer, opts Options) ([]Result, error) {
	if ov.Width() > bg.Width() || ov.Height() > bg.Height() {
		return nil, fmt.Errorf("%w: overlay %dx%d, background %dx%d",
			ErrOverlayTooLarge, ov.Width(), ov.Height(), bg.Width(), bg.Height())
	}
	if opts.WhiteTransparent && fullyTransparent(ov) {
		return nil, ErrOverlayFullyTransparent
	}

	// Every placement shifts by one pixel, so the candidate grid is
	// (bgW-ovW+1) x (bgH-ovH+1).
	nx := bg.Width() - ov.Width() + 1
	ny := bg.Height() - ov.Height() + 1
	total := nx * ny

	numWorkers := opts.workers()
	if numWorkers > total {
		numWorkers = total
	}

	start := time.Now()
	if opts.Debug {
		fmt.Printf("Search: %d candidate positions (%dx%d grid), %d workers\n",
			total, nx, ny, numWorkers)
	}

	// Each worker owns a contiguous index range of the results slice, so
	// aggregation needs no locking.
	results := make([]Result, total)
	chunk := (total + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				x := i % nx
				y := i / nx
				score := scorePosition(bg, ov, x, y, opts.WhiteTransparent)
				results[i] = Result{
					X:           x,
					Y:           y,
					Score:       score,
					Perfect:     score == 1.0,
					BorderMatch: borderMatches(bg, ov, x, y, opts.WhiteTransparent),
				}
			}
		}(lo, hi)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	if opts.Debug {
		fmt.Printf("Search: best score %.4f at (%d, %d), %.2fs elapsed\n",
			results[0].Score, results[0].X, results[0].Y, time.Since(start).Seconds())
	}

	return results, nil
}

// Find runs FindAll and applies the selection policy: all placements
// scoring above the threshold, or the single best placement if none do.
func Find(bg, ov *imageio.Buffer, opts Options) ([]Result, error) {
	results, err := FindAll(bg, ov, opts)
	if err != nil {
		return nil, err
	}
	return Select(results), nil
}
