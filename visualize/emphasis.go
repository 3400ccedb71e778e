package visualize

import (
	"fmt"

	"github.com/RyanBlaney/sonido-vista/logging"
)

// EmphasisDetector flags frames that locally dominate an aggregate energy
// curve. This is non-maximum suppression over the smoothed loudness curve,
// not peak picking with refractory periods: nearby frames can all be flagged
// when the curve is locally flat.
type EmphasisDetector struct {
	threshold float64
	horizon   int
}

// NewEmphasisDetector creates a detector. threshold is the fraction of
// neighbors a frame must dominate; horizon is how many frames to inspect on
// each side.
func NewEmphasisDetector(threshold float64, horizon int) *EmphasisDetector {
	return &EmphasisDetector{
		threshold: threshold,
		horizon:   horizon,
	}
}

// Detect returns the set of emphasized frame indices in curve. For each frame
// the window [i-horizon, i+horizon], clipped to the curve bounds, is
// inspected; the frame is flagged when the fraction of other neighbors it
// dominates (its value >= theirs) meets the threshold.
func (d *EmphasisDetector) Detect(curve []float64) (map[int]bool, error) {
	if len(curve) == 0 {
		return nil, fmt.Errorf("empty energy curve")
	}
	if d.horizon < 1 {
		return nil, fmt.Errorf("horizon must be at least 1, got %d", d.horizon)
	}
	if d.horizon >= len(curve) {
		return nil, fmt.Errorf("horizon %d must be smaller than curve length %d", d.horizon, len(curve))
	}
	if d.threshold < 0 || d.threshold > 1 {
		return nil, fmt.Errorf("threshold must be in [0, 1]: %g", d.threshold)
	}

	points := make(map[int]bool)

	for i := range curve {
		lo := max(0, i-d.horizon)
		hi := min(len(curve), i+d.horizon+1)

		dominated := 0
		for j := lo; j < hi; j++ {
			if curve[i] >= curve[j] {
				dominated++
			}
		}

		// The frame itself always counts once in dominated; discount it so
		// the fraction is over the other neighbors only.
		fraction := float64(dominated-1) / float64(hi-lo-1)
		if fraction >= d.threshold {
			points[i] = true
		}
	}

	logging.Debug("Emphasis detection completed", logging.Fields{
		"component": "emphasis_detector",
		"frames":    len(curve),
		"flagged":   len(points),
		"threshold": d.threshold,
		"horizon":   d.horizon,
	})

	return points, nil
}
