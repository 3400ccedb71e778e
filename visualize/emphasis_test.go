package visualize

import (
	"testing"
)

// generateRamp creates a strictly increasing curve.
func generateRamp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestDetect_RampFlagsLastIndex(t *testing.T) {
	curve := generateRamp(50)

	for _, threshold := range []float64{0.5, 0.9, 1.0} {
		detector := NewEmphasisDetector(threshold, 7)
		points, err := detector.Detect(curve)
		if err != nil {
			t.Fatalf("Detect(threshold=%g): %v", threshold, err)
		}
		// The last frame dominates every window that contains it.
		if !points[len(curve)-1] {
			t.Errorf("threshold %g: last index not flagged", threshold)
		}
		// The first frame dominates nothing on a strictly increasing curve.
		if points[0] {
			t.Errorf("threshold %g: first index flagged", threshold)
		}
	}
}

func TestDetect_FlatCurveFlagsEverything(t *testing.T) {
	curve := make([]float64, 20) // locally flat everywhere

	detector := NewEmphasisDetector(1.0, 3)
	points, err := detector.Detect(curve)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if len(points) != len(curve) {
		t.Errorf("flagged count: got %d, want %d", len(points), len(curve))
	}
}

func TestDetect_IsolatedPeak(t *testing.T) {
	curve := []float64{0, 0, 0, 0, 0, 10, 0, 0, 0, 0, 0}

	detector := NewEmphasisDetector(0.9, 3)
	points, err := detector.Detect(curve)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if !points[5] {
		t.Error("peak at index 5 not flagged")
	}
}

func TestDetect_Validation(t *testing.T) {
	curve := generateRamp(10)

	if _, err := NewEmphasisDetector(0.9, 10).Detect(curve); err == nil {
		t.Error("horizon == length: expected error, got nil")
	}
	if _, err := NewEmphasisDetector(0.9, 25).Detect(curve); err == nil {
		t.Error("horizon > length: expected error, got nil")
	}
	if _, err := NewEmphasisDetector(0.9, 0).Detect(curve); err == nil {
		t.Error("horizon 0: expected error, got nil")
	}
	if _, err := NewEmphasisDetector(1.5, 3).Detect(curve); err == nil {
		t.Error("threshold > 1: expected error, got nil")
	}
	if _, err := NewEmphasisDetector(0.9, 3).Detect(nil); err == nil {
		t.Error("empty curve: expected error, got nil")
	}
}
