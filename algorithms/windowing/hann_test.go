package windowing

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewHann_PeriodicCoefficients(t *testing.T) {
	h := NewHann(8, false)
	coeffs := h.GetCoefficients()

	if len(coeffs) != 8 {
		t.Fatalf("coefficient count: got %d, want 8", len(coeffs))
	}
	if !almostEqual(coeffs[0], 0, tolerance) {
		t.Errorf("coeffs[0]: got %g, want 0", coeffs[0])
	}
	// A periodic window is symmetric around size/2.
	for i := 1; i < 8; i++ {
		if !almostEqual(coeffs[i], coeffs[8-i], tolerance) {
			t.Errorf("periodic symmetry broken at %d: %g vs %g", i, coeffs[i], coeffs[8-i])
		}
	}
	if !almostEqual(coeffs[4], 1.0, tolerance) {
		t.Errorf("peak coefficient: got %g, want 1", coeffs[4])
	}
}

func TestNewHann_SymmetricEndpoints(t *testing.T) {
	h := NewHann(9, true)
	coeffs := h.GetCoefficients()

	if !almostEqual(coeffs[0], 0, tolerance) {
		t.Errorf("coeffs[0]: got %g, want 0", coeffs[0])
	}
	if !almostEqual(coeffs[8], 0, tolerance) {
		t.Errorf("coeffs[8]: got %g, want 0", coeffs[8])
	}
	if !almostEqual(coeffs[4], 1.0, tolerance) {
		t.Errorf("center coefficient: got %g, want 1", coeffs[4])
	}
}

func TestHannApply_LengthMismatch(t *testing.T) {
	h := NewHann(16, false)

	if got := h.Apply(make([]float64, 8)); got != nil {
		t.Errorf("Apply with wrong length: got %v, want nil", got)
	}
	if err := h.ApplyInPlace(make([]float64, 8)); err == nil {
		t.Error("ApplyInPlace with wrong length: expected error, got nil")
	}
}

func TestHannApplyInPlace(t *testing.T) {
	h := NewHann(4, false)
	signal := []float64{1, 1, 1, 1}

	if err := h.ApplyInPlace(signal); err != nil {
		t.Fatalf("ApplyInPlace: %v", err)
	}

	coeffs := h.GetCoefficients()
	for i := range signal {
		if !almostEqual(signal[i], coeffs[i], tolerance) {
			t.Errorf("signal[%d]: got %g, want %g", i, signal[i], coeffs[i])
		}
	}
}
