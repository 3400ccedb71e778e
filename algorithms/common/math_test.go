package common

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMeanMinMax(t *testing.T) {
	data := []float64{2, -1, 5, 0}

	if got := Mean(data); !almostEqual(got, 1.5, tolerance) {
		t.Errorf("Mean: got %g, want 1.5", got)
	}
	if got := Min(data); !almostEqual(got, -1, tolerance) {
		t.Errorf("Min: got %g, want -1", got)
	}
	if got := Max(data); !almostEqual(got, 5, tolerance) {
		t.Errorf("Max: got %g, want 5", got)
	}
}

func TestMeanMinMax_Empty(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil): got %g, want 0", got)
	}
	if got := Min(nil); got != 0 {
		t.Errorf("Min(nil): got %g, want 0", got)
	}
	if got := Max(nil); got != 0 {
		t.Errorf("Max(nil): got %g, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp inside range: got %g, want 0.5", got)
	}
	if got := Clamp(-2, 0, 1); got != 0 {
		t.Errorf("Clamp below: got %g, want 0", got)
	}
	if got := Clamp(7, 0, 1); got != 1 {
		t.Errorf("Clamp above: got %g, want 1", got)
	}
}

func TestColumnMeans(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3},
		{3, 4, 5},
	}

	means := ColumnMeans(rows)
	want := []float64{2, 3, 4}

	if len(means) != len(want) {
		t.Fatalf("length: got %d, want %d", len(means), len(want))
	}
	for i := range want {
		if !almostEqual(means[i], want[i], tolerance) {
			t.Errorf("means[%d]: got %g, want %g", i, means[i], want[i])
		}
	}
}

func TestColumnMeans_Empty(t *testing.T) {
	if got := ColumnMeans(nil); len(got) != 0 {
		t.Errorf("ColumnMeans(nil): got %v, want empty", got)
	}
	if got := ColumnMeans([][]float64{{}}); len(got) != 0 {
		t.Errorf("ColumnMeans of empty row: got %v, want empty", got)
	}
}
