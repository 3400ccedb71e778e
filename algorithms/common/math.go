package common

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic statistical helpers shared across algorithms, using gonum for robustness

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Min returns the smallest value in data
func Min(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Min(data)
}

// Max returns the largest value in data
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data)
}

// Clamp constrains value to [min, max]
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ColumnMeans computes the per-column mean of a row-major matrix.
// Rows shorter than the first row contribute zeros for their missing columns.
func ColumnMeans(rows [][]float64) []float64 {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return []float64{}
	}

	cols := len(rows[0])
	means := make([]float64, cols)
	column := make([]float64, len(rows))

	for j := 0; j < cols; j++ {
		for i, row := range rows {
			if j < len(row) {
				column[i] = row[j]
			} else {
				column[i] = 0
			}
		}
		means[j] = stat.Mean(column, nil)
	}

	return means
}
