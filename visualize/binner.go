package visualize

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/RyanBlaney/sonido-vista/algorithms/common"
	"github.com/RyanBlaney/sonido-vista/algorithms/spectral"
	"github.com/RyanBlaney/sonido-vista/algorithms/windowing"
	"github.com/RyanBlaney/sonido-vista/logging"
)

// Binner turns a waveform channel into normalized per-band energy series
type Binner struct {
	config *Config
	stft   *spectral.STFT
	window *windowing.Hann
}

// NewBinner creates a binner for the given configuration
func NewBinner(config *Config) *Binner {
	return &Binner{
		config: config,
		stft:   spectral.NewSTFT(),
		window: windowing.NewHann(config.WindowSize, false),
	}
}

// Bins computes the normalized energy of each band over time for one channel.
// The result is indexed [band][frame]; every value lands in [0, 1] with the
// bottom ZoomFloor fraction of the dynamic range discarded.
//
// The spectrogram's frequency axis is inverted before banding, so boundary
// indices count down from the highest frequency. A trailing all-zero frame is
// appended to the spectrogram before banding.
func (b *Binner) Bins(samples []float64, sampleRate int) ([][]float64, error) {
	logger := logging.WithFields(logging.Fields{
		"component":   "binner",
		"samples":     len(samples),
		"sample_rate": sampleRate,
	})

	result, err := b.stft.ComputeCentered(samples, b.config.WindowSize, b.config.HopSize(), sampleRate, b.window)
	if err != nil {
		return nil, fmt.Errorf("computing spectrogram: %w", err)
	}

	if err := validateBoundaries(b.config.BinBoundaries, result.FreqBins); err != nil {
		return nil, err
	}

	numBands := b.config.NumBands()
	numFrames := result.TimeFrames + 1 // one trailing silent frame

	bins := make([][]float64, numBands)
	for i := 0; i < numBands; i++ {
		bins[i] = make([]float64, numFrames)
	}

	for frame := 0; frame < result.TimeFrames; frame++ {
		spectrum := result.Complex[frame]
		for i := 0; i < numBands; i++ {
			start := b.config.BinBoundaries[i]
			end := b.config.BinBoundaries[i+1]

			// Boundaries index the inverted axis: row 0 is the highest
			// frequency. Average the complex values, then take the magnitude.
			sum := complex(0, 0)
			for r := start; r < end; r++ {
				sum += spectrum[result.FreqBins-1-r]
			}
			bins[i][frame] = cmplx.Abs(sum / complex(float64(end-start), 0))
		}
	}
	// The appended frame stays all zero.

	normalizeAndZoom(bins, b.config.ZoomFloor)

	logger.Debug("Binning completed", logging.Fields{
		"bands":       numBands,
		"stft_frames": result.TimeFrames,
		"bin_frames":  numFrames,
	})

	return bins, nil
}

// NumFrames reports how many frames Bins will produce for a signal of the
// given length, including the trailing silent frame.
func (b *Binner) NumFrames(signalLen int) int {
	return spectral.NumCenteredFrames(signalLen, b.config.WindowSize, b.config.HopSize()) + 1
}

func validateBoundaries(boundaries []int, freqBins int) error {
	if len(boundaries) < 2 {
		return fmt.Errorf("need at least 2 bin boundaries, got %d", len(boundaries))
	}
	for i, bound := range boundaries {
		if bound < 0 || bound > freqBins {
			return fmt.Errorf("bin boundary %d out of spectrogram range [0, %d]", bound, freqBins)
		}
		if i > 0 && bound <= boundaries[i-1] {
			return fmt.Errorf("bin boundaries must be strictly ascending: %v", boundaries)
		}
	}
	return nil
}

// normalizeAndZoom rescales the bins array in place:
//
//  1. exact zeros become 1 so the log is defined
//  2. natural log for a perceptual magnitude scale
//  3. residual zero-log values are clamped to the array minimum
//  4. shift so the minimum is 0, scale so the maximum is 1
//  5. clip below floor, subtract floor, rescale to [0, 1]
//
// A constant array has no dynamic range to normalize and comes out all zero.
func normalizeAndZoom(bins [][]float64, floor float64) {
	const eps = 1e-12

	for _, row := range bins {
		for j, v := range row {
			if v == 0 {
				v = 1
			}
			row[j] = math.Log(v)
		}
	}

	min := matrixMin(bins)
	for _, row := range bins {
		for j, v := range row {
			if v == 0 {
				row[j] = min
			}
		}
	}

	min = matrixMin(bins)
	for _, row := range bins {
		for j := range row {
			row[j] -= min
		}
	}

	max := matrixMax(bins)
	if max < eps {
		return // constant array, already all zero
	}
	for _, row := range bins {
		for j := range row {
			row[j] /= max
		}
	}

	for _, row := range bins {
		for j, v := range row {
			row[j] = common.Clamp(v, floor, 1) - floor
		}
	}

	max = matrixMax(bins)
	if max < eps {
		for _, row := range bins {
			for j := range row {
				row[j] = 0
			}
		}
		return
	}
	for _, row := range bins {
		for j := range row {
			row[j] /= max
		}
	}
}

func matrixMin(rows [][]float64) float64 {
	min := math.Inf(1)
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if m := common.Min(row); m < min {
			min = m
		}
	}
	if math.IsInf(min, 1) {
		return 0
	}
	return min
}

func matrixMax(rows [][]float64) float64 {
	max := math.Inf(-1)
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if m := common.Max(row); m > max {
			max = m
		}
	}
	if math.IsInf(max, -1) {
		return 0
	}
	return max
}

// AggregateCurve averages the bands of a bins array into one energy value per
// frame, the input the emphasis detector works on
func AggregateCurve(bins [][]float64) []float64 {
	return common.ColumnMeans(bins)
}
