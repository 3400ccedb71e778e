package spectral

import (
	"fmt"
	"math/cmplx"
)

// STFT provides Short-Time Fourier Transform functionality
type STFT struct {
	fft *FFT
}

// STFTResult holds the result of STFT analysis
type STFTResult struct {
	Magnitude      [][]float64    `json:"magnitude"`       // Time x Frequency magnitude matrix
	Complex        [][]complex128 `json:"-"`               // Raw complex spectrogram (not serialized)
	TimeFrames     int            `json:"time_frames"`     // Number of time frames
	FreqBins       int            `json:"freq_bins"`       // Number of frequency bins
	SampleRate     int            `json:"sample_rate"`     // Sample rate
	WindowSize     int            `json:"window_size"`     // FFT window size
	HopSize        int            `json:"hop_size"`        // Hop size between frames
	FreqResolution float64        `json:"freq_resolution"` // Frequency resolution (Hz/bin)
	TimeResolution float64        `json:"time_resolution"` // Time resolution (seconds/frame)
}

// Window interface for windowing functions
type Window interface {
	ApplyInPlace(signal []float64) error
}

// NewSTFT creates a new STFT calculator
func NewSTFT() *STFT {
	return &STFT{
		fft: NewFFT(),
	}
}

// ComputeCentered computes a centered STFT: the signal is extended with
// windowSize/2 zeros on both ends so the first frame is centered on sample 0,
// then zero-padded at the tail so every sample lands in a whole number of
// hops. One-sided output: windowSize/2+1 frequency bins per frame.
func (s *STFT) ComputeCentered(signal []float64, windowSize int, hopSize int, sampleRate int, window Window) (*STFTResult, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}

	if windowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive")
	}

	if hopSize <= 0 || hopSize > windowSize {
		return nil, fmt.Errorf("hop size must be in 1..window size, got %d", hopSize)
	}

	// Boundary extension: half a window of zeros on each side
	half := windowSize / 2
	extended := make([]float64, len(signal)+2*half)
	copy(extended[half:], signal)

	// Tail padding so (len-windowSize) is a whole number of hops
	if rem := (len(extended) - windowSize) % hopSize; rem != 0 {
		extended = append(extended, make([]float64, hopSize-rem)...)
	}

	numFrames := (len(extended)-windowSize)/hopSize + 1
	freqBins := windowSize/2 + 1

	magnitude := make([][]float64, numFrames)
	complexSpectrum := make([][]complex128, numFrames)

	frameBuffer := make([]float64, windowSize)

	for frameIdx := 0; frameIdx < numFrames; frameIdx++ {
		startIdx := frameIdx * hopSize
		copy(frameBuffer, extended[startIdx:startIdx+windowSize])

		if window != nil {
			if err := window.ApplyInPlace(frameBuffer); err != nil {
				return nil, fmt.Errorf("applying window to frame %d: %w", frameIdx, err)
			}
		}

		fftResult := s.fft.Compute(frameBuffer)

		magnitude[frameIdx] = make([]float64, freqBins)
		complexSpectrum[frameIdx] = make([]complex128, freqBins)
		for i := 0; i < freqBins; i++ {
			complexSpectrum[frameIdx][i] = fftResult[i]
			magnitude[frameIdx][i] = cmplx.Abs(fftResult[i])
		}
	}

	result := &STFTResult{
		Magnitude:      magnitude,
		Complex:        complexSpectrum,
		TimeFrames:     numFrames,
		FreqBins:       freqBins,
		SampleRate:     sampleRate,
		WindowSize:     windowSize,
		HopSize:        hopSize,
		FreqResolution: float64(sampleRate) / float64(windowSize),
		TimeResolution: float64(hopSize) / float64(sampleRate),
	}

	return result, nil
}

// NumCenteredFrames reports how many frames ComputeCentered will produce for a
// signal of the given length, without computing the transform.
func NumCenteredFrames(signalLen, windowSize, hopSize int) int {
	if signalLen <= 0 || windowSize <= 0 || hopSize <= 0 {
		return 0
	}
	extended := signalLen + 2*(windowSize/2)
	if rem := (extended - windowSize) % hopSize; rem != 0 {
		extended += hopSize - rem
	}
	return (extended-windowSize)/hopSize + 1
}
