package transcode

import (
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"

	"github.com/RyanBlaney/sonido-vista/logging"
)

// AudioData represents decoded audio data, one sample slice per channel
type AudioData struct {
	Channels    [][]float64   `json:"-"` // De-interleaved PCM, raw amplitudes
	SampleRate  int           `json:"sample_rate"`
	NumChannels int           `json:"channels"`
	BitDepth    int           `json:"bit_depth"`
	Duration    time.Duration `json:"duration"`
}

// WAVDecoder reads PCM WAV files into per-channel sample slices
type WAVDecoder struct {
	maxChannels int
}

// NewWAVDecoder creates a WAV decoder. The visualizer only handles mono and
// stereo material, so anything above two channels is rejected.
func NewWAVDecoder() *WAVDecoder {
	return &WAVDecoder{maxChannels: 2}
}

// DecodeFile decodes a WAV file and returns de-interleaved PCM data
func (d *WAVDecoder) DecodeFile(filename string) (*AudioData, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "wav_decoder",
		"function":  "DecodeFile",
		"filename":  filename,
	})

	logger.Debug("Starting WAV decode")

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening wav file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid wav file: %s", filename)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}

	numChannels := buf.Format.NumChannels
	sampleRate := buf.Format.SampleRate
	if numChannels < 1 || numChannels > d.maxChannels {
		return nil, fmt.Errorf("unsupported channel count: %d (want 1 or 2)", numChannels)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}

	frames := len(buf.Data) / numChannels
	if frames == 0 {
		return nil, fmt.Errorf("no audio samples in %s", filename)
	}

	// De-interleave. The binner's log normalization is scale-free, so samples
	// stay at their raw integer amplitudes.
	channels := make([][]float64, numChannels)
	for c := 0; c < numChannels; c++ {
		channels[c] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for c := 0; c < numChannels; c++ {
			channels[c][i] = float64(buf.Data[i*numChannels+c])
		}
	}

	duration := time.Duration(frames) * time.Second / time.Duration(sampleRate)

	logger.Debug("WAV decode completed", logging.Fields{
		"sample_rate": sampleRate,
		"channels":    numChannels,
		"frames":      frames,
		"duration":    duration.Seconds(),
	})

	return &AudioData{
		Channels:    channels,
		SampleRate:  sampleRate,
		NumChannels: numChannels,
		BitDepth:    int(decoder.BitDepth),
		Duration:    duration,
	}, nil
}
