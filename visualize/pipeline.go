package visualize

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/RyanBlaney/sonido-vista/logging"
	"github.com/RyanBlaney/sonido-vista/transcode"
	"github.com/RyanBlaney/sonido-vista/video"
)

// Pipeline runs the whole conversion: decode WAV, bin the spectrum, detect
// emphasis points, render frames into a silent video and remux the original
// audio onto it. Everything is synchronous; each stage blocks until complete.
type Pipeline struct {
	config *Config
}

// NewPipeline creates a pipeline for the given configuration
func NewPipeline(config *Config) (*Pipeline, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Pipeline{config: config}, nil
}

// Run converts audioPath into a visualization, writing the intermediate
// silent render to silentPath and the final audio-merged video to finalPath.
// Both outputs are overwritten if present.
func (p *Pipeline) Run(audioPath, silentPath, finalPath string) error {
	logger := logging.WithFields(logging.Fields{
		"component": "pipeline",
		"audio":     audioPath,
		"silent":    silentPath,
		"final":     finalPath,
	})

	startTime := time.Now()

	data, err := transcode.NewWAVDecoder().DecodeFile(audioPath)
	if err != nil {
		return fmt.Errorf("decoding audio: %w", err)
	}

	if p.config.ChannelMode == ChannelModeStereo && data.NumChannels < 2 {
		return fmt.Errorf("stereo mode requires a 2-channel file, got %d channel(s)", data.NumChannels)
	}

	binner := NewBinner(p.config)

	left, err := binner.Bins(data.Channels[0], data.SampleRate)
	if err != nil {
		return fmt.Errorf("binning channel 0: %w", err)
	}

	var right [][]float64
	if p.config.ChannelMode == ChannelModeStereo {
		right, err = binner.Bins(data.Channels[1], data.SampleRate)
		if err != nil {
			return fmt.Errorf("binning channel 1: %w", err)
		}
	}

	var emphasis map[int]bool
	if p.config.ColorChanging {
		detector := NewEmphasisDetector(p.config.EmphasisThreshold, p.config.EmphasisHorizon)
		emphasis, err = detector.Detect(AggregateCurve(left))
		if err != nil {
			return fmt.Errorf("detecting emphasis points: %w", err)
		}
	}

	var seq FrameSequence
	switch p.config.Renderer {
	case RendererBar:
		seq, err = NewBarSequence(p.config, left, p.config.BandNames)
	default:
		seq, err = NewCircleSequence(p.config, left, right, emphasis)
	}
	if err != nil {
		return fmt.Errorf("creating frame sequence: %w", err)
	}

	logger.Info("Rendering frames", logging.Fields{
		"frames":   seq.Len(),
		"renderer": string(p.config.Renderer),
		"fps":      p.config.FPS,
	})

	sink, err := video.NewSink(&video.SinkConfig{
		FFmpegPath: p.config.FFmpegPath,
		Width:      p.config.Width,
		Height:     p.config.Height,
		FPS:        p.config.FPS,
		OutputPath: silentPath,
	})
	if err != nil {
		return fmt.Errorf("starting video encoder: %w", err)
	}

	for {
		frame, err := seq.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("rendering frame %d: %w", sink.Frames(), err)
		}
		if err := sink.SendFrame(frame); err != nil {
			return fmt.Errorf("encoding frame: %w", err)
		}
	}

	if err := sink.Finish(); err != nil {
		return fmt.Errorf("finishing silent video: %w", err)
	}

	muxer := transcode.NewMuxer(&transcode.MuxerConfig{
		FFmpegPath: p.config.FFmpegPath,
		AudioCodec: "aac",
		Timeout:    10 * time.Minute,
	})
	if err := muxer.Mux(silentPath, audioPath, finalPath); err != nil {
		return fmt.Errorf("muxing audio: %w", err)
	}

	logger.Info("Visualization completed", logging.Fields{
		"frames":     sink.Frames(),
		"total_time": time.Since(startTime).Seconds(),
	})

	return nil
}
