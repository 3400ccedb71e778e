package transcode

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/RyanBlaney/sonido-vista/logging"
)

// MuxerConfig holds muxer configuration
type MuxerConfig struct {
	FFmpegPath string        `json:"ffmpeg_path"` // Path to ffmpeg binary
	AudioCodec string        `json:"audio_codec"` // Codec for the muxed audio track
	Timeout    time.Duration `json:"timeout"`     // Timeout for the ffmpeg run
}

// DefaultMuxerConfig returns default muxer configuration
func DefaultMuxerConfig() *MuxerConfig {
	return &MuxerConfig{
		FFmpegPath: "ffmpeg", // Assume in PATH
		AudioCodec: "aac",
		Timeout:    10 * time.Minute,
	}
}

// Muxer attaches an audio track to a silent video using FFmpeg
type Muxer struct {
	config *MuxerConfig
}

// NewMuxer creates a new audio/video muxer
func NewMuxer(config *MuxerConfig) *Muxer {
	if config == nil {
		config = DefaultMuxerConfig()
	}
	return &Muxer{config: config}
}

// BuildArgs constructs the ffmpeg argument list for muxing. The video stream
// comes from videoPath unchanged, the audio track from audioPath; any existing
// file at outputPath is overwritten.
func (m *Muxer) BuildArgs(videoPath, audioPath, outputPath string) []string {
	return []string{
		"-v", "error",
		"-i", videoPath,
		"-i", audioPath,
		"-map", "0:v",
		"-map", "1:a",
		"-c:v", "copy",
		"-c:a", m.config.AudioCodec,
		"-y",
		outputPath,
	}
}

// Mux merges the audio track from audioPath onto the video stream of
// videoPath, writing the result to outputPath
func (m *Muxer) Mux(videoPath, audioPath, outputPath string) error {
	logger := logging.WithFields(logging.Fields{
		"component": "muxer",
		"video":     videoPath,
		"audio":     audioPath,
		"output":    outputPath,
	})

	args := m.BuildArgs(videoPath, audioPath, outputPath)

	ctx := context.Background()
	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, m.config.FFmpegPath, args...)

	logger.Debug("Running ffmpeg mux command", logging.Fields{
		"args": strings.Join(args, " "),
	})

	startTime := time.Now()
	if output, err := cmd.CombinedOutput(); err != nil {
		logger.Error(err, "Ffmpeg mux failed", logging.Fields{
			"stderr": string(output),
		})
		return fmt.Errorf("ffmpeg mux failed: %w, stderr: %s", err, string(output))
	}

	logger.Info("Mux completed", logging.Fields{
		"mux_time": time.Since(startTime).Seconds(),
	})

	return nil
}
