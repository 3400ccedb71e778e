package video

import (
	"fmt"
	"image"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-vista/logging"
)

// SinkConfig holds video encoder configuration
type SinkConfig struct {
	FFmpegPath string `json:"ffmpeg_path"` // Path to ffmpeg binary
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FPS        int    `json:"fps"`
	OutputPath string `json:"output_path"` // Must end in .mp4
}

// DefaultSinkConfig returns default encoder configuration for the given output path
func DefaultSinkConfig(outputPath string) *SinkConfig {
	return &SinkConfig{
		FFmpegPath: "ffmpeg",
		Width:      1280,
		Height:     720,
		FPS:        30,
		OutputPath: outputPath,
	}
}

// Sink is an FFmpeg child process that consumes raw RGBA frames on stdin and
// encodes them into a silent H.264 MP4
type Sink struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	config *SinkConfig
	frames int
}

// BuildSinkArgs constructs the ffmpeg argument list for encoding raw RGBA
// frames from stdin into a silent MP4 at the configured size and frame rate
func BuildSinkArgs(c *SinkConfig) []string {
	return []string{
		"-v", "error",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", c.Width, c.Height),
		"-r", strconv.Itoa(c.FPS),
		"-i", "-",
		"-an",
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-pix_fmt", "yuv420p",
		"-y",
		c.OutputPath,
	}
}

// ValidateSinkConfig checks encoder parameters before any process is spawned
func ValidateSinkConfig(c *SinkConfig) error {
	if c == nil {
		return fmt.Errorf("nil sink config")
	}
	if !strings.HasSuffix(c.OutputPath, ".mp4") {
		return fmt.Errorf("output path must have .mp4 extension: %s", c.OutputPath)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive: %d", c.FPS)
	}
	return nil
}

// NewSink validates the config, spawns the encoder process and returns a
// handle for sending frames to it
func NewSink(config *SinkConfig) (*Sink, error) {
	if err := ValidateSinkConfig(config); err != nil {
		return nil, err
	}

	ffmpeg, err := exec.LookPath(config.FFmpegPath)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found at %s: %w", config.FFmpegPath, err)
	}

	args := BuildSinkArgs(config)
	cmd := exec.Command(ffmpeg, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("opening ffmpeg stdin: %w", err)
	}

	logging.Debug("Starting video encoder", logging.Fields{
		"component": "video_sink",
		"args":      strings.Join(args, " "),
	})

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting ffmpeg: %w", err)
	}

	return &Sink{
		cmd:    cmd,
		stdin:  stdin,
		config: config,
	}, nil
}

// SendFrame writes one RGBA frame to the encoder. Frames must arrive in
// presentation order and match the configured dimensions.
func (s *Sink) SendFrame(img *image.RGBA) error {
	bounds := img.Bounds()
	if bounds.Dx() != s.config.Width || bounds.Dy() != s.config.Height {
		return fmt.Errorf("frame size %dx%d does not match configured %dx%d",
			bounds.Dx(), bounds.Dy(), s.config.Width, s.config.Height)
	}

	// Write the full pixel buffer; a short write means the encoder died.
	n := 0
	for n < len(img.Pix) {
		i, err := s.stdin.Write(img.Pix[n:])
		n += i
		if err != nil {
			return fmt.Errorf("writing frame %d to encoder: %w", s.frames, err)
		}
	}

	s.frames++
	return nil
}

// Frames reports how many frames have been sent so far
func (s *Sink) Frames() int {
	return s.frames
}

// Finish closes the frame stream and waits for the encoder to exit
func (s *Sink) Finish() error {
	if err := s.stdin.Close(); err != nil {
		return fmt.Errorf("closing encoder stdin: %w", err)
	}
	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("video encoder exited with error: %w", err)
	}

	logging.Debug("Video encoder finished", logging.Fields{
		"component": "video_sink",
		"frames":    s.frames,
		"output":    s.config.OutputPath,
	})

	return nil
}
