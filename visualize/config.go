package visualize

import "fmt"

// ChannelMode selects mono or stereo analysis
type ChannelMode string

const (
	ChannelModeMono   ChannelMode = "mono"
	ChannelModeStereo ChannelMode = "stereo"
)

// RendererMode selects the frame renderer variant
type RendererMode string

const (
	RendererCircle RendererMode = "circle"
	RendererBar    RendererMode = "bar"
)

// RGB is a color with components in [0, 1]
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Config holds the full visualization configuration
type Config struct {
	// Analysis
	ChannelMode   ChannelMode `json:"channel_mode"`
	BinBoundaries []int       `json:"bin_boundaries"` // N boundaries define N-1 bands
	WindowSize    int         `json:"window_size"`    // STFT window (samples)
	Overlap       int         `json:"overlap"`        // STFT overlap (samples)
	ZoomFloor     float64     `json:"zoom_floor"`     // Bottom fraction of dynamic range discarded

	// Emphasis detection
	ColorChanging     bool    `json:"color_changing"`
	EmphasisThreshold float64 `json:"emphasis_threshold"`
	EmphasisHorizon   int     `json:"emphasis_horizon"`

	// Rendering
	Renderer    RendererMode `json:"renderer"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	FPS         int          `json:"fps"`
	CircleWidth float64      `json:"circle_width"` // Ring stroke width (pixels)
	DecayFactor float64      `json:"decay_factor"` // Background fade per frame
	BandNames   []string     `json:"band_names"`   // Bar mode labels, one per band

	// External tools
	FFmpegPath string `json:"ffmpeg_path"`
}

// DefaultConfig returns the configuration matching the stock visualization:
// three bands over an 8192-sample Hann STFT with 6721-sample overlap,
// 720p circle rendering at 30 fps.
//
// The emphasis threshold (27/30) and background decay (0.9) are tuning
// values carried over from the reference renderer; there is no principled
// derivation behind them, which is why they live in config.
func DefaultConfig() *Config {
	return &Config{
		ChannelMode:       ChannelModeStereo,
		BinBoundaries:     []int{4, 37, 93, 371},
		WindowSize:        8192,
		Overlap:           6721,
		ZoomFloor:         0.25,
		ColorChanging:     false,
		EmphasisThreshold: 27.0 / 30.0,
		EmphasisHorizon:   7,
		Renderer:          RendererCircle,
		Width:             1280,
		Height:            720,
		FPS:               30,
		CircleWidth:       15,
		DecayFactor:       0.9,
		BandNames:         []string{"bass", "mid", "treble"},
		FFmpegPath:        "ffmpeg",
	}
}

// Validate checks configuration invariants common to all pipeline stages
func (c *Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("window size must be positive: %d", c.WindowSize)
	}
	if c.Overlap < 0 || c.Overlap >= c.WindowSize {
		return fmt.Errorf("overlap must be in 0..window size-1, got %d", c.Overlap)
	}
	if len(c.BinBoundaries) < 2 {
		return fmt.Errorf("need at least 2 bin boundaries, got %d", len(c.BinBoundaries))
	}
	if c.ZoomFloor < 0 || c.ZoomFloor >= 1 {
		return fmt.Errorf("zoom floor must be in [0, 1): %g", c.ZoomFloor)
	}
	if c.EmphasisThreshold < 0 || c.EmphasisThreshold > 1 {
		return fmt.Errorf("emphasis threshold must be in [0, 1]: %g", c.EmphasisThreshold)
	}
	if c.DecayFactor < 0 || c.DecayFactor > 1 {
		return fmt.Errorf("decay factor must be in [0, 1]: %g", c.DecayFactor)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive: %d", c.FPS)
	}
	switch c.ChannelMode {
	case ChannelModeMono, ChannelModeStereo:
	default:
		return fmt.Errorf("unknown channel mode: %q", c.ChannelMode)
	}
	switch c.Renderer {
	case RendererCircle, RendererBar:
	default:
		return fmt.Errorf("unknown renderer: %q", c.Renderer)
	}
	return nil
}

// HopSize returns the STFT hop in samples
func (c *Config) HopSize() int {
	return c.WindowSize - c.Overlap
}

// NumBands returns the number of frequency bands the boundaries define
func (c *Config) NumBands() int {
	return len(c.BinBoundaries) - 1
}
