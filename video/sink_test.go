package video

import (
	"slices"
	"testing"
)

func TestValidateSinkConfig(t *testing.T) {
	valid := DefaultSinkConfig("out.mp4")
	if err := ValidateSinkConfig(valid); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*SinkConfig)
	}{
		{"wrong extension", func(c *SinkConfig) { c.OutputPath = "out.mkv" }},
		{"no extension", func(c *SinkConfig) { c.OutputPath = "out" }},
		{"zero width", func(c *SinkConfig) { c.Width = 0 }},
		{"negative height", func(c *SinkConfig) { c.Height = -1 }},
		{"zero fps", func(c *SinkConfig) { c.FPS = 0 }},
	}

	for _, tc := range cases {
		cfg := DefaultSinkConfig("out.mp4")
		tc.mutate(cfg)
		if err := ValidateSinkConfig(cfg); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}

	if err := ValidateSinkConfig(nil); err == nil {
		t.Error("nil config: expected error, got nil")
	}
}

func TestBuildSinkArgs(t *testing.T) {
	cfg := &SinkConfig{
		FFmpegPath: "ffmpeg",
		Width:      1280,
		Height:     720,
		FPS:        30,
		OutputPath: "silent.mp4",
	}

	args := BuildSinkArgs(cfg)

	for _, want := range []string{"rawvideo", "rgba", "1280x720", "30", "-an", "libx264", "yuv420p", "-y"} {
		if !slices.Contains(args, want) {
			t.Errorf("missing %q in args: %v", want, args)
		}
	}
	if args[len(args)-1] != "silent.mp4" {
		t.Errorf("output not last: %v", args)
	}

	// Raw frames come from stdin
	if !slices.Contains(args, "-") {
		t.Errorf("missing stdin input marker: %v", args)
	}
}
