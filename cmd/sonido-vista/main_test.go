package main

import (
	"testing"

	"github.com/RyanBlaney/sonido-vista/visualize"
)

func TestParseArgs_Full(t *testing.T) {
	opts, err := parseArgs([]string{"song.wav", "0", "silent.mp4", "final.mp4", "1", "20"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}

	if opts.audioPath != "song.wav" {
		t.Errorf("audioPath: got %q", opts.audioPath)
	}
	if opts.silentPath != "silent.mp4" || opts.finalPath != "final.mp4" {
		t.Errorf("output paths: got %q, %q", opts.silentPath, opts.finalPath)
	}
	if opts.config.ChannelMode != visualize.ChannelModeStereo {
		t.Errorf("ChannelMode: got %q, want stereo", opts.config.ChannelMode)
	}
	if !opts.config.ColorChanging {
		t.Error("ColorChanging: got false, want true")
	}
	if opts.config.CircleWidth != 20 {
		t.Errorf("CircleWidth: got %g, want 20", opts.config.CircleWidth)
	}
}

func TestParseArgs_DefaultCircleWidth(t *testing.T) {
	opts, err := parseArgs([]string{"song.wav", "1", "silent.mp4", "final.mp4", "0"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}

	if opts.config.ChannelMode != visualize.ChannelModeMono {
		t.Errorf("ChannelMode: got %q, want mono", opts.config.ChannelMode)
	}
	if opts.config.ColorChanging {
		t.Error("ColorChanging: got true, want false")
	}
	if opts.config.CircleWidth != 15 {
		t.Errorf("CircleWidth: got %g, want default 15", opts.config.CircleWidth)
	}
}

func TestParseArgs_Rejections(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"too few", []string{"song.wav", "0", "silent.mp4"}},
		{"too many", []string{"song.wav", "0", "silent.mp4", "final.mp4", "0", "15", "extra"}},
		{"bad audio extension", []string{"song.mp3", "0", "silent.mp4", "final.mp4", "0"}},
		{"bad silent extension", []string{"song.wav", "0", "silent.avi", "final.mp4", "0"}},
		{"bad final extension", []string{"song.wav", "0", "silent.mp4", "final.mov", "0"}},
		{"bad mono flag", []string{"song.wav", "2", "silent.mp4", "final.mp4", "0"}},
		{"bad color flag", []string{"song.wav", "0", "silent.mp4", "final.mp4", "yes"}},
		{"bad circle width", []string{"song.wav", "0", "silent.mp4", "final.mp4", "0", "-3"}},
		{"non-numeric width", []string{"song.wav", "0", "silent.mp4", "final.mp4", "0", "wide"}},
	}

	for _, tc := range cases {
		if _, err := parseArgs(tc.args); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}
