package transcode

import (
	"slices"
	"testing"
)

func TestMuxerBuildArgs(t *testing.T) {
	m := NewMuxer(nil)
	args := m.BuildArgs("silent.mp4", "song.wav", "final.mp4")

	// Video stream from the first input, audio from the second
	videoIdx := slices.Index(args, "silent.mp4")
	audioIdx := slices.Index(args, "song.wav")
	if videoIdx == -1 || audioIdx == -1 || videoIdx > audioIdx {
		t.Errorf("input order wrong: %v", args)
	}

	if !slices.Contains(args, "-y") {
		t.Errorf("missing overwrite flag: %v", args)
	}
	if args[len(args)-1] != "final.mp4" {
		t.Errorf("output not last: %v", args)
	}

	mapValues := []string{}
	for i, a := range args {
		if a == "-map" && i+1 < len(args) {
			mapValues = append(mapValues, args[i+1])
		}
	}
	if !slices.Equal(mapValues, []string{"0:v", "1:a"}) {
		t.Errorf("stream mapping: got %v, want [0:v 1:a]", mapValues)
	}
}

func TestNewMuxer_DefaultConfig(t *testing.T) {
	m := NewMuxer(nil)
	if m.config.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath: got %q, want ffmpeg", m.config.FFmpegPath)
	}
	if m.config.Timeout <= 0 {
		t.Errorf("Timeout: got %v, want positive", m.config.Timeout)
	}
}
