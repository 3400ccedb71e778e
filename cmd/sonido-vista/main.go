package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-vista/logging"
	"github.com/RyanBlaney/sonido-vista/visualize"
)

const usage = `usage: sonido-vista <audio.wav> <mono:0|1> <silent_output.mp4> <final_output.mp4> <color_changing:0|1> [circle_width]`

// options is the validated form of the positional CLI arguments
type options struct {
	audioPath  string
	silentPath string
	finalPath  string
	config     *visualize.Config
}

// parseArgs validates the positional arguments and folds them into a
// visualization config. Boolean flags arrive as "0"/"1" and are turned into
// enumerated configuration here so nothing downstream branches on raw ints.
func parseArgs(args []string) (*options, error) {
	if len(args) != 5 && len(args) != 6 {
		return nil, fmt.Errorf("expected 5 or 6 arguments, got %d", len(args))
	}

	audioPath := args[0]
	if !strings.HasSuffix(audioPath, ".wav") {
		return nil, fmt.Errorf("audio input must have .wav extension: %s", audioPath)
	}

	mono, err := parseFlag(args[1], "mono")
	if err != nil {
		return nil, err
	}

	silentPath := args[2]
	if !strings.HasSuffix(silentPath, ".mp4") {
		return nil, fmt.Errorf("silent output must have .mp4 extension: %s", silentPath)
	}

	finalPath := args[3]
	if !strings.HasSuffix(finalPath, ".mp4") {
		return nil, fmt.Errorf("final output must have .mp4 extension: %s", finalPath)
	}

	colorChanging, err := parseFlag(args[4], "color_changing")
	if err != nil {
		return nil, err
	}

	config := visualize.DefaultConfig()
	config.ColorChanging = colorChanging
	if mono {
		config.ChannelMode = visualize.ChannelModeMono
	} else {
		config.ChannelMode = visualize.ChannelModeStereo
	}

	if len(args) == 6 {
		width, err := strconv.Atoi(args[5])
		if err != nil || width <= 0 {
			return nil, fmt.Errorf("circle_width must be a positive integer: %s", args[5])
		}
		config.CircleWidth = float64(width)
	}

	return &options{
		audioPath:  audioPath,
		silentPath: silentPath,
		finalPath:  finalPath,
		config:     config,
	}, nil
}

func parseFlag(arg, name string) (bool, error) {
	switch arg {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("%s must be 0 or 1, got %q", name, arg)
	}
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	pipeline, err := visualize.NewPipeline(opts.config)
	if err != nil {
		logging.Fatal(err, "Invalid configuration")
	}

	if err := pipeline.Run(opts.audioPath, opts.silentPath, opts.finalPath); err != nil {
		logging.Fatal(err, "Visualization failed", logging.Fields{
			"audio": opts.audioPath,
		})
	}
}
