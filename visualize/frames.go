package visualize

import (
	"image"
)

// FrameSequence is a finite, forward-only producer of rendered frames in
// presentation order. Next returns io.EOF after the last frame. A sequence is
// never rewound; the returned image is owned by the caller.
type FrameSequence interface {
	Next() (*image.RGBA, error)
	Len() int
}

// ringPalette is the color cycle shared by both renderer variants
var ringPalette = []RGB{
	{R: 1, G: 0, B: 1}, // magenta
	{R: 1, G: 1, B: 0}, // yellow
	{R: 0, G: 1, B: 1}, // cyan
	{R: 1, G: 0, B: 0}, // red
	{R: 0, G: 1, B: 0}, // green
	{R: 0, G: 0, B: 1}, // blue
}

func paletteColor(i int) RGB {
	return ringPalette[i%len(ringPalette)]
}
