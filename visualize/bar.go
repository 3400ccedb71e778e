package visualize

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Relative bar geometry: each band gets an equal horizontal slot, the bar
// fills barSlotFraction of it, and labels sit in the bottom margin.
const (
	barSlotFraction  = 0.4
	barBottomMargin  = 40.0
	barTopMargin     = 20.0
	barLabelFontSize = 18.0
)

var barColor = RGB{R: 0, G: 0, B: 1}

// barSequence renders one bar per band, height proportional to the bin value,
// with a band-name label under each bar.
type barSequence struct {
	config *Config
	bins   [][]float64
	names  []string
	face   font.Face
	frame  int
	total  int
}

// NewBarSequence creates the bar-mode frame sequence. names labels the bands
// and must have one entry per band.
func NewBarSequence(config *Config, bins [][]float64, names []string) (FrameSequence, error) {
	if len(bins) == 0 || len(bins[0]) == 0 {
		return nil, fmt.Errorf("empty bins array")
	}
	if len(names) != len(bins) {
		return nil, fmt.Errorf("band name count %d does not match band count %d", len(names), len(bins))
	}

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing label font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: barLabelFontSize})

	return &barSequence{
		config: config,
		bins:   bins,
		names:  names,
		face:   face,
		total:  len(bins[0]),
	}, nil
}

func (s *barSequence) Len() int {
	return s.total
}

func (s *barSequence) Next() (*image.RGBA, error) {
	if s.frame >= s.total {
		return nil, io.EOF
	}

	w := float64(s.config.Width)
	h := float64(s.config.Height)
	plotHeight := h - barBottomMargin - barTopMargin
	slot := w / float64(len(s.bins))
	barWidth := slot * barSlotFraction

	dc := gg.NewContext(s.config.Width, s.config.Height)
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetFontFace(s.face)

	for j := range s.bins {
		value := s.bins[j][s.frame]
		barHeight := value * plotHeight
		x := float64(j)*slot + (slot-barWidth)/2
		y := h - barBottomMargin - barHeight

		dc.SetRGB(barColor.R, barColor.G, barColor.B)
		dc.DrawRectangle(x, y, barWidth, barHeight)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(s.names[j], float64(j)*slot+slot/2, h-barBottomMargin/2, 0.5, 0.5)
	}

	s.frame++

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected image type from drawing context")
	}
	return img, nil
}
