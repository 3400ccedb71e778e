package visualize

import (
	"fmt"
	"image"
	"io"
	"math/rand"

	"github.com/fogleman/gg"
)

// Ratio calculates, given weights a and b, the balance point between them:
// 0 when all the weight sits on a's side, 1 when it sits on b's. Two zero
// weights balance in the middle.
func Ratio(a, b float64) float64 {
	if a+b == 0 {
		return 0.5
	}
	return b / (a + b)
}

// circleSequence renders one ring per band. In stereo the ring's horizontal
// position tracks the left/right balance of the band and its radius the
// combined energy; in mono the rings stay centered.
type circleSequence struct {
	config   *Config
	left     [][]float64
	right    [][]float64 // nil in mono
	emphasis map[int]bool
	bg       RGB
	rng      *rand.Rand
	frame    int
	total    int
}

// NewCircleSequence creates the circle-mode frame sequence. right is nil for
// mono rendering; in stereo both bins arrays must agree on band and frame
// counts. emphasis may be nil when color changing is disabled.
func NewCircleSequence(config *Config, left, right [][]float64, emphasis map[int]bool) (FrameSequence, error) {
	if len(left) == 0 || len(left[0]) == 0 {
		return nil, fmt.Errorf("empty bins array")
	}
	if right != nil {
		if len(right) != len(left) {
			return nil, fmt.Errorf("stereo band count mismatch: left %d, right %d", len(left), len(right))
		}
		for i := range left {
			if len(left[i]) != len(right[i]) {
				return nil, fmt.Errorf("stereo frame count mismatch in band %d: left %d, right %d",
					i, len(left[i]), len(right[i]))
			}
		}
	}

	return &circleSequence{
		config:   config,
		left:     left,
		right:    right,
		emphasis: emphasis,
		bg:       RGB{R: 1, G: 1, B: 1},
		rng:      rand.New(rand.NewSource(rand.Int63())),
		total:    len(left[0]),
	}, nil
}

func (s *circleSequence) Len() int {
	return s.total
}

func (s *circleSequence) Next() (*image.RGBA, error) {
	if s.frame >= s.total {
		return nil, io.EOF
	}

	if s.config.ColorChanging && s.emphasis[s.frame] {
		s.bg = RGB{R: s.rng.Float64(), G: s.rng.Float64(), B: s.rng.Float64()}
	} else {
		d := s.config.DecayFactor
		s.bg = RGB{R: s.bg.R * d, G: s.bg.G * d, B: s.bg.B * d}
	}

	w := float64(s.config.Width)
	h := float64(s.config.Height)

	dc := gg.NewContext(s.config.Width, s.config.Height)
	dc.SetRGB(s.bg.R, s.bg.G, s.bg.B)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	for j := range s.left {
		var cx, radius float64
		if s.right == nil {
			cx = 0.5
			radius = s.left[j][s.frame] / 2
		} else {
			l := s.left[j][s.frame]
			r := s.right[j][s.frame]
			cx = Ratio(l, r)
			radius = (l + r) / 4
		}

		c := paletteColor(j)
		dc.SetRGBA(c.R, c.G, c.B, 0.6)
		dc.SetLineWidth(s.config.CircleWidth)
		dc.DrawCircle(cx*w, h/2, radius*h)
		dc.Stroke()
	}

	s.frame++

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected image type from drawing context")
	}
	return img, nil
}
