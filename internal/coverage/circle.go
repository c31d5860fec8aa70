package coverage

import (
	"math"

	"github.com/gogpu/cuosd/command"
)

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Circle evaluates the coverage of c at destination pixel (x, y): a filled
// disc or stroked annulus with a 1-pixel linear ramp at each edge.
func Circle(c command.Circle, x, y int) Sample {
	dx := float64(x) + 0.5 - float64(c.Cx)
	dy := float64(y) + 0.5 - float64(c.Cy)
	r := float32(math.Sqrt(dx*dx + dy*dy))

	var inner, outer float32
	if c.Thickness == -1 {
		inner, outer = 0, c.Radius
	} else {
		inner = c.Radius - float32(c.Thickness)/2
		outer = inner + float32(c.Thickness)
	}

	tIn := clamp01(r - (inner - 1))
	tOut := clamp01((outer + 1) - r)
	factor := min(tIn, tOut)
	if factor <= 0 {
		return Sample{}
	}

	alpha := uint8(float32(c.Color.C3) * factor)
	if alpha == 0 {
		return Sample{}
	}
	return Sample{R: c.Color.C0, G: c.Color.C1, B: c.Color.C2, A: alpha}
}
