package coverage

import (
	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/internal/blend"
)

// Atlas is the pre-rasterized monochrome glyph atlas: a single coverage
// byte (0..255) per texel, addressed row-major with the given row width.
type Atlas struct {
	Data      []byte
	RowStride int // atlas row width in bytes
}

func (a Atlas) at(x, y int) byte {
	i := y*a.RowStride + x
	if i < 0 || i >= len(a.Data) {
		return 0
	}
	return a.Data[i]
}

// Text evaluates the coverage of the glyph run [begin, end) of locs at
// destination pixel (x, y). The first location whose rectangle contains
// the pixel wins; later glyphs on the same line are never consulted for a
// pixel already covered (§4.3's short-circuit rule).
func Text(t command.Text, locs []command.TextLocation, begin, end int, atlas Atlas, x, y int) Sample {
	for i := begin; i < end; i++ {
		loc := locs[i]
		if x < int(loc.ImageX) || x >= int(loc.ImageX+loc.TextW) {
			continue
		}
		if y < int(loc.ImageY) || y >= int(loc.ImageY+loc.TextH) {
			continue
		}
		fx := x - int(loc.ImageX)
		fy := y - int(loc.ImageY)
		cov := atlas.at(fx+int(loc.TextX), fy)
		if cov == 0 {
			return Sample{}
		}
		alpha := blend.MulDiv255Exact(cov, t.Color.C3)
		if alpha == 0 {
			return Sample{}
		}
		return Sample{R: t.Color.C0, G: t.Color.C1, B: t.Color.C2, A: alpha}
	}
	return Sample{}
}
