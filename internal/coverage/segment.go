package coverage

import (
	"math"

	"github.com/gogpu/cuosd/command"
)

const segFixedBits = 11
const segFixedScale = 1 << segFixedBits // 2048

// binarizedMaskSample samples the raw float mask at (mx, my), returning 127 if the
// value exceeds the command's threshold, 0 otherwise (0 outside bounds).
func binarizedMaskSample(s command.Segment, mx, my int) int32 {
	if mx < 0 || mx >= int(s.SegWidth) || my < 0 || my >= int(s.SegHeight) {
		return 0
	}
	if s.DSeg[my*int(s.SegWidth)+mx] > s.SegThreshold {
		return 127
	}
	return 0
}

// Segment evaluates the coverage of s at destination pixel (x, y): the
// source-space position is bilinearly interpolated between four binarized
// mask samples (each 0 or 127) using 11-bit fixed-point weights, so the
// alpha lies in 0..127 and is thresholded before interpolation rather than
// a true bilinear blend over the raw float mask. The mapping uses the
// absolute destination (x, y); the command's Bounds are not subtracted.
func Segment(s command.Segment, x, y int) Sample {
	srcX := (float64(x)+0.5)*float64(s.ScaleX) - 0.5
	srcY := (float64(y)+0.5)*float64(s.ScaleY) - 0.5

	ix0 := int(math.Floor(srcX))
	iy0 := int(math.Floor(srcY))
	fx := srcX - float64(ix0)
	fy := srcY - float64(iy0)

	wfx := int32(fx * segFixedScale)
	wfy := int32(fy * segFixedScale)

	v00 := binarizedMaskSample(s, ix0, iy0)
	v10 := binarizedMaskSample(s, ix0+1, iy0)
	v01 := binarizedMaskSample(s, ix0, iy0+1)
	v11 := binarizedMaskSample(s, ix0+1, iy0+1)

	sum := v00*(segFixedScale-wfx)*(segFixedScale-wfy) +
		v10*wfx*(segFixedScale-wfy) +
		v01*(segFixedScale-wfx)*wfy +
		v11*wfx*wfy

	alpha := sum >> (2 * segFixedBits)
	if alpha <= 0 {
		return Sample{}
	}
	if alpha > 127 {
		alpha = 127
	}
	return Sample{R: s.Color.C0, G: s.Color.C1, B: s.Color.C2, A: uint8(alpha)}
}
