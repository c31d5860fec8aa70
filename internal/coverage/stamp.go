package coverage

import "github.com/gogpu/cuosd/command"

// RGBAStamp nearest-samples an RGBA image stamp at destination pixel (x, y).
// No colorspace conversion is performed.
func RGBAStamp(s command.RGBASource, x, y int) Sample {
	rx, ry := x-int(s.Cx), y-int(s.Cy)
	if rx < 0 || rx >= int(s.Width) || ry < 0 || ry >= int(s.Height) {
		return Sample{}
	}
	i := (ry*int(s.Width) + rx) * 4
	return Sample{R: s.DSrc[i], G: s.DSrc[i+1], B: s.DSrc[i+2], A: s.DSrc[i+3]}
}

// NV12Stamp samples an NV12 image stamp at destination pixel (x, y). The
// returned Sample carries raw Y in R, U in G, V in B — no YUV to RGB
// conversion happens here or at the final blit: the NV12 commit consumes
// these channels as Y/U/V, and an RGB/RGBA commit writes them as-is — and
// its alpha is a
// chroma key: 0 if the (Y, U, V) triple matches the command's key exactly,
// otherwise the command's opaque output alpha.
func NV12Stamp(s command.NV12Source, x, y int) Sample {
	rx, ry := x-int(s.Cx), y-int(s.Cy)
	if rx < 0 || rx >= int(s.Width) || ry < 0 || ry >= int(s.Height) {
		return Sample{}
	}
	yy := s.DSrc0[ry*int(s.Width)+rx]

	ccx := rx &^ 1
	ccy := ry / 2
	ci := ccy*int(s.Width) + ccx
	u, v := s.DSrc1[ci], s.DSrc1[ci+1]

	alpha := s.TransA
	if yy == s.KeyY && u == s.KeyU && v == s.KeyV {
		alpha = 0
	}
	if alpha == 0 {
		return Sample{}
	}
	return Sample{R: yy, G: u, B: v, A: alpha}
}
