// Package blend implements the fixed-point compositing math shared by every
// primitive coverage evaluator and by the final surface commit.
//
// The compositing formulas (Over, LumaOver) use 8-bit shift approximations
// (>>8), matching the reference
// kernel's fixed-point arithmetic exactly; refactoring any of this to
// floating point changes rounding at the pixel level and is deliberately
// avoided (see SPEC_FULL.md §4.6/§4.7).
package blend

// Color is a straight (non-premultiplied) 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Quad is the 4-pixel foreground accumulator a composite thread carries
// across the command loop for one 2x2 destination quad. It starts fully
// transparent and is updated in command order by Composite.
type Quad [4]Color

// NewQuad returns a quad accumulator initialized fully transparent, per the
// "w = 0 on all four pixels" invariant.
func NewQuad() Quad {
	return Quad{}
}

// Composite blends src over lane i of the accumulator using Over. A source
// alpha of 0 leaves the lane untouched (no-coverage primitives are cheap).
func (q *Quad) Composite(i int, src Color) {
	if src.A == 0 {
		return
	}
	q[i] = Over(q[i], src)
}

// Over composes src over dst using the source-over law:
//
//	out.a = ((dst.a * (255 - src.a)) >> 8) + src.a
//	out.c = ( (dst.c * dst.a * (255 - src.a)) >> 8 + c * src.a ) / out.a   [guarded]
//
// This single formula serves two roles in the kernel: accumulating a
// primitive's coverage into the per-quad Quad accumulator, and the final
// commit of that accumulator onto the destination surface — the destination
// plays the role of "dst" in both cases (for RGB, callers pass dst.A = 255,
// since the format carries no destination alpha). A src.A of 0 returns dst
// unchanged.
func Over(dst, src Color) Color {
	if src.A == 0 {
		return dst
	}
	ba := uint32(dst.A)
	fa := uint32(src.A)
	invFa := uint32(inv255(src.A))

	outA := addClamp(byte((ba*invFa)>>8), src.A)

	return Color{
		R: divByOutA(uint32(dst.R)*ba*invFa>>8+uint32(src.R)*fa, outA),
		G: divByOutA(uint32(dst.G)*ba*invFa>>8+uint32(src.G)*fa, outA),
		B: divByOutA(uint32(dst.B)*ba*invFa>>8+uint32(src.B)*fa, outA),
		A: outA,
	}
}

// divByOutA divides the unmultiplied channel accumulation by the quad's new
// alpha, guarding the division-by-zero case spec §4.6 calls out explicitly.
func divByOutA(numerator uint32, outA byte) uint8 {
	if outA == 0 {
		return 0
	}
	v := numerator / uint32(outA)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// AnyCoverage reports whether any lane of the quad received non-zero alpha,
// the test the composite kernel uses to decide whether a commit is needed at
// all (§4.7: "if the accumulator is fully transparent... skip").
func (q Quad) AnyCoverage() bool {
	for _, c := range q {
		if c.A != 0 {
			return true
		}
	}
	return false
}

// LumaOver blends a single luma (or any single-channel) sample using the
// same >>8 law as Over, for the NV12 Y-plane commit of §4.7, which writes
// each of the four pixels independently:
//
//	(fg.r * fg.a + (255 - fg.a) * dst_y) >> 8
//
// A fgA of 0 returns dstY unchanged.
func LumaOver(dstY, fgR, fgA byte) byte {
	if fgA == 0 {
		return dstY
	}
	return byte((uint32(fgR)*uint32(fgA) + uint32(inv255(fgA))*uint32(dstY)) >> 8)
}
