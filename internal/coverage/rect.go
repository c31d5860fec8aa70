package coverage

import (
	"github.com/gogpu/cuosd/command"
)

type quad [4][2]float32

// inside reports whether p lies strictly inside the quadrilateral with
// corners in winding order, using the left-handed cross-product test of
// §4.1: the signed cross product of each edge vector with the vector to p
// must be strictly negative on every edge. In destination pixel space
// (x right, y down), an unrotated rectangle's corners must be supplied as
// top-left, bottom-left, bottom-right, top-right for this test to accept
// its interior; a rotation is just a different, still-consistent, ordering
// of the same four corners.
func (q quad) inside(px, py float32) bool {
	for i := 0; i < 4; i++ {
		a := q[i]
		b := q[(i+1)%4]
		ex, ey := b[0]-a[0], b[1]-a[1]
		tx, ty := px-a[0], py-a[1]
		cross := ex*ty - ey*tx
		if cross >= 0 {
			return false
		}
	}
	return true
}

var msaaOffsets = [4][2]float32{{0.25, 0.25}, {0.25, -0.25}, {-0.25, 0.25}, {-0.25, -0.25}}

// Rectangle evaluates the coverage of r at destination pixel (x, y).
func Rectangle(r command.Rectangle, x, y int) Sample {
	outer := quad{{r.Ax1, r.Ay1}, {r.Bx1, r.By1}, {r.Cx1, r.Cy1}, {r.Dx1, r.Dy1}}
	filled := r.Thickness == -1
	var inner quad
	if !filled {
		inner = quad{{r.Ax2, r.Ay2}, {r.Bx2, r.By2}, {r.Cx2, r.Cy2}, {r.Dx2, r.Dy2}}
	}

	hit := func(px, py float32) bool {
		if !outer.inside(px, py) {
			return false
		}
		return filled || !inner.inside(px, py)
	}

	cx, cy := float32(x)+0.5, float32(y)+0.5

	if !r.Interpolation {
		if !hit(cx, cy) {
			return Sample{}
		}
		return Sample{R: r.Color.C0, G: r.Color.C1, B: r.Color.C2, A: r.Color.C3}
	}

	hits := 0
	for _, off := range msaaOffsets {
		if hit(cx+off[0], cy+off[1]) {
			hits++
		}
	}
	if hits == 0 {
		return Sample{}
	}
	alpha := uint8((uint32(r.Color.C3) * uint32(hits)) / 4)
	if alpha == 0 {
		return Sample{}
	}
	return Sample{R: r.Color.C0, G: r.Color.C1, B: r.Color.C2, A: alpha}
}
