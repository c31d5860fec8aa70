// Package kernel implements the two data-parallel passes over a destination
// surface: the composite pass (command.Stream -> surface, quad at a time)
// and the box-blur redaction pass. Both are realized as WorkerPool tasks
// instead of GPU threads, one task per unit of independent work — a quad
// row for composite, a blur rectangle for blur — mirroring the reference
// kernel's "one thread per quad"/"one block per rectangle" launch geometry
// without any of the quads or rectangles depending on one another.
//
// Grounded on render/software.go's destination-scanning dispatch loop,
// restructured from scanline-at-a-time to quad-at-a-time and parallelized
// with internal/parallel.WorkerPool instead of software.go's single
// goroutine.
package kernel

import (
	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/internal/blend"
	"github.com/gogpu/cuosd/internal/coverage"
	"github.com/gogpu/cuosd/internal/parallel"
	"github.com/gogpu/cuosd/plane"
)

var quadOffsets = [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// CompositeParams bundles everything one RunComposite call needs: the
// destination, the command stream, the text atlas, and the grid bounds.
type CompositeParams struct {
	Dst    plane.Descriptor
	Stream *command.Stream
	Atlas  coverage.Atlas

	// AABB is the union bounding box of every non-blur command, supplied by
	// the caller (dispatch.Launch forwards spec.md §6's global AABB
	// unchanged); it sizes the composite grid and is never recomputed here.
	AABB command.Bounds

	// RotateMSAA selects the specialization of §4.8/§9: when false, every
	// Rectangle's Interpolation flag is ignored (no 4x multisample AA),
	// collapsing the rectangle path to its axis-aligned/no-AA variant
	// regardless of what the command stream requests — the caller is
	// expected to only set Interpolation on commands when this is true.
	RotateMSAA bool
}

// RunComposite evaluates every quad in the grid implied by p.AABB, rounded
// to even pixel boundaries per §4.8, against every command in p.Stream, and
// commits non-transparent quads to p.Dst. Pool may be nil, in which case a
// pool sized to GOMAXPROCS is created and closed for this call only.
func RunComposite(p CompositeParams, pool *parallel.WorkerPool) {
	startX, startY, endX, endY := quadGrid(p.AABB)
	if startX >= endX || startY >= endY {
		return
	}

	owned := pool
	if owned == nil {
		owned = parallel.NewWorkerPool(0)
		defer owned.Close()
	}

	var tasks []func()
	for iy := startY; iy < endY; iy += 2 {
		iy := iy
		tasks = append(tasks, func() {
			for ix := startX; ix < endX; ix += 2 {
				compositeQuad(p, ix, iy)
			}
		})
	}
	owned.ExecuteAll(tasks)
}

// quadGrid rounds aabb down/up to even pixel boundaries, per §4.8's "launch
// grid ... rounded down to even pixel boundaries" (the end is rounded up so
// the grid still fully covers the AABB; quads only ever start on even
// coordinates).
func quadGrid(aabb command.Bounds) (startX, startY, endX, endY int) {
	if aabb.Right < aabb.Left || aabb.Bottom < aabb.Top {
		return 0, 0, 0, 0
	}
	startX = int(aabb.Left) &^ 1
	startY = int(aabb.Top) &^ 1
	endX = int(aabb.Right) + 1
	if endX%2 != 0 {
		endX++
	}
	endY = int(aabb.Bottom) + 1
	if endY%2 != 0 {
		endY++
	}
	return
}

// compositeQuad runs the full per-thread algorithm of §4.8 for the quad
// whose top-left destination pixel is (ix, iy): bail if off-image, walk the
// command list in order accumulating a Quad, and commit once at the end.
func compositeQuad(p CompositeParams, ix, iy int) {
	w, h := p.Dst.Width(), p.Dst.Height()
	if ix >= w || iy >= h {
		return
	}

	acc := blend.NewQuad()
	textLine := 0

	for i := 0; i < p.Stream.NumCommands(); i++ {
		off := p.Stream.Offsets[i]
		hdr := command.ReadHeader(p.Stream.Data, off)

		if hdr.Type == command.TypeText {
			begin := p.Stream.LineLocationBase[textLine]
			end := p.Stream.LineLocationBase[textLine+1]
			textLine++
			if !hdr.Bounds.Contains(int32(ix), int32(iy), 2) {
				continue
			}
			t := command.ReadText(p.Stream.Data, off)
			for lane, o := range quadOffsets {
				px, py := ix+o[0], iy+o[1]
				s := coverage.Text(t, p.Stream.TextLocations, int(begin), int(end), p.Atlas, px, py)
				acc.Composite(lane, s)
			}
			continue
		}

		if !hdr.Bounds.Contains(int32(ix), int32(iy), 2) {
			continue
		}

		switch hdr.Type {
		case command.TypeRectangle:
			r := command.ReadRectangle(p.Stream.Data, off)
			if !p.RotateMSAA {
				r.Interpolation = false
			}
			for lane, o := range quadOffsets {
				acc.Composite(lane, coverage.Rectangle(r, ix+o[0], iy+o[1]))
			}
		case command.TypeCircle:
			c := command.ReadCircle(p.Stream.Data, off)
			for lane, o := range quadOffsets {
				acc.Composite(lane, coverage.Circle(c, ix+o[0], iy+o[1]))
			}
		case command.TypeSegment:
			s := command.ReadSegment(p.Stream.Data, off)
			for lane, o := range quadOffsets {
				acc.Composite(lane, coverage.Segment(s, ix+o[0], iy+o[1]))
			}
		case command.TypeRGBASource:
			r := command.ReadRGBASource(p.Stream.Data, off)
			for lane, o := range quadOffsets {
				acc.Composite(lane, coverage.RGBAStamp(r, ix+o[0], iy+o[1]))
			}
		case command.TypeNV12Source:
			n := command.ReadNV12Source(p.Stream.Data, off)
			for lane, o := range quadOffsets {
				acc.Composite(lane, coverage.NV12Stamp(n, ix+o[0], iy+o[1]))
			}
		}
	}

	if !acc.AnyCoverage() {
		return
	}
	commit(p.Dst, ix, iy, acc)
}

// commit realizes §4.7's final blit: RGB/RGBA paths source-over directly in
// the surface's native channels; NV12 paths write luma per pixel and a
// single coverage-weighted chroma sample per quad. The destination's
// concrete type selects the path, since the commit law genuinely differs
// per format rather than being expressible through plane.Descriptor alone.
func commit(dst plane.Descriptor, ix, iy int, acc blend.Quad) {
	switch d := dst.(type) {
	case plane.LumaChromaWriter:
		commitNV12(d, ix, iy, acc)
	case interface {
		plane.RGBWriter
		plane.AlphaWriter
	}:
		commitRGBA(d, ix, iy, acc)
	case plane.RGBWriter:
		commitRGB(d, ix, iy, acc)
	}
}

func commitRGB(dst plane.RGBWriter, ix, iy int, acc blend.Quad) {
	w, h := dst.Width(), dst.Height()
	for lane, o := range quadOffsets {
		x, y := ix+o[0], iy+o[1]
		if x >= w || y >= h {
			continue
		}
		dst.SetRGB(x, y, blend.Over(dst.GetRGB(x, y), acc[lane]))
	}
}

func commitRGBA(dst interface {
	plane.RGBWriter
	plane.AlphaWriter
}, ix, iy int, acc blend.Quad) {
	w, h := dst.Width(), dst.Height()
	for lane, o := range quadOffsets {
		x, y := ix+o[0], iy+o[1]
		if x >= w || y >= h {
			continue
		}
		out := blend.Over(dst.GetRGB(x, y), acc[lane])
		dst.SetRGB(x, y, out)
		dst.SetAlpha(x, y, out.A)
	}
}

// commitNV12 writes luma independently per pixel and a single chroma sample
// shared by the whole quad, per §4.7: the chroma U/V values are a
// coverage-weighted mean of the four foreground G/B channels (lanes that
// received no coverage contribute zero weight, not a zero value diluting
// the average), and the blended alpha is the plain average of the four
// foreground alphas, shifted right by 2.
func commitNV12(dst plane.LumaChromaWriter, ix, iy int, acc blend.Quad) {
	w, h := dst.Width(), dst.Height()

	var numU, numV, sumA int
	for _, c := range acc {
		numU += int(c.G) * int(c.A)
		numV += int(c.B) * int(c.A)
		sumA += int(c.A)
	}

	for lane, o := range quadOffsets {
		x, y := ix+o[0], iy+o[1]
		if x >= w || y >= h {
			continue
		}
		fg := acc[lane]
		dst.SetY(x, y, blend.LumaOver(dst.GetY(x, y), fg.R, fg.A))
	}

	if sumA == 0 {
		return
	}
	meanU := numU / sumA
	meanV := numV / sumA
	meanA := uint8(sumA >> 2)

	u, v := dst.GetUV(ix, iy)
	dst.SetUV(ix, iy, blend.LumaOver(u, uint8(meanU), meanA), blend.LumaOver(v, uint8(meanV), meanA))
}
