package kernel

import (
	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/internal/blend"
	"github.com/gogpu/cuosd/internal/parallel"
	"github.com/gogpu/cuosd/internal/yuv"
	"github.com/gogpu/cuosd/plane"
)

// tileDim is the staging tile's side length: 32, matching the reference
// kernel's 32x32 shared-memory block (§4.9). Inspired by (but not sharing
// code with) the teacher's 64x64 Tile: that type's dynamic edge sizing,
// interleaved RGBA byte layout, and pooling/dirty-tracking machinery serve a
// persistent multi-frame tile cache, which a single-pass blur rectangle has
// no use for — stagingTile below is a fixed-size, separate-channel block
// written fresh for each BoxBlur command.
const tileDim = 32

// stagingTile is one blur rectangle's shared-memory-equivalent staging
// block: a fixed 32x32 RGB grid regardless of the rectangle's actual pixel
// extent, resampled in (phase 1) and back out (phase 3).
type stagingTile struct {
	r, g, b [tileDim * tileDim]uint8
}

func (t *stagingTile) at(tx, ty int) (r, g, b uint8) {
	i := ty*tileDim + tx
	return t.r[i], t.g[i], t.b[i]
}

func (t *stagingTile) set(tx, ty int, r, g, b uint8) {
	i := ty*tileDim + tx
	t.r[i], t.g[i], t.b[i] = r, g, b
}

// BlurParams bundles one RunBlur call's inputs.
type BlurParams struct {
	Dst    plane.Descriptor
	Stream *command.Stream
}

// RunBlur applies every BoxBlur command in p.Stream.BlurOffsets to p.Dst, one
// WorkerPool task per rectangle (the reference kernel's "one thread block
// per blur rectangle", §4.9). Pool may be nil, in which case a pool sized to
// GOMAXPROCS is created and closed for this call only.
func RunBlur(p BlurParams, pool *parallel.WorkerPool) {
	n := p.Stream.NumBlurCommands()
	if n == 0 {
		return
	}

	owned := pool
	if owned == nil {
		owned = parallel.NewWorkerPool(0)
		defer owned.Close()
	}

	tasks := make([]func(), 0, n)
	for i := 0; i < n; i++ {
		off := p.Stream.BlurOffsets[i]
		tasks = append(tasks, func() {
			blurRect(p.Dst, command.ReadBoxBlur(p.Stream.BlurData, off))
		})
	}
	owned.ExecuteAll(tasks)
}

// blurRect runs the three phases of §4.9 for one blur rectangle: stage into
// a 32x32 tile, box-mean filter in place, resample back out.
func blurRect(dst plane.Descriptor, b command.BoxBlur) {
	w, h := dst.Width(), dst.Height()
	left, top := int(b.Bounds.Left), int(b.Bounds.Top)
	right, bottom := int(b.Bounds.Right), int(b.Bounds.Bottom)
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > w-1 {
		right = w - 1
	}
	if bottom > h-1 {
		bottom = h - 1
	}
	boxW, boxH := right-left+1, bottom-top+1
	if boxW <= 0 || boxH <= 0 {
		return
	}

	staged := stageTile(dst, left, top, boxW, boxH)
	filtered := filterTile(staged, int(b.KernelSize))
	resampleTile(dst, filtered, left, top, boxW, boxH)
}

// stageTile implements phase 1: each of the 32x32 staging cells samples the
// destination at normalized coordinates (box_left + tx/32*boxW, box_top +
// ty/32*boxH), nearest-neighbor, through Descriptor.GetRGB — which is where
// YUV->RGB conversion happens for NV12 destinations.
func stageTile(dst plane.Descriptor, left, top, boxW, boxH int) *stagingTile {
	t := &stagingTile{}
	for ty := 0; ty < tileDim; ty++ {
		sy := top + ty*boxH/tileDim
		for tx := 0; tx < tileDim; tx++ {
			sx := left + tx*boxW/tileDim
			c := dst.GetRGB(sx, sy)
			t.set(tx, ty, c.R, c.G, c.B)
		}
	}
	return t
}

// filterTile implements phase 2: the mean of the kernelSize x kernelSize
// window centered at each tile cell, clipped to the tile (edge cells see
// fewer neighbors, dividing by the actual valid-sample count n rather than
// kernelSize^2, per §4.9's "integer division by the per-pixel valid-sample
// count").
func filterTile(src *stagingTile, kernelSize int) *stagingTile {
	radius := kernelSize / 2
	out := &stagingTile{}
	for ty := 0; ty < tileDim; ty++ {
		for tx := 0; tx < tileDim; tx++ {
			var sumR, sumG, sumB, n int
			for dy := -radius; dy <= radius; dy++ {
				yy := ty + dy
				if yy < 0 || yy >= tileDim {
					continue
				}
				for dx := -radius; dx <= radius; dx++ {
					xx := tx + dx
					if xx < 0 || xx >= tileDim {
						continue
					}
					r, g, b := src.at(xx, yy)
					sumR += int(r)
					sumG += int(g)
					sumB += int(b)
					n++
				}
			}
			out.set(tx, ty, uint8(sumR/n), uint8(sumG/n), uint8(sumB/n))
		}
	}
	return out
}

// resampleTile implements phase 3: overwrite every destination pixel in
// [left, left+boxW) x [top, top+boxH) with its nearest-in-tile-space
// filtered sample. For NV12 destinations the filtered RGB is converted back
// to YUV (BT.601); the shared chroma sample for each 2x2 luma block is
// written once, from the block's top-left pixel, since a single blur
// rectangle's neighborhood is already smoothed enough that any one corner
// of the block is representative.
func resampleTile(dst plane.Descriptor, tile *stagingTile, left, top, boxW, boxH int) {
	switch d := dst.(type) {
	case plane.LumaChromaWriter:
		resampleNV12(d, tile, left, top, boxW, boxH)
	case plane.RGBWriter:
		resampleRGB(d, tile, left, top, boxW, boxH)
	}
}

func resampleRGB(dst plane.RGBWriter, tile *stagingTile, left, top, boxW, boxH int) {
	w, h := dst.Width(), dst.Height()
	for y := top; y < top+boxH; y++ {
		if y < 0 || y >= h {
			continue
		}
		ty := (y - top) * tileDim / boxH
		for x := left; x < left+boxW; x++ {
			if x < 0 || x >= w {
				continue
			}
			tx := (x - left) * tileDim / boxW
			r, g, b := tile.at(tx, ty)
			dst.SetRGB(x, y, blend.Color{R: r, G: g, B: b, A: 255})
		}
	}
}

func resampleNV12(dst plane.LumaChromaWriter, tile *stagingTile, left, top, boxW, boxH int) {
	w, h := dst.Width(), dst.Height()
	for y := top; y < top+boxH; y++ {
		if y < 0 || y >= h {
			continue
		}
		ty := (y - top) * tileDim / boxH
		for x := left; x < left+boxW; x++ {
			if x < 0 || x >= w {
				continue
			}
			tx := (x - left) * tileDim / boxW
			r, g, b := tile.at(tx, ty)
			yy, u, v := yuv.RGBToYUV(int(r), int(g), int(b))
			dst.SetY(x, y, yy)
			if x&1 == 0 && y&1 == 0 {
				dst.SetUV(x, y, u, v)
			}
		}
	}
}
