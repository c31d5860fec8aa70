package coverage

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/cuosd/command"
	"golang.org/x/image/draw"
)

// buildRGBAFixture renders a two-color checkerboard at srcSize and
// nearest-neighbor-scales it to dstSize, the same x/image/draw path the
// teacher's pixmap tooling uses to produce golden test fixtures, so
// RGBAStamp is exercised against a realistic decoded-and-resampled buffer
// rather than a hand-packed byte slice.
func buildRGBAFixture(srcSize, dstSize int) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, srcSize, srcSize))
	for y := 0; y < srcSize; y++ {
		for x := 0; x < srcSize; x++ {
			if (x+y)%2 == 0 {
				src.Set(x, y, color.RGBA{R: 200, G: 20, B: 20, A: 255})
			} else {
				src.Set(x, y, color.RGBA{R: 20, G: 20, B: 200, A: 255})
			}
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstSize, dstSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// TestRGBAStampSamplesDrawScaledFixture confirms RGBAStamp's nearest-sample
// addressing agrees with the pixels x/image/draw actually produced, pixel
// for pixel, once laid out as an RGBASource command's DSrc buffer.
func TestRGBAStampSamplesDrawScaledFixture(t *testing.T) {
	fixture := buildRGBAFixture(4, 8)

	s := command.RGBASource{
		Cx: 3, Cy: 5, Width: int32(fixture.Rect.Dx()), Height: int32(fixture.Rect.Dy()),
		DSrc: fixture.Pix,
	}

	for fy := 0; fy < fixture.Rect.Dy(); fy++ {
		for fx := 0; fx < fixture.Rect.Dx(); fx++ {
			want := fixture.RGBAAt(fx, fy)
			got := RGBAStamp(s, int(s.Cx)+fx, int(s.Cy)+fy)
			if got.R != want.R || got.G != want.G || got.B != want.B || got.A != want.A {
				t.Fatalf("pixel (%d,%d): got %+v, want {%d %d %d %d}", fx, fy, got, want.R, want.G, want.B, want.A)
			}
		}
	}

	// Outside the stamp's rectangle entirely: no coverage.
	if got := RGBAStamp(s, int(s.Cx)-1, int(s.Cy)); got.A != 0 {
		t.Errorf("outside-rect sample A = %d, want 0", got.A)
	}
}
