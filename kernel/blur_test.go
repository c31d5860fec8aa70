package kernel

import (
	"testing"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/internal/blend"
	"github.com/gogpu/cuosd/plane"
)

// TestBlurIdempotentOnSolidColor is spec.md's S5 and testable property 7: a
// box-mean filter over a constant-color region reproduces that same color
// (every sample in every window equals the fill, so the mean is exact).
func TestBlurIdempotentOnSolidColor(t *testing.T) {
	s := plane.NewRGB(40, 40)
	fill := blend.Color{R: 90, G: 150, B: 30, A: 255}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			s.SetRGB(x, y, fill)
		}
	}

	enc := command.NewEncoder()
	enc.AddBoxBlur(command.BoxBlur{Bounds: command.Bounds{Left: 4, Top: 4, Right: 35, Bottom: 35}, KernelSize: 7})
	stream := enc.Build()

	RunBlur(BlurParams{Dst: s, Stream: stream}, nil)

	for _, p := range [][2]int{{4, 4}, {20, 20}, {34, 34}} {
		got := s.GetRGB(p[0], p[1])
		if got != fill {
			t.Errorf("pixel %v = %+v, want %+v", p, got, fill)
		}
	}
}

// TestFilterTileKernelSizeOneIsIdentity is testable property 7: a
// kernel_size=1 box filter has a 1x1 window (radius 0, n=1 always), so it
// reproduces its input tile exactly — equivalent to the staging/resample
// pass alone, with no averaging at all.
func TestFilterTileKernelSizeOneIsIdentity(t *testing.T) {
	src := &stagingTile{}
	for i := 0; i < tileDim*tileDim; i++ {
		src.r[i] = byte(i)
		src.g[i] = byte(i * 3)
		src.b[i] = byte(255 - i)
	}

	out := filterTile(src, 1)

	if *out != *src {
		t.Error("filterTile(src, 1) != src, want exact identity for a 1x1 window")
	}
}

// TestBlurNoCommandsIsIdentity is testable property 1 for the blur pass: an
// empty blur list leaves the surface untouched.
func TestBlurNoCommandsIsIdentity(t *testing.T) {
	s := plane.NewRGB(8, 8)
	for i := range s.Data {
		s.Data[i] = byte(i)
	}
	before := append([]byte(nil), s.Data...)

	RunBlur(BlurParams{Dst: s, Stream: command.NewEncoder().Build()}, nil)

	for i := range s.Data {
		if s.Data[i] != before[i] {
			t.Fatalf("byte %d changed with no blur commands", i)
		}
	}
}

// TestCommitNV12ChromaWeightedMean is spec.md's S6: the chroma sample a
// commit writes is the coverage-weighted mean of the four lanes' foreground
// chroma, not a plain unweighted average that would dilute it with
// zero-alpha lanes' default-zero G/B values.
func TestCommitNV12ChromaWeightedMean(t *testing.T) {
	s := plane.NewPitchLinearNV12(4, 4)

	// Two opaque lanes carry the same chroma; the other two lanes receive no
	// coverage at all (A=0) and must not pull the mean toward zero.
	acc := blend.Quad{
		{R: 100, G: 200, B: 50, A: 255},
		{R: 100, G: 200, B: 50, A: 255},
		{},
		{},
	}

	commitNV12(s, 0, 0, acc)

	// meanU and meanV equal the covered lanes' own chroma exactly (102000/510
	// = 200 and 25500/510 = 50 both divide evenly), but meanA is only sumA>>2 = 510>>2 = 127 since two
	// lanes contributed zero weight — so the chroma actually written is that
	// mean blended onto a zero destination at alpha 127, not the raw mean.
	u, v := s.GetUV(0, 0)
	if u != 99 || v != 24 {
		t.Errorf("chroma = (%d, %d), want (99, 24) (mean 200/50 blended at weighted alpha 127 over zero dst)", u, v)
	}
	if got := s.GetY(0, 0); got != 99 {
		t.Errorf("luma(0,0) = %d, want 99", got)
	}
	if got := s.GetY(1, 0); got != 99 {
		t.Errorf("luma(1,0) = %d, want 99", got)
	}
	if got := s.GetY(0, 1); got != 0 {
		t.Errorf("luma(0,1) = %d, want 0 (zero-coverage lane leaves destination luma untouched)", got)
	}
}
