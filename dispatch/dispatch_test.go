package dispatch

import (
	"testing"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/plane"
)

// TestLaunchEndToEnd exercises the full Params -> validate -> buildDescriptor
// -> kernel pipeline through the public entry point, reproducing spec.md's
// S1 scenario (a single filled RGBA rectangle over an opaque black surface).
func TestLaunchEndToEnd(t *testing.T) {
	const w, h = 16, 16
	img := make([]byte, w*h*4)
	for i := 0; i < len(img); i += 4 {
		img[i+3] = 255 // opaque black
	}

	enc := command.NewEncoder()
	enc.AddRectangle(command.Rectangle{
		Header: command.Header{
			Bounds: command.Bounds{Left: 4, Top: 4, Right: 11, Bottom: 11},
			Color:  command.Color{C0: 255, C3: 128},
		},
		Ax1: 4, Ay1: 4, Bx1: 4, By1: 12, Cx1: 12, Cy1: 12, Dx1: 12, Dy1: 4,
		Thickness: -1,
	})
	stream := enc.Build()

	p := Params{
		Image0: img, Width: w, Height: h, Stride: w * 4,
		Format:   plane.FormatRGBA,
		Commands: stream,
		AABB:     command.Bounds{Left: 0, Top: 0, Right: w - 1, Bottom: h - 1},
	}
	Launch(p)

	i := 8*p.Stride + 8*4
	if img[i] != 128 || img[i+3] != 254 {
		t.Errorf("pixel(8,8) = %v, want R=128 A=254", img[i:i+4])
	}
	j := 0
	if img[j+3] != 255 || img[j] != 0 {
		t.Errorf("pixel(0,0) = %v, want untouched opaque black", img[j:j+4])
	}
}

// TestLaunchSkipsDegenerateRequest is testable property: Launch never
// panics and never mutates the surface on an empty draw list.
func TestLaunchSkipsDegenerateRequest(t *testing.T) {
	img := make([]byte, 16*4)
	before := append([]byte(nil), img...)

	Launch(Params{Image0: img, Width: 4, Height: 4, Stride: 16, Format: plane.FormatRGBA, Commands: command.NewEncoder().Build()})

	for i := range img {
		if img[i] != before[i] {
			t.Fatalf("byte %d changed on degenerate launch", i)
		}
	}
}

// TestLaunchUnsupportedFormatDoesNotPanic covers the "unsupported
// configuration" error path end to end.
func TestLaunchUnsupportedFormatDoesNotPanic(t *testing.T) {
	enc := command.NewEncoder()
	enc.AddRectangle(command.Rectangle{Header: command.Header{Bounds: command.Bounds{Left: 0, Top: 0, Right: 1, Bottom: 1}}, Thickness: -1})
	Launch(Params{
		Format: plane.Format(200), Width: 4, Height: 4,
		Commands: enc.Build(),
		AABB:     command.Bounds{Left: 0, Top: 0, Right: 1, Bottom: 1},
	})
}
