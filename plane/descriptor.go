package plane

import "github.com/gogpu/cuosd/internal/blend"

// Descriptor is the common surface contract: read one logical RGB pixel at
// (x, y) regardless of backing layout. The box-blur staging pass (which
// samples any destination format into an RGB tile) uses only this method;
// the composite kernel's final commit additionally needs the format-specific
// writers below, since the commit law genuinely differs per format (§4.7).
type Descriptor interface {
	Format() Format
	Width() int
	Height() int

	// GetRGB reads the pixel at (x, y) as RGB. For NV12 surfaces the stored
	// YUV sample is converted to RGB (BT.601); alpha is always reported as
	// 255 since only RGBA carries a destination alpha.
	GetRGB(x, y int) blend.Color
}

// RGBWriter is implemented by RGB and RGBA surfaces: a direct source-over
// commit in the surface's native channel order.
type RGBWriter interface {
	Descriptor
	SetRGB(x, y int, c blend.Color)
}

// AlphaWriter is implemented by RGBA surfaces only: §4.7 says RGBA
// "additionally updates the destination alpha with the same formula."
type AlphaWriter interface {
	SetAlpha(x, y int, a uint8)
}

// LumaChromaWriter is implemented by both NV12 layouts: the luma (Y) plane
// is written independently per pixel, the chroma (U, V) plane is written
// once per 2x2 quad using the coverage-weighted mean described in §4.7.
type LumaChromaWriter interface {
	Descriptor

	// GetY/SetY address luma in full surface pixel coordinates.
	GetY(x, y int) uint8
	SetY(x, y int, v uint8)

	// GetUV/SetUV address one shared chroma sample for the 2x2 luma quad
	// whose top-left corner is (x, y) — i.e. coordinates are luma pixel
	// coordinates rounded down to the enclosing chroma sample, matching
	// spec's "(x, y/2), U at even x and V at x+1" addressing.
	GetUV(x, y int) (u, v uint8)
	SetUV(x, y int, u, v uint8)
}
