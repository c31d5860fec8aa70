// Package plane implements the surface abstraction: reading and writing one
// logical RGB pixel at an integer (x, y) on each of the four destination
// surface layouts the compositor supports, hiding the NV12 luma/chroma split
// and the block-linear vs. pitch-linear memory layout from the kernel.
//
// Grounded on pixmap.go's bounds-checked byte-packed pixel buffer for the
// RGB/RGBA variants and render/target.go's multi-backing RenderTarget
// abstraction for the overall shape of "one interface, several concrete
// memory layouts"; NV12 addressing is new, written directly from the
// compositor's data model.
package plane

import "github.com/gogpu/gputypes"

// Format identifies a destination surface's pixel layout. Values match the
// dispatch table exactly: RGB=0, RGBA=1, BlockLinearNV12=2, PitchLinearNV12=3.
type Format uint8

const (
	FormatRGB Format = iota
	FormatRGBA
	FormatBlockLinearNV12
	FormatPitchLinearNV12
)

func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	case FormatBlockLinearNV12:
		return "BlockLinearNV12"
	case FormatPitchLinearNV12:
		return "PitchLinearNV12"
	default:
		return "Unsupported"
	}
}

// Valid reports whether f is one of the four enumerated formats.
func (f Format) Valid() bool {
	return f <= FormatPitchLinearNV12
}

// HasAlpha reports whether the format stores a destination alpha channel.
// Only RGBA does; NV12 has no alpha channel by design (spec non-goal).
func (f Format) HasAlpha() bool {
	return f == FormatRGBA
}

// TextureFormat reports the gputypes.TextureFormat closest to f, so a cuosd
// surface can be handed to render.RenderTarget-shaped plumbing without a
// translation layer (grounded on render/target.go's Format() method). RGB
// has no dedicated 3-channel unorm format in the retrieved constant set, so
// it reports the same 4-channel format as RGBA; callers that need a tight
// RGB texture upload are expected to repack, same as the teacher's own
// PixmapTarget does for its single packed format. For NV12 this reports the
// luma plane's format only — the chroma plane has no single-channel
// "2-component" constant in the retrieved set, so callers needing the
// chroma plane's format should treat it as R8Unorm-per-component as well.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatBlockLinearNV12, FormatPitchLinearNV12:
		return gputypes.TextureFormatR8Unorm
	case FormatRGB, FormatRGBA:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
