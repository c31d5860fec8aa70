// Package command defines the wire format the composite and blur kernels
// consume: a tagged, variable-length byte stream of draw commands plus the
// auxiliary arrays referenced from it.
//
// Grounded on recording/command.go's CommandType enum and indexed name
// table, and on internal/gpu/convex_renderer.go and sdf_render.go's
// PutUint32/Float32bits packing of vertex buffers, generalized from a fixed
// per-vertex stride to variable-length tagged records addressed by an
// offsets array.
package command

// Type identifies the kind of a command record.
type Type uint8

const (
	TypeRectangle Type = iota
	TypeCircle
	TypeText
	TypeSegment
	TypeRGBASource
	TypeNV12Source
	TypeBoxBlur
)

var typeNames = [...]string{
	TypeRectangle:  "Rectangle",
	TypeCircle:     "Circle",
	TypeText:       "Text",
	TypeSegment:    "Segment",
	TypeRGBASource: "RGBASource",
	TypeNV12Source: "NV12Source",
	TypeBoxBlur:    "BoxBlur",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Color is the default foreground color carried in every command header;
// C3 is alpha, 0..255.
type Color struct {
	C0, C1, C2, C3 uint8
}

// Bounds is an inclusive integer AABB in destination pixels, used only to
// cull a command against a quad — never to clip its coverage test.
type Bounds struct {
	Left, Top, Right, Bottom int32
}

// Contains reports whether the quad with top-left corner (x, y) and the
// given quad size overlaps this bounds rectangle.
func (b Bounds) Contains(x, y, size int32) bool {
	return x+size > b.Left && x < b.Right+1 && y+size > b.Top && y < b.Bottom+1
}

// Header is the fixed-size prefix common to every command variant.
type Header struct {
	Type   Type
	Bounds Bounds
	Color  Color
}

// Rectangle draws a filled or hollow quadrilateral, optionally multisampled.
type Rectangle struct {
	Header
	// Outer quad corners, in order.
	Ax1, Ay1, Bx1, By1, Cx1, Cy1, Dx1, Dy1 float32
	// Inner quad corners (only meaningful when Thickness >= 0).
	Ax2, Ay2, Bx2, By2, Cx2, Cy2, Dx2, Dy2 float32
	// Thickness is -1 for filled, >= 0 for a hollow stroke width.
	Thickness int32
	// Interpolation enables 4x multisample AA on the rectangle's borders.
	Interpolation bool
}

// Circle draws a filled disc or a stroked annulus.
type Circle struct {
	Header
	Cx, Cy, Radius float32
	Thickness      int32 // -1 for filled
}

// Text draws a run of glyphs from a contiguous slice of the shared
// TextLocation array; the kernel finds the slice bounds via
// Stream.LineLocationBase, not from fields stored on the command.
type Text struct {
	Header
	TextLineSize int32 // number of glyph locations on this line
	ILocation    int32 // index into the line-location directory
}

// Segment applies a segmentation mask as coverage, resampled from
// SegWidth x SegHeight source space: destination pixel (x, y) maps to source
// ((x+0.5)*ScaleX-0.5, (y+0.5)*ScaleY-0.5) in absolute destination
// coordinates. Bounds only culls; it does not offset the mask.
type Segment struct {
	Header
	DSeg                []float32 // SegWidth * SegHeight mask samples
	SegWidth, SegHeight int32
	ScaleX, ScaleY      float32 // destination -> source ratios
	SegThreshold        float32
}

// RGBASource stamps an RGBA image at (Cx, Cy), nearest-sampled.
type RGBASource struct {
	Header
	Cx, Cy, Width, Height int32
	DSrc                  []byte // Width * Height * 4 bytes
}

// NV12Source stamps an NV12 image at (Cx, Cy) with a chroma-key alpha.
type NV12Source struct {
	Header
	Cx, Cy, Width, Height int32
	DSrc0                 []byte // luma plane
	DSrc1                 []byte // interleaved chroma plane
	BlockLinear           bool
	// KeyY, KeyU, KeyV identify the transparent color; TransA is the
	// opaque output alpha for non-key pixels.
	KeyY, KeyU, KeyV uint8
	TransA           uint8
}

// BoxBlur redacts a rectangle of the destination surface with a box-mean
// filter; it carries no foreground color and runs in its own pass, never
// through the composite accumulator.
type BoxBlur struct {
	Bounds     Bounds
	KernelSize int32 // odd
}

// TextLocation is one glyph's placement: its destination origin and its
// source rectangle in the shared glyph atlas.
type TextLocation struct {
	ImageX, ImageY int32
	TextX          int32 // atlas column of the glyph's source rectangle
	TextW, TextH   int32
}
