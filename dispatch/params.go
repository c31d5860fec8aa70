// Package dispatch is the public entry point: Launch, the single launch
// function of spec.md §6, and the format/rotation specialization table of
// §4.8/§9/§6 that selects a surface constructor from runtime values.
//
// Grounded on recording/command.go's commandTypeNames indexed-array idiom
// (generalized from a 1-D enum table to a 2-D format x rotation/MSAA
// product) and on options.go's functional-options pattern for Option.
package dispatch

import (
	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/internal/coverage"
	"github.com/gogpu/cuosd/plane"
	"github.com/gogpu/gpucontext"
)

// Params carries exactly the fields of spec.md §6's launch function.
//
// Exactly one destination representation is populated, selected by Format:
// Image0/Image1 for the pitch-linear formats (RGB, RGBA, and
// PitchLinearNV12 — Image1 unused except by the NV12 case), or Luma/Chroma
// for BlockLinearNV12.
type Params struct {
	// Image0 is the luma/RGB/RGBA byte plane (pitch-linear formats only).
	Image0 []byte
	// Image1 is the interleaved chroma byte plane (PitchLinearNV12 only).
	Image1 []byte
	// Luma and Chroma are opaque GPU surface-object handles
	// (BlockLinearNV12 only).
	Luma, Chroma plane.BlockPlane

	Width, Height int
	// Stride is the pitch-linear row stride in bytes, shared by Image0 and
	// Image1 per spec.md §3's "two byte pointers with a common stride".
	Stride int
	Format plane.Format

	// Atlas is the pre-rasterized monochrome glyph bitmap referenced by
	// Text commands in Commands.
	Atlas coverage.Atlas

	// Commands bundles the main command stream, its offsets table, the
	// text-location and line-location-base auxiliary arrays, and the
	// separate blur command list — everything spec.md §3/§6 describes as
	// the host-owned, read-only-during-launch input buffers.
	Commands *command.Stream

	// AABB is the global bounding box of every non-blur command, used to
	// size the composite grid (spec.md §6).
	AABB command.Bounds

	// HaveRotateMSAA selects the rotation/MSAA specialization: when false,
	// every Rectangle's 4x multisample AA is skipped regardless of what the
	// command stream requests (spec.md §4.8/§9).
	HaveRotateMSAA bool

	// Queue is the caller-supplied async queue handle (spec.md §5/§6).
	// cuosd never dereferences it — it is only logged as present/absent on
	// a successful Launch (see dispatch.go's completion log line), matching
	// spec.md §5's "kernels issued on the caller-supplied stream" without
	// cuosd driving that stream itself.
	Queue gpucontext.Queue
}
