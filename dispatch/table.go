package dispatch

import (
	"fmt"

	"github.com/gogpu/cuosd/plane"
)

func buildRGB(p Params) (plane.Descriptor, error) {
	return &plane.RGB{Data: p.Image0, Stride: p.Stride, W: p.Width, H: p.Height}, nil
}

func buildRGBA(p Params) (plane.Descriptor, error) {
	return &plane.RGBA{Data: p.Image0, Stride: p.Stride, W: p.Width, H: p.Height}, nil
}

func buildPitchLinearNV12(p Params) (plane.Descriptor, error) {
	return &plane.PitchLinearNV12{
		Luma: p.Image0, LumaStride: p.Stride,
		Chroma: p.Image1, ChromaStride: p.Stride,
		W: p.Width, H: p.Height,
	}, nil
}

func buildBlockLinearNV12(p Params) (plane.Descriptor, error) {
	if p.Luma == nil || p.Chroma == nil {
		return nil, fmt.Errorf("%w: BlockLinearNV12 requires both Luma and Chroma plane handles", ErrUnsupportedFormat)
	}
	return plane.NewBlockLinearNV12(p.Luma, p.Chroma, p.Width, p.Height), nil
}

// specializationIndex computes the (int)rotateMSAA*4+format index spec.md
// §6 specifies for the composite kernel's specialization table.
func specializationIndex(haveRotateMSAA bool, format plane.Format) int {
	idx := int(format)
	if haveRotateMSAA {
		idx += 4
	}
	return idx
}

// buildTable is the compile-time 2x4 table of surface constructors keyed by
// the same (format, rotateMSAA) product the reference kernel's composite
// specialization table uses. The rotateMSAA axis doesn't change how a
// destination surface is built — only CompositeParams.RotateMSAA, consulted
// later inside the composite kernel itself — so both halves of this table
// alias the same four constructors, exactly mirroring how the reference
// kernel's per-format dispatch is independent of the rotation axis for
// everything except the rectangle evaluator.
var buildTable = [8]func(Params) (plane.Descriptor, error){
	0: buildRGB, 1: buildRGBA, 2: buildBlockLinearNV12, 3: buildPitchLinearNV12,
	4: buildRGB, 5: buildRGBA, 6: buildBlockLinearNV12, 7: buildPitchLinearNV12,
}

func buildDescriptor(p Params) (plane.Descriptor, error) {
	idx := specializationIndex(p.HaveRotateMSAA, p.Format)
	if idx < 0 || idx >= len(buildTable) || buildTable[idx] == nil {
		return nil, fmt.Errorf("%w: tag %d", ErrUnsupportedFormat, p.Format)
	}
	return buildTable[idx](p)
}
