package plane

import (
	"github.com/gogpu/cuosd/internal/blend"
	"github.com/gogpu/cuosd/internal/yuv"
)

// PitchLinearNV12 is an NV12 destination addressed as two byte pointers
// (luma, interleaved UV chroma) sharing a common row stride, per spec §3.
type PitchLinearNV12 struct {
	Luma         []byte
	LumaStride   int
	Chroma       []byte // interleaved U,V: chroma[cy*ChromaStride + cx] for even cx=U, cx+1=V
	ChromaStride int
	W, H         int
}

// NewPitchLinearNV12 allocates a tightly packed NV12 surface. Width and
// height must be even (standard 4:2:0 chroma subsampling requirement).
func NewPitchLinearNV12(w, h int) *PitchLinearNV12 {
	return &PitchLinearNV12{
		Luma:         make([]byte, w*h),
		LumaStride:   w,
		Chroma:       make([]byte, w*(h/2)),
		ChromaStride: w,
		W:            w,
		H:            h,
	}
}

func (s *PitchLinearNV12) Format() Format { return FormatPitchLinearNV12 }
func (s *PitchLinearNV12) Width() int     { return s.W }
func (s *PitchLinearNV12) Height() int    { return s.H }

func (s *PitchLinearNV12) inBounds(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

func (s *PitchLinearNV12) GetY(x, y int) uint8 {
	if !s.inBounds(x, y) {
		return 0
	}
	return s.Luma[y*s.LumaStride+x]
}

func (s *PitchLinearNV12) SetY(x, y int, v uint8) {
	if !s.inBounds(x, y) {
		return
	}
	s.Luma[y*s.LumaStride+x] = v
}

// chromaIndex returns the byte index of U for the chroma sample covering
// luma pixel (x, y); V is at the immediately following byte, per spec's
// "chroma at (x, y/2) with U at even x and V at x+1".
func (s *PitchLinearNV12) chromaIndex(x, y int) int {
	cx := x &^ 1 // round down to even
	cy := y / 2
	return cy*s.ChromaStride + cx
}

func (s *PitchLinearNV12) GetUV(x, y int) (u, v uint8) {
	if !s.inBounds(x, y) {
		return 0, 0
	}
	i := s.chromaIndex(x, y)
	return s.Chroma[i], s.Chroma[i+1]
}

func (s *PitchLinearNV12) SetUV(x, y int, u, v uint8) {
	if !s.inBounds(x, y) {
		return
	}
	i := s.chromaIndex(x, y)
	s.Chroma[i] = u
	s.Chroma[i+1] = v
}

func (s *PitchLinearNV12) GetRGB(x, y int) blend.Color {
	if !s.inBounds(x, y) {
		return blend.Color{}
	}
	yy := s.GetY(x, y)
	u, v := s.GetUV(x, y)
	r, g, b := yuv.ToRGB(int(yy), int(u), int(v))
	return blend.Color{R: r, G: g, B: b, A: 255}
}

// BlockPlane models one opaque GPU surface-object plane (luma or chroma) in
// block-linear layout. The compositor never computes the block swizzle
// itself — real block-linear addressing is hardware/vendor specific, so the
// core only ever goes through surface-object reads and writes, exactly as
// the reference kernel's surf2Dread/surf2Dwrite calls do.
type BlockPlane interface {
	Width() int
	Height() int
	Read(x, y int) uint8
	Write(x, y int, v uint8)
}

// RowMajorBlockPlane is a trivial in-memory BlockPlane, standing in for a
// real block-linear GPU surface object in tests and CPU-only deployments.
type RowMajorBlockPlane struct {
	Data   []byte
	Stride int
	W, H   int
}

// NewRowMajorBlockPlane allocates a tightly packed block plane.
func NewRowMajorBlockPlane(w, h int) *RowMajorBlockPlane {
	return &RowMajorBlockPlane{Data: make([]byte, w*h), Stride: w, W: w, H: h}
}

func (p *RowMajorBlockPlane) Width() int  { return p.W }
func (p *RowMajorBlockPlane) Height() int { return p.H }

func (p *RowMajorBlockPlane) Read(x, y int) uint8 {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return 0
	}
	return p.Data[y*p.Stride+x]
}

func (p *RowMajorBlockPlane) Write(x, y int, v uint8) {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return
	}
	p.Data[y*p.Stride+x] = v
}

// BlockLinearNV12 is an NV12 destination addressed through two opaque
// GPU-surface handles (luma plane, interleaved chroma plane), per spec §3.
type BlockLinearNV12 struct {
	Luma   BlockPlane
	Chroma BlockPlane // width == luma width, height == luma height/2
	W, H   int
}

// NewBlockLinearNV12 wraps luma/chroma block planes as an NV12 surface.
func NewBlockLinearNV12(luma, chroma BlockPlane, w, h int) *BlockLinearNV12 {
	return &BlockLinearNV12{Luma: luma, Chroma: chroma, W: w, H: h}
}

func (s *BlockLinearNV12) Format() Format { return FormatBlockLinearNV12 }
func (s *BlockLinearNV12) Width() int     { return s.W }
func (s *BlockLinearNV12) Height() int    { return s.H }

func (s *BlockLinearNV12) inBounds(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

func (s *BlockLinearNV12) GetY(x, y int) uint8 {
	if !s.inBounds(x, y) {
		return 0
	}
	return s.Luma.Read(x, y)
}

func (s *BlockLinearNV12) SetY(x, y int, v uint8) {
	if !s.inBounds(x, y) {
		return
	}
	s.Luma.Write(x, y, v)
}

func (s *BlockLinearNV12) GetUV(x, y int) (u, v uint8) {
	if !s.inBounds(x, y) {
		return 0, 0
	}
	cx := x &^ 1
	cy := y / 2
	return s.Chroma.Read(cx, cy), s.Chroma.Read(cx+1, cy)
}

func (s *BlockLinearNV12) SetUV(x, y int, u, v uint8) {
	if !s.inBounds(x, y) {
		return
	}
	cx := x &^ 1
	cy := y / 2
	s.Chroma.Write(cx, cy, u)
	s.Chroma.Write(cx+1, cy, v)
}

func (s *BlockLinearNV12) GetRGB(x, y int) blend.Color {
	if !s.inBounds(x, y) {
		return blend.Color{}
	}
	yy := s.GetY(x, y)
	u, v := s.GetUV(x, y)
	r, g, b := yuv.ToRGB(int(yy), int(u), int(v))
	return blend.Color{R: r, G: g, B: b, A: 255}
}
