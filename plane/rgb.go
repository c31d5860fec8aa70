package plane

import "github.com/gogpu/cuosd/internal/blend"

// RGB is a pitch-linear 3-bytes-per-pixel destination surface: one
// byte-address pointer, a stride in bytes, and pixel dimensions.
//
// Grounded on pixmap.go's Pixmap type (bounds-checked Get/SetPixel over a
// packed byte slice), narrowed from 4 to 3 bytes per pixel and generalized
// to an arbitrary row stride rather than assuming Width*bpp.
type RGB struct {
	Data   []byte
	Stride int
	W, H   int
}

// NewRGB allocates a tightly packed RGB surface (stride == width*3).
func NewRGB(w, h int) *RGB {
	return &RGB{Data: make([]byte, w*h*3), Stride: w * 3, W: w, H: h}
}

func (s *RGB) Format() Format { return FormatRGB }
func (s *RGB) Width() int     { return s.W }
func (s *RGB) Height() int    { return s.H }

func (s *RGB) inBounds(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

func (s *RGB) GetRGB(x, y int) blend.Color {
	if !s.inBounds(x, y) {
		return blend.Color{}
	}
	i := y*s.Stride + x*3
	return blend.Color{R: s.Data[i], G: s.Data[i+1], B: s.Data[i+2], A: 255}
}

func (s *RGB) SetRGB(x, y int, c blend.Color) {
	if !s.inBounds(x, y) {
		return
	}
	i := y*s.Stride + x*3
	s.Data[i] = c.R
	s.Data[i+1] = c.G
	s.Data[i+2] = c.B
}

// RGBA is a pitch-linear 4-bytes-per-pixel destination surface carrying its
// own alpha channel, updated by the final commit per §4.7.
type RGBA struct {
	Data   []byte
	Stride int
	W, H   int
}

// NewRGBA allocates a tightly packed RGBA surface (stride == width*4).
func NewRGBA(w, h int) *RGBA {
	return &RGBA{Data: make([]byte, w*h*4), Stride: w * 4, W: w, H: h}
}

func (s *RGBA) Format() Format { return FormatRGBA }
func (s *RGBA) Width() int     { return s.W }
func (s *RGBA) Height() int    { return s.H }

func (s *RGBA) inBounds(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

func (s *RGBA) GetRGB(x, y int) blend.Color {
	if !s.inBounds(x, y) {
		return blend.Color{}
	}
	i := y*s.Stride + x*4
	return blend.Color{R: s.Data[i], G: s.Data[i+1], B: s.Data[i+2], A: s.Data[i+3]}
}

func (s *RGBA) SetRGB(x, y int, c blend.Color) {
	if !s.inBounds(x, y) {
		return
	}
	i := y*s.Stride + x*4
	s.Data[i] = c.R
	s.Data[i+1] = c.G
	s.Data[i+2] = c.B
}

func (s *RGBA) SetAlpha(x, y int, a uint8) {
	if !s.inBounds(x, y) {
		return
	}
	s.Data[y*s.Stride+x*4+3] = a
}
