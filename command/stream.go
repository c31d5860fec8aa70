package command

import (
	"encoding/binary"
	"math"
)

// headerSize is the encoded byte length of a Header: 1 (type) + 16 (bounds,
// 4 int32) + 4 (color, 4 uint8).
const headerSize = 1 + 16 + 4

// Stream is the flat, read-only input to one launch: a command byte buffer
// addressed by Offsets, plus the auxiliary arrays the Text and BoxBlur
// variants reference. It is built once by an Encoder and borrowed by the
// kernels for the duration of one launch; nothing in this package retains
// a reference across calls.
type Stream struct {
	Data    []byte
	Offsets []int32

	TextLocations    []TextLocation
	LineLocationBase []int32 // length = number of Text commands + 1

	BlurData    []byte
	BlurOffsets []int32
}

// NumCommands returns the number of non-blur commands in the stream.
func (s *Stream) NumCommands() int { return len(s.Offsets) }

// NumBlurCommands returns the number of blur commands in the stream.
func (s *Stream) NumBlurCommands() int { return len(s.BlurOffsets) }

func putHeader(buf []byte, h Header) {
	buf[0] = byte(h.Type)
	binary.LittleEndian.PutUint32(buf[1:5], uint32(h.Bounds.Left))
	binary.LittleEndian.PutUint32(buf[5:9], uint32(h.Bounds.Top))
	binary.LittleEndian.PutUint32(buf[9:13], uint32(h.Bounds.Right))
	binary.LittleEndian.PutUint32(buf[13:17], uint32(h.Bounds.Bottom))
	buf[17] = h.Color.C0
	buf[18] = h.Color.C1
	buf[19] = h.Color.C2
	buf[20] = h.Color.C3
}

// ReadHeader decodes the common header at the given byte offset.
func ReadHeader(data []byte, offset int32) Header {
	buf := data[offset:]
	return Header{
		Type: Type(buf[0]),
		Bounds: Bounds{
			Left:   int32(binary.LittleEndian.Uint32(buf[1:5])),
			Top:    int32(binary.LittleEndian.Uint32(buf[5:9])),
			Right:  int32(binary.LittleEndian.Uint32(buf[9:13])),
			Bottom: int32(binary.LittleEndian.Uint32(buf[13:17])),
		},
		Color: Color{C0: buf[17], C1: buf[18], C2: buf[19], C3: buf[20]},
	}
}

func putFloat32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
}

func getFloat32(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
}

func putInt32(buf []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], uint32(v))
}

func getInt32(buf []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(buf[off : off+4]))
}

func putBool(buf []byte, off int, v bool) {
	if v {
		buf[off] = 1
	} else {
		buf[off] = 0
	}
}

func getBool(buf []byte, off int) bool {
	return buf[off] != 0
}

// ReadRectangle decodes a Rectangle record at offset. Callers must first
// confirm ReadHeader(data, offset).Type == TypeRectangle.
func ReadRectangle(data []byte, offset int32) Rectangle {
	h := ReadHeader(data, offset)
	b := data[int(offset)+headerSize:]
	r := Rectangle{Header: h}
	fields := []*float32{
		&r.Ax1, &r.Ay1, &r.Bx1, &r.By1, &r.Cx1, &r.Cy1, &r.Dx1, &r.Dy1,
		&r.Ax2, &r.Ay2, &r.Bx2, &r.By2, &r.Cx2, &r.Cy2, &r.Dx2, &r.Dy2,
	}
	for i, f := range fields {
		*f = getFloat32(b, i*4)
	}
	off := len(fields) * 4
	r.Thickness = getInt32(b, off)
	r.Interpolation = getBool(b, off+4)
	return r
}

func encodedRectangleSize() int { return headerSize + 16*4 + 4 + 1 }

func putRectangle(buf []byte, r Rectangle) {
	putHeader(buf, r.Header)
	b := buf[headerSize:]
	fields := []float32{
		r.Ax1, r.Ay1, r.Bx1, r.By1, r.Cx1, r.Cy1, r.Dx1, r.Dy1,
		r.Ax2, r.Ay2, r.Bx2, r.By2, r.Cx2, r.Cy2, r.Dx2, r.Dy2,
	}
	for i, v := range fields {
		putFloat32(b, i*4, v)
	}
	off := len(fields) * 4
	putInt32(b, off, r.Thickness)
	putBool(b, off+4, r.Interpolation)
}

// ReadCircle decodes a Circle record at offset.
func ReadCircle(data []byte, offset int32) Circle {
	h := ReadHeader(data, offset)
	b := data[int(offset)+headerSize:]
	return Circle{
		Header:    h,
		Cx:        getFloat32(b, 0),
		Cy:        getFloat32(b, 4),
		Radius:    getFloat32(b, 8),
		Thickness: getInt32(b, 12),
	}
}

func encodedCircleSize() int { return headerSize + 4*3 + 4 }

func putCircle(buf []byte, c Circle) {
	putHeader(buf, c.Header)
	b := buf[headerSize:]
	putFloat32(b, 0, c.Cx)
	putFloat32(b, 4, c.Cy)
	putFloat32(b, 8, c.Radius)
	putInt32(b, 12, c.Thickness)
}

// ReadText decodes a Text record at offset.
func ReadText(data []byte, offset int32) Text {
	h := ReadHeader(data, offset)
	b := data[int(offset)+headerSize:]
	return Text{
		Header:       h,
		TextLineSize: getInt32(b, 0),
		ILocation:    getInt32(b, 4),
	}
}

func encodedTextSize() int { return headerSize + 4*2 }

func putText(buf []byte, t Text) {
	putHeader(buf, t.Header)
	b := buf[headerSize:]
	putInt32(b, 0, t.TextLineSize)
	putInt32(b, 4, t.ILocation)
}

// ReadBoxBlur decodes a BoxBlur record (no shared header) at offset.
func ReadBoxBlur(data []byte, offset int32) BoxBlur {
	b := data[offset:]
	return BoxBlur{
		Bounds: Bounds{
			Left:   getInt32(b, 0),
			Top:    getInt32(b, 4),
			Right:  getInt32(b, 8),
			Bottom: getInt32(b, 12),
		},
		KernelSize: getInt32(b, 16),
	}
}

func encodedBoxBlurSize() int { return 4*4 + 4 }

func putBoxBlur(buf []byte, blur BoxBlur) {
	putInt32(buf, 0, blur.Bounds.Left)
	putInt32(buf, 4, blur.Bounds.Top)
	putInt32(buf, 8, blur.Bounds.Right)
	putInt32(buf, 12, blur.Bounds.Bottom)
	putInt32(buf, 16, blur.KernelSize)
}
