package command

// Segment, RGBASource and NV12Source carry variable-length payloads (a mask
// or image buffer) that the reference kernel addresses via a separate device
// pointer. Here the whole record — fixed fields followed immediately by the
// payload bytes — is encoded inline in the command stream, since there is no
// separate device address space to point into.

const fixedFloatSegmentSize = 4*2 + 4*2 + 4 // SegWidth, SegHeight, ScaleX, ScaleY, SegThreshold

// ReadSegment decodes a Segment record at offset.
func ReadSegment(data []byte, offset int32) Segment {
	h := ReadHeader(data, offset)
	b := data[int(offset)+headerSize:]
	w := getInt32(b, 0)
	ht := getInt32(b, 4)
	scaleX := getFloat32(b, 8)
	scaleY := getFloat32(b, 12)
	threshold := getFloat32(b, 16)

	n := int(w) * int(ht)
	mask := make([]float32, n)
	payload := b[fixedFloatSegmentSize:]
	for i := 0; i < n; i++ {
		mask[i] = getFloat32(payload, i*4)
	}

	return Segment{
		Header:       h,
		DSeg:         mask,
		SegWidth:     w,
		SegHeight:    ht,
		ScaleX:       scaleX,
		ScaleY:       scaleY,
		SegThreshold: threshold,
	}
}

func encodedSegmentSize(s Segment) int {
	return headerSize + fixedFloatSegmentSize + len(s.DSeg)*4
}

func putSegment(buf []byte, s Segment) {
	putHeader(buf, s.Header)
	b := buf[headerSize:]
	putInt32(b, 0, s.SegWidth)
	putInt32(b, 4, s.SegHeight)
	putFloat32(b, 8, s.ScaleX)
	putFloat32(b, 12, s.ScaleY)
	putFloat32(b, 16, s.SegThreshold)
	payload := b[fixedFloatSegmentSize:]
	for i, v := range s.DSeg {
		putFloat32(payload, i*4, v)
	}
}

const fixedRGBASourceSize = 4 * 4 // Cx, Cy, Width, Height

// ReadRGBASource decodes an RGBASource record at offset.
func ReadRGBASource(data []byte, offset int32) RGBASource {
	h := ReadHeader(data, offset)
	b := data[int(offset)+headerSize:]
	cx := getInt32(b, 0)
	cy := getInt32(b, 4)
	w := getInt32(b, 8)
	ht := getInt32(b, 12)
	n := int(w) * int(ht) * 4
	src := make([]byte, n)
	copy(src, b[fixedRGBASourceSize:fixedRGBASourceSize+n])
	return RGBASource{Header: h, Cx: cx, Cy: cy, Width: w, Height: ht, DSrc: src}
}

func encodedRGBASourceSize(r RGBASource) int {
	return headerSize + fixedRGBASourceSize + len(r.DSrc)
}

func putRGBASource(buf []byte, r RGBASource) {
	putHeader(buf, r.Header)
	b := buf[headerSize:]
	putInt32(b, 0, r.Cx)
	putInt32(b, 4, r.Cy)
	putInt32(b, 8, r.Width)
	putInt32(b, 12, r.Height)
	copy(b[fixedRGBASourceSize:], r.DSrc)
}

const fixedNV12SourceSize = 4*4 + 1 + 4 // Cx,Cy,Width,Height, BlockLinear, (KeyY,KeyU,KeyV,TransA)

// ReadNV12Source decodes an NV12Source record at offset.
func ReadNV12Source(data []byte, offset int32) NV12Source {
	h := ReadHeader(data, offset)
	b := data[int(offset)+headerSize:]
	cx := getInt32(b, 0)
	cy := getInt32(b, 4)
	w := getInt32(b, 8)
	ht := getInt32(b, 12)
	blockLinear := getBool(b, 16)
	keyY, keyU, keyV, transA := b[17], b[18], b[19], b[20]

	lumaN := int(w) * int(ht)
	chromaN := int(w) * (int(ht) / 2)
	payload := b[fixedNV12SourceSize:]
	luma := make([]byte, lumaN)
	copy(luma, payload[:lumaN])
	chroma := make([]byte, chromaN)
	copy(chroma, payload[lumaN:lumaN+chromaN])

	return NV12Source{
		Header: h, Cx: cx, Cy: cy, Width: w, Height: ht,
		DSrc0: luma, DSrc1: chroma, BlockLinear: blockLinear,
		KeyY: keyY, KeyU: keyU, KeyV: keyV, TransA: transA,
	}
}

func encodedNV12SourceSize(nv NV12Source) int {
	return headerSize + fixedNV12SourceSize + len(nv.DSrc0) + len(nv.DSrc1)
}

func putNV12Source(buf []byte, nv NV12Source) {
	putHeader(buf, nv.Header)
	b := buf[headerSize:]
	putInt32(b, 0, nv.Cx)
	putInt32(b, 4, nv.Cy)
	putInt32(b, 8, nv.Width)
	putInt32(b, 12, nv.Height)
	putBool(b, 16, nv.BlockLinear)
	b[17], b[18], b[19], b[20] = nv.KeyY, nv.KeyU, nv.KeyV, nv.TransA
	payload := b[fixedNV12SourceSize:]
	copy(payload, nv.DSrc0)
	copy(payload[len(nv.DSrc0):], nv.DSrc1)
}
