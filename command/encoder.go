package command

// Encoder builds a Stream incrementally, mirroring recording.Recorder's
// append-and-finish shape: callers add commands in paint order, then call
// Build to obtain an immutable Stream ready for one launch.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	data    []byte
	offsets []int32

	textLocations    []TextLocation
	lineLocationBase []int32

	blurData    []byte
	blurOffsets []int32
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	e := &Encoder{
		data:             make([]byte, 0, 4096),
		offsets:          make([]int32, 0, 64),
		lineLocationBase: []int32{0},
	}
	return e
}

func (e *Encoder) appendOffset() {
	e.offsets = append(e.offsets, int32(len(e.data)))
}

// AddRectangle appends a Rectangle command.
func (e *Encoder) AddRectangle(r Rectangle) {
	r.Type = TypeRectangle
	e.appendOffset()
	buf := make([]byte, encodedRectangleSize())
	putRectangle(buf, r)
	e.data = append(e.data, buf...)
}

// AddCircle appends a Circle command.
func (e *Encoder) AddCircle(c Circle) {
	c.Type = TypeCircle
	e.appendOffset()
	buf := make([]byte, encodedCircleSize())
	putCircle(buf, c)
	e.data = append(e.data, buf...)
}

// AddText appends a Text command along with its glyph locations. locations
// becomes [begin, end) of the shared TextLocation array for this line; the
// line-location directory is extended accordingly.
func (e *Encoder) AddText(t Text, locations []TextLocation) {
	t.Type = TypeText
	t.TextLineSize = int32(len(locations))
	t.ILocation = int32(len(e.textLocations))

	e.appendOffset()
	buf := make([]byte, encodedTextSize())
	putText(buf, t)
	e.data = append(e.data, buf...)

	e.textLocations = append(e.textLocations, locations...)
	e.lineLocationBase = append(e.lineLocationBase, int32(len(e.textLocations)))
}

// AddSegment appends a Segment command.
func (e *Encoder) AddSegment(s Segment) {
	s.Type = TypeSegment
	e.appendOffset()
	buf := make([]byte, encodedSegmentSize(s))
	putSegment(buf, s)
	e.data = append(e.data, buf...)
}

// AddRGBASource appends an RGBASource command.
func (e *Encoder) AddRGBASource(r RGBASource) {
	r.Type = TypeRGBASource
	e.appendOffset()
	buf := make([]byte, encodedRGBASourceSize(r))
	putRGBASource(buf, r)
	e.data = append(e.data, buf...)
}

// AddNV12Source appends an NV12Source command.
func (e *Encoder) AddNV12Source(nv NV12Source) {
	nv.Type = TypeNV12Source
	e.appendOffset()
	buf := make([]byte, encodedNV12SourceSize(nv))
	putNV12Source(buf, nv)
	e.data = append(e.data, buf...)
}

// AddBoxBlur appends a BoxBlur command to the separate blur list.
func (e *Encoder) AddBoxBlur(blur BoxBlur) {
	e.blurOffsets = append(e.blurOffsets, int32(len(e.blurData)))
	buf := make([]byte, encodedBoxBlurSize())
	putBoxBlur(buf, blur)
	e.blurData = append(e.blurData, buf...)
}

// Build returns the finished, read-only Stream. The Encoder may continue to
// be used afterward; Build always copies its backing arrays so the returned
// Stream is independent of further mutation.
func (e *Encoder) Build() *Stream {
	data := make([]byte, len(e.data))
	copy(data, e.data)
	offsets := make([]int32, len(e.offsets))
	copy(offsets, e.offsets)

	locs := make([]TextLocation, len(e.textLocations))
	copy(locs, e.textLocations)
	base := make([]int32, len(e.lineLocationBase))
	copy(base, e.lineLocationBase)

	blurData := make([]byte, len(e.blurData))
	copy(blurData, e.blurData)
	blurOffsets := make([]int32, len(e.blurOffsets))
	copy(blurOffsets, e.blurOffsets)

	return &Stream{
		Data:             data,
		Offsets:          offsets,
		TextLocations:    locs,
		LineLocationBase: base,
		BlurData:         blurData,
		BlurOffsets:      blurOffsets,
	}
}
