package pix

// RowSink receives decoded rows during streaming decode. The caller owns
// the output memory; the codec writes decoded pixels straight into it
// with no intermediate allocation.
//
// The codec calls Demand once per strip, in top-to-bottom order with y
// strictly increasing, writes width*bpp bytes per row at offsets 0,
// stride, 2*stride within the returned buffer, then calls Demand for the
// next strip. When Demand is called again — or when the decode returns —
// the previously demanded buffer has been fully written.
//
// The sink controls the stride: it may hand out tightly packed buffers
// (stride = width*bpp) or padded SIMD-aligned ones. The returned values
// must satisfy stride >= width*bpp, stride%bpp == 0 and
// len(buf) >= (height-1)*stride + width*bpp.
type RowSink interface {
	// Demand provides a writable buffer for decoded rows [y, y+height)
	// and the stride the codec should write at.
	Demand(y, height, width, bpp int) (buf []byte, stride int)
}

// BufferSink is a RowSink that writes decoded rows directly into an
// owned Buffer, for callers that want the whole image in one
// pre-allocated, aligned allocation.
type BufferSink struct {
	buf *Buffer
}

// NewBufferSink allocates a destination buffer for a decode of the given
// dimensions and format.
func NewBufferSink(width, height int, desc Descriptor) (*BufferSink, error) {
	buf, err := NewBuffer(width, height, desc)
	if err != nil {
		return nil, err
	}
	return &BufferSink{buf: buf}, nil
}

// Demand implements RowSink, handing out the strip's region of the
// underlying buffer at the buffer's stride.
func (s *BufferSink) Demand(y, height, width, bpp int) ([]byte, int) {
	strip := s.buf.RowsMut(y, height)
	if height == 0 {
		return nil, s.buf.Stride()
	}
	end := (height-1)*strip.stride + width*bpp
	return strip.data[:end], strip.stride
}

// Buffer returns the destination buffer. Valid once the decode that was
// writing into the sink has returned.
func (s *BufferSink) Buffer() *Buffer { return s.buf }
