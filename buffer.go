package pix

import (
	"fmt"
	"math"
	"unsafe"
)

// Buffer is an owned pixel buffer with format metadata.
//
// The backing allocation carries a small alignment offset so the first
// pixel starts at an address aligned for the channel type. Rows use the
// descriptor's aligned stride. The backing bytes can be recovered with
// IntoRaw for pool reuse.
type Buffer struct {
	data []byte
	// offset is the byte distance from the allocation start to the first
	// aligned pixel.
	offset int
	width  int
	height int
	stride int
	desc   Descriptor
	ws     WorkingSpace
	color  *ColorContext
}

// NewBuffer allocates a zero-filled buffer for the given dimensions and
// format. Zero width or height is allowed and yields an empty buffer.
// Negative or overflowing dimensions return ErrInvalidDimensions.
func NewBuffer(width, height int, desc Descriptor) (*Buffer, error) {
	stride, err := validStride(width, height, desc, desc.MinAlignment())
	if err != nil {
		return nil, err
	}
	return newBuffer(width, height, stride, desc, desc.MinAlignment()), nil
}

// NewBufferSIMDAligned allocates a buffer whose stride is a multiple of
// lcm(BytesPerPixel, simdAlign) and whose first pixel starts at a
// simdAlign-aligned address, so every row start is both pixel-aligned and
// SIMD-aligned. simdAlign must be a power of two (16, 32, 64).
func NewBufferSIMDAligned(width, height int, desc Descriptor, simdAlign int) (*Buffer, error) {
	if simdAlign <= 0 || simdAlign&(simdAlign-1) != 0 {
		return nil, ErrInvalidDimensions
	}
	if _, err := validStride(width, height, desc, desc.MinAlignment()); err != nil {
		return nil, err
	}
	stride := desc.SIMDAlignedStride(width, simdAlign)
	if height > 0 && stride > 0 && height > math.MaxInt/stride {
		return nil, ErrInvalidDimensions
	}
	return newBuffer(width, height, stride, desc, simdAlign), nil
}

// newBuffer allocates without validation. Callers check dimensions first.
func newBuffer(width, height, stride int, desc Descriptor, align int) *Buffer {
	total := stride * height
	data := make([]byte, total+align-1)
	return &Buffer{
		data:   data,
		offset: alignOffset(data, align),
		width:  width,
		height: height,
		stride: stride,
		desc:   desc,
	}
}

// FromRaw wraps existing bytes as a pixel buffer without copying. Rows are
// assumed tightly packed at the descriptor's aligned stride; the slice must
// cover AlignedStride(width)*height bytes after any alignment offset, or
// ErrInsufficientData is returned.
func FromRaw(data []byte, width, height int, desc Descriptor) (*Buffer, error) {
	stride, err := validStride(width, height, desc, desc.MinAlignment())
	if err != nil {
		return nil, err
	}
	offset := alignOffset(data, desc.MinAlignment())
	if total := stride * height; len(data) < offset+total {
		return nil, ErrInsufficientData
	}
	return &Buffer{
		data:   data,
		offset: offset,
		width:  width,
		height: height,
		stride: stride,
		desc:   desc,
	}, nil
}

// IntoRaw relinquishes the backing bytes for pool reuse. The buffer must
// not be used afterwards; any further access panics.
func (b *Buffer) IntoRaw() []byte {
	data := b.data
	b.data = nil
	return data
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the byte distance between row starts.
func (b *Buffer) Stride() int { return b.stride }

// Descriptor returns the pixel format descriptor.
func (b *Buffer) Descriptor() Descriptor { return b.desc }

// ColorContext returns the attached source color metadata, or nil.
func (b *Buffer) ColorContext() *ColorContext { return b.color }

// SetColorContext attaches source color metadata to the buffer. Views
// created afterwards carry it.
func (b *Buffer) SetColorContext(ctx *ColorContext) { b.color = ctx }

// WorkingSpace returns the current working color space tag.
func (b *Buffer) WorkingSpace() WorkingSpace { return b.ws }

// SetWorkingSpace sets the working color space tag.
func (b *Buffer) SetWorkingSpace(ws WorkingSpace) { b.ws = ws }

// AsSlice borrows the full buffer as a read-only view.
func (b *Buffer) AsSlice() Slice {
	return Slice{
		data:   b.pixelBytes(),
		width:  b.width,
		rows:   b.height,
		stride: b.stride,
		desc:   b.desc,
		ws:     b.ws,
		color:  b.color,
	}
}

// AsSliceMut borrows the full buffer as a mutable view. The buffer must
// not be accessed through any other view while writes are in flight.
func (b *Buffer) AsSliceMut() SliceMut {
	return SliceMut{
		data:   b.pixelBytes(),
		width:  b.width,
		rows:   b.height,
		stride: b.stride,
		desc:   b.desc,
		ws:     b.ws,
		color:  b.color,
	}
}

// Rows borrows rows [y, y+count) as a read-only view. It panics if the
// range exceeds the buffer height.
func (b *Buffer) Rows(y, count int) Slice {
	return b.AsSlice().SubRows(y, count)
}

// RowsMut borrows rows [y, y+count) as a mutable view. It panics if the
// range exceeds the buffer height.
func (b *Buffer) RowsMut(y, count int) SliceMut {
	return b.AsSliceMut().SubRows(y, count)
}

// CropView returns a zero-copy read-only view of the w x h region at
// (x, y), keeping the buffer's stride. See Slice.CropView for the padded
// row contract. It panics if the region is out of bounds.
func (b *Buffer) CropView(x, y, w, h int) Slice {
	return b.AsSlice().CropView(x, y, w, h)
}

// CropCopy copies the w x h region at (x, y) into a new, independent
// buffer with a tight aligned stride. Color metadata and working space
// carry over. It panics if the region is out of bounds.
func (b *Buffer) CropCopy(x, y, w, h int) *Buffer {
	src := b.CropView(x, y, w, h)
	dst := newBuffer(w, h, b.desc.AlignedStride(w), b.desc, b.desc.MinAlignment())
	dst.ws = b.ws
	dst.color = b.color
	rowBytes := w * b.desc.BytesPerPixel()
	for row := 0; row < h; row++ {
		start := dst.offset + row*dst.stride
		copy(dst.data[start:start+rowBytes], src.Row(row))
	}
	return dst
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%dx%d, %s)", b.width, b.height, b.desc)
}

// pixelBytes returns the aligned pixel region of the backing allocation.
func (b *Buffer) pixelBytes() []byte {
	total := b.stride * b.height
	if total == 0 {
		return nil
	}
	return b.data[b.offset : b.offset+total]
}

// validStride checks dimensions and returns the aligned stride.
func validStride(width, height int, desc Descriptor, slack int) (int, error) {
	if width < 0 || height < 0 {
		return 0, ErrInvalidDimensions
	}
	bpp := desc.BytesPerPixel()
	if bpp > 0 && width > math.MaxInt/bpp {
		return 0, ErrInvalidDimensions
	}
	stride := desc.AlignedStride(width)
	if height > 0 && stride > 0 && height > (math.MaxInt-slack)/stride {
		return 0, ErrInvalidDimensions
	}
	return stride, nil
}

// alignOffset returns the smallest k such that &b[k] is a multiple of
// align. Returns 0 for empty slices or align <= 1.
func alignOffset(b []byte, align int) int {
	if align <= 1 || len(b) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return int((uintptr(align) - addr&uintptr(align-1)) & uintptr(align-1))
}
