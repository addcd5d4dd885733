package pix

import (
	"fmt"
	"math"
	"unsafe"
)

// Slice is a read-only borrowed view of pixel data.
//
// It represents a contiguous region of pixel rows, possibly a sub-region of
// a larger buffer. All rows share the same stride. A Slice never owns the
// bytes it references; the caller must keep the backing memory alive for the
// lifetime of the view.
//
// A Slice optionally carries a ColorContext and WorkingSpace so source color
// metadata travels with the pixels through a pipeline; this package never
// inspects either.
//
// Concurrency: any number of goroutines may read through overlapping Slices,
// but no goroutine may write the same bytes concurrently. Writers go through
// SliceMut, which must not overlap any other live view; that discipline is
// the caller's responsibility and is not checked at access time.
type Slice struct {
	data   []byte
	width  int
	rows   int
	stride int
	desc   Descriptor
	ws     WorkingSpace
	color  *ColorContext
}

// SliceMut is a mutable borrowed view of pixel data.
//
// Same shape and validation as Slice, with writable rows. A SliceMut grants
// exclusive access to its byte range: while it is live, no other view
// (mutable or not) may overlap the same bytes.
type SliceMut struct {
	data   []byte
	width  int
	rows   int
	stride int
	desc   Descriptor
	ws     WorkingSpace
	color  *ColorContext
}

// NewSlice wraps externally owned bytes as a read-only view, validating
// geometry and alignment.
//
// Validation order: width*BytesPerPixel overflow (ErrInvalidDimensions),
// stride below the row minimum (ErrStrideTooSmall), stride not a pixel
// multiple (ErrStrideNotPixelAligned), short data (ErrInsufficientData),
// misaligned base address (ErrAlignmentViolation).
func NewSlice(data []byte, width, rows, stride int, desc Descriptor) (Slice, error) {
	if err := checkViewGeometry(data, width, rows, stride, desc); err != nil {
		return Slice{}, err
	}
	return Slice{data: data, width: width, rows: rows, stride: stride, desc: desc}, nil
}

// NewSliceMut wraps externally owned bytes as a mutable view, with the same
// validation as NewSlice.
func NewSliceMut(data []byte, width, rows, stride int, desc Descriptor) (SliceMut, error) {
	if err := checkViewGeometry(data, width, rows, stride, desc); err != nil {
		return SliceMut{}, err
	}
	return SliceMut{data: data, width: width, rows: rows, stride: stride, desc: desc}, nil
}

// Width returns the view width in pixels.
func (s Slice) Width() int { return s.width }

// Rows returns the number of rows in the view.
func (s Slice) Rows() int { return s.rows }

// Stride returns the byte distance between row starts.
func (s Slice) Stride() int { return s.stride }

// Descriptor returns the pixel format descriptor.
func (s Slice) Descriptor() Descriptor { return s.desc }

// ColorContext returns the attached source color metadata, or nil.
func (s Slice) ColorContext() *ColorContext { return s.color }

// WithColorContext returns a copy of the view with color metadata attached.
func (s Slice) WithColorContext(ctx *ColorContext) Slice {
	s.color = ctx
	return s
}

// WorkingSpace returns the current working color space tag.
func (s Slice) WorkingSpace() WorkingSpace { return s.ws }

// WithWorkingSpace returns a copy of the view with a different working
// color space tag.
func (s Slice) WithWorkingSpace(ws WorkingSpace) Slice {
	s.ws = ws
	return s
}

// IsContiguous reports whether rows are tightly packed (no stride padding).
// When true the entire pixel data is one contiguous byte run.
func (s Slice) IsContiguous() bool {
	return s.stride == s.width*s.desc.BytesPerPixel()
}

// AsContiguousBytes returns the raw pixel bytes without copying when rows
// are tightly packed. The second result is false when stride padding exists.
func (s Slice) AsContiguousBytes() ([]byte, bool) {
	if !s.IsContiguous() {
		return nil, false
	}
	return s.data[:s.rows*s.stride], true
}

// ContiguousBytes returns the pixel bytes with stride padding stripped,
// copying only if padding exists. Callers must treat the result as
// read-only; it may alias the view's backing memory.
func (s Slice) ContiguousBytes() []byte {
	if b, ok := s.AsContiguousBytes(); ok {
		return b
	}
	rowBytes := s.width * s.desc.BytesPerPixel()
	buf := make([]byte, 0, rowBytes*s.rows)
	for y := 0; y < s.rows; y++ {
		buf = append(buf, s.Row(y)...)
	}
	return buf
}

// Row returns the pixel bytes for row y: exactly width*BytesPerPixel bytes,
// no stride padding. Rows of a zero-width view are nil. The returned bytes
// must not be modified.
//
// Row panics if y is out of range.
func (s Slice) Row(y int) []byte {
	if y < 0 || y >= s.rows {
		panic(fmt.Sprintf("pix: row index %d out of bounds (rows %d)", y, s.rows))
	}
	rowBytes := s.width * s.desc.BytesPerPixel()
	if rowBytes == 0 {
		return nil
	}
	start := y * s.stride
	return s.data[start : start+rowBytes]
}

// RowWithStride returns the full stride span for row y, including any
// padding bytes after the pixel data.
//
// On a cropped view this span can cover bytes logically outside the crop
// rectangle (always inside the parent allocation); see CropView. It panics
// if y is out of range, or if the backing data ends before a full stride —
// possible on the last row of a cropped view.
func (s Slice) RowWithStride(y int) []byte {
	if y < 0 || y >= s.rows {
		panic(fmt.Sprintf("pix: row index %d out of bounds (rows %d)", y, s.rows))
	}
	start := y * s.stride
	return s.data[start : start+s.stride]
}

// SubRows returns a view of rows [y, y+count) sharing this view's stride.
// A zero count yields a well-formed empty view that references no memory.
//
// SubRows panics if y+count exceeds the row count.
func (s Slice) SubRows(y, count int) Slice {
	checkRowRange(y, count, s.rows)
	out := s
	if count == 0 {
		out.data = nil
		out.rows = 0
		return out
	}
	start := y * s.stride
	end := (y+count-1)*s.stride + s.width*s.desc.BytesPerPixel()
	out.data = s.data[start:end]
	out.rows = count
	return out
}

// CropView returns a zero-copy view of the w x h region at (x, y).
//
// The cropped view keeps the parent's stride rather than tightening it to
// the crop width. RowWithStride on an edge crop can therefore expose bytes
// logically outside the crop rectangle (never outside the parent
// allocation); Row remains exact. Downstream code may rely on walking the
// padded row, so this contract is deliberate. Use Buffer.CropCopy for an
// independent, tightly packed copy.
//
// Zero w or h yields a well-formed empty view referencing no memory.
// CropView panics if the region exceeds the view bounds.
func (s Slice) CropView(x, y, w, h int) Slice {
	checkCropRange(x, y, w, h, s.width, s.rows)
	out := s
	out.width = w
	out.rows = h
	if w == 0 || h == 0 {
		out.data = nil
		return out
	}
	bpp := s.desc.BytesPerPixel()
	start := y*s.stride + x*bpp
	end := (y+h-1)*s.stride + (x+w)*bpp
	out.data = s.data[start:end]
	return out
}

func (s Slice) String() string {
	return fmt.Sprintf("Slice(%dx%d, %s)", s.width, s.rows, s.desc)
}

// Width returns the view width in pixels.
func (s SliceMut) Width() int { return s.width }

// Rows returns the number of rows in the view.
func (s SliceMut) Rows() int { return s.rows }

// Stride returns the byte distance between row starts.
func (s SliceMut) Stride() int { return s.stride }

// Descriptor returns the pixel format descriptor.
func (s SliceMut) Descriptor() Descriptor { return s.desc }

// ColorContext returns the attached source color metadata, or nil.
func (s SliceMut) ColorContext() *ColorContext { return s.color }

// WithColorContext returns a copy of the view with color metadata attached.
func (s SliceMut) WithColorContext(ctx *ColorContext) SliceMut {
	s.color = ctx
	return s
}

// WorkingSpace returns the current working color space tag.
func (s SliceMut) WorkingSpace() WorkingSpace { return s.ws }

// WithWorkingSpace returns a copy of the view with a different working
// color space tag.
func (s SliceMut) WithWorkingSpace(ws WorkingSpace) SliceMut {
	s.ws = ws
	return s
}

// Slice reborrows the mutable view as a read-only Slice. The SliceMut must
// not be written through while the returned Slice is in use.
func (s SliceMut) Slice() Slice {
	return Slice{
		data:   s.data,
		width:  s.width,
		rows:   s.rows,
		stride: s.stride,
		desc:   s.desc,
		ws:     s.ws,
		color:  s.color,
	}
}

// Row returns the writable pixel bytes for row y: exactly
// width*BytesPerPixel bytes, no stride padding. Rows of a zero-width view
// are nil.
//
// Row panics if y is out of range.
func (s SliceMut) Row(y int) []byte {
	if y < 0 || y >= s.rows {
		panic(fmt.Sprintf("pix: row index %d out of bounds (rows %d)", y, s.rows))
	}
	rowBytes := s.width * s.desc.BytesPerPixel()
	if rowBytes == 0 {
		return nil
	}
	start := y * s.stride
	return s.data[start : start+rowBytes]
}

// RowWithStride returns the full writable stride span for row y, including
// padding. Same caveats as Slice.RowWithStride.
func (s SliceMut) RowWithStride(y int) []byte {
	if y < 0 || y >= s.rows {
		panic(fmt.Sprintf("pix: row index %d out of bounds (rows %d)", y, s.rows))
	}
	start := y * s.stride
	return s.data[start : start+s.stride]
}

// SubRows returns a mutable view of rows [y, y+count) sharing this view's
// stride. The parent must not be accessed through overlapping rows while
// the sub-view is written. A zero count yields a well-formed empty view.
//
// SubRows panics if y+count exceeds the row count.
func (s SliceMut) SubRows(y, count int) SliceMut {
	checkRowRange(y, count, s.rows)
	out := s
	if count == 0 {
		out.data = nil
		out.rows = 0
		return out
	}
	start := y * s.stride
	end := (y+count-1)*s.stride + s.width*s.desc.BytesPerPixel()
	out.data = s.data[start:end]
	out.rows = count
	return out
}

func (s SliceMut) String() string {
	return fmt.Sprintf("SliceMut(%dx%d, %s)", s.width, s.rows, s.desc)
}

// checkViewGeometry validates dimensions, stride, data length and alignment
// for a view over data. Shared by NewSlice, NewSliceMut and Buffer.FromRaw.
func checkViewGeometry(data []byte, width, rows, stride int, desc Descriptor) error {
	minStride, err := minRowBytes(width, desc)
	if err != nil {
		return err
	}
	if rows < 0 {
		return ErrInvalidDimensions
	}
	bpp := desc.BytesPerPixel()
	if stride < minStride {
		return ErrStrideTooSmall
	}
	if bpp > 0 && stride%bpp != 0 {
		return ErrStrideNotPixelAligned
	}
	if rows > 0 {
		required, err := requiredBytes(rows, stride, minStride)
		if err != nil {
			return err
		}
		if len(data) < required {
			return ErrInsufficientData
		}
	}
	if !addrAligned(data, desc.MinAlignment()) {
		return ErrAlignmentViolation
	}
	return nil
}

// minRowBytes returns width*BytesPerPixel with overflow checking.
func minRowBytes(width int, desc Descriptor) (int, error) {
	bpp := desc.BytesPerPixel()
	if width < 0 || (bpp > 0 && width > math.MaxInt/bpp) {
		return 0, ErrInvalidDimensions
	}
	return width * bpp, nil
}

// requiredBytes returns (rows-1)*stride + minStride with overflow checking.
func requiredBytes(rows, stride, minStride int) (int, error) {
	preceding := rows - 1
	if stride > 0 && preceding > math.MaxInt/stride {
		return 0, ErrInvalidDimensions
	}
	preceding *= stride
	if preceding > math.MaxInt-minStride {
		return 0, ErrInvalidDimensions
	}
	return preceding + minStride, nil
}

// addrAligned reports whether the slice's base address is a multiple of
// align. Empty slices are trivially aligned.
func addrAligned(b []byte, align int) bool {
	if align <= 1 || len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))&uintptr(align-1) == 0
}

func checkRowRange(y, count, rows int) {
	if y < 0 || count < 0 || y > rows || count > rows-y {
		panic(fmt.Sprintf("pix: rows [%d, %d+%d) out of bounds (rows %d)", y, y, count, rows))
	}
}

func checkCropRange(x, y, w, h, width, rows int) {
	if x < 0 || w < 0 || x > width || w > width-x {
		panic(fmt.Sprintf("pix: crop x=%d w=%d exceeds width %d", x, w, width))
	}
	if y < 0 || h < 0 || y > rows || h > rows-y {
		panic(fmt.Sprintf("pix: crop y=%d h=%d exceeds rows %d", y, h, rows))
	}
}
