package pix

import (
	"encoding/binary"
	"math"
)

// Typed pixel structs. Field order matches the byte order in memory; the
// multi-byte types serialize in native endianness, matching what a codec's
// inner loops produce on the running machine.

// Gray8 is an 8-bit grayscale pixel.
type Gray8 struct{ Y uint8 }

// GrayAlpha8 is an 8-bit grayscale pixel with alpha.
type GrayAlpha8 struct{ Y, A uint8 }

// RGB8 is an 8-bit RGB pixel.
type RGB8 struct{ R, G, B uint8 }

// RGBA8 is an 8-bit RGBA pixel.
type RGBA8 struct{ R, G, B, A uint8 }

// BGRA8 is an 8-bit BGRA pixel, the native byte order for Windows and
// DirectX surfaces.
type BGRA8 struct{ B, G, R, A uint8 }

// Gray16 is a 16-bit grayscale pixel.
type Gray16 struct{ Y uint16 }

// GrayAlpha16 is a 16-bit grayscale pixel with alpha.
type GrayAlpha16 struct{ Y, A uint16 }

// RGB16 is a 16-bit RGB pixel.
type RGB16 struct{ R, G, B uint16 }

// RGBA16 is a 16-bit RGBA pixel.
type RGBA16 struct{ R, G, B, A uint16 }

// GrayF32 is a 32-bit floating-point grayscale pixel. Values are in
// [0, 1] for sRGB-encoded data.
type GrayF32 struct{ Y float32 }

// GrayAlphaF32 is a 32-bit floating-point grayscale pixel with alpha.
type GrayAlphaF32 struct{ Y, A float32 }

// RGBF32 is a 32-bit floating-point RGB pixel.
type RGBF32 struct{ R, G, B float32 }

// RGBAF32 is a 32-bit floating-point RGBA pixel.
type RGBAF32 struct{ R, G, B, A float32 }

// Pixel is the constraint satisfied by the typed pixel structs.
type Pixel interface {
	Gray8 | GrayAlpha8 | RGB8 | RGBA8 | BGRA8 |
		Gray16 | GrayAlpha16 | RGB16 | RGBA16 |
		GrayF32 | GrayAlphaF32 | RGBF32 | RGBAF32

	put(dst []byte)
	descriptor() Descriptor
}

// Image is a tightly packed typed pixel image. Pix holds W*H pixels in
// row-major order.
type Image[P Pixel] struct {
	Pix  []P
	W, H int
}

// NewImage allocates a zero-filled typed image.
func NewImage[P Pixel](w, h int) *Image[P] {
	return &Image[P]{Pix: make([]P, w*h), W: w, H: h}
}

// At returns the pixel at (x, y).
func (im *Image[P]) At(x, y int) P { return im.Pix[y*im.W+x] }

// Set writes the pixel at (x, y).
func (im *Image[P]) Set(x, y int, p P) { im.Pix[y*im.W+x] = p }

// Width returns the image width in pixels.
func (im *Image[P]) Width() int { return im.W }

// Height returns the image height in pixels.
func (im *Image[P]) Height() int { return im.H }

// Descriptor returns the pixel format matching the element type. The
// 8-bit types are conventionally sRGB, the float types conventionally
// linear; 16-bit types have no standard convention and report an unknown
// transfer.
func (im *Image[P]) Descriptor() Descriptor {
	var p P
	return p.descriptor()
}

func (im *Image[P]) isPixelData() {}

// PixelData is decoded pixel data in one of the typed image variants.
// It is implemented by *Image[P] for every Pixel type.
type PixelData interface {
	Width() int
	Height() int
	Descriptor() Descriptor

	isPixelData()
}

// FromPixelData copies typed pixel data into an owned Buffer with an
// aligned stride. Multi-byte channels serialize in native endianness.
// Returns ErrInvalidDimensions if the pixel slice does not cover
// Width*Height elements.
func FromPixelData(pd PixelData) (*Buffer, error) {
	switch im := pd.(type) {
	case *Image[Gray8]:
		return imageToBuffer(im)
	case *Image[GrayAlpha8]:
		return imageToBuffer(im)
	case *Image[RGB8]:
		return imageToBuffer(im)
	case *Image[RGBA8]:
		return imageToBuffer(im)
	case *Image[BGRA8]:
		return imageToBuffer(im)
	case *Image[Gray16]:
		return imageToBuffer(im)
	case *Image[GrayAlpha16]:
		return imageToBuffer(im)
	case *Image[RGB16]:
		return imageToBuffer(im)
	case *Image[RGBA16]:
		return imageToBuffer(im)
	case *Image[GrayF32]:
		return imageToBuffer(im)
	case *Image[GrayAlphaF32]:
		return imageToBuffer(im)
	case *Image[RGBF32]:
		return imageToBuffer(im)
	case *Image[RGBAF32]:
		return imageToBuffer(im)
	}
	return nil, ErrFormatMismatch
}

// ToPixelData copies a view into the typed image variant matching its
// descriptor's layout and channel type. The transfer function does not
// participate in matching. Returns ErrFormatMismatch for combinations
// with no typed variant, such as 16-bit or float BGRA.
func ToPixelData(s Slice) (PixelData, error) {
	switch {
	case s.desc.Layout == Gray && s.desc.ChannelType == U8:
		return decodeImage(s, func(b []byte) Gray8 { return Gray8{b[0]} }), nil
	case s.desc.Layout == GrayAlpha && s.desc.ChannelType == U8:
		return decodeImage(s, func(b []byte) GrayAlpha8 { return GrayAlpha8{b[0], b[1]} }), nil
	case s.desc.Layout == RGB && s.desc.ChannelType == U8:
		return decodeImage(s, func(b []byte) RGB8 { return RGB8{b[0], b[1], b[2]} }), nil
	case s.desc.Layout == RGBA && s.desc.ChannelType == U8:
		return decodeImage(s, func(b []byte) RGBA8 { return RGBA8{b[0], b[1], b[2], b[3]} }), nil
	case s.desc.Layout == BGRA && s.desc.ChannelType == U8:
		return decodeImage(s, func(b []byte) BGRA8 { return BGRA8{b[0], b[1], b[2], b[3]} }), nil
	case s.desc.Layout == Gray && s.desc.ChannelType == U16:
		return decodeImage(s, func(b []byte) Gray16 { return Gray16{getU16(b)} }), nil
	case s.desc.Layout == GrayAlpha && s.desc.ChannelType == U16:
		return decodeImage(s, func(b []byte) GrayAlpha16 { return GrayAlpha16{getU16(b), getU16(b[2:])} }), nil
	case s.desc.Layout == RGB && s.desc.ChannelType == U16:
		return decodeImage(s, func(b []byte) RGB16 { return RGB16{getU16(b), getU16(b[2:]), getU16(b[4:])} }), nil
	case s.desc.Layout == RGBA && s.desc.ChannelType == U16:
		return decodeImage(s, func(b []byte) RGBA16 {
			return RGBA16{getU16(b), getU16(b[2:]), getU16(b[4:]), getU16(b[6:])}
		}), nil
	case s.desc.Layout == Gray && s.desc.ChannelType == F32:
		return decodeImage(s, func(b []byte) GrayF32 { return GrayF32{getF32(b)} }), nil
	case s.desc.Layout == GrayAlpha && s.desc.ChannelType == F32:
		return decodeImage(s, func(b []byte) GrayAlphaF32 { return GrayAlphaF32{getF32(b), getF32(b[4:])} }), nil
	case s.desc.Layout == RGB && s.desc.ChannelType == F32:
		return decodeImage(s, func(b []byte) RGBF32 { return RGBF32{getF32(b), getF32(b[4:]), getF32(b[8:])} }), nil
	case s.desc.Layout == RGBA && s.desc.ChannelType == F32:
		return decodeImage(s, func(b []byte) RGBAF32 {
			return RGBAF32{getF32(b), getF32(b[4:]), getF32(b[8:]), getF32(b[12:])}
		}), nil
	}
	return nil, ErrFormatMismatch
}

func imageToBuffer[P Pixel](im *Image[P]) (*Buffer, error) {
	if im.W < 0 || im.H < 0 || (im.W > 0 && len(im.Pix) < im.W*im.H) {
		return nil, ErrInvalidDimensions
	}
	buf, err := NewBuffer(im.W, im.H, im.Descriptor())
	if err != nil {
		return nil, err
	}
	bpp := buf.desc.BytesPerPixel()
	dst := buf.AsSliceMut()
	for y := 0; y < im.H; y++ {
		row := dst.Row(y)
		src := im.Pix[y*im.W : (y+1)*im.W]
		for x, p := range src {
			p.put(row[x*bpp:])
		}
	}
	return buf, nil
}

func decodeImage[P Pixel](s Slice, load func([]byte) P) *Image[P] {
	im := NewImage[P](s.width, s.rows)
	bpp := s.desc.BytesPerPixel()
	for y := 0; y < s.rows; y++ {
		row := s.Row(y)
		dst := im.Pix[y*s.width : (y+1)*s.width]
		for x := range dst {
			dst[x] = load(row[x*bpp:])
		}
	}
	return im
}

func getU16(b []byte) uint16 { return binary.NativeEndian.Uint16(b) }
func putU16(b []byte, v uint16) {
	binary.NativeEndian.PutUint16(b, v)
}

func getF32(b []byte) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(b))
}
func putF32(b []byte, v float32) {
	binary.NativeEndian.PutUint32(b, math.Float32bits(v))
}

func (p Gray8) put(dst []byte) { dst[0] = p.Y }
func (p GrayAlpha8) put(dst []byte) {
	dst[0], dst[1] = p.Y, p.A
}
func (p RGB8) put(dst []byte) {
	dst[0], dst[1], dst[2] = p.R, p.G, p.B
}
func (p RGBA8) put(dst []byte) {
	dst[0], dst[1], dst[2], dst[3] = p.R, p.G, p.B, p.A
}
func (p BGRA8) put(dst []byte) {
	dst[0], dst[1], dst[2], dst[3] = p.B, p.G, p.R, p.A
}
func (p Gray16) put(dst []byte) { putU16(dst, p.Y) }
func (p GrayAlpha16) put(dst []byte) {
	putU16(dst, p.Y)
	putU16(dst[2:], p.A)
}
func (p RGB16) put(dst []byte) {
	putU16(dst, p.R)
	putU16(dst[2:], p.G)
	putU16(dst[4:], p.B)
}
func (p RGBA16) put(dst []byte) {
	putU16(dst, p.R)
	putU16(dst[2:], p.G)
	putU16(dst[4:], p.B)
	putU16(dst[6:], p.A)
}
func (p GrayF32) put(dst []byte) { putF32(dst, p.Y) }
func (p GrayAlphaF32) put(dst []byte) {
	putF32(dst, p.Y)
	putF32(dst[4:], p.A)
}
func (p RGBF32) put(dst []byte) {
	putF32(dst, p.R)
	putF32(dst[4:], p.G)
	putF32(dst[8:], p.B)
}
func (p RGBAF32) put(dst []byte) {
	putF32(dst, p.R)
	putF32(dst[4:], p.G)
	putF32(dst[8:], p.B)
	putF32(dst[12:], p.A)
}

func (Gray8) descriptor() Descriptor        { return FormatGray8SRGB }
func (GrayAlpha8) descriptor() Descriptor   { return FormatGrayAlpha8SRGB }
func (RGB8) descriptor() Descriptor         { return FormatRGB8SRGB }
func (RGBA8) descriptor() Descriptor        { return FormatRGBA8SRGB }
func (BGRA8) descriptor() Descriptor        { return FormatBGRA8SRGB }
func (Gray16) descriptor() Descriptor       { return FormatGray16 }
func (GrayAlpha16) descriptor() Descriptor  { return FormatGrayAlpha16 }
func (RGB16) descriptor() Descriptor        { return FormatRGB16 }
func (RGBA16) descriptor() Descriptor       { return FormatRGBA16 }
func (GrayF32) descriptor() Descriptor      { return FormatGrayF32Linear }
func (GrayAlphaF32) descriptor() Descriptor { return FormatGrayAlphaF32Linear }
func (RGBF32) descriptor() Descriptor       { return FormatRGBF32Linear }
func (RGBAF32) descriptor() Descriptor      { return FormatRGBAF32Linear }
