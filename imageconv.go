package pix

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage copies a standard library image into an owned Buffer.
//
// *image.Gray becomes a Gray8 buffer and *image.NRGBA becomes an RGBA8
// buffer, row by row. Every other source type is converted through
// x/image/draw into straight-alpha RGBA8 first. The result is tagged
// sRGB, matching the stdlib image model.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf, err := NewBuffer(w, h, FormatGray8SRGB)
		if err != nil {
			return nil, err
		}
		dst := buf.AsSliceMut()
		for y := 0; y < h; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Row(y), src.Pix[off:])
		}
		return buf, nil

	case *image.NRGBA:
		buf, err := NewBuffer(w, h, FormatRGBA8SRGB)
		if err != nil {
			return nil, err
		}
		dst := buf.AsSliceMut()
		for y := 0; y < h; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Row(y), src.Pix[off:])
		}
		return buf, nil
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Copy(nrgba, image.Point{}, img, bounds, draw.Src, nil)
	return FromImage(nrgba)
}

// ToImage copies a view into the closest standard library image type:
// Gray8 to *image.Gray, Gray16 to *image.Gray16, RGBA8 to *image.NRGBA,
// RGBA16 to *image.NRGBA64; RGB8, GrayAlpha8 and BGRA8 expand or
// swizzle into *image.NRGBA. Formats with no stdlib counterpart (the
// float formats, 16-bit GrayAlpha) return ErrFormatMismatch.
//
// The stdlib 16-bit types store big-endian samples, so those paths
// re-encode each sample rather than copying rows.
func ToImage(s Slice) (image.Image, error) {
	w, h := s.Width(), s.Rows()
	r := image.Rect(0, 0, w, h)

	switch {
	case s.desc.Layout == Gray && s.desc.ChannelType == U8:
		img := image.NewGray(r)
		for y := 0; y < h; y++ {
			copy(img.Pix[y*img.Stride:], s.Row(y))
		}
		return img, nil

	case s.desc.Layout == Gray && s.desc.ChannelType == U16:
		img := image.NewGray16(r)
		for y := 0; y < h; y++ {
			row := s.Row(y)
			out := img.Pix[y*img.Stride:]
			for x := 0; x < w; x++ {
				v := getU16(row[x*2:])
				out[x*2] = uint8(v >> 8)
				out[x*2+1] = uint8(v)
			}
		}
		return img, nil

	case s.desc.Layout == GrayAlpha && s.desc.ChannelType == U8:
		img := image.NewNRGBA(r)
		for y := 0; y < h; y++ {
			row := s.Row(y)
			out := img.Pix[y*img.Stride:]
			for x := 0; x < w; x++ {
				yv, a := row[x*2], row[x*2+1]
				out[x*4], out[x*4+1], out[x*4+2], out[x*4+3] = yv, yv, yv, a
			}
		}
		return img, nil

	case s.desc.Layout == RGB && s.desc.ChannelType == U8:
		img := image.NewNRGBA(r)
		for y := 0; y < h; y++ {
			row := s.Row(y)
			out := img.Pix[y*img.Stride:]
			for x := 0; x < w; x++ {
				out[x*4] = row[x*3]
				out[x*4+1] = row[x*3+1]
				out[x*4+2] = row[x*3+2]
				out[x*4+3] = 0xFF
			}
		}
		return img, nil

	case s.desc.Layout == RGBA && s.desc.ChannelType == U8:
		img := image.NewNRGBA(r)
		for y := 0; y < h; y++ {
			copy(img.Pix[y*img.Stride:], s.Row(y))
		}
		return img, nil

	case s.desc.Layout == BGRA && s.desc.ChannelType == U8:
		img := image.NewNRGBA(r)
		for y := 0; y < h; y++ {
			row := s.Row(y)
			out := img.Pix[y*img.Stride:]
			for x := 0; x < w; x++ {
				out[x*4] = row[x*4+2]
				out[x*4+1] = row[x*4+1]
				out[x*4+2] = row[x*4]
				out[x*4+3] = row[x*4+3]
			}
		}
		return img, nil

	case s.desc.Layout == RGBA && s.desc.ChannelType == U16:
		img := image.NewNRGBA64(r)
		for y := 0; y < h; y++ {
			row := s.Row(y)
			out := img.Pix[y*img.Stride:]
			for x := 0; x < w*4; x++ {
				v := getU16(row[x*2:])
				out[x*2] = uint8(v >> 8)
				out[x*2+1] = uint8(v)
			}
		}
		return img, nil
	}
	return nil, ErrFormatMismatch
}

