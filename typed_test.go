package pix

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// roundTrip serializes a typed image into an owned buffer and decodes it
// back, expecting a pixel-exact copy.
func roundTrip[P Pixel](t *testing.T, im *Image[P]) {
	t.Helper()

	buf, err := FromPixelData(im)
	if err != nil {
		t.Fatalf("FromPixelData: %v", err)
	}
	if buf.Width() != im.W || buf.Height() != im.H {
		t.Fatalf("buffer = %dx%d, want %dx%d", buf.Width(), buf.Height(), im.W, im.H)
	}
	if buf.Descriptor() != im.Descriptor() {
		t.Fatalf("buffer descriptor = %v, want %v", buf.Descriptor(), im.Descriptor())
	}

	pd, err := ToPixelData(buf.AsSlice())
	if err != nil {
		t.Fatalf("ToPixelData: %v", err)
	}
	back, ok := pd.(*Image[P])
	if !ok {
		t.Fatalf("ToPixelData returned %T", pd)
	}
	if diff := cmp.Diff(im, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTypedRoundTrip(t *testing.T) {
	t.Run("Gray8", func(t *testing.T) {
		im := NewImage[Gray8](3, 2)
		for i := range im.Pix {
			im.Pix[i] = Gray8{uint8(i * 40)}
		}
		roundTrip(t, im)
	})
	t.Run("GrayAlpha8", func(t *testing.T) {
		im := NewImage[GrayAlpha8](3, 2)
		for i := range im.Pix {
			im.Pix[i] = GrayAlpha8{uint8(i * 40), uint8(255 - i*40)}
		}
		roundTrip(t, im)
	})
	t.Run("RGB8", func(t *testing.T) {
		im := NewImage[RGB8](3, 2)
		for i := range im.Pix {
			im.Pix[i] = RGB8{uint8(i), uint8(i * 2), uint8(i * 3)}
		}
		roundTrip(t, im)
	})
	t.Run("RGBA8", func(t *testing.T) {
		im := NewImage[RGBA8](3, 2)
		for i := range im.Pix {
			im.Pix[i] = RGBA8{uint8(i), uint8(i * 2), uint8(i * 3), 255}
		}
		roundTrip(t, im)
	})
	t.Run("BGRA8", func(t *testing.T) {
		im := NewImage[BGRA8](3, 2)
		for i := range im.Pix {
			im.Pix[i] = BGRA8{uint8(i * 3), uint8(i * 2), uint8(i), 255}
		}
		roundTrip(t, im)
	})
	t.Run("Gray16", func(t *testing.T) {
		im := NewImage[Gray16](3, 2)
		for i := range im.Pix {
			im.Pix[i] = Gray16{uint16(i * 10000)}
		}
		roundTrip(t, im)
	})
	t.Run("GrayAlpha16", func(t *testing.T) {
		im := NewImage[GrayAlpha16](3, 2)
		for i := range im.Pix {
			im.Pix[i] = GrayAlpha16{uint16(i * 10000), 65535}
		}
		roundTrip(t, im)
	})
	t.Run("RGB16", func(t *testing.T) {
		im := NewImage[RGB16](3, 2)
		for i := range im.Pix {
			im.Pix[i] = RGB16{uint16(i * 1000), uint16(i * 2000), uint16(i * 3000)}
		}
		roundTrip(t, im)
	})
	t.Run("RGBA16", func(t *testing.T) {
		im := NewImage[RGBA16](3, 2)
		for i := range im.Pix {
			im.Pix[i] = RGBA16{uint16(i * 1000), uint16(i * 2000), uint16(i * 3000), 65535}
		}
		roundTrip(t, im)
	})
	t.Run("GrayF32", func(t *testing.T) {
		im := NewImage[GrayF32](3, 2)
		for i := range im.Pix {
			im.Pix[i] = GrayF32{float32(i) / 5}
		}
		roundTrip(t, im)
	})
	t.Run("GrayAlphaF32", func(t *testing.T) {
		im := NewImage[GrayAlphaF32](3, 2)
		for i := range im.Pix {
			im.Pix[i] = GrayAlphaF32{float32(i) / 5, 1}
		}
		roundTrip(t, im)
	})
	t.Run("RGBF32", func(t *testing.T) {
		im := NewImage[RGBF32](3, 2)
		for i := range im.Pix {
			im.Pix[i] = RGBF32{float32(i) / 5, float32(i) / 7, float32(i) / 11}
		}
		roundTrip(t, im)
	})
	t.Run("RGBAF32", func(t *testing.T) {
		im := NewImage[RGBAF32](3, 2)
		for i := range im.Pix {
			im.Pix[i] = RGBAF32{float32(i) / 5, float32(i) / 7, float32(i) / 11, 1}
		}
		roundTrip(t, im)
	})
}

func TestToPixelDataUnmappedFormats(t *testing.T) {
	// BGRA only exists as an 8-bit typed variant.
	unmapped := []Descriptor{
		{U16, BGRA, AlphaStraight, TransferUnknown},
		{F32, BGRA, AlphaStraight, TransferLinear},
	}
	for _, desc := range unmapped {
		buf, err := NewBuffer(2, 2, desc)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ToPixelData(buf.AsSlice()); !errors.Is(err, ErrFormatMismatch) {
			t.Errorf("%v: error = %v, want ErrFormatMismatch", desc, err)
		}
	}
}

func TestToPixelDataIgnoresTransfer(t *testing.T) {
	buf, err := NewBuffer(2, 2, FormatRGBA8.WithTransfer(TransferPQ))
	if err != nil {
		t.Fatal(err)
	}
	pd, err := ToPixelData(buf.AsSlice())
	if err != nil {
		t.Fatalf("ToPixelData: %v", err)
	}
	if _, ok := pd.(*Image[RGBA8]); !ok {
		t.Errorf("ToPixelData returned %T, want *Image[RGBA8]", pd)
	}
}

func TestToPixelDataRespectsStride(t *testing.T) {
	// A cropped view must decode only the pixels inside the crop.
	buf, err := NewBuffer(4, 4, FormatGray8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	m := buf.AsSliceMut()
	for y := 0; y < 4; y++ {
		row := m.Row(y)
		for x := range row {
			row[x] = byte(y*4 + x)
		}
	}
	pd, err := ToPixelData(buf.CropView(1, 1, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	im := pd.(*Image[Gray8])
	want := []Gray8{{5}, {6}, {9}, {10}}
	if diff := cmp.Diff(want, im.Pix); diff != "" {
		t.Errorf("decoded crop mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPixelDataShortPix(t *testing.T) {
	im := &Image[RGBA8]{Pix: make([]RGBA8, 3), W: 2, H: 2}
	if _, err := FromPixelData(im); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("error = %v, want ErrInvalidDimensions", err)
	}
}

func TestImageDescriptor(t *testing.T) {
	tests := []struct {
		name string
		got  Descriptor
		want Descriptor
	}{
		{"Gray8", NewImage[Gray8](1, 1).Descriptor(), FormatGray8SRGB},
		{"BGRA8", NewImage[BGRA8](1, 1).Descriptor(), FormatBGRA8SRGB},
		{"Gray16", NewImage[Gray16](1, 1).Descriptor(), FormatGray16},
		{"RGBA16", NewImage[RGBA16](1, 1).Descriptor(), FormatRGBA16},
		{"RGBF32", NewImage[RGBF32](1, 1).Descriptor(), FormatRGBF32Linear},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s descriptor = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestImageAtSet(t *testing.T) {
	im := NewImage[RGBA8](3, 2)
	im.Set(2, 1, RGBA8{1, 2, 3, 4})
	if got := im.At(2, 1); got != (RGBA8{1, 2, 3, 4}) {
		t.Errorf("At(2, 1) = %v", got)
	}
	if got := im.At(0, 0); got != (RGBA8{}) {
		t.Errorf("At(0, 0) = %v, want zero pixel", got)
	}
}
