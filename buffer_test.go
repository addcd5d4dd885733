package pix

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		desc    Descriptor
		wantErr error
	}{
		{name: "RGBA8 4x4", width: 4, height: 4, desc: FormatRGBA8SRGB},
		{name: "RGB8 odd width", width: 7, height: 3, desc: FormatRGB8SRGB},
		{name: "zero width", width: 0, height: 4, desc: FormatRGBA8SRGB},
		{name: "zero height", width: 4, height: 0, desc: FormatRGBA8SRGB},
		{name: "negative width", width: -1, height: 4, desc: FormatRGBA8SRGB, wantErr: ErrInvalidDimensions},
		{name: "negative height", width: 4, height: -1, desc: FormatRGBA8SRGB, wantErr: ErrInvalidDimensions},
		{name: "overflow", width: 1 << 40, height: 1 << 40, desc: FormatRGBA8SRGB, wantErr: ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewBuffer(tt.width, tt.height, tt.desc)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBuffer() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("buffer = %dx%d, want %dx%d", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if want := tt.desc.AlignedStride(tt.width); buf.Stride() != want {
				t.Errorf("stride = %d, want %d", buf.Stride(), want)
			}
		})
	}
}

func TestNewBufferZeroFilled(t *testing.T) {
	buf, err := NewBuffer(3, 3, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	s := buf.AsSlice()
	for y := 0; y < 3; y++ {
		for _, b := range s.Row(y) {
			if b != 0 {
				t.Fatalf("row %d not zero-filled", y)
			}
		}
	}
}

func TestBufferAlignment(t *testing.T) {
	// Wide channel types must hand out rows whose base address is a multiple
	// of the channel size.
	for _, desc := range []Descriptor{FormatGray16, FormatRGBA16, FormatGrayF32Linear, FormatRGBAF32Linear} {
		buf, err := NewBuffer(5, 3, desc)
		if err != nil {
			t.Fatal(err)
		}
		s := buf.AsSlice()
		for y := 0; y < 3; y++ {
			if !addrAligned(s.Row(y), desc.MinAlignment()) {
				t.Errorf("%s row %d not %d-byte aligned", desc, y, desc.MinAlignment())
			}
		}
	}
}

func TestFromRawIntoRaw(t *testing.T) {
	src, err := NewBuffer(4, 4, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	src.AsSliceMut().Row(2)[5] = 0x7F

	raw := src.IntoRaw()
	buf, err := FromRaw(raw, 4, 4, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.AsSlice().Row(2)[5]; got != 0x7F {
		t.Errorf("recycled buffer lost pixel data: got %#x", got)
	}

	if _, err := FromRaw(make([]byte, 10), 4, 4, FormatRGBA8SRGB); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("FromRaw with short data: error = %v, want ErrInsufficientData", err)
	}
	if _, err := FromRaw(nil, -1, 4, FormatRGBA8SRGB); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("FromRaw with negative width: error = %v, want ErrInvalidDimensions", err)
	}
}

func TestIntoRawRelinquishes(t *testing.T) {
	buf, err := NewBuffer(4, 4, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	buf.IntoRaw()
	defer func() {
		if recover() == nil {
			t.Error("pixel access after IntoRaw did not panic")
		}
	}()
	buf.AsSlice()
}

func TestCropCopy(t *testing.T) {
	// 4x4 RGB8 where byte i of row y holds y*100+i (mod 256).
	buf, err := NewBuffer(4, 4, FormatRGB8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	m := buf.AsSliceMut()
	for y := 0; y < 4; y++ {
		row := m.Row(y)
		for i := range row {
			row[i] = byte(y*100 + i)
		}
	}

	crop := buf.CropCopy(1, 1, 2, 2)
	if crop.Width() != 2 || crop.Height() != 2 {
		t.Fatalf("crop = %dx%d, want 2x2", crop.Width(), crop.Height())
	}
	// Unlike CropView, the copy has a tight stride of its own.
	if want := FormatRGB8SRGB.AlignedStride(2); crop.Stride() != want {
		t.Errorf("crop stride = %d, want %d", crop.Stride(), want)
	}
	s := crop.AsSlice()
	if got, want := s.Row(0), []byte{103, 104, 105, 106, 107, 108}; !bytes.Equal(got, want) {
		t.Errorf("crop row 0 = %v, want %v", got, want)
	}
	if got, want := s.Row(1), []byte{203, 204, 205, 206, 207, 208}; !bytes.Equal(got, want) {
		t.Errorf("crop row 1 = %v, want %v", got, want)
	}

	// The copy is independent of the source.
	m.Row(1)[3] = 0
	if s.Row(0)[0] != 103 {
		t.Error("CropCopy aliases the source buffer")
	}
}

func TestCropCopyCarriesMetadata(t *testing.T) {
	buf, err := NewBuffer(4, 4, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	ctx := ProfileSRGB.Context()
	buf.SetColorContext(ctx)
	buf.SetWorkingSpace(WorkingLinear)

	crop := buf.CropCopy(0, 0, 2, 2)
	if crop.ColorContext() != ctx {
		t.Error("CropCopy dropped the color context")
	}
	if crop.WorkingSpace() != WorkingLinear {
		t.Error("CropCopy dropped the working space")
	}
}

func TestNewBufferSIMDAligned(t *testing.T) {
	buf, err := NewBufferSIMDAligned(10, 4, FormatRGB8SRGB, 16)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Stride() != 48 {
		t.Errorf("stride = %d, want 48", buf.Stride())
	}
	s := buf.AsSlice()
	for y := 0; y < 4; y++ {
		if !addrAligned(s.RowWithStride(y), 16) {
			t.Errorf("row %d start not 16-byte aligned", y)
		}
	}

	if _, err := NewBufferSIMDAligned(10, 4, FormatRGB8SRGB, 12); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("non-power-of-two alignment: error = %v, want ErrInvalidDimensions", err)
	}
}

func TestBufferRows(t *testing.T) {
	buf, err := NewBuffer(4, 4, FormatGray8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	m := buf.RowsMut(1, 2)
	if m.Rows() != 2 {
		t.Fatalf("RowsMut(1, 2) rows = %d", m.Rows())
	}
	m.Row(0)[0] = 9

	if got := buf.Rows(1, 1).Row(0)[0]; got != 9 {
		t.Errorf("write through RowsMut not visible: got %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Rows out of range did not panic")
		}
	}()
	buf.Rows(3, 2)
}

func TestBufferCropView(t *testing.T) {
	buf, err := NewBuffer(4, 4, FormatRGB8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	crop := buf.CropView(1, 1, 2, 2)
	if crop.Stride() != buf.Stride() {
		t.Errorf("CropView stride = %d, want parent stride %d", crop.Stride(), buf.Stride())
	}
}
