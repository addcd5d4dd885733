package pix

import "testing"

func TestAlignedStride(t *testing.T) {
	tests := []struct {
		name  string
		desc  Descriptor
		width int
		want  int
	}{
		{"RGB8 width 10", FormatRGB8SRGB, 10, 30},
		{"RGB16 width 10", FormatRGB16, 10, 60},
		{"RGBF32 width 10", FormatRGBF32Linear, 10, 120},
		{"Gray8 width 1", FormatGray8SRGB, 1, 1},
		{"RGBA8 width 7", FormatRGBA8SRGB, 7, 28},
		{"GrayAlpha16 width 5", FormatGrayAlpha16, 5, 20},
		{"BGRA8 width 3", FormatBGRA8SRGB, 3, 12},
		{"zero width", FormatRGBA8SRGB, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.AlignedStride(tt.width); got != tt.want {
				t.Errorf("AlignedStride(%d) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestSIMDAlignedStride(t *testing.T) {
	tests := []struct {
		name  string
		desc  Descriptor
		width int
		simd  int
		want  int
	}{
		{"RGB8 width 10 simd 16", FormatRGB8SRGB, 10, 16, 48},
		{"RGBA8 width 10 simd 16", FormatRGBA8SRGB, 10, 16, 48},
		{"RGBA8 width 4 simd 16", FormatRGBA8SRGB, 4, 16, 16},
		{"Gray16 width 3 simd 16", FormatGray16, 3, 16, 16},
		{"RGBF32 width 8 simd 32", FormatRGBF32Linear, 8, 32, 96},
		{"zero width", FormatRGB8SRGB, 0, 16, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.desc.SIMDAlignedStride(tt.width, tt.simd)
			if got != tt.want {
				t.Errorf("SIMDAlignedStride(%d, %d) = %d, want %d", tt.width, tt.simd, got, tt.want)
			}
			if tt.width > 0 && got%tt.desc.BytesPerPixel() != 0 {
				t.Errorf("stride %d is not pixel aligned", got)
			}
		})
	}
}

func TestDescriptorDerived(t *testing.T) {
	tests := []struct {
		name     string
		desc     Descriptor
		bpp      int
		channels int
		align    int
		hasAlpha bool
	}{
		{"Gray8", FormatGray8SRGB, 1, 1, 1, false},
		{"GrayAlpha8", FormatGrayAlpha8SRGB, 2, 2, 1, true},
		{"RGB8", FormatRGB8SRGB, 3, 3, 1, false},
		{"RGBA8", FormatRGBA8SRGB, 4, 4, 1, true},
		{"BGRA8", FormatBGRA8SRGB, 4, 4, 1, true},
		{"Gray16", FormatGray16, 2, 1, 2, false},
		{"RGBA16", FormatRGBA16, 8, 4, 2, true},
		{"RGBF32", FormatRGBF32Linear, 12, 3, 4, false},
		{"RGBAF32", FormatRGBAF32Linear, 16, 4, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.desc.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.desc.MinAlignment(); got != tt.align {
				t.Errorf("MinAlignment() = %d, want %d", got, tt.align)
			}
			if got := tt.desc.HasAlpha(); got != tt.hasAlpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.hasAlpha)
			}
		})
	}
}

func TestTransferFromCICP(t *testing.T) {
	tests := []struct {
		code   uint8
		want   TransferFunction
		wantOK bool
	}{
		{1, TransferBT709, true},
		{8, TransferLinear, true},
		{13, TransferSRGB, true},
		{16, TransferPQ, true},
		{18, TransferHLG, true},
		{0, TransferUnknown, false},
		{2, TransferUnknown, false},
		{99, TransferUnknown, false},
	}

	for _, tt := range tests {
		got, ok := TransferFromCICP(tt.code)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("TransferFromCICP(%d) = (%v, %v), want (%v, %v)",
				tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLayoutCompatible(t *testing.T) {
	if !FormatRGB8.LayoutCompatible(FormatRGB8SRGB) {
		t.Error("transfer-agnostic RGB8 should be layout-compatible with sRGB RGB8")
	}
	if !FormatBGRA8SRGB.LayoutCompatible(FormatBGRX8SRGB) {
		t.Error("BGRA8 and BGRX8 differ only in alpha mode, should be compatible")
	}
	if FormatRGB8SRGB.LayoutCompatible(FormatRGBA8SRGB) {
		t.Error("RGB8 should not be layout-compatible with RGBA8")
	}
	if FormatRGB8SRGB.LayoutCompatible(FormatRGB16SRGB) {
		t.Error("RGB8 should not be layout-compatible with RGB16")
	}
}

func TestWithTransfer(t *testing.T) {
	desc := FormatRGBA8
	if !desc.IsUnknownTransfer() {
		t.Fatal("FormatRGBA8 should start with an unknown transfer")
	}
	resolved := desc.WithTransfer(TransferSRGB)
	if resolved != FormatRGBA8SRGB {
		t.Errorf("resolved = %v, want %v", resolved, FormatRGBA8SRGB)
	}
	// The original descriptor is unchanged.
	if !desc.IsUnknownTransfer() {
		t.Error("WithTransfer must not modify the receiver")
	}
}

func TestIsLinear(t *testing.T) {
	if !FormatRGBF32Linear.IsLinear() {
		t.Error("FormatRGBF32Linear should be linear")
	}
	if FormatRGB8SRGB.IsLinear() {
		t.Error("sRGB format should not be linear")
	}
	// Unknown transfer is not linear until resolved.
	if FormatRGBF32.IsLinear() {
		t.Error("unknown transfer must not report linear")
	}
}

func TestDescriptorString(t *testing.T) {
	if got := FormatRGBA8SRGB.String(); got != "RGBA U8 sRGB" {
		t.Errorf("String() = %q", got)
	}
	if got := FormatGrayF32Linear.String(); got != "Gray F32 Linear" {
		t.Errorf("String() = %q", got)
	}
}
