package pix

// ChannelType is the storage type of a single channel value.
type ChannelType uint8

const (
	// U8 is an 8-bit unsigned integer channel (1 byte).
	U8 ChannelType = 1

	// U16 is a 16-bit unsigned integer channel (2 bytes).
	U16 ChannelType = 2

	// F32 is a 32-bit floating point channel (4 bytes).
	F32 ChannelType = 4
)

// ByteSize returns the byte size of a single channel value.
func (t ChannelType) ByteSize() int {
	return int(t)
}

// String returns a string representation of the channel type.
func (t ChannelType) String() string {
	switch t {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case F32:
		return "F32"
	default:
		return "Unknown"
	}
}

// ChannelLayout is the number and meaning of channels in a pixel.
type ChannelLayout uint8

const (
	// Gray is a single luminance channel.
	Gray ChannelLayout = iota + 1

	// GrayAlpha is luminance plus alpha.
	GrayAlpha

	// RGB is red, green, blue.
	RGB

	// RGBA is red, green, blue, alpha.
	RGBA

	// BGRA is blue, green, red, alpha (Windows/DirectX byte order).
	BGRA
)

// Channels returns the number of channels in this layout.
func (l ChannelLayout) Channels() int {
	switch l {
	case Gray:
		return 1
	case GrayAlpha:
		return 2
	case RGB:
		return 3
	case RGBA, BGRA:
		return 4
	default:
		return 0
	}
}

// HasAlpha returns true if this layout includes an alpha channel.
func (l ChannelLayout) HasAlpha() bool {
	switch l {
	case GrayAlpha, RGBA, BGRA:
		return true
	default:
		return false
	}
}

// String returns a string representation of the layout.
func (l ChannelLayout) String() string {
	switch l {
	case Gray:
		return "Gray"
	case GrayAlpha:
		return "GrayAlpha"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	default:
		return "Unknown"
	}
}

// AlphaMode describes how the alpha channel is interpreted.
// It is informational only; no arithmetic in this package depends on it.
type AlphaMode uint8

const (
	// AlphaNone means no meaningful alpha channel.
	AlphaNone AlphaMode = iota

	// AlphaStraight is straight (unassociated) alpha.
	AlphaStraight

	// AlphaPremultiplied is premultiplied (associated) alpha.
	AlphaPremultiplied
)

// String returns a string representation of the alpha mode.
func (a AlphaMode) String() string {
	switch a {
	case AlphaNone:
		return "None"
	case AlphaStraight:
		return "Straight"
	case AlphaPremultiplied:
		return "Premultiplied"
	default:
		return "Unknown"
	}
}

// TransferFunction is the electro-optical transfer function of pixel values.
//
// When the transfer function of decoded data is not known (e.g. raw decoder
// output before CICP metadata is consulted), use TransferUnknown. Consumers
// performing color-sensitive work must resolve Unknown from ImageInfo.CICP
// or an ICC profile before processing.
type TransferFunction uint8

const (
	// TransferLinear is linear light (gamma 1.0).
	TransferLinear TransferFunction = iota

	// TransferSRGB is the sRGB transfer curve (IEC 61966-2-1).
	TransferSRGB

	// TransferBT709 is the BT.709 transfer curve.
	TransferBT709

	// TransferPQ is the Perceptual Quantizer (SMPTE ST 2084, HDR10).
	TransferPQ

	// TransferHLG is Hybrid Log-Gamma (ARIB STD-B67).
	TransferHLG

	// TransferUnknown means the transfer function has not been established.
	TransferUnknown TransferFunction = 255
)

// String returns a string representation of the transfer function.
func (t TransferFunction) String() string {
	switch t {
	case TransferLinear:
		return "Linear"
	case TransferSRGB:
		return "sRGB"
	case TransferBT709:
		return "BT.709"
	case TransferPQ:
		return "PQ"
	case TransferHLG:
		return "HLG"
	default:
		return "Unknown"
	}
}

// TransferFromCICP maps a CICP transfer_characteristics code (ITU-T H.273)
// to a TransferFunction. The second result is false for unrecognized or
// unsupported codes.
func TransferFromCICP(tc uint8) (TransferFunction, bool) {
	switch tc {
	case 1:
		return TransferBT709, true
	case 8:
		return TransferLinear, true
	case 13:
		return TransferSRGB, true
	case 16:
		return TransferPQ, true
	case 18:
		return TransferHLG, true
	default:
		return TransferUnknown, false
	}
}

// Descriptor is a compact pixel format descriptor (4 bytes).
//
// It describes the format of pixel data without carrying the data itself,
// and tags Slice, SliceMut and Buffer with their format.
type Descriptor struct {
	// ChannelType is the channel storage type (U8, U16, F32).
	ChannelType ChannelType

	// Layout is the channel layout (Gray, RGB, RGBA, ...).
	Layout ChannelLayout

	// Alpha is the alpha interpretation.
	Alpha AlphaMode

	// Transfer is the transfer function (sRGB, linear, PQ, ...).
	Transfer TransferFunction
}

// Named descriptors with an explicit transfer function. By convention 8-bit
// formats are tagged sRGB and float formats linear, matching what codecs
// actually produce.
var (
	// FormatRGB8SRGB is 8-bit sRGB RGB.
	FormatRGB8SRGB = Descriptor{U8, RGB, AlphaNone, TransferSRGB}

	// FormatRGBA8SRGB is 8-bit sRGB RGBA with straight alpha.
	FormatRGBA8SRGB = Descriptor{U8, RGBA, AlphaStraight, TransferSRGB}

	// FormatRGB16SRGB is 16-bit sRGB RGB.
	FormatRGB16SRGB = Descriptor{U16, RGB, AlphaNone, TransferSRGB}

	// FormatRGBA16SRGB is 16-bit sRGB RGBA with straight alpha.
	FormatRGBA16SRGB = Descriptor{U16, RGBA, AlphaStraight, TransferSRGB}

	// FormatRGBF32Linear is linear-light f32 RGB.
	FormatRGBF32Linear = Descriptor{F32, RGB, AlphaNone, TransferLinear}

	// FormatRGBAF32Linear is linear-light f32 RGBA with straight alpha.
	FormatRGBAF32Linear = Descriptor{F32, RGBA, AlphaStraight, TransferLinear}

	// FormatGray8SRGB is 8-bit sRGB grayscale.
	FormatGray8SRGB = Descriptor{U8, Gray, AlphaNone, TransferSRGB}

	// FormatGray16SRGB is 16-bit sRGB grayscale.
	FormatGray16SRGB = Descriptor{U16, Gray, AlphaNone, TransferSRGB}

	// FormatGrayF32Linear is linear-light f32 grayscale.
	FormatGrayF32Linear = Descriptor{F32, Gray, AlphaNone, TransferLinear}

	// FormatGrayAlpha8SRGB is 8-bit sRGB grayscale with straight alpha.
	FormatGrayAlpha8SRGB = Descriptor{U8, GrayAlpha, AlphaStraight, TransferSRGB}

	// FormatGrayAlpha16SRGB is 16-bit sRGB grayscale with straight alpha.
	FormatGrayAlpha16SRGB = Descriptor{U16, GrayAlpha, AlphaStraight, TransferSRGB}

	// FormatGrayAlphaF32Linear is linear-light f32 grayscale with straight alpha.
	FormatGrayAlphaF32Linear = Descriptor{F32, GrayAlpha, AlphaStraight, TransferLinear}

	// FormatBGRA8SRGB is 8-bit sRGB BGRA with straight alpha.
	FormatBGRA8SRGB = Descriptor{U8, BGRA, AlphaStraight, TransferSRGB}

	// FormatBGRX8SRGB is 8-bit sRGB BGRX (opaque BGRA, padding byte ignored).
	//
	// Same memory layout as FormatBGRA8SRGB but the fourth byte is padding
	// (AlphaNone). Useful for Windows surfaces where the alpha byte is
	// present but meaningless.
	FormatBGRX8SRGB = Descriptor{U8, BGRA, AlphaNone, TransferSRGB}
)

// Transfer-agnostic descriptors: same channel type and layout as the tagged
// set above, with TransferUnknown. Use these for raw decoded data before
// CICP or ICC metadata has been consulted.
var (
	// FormatRGB8 is 8-bit RGB, transfer function unknown.
	FormatRGB8 = FormatRGB8SRGB.WithTransfer(TransferUnknown)

	// FormatRGBA8 is 8-bit RGBA with straight alpha, transfer function unknown.
	FormatRGBA8 = FormatRGBA8SRGB.WithTransfer(TransferUnknown)

	// FormatRGB16 is 16-bit RGB, transfer function unknown.
	FormatRGB16 = FormatRGB16SRGB.WithTransfer(TransferUnknown)

	// FormatRGBA16 is 16-bit RGBA with straight alpha, transfer function unknown.
	FormatRGBA16 = FormatRGBA16SRGB.WithTransfer(TransferUnknown)

	// FormatRGBF32 is f32 RGB, transfer function unknown.
	FormatRGBF32 = FormatRGBF32Linear.WithTransfer(TransferUnknown)

	// FormatRGBAF32 is f32 RGBA with straight alpha, transfer function unknown.
	FormatRGBAF32 = FormatRGBAF32Linear.WithTransfer(TransferUnknown)

	// FormatGray8 is 8-bit grayscale, transfer function unknown.
	FormatGray8 = FormatGray8SRGB.WithTransfer(TransferUnknown)

	// FormatGray16 is 16-bit grayscale, transfer function unknown.
	FormatGray16 = FormatGray16SRGB.WithTransfer(TransferUnknown)

	// FormatGrayF32 is f32 grayscale, transfer function unknown.
	FormatGrayF32 = FormatGrayF32Linear.WithTransfer(TransferUnknown)

	// FormatGrayAlpha8 is 8-bit gray+alpha, transfer function unknown.
	FormatGrayAlpha8 = FormatGrayAlpha8SRGB.WithTransfer(TransferUnknown)

	// FormatGrayAlpha16 is 16-bit gray+alpha, transfer function unknown.
	FormatGrayAlpha16 = FormatGrayAlpha16SRGB.WithTransfer(TransferUnknown)

	// FormatGrayAlphaF32 is f32 gray+alpha, transfer function unknown.
	FormatGrayAlphaF32 = FormatGrayAlphaF32Linear.WithTransfer(TransferUnknown)

	// FormatBGRA8 is 8-bit BGRA with straight alpha, transfer function unknown.
	FormatBGRA8 = FormatBGRA8SRGB.WithTransfer(TransferUnknown)

	// FormatBGRX8 is 8-bit BGRX, transfer function unknown.
	FormatBGRX8 = FormatBGRX8SRGB.WithTransfer(TransferUnknown)
)

// WithTransfer returns a copy of the descriptor with a different transfer
// function. Useful for resolving TransferUnknown once CICP/ICC metadata is
// available:
//
//	desc := pix.FormatRGB8 // unknown transfer
//	resolved := desc.WithTransfer(pix.TransferSRGB)
func (d Descriptor) WithTransfer(t TransferFunction) Descriptor {
	d.Transfer = t
	return d
}

// LayoutCompatible reports whether this descriptor matches the channel type
// and layout of another, ignoring transfer function and alpha mode.
//
// Useful for format negotiation: two descriptors are layout-compatible if
// they have the same channel count, order, and storage type, even if they
// differ in gamma or alpha interpretation.
func (d Descriptor) LayoutCompatible(other Descriptor) bool {
	return d.ChannelType == other.ChannelType && d.Layout == other.Layout
}

// MinAlignment returns the minimum byte alignment required for the channel
// type (1, 2, or 4).
func (d Descriptor) MinAlignment() int {
	return d.ChannelType.ByteSize()
}

// BytesPerPixel returns the byte size of a single pixel.
func (d Descriptor) BytesPerPixel() int {
	return d.ChannelType.ByteSize() * d.Layout.Channels()
}

// Channels returns the number of channels.
func (d Descriptor) Channels() int {
	return d.Layout.Channels()
}

// HasAlpha reports whether the layout includes an alpha channel.
func (d Descriptor) HasAlpha() bool {
	return d.Layout.HasAlpha()
}

// IsLinear reports whether the transfer function is TransferLinear.
// It returns false for TransferUnknown; callers must resolve the transfer
// function before assuming linearity.
func (d Descriptor) IsLinear() bool {
	return d.Transfer == TransferLinear
}

// IsUnknownTransfer reports whether the transfer function is TransferUnknown.
// When true, consult CICP or ICC metadata and use WithTransfer to resolve it
// before performing color-sensitive operations.
func (d Descriptor) IsUnknownTransfer() bool {
	return d.Transfer == TransferUnknown
}

// AlignedStride returns the tightly-packed byte stride for a row of the
// given width: width*BytesPerPixel rounded up to MinAlignment. Because a
// pixel is always a whole number of channel values, the rounding is a
// power-of-two mask over an already-aligned product; the result equals
// width*BytesPerPixel and is a multiple of BytesPerPixel.
//
// The caller is responsible for rejecting widths whose product would
// overflow before treating this as validated input.
func (d Descriptor) AlignedStride(width int) int {
	raw := width * d.BytesPerPixel()
	a := d.MinAlignment()
	return (raw + a - 1) &^ (a - 1)
}

// SIMDAlignedStride returns a SIMD-friendly byte stride for the given width.
// The stride is a multiple of lcm(BytesPerPixel, simdAlign), so every row
// start is both pixel-aligned and SIMD-aligned when the buffer base is.
//
// simdAlign must be a power of 2 (e.g. 16, 32, 64).
func (d Descriptor) SIMDAlignedStride(width, simdAlign int) int {
	bpp := d.BytesPerPixel()
	raw := width * bpp
	align := lcm(bpp, simdAlign)
	rem := raw % align
	if rem == 0 {
		return raw
	}
	return raw + (align - rem)
}

// String returns a compact representation like "RGBA U8 sRGB".
func (d Descriptor) String() string {
	return d.Layout.String() + " " + d.ChannelType.String() + " " + d.Transfer.String()
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
