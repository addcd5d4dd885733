package pix

import "fmt"

// CICP is a Coding-Independent Code Points color description
// (ITU-T H.273). It describes the color space of an image without an ICC
// profile and is used by AVIF, HEIF, JPEG XL and the video codecs.
//
// Common combinations:
//   - sRGB: (1, 13, 6, full) — BT.709 primaries, sRGB transfer, BT.601 matrix
//   - Display P3: (12, 13, 0, full)
//   - BT.2100 PQ (HDR10): (9, 16, 9, full)
//   - BT.2100 HLG: (9, 18, 9, full)
type CICP struct {
	// ColorPrimaries is the ColourPrimaries code.
	// 1 = BT.709/sRGB, 9 = BT.2020, 12 = Display P3.
	ColorPrimaries uint8
	// TransferCharacteristics is the TransferCharacteristics code.
	// 1 = BT.709, 8 = linear, 13 = sRGB, 16 = PQ, 18 = HLG.
	TransferCharacteristics uint8
	// MatrixCoefficients is the MatrixCoefficients code.
	// 0 = Identity/RGB, 1 = BT.709, 6 = BT.601, 9 = BT.2020.
	MatrixCoefficients uint8
	// FullRange is true for full-range pixel values (0-255 for 8-bit)
	// rather than video/limited range (16-235 for 8-bit luma).
	FullRange bool
}

var (
	// CICPSRGB is sRGB: BT.709 primaries, sRGB transfer, BT.601 matrix.
	CICPSRGB = CICP{ColorPrimaries: 1, TransferCharacteristics: 13, MatrixCoefficients: 6, FullRange: true}

	// CICPBT2100PQ is BT.2100 PQ (HDR10): BT.2020 primaries, PQ transfer.
	CICPBT2100PQ = CICP{ColorPrimaries: 9, TransferCharacteristics: 16, MatrixCoefficients: 9, FullRange: true}

	// CICPBT2100HLG is BT.2100 HLG: BT.2020 primaries, HLG transfer.
	CICPBT2100HLG = CICP{ColorPrimaries: 9, TransferCharacteristics: 18, MatrixCoefficients: 9, FullRange: true}

	// CICPDisplayP3 is Display P3 with the sRGB transfer curve.
	CICPDisplayP3 = CICP{ColorPrimaries: 12, TransferCharacteristics: 13, MatrixCoefficients: 0, FullRange: true}
)

// ColorPrimariesName returns a human-readable name for a color primaries
// code (ITU-T H.273 Table 2).
func ColorPrimariesName(code uint8) string {
	switch code {
	case 0:
		return "Reserved"
	case 1:
		return "BT.709/sRGB"
	case 2:
		return "Unspecified"
	case 4:
		return "BT.470M"
	case 5:
		return "BT.601 (625)"
	case 6:
		return "BT.601 (525)"
	case 7:
		return "SMPTE 240M"
	case 8:
		return "Generic Film"
	case 9:
		return "BT.2020"
	case 10:
		return "XYZ"
	case 11:
		return "SMPTE 431 (DCI-P3)"
	case 12:
		return "Display P3"
	case 22:
		return "EBU Tech 3213"
	}
	return "Unknown"
}

// TransferCharacteristicsName returns a human-readable name for a
// transfer characteristics code (ITU-T H.273 Table 3).
func TransferCharacteristicsName(code uint8) string {
	switch code {
	case 0:
		return "Reserved"
	case 1:
		return "BT.709"
	case 2:
		return "Unspecified"
	case 4:
		return "BT.470M (Gamma 2.2)"
	case 5:
		return "BT.470BG (Gamma 2.8)"
	case 6:
		return "BT.601"
	case 7:
		return "SMPTE 240M"
	case 8:
		return "Linear"
	case 9:
		return "Log 100:1"
	case 10:
		return "Log 316:1"
	case 11:
		return "IEC 61966-2-4"
	case 12:
		return "BT.1361"
	case 13:
		return "sRGB"
	case 14:
		return "BT.2020 (10-bit)"
	case 15:
		return "BT.2020 (12-bit)"
	case 16:
		return "PQ (HDR)"
	case 17:
		return "SMPTE 428"
	case 18:
		return "HLG (HDR)"
	}
	return "Unknown"
}

// MatrixCoefficientsName returns a human-readable name for a matrix
// coefficients code (ITU-T H.273 Table 4).
func MatrixCoefficientsName(code uint8) string {
	switch code {
	case 0:
		return "Identity/RGB"
	case 1:
		return "BT.709"
	case 2:
		return "Unspecified"
	case 4:
		return "FCC"
	case 5:
		return "BT.470BG"
	case 6:
		return "BT.601"
	case 7:
		return "SMPTE 240M"
	case 8:
		return "YCgCo"
	case 9:
		return "BT.2020 NCL"
	case 10:
		return "BT.2020 CL"
	case 11:
		return "SMPTE 2085"
	case 12:
		return "Chroma NCL"
	case 13:
		return "Chroma CL"
	case 14:
		return "ICtCp"
	}
	return "Unknown"
}

func (c CICP) String() string {
	r := "limited range"
	if c.FullRange {
		r = "full range"
	}
	return fmt.Sprintf("%s / %s / %s (%s)",
		ColorPrimariesName(c.ColorPrimaries),
		TransferCharacteristicsName(c.TransferCharacteristics),
		MatrixCoefficientsName(c.MatrixCoefficients),
		r)
}

// ContentLightLevel is Content Light Level Info (CEA-861.3). It describes
// the light level of HDR content and guides tone mapping together with
// MasteringDisplay.
type ContentLightLevel struct {
	// MaxCLL is the peak luminance of any single pixel, in cd/m².
	MaxCLL uint16
	// MaxFALL is the peak frame-average luminance, in cd/m².
	MaxFALL uint16
}

// MasteringDisplay is the Mastering Display Color Volume
// (SMPTE ST 2086). Chromaticity values are in units of 0.00002
// (50000 = 1.0); luminance values are in units of 0.0001 cd/m².
type MasteringDisplay struct {
	// Primaries holds the display primaries chromaticity [R, G, B],
	// each as [x, y].
	Primaries [3][2]uint16
	// WhitePoint is the white point chromaticity [x, y].
	WhitePoint [2]uint16
	// MaxLuminance is the maximum display luminance.
	MaxLuminance uint32
	// MinLuminance is the minimum display luminance.
	MinLuminance uint32
}

// PrimariesXY returns the display primaries as CIE 1931 xy coordinates.
func (m MasteringDisplay) PrimariesXY() [3][2]float64 {
	var out [3][2]float64
	for i, p := range m.Primaries {
		out[i] = [2]float64{float64(p[0]) * 0.00002, float64(p[1]) * 0.00002}
	}
	return out
}

// WhitePointXY returns the white point as CIE 1931 xy coordinates.
func (m MasteringDisplay) WhitePointXY() [2]float64 {
	return [2]float64{float64(m.WhitePoint[0]) * 0.00002, float64(m.WhitePoint[1]) * 0.00002}
}

// MaxLuminanceNits returns the maximum display luminance in cd/m².
func (m MasteringDisplay) MaxLuminanceNits() float64 {
	return float64(m.MaxLuminance) * 0.0001
}

// MinLuminanceNits returns the minimum display luminance in cd/m².
func (m MasteringDisplay) MinLuminanceNits() float64 {
	return float64(m.MinLuminance) * 0.0001
}

// ImageInfo is image metadata obtained from probing or decoding.
//
// Zero values mean unknown for BitDepth, ChannelCount and FrameCount;
// nil means absent for the pointer and slice fields.
type ImageInfo struct {
	// Width is the stored image width in pixels.
	Width int
	// Height is the stored image height in pixels.
	Height int
	// Format is the detected image format.
	Format ImageFormat
	// HasAlpha reports an alpha channel.
	HasAlpha bool
	// HasAnimation reports multiple frames.
	HasAnimation bool
	// FrameCount is the number of frames; 0 if unknown without a full
	// parse.
	FrameCount int
	// BitDepth is bits per channel (8, 10, 12, 16, 32); 0 if unknown.
	BitDepth int
	// ChannelCount is 1 for gray through 4 for RGBA; 0 if unknown.
	ChannelCount int
	// CICP is the H.273 color description, if present. Both CICP and ICC
	// may be present; CICP takes precedence per the AVIF and HEIF specs.
	CICP *CICP
	// ContentLightLevel carries CEA-861.3 HDR light levels, if present.
	ContentLightLevel *ContentLightLevel
	// MasteringDisplay carries SMPTE ST 2086 metadata, if present.
	MasteringDisplay *MasteringDisplay
	// ICCProfile is the embedded ICC color profile. Shared across
	// pipeline stages; treat as immutable.
	ICCProfile []byte
	// EXIF is the embedded EXIF blob.
	EXIF []byte
	// XMP is the embedded XMP blob.
	XMP []byte
	// Orientation is the EXIF orientation. When a codec applies it during
	// decode, this is OrientNormal and Width/Height are display
	// dimensions; otherwise Width/Height are stored dimensions and the
	// caller applies the transform.
	Orientation Orientation
	// HasGainMap reports an ISO 21496-1 HDR gain map: a secondary image
	// enabling continuous SDR-to-HDR adaptation. Detected via UltraHDR
	// XMP (JPEG), the tmap box (AVIF/HEIF) or a gain map bundle (JXL).
	HasGainMap bool
	// Warnings holds non-fatal diagnostics from probing or decoding,
	// recorded when the operation succeeded but hit unusual conditions.
	Warnings []string
}

// NewImageInfo creates an ImageInfo with the given dimensions and format.
// Other fields start absent or unknown; set them with the With methods.
func NewImageInfo(width, height int, format ImageFormat) ImageInfo {
	return ImageInfo{Width: width, Height: height, Format: format, Orientation: OrientNormal}
}

// WithAlpha returns a copy with the alpha flag set.
func (i ImageInfo) WithAlpha(hasAlpha bool) ImageInfo {
	i.HasAlpha = hasAlpha
	return i
}

// WithAnimation returns a copy with the animation flag set.
func (i ImageInfo) WithAnimation(hasAnimation bool) ImageInfo {
	i.HasAnimation = hasAnimation
	return i
}

// WithFrameCount returns a copy with the frame count set.
func (i ImageInfo) WithFrameCount(count int) ImageInfo {
	i.FrameCount = count
	return i
}

// WithBitDepth returns a copy with the bit depth set.
func (i ImageInfo) WithBitDepth(depth int) ImageInfo {
	i.BitDepth = depth
	return i
}

// WithChannelCount returns a copy with the channel count set.
func (i ImageInfo) WithChannelCount(channels int) ImageInfo {
	i.ChannelCount = channels
	return i
}

// WithCICP returns a copy with the CICP color description set.
func (i ImageInfo) WithCICP(cicp CICP) ImageInfo {
	i.CICP = &cicp
	return i
}

// WithContentLightLevel returns a copy with the HDR light levels set.
func (i ImageInfo) WithContentLightLevel(clli ContentLightLevel) ImageInfo {
	i.ContentLightLevel = &clli
	return i
}

// WithMasteringDisplay returns a copy with the mastering metadata set.
func (i ImageInfo) WithMasteringDisplay(mdcv MasteringDisplay) ImageInfo {
	i.MasteringDisplay = &mdcv
	return i
}

// WithICCProfile returns a copy with the ICC profile set.
func (i ImageInfo) WithICCProfile(icc []byte) ImageInfo {
	i.ICCProfile = icc
	return i
}

// WithEXIF returns a copy with the EXIF blob set.
func (i ImageInfo) WithEXIF(exif []byte) ImageInfo {
	i.EXIF = exif
	return i
}

// WithXMP returns a copy with the XMP blob set.
func (i ImageInfo) WithXMP(xmp []byte) ImageInfo {
	i.XMP = xmp
	return i
}

// WithOrientation returns a copy with the EXIF orientation set.
func (i ImageInfo) WithOrientation(o Orientation) ImageInfo {
	i.Orientation = o
	return i
}

// WithGainMap returns a copy with the gain map flag set.
func (i ImageInfo) WithGainMap(has bool) ImageInfo {
	i.HasGainMap = has
	return i
}

// WithWarning returns a copy with a diagnostic message appended.
func (i ImageInfo) WithWarning(msg string) ImageInfo {
	i.Warnings = append(i.Warnings, msg)
	return i
}

// HasWarnings reports whether any diagnostics were recorded.
func (i ImageInfo) HasWarnings() bool { return len(i.Warnings) > 0 }

// DisplayWidth returns the width after applying EXIF orientation: Height
// for the 90/270 rotations, Width otherwise.
func (i ImageInfo) DisplayWidth() int {
	if i.Orientation.SwapsDimensions() {
		return i.Height
	}
	return i.Width
}

// DisplayHeight returns the height after applying EXIF orientation.
func (i ImageInfo) DisplayHeight() int {
	if i.Orientation.SwapsDimensions() {
		return i.Width
	}
	return i.Height
}

// TransferFunction derives the transfer function from CICP metadata,
// returning TransferUnknown when CICP is absent or the code is not
// recognized. Use it to resolve a descriptor's unknown transfer:
//
//	desc = desc.WithTransfer(info.TransferFunction())
func (i ImageInfo) TransferFunction() TransferFunction {
	if i.CICP == nil {
		return TransferUnknown
	}
	tf, ok := TransferFromCICP(i.CICP.TransferCharacteristics)
	if !ok {
		return TransferUnknown
	}
	return tf
}

// ColorContext builds a ColorContext from the embedded ICC and CICP
// metadata, suitable for attaching to slices and buffers. It returns nil
// when neither is present; callers should assume sRGB in that case.
func (i ImageInfo) ColorContext() *ColorContext {
	if i.ICCProfile == nil && i.CICP == nil {
		return nil
	}
	return &ColorContext{ICC: i.ICCProfile, CICP: i.CICP}
}

// Metadata borrows the embedded metadata for roundtrip encoding.
func (i ImageInfo) Metadata() ImageMetadata {
	return ImageMetadata{
		ICCProfile:        i.ICCProfile,
		EXIF:              i.EXIF,
		XMP:               i.XMP,
		CICP:              i.CICP,
		ContentLightLevel: i.ContentLightLevel,
		MasteringDisplay:  i.MasteringDisplay,
		Orientation:       i.Orientation,
	}
}

// ImageMetadata is the embedded metadata set passed to encoders to
// preserve ICC, EXIF, XMP, CICP, HDR and orientation information from a
// source image. The slice fields alias the source; treat them as
// read-only.
//
// Orientation is commonly resolved during transcoding: apply the
// rotation, then set it to OrientNormal before re-encoding.
type ImageMetadata struct {
	ICCProfile        []byte
	EXIF              []byte
	XMP               []byte
	CICP              *CICP
	ContentLightLevel *ContentLightLevel
	MasteringDisplay  *MasteringDisplay
	Orientation       Orientation
}

// NoMetadata returns empty metadata with a normal orientation.
func NoMetadata() ImageMetadata {
	return ImageMetadata{Orientation: OrientNormal}
}

// WithICC returns a copy with the ICC profile set.
func (m ImageMetadata) WithICC(icc []byte) ImageMetadata {
	m.ICCProfile = icc
	return m
}

// WithEXIF returns a copy with the EXIF blob set.
func (m ImageMetadata) WithEXIF(exif []byte) ImageMetadata {
	m.EXIF = exif
	return m
}

// WithXMP returns a copy with the XMP blob set.
func (m ImageMetadata) WithXMP(xmp []byte) ImageMetadata {
	m.XMP = xmp
	return m
}

// WithCICP returns a copy with the CICP description set.
func (m ImageMetadata) WithCICP(cicp CICP) ImageMetadata {
	m.CICP = &cicp
	return m
}

// WithContentLightLevel returns a copy with the HDR light levels set.
func (m ImageMetadata) WithContentLightLevel(clli ContentLightLevel) ImageMetadata {
	m.ContentLightLevel = &clli
	return m
}

// WithMasteringDisplay returns a copy with the mastering metadata set.
func (m ImageMetadata) WithMasteringDisplay(mdcv MasteringDisplay) ImageMetadata {
	m.MasteringDisplay = &mdcv
	return m
}

// WithOrientation returns a copy with the orientation set.
func (m ImageMetadata) WithOrientation(o Orientation) ImageMetadata {
	m.Orientation = o
	return m
}
