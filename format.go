package pix

import (
	"bytes"
	"strings"
)

// ImageFormat identifies a container or codestream format.
type ImageFormat uint8

const (
	// FormatUnknown means the bytes matched no known signature.
	FormatUnknown ImageFormat = iota

	// JPEG is the classic FF D8 FF codestream.
	JPEG

	// PNG is the Portable Network Graphics format.
	PNG

	// GIF covers both the 87a and 89a variants.
	GIF

	// WebP is the RIFF-contained WebP format.
	WebP

	// AVIF is an AV1 image in an ISOBMFF container (avif or avis brand).
	AVIF

	// JXL is JPEG XL, bare codestream or ISOBMFF container.
	JXL

	// PNM is the Netpbm family (PBM/PGM/PPM/PAM/PFM).
	PNM

	imageFormatCount
)

// RecommendedProbeBytes is enough header for probing any supported
// format, including JPEGs with large EXIF or APP segments before the SOF
// marker.
const RecommendedProbeBytes = 4096

// imageFormatInfo carries the per-format metadata table entries.
type imageFormatInfo struct {
	name             string
	mime             string
	extensions       []string
	minProbeBytes    int
	supportsLossy    bool
	supportsLossless bool
	supportsAnim     bool
	supportsAlpha    bool
}

var imageFormatTable = [imageFormatCount]imageFormatInfo{
	FormatUnknown: {
		name: "unknown",
	},
	JPEG: {
		name:          "JPEG",
		mime:          "image/jpeg",
		extensions:    []string{"jpg", "jpeg", "jpe", "jfif"},
		minProbeBytes: 2048, // SOF can follow large EXIF/APP segments
		supportsLossy: true,
	},
	PNG: {
		name:             "PNG",
		mime:             "image/png",
		extensions:       []string{"png"},
		minProbeBytes:    33, // 8 sig + 25 IHDR
		supportsLossless: true,
		supportsAlpha:    true,
	},
	GIF: {
		name:             "GIF",
		mime:             "image/gif",
		extensions:       []string{"gif"},
		minProbeBytes:    13, // 6 header + 7 LSD
		supportsLossless: true,
		supportsAnim:     true,
		supportsAlpha:    true,
	},
	WebP: {
		name:             "WebP",
		mime:             "image/webp",
		extensions:       []string{"webp"},
		minProbeBytes:    30, // RIFF(12) + chunk header + VP8X dims
		supportsLossy:    true,
		supportsLossless: true,
		supportsAnim:     true,
		supportsAlpha:    true,
	},
	AVIF: {
		name:             "AVIF",
		mime:             "image/avif",
		extensions:       []string{"avif"},
		minProbeBytes:    512, // ISOBMFF box traversal (ftyp + meta)
		supportsLossy:    true,
		supportsLossless: true,
		supportsAlpha:    true,
	},
	JXL: {
		name:             "JPEG XL",
		mime:             "image/jxl",
		extensions:       []string{"jxl"},
		minProbeBytes:    256, // codestream header or container + jxlc
		supportsLossy:    true,
		supportsLossless: true,
		supportsAnim:     true,
		supportsAlpha:    true,
	},
	PNM: {
		name:             "PNM",
		mime:             "image/x-portable-anymap",
		extensions:       []string{"pnm", "ppm", "pgm", "pbm", "pam", "pfm"},
		minProbeBytes:    20, // magic + ASCII dimensions
		supportsLossless: true,
	},
}

var (
	pngSig          = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jxlContainerSig = []byte{0x00, 0x00, 0x00, 0x0C, 'J', 'X', 'L', ' ', 0x0D, 0x0A, 0x87, 0x0A}
)

// DetectFormat sniffs the format from leading magic bytes. It returns
// FormatUnknown when nothing matches; passing at least MinProbeBytes of a
// file guarantees its format is recognized.
func DetectFormat(data []byte) ImageFormat {
	if len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return JPEG
	}
	if len(data) >= 8 && bytes.Equal(data[:8], pngSig) {
		return PNG
	}
	if len(data) >= 6 && data[0] == 'G' && data[1] == 'I' && data[2] == 'F' &&
		data[3] == '8' && (data[4] == '7' || data[4] == '9') && data[5] == 'a' {
		return GIF
	}
	if len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")) {
		return WebP
	}
	if len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp")) {
		brand := string(data[8:12])
		if brand == "avif" || brand == "avis" {
			return AVIF
		}
	}
	// JPEG XL bare codestream.
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0x0A {
		return JXL
	}
	if len(data) >= 12 && bytes.Equal(data[:12], jxlContainerSig) {
		return JXL
	}
	// PNM family: P1-P7, plus Pf (grayscale PFM) and PF (color PFM).
	if len(data) >= 2 && data[0] == 'P' {
		switch {
		case data[1] >= '1' && data[1] <= '7', data[1] == 'F', data[1] == 'f':
			return PNM
		}
	}
	return FormatUnknown
}

// FormatFromExtension maps a file extension (without dot,
// case-insensitive) to a format. It returns FormatUnknown for
// unrecognized extensions.
func FormatFromExtension(ext string) ImageFormat {
	ext = strings.ToLower(ext)
	for f := JPEG; f < imageFormatCount; f++ {
		for _, e := range imageFormatTable[f].extensions {
			if ext == e {
				return f
			}
		}
	}
	return FormatUnknown
}

// IsValid reports whether the format is one of the known formats.
func (f ImageFormat) IsValid() bool {
	return f > FormatUnknown && f < imageFormatCount
}

// MimeType returns the canonical MIME type, or "" for FormatUnknown.
func (f ImageFormat) MimeType() string {
	if !f.IsValid() {
		return ""
	}
	return imageFormatTable[f].mime
}

// Extensions returns the common file extensions, primary first.
func (f ImageFormat) Extensions() []string {
	if !f.IsValid() {
		return nil
	}
	return imageFormatTable[f].extensions
}

// MinProbeBytes returns the minimum header bytes needed for reliable
// dimension probing of this format. With fewer bytes, detection may
// succeed but dimensions can be missing.
func (f ImageFormat) MinProbeBytes() int {
	if !f.IsValid() {
		return 0
	}
	return imageFormatTable[f].minProbeBytes
}

// SupportsLossy reports whether the format has a lossy encoding mode.
func (f ImageFormat) SupportsLossy() bool {
	return f.IsValid() && imageFormatTable[f].supportsLossy
}

// SupportsLossless reports whether the format has a lossless encoding mode.
func (f ImageFormat) SupportsLossless() bool {
	return f.IsValid() && imageFormatTable[f].supportsLossless
}

// SupportsAnimation reports whether the format can hold multiple frames.
func (f ImageFormat) SupportsAnimation() bool {
	return f.IsValid() && imageFormatTable[f].supportsAnim
}

// SupportsAlpha reports whether the format can carry an alpha channel.
func (f ImageFormat) SupportsAlpha() bool {
	return f.IsValid() && imageFormatTable[f].supportsAlpha
}

func (f ImageFormat) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return imageFormatTable[f].name
}
