package pix

import "errors"

// CodecCapabilities describes what a codec supports. Each codec exposes a
// package-level value so callers can discover behavior before invoking
// methods that might be no-ops or expensive.
type CodecCapabilities struct {
	// EncodeICC, EncodeEXIF, EncodeXMP and EncodeCICP report whether the
	// encoder embeds the corresponding metadata from ImageMetadata.
	EncodeICC  bool
	EncodeEXIF bool
	EncodeXMP  bool
	EncodeCICP bool

	// DecodeICC, DecodeEXIF, DecodeXMP and DecodeCICP report whether the
	// decoder extracts the corresponding metadata into ImageInfo.
	DecodeICC  bool
	DecodeEXIF bool
	DecodeXMP  bool
	DecodeCICP bool

	// EncodeCancel and DecodeCancel report whether context cancellation
	// is honored mid-operation rather than ignored.
	EncodeCancel bool
	DecodeCancel bool

	// NativeGray means grayscale is handled without expanding to RGB.
	NativeGray bool

	// CheapProbe means ProbeHeader parses only the header rather than
	// running a full decode.
	CheapProbe bool

	// EncodeAnimation and DecodeAnimation report multi-frame support.
	EncodeAnimation bool
	DecodeAnimation bool

	// Native16Bit means 16-bit channels are preserved end to end, not
	// dithered or truncated to 8-bit internally.
	Native16Bit bool

	// Lossless reports a mathematically lossless encoding mode.
	Lossless bool

	// HDR reports support for wide gamut, high bit depth, PQ/HLG
	// transfer functions and HDR metadata.
	HDR bool

	// EnforcesMaxPixels, EnforcesMaxMemory and EnforcesMaxFileSize
	// report which ResourceLimits fields the codec actually checks.
	EnforcesMaxPixels   bool
	EnforcesMaxMemory   bool
	EnforcesMaxFileSize bool
}

// UnsupportedOp identifies an operation a codec does not implement.
type UnsupportedOp uint8

const (
	opSupported UnsupportedOp = iota

	// UnsupportedEncode means the codec cannot encode at all.
	UnsupportedEncode
	// UnsupportedDecode means the codec cannot decode at all.
	UnsupportedDecode
	// UnsupportedAnimation means multi-frame input or output.
	UnsupportedAnimation
	// UnsupportedFormat means the requested pixel format.
	UnsupportedFormat
	// UnsupportedMetadata means embedding or extracting metadata.
	UnsupportedMetadata
	// UnsupportedScanlines means streaming scanline access.
	UnsupportedScanlines
	// UnsupportedGainMap means gain map extraction or embedding.
	UnsupportedGainMap
)

func (op UnsupportedOp) String() string {
	switch op {
	case UnsupportedEncode:
		return "encode"
	case UnsupportedDecode:
		return "decode"
	case UnsupportedAnimation:
		return "animation"
	case UnsupportedFormat:
		return "pixel format"
	case UnsupportedMetadata:
		return "metadata"
	case UnsupportedScanlines:
		return "scanline access"
	case UnsupportedGainMap:
		return "gain map"
	}
	return "unknown"
}

// UnsupportedReporter is implemented by codec error types that can report
// an unsupported operation. Callers use UnsupportedOpOf instead of
// depending on any codec's concrete error type.
type UnsupportedReporter interface {
	error
	UnsupportedOp() UnsupportedOp
}

// UnsupportedOpOf walks err's chain for an UnsupportedReporter and
// returns the reported operation. The second result is false when the
// error does not describe an unsupported operation.
func UnsupportedOpOf(err error) (UnsupportedOp, bool) {
	var rep UnsupportedReporter
	if errors.As(err, &rep) {
		if op := rep.UnsupportedOp(); op != opSupported {
			return op, true
		}
	}
	return opSupported, false
}

// UnsupportedError is a ready-made UnsupportedReporter for codecs without
// their own error type.
type UnsupportedError struct {
	// Op is the unsupported operation.
	Op UnsupportedOp
	// Codec names the codec for the error message.
	Codec string
}

func (e *UnsupportedError) Error() string {
	return "pix: " + e.Codec + " does not support " + e.Op.String()
}

// UnsupportedOp implements UnsupportedReporter.
func (e *UnsupportedError) UnsupportedOp() UnsupportedOp { return e.Op }
