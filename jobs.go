package pix

import "context"

// EncodeOptions carries per-operation encode settings. Codecs map the
// generic knobs onto their own parameter spaces; format-specific options
// live on the concrete codec types.
type EncodeOptions struct {
	// Quality is the encode quality in 0-100, codec-mapped.
	Quality float32
	// AlphaQuality is the alpha channel quality in 0-100, codec-mapped.
	// Zero means follow Quality.
	AlphaQuality float32
	// Effort is the speed/size tradeoff in 0-10, codec-mapped.
	Effort int
	// Lossless requests mathematically lossless encoding where the codec
	// supports it.
	Lossless bool
	// Metadata is embedded into the output as far as the codec's
	// capabilities allow.
	Metadata ImageMetadata
	// Limits bounds resource use during the operation.
	Limits ResourceLimits
}

// DecodeOptions carries per-operation decode settings.
type DecodeOptions struct {
	// Limits bounds resource use during the operation.
	Limits ResourceLimits
	// ApplyOrientation asks the codec to rotate pixels per the EXIF
	// orientation during decode, reporting OrientNormal in the result.
	ApplyOrientation bool
}

// Encoder is the common interface implemented by each codec's encoder.
//
// Implementations honor ctx cancellation when their capabilities report
// EncodeCancel; otherwise it is checked only between operations.
type Encoder interface {
	// Capabilities describes what the encoder supports.
	Capabilities() CodecCapabilities

	// Encode encodes a single image. A nil opts means defaults.
	Encode(ctx context.Context, src Slice, opts *EncodeOptions) (EncodeOutput, error)
}

// AnimationEncoder is implemented by encoders that can write multi-frame
// output. Encoders without animation support simply don't implement it.
type AnimationEncoder interface {
	Encoder

	// EncodeAnimation encodes frames into an animated output.
	EncodeAnimation(ctx context.Context, frames []EncodeFrame, opts *EncodeOptions) (EncodeOutput, error)
}

// StreamEncoder is a stateful, row-pushing encoder for pipelines that
// produce rows incrementally. Obtained from codec-specific constructors;
// not every codec supports it.
type StreamEncoder interface {
	// PreferredStripHeight is the strip height the codec consumes most
	// efficiently (the MCU height for JPEG). Advisory.
	PreferredStripHeight() int

	// PushRows appends the next strip of rows, top to bottom.
	PushRows(rows Slice) error

	// Finish completes the codestream and returns the encoded output.
	// The encoder is unusable afterwards.
	Finish() (EncodeOutput, error)
}

// Decoder is the common interface implemented by each codec's decoder.
type Decoder interface {
	// Capabilities describes what the decoder supports.
	Capabilities() CodecCapabilities

	// Probe parses the header and returns metadata without a full
	// decode. Pass at least RecommendedProbeBytes for reliable results.
	Probe(data []byte) (ImageInfo, error)

	// Decode decodes a single image (the first frame of an animation).
	// A nil opts means defaults.
	Decode(ctx context.Context, data []byte, opts *DecodeOptions) (*DecodeOutput, error)
}

// AnimationDecoder is implemented by decoders that can iterate frames.
type AnimationDecoder interface {
	Decoder

	// DecodeAll decodes every frame. Frame order matches display order.
	DecodeAll(ctx context.Context, data []byte, opts *DecodeOptions) ([]DecodeFrame, error)
}

// RowDecoder is implemented by decoders that can stream decoded rows
// into caller-owned memory through a RowSink, avoiding the intermediate
// full-image allocation.
type RowDecoder interface {
	Decoder

	// DecodeRows decodes into buffers demanded from sink, strip by
	// strip in top-to-bottom order.
	DecodeRows(ctx context.Context, data []byte, sink RowSink, opts *DecodeOptions) error
}

// ScanlineDecoder is a pull-based, stateful decoder: the caller drives
// the loop and reads strips of rows on demand. Created by codec-specific
// constructors after the header is parsed; not every codec supports it
// (GIF, WebP and AVIF decode frame-at-once).
//
// Rows come in top-to-bottom order. Unless SupportsSeek reports true the
// decoder cannot go backwards.
type ScanlineDecoder interface {
	// ImageInfo is the metadata from the parsed header, available
	// before any rows are decoded.
	ImageInfo() ImageInfo

	// OutputDescriptor is the pixel format of every decoded row.
	OutputDescriptor() Descriptor

	// PreferredStripHeight is the strip height the codec produces most
	// efficiently (8 or 16 for JPEG MCU rows, 1 for PNG). Advisory.
	PreferredStripHeight() int

	// RowsRemaining is the number of rows not yet decoded. It starts at
	// the image height and reaches 0 when decoding is complete.
	RowsRemaining() int

	// ReadRows decodes the next strip into dst and returns the number
	// of rows written: 0 when fully decoded, possibly fewer than
	// dst.Rows() at the end of the image. dst's width must equal the
	// image width and its descriptor must be layout-compatible with
	// OutputDescriptor.
	ReadRows(dst SliceMut) (int, error)

	// SupportsSeek reports whether SeekToRow works. Most decoders
	// produce rows strictly in order.
	SupportsSeek() bool

	// SeekToRow positions the decoder so the next ReadRows starts at
	// row y. Seeking backwards resets the decode; seeking forward may
	// decode and discard intervening rows.
	SeekToRow(y int) error

	// Close releases decoder state. The decoder is unusable afterwards.
	Close() error
}
