package pix

import (
	"fmt"
	"image"
	"time"
)

// EncodeOutput is the result of an encode operation.
type EncodeOutput struct {
	// Data is the encoded file or codestream.
	Data []byte
	// Format is the format that was encoded.
	Format ImageFormat
}

// Len returns the encoded byte count.
func (o EncodeOutput) Len() int { return len(o.Data) }

func (o EncodeOutput) String() string {
	return fmt.Sprintf("EncodeOutput(%s, %d bytes)", o.Format, len(o.Data))
}

// DecodeOutput is the result of decoding a still image.
type DecodeOutput struct {
	// Pixels is the decoded pixel data in the codec's native variant.
	Pixels PixelData
	// Info is the image metadata.
	Info ImageInfo
	// Extras holds format-specific extra payloads (JPEG gain maps, MPF
	// data). Retrieve with ExtrasAs.
	Extras any
}

// ExtrasAs returns the output's extras when they have type T.
func ExtrasAs[T any](o *DecodeOutput) (T, bool) {
	v, ok := o.Extras.(T)
	return v, ok
}

// Format returns the detected format.
func (o *DecodeOutput) Format() ImageFormat { return o.Info.Format }

// Width returns the decoded width in pixels.
func (o *DecodeOutput) Width() int { return o.Pixels.Width() }

// Height returns the decoded height in pixels.
func (o *DecodeOutput) Height() int { return o.Pixels.Height() }

// HasAlpha reports whether the decoded pixels carry alpha.
func (o *DecodeOutput) HasAlpha() bool { return o.Pixels.Descriptor().HasAlpha() }

// Metadata borrows the embedded metadata for roundtrip encoding.
func (o *DecodeOutput) Metadata() ImageMetadata { return o.Info.Metadata() }

// FrameBlend is how a frame composites over the previous canvas state.
type FrameBlend uint8

const (
	// BlendSource replaces the region with the frame's pixels.
	BlendSource FrameBlend = iota
	// BlendOver alpha-blends the frame over the existing canvas.
	BlendOver
)

// FrameDisposal is what happens to the canvas after a frame is displayed.
type FrameDisposal uint8

const (
	// DisposalNone leaves the canvas as-is.
	DisposalNone FrameDisposal = iota
	// DisposalBackground restores the region to the background color.
	DisposalBackground
	// DisposalPrevious restores the region to its state before the frame.
	DisposalPrevious
)

// DecodeFrame is a single frame from animation decoding. Container-level
// metadata is shared across frames through the Info pointer, so each
// frame is self-describing without duplicating metadata.
type DecodeFrame struct {
	// Pixels is the frame's pixel data.
	Pixels PixelData
	// Info is the container-level metadata, shared across all frames.
	Info *ImageInfo
	// Delay is how long the frame is displayed.
	Delay time.Duration
	// Index is the 0-based frame number.
	Index int
	// RequiredFrame is the prior frame this one composites over, or -1
	// for a keyframe.
	RequiredFrame int
	// Blend composites this frame over the required frame.
	Blend FrameBlend
	// Disposal handles the canvas after this frame is displayed.
	Disposal FrameDisposal
	// Rect is the canvas region this frame updates. An empty rectangle
	// means the full canvas.
	Rect image.Rectangle
}

// NewDecodeFrame creates a keyframe with source blend and no disposal.
func NewDecodeFrame(pixels PixelData, info *ImageInfo, delay time.Duration, index int) DecodeFrame {
	return DecodeFrame{
		Pixels:        pixels,
		Info:          info,
		Delay:         delay,
		Index:         index,
		RequiredFrame: -1,
	}
}

// IsKeyframe reports whether the frame is independent of prior frames.
func (f *DecodeFrame) IsKeyframe() bool { return f.RequiredFrame < 0 }

// Format returns the container-level format.
func (f *DecodeFrame) Format() ImageFormat { return f.Info.Format }

// Width returns the frame width in pixels.
func (f *DecodeFrame) Width() int { return f.Pixels.Width() }

// Height returns the frame height in pixels.
func (f *DecodeFrame) Height() int { return f.Pixels.Height() }

// HasAlpha reports whether the frame's pixels carry alpha.
func (f *DecodeFrame) HasAlpha() bool { return f.Pixels.Descriptor().HasAlpha() }

// Metadata borrows the container-level metadata for roundtrip encoding.
func (f *DecodeFrame) Metadata() ImageMetadata { return f.Info.Metadata() }

// EncodeFrame pairs pixel data with a duration for animation encoding.
type EncodeFrame struct {
	// Pixels is the frame's pixel data.
	Pixels PixelData
	// Duration is how long the frame is displayed.
	Duration time.Duration
}
