package pix

import "errors"

// Errors returned by fallible buffer constructors and conversions.
//
// All of these describe data problems detected at construction time and are
// returned as values. Out-of-range row, sub-range and crop indices are a
// different class entirely — contract violations by the caller — and panic
// instead of returning an error.
var (
	// ErrAlignmentViolation is returned when the backing memory's start
	// address is not a multiple of the channel type's natural alignment.
	ErrAlignmentViolation = errors.New("pix: data is not aligned for the channel type")

	// ErrInsufficientData is returned when the backing memory is shorter
	// than the given dimensions and stride imply.
	ErrInsufficientData = errors.New("pix: data is too small for the given dimensions")

	// ErrStrideTooSmall is returned when the stride is less than
	// width*BytesPerPixel.
	ErrStrideTooSmall = errors.New("pix: stride is smaller than width * bytes per pixel")

	// ErrStrideNotPixelAligned is returned when the stride is not a multiple
	// of BytesPerPixel. Every row must start on a pixel boundary; otherwise
	// rows after the first would be misaligned.
	ErrStrideNotPixelAligned = errors.New("pix: stride is not a multiple of bytes per pixel")

	// ErrInvalidDimensions is returned when a dimension is negative, or when
	// width*BytesPerPixel overflows.
	ErrInvalidDimensions = errors.New("pix: width or height is invalid or causes overflow")

	// ErrFormatMismatch is returned when a descriptor's (channel type,
	// layout) pair has no typed PixelData counterpart. It is fatal only to
	// the typed-array conversion path, never to byte-level operations.
	ErrFormatMismatch = errors.New("pix: pixel format has no matching PixelData variant")
)
