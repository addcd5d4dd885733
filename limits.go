package pix

import "time"

// ResourceLimits bounds resource use during encode and decode, guarding
// against decompression bombs and resource exhaustion. A zero field means
// no limit for that resource. Codecs enforce what they can; not every
// codec supports every limit.
type ResourceLimits struct {
	// MaxPixels bounds the total pixel count (width * height).
	MaxPixels uint64
	// MaxMemoryBytes bounds memory allocation during the operation.
	MaxMemoryBytes uint64
	// MaxOutputBytes bounds the encoded output size (encode only).
	MaxOutputBytes uint64
	// MaxWidth bounds the image width in pixels.
	MaxWidth int
	// MaxHeight bounds the image height in pixels.
	MaxHeight int
	// MaxFileSize bounds the input size in bytes (decode only).
	MaxFileSize uint64
	// MaxFrames bounds the number of animation frames.
	MaxFrames int
	// MaxDuration bounds the total animation duration.
	MaxDuration time.Duration
}

// NoLimits returns limits with every bound disabled.
func NoLimits() ResourceLimits { return ResourceLimits{} }

// WithMaxPixels returns a copy with the total pixel bound set.
func (l ResourceLimits) WithMaxPixels(max uint64) ResourceLimits {
	l.MaxPixels = max
	return l
}

// WithMaxMemory returns a copy with the memory bound set.
func (l ResourceLimits) WithMaxMemory(bytes uint64) ResourceLimits {
	l.MaxMemoryBytes = bytes
	return l
}

// WithMaxOutput returns a copy with the encoded output bound set.
func (l ResourceLimits) WithMaxOutput(bytes uint64) ResourceLimits {
	l.MaxOutputBytes = bytes
	return l
}

// WithMaxWidth returns a copy with the width bound set.
func (l ResourceLimits) WithMaxWidth(width int) ResourceLimits {
	l.MaxWidth = width
	return l
}

// WithMaxHeight returns a copy with the height bound set.
func (l ResourceLimits) WithMaxHeight(height int) ResourceLimits {
	l.MaxHeight = height
	return l
}

// WithMaxFileSize returns a copy with the input size bound set.
func (l ResourceLimits) WithMaxFileSize(bytes uint64) ResourceLimits {
	l.MaxFileSize = bytes
	return l
}

// WithMaxFrames returns a copy with the frame count bound set.
func (l ResourceLimits) WithMaxFrames(frames int) ResourceLimits {
	l.MaxFrames = frames
	return l
}

// WithMaxDuration returns a copy with the animation duration bound set.
func (l ResourceLimits) WithMaxDuration(d time.Duration) ResourceLimits {
	l.MaxDuration = d
	return l
}

// HasAny reports whether any bound is set.
func (l ResourceLimits) HasAny() bool {
	return l != ResourceLimits{}
}

// CheckDimensions reports whether w x h fits within the pixel, width and
// height bounds.
func (l ResourceLimits) CheckDimensions(w, h int) bool {
	if w < 0 || h < 0 {
		return false
	}
	if l.MaxWidth > 0 && w > l.MaxWidth {
		return false
	}
	if l.MaxHeight > 0 && h > l.MaxHeight {
		return false
	}
	if l.MaxPixels > 0 && uint64(w)*uint64(h) > l.MaxPixels {
		return false
	}
	return true
}
