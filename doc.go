// Package pix provides the shared pixel-buffer and format-descriptor
// layer underlying a family of image codecs.
//
// # Overview
//
// pix lets codecs (JPEG, PNG, WebP, AVIF, JPEG XL, GIF, PNM) exchange
// pixel data with callers without committing to one in-memory
// representation. It provides a compact format descriptor, borrowed and
// owned buffer types with explicit stride and alignment guarantees,
// zero-copy cropping, and lossless conversion between raw byte buffers
// and typed per-pixel arrays.
//
// # Quick Start
//
//	import "github.com/gogpu/pix"
//
//	// Allocate an owned RGBA8 buffer
//	buf, err := pix.NewBuffer(640, 480, pix.FormatRGBA8SRGB)
//	if err != nil {
//	    return err
//	}
//
//	// Write rows through a mutable view
//	dst := buf.AsSliceMut()
//	for y := 0; y < dst.Rows(); y++ {
//	    fill(dst.Row(y))
//	}
//
//	// Zero-copy crop, then an independent tightly-packed copy
//	view := buf.CropView(10, 10, 100, 100)
//	tile := buf.CropCopy(10, 10, 100, 100)
//	_, _ = view, tile
//
// # Views and Ownership
//
// Slice and SliceMut are borrowed views: they never own the bytes they
// reference. Buffer owns its allocation and hands out views through
// AsSlice, AsSliceMut, Rows and CropView. Writers require exclusive
// access to their byte range; readers may overlap freely. That
// discipline is the caller's responsibility.
//
// # Formats
//
// A Descriptor packs channel type, channel layout, alpha mode and
// transfer function. Package-level descriptors cover the common cases
// (FormatRGBA8SRGB, FormatGrayF32Linear, ...), with transfer-agnostic
// variants (FormatRGBA8, ...) for data whose transfer is resolved later
// from CICP or ICC metadata.
//
// # Errors
//
// Recoverable conditions (bad dimensions, short data, misalignment)
// return wrapped sentinel errors; test them with errors.Is. Contract
// violations such as out-of-range row indices panic.
//
// # Logging
//
// pix produces no log output by default. Call SetLogger with a
// log/slog logger to enable diagnostics in pix and the codecs built on
// it.
package pix
