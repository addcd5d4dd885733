package pix

// GainMapMetadata describes how a base image combines with a secondary
// gain map image to produce a rendering adapted to any display
// capability (ISO 21496-1). The gain map pixel data is a separate image,
// typically grayscale and often at lower resolution than the base.
//
// JPEG carries this as UltraHDR, AVIF/HEIF as a tmap derived item, and
// JPEG XL as a gain map bundle; the metadata is interoperable across all
// three. Codecs that decode gain maps attach the pair of pixel data and
// metadata to DecodeOutput.Extras.
//
// Per-channel fields are [3]float32 for R, G, B; a single-valued map sets
// all three elements equal.
//
// Reconstruction:
//
//	recovery = gainMapPixel / maxValue
//	logRecovery = pow(recovery, 1/gamma)
//	weight = clamp((log2(displayBoost) - HDRCapacityMin)
//	               / (HDRCapacityMax - HDRCapacityMin), 0, 1)
//	logBoost = GainMapMin*(1-logRecovery) + GainMapMax*logRecovery
//	output = (base + OffsetSDR) * exp2(logBoost*weight) - OffsetHDR
//
// The weight adapts continuously with display capability; there is no
// binary HDR-or-SDR switch.
type GainMapMetadata struct {
	// BaseRenditionIsHDR is false when the base image is SDR and the
	// gain map boosts to HDR, true when the base is HDR and the gain
	// map tone-maps down to SDR.
	BaseRenditionIsHDR bool

	// GainMapMin is log2 of the minimum content boost per channel,
	// applied where the gain map pixel is 0.
	GainMapMin [3]float32

	// GainMapMax is log2 of the maximum content boost per channel,
	// applied where the gain map pixel is 1. Set from file metadata;
	// it has no meaningful default.
	GainMapMax [3]float32

	// Gamma is the encoding gamma per channel, applied to gain map
	// pixel values before interpolation.
	Gamma [3]float32

	// OffsetSDR is added to the base SDR value before the boost; it
	// prevents division by zero in reconstruction.
	OffsetSDR [3]float32

	// OffsetHDR is subtracted from the result after the boost.
	OffsetHDR [3]float32

	// HDRCapacityMin is log2 of the display boost below which the gain
	// map has no effect.
	HDRCapacityMin float32

	// HDRCapacityMax is log2 of the display boost at which the gain
	// map fully applies. Set from file metadata.
	HDRCapacityMax float32

	// UseBaseColorSpace is true when the gain map is expressed in the
	// base image's color space rather than its own.
	UseBaseColorSpace bool
}

// NewGainMapMetadata returns metadata with the ISO 21496-1 defaults.
// GainMapMax and HDRCapacityMax default to zero (no effect); set them
// from the file's metadata.
func NewGainMapMetadata() GainMapMetadata {
	return GainMapMetadata{
		Gamma:     [3]float32{1, 1, 1},
		OffsetSDR: [3]float32{1.0 / 64, 1.0 / 64, 1.0 / 64},
		OffsetHDR: [3]float32{1.0 / 64, 1.0 / 64, 1.0 / 64},
	}
}

// IsUniform reports whether every per-channel field uses the same value
// across R, G and B — the common case of a single grayscale gain map
// applied uniformly.
func (m GainMapMetadata) IsUniform() bool {
	return channelsEqual(m.GainMapMin) &&
		channelsEqual(m.GainMapMax) &&
		channelsEqual(m.Gamma) &&
		channelsEqual(m.OffsetSDR) &&
		channelsEqual(m.OffsetHDR)
}

func channelsEqual(v [3]float32) bool {
	return v[0] == v[1] && v[1] == v[2]
}
