package pix

// WorkingSpace tags the color space a view's pixel values are currently
// expressed in. It records pipeline state; this package never converts
// between spaces.
type WorkingSpace uint8

const (
	// WorkingNative means values are in the source's own space, as decoded.
	WorkingNative WorkingSpace = iota
	// WorkingLinear means values have been linearized (gamma removed).
	WorkingLinear
	// WorkingSRGB means values carry the sRGB transfer curve.
	WorkingSRGB
)

func (ws WorkingSpace) String() string {
	switch ws {
	case WorkingNative:
		return "native"
	case WorkingLinear:
		return "linear"
	case WorkingSRGB:
		return "srgb"
	}
	return "unknown"
}

// ColorContext carries source color metadata alongside pixel data, in a
// form suitable for handing to a color management system. Either field may
// be nil; when both are set, CICP takes precedence (per the AVIF and HEIF
// specifications).
//
// A ColorContext is shared by pointer across views and pipeline stages and
// must not be mutated after attachment.
type ColorContext struct {
	// ICC is a raw embedded ICC profile.
	ICC []byte
	// CICP holds ITU-T H.273 code points describing the color space.
	CICP *CICP
}

// NamedProfile identifies a well-known color profile that any color
// management backend should recognize.
type NamedProfile uint8

const (
	// ProfileSRGB is IEC 61966-2-1 sRGB, the web and desktop default.
	ProfileSRGB NamedProfile = iota
	// ProfileDisplayP3 is Display P3 with the sRGB transfer curve.
	ProfileDisplayP3
	// ProfileBT2020 is BT.2020 primaries with BT.709 transfer (SDR wide gamut).
	ProfileBT2020
	// ProfileBT2020PQ is BT.2020 with PQ transfer (HDR10, SMPTE ST 2084).
	ProfileBT2020PQ
	// ProfileBT2020HLG is BT.2020 with HLG transfer (ARIB STD-B67).
	ProfileBT2020HLG
	// ProfileAdobeRGB is Adobe RGB (1998), common in print workflows.
	ProfileAdobeRGB
	// ProfileLinearSRGB is sRGB primaries with gamma 1.0, the working space
	// for alpha compositing and physically based rendering.
	ProfileLinearSRGB
)

func (p NamedProfile) String() string {
	switch p {
	case ProfileSRGB:
		return "sRGB"
	case ProfileDisplayP3:
		return "Display P3"
	case ProfileBT2020:
		return "BT.2020"
	case ProfileBT2020PQ:
		return "BT.2020 PQ"
	case ProfileBT2020HLG:
		return "BT.2020 HLG"
	case ProfileAdobeRGB:
		return "Adobe RGB"
	case ProfileLinearSRGB:
		return "linear sRGB"
	}
	return "unknown"
}

// ToCICP converts the named profile to CICP code points, when a standard
// mapping exists. The second result is false for profiles without standard
// CICP codes (Adobe RGB).
func (p NamedProfile) ToCICP() (CICP, bool) {
	switch p {
	case ProfileSRGB:
		return CICPSRGB, true
	case ProfileDisplayP3:
		return CICPDisplayP3, true
	case ProfileBT2020:
		return CICP{ColorPrimaries: 9, TransferCharacteristics: 1, MatrixCoefficients: 0, FullRange: true}, true
	case ProfileBT2020PQ:
		return CICPBT2100PQ, true
	case ProfileBT2020HLG:
		return CICPBT2100HLG, true
	case ProfileLinearSRGB:
		return CICP{ColorPrimaries: 1, TransferCharacteristics: 8, MatrixCoefficients: 0, FullRange: true}, true
	}
	return CICP{}, false
}

// Context returns a ColorContext describing the named profile via its CICP
// mapping, or nil when no standard mapping exists.
func (p NamedProfile) Context() *ColorContext {
	cicp, ok := p.ToCICP()
	if !ok {
		return nil
	}
	return &ColorContext{CICP: &cicp}
}
