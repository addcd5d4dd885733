package pix

// Orientation is the EXIF orientation tag (TIFF tag 274). It describes
// how stored pixels should be transformed for display.
//
// When a codec applies orientation during decode, it reports
// OrientNormal in the resulting ImageInfo; otherwise the caller is
// responsible for transforming the pixel data.
type Orientation uint8

const (
	// OrientNormal needs no rotation or flip.
	OrientNormal Orientation = 1
	// OrientFlipH mirrors left-right.
	OrientFlipH Orientation = 2
	// OrientRotate180 rotates 180 degrees.
	OrientRotate180 Orientation = 3
	// OrientFlipV mirrors top-bottom.
	OrientFlipV Orientation = 4
	// OrientTranspose rotates 90 CW then mirrors left-right.
	OrientTranspose Orientation = 5
	// OrientRotate90 rotates 90 degrees clockwise.
	OrientRotate90 Orientation = 6
	// OrientTransverse rotates 90 CCW then mirrors left-right.
	OrientTransverse Orientation = 7
	// OrientRotate270 rotates 270 degrees clockwise (90 CCW).
	OrientRotate270 Orientation = 8
)

// OrientationFromEXIF maps a raw EXIF tag value to an Orientation.
// Out-of-range values map to OrientNormal.
func OrientationFromEXIF(value uint16) Orientation {
	if value >= 1 && value <= 8 {
		return Orientation(value)
	}
	return OrientNormal
}

// EXIFValue returns the tag value (1-8).
func (o Orientation) EXIFValue() uint16 { return uint16(o) }

// SwapsDimensions reports whether the orientation exchanges width and
// height (the 90/270 degree rotations, values 5-8).
func (o Orientation) SwapsDimensions() bool {
	return o >= OrientTranspose && o <= OrientRotate270
}

// DisplayDimensions returns the display width and height for the given
// stored dimensions, exchanging them when the orientation rotates by
// 90 or 270 degrees.
func (o Orientation) DisplayDimensions(storedWidth, storedHeight int) (int, int) {
	if o.SwapsDimensions() {
		return storedHeight, storedWidth
	}
	return storedWidth, storedHeight
}

// IsIdentity reports whether no transformation is needed.
func (o Orientation) IsIdentity() bool { return o == OrientNormal }

func (o Orientation) String() string {
	switch o {
	case OrientNormal:
		return "normal"
	case OrientFlipH:
		return "flip-h"
	case OrientRotate180:
		return "rotate-180"
	case OrientFlipV:
		return "flip-v"
	case OrientTranspose:
		return "transpose"
	case OrientRotate90:
		return "rotate-90"
	case OrientTransverse:
		return "transverse"
	case OrientRotate270:
		return "rotate-270"
	}
	return "unknown"
}
