// Package color implements the colorimetric transforms used by the kernels:
// the sRGB transfer function, RGB/XYZ gamut matrices and YUV to RGBA
// reconstruction.
package color

import "github.com/pkg/errors"

// Errors returned by coefficient and matrix derivation.
var (
	// ErrInvalidPrimaries is returned when Kr + Kb == 1, which leaves no
	// green contribution to derive chroma multipliers from.
	ErrInvalidPrimaries = errors.New("color: luma primaries leave Kg = 0")

	// ErrSingularGamut is returned when primaries do not span a 3D space.
	ErrSingularGamut = errors.New("color: primaries matrix is singular")

	// ErrSizeMismatch is returned when source and destination geometry
	// differ.
	ErrSizeMismatch = errors.New("color: source and destination sizes differ")
)

// Chromaticity is a CIE 1931 xy coordinate.
type Chromaticity struct {
	X, Y float64
}

// XYZ is a CIE 1931 tristimulus value.
type XYZ struct {
	X, Y, Z float64
}

// XyToXYZ lifts chromaticity (x, y) to XYZ with unit luminance:
// (x/y, 1, (1-x-y)/y).
func XyToXYZ(x, y float64) XYZ {
	return XYZ{X: x / y, Y: 1, Z: (1 - x - y) / y}
}
