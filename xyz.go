package pixkern

import "github.com/gogpu/pixkern/internal/color"

// XYZChannels is the number of samples per pixel in XYZ data: X, Y, Z and
// straight alpha.
const XYZChannels = color.XYZChannels

// Gamut holds the matrices between an RGB color space and CIE XYZ.
type Gamut = color.Gamut

// Chromaticity is a CIE xy chromaticity coordinate.
type Chromaticity = color.Chromaticity

// SRGB is the sRGB gamut with a D65 white point.
var SRGB = color.SRGB

// NewGamut derives a gamut from the chromaticities of its primaries and
// white point.
func NewGamut(red, green, blue, white Chromaticity) (*Gamut, error) {
	return color.NewGamut(red, green, blue, white)
}

// ToXYZ converts an RGBA8 sRGB bitmap to interleaved X, Y, Z, A samples.
// A nil gamut selects SRGB.
func ToXYZ(src *Bitmap, g *Gamut, opts ...Option) ([]float32, error) {
	return color.RGBA8ToXYZ(src.buf, g, buildOptions(opts).executor())
}

// FromXYZ converts interleaved X, Y, Z, A samples into the RGBA8 bitmap dst.
// Out-of-gamut colors are clipped. A nil gamut selects SRGB.
func FromXYZ(xyz []float32, dst *Bitmap, g *Gamut, opts ...Option) error {
	return color.XYZToRGBA8(xyz, dst.buf, g, buildOptions(opts).executor())
}
