package color

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pixkern/internal/wide"
)

const (
	// srgbThreshold separates the linear toe of the encoded curve.
	srgbThreshold = 0.045

	// linearThreshold is srgbThreshold mapped through the toe, so that
	// LinearToSRGB inverts SRGBToLinear on both segments.
	linearThreshold = srgbThreshold / 12.92

	srgbGamma    = 2.4
	srgbInvGamma = 1 / srgbGamma
)

// SRGBToLinear decodes a normalized sRGB value to linear light:
// v/12.92 below 0.045, ((v+0.055)/1.055)^2.4 otherwise.
func SRGBToLinear(v float32) float32 {
	if v < srgbThreshold {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, srgbGamma)
}

// LinearToSRGB encodes linear light to a normalized sRGB value.
// Values above 1 are encoded on the same curve; callers clamp after scaling.
func LinearToSRGB(v float32) float32 {
	if v < linearThreshold {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, srgbInvGamma) - 0.055
}

// SRGBToLinear4 is SRGBToLinear over four lanes.
func SRGBToLinear4(v wide.F32x4) wide.F32x4 {
	toe := v.Div(wide.Splat4(12.92))
	curve := v.Add(wide.Splat4(0.055)).Div(wide.Splat4(1.055)).Pow(srgbGamma)
	return v.Lt(wide.Splat4(srgbThreshold)).Select(toe, curve)
}

// LinearToSRGB4 is LinearToSRGB over four lanes.
func LinearToSRGB4(v wide.F32x4) wide.F32x4 {
	toe := v.Mul(wide.Splat4(12.92))
	curve := v.Pow(srgbInvGamma).Mul(wide.Splat4(1.055)).Sub(wide.Splat4(0.055))
	return v.Lt(wide.Splat4(linearThreshold)).Select(toe, curve)
}
