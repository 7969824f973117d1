package color

// srgb8ToLinearLUT maps every sRGB byte to linear light.
// Entries equal SRGBToLinear(float32(i)/255) exactly.
var srgb8ToLinearLUT [256]float32

// linearToSRGB8LUT maps linear light quantized to 12 bits to sRGB bytes.
var linearToSRGB8LUT [4096]uint8

func init() {
	for i := range srgb8ToLinearLUT {
		srgb8ToLinearLUT[i] = SRGBToLinear(float32(i) / 255)
	}

	for i := range linearToSRGB8LUT {
		s := LinearToSRGB(float32(i)/4095)*255 + 0.5
		switch {
		case s <= 0:
			linearToSRGB8LUT[i] = 0
		case s >= 255:
			linearToSRGB8LUT[i] = 255
		default:
			linearToSRGB8LUT[i] = uint8(s)
		}
	}
}

// SRGB8ToLinear decodes an sRGB byte with a table lookup.
func SRGB8ToLinear(s uint8) float32 {
	return srgb8ToLinearLUT[s]
}

// LinearToSRGB8 encodes linear light to an sRGB byte through a 12-bit
// table. Input is clamped to [0, 1]. The result is within one step of the
// exact encoding.
func LinearToSRGB8(l float32) uint8 {
	if !(l > 0) {
		return linearToSRGB8LUT[0]
	}
	if l >= 1 {
		return linearToSRGB8LUT[4095]
	}
	return linearToSRGB8LUT[int(l*4095+0.5)]
}
