package color

import (
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/numeric"
)

// Matrix selects the luma primaries Kr and Kb of a YUV encoding.
type Matrix struct {
	Kr, Kb float32
}

// Standard matrices.
var (
	BT601  = Matrix{Kr: 0.299, Kb: 0.114}
	BT709  = Matrix{Kr: 0.2126, Kb: 0.0722}
	BT2020 = Matrix{Kr: 0.2627, Kb: 0.0593}
)

// Range is the quantization range of a YUV encoding.
type Range uint8

const (
	// RangeLimited is studio range: luma 16-235, chroma 16-240.
	RangeLimited Range = iota

	// RangeFull uses all 256 codes for luma and chroma.
	RangeFull
)

// params returns the luma scale, the chroma range pair and the luma bias.
func (r Range) params() (lumaScale, high, low float32, bias int32) {
	if r == RangeFull {
		return 1, 255, 255, 0
	}
	return 255.0 / (235.0 - 16.0), 255, 240 - 16, 16
}

// uvBias is the chroma zero point.
const uvBias = 128

// precision is the fixed-point fraction width of the integer path.
const precision = 6

// Coefficients are the float multipliers of YUV to RGB reconstruction:
//
//	R = Y' + Cr*V'
//	G = Y' - G1*V' - G2*U'
//	B = Y' + Cb*U'
//
// with Y' = (Y - bias)*LumaScale, U' = U - 128, V' = V - 128.
type Coefficients struct {
	Cr, Cb, G1, G2 float32
	LumaScale      float32
	YBias          int32
}

// ComputeTransform derives the chroma multipliers for primaries (kr, kb)
// and range = rangeHigh/rangeLow:
//
//	Cr = 2(1-Kr)*range
//	Cb = 2(1-Kb)*range
//	G1 = 2(1-Kr)Kr/Kg*range
//	G2 = 2(1-Kb)Kb/Kg*range
//
// where Kg = 1-Kr-Kb. It fails with ErrInvalidPrimaries when Kg is zero.
func ComputeTransform(kr, kb, rangeHigh, rangeLow float32) (cr, cb, g1, g2 float32, err error) {
	kg := 1 - kr - kb
	if kg == 0 {
		return 0, 0, 0, 0, errors.Wrapf(ErrInvalidPrimaries, "kr=%v kb=%v", kr, kb)
	}
	scale := rangeHigh / rangeLow
	cr = 2 * (1 - kr) * scale
	cb = 2 * (1 - kb) * scale
	g1 = 2 * ((1 - kr) * kr / kg) * scale
	g2 = 2 * ((1 - kb) * kb / kg) * scale
	return cr, cb, g1, g2, nil
}

// NewCoefficients derives the reconstruction coefficients for m in range r.
func NewCoefficients(m Matrix, r Range) (Coefficients, error) {
	luma, high, low, bias := r.params()
	cr, cb, g1, g2, err := ComputeTransform(m.Kr, m.Kb, high, low)
	if err != nil {
		return Coefficients{}, err
	}
	return Coefficients{Cr: cr, Cb: cb, G1: g1, G2: g2, LumaScale: luma, YBias: bias}, nil
}

// FixedCoefficients are Coefficients scaled by 2^precision and rounded.
type FixedCoefficients struct {
	Cr, Cb, G1, G2 int32
	Luma           int32
	YBias          int32
}

// Fixed converts c for the integer path.
func (c Coefficients) Fixed() FixedCoefficients {
	return FixedCoefficients{
		Cr:    numeric.FixedCoeff(c.Cr, precision),
		Cb:    numeric.FixedCoeff(c.Cb, precision),
		G1:    numeric.FixedCoeff(c.G1, precision),
		G2:    numeric.FixedCoeff(c.G2, precision),
		Luma:  numeric.FixedCoeff(c.LumaScale, precision),
		YBias: c.YBias,
	}
}

// Pixel reconstructs one RGB triple with shift-based arithmetic.
func (f *FixedCoefficients) Pixel(y, u, v uint8) (r, g, b uint8) {
	luma := (int32(y) - f.YBias) * f.Luma
	cr := int32(v) - uvBias
	cb := int32(u) - uvBias
	r = clampByte((luma + f.Cr*cr) >> precision)
	g = clampByte((luma - f.G1*cr - f.G2*cb) >> precision)
	b = clampByte((luma + f.Cb*cb) >> precision)
	return r, g, b
}

// PixelF reconstructs one RGB triple in float precision from fractional
// chroma samples.
func (c *Coefficients) PixelF(y uint8, u, v float32) (r, g, b uint8) {
	luma := float32(int32(y)-c.YBias) * c.LumaScale
	cr := v - uvBias
	cb := u - uvBias
	r = numeric.ClampUint8(luma + c.Cr*cr)
	g = numeric.ClampUint8(luma - c.G1*cr - c.G2*cb)
	b = numeric.ClampUint8(luma + c.Cb*cb)
	return r, g, b
}

func clampByte(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
