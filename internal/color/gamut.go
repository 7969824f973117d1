package color

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [9]float32

// Apply multiplies the column vector (a, b, c) by m.
func (m *Matrix3) Apply(a, b, c float32) (float32, float32, float32) {
	return m[0]*a + m[1]*b + m[2]*c,
		m[3]*a + m[4]*b + m[5]*c,
		m[6]*a + m[7]*b + m[8]*c
}

// Gamut holds the conversion matrices between an RGB color space and XYZ.
// Values are immutable after construction and shared without locking.
type Gamut struct {
	RGBToXYZ Matrix3
	XYZToRGB Matrix3
}

// D65 is the CIE standard illuminant D65 white point.
var D65 = Chromaticity{X: 0.31272, Y: 0.32903}

// sRGB (BT.709) primaries.
var (
	SRGBRed   = Chromaticity{X: 0.64, Y: 0.33}
	SRGBGreen = Chromaticity{X: 0.30, Y: 0.60}
	SRGBBlue  = Chromaticity{X: 0.15, Y: 0.06}
)

// SRGB is the sRGB / D65 gamut, derived once at package initialization.
var SRGB = mustGamut(SRGBRed, SRGBGreen, SRGBBlue, D65)

func mustGamut(r, g, b, white Chromaticity) *Gamut {
	gm, err := NewGamut(r, g, b, white)
	if err != nil {
		panic(err)
	}
	return gm
}

// NewGamut derives the RGB to XYZ matrix from the primaries' chromaticities
// and a white point, and its inverse.
//
// With P the matrix whose columns are the primaries lifted to XYZ, the
// per-primary scales S = P^-1 * W make white (1, 1, 1) map onto W. The
// conversion matrix is P with column j scaled by S[j].
func NewGamut(red, green, blue, white Chromaticity) (*Gamut, error) {
	primaries := mat.NewDense(3, 3, nil)
	for col, c := range [3]Chromaticity{red, green, blue} {
		xyz := XyToXYZ(c.X, c.Y)
		primaries.Set(0, col, xyz.X)
		primaries.Set(1, col, xyz.Y)
		primaries.Set(2, col, xyz.Z)
	}

	var inv mat.Dense
	if err := inv.Inverse(primaries); err != nil {
		return nil, errors.Wrap(ErrSingularGamut, err.Error())
	}

	w := XyToXYZ(white.X, white.Y)
	var scale mat.VecDense
	scale.MulVec(&inv, mat.NewVecDense(3, []float64{w.X, w.Y, w.Z}))

	var toXYZ mat.Dense
	toXYZ.Apply(func(_, j int, v float64) float64 {
		return v * scale.AtVec(j)
	}, primaries)

	var fromXYZ mat.Dense
	if err := fromXYZ.Inverse(&toXYZ); err != nil {
		return nil, errors.Wrap(ErrSingularGamut, err.Error())
	}

	return &Gamut{
		RGBToXYZ: toMatrix3(&toXYZ),
		XYZToRGB: toMatrix3(&fromXYZ),
	}, nil
}

func toMatrix3(m mat.Matrix) Matrix3 {
	var out Matrix3
	for i := range 3 {
		for j := range 3 {
			out[i*3+j] = float32(m.At(i, j))
		}
	}
	return out
}
