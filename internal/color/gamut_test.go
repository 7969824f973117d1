package color

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/parallel"
)

func TestSRGBGamut(t *testing.T) {
	want := Matrix3{
		0.4124, 0.3576, 0.1805,
		0.2126, 0.7152, 0.0722,
		0.0193, 0.1192, 0.9505,
	}
	for i := range want {
		assert.InDelta(t, want[i], SRGB.RGBToXYZ[i], 2e-3, "RGBToXYZ[%d]", i)
	}

	// Row 1 is the luminance of each primary and must sum to white Y = 1.
	sum := SRGB.RGBToXYZ[3] + SRGB.RGBToXYZ[4] + SRGB.RGBToXYZ[5]
	assert.InDelta(t, 1, sum, 1e-5)
}

func TestGamutInverse(t *testing.T) {
	for _, c := range [][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.2, 0.5, 0.9}} {
		x, y, z := SRGB.RGBToXYZ.Apply(c[0], c[1], c[2])
		r, g, b := SRGB.XYZToRGB.Apply(x, y, z)
		assert.InDelta(t, c[0], r, 1e-5)
		assert.InDelta(t, c[1], g, 1e-5)
		assert.InDelta(t, c[2], b, 1e-5)
	}
}

func TestNewGamut_Singular(t *testing.T) {
	same := Chromaticity{X: 0.3, Y: 0.3}
	_, err := NewGamut(same, same, SRGBBlue, D65)
	assert.True(t, errors.Is(err, ErrSingularGamut))
}

func TestXyToXYZ(t *testing.T) {
	w := XyToXYZ(D65.X, D65.Y)
	assert.InDelta(t, 0.9505, w.X, 1e-3)
	assert.Equal(t, 1.0, w.Y)
	assert.InDelta(t, 1.089, w.Z, 1e-3)
}

func TestXYZRoundTrip(t *testing.T) {
	src, err := image.NewBuffer(17, 9, image.LayoutRGBA8)
	require.NoError(t, err)
	for y := range 9 {
		for x := range 17 {
			src.SetRGBA(x, y, uint8(x*15), uint8(y*28), uint8((x+y)*9), uint8(255-x))
		}
	}

	ex := &parallel.Executor{Hint: 4}
	xyz, err := RGBA8ToXYZ(src, nil, ex)
	require.NoError(t, err)
	require.Len(t, xyz, 17*9*XYZChannels)

	dst, err := image.NewBuffer(17, 9, image.LayoutRGBA8)
	require.NoError(t, err)
	require.NoError(t, XYZToRGBA8(xyz, dst, SRGB, ex))

	for y := range 9 {
		for x := range 17 {
			r0, g0, b0, a0 := src.RGBA(x, y)
			r1, g1, b1, a1 := dst.RGBA(x, y)
			assert.InDelta(t, r0, r1, 1, "R at %d,%d", x, y)
			assert.InDelta(t, g0, g1, 1, "G at %d,%d", x, y)
			assert.InDelta(t, b0, b1, 1, "B at %d,%d", x, y)
			assert.Equal(t, a0, a1)
		}
	}

	white, _ := image.NewBuffer(1, 1, image.LayoutRGBA8)
	white.Fill(255, 255, 255, 255)
	wx, err := RGBA8ToXYZ(white, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, wx[1], 1e-4, "white luminance")

	assert.True(t, errors.Is(XYZToRGBA8(xyz[:4], dst, nil, nil), ErrSizeMismatch))
}
