package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixkern/internal/wide"
)

func TestSRGBToLinear_Segments(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{0.04, 0.04 / 12.92},
		{0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
		{1, 1},
	}

	for _, tt := range tests {
		got := SRGBToLinear(tt.in)
		assert.InDelta(t, tt.want, got, 1e-6, "SRGBToLinear(%v)", tt.in)
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	for i := 0; i <= 10000; i++ {
		v := float32(i) / 10000
		got := LinearToSRGB(SRGBToLinear(v))
		require.InDelta(t, v, got, 1e-5, "round trip of %v", v)
	}
}

func TestSRGBBatchMatchesScalar(t *testing.T) {
	for i := 0; i < 1024; i += 4 {
		var v wide.F32x4
		for l := range v {
			v[l] = float32(i+l) / 1023 * 1.2
		}
		dec := SRGBToLinear4(v)
		enc := LinearToSRGB4(v)
		for l := range v {
			assert.InDelta(t, SRGBToLinear(v[l]), dec[l], 1e-6)
			assert.InDelta(t, LinearToSRGB(v[l]), enc[l], 1e-6)
		}
	}
}

func TestSRGB8LUT(t *testing.T) {
	for i := range 256 {
		require.Equal(t, SRGBToLinear(float32(i)/255), SRGB8ToLinear(uint8(i)))
	}

	assert.Equal(t, uint8(0), LinearToSRGB8(-1))
	assert.Equal(t, uint8(255), LinearToSRGB8(2))
	assert.Equal(t, uint8(0), LinearToSRGB8(float32(math.NaN())))

	maxErr := 0
	for i := range 256 {
		got := int(LinearToSRGB8(SRGB8ToLinear(uint8(i))))
		maxErr = max(maxErr, abs(got-i))
	}
	assert.LessOrEqual(t, maxErr, 1, "byte round trip through 12-bit table")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
