package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, 7, Clamp(7, 0, 10))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
	assert.Equal(t, 4, ClampInt(9, -2, 4))
}

func TestClampUint8(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-12, 0},
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{127.4, 127},
		{127.6, 128},
		{254.7, 255},
		{300, 255},
	}

	for _, tt := range tests {
		if got := ClampUint8(tt.in); got != tt.want {
			t.Errorf("ClampUint8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampUnit(t *testing.T) {
	assert.Equal(t, float32(0), ClampUnit(float32(math.NaN())))
	assert.Equal(t, float32(0), ClampUnit(-1))
	assert.Equal(t, float32(1), ClampUnit(3))
	assert.Equal(t, float32(0.25), ClampUnit(0.25))
}

func TestSafeReciprocal(t *testing.T) {
	assert.Equal(t, float32(1), SafeReciprocal(0))
	assert.InDelta(t, 0.25, SafeReciprocal(4), 1e-7)
}

func TestFixedCoeff(t *testing.T) {
	tests := []struct {
		c         float32
		precision uint
		want      int32
	}{
		{1, 6, 64},
		{255.0 / 219.0, 6, 75},
		{1.402, 6, 90},
		{-0.5, 6, -32},
		{0.3441, 8, 88},
	}

	for _, tt := range tests {
		if got := FixedCoeff(tt.c, tt.precision); got != tt.want {
			t.Errorf("FixedCoeff(%v, %d) = %d, want %d", tt.c, tt.precision, got, tt.want)
		}
	}
}
