package filter

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(k []float32) float32 {
	var s float32
	for _, v := range k {
		s += v
	}
	return s
}

func TestKernelSizeValidation(t *testing.T) {
	generators := map[string]func(int) ([]float32, error){
		"gaussian": func(n int) ([]float32, error) { return GaussianKernel(n, 0) },
		"tent":     TentKernel,
		"tent2d":   TentKernel2D,
		"box":      BoxKernel,
		"poisson":  func(n int) ([]float32, error) { return PoissonKernel(n, 1) },
		"cached":   func(n int) ([]float32, error) { return CachedGaussianKernel(n, 1) },
	}

	for name, gen := range generators {
		t.Run(name, func(t *testing.T) {
			for _, size := range []int{0, -1, -3, 2, 8} {
				_, err := gen(size)
				assert.True(t, errors.Is(err, ErrInvalidKernelSize), "size %d", size)
			}
			k, err := gen(5)
			require.NoError(t, err)
			assert.NotEmpty(t, k)
		})
	}
}

func TestGaussianKernel(t *testing.T) {
	k, err := GaussianKernel(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, k)

	for _, size := range []int{3, 5, 9, 21, 51} {
		k, err := GaussianKernel(size, 0)
		require.NoError(t, err)
		require.Len(t, k, size)
		assert.InDelta(t, 1, sum(k), 1e-5)

		for i := 0; i < size/2; i++ {
			assert.InDelta(t, k[i], k[size-1-i], 1e-7)
			assert.Less(t, k[i], k[i+1], "taps grow toward the center")
		}
	}

	// A wider sigma flattens the kernel.
	narrow, _ := GaussianKernel(9, 1)
	wide, _ := GaussianKernel(9, 4)
	assert.Greater(t, narrow[4], wide[4])
}

func TestSizeForSigma(t *testing.T) {
	assert.Equal(t, 1, SizeForSigma(0))
	assert.Equal(t, 7, SizeForSigma(1))
	assert.Equal(t, 11, SizeForSigma(1.5))
}

func TestTentKernel(t *testing.T) {
	k, err := TentKernel(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, k)

	k, err = TentKernel(3)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 0}, k)

	k, err = TentKernel(5)
	require.NoError(t, err)
	// Raw taps 0, 0.5, 1, 0.5, 0.
	assert.InDeltaSlice(t, []float32{0, 0.25, 0.5, 0.25, 0}, k, 1e-6)
}

func TestTentKernel2D(t *testing.T) {
	for _, size := range []int{1, 3, 5, 9, 15} {
		k, err := TentKernel2D(size)
		require.NoError(t, err)
		require.Len(t, k, size*size)
		assert.InDelta(t, 1, sum(k), 1e-5, "size %d", size)

		center := k[size*size/2]
		for _, v := range k {
			assert.LessOrEqual(t, v, center)
		}
	}
}

func TestBoxKernel(t *testing.T) {
	k, err := BoxKernel(5)
	require.NoError(t, err)
	for _, v := range k {
		assert.Equal(t, float32(0.2), v)
	}
}

func TestPoissonKernel(t *testing.T) {
	a, err := PoissonKernel(7, 42)
	require.NoError(t, err)
	b, err := PoissonKernel(7, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed draws the same kernel")
	assert.InDelta(t, 1, sum(a), 1e-5)

	for _, v := range a {
		assert.GreaterOrEqual(t, v, float32(0))
	}

	// Size 1 always normalizes to the identity unless every draw is zero,
	// in which case the box fallback is the identity too.
	k, err := PoissonKernel(1, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{1}, k, 1e-6)
}

func TestMotionKernel(t *testing.T) {
	const size = 9
	center := size / 2

	flat, err := MotionKernel(size, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1, sum(flat), 1e-5)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := flat[y*size+x]
			if y != center {
				require.Zero(t, v, "cell %d,%d off the line", x, y)
				continue
			}
			assert.Positive(t, v)
			assert.Equal(t, v, flat[y*size+size-1-x], "row is symmetric")
		}
	}

	upright, err := MotionKernel(size, 90)
	require.NoError(t, err)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			assert.InDelta(t, flat[x*size+y], upright[y*size+x], 1e-6)
		}
	}

	reversed, err := MotionKernel(size, 180)
	require.NoError(t, err)
	assert.InDeltaSlice(t, flat, reversed, 1e-6)

	diagonal, err := MotionKernel(size, 45)
	require.NoError(t, err)
	// A line of length 8 at 45 degrees spans about 2.83 cells each way.
	assert.Positive(t, diagonal[1*size+7], "up and to the right")
	assert.Positive(t, diagonal[7*size+1], "down and to the left")
	assert.Zero(t, diagonal[0*size+8])
	assert.Zero(t, diagonal[center*size+center+1])

	one, err := MotionKernel(1, 33)
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, one)

	_, err = MotionKernel(4, 0)
	assert.True(t, errors.Is(err, ErrInvalidKernelSize))

	cachedA, err := CachedMotionKernel(size, 45)
	require.NoError(t, err)
	cachedB, err := CachedMotionKernel(size, 45)
	require.NoError(t, err)
	assert.Same(t, &cachedA[0], &cachedB[0])
	assert.Equal(t, diagonal, cachedA)
}

func TestCachedKernelsShared(t *testing.T) {
	before := KernelCacheStats()

	a, err := CachedGaussianKernel(13, 2.5)
	require.NoError(t, err)
	b, err := CachedGaussianKernel(13, 2.5)
	require.NoError(t, err)
	assert.Same(t, &a[0], &b[0])

	fresh, _ := GaussianKernel(13, 2.5)
	assert.Equal(t, fresh, a)

	after := KernelCacheStats()
	assert.GreaterOrEqual(t, after.Hits, before.Hits+1)

	tent, err := CachedTentKernel(5)
	require.NoError(t, err)
	box, err := CachedBoxKernel(5)
	require.NoError(t, err)
	assert.NotEqual(t, tent, box)
}
