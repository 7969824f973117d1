package filter

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/parallel"
)

func TestStackTables(t *testing.T) {
	assert.Len(t, stackMul, MaxStackRadius+1)
	assert.Len(t, stackShift, MaxStackRadius+1)

	// mul >> shift approximates 1/(r+1)^2 for every radius.
	for r := 0; r <= MaxStackRadius; r++ {
		weight := float64((r + 1) * (r + 1))
		approx := float64(stackMul[r]) / float64(uint64(1)<<stackShift[r])
		assert.InEpsilon(t, 1/weight, approx, 0.01, "radius %d", r)
	}
}

func TestStackBlurRadiusZeroIsIdentity(t *testing.T) {
	src := pattern(t, 31, 17)
	buf := src.Clone()
	require.NoError(t, StackBlur(buf, 0, nil))
	assert.True(t, buf.Equal(src))
}

func TestStackBlurInvalid(t *testing.T) {
	buf := pattern(t, 8, 8)
	for _, r := range []int{-1, MaxStackRadius + 1, 1000} {
		assert.True(t, errors.Is(StackBlur(buf, r, nil), ErrInvalidRadius), "radius %d", r)
	}

	f16, err := image.NewBuffer(4, 4, image.LayoutRGBAF16)
	require.NoError(t, err)
	assert.True(t, errors.Is(StackBlur(f16, 2, nil), image.ErrLayoutMismatch))
}

func TestStackBlurConstantImage(t *testing.T) {
	for _, r := range []int{1, 2, 5, 16, 100} {
		buf := solid(t, 50, 40, 120, 64, 200, 77)
		require.NoError(t, StackBlur(buf, r, nil))

		for y := 0; y < 40; y++ {
			for x := 0; x < 50; x++ {
				cr, cg, cb, ca := buf.RGBA(x, y)
				assert.InDelta(t, 120, cr, 1)
				assert.InDelta(t, 64, cg, 1)
				assert.InDelta(t, 200, cb, 1)
				require.Equal(t, uint8(77), ca)
			}
		}
	}
}

func TestStackBlurPreservesAlpha(t *testing.T) {
	buf := pattern(t, 33, 21)
	alpha := make([]uint8, 0, 33*21)
	for y := 0; y < 21; y++ {
		for x := 0; x < 33; x++ {
			_, _, _, a := buf.RGBA(x, y)
			alpha = append(alpha, a)
		}
	}

	require.NoError(t, StackBlur(buf, 4, nil))

	i := 0
	for y := 0; y < 21; y++ {
		for x := 0; x < 33; x++ {
			_, _, _, a := buf.RGBA(x, y)
			require.Equal(t, alpha[i], a)
			i++
		}
	}
}

func TestStackBlurSpreadsPeak(t *testing.T) {
	buf := solid(t, 21, 21, 0, 0, 0, 255)
	buf.SetRGBA(10, 10, 255, 255, 255, 255)
	require.NoError(t, StackBlur(buf, 3, nil))

	center, _, _, _ := buf.RGBA(10, 10)
	near, _, _, _ := buf.RGBA(12, 10)
	far, _, _, _ := buf.RGBA(0, 0)
	assert.Less(t, center, uint8(255))
	assert.LessOrEqual(t, near, center)
	assert.Equal(t, uint8(0), far)
}

func TestStackBlurParallelMatchesSerial(t *testing.T) {
	serial := pattern(t, 600, 480)
	require.NoError(t, StackBlur(serial, 9, &parallel.Executor{Hint: 1}))

	split := pattern(t, 600, 480)
	require.NoError(t, StackBlur(split, 9, &parallel.Executor{Hint: 6}))

	assert.Equal(t, digest(serial), digest(split))
}

func TestStackBlurSmallImages(t *testing.T) {
	// Radii larger than the image clamp every read to the last pixel.
	for _, size := range [][2]int{{1, 1}, {1, 9}, {9, 1}, {2, 3}} {
		buf := solid(t, size[0], size[1], 10, 20, 30, 255)
		require.NoError(t, StackBlur(buf, 20, nil))
		r, g, b, _ := buf.RGBA(0, 0)
		assert.InDelta(t, 10, r, 1)
		assert.InDelta(t, 20, g, 1)
		assert.InDelta(t, 30, b, 1)
	}
}

func TestStackBlurMaxRadiusWhite(t *testing.T) {
	// 255 * 255^2 * stackMul[254] exceeds the int32 range.
	peak := int64(255) * 255 * 255 * int64(stackMul[MaxStackRadius])
	require.Greater(t, peak, int64(1<<31-1))

	buf := solid(t, 600, 3, 255, 255, 255, 255)
	require.NoError(t, StackBlur(buf, MaxStackRadius, nil))
	for y := 0; y < 3; y++ {
		for x := 0; x < 600; x++ {
			r, g, b, _ := buf.RGBA(x, y)
			require.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b}, "pixel %d,%d", x, y)
		}
	}
}

func TestStackBlurXY(t *testing.T) {
	// Rows that are constant survive a horizontal-only blur.
	rows, err := image.NewBuffer(40, 30, image.LayoutRGBA8)
	require.NoError(t, err)
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			rows.SetRGBA(x, y, uint8(y*8), uint8(255-y*8), 17, 255)
		}
	}
	want := rows.Clone()
	require.NoError(t, StackBlurXY(rows, 12, 0, nil))
	assert.True(t, rows.Equal(want))

	// Columns that are constant survive a vertical-only blur.
	cols, err := image.NewBuffer(40, 30, image.LayoutRGBA8)
	require.NoError(t, err)
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			cols.SetRGBA(x, y, uint8(x*6), 90, uint8(255-x*6), 255)
		}
	}
	want = cols.Clone()
	require.NoError(t, StackBlurXY(cols, 0, 12, nil))
	assert.True(t, cols.Equal(want))

	// Equal radii match StackBlur.
	a := pattern(t, 64, 48)
	b := a.Clone()
	require.NoError(t, StackBlur(a, 5, nil))
	require.NoError(t, StackBlurXY(b, 5, 5, nil))
	assert.Equal(t, digest(a), digest(b))

	assert.True(t, errors.Is(StackBlurXY(a, 3, -1, nil), ErrInvalidRadius))
	assert.True(t, errors.Is(StackBlurXY(a, MaxStackRadius+1, 3, nil), ErrInvalidRadius))
}

func TestMedianBlur(t *testing.T) {
	src := solid(t, 16, 16, 33, 66, 99, 200)
	buf := src.Clone()
	require.NoError(t, MedianBlur(buf, 2, nil))
	assert.True(t, buf.Equal(src), "median of a constant image is the image")

	// An isolated outlier is removed, alpha is kept.
	buf = solid(t, 9, 9, 0, 0, 0, 255)
	buf.SetRGBA(4, 4, 255, 255, 255, 10)
	require.NoError(t, MedianBlur(buf, 1, nil))
	r, g, b, a := buf.RGBA(4, 4)
	assert.Equal(t, [4]uint8{0, 0, 0, 10}, [4]uint8{r, g, b, a})

	require.NoError(t, MedianBlur(buf, 0, nil))
	assert.True(t, errors.Is(MedianBlur(buf, -1, nil), ErrInvalidRadius))
	assert.True(t, errors.Is(MedianBlur(buf, MaxMedianRadius+1, nil), ErrInvalidRadius))
}

func BenchmarkStackBlur(b *testing.B) {
	buf := pattern(b, 1920, 1080)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = StackBlur(buf, 16, nil)
	}
}
