package pixkern

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patternBitmap(t testing.TB, w, h int) *Bitmap {
	t.Helper()
	bm, err := NewBitmap(w, h, LayoutRGBA8)
	require.NoError(t, err)
	for y := range h {
		for x := range w {
			bm.SetRGBA(x, y, uint8(x*37+y*11), uint8(x*x+y), uint8(y*29), uint8(200+x%50))
		}
	}
	return bm
}

func TestNewBitmapErrors(t *testing.T) {
	_, err := NewBitmap(0, 4, LayoutRGBA8)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))

	_, err = FromRaw(make([]byte, 15), 2, 2, LayoutRGBA8, 8)
	assert.True(t, errors.Is(err, ErrDataTooSmall))

	_, err = FromRaw(make([]byte, 64), 4, 2, LayoutRGBA8, 12)
	assert.True(t, errors.Is(err, ErrInvalidStride))
}

func TestFromRawIsInPlace(t *testing.T) {
	data := make([]byte, 3*40)
	bm, err := FromRaw(data, 8, 3, LayoutRGBA8, 40)
	require.NoError(t, err)

	bm.Fill(10, 20, 30, 40)
	require.NoError(t, BoxBlur(bm, 3))

	assert.Equal(t, []byte{10, 20, 30, 40}, data[40:44])
	assert.Equal(t, make([]byte, 8), data[32:40], "padding untouched")
}

func TestDigestIgnoresPadding(t *testing.T) {
	tight := patternBitmap(t, 9, 4)

	padded, err := FromRaw(make([]byte, 4*48), 9, 4, LayoutRGBA8, 48)
	require.NoError(t, err)
	for y := range 4 {
		copy(padded.Row(y), tight.Row(y))
		padded.Pix()[y*48+47] = byte(y + 1)
	}

	assert.Equal(t, tight.Digest(), padded.Digest())
	assert.True(t, tight.Equal(padded))

	padded.SetRGBA(0, 0, 1, 2, 3, 4)
	assert.NotEqual(t, tight.Digest(), padded.Digest())
}

func TestHalfFloatConversion(t *testing.T) {
	bm := patternBitmap(t, 7, 3)

	f16, err := bm.ToRGBAF16()
	require.NoError(t, err)
	assert.Equal(t, LayoutRGBAF16, f16.Layout())
	assert.Equal(t, 7*8, f16.Stride())

	back, err := f16.ToRGBA8()
	require.NoError(t, err)
	assert.True(t, bm.Equal(back), "8-bit values survive binary16")

	_, err = bm.ToRGBA8()
	assert.True(t, errors.Is(err, ErrLayoutMismatch))
}

func TestHalfFloatBlur(t *testing.T) {
	bm, err := NewBitmap(16, 16, LayoutRGBA8)
	require.NoError(t, err)
	bm.Fill(51, 102, 153, 255)

	f16, err := bm.ToRGBAF16()
	require.NoError(t, err)
	require.NoError(t, GaussianBlur(f16, 5, 0))

	back, err := f16.ToRGBA8()
	require.NoError(t, err)
	assert.True(t, bm.Equal(back))

	assert.True(t, errors.Is(StackBlur(f16, 2), ErrLayoutMismatch))
}

func TestBlurWrappers(t *testing.T) {
	ops := map[string]func(*Bitmap, ...Option) error{
		"gaussian":  func(b *Bitmap, o ...Option) error { return GaussianBlur(b, 7, 1.5, o...) },
		"tent":      func(b *Bitmap, o ...Option) error { return TentBlur(b, 7, o...) },
		"tent2d":    func(b *Bitmap, o ...Option) error { return TentBlur2D(b, 7, o...) },
		"box":       func(b *Bitmap, o ...Option) error { return BoxBlur(b, 5, o...) },
		"poisson":   func(b *Bitmap, o ...Option) error { return PoissonBlur(b, 5, 42, o...) },
		"stack":     func(b *Bitmap, o ...Option) error { return StackBlur(b, 6, o...) },
		"median":    func(b *Bitmap, o ...Option) error { return MedianBlur(b, 2, o...) },
		"stackxy":   func(b *Bitmap, o ...Option) error { return StackBlurXY(b, 9, 2, o...) },
		"motion":    func(b *Bitmap, o ...Option) error { return MotionBlur(b, 7, 30, o...) },
		"bilateral": func(b *Bitmap, o ...Option) error { return BilateralBlur(b, 5, 2, 25, o...) },
	}

	pool := NewPool(4)
	defer pool.Close()

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			serial := patternBitmap(t, 600, 520)
			parallel := serial.Clone()
			pooled := serial.Clone()

			require.NoError(t, op(serial, WithWorkers(1)))
			require.NoError(t, op(parallel, WithWorkers(8)))
			require.NoError(t, op(pooled, WithWorkers(8), WithPool(pool)))

			assert.Equal(t, serial.Digest(), parallel.Digest())
			assert.Equal(t, serial.Digest(), pooled.Digest())
		})
	}
}

func TestConvolveIdentity(t *testing.T) {
	bm := patternBitmap(t, 11, 6)
	want := bm.Clone()

	require.NoError(t, Convolve(bm, []float32{0, 1, 0}, []float32{1}))
	assert.True(t, bm.Equal(want))

	k := make([]float32, 9)
	k[4] = 1
	require.NoError(t, Convolve2D(bm, k, 3))
	assert.True(t, bm.Equal(want))

	assert.True(t, errors.Is(Convolve(bm, nil, []float32{1}), ErrEmptyKernel))
}

func TestKernelValidation(t *testing.T) {
	_, err := GaussianKernel(4, 1)
	assert.True(t, errors.Is(err, ErrInvalidKernelSize))
	assert.True(t, errors.Is(StackBlur(patternBitmap(t, 2, 2), MaxStackRadius+1), ErrInvalidRadius))
	assert.Equal(t, 7, SizeForSigma(1))
	assert.True(t, errors.Is(BilateralBlur(patternBitmap(t, 4, 4), 3, 0, 10), ErrInvalidSigma))
	assert.True(t, errors.Is(StackBlurXY(patternBitmap(t, 4, 4), 2, -2), ErrInvalidRadius))

	k, err := MotionKernel(5, 0)
	require.NoError(t, err)
	assert.Len(t, k, 25)
	_, err = MotionKernel(2, 0)
	assert.True(t, errors.Is(err, ErrInvalidKernelSize))
}

func TestToneMapExposureIdentity(t *testing.T) {
	bm := patternBitmap(t, 10, 7)
	want := bm.Clone()

	m, err := NewToneMapper(CurveExposure, DefaultToneParams())
	require.NoError(t, err)
	require.NoError(t, ToneMap(bm, m))
	assert.True(t, bm.Equal(want))

	c, err := ParseToneCurve("hable")
	require.NoError(t, err)
	assert.Equal(t, CurveHable, c)
	assert.Len(t, ToneCurves(), 12)

	_, err = ParseToneCurve("filmic")
	assert.True(t, errors.Is(err, ErrUnknownToneMapper))
}

func TestYUVToRGBA(t *testing.T) {
	src, err := NewPlanar(4, 4, SubNV21)
	require.NoError(t, err)
	for i := range src.Y {
		src.Y[i] = 128
	}
	for i := range src.U {
		src.U[i] = 128
	}

	dst, err := NewBitmap(4, 4, LayoutRGBA8)
	require.NoError(t, err)
	require.NoError(t, YUVToRGBA(dst, src, BT601, RangeFull))

	r, g, b, a := dst.RGBA(3, 3)
	assert.Equal(t, [4]uint8{128, 128, 128, 255}, [4]uint8{r, g, b, a})

	require.NoError(t, YUV420ToRGBAPrecise(dst, src, BT709, RangeFull))
	r, g, b, a = dst.RGBA(1, 2)
	assert.Equal(t, [4]uint8{128, 128, 128, 255}, [4]uint8{r, g, b, a})

	small, err := NewBitmap(2, 2, LayoutRGBA8)
	require.NoError(t, err)
	assert.Error(t, YUVToRGBA(small, src, BT601, RangeFull))
}

func TestXYZRoundTrip(t *testing.T) {
	bm := patternBitmap(t, 12, 5)
	xyz, err := ToXYZ(bm, nil)
	require.NoError(t, err)
	require.Len(t, xyz, 12*5*XYZChannels)

	out, err := NewBitmap(12, 5, LayoutRGBA8)
	require.NoError(t, err)
	require.NoError(t, FromXYZ(xyz, out, SRGB, WithWorkers(2)))

	for y := range 5 {
		for x := range 12 {
			r0, g0, b0, a0 := bm.RGBA(x, y)
			r1, g1, b1, a1 := out.RGBA(x, y)
			assert.InDelta(t, r0, r1, 1)
			assert.InDelta(t, g0, g1, 1)
			assert.InDelta(t, b0, b1, 1)
			assert.Equal(t, a0, a1)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	bm := patternBitmap(t, 6, 5)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, bm.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, bm.Equal(got))

	var buf bytes.Buffer
	require.NoError(t, bm.Encode(&buf, PNG))
	dec, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, bm.Digest(), dec.Digest())

	_, err = Load("")
	assert.True(t, errors.Is(err, ErrEmptyPath))
}

func TestDiagnostics(t *testing.T) {
	assert.Contains(t, []string{"avx512", "avx2", "neon", "sse2", "scalar"}, SIMD())

	before := KernelCacheStats()
	for range 2 {
		bm := patternBitmap(t, 16, 16)
		require.NoError(t, GaussianBlur(bm, 9, 2.25))
	}
	after := KernelCacheStats()
	assert.Greater(t, after.Hits, before.Hits)
	assert.Positive(t, after.Entries)
	assert.LessOrEqual(t, after.Entries, after.Capacity)
}
