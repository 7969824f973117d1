package filter

import (
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/half"
	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/numeric"
	"github.com/gogpu/pixkern/internal/parallel"
	"github.com/gogpu/pixkern/internal/wide"
)

// Convolve1D applies a separable convolution in place: every row is
// convolved with horizontal into a scratch image, then every column of the
// scratch image is convolved with vertical back into buf. Samples outside the
// image are clamped to the nearest edge. All four channels are filtered.
//
// RGBA8 results are rounded to nearest and clamped to [0, 255]; RGBAF16
// results are stored unclamped.
func Convolve1D(buf *image.Buffer, horizontal, vertical []float32, ex *parallel.Executor) error {
	if len(horizontal) == 0 || len(vertical) == 0 {
		return ErrEmptyKernel
	}

	switch buf.Layout() {
	case image.LayoutRGBA8:
		convolveRGBA8(buf, horizontal, vertical, ex)
	case image.LayoutRGBAF16:
		convolveF16(buf, horizontal, vertical, ex)
	default:
		return errors.Wrapf(image.ErrInvalidLayout, "convolve %s", buf.Layout())
	}
	return nil
}

// preheat broadcasts every tap into a vector so the inner loops multiply
// whole pixels without reloading scalars.
func preheat(kernel []float32) []wide.F32x4 {
	taps := make([]wide.F32x4, len(kernel))
	for i, k := range kernel {
		taps[i] = wide.Splat4(k)
	}
	return taps
}

func preheat8(kernel []float32) []wide.F32x8 {
	taps := make([]wide.F32x8, len(kernel))
	for i, k := range kernel {
		taps[i] = wide.SplatF32(k)
	}
	return taps
}

// tapBounds returns the first and last offsets of a kernel of length n.
// Even kernels have one more tap on the left.
func tapBounds(n int) (lo, hi int) {
	lo = -(n / 2)
	hi = n/2 - 1 + n%2
	return lo, hi
}

func loadRGBA8(p []byte) wide.F32x4 {
	_ = p[3]
	return wide.F32x4{float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3])}
}

func storeRGBA8(p []byte, v wide.F32x4) {
	_ = p[3]
	p[0] = numeric.ClampUint8(v[0])
	p[1] = numeric.ClampUint8(v[1])
	p[2] = numeric.ClampUint8(v[2])
	p[3] = numeric.ClampUint8(v[3])
}

func convolveRGBA8(buf *image.Buffer, horizontal, vertical []float32, ex *parallel.Executor) {
	width, height := buf.Width(), buf.Height()
	rowBytes := buf.Layout().RowBytes(width)
	scratch := make([]byte, rowBytes*height)
	scratchRow := func(y int) []byte { return scratch[y*rowBytes : (y+1)*rowBytes] }

	eight := wide.Lanes() == wide.Lanes8
	h4, v4 := preheat(horizontal), preheat(vertical)
	var h8, v8 []wide.F32x8
	if eight {
		h8, v8 = preheat8(horizontal), preheat8(vertical)
	}

	ex.Rows(width, height, func(start, end int) {
		for y := start; y < end; y++ {
			if eight {
				horizontalRow8(scratchRow(y), buf.Row(y), h8, h4, width)
			} else {
				horizontalRow4(scratchRow(y), buf.Row(y), h4, width)
			}
		}
	})

	ex.Rows(width, height, func(start, end int) {
		for y := start; y < end; y++ {
			if eight {
				verticalRow8(buf.Row(y), scratchRow, v8, v4, y, width, height)
			} else {
				verticalRow4(buf.Row(y), scratchRow, v4, y, width, height)
			}
		}
	})
}

// horizontalRow4 convolves one RGBA8 row, one pixel per step.
func horizontalRow4(dst, src []byte, taps []wide.F32x4, width int) {
	lo, _ := tapBounds(len(taps))
	last := width - 1
	for x := 0; x < width; x++ {
		var acc wide.F32x4
		for i, w := range taps {
			px := numeric.ClampInt(x+lo+i, 0, last) * 4
			acc = acc.Add(loadRGBA8(src[px:]).Mul(w))
		}
		storeRGBA8(dst[x*4:], acc)
	}
}

// horizontalRow8 convolves two adjacent pixels per step. The lanes perform
// the same multiply and add sequence as horizontalRow4, so both produce the
// same bytes.
func horizontalRow8(dst, src []byte, taps []wide.F32x8, tail []wide.F32x4, width int) {
	lo, _ := tapBounds(len(taps))
	last := width - 1
	x := 0
	for ; x+1 < width; x += 2 {
		var acc wide.F32x8
		for i, w := range taps {
			p0 := numeric.ClampInt(x+lo+i, 0, last) * 4
			p1 := numeric.ClampInt(x+1+lo+i, 0, last) * 4
			acc = acc.Add(wide.Join(loadRGBA8(src[p0:]), loadRGBA8(src[p1:])).Mul(w))
		}
		storeRGBA8(dst[x*4:], acc.Lo())
		storeRGBA8(dst[x*4+4:], acc.Hi())
	}
	if x < width {
		var acc wide.F32x4
		for i, w := range tail {
			px := numeric.ClampInt(x+lo+i, 0, last) * 4
			acc = acc.Add(loadRGBA8(src[px:]).Mul(w))
		}
		storeRGBA8(dst[x*4:], acc)
	}
}

func verticalRow4(dst []byte, row func(int) []byte, taps []wide.F32x4, y, width, height int) {
	lo, _ := tapBounds(len(taps))
	last := height - 1
	for x := 0; x < width; x++ {
		var acc wide.F32x4
		for i, w := range taps {
			src := row(numeric.ClampInt(y+lo+i, 0, last))
			acc = acc.Add(loadRGBA8(src[x*4:]).Mul(w))
		}
		storeRGBA8(dst[x*4:], acc)
	}
}

func verticalRow8(dst []byte, row func(int) []byte, taps []wide.F32x8, tail []wide.F32x4, y, width, height int) {
	lo, _ := tapBounds(len(taps))
	last := height - 1
	x := 0
	for ; x+1 < width; x += 2 {
		var acc wide.F32x8
		for i, w := range taps {
			src := row(numeric.ClampInt(y+lo+i, 0, last))
			acc = acc.Add(wide.Join(loadRGBA8(src[x*4:]), loadRGBA8(src[x*4+4:])).Mul(w))
		}
		storeRGBA8(dst[x*4:], acc.Lo())
		storeRGBA8(dst[x*4+4:], acc.Hi())
	}
	if x < width {
		var acc wide.F32x4
		for i, w := range tail {
			src := row(numeric.ClampInt(y+lo+i, 0, last))
			acc = acc.Add(loadRGBA8(src[x*4:]).Mul(w))
		}
		storeRGBA8(dst[x*4:], acc)
	}
}

// convolveF16 is the half-float variant of convolveRGBA8. The scratch image
// keeps the intermediate in binary16 like the source.
func convolveF16(buf *image.Buffer, horizontal, vertical []float32, ex *parallel.Executor) {
	width, height := buf.Width(), buf.Height()
	rowBytes := buf.Layout().RowBytes(width)
	scratch := make([]byte, rowBytes*height)
	scratchRow := func(y int) []byte { return scratch[y*rowBytes : (y+1)*rowBytes] }

	h4, v4 := preheat(horizontal), preheat(vertical)
	hlo, _ := tapBounds(len(h4))
	vlo, _ := tapBounds(len(v4))

	ex.Rows(width, height, func(start, end int) {
		for y := start; y < end; y++ {
			src, dst := buf.Row(y), scratchRow(y)
			for x := 0; x < width; x++ {
				var acc wide.F32x4
				for i, w := range h4 {
					px := numeric.ClampInt(x+hlo+i, 0, width-1) * 8
					acc = acc.Add(wide.F32x4(half.LoadRGBA(src[px:])).Mul(w))
				}
				half.StoreRGBA(dst[x*8:], acc)
			}
		}
	})

	ex.Rows(width, height, func(start, end int) {
		for y := start; y < end; y++ {
			dst := buf.Row(y)
			for x := 0; x < width; x++ {
				var acc wide.F32x4
				for i, w := range v4 {
					src := scratchRow(numeric.ClampInt(y+vlo+i, 0, height-1))
					acc = acc.Add(wide.F32x4(half.LoadRGBA(src[x*8:])).Mul(w))
				}
				half.StoreRGBA(dst[x*8:], acc)
			}
		}
	})
}
