package filter

import (
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/numeric"
	"github.com/gogpu/pixkern/internal/parallel"
)

// MaxMedianRadius bounds the median window to 65x65 samples.
const MaxMedianRadius = 32

// MedianBlur replaces every RGB sample of an RGBA8 buffer with the median of
// its clamped (2*radius+1)^2 neighbourhood. Alpha is left untouched.
func MedianBlur(buf *image.Buffer, radius int, ex *parallel.Executor) error {
	if radius < 0 || radius > MaxMedianRadius {
		return errors.Wrapf(ErrInvalidRadius, "median radius %d", radius)
	}
	if buf.Layout() != image.LayoutRGBA8 {
		return errors.Wrapf(image.ErrLayoutMismatch, "median blur %s", buf.Layout())
	}
	if radius == 0 {
		return nil
	}

	width, height := buf.Width(), buf.Height()
	rowBytes := buf.Layout().RowBytes(width)
	scratch := make([]byte, rowBytes*height)
	side := 2*radius + 1

	ex.Rows(width, height, func(start, end int) {
		window := make([]uint8, side*side)
		for y := start; y < end; y++ {
			dst := scratch[y*rowBytes : (y+1)*rowBytes]
			copy(dst, buf.Row(y))
			for x := 0; x < width; x++ {
				for c := 0; c < 3; c++ {
					n := 0
					for j := -radius; j <= radius; j++ {
						src := buf.Row(numeric.ClampInt(y+j, 0, height-1))
						for i := -radius; i <= radius; i++ {
							window[n] = src[numeric.ClampInt(x+i, 0, width-1)*4+c]
							n++
						}
					}
					dst[x*4+c] = numeric.Median(window)
				}
			}
		}
	})

	for y := 0; y < height; y++ {
		copy(buf.Row(y), scratch[y*rowBytes:(y+1)*rowBytes])
	}
	return nil
}
