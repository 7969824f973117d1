package filter

import (
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/numeric"
	"github.com/gogpu/pixkern/internal/parallel"
	"github.com/gogpu/pixkern/internal/wide"
)

// Convolve2D convolves an RGBA8 buffer in place with a size x size row-major
// kernel. Edges are clamped and all four channels are filtered. The result is
// computed into a scratch image and copied back once every row is done.
func Convolve2D(buf *image.Buffer, kernel []float32, size int, ex *parallel.Executor) error {
	if buf.Layout() != image.LayoutRGBA8 {
		return errors.Wrapf(image.ErrLayoutMismatch, "convolve2d %s", buf.Layout())
	}
	if size < 1 || len(kernel) != size*size {
		return errors.Wrapf(ErrInvalidKernelSize, "%d taps for size %d", len(kernel), size)
	}

	width, height := buf.Width(), buf.Height()
	rowBytes := buf.Layout().RowBytes(width)
	scratch := make([]byte, rowBytes*height)
	taps := preheat(kernel)
	lo, _ := tapBounds(size)

	ex.Rows(width, height, func(start, end int) {
		for y := start; y < end; y++ {
			dst := scratch[y*rowBytes : (y+1)*rowBytes]
			for x := 0; x < width; x++ {
				var acc wide.F32x4
				for j := 0; j < size; j++ {
					src := buf.Row(numeric.ClampInt(y+lo+j, 0, height-1))
					for i := 0; i < size; i++ {
						px := numeric.ClampInt(x+lo+i, 0, width-1) * 4
						acc = acc.Add(loadRGBA8(src[px:]).Mul(taps[j*size+i]))
					}
				}
				storeRGBA8(dst[x*4:], acc)
			}
		}
	})

	for y := 0; y < height; y++ {
		copy(buf.Row(y), scratch[y*rowBytes:(y+1)*rowBytes])
	}
	return nil
}
