package filter

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/numeric"
	"github.com/gogpu/pixkern/internal/parallel"
)

// ErrInvalidSigma is returned for non-positive bilateral sigmas.
var ErrInvalidSigma = errors.New("filter: sigma must be positive")

// BilateralBlur smooths the RGB channels of an RGBA8 buffer while keeping
// edges. Each neighbour in the clamped size x size window is weighted by a
// Gaussian of its distance to the center (spatialSigma, in pixels) times a
// Gaussian of its Rec.601 luma difference (rangeSigma, in 0..255 units).
// Alpha is left untouched.
func BilateralBlur(buf *image.Buffer, size int, spatialSigma, rangeSigma float32, ex *parallel.Executor) error {
	if err := checkSize(size); err != nil {
		return err
	}
	if !(spatialSigma > 0) || !(rangeSigma > 0) {
		return errors.Wrapf(ErrInvalidSigma, "spatial %v, range %v", spatialSigma, rangeSigma)
	}
	if buf.Layout() != image.LayoutRGBA8 {
		return errors.Wrapf(image.ErrLayoutMismatch, "bilateral blur %s", buf.Layout())
	}
	if size == 1 {
		return nil
	}

	half := size / 2
	spatial := make([]float32, size*size)
	twoSpatial := 2 * spatialSigma * spatialSigma
	for j := -half; j <= half; j++ {
		for i := -half; i <= half; i++ {
			spatial[(j+half)*size+i+half] = -float32(i*i+j*j) / twoSpatial
		}
	}
	twoRange := 2 * rangeSigma * rangeSigma

	width, height := buf.Width(), buf.Height()
	rowBytes := buf.Layout().RowBytes(width)
	scratch := make([]byte, rowBytes*height)

	ex.Rows(width, height, func(start, end int) {
		for y := start; y < end; y++ {
			src := buf.Row(y)
			dst := scratch[y*rowBytes : (y+1)*rowBytes]
			copy(dst, src)
			for x := 0; x < width; x++ {
				center := luma601(src[x*4:])
				var sumR, sumG, sumB, total float32
				for j := -half; j <= half; j++ {
					row := buf.Row(numeric.ClampInt(y+j, 0, height-1))
					for i := -half; i <= half; i++ {
						p := row[numeric.ClampInt(x+i, 0, width-1)*4:]
						d := luma601(p) - center
						w := math32.Exp(spatial[(j+half)*size+i+half] - d*d/twoRange)
						sumR += w * float32(p[0])
						sumG += w * float32(p[1])
						sumB += w * float32(p[2])
						total += w
					}
				}
				// The center tap has weight 1, so total never drops below it.
				inv := 1 / total
				dst[x*4] = numeric.ClampUint8(sumR * inv)
				dst[x*4+1] = numeric.ClampUint8(sumG * inv)
				dst[x*4+2] = numeric.ClampUint8(sumB * inv)
			}
		}
	})

	for y := 0; y < height; y++ {
		copy(buf.Row(y), scratch[y*rowBytes:(y+1)*rowBytes])
	}
	return nil
}

func luma601(p []byte) float32 {
	_ = p[2]
	return 0.299*float32(p[0]) + 0.587*float32(p[1]) + 0.114*float32(p[2])
}
