package color

import (
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/numeric"
	"github.com/gogpu/pixkern/internal/parallel"
)

// XYZChannels is the number of float32 samples per pixel produced by
// RGBA8ToXYZ: X, Y, Z and straight alpha in [0, 1].
const XYZChannels = 4

// RGBA8ToXYZ decodes an RGBA8 buffer to linear light and converts it to
// interleaved X, Y, Z, A samples (row-major, no padding). Reference white
// maps to Y = 1.
func RGBA8ToXYZ(src *image.Buffer, g *Gamut, ex *parallel.Executor) ([]float32, error) {
	if src.Layout() != image.LayoutRGBA8 {
		return nil, errors.Wrapf(image.ErrLayoutMismatch, "xyz from %s", src.Layout())
	}
	if g == nil {
		g = SRGB
	}

	width, height := src.Width(), src.Height()
	out := make([]float32, width*height*XYZChannels)

	ex.Rows(width, height, func(start, end int) {
		for y := start; y < end; y++ {
			row := src.Row(y)
			dst := out[y*width*XYZChannels : (y+1)*width*XYZChannels]
			for x := 0; x < width; x++ {
				p := row[x*4 : x*4+4 : x*4+4]
				X, Y, Z := g.RGBToXYZ.Apply(
					SRGB8ToLinear(p[0]), SRGB8ToLinear(p[1]), SRGB8ToLinear(p[2]))
				d := dst[x*XYZChannels : x*XYZChannels+4 : x*XYZChannels+4]
				d[0], d[1], d[2], d[3] = X, Y, Z, float32(p[3])/255
			}
		}
	})
	return out, nil
}

// XYZToRGBA8 converts interleaved X, Y, Z, A samples back to RGBA8 in dst.
// Out-of-gamut values are clipped.
func XYZToRGBA8(xyz []float32, dst *image.Buffer, g *Gamut, ex *parallel.Executor) error {
	if dst.Layout() != image.LayoutRGBA8 {
		return errors.Wrapf(image.ErrLayoutMismatch, "xyz to %s", dst.Layout())
	}
	width, height := dst.Width(), dst.Height()
	if len(xyz) < width*height*XYZChannels {
		return errors.Wrapf(ErrSizeMismatch, "have %d samples for %dx%d", len(xyz), width, height)
	}
	if g == nil {
		g = SRGB
	}

	ex.Rows(width, height, func(start, end int) {
		for y := start; y < end; y++ {
			row := dst.Row(y)
			src := xyz[y*width*XYZChannels : (y+1)*width*XYZChannels]
			for x := 0; x < width; x++ {
				s := src[x*XYZChannels : x*XYZChannels+4 : x*XYZChannels+4]
				r, gr, b := g.XYZToRGB.Apply(s[0], s[1], s[2])
				p := row[x*4 : x*4+4 : x*4+4]
				p[0] = LinearToSRGB8(r)
				p[1] = LinearToSRGB8(gr)
				p[2] = LinearToSRGB8(b)
				p[3] = numeric.ClampUint8(s[3] * 255)
			}
		}
	})
	return nil
}
