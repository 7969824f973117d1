package tonemap

import (
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/color"
	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/numeric"
	"github.com/gogpu/pixkern/internal/parallel"
	"github.com/gogpu/pixkern/internal/wide"
)

// BatchWidth is the number of pixels handed to ExecuteBatch at once.
const BatchWidth = 4

// Apply tone maps an RGBA8 buffer in place. Each pixel is decoded from sRGB
// to linear light, mapped by m, clamped to [0, 1] and encoded back. Rows are
// processed BatchWidth pixels at a time with a per-pixel tail. Alpha is
// preserved.
func Apply(buf *image.Buffer, m Mapper, ex *parallel.Executor) error {
	if m == nil {
		return errors.New("tonemap: nil mapper")
	}
	if buf.Layout() != image.LayoutRGBA8 {
		return errors.Wrapf(image.ErrLayoutMismatch, "tone map %s", buf.Layout())
	}

	width, height := buf.Width(), buf.Height()
	ex.Rows(width, height, func(start, end int) {
		for y := start; y < end; y++ {
			mapRow(buf.Row(y), width, m)
		}
	})
	return nil
}

func mapRow(row []byte, width int, m Mapper) {
	x := 0
	for ; x+BatchWidth <= width; x += BatchWidth {
		px := row[x*4 : (x+BatchWidth)*4 : (x+BatchWidth)*4]
		var r, g, b wide.F32x4
		for i := range BatchWidth {
			r[i] = color.SRGB8ToLinear(px[i*4])
			g[i] = color.SRGB8ToLinear(px[i*4+1])
			b[i] = color.SRGB8ToLinear(px[i*4+2])
		}

		r, g, b = m.ExecuteBatch(r, g, b)
		r, g, b = encode4(r), encode4(g), encode4(b)

		for i := range BatchWidth {
			px[i*4] = numeric.ClampUint8(r[i])
			px[i*4+1] = numeric.ClampUint8(g[i])
			px[i*4+2] = numeric.ClampUint8(b[i])
		}
	}

	for ; x < width; x++ {
		px := row[x*4 : x*4+4 : x*4+4]
		r, g, b := m.Execute(
			color.SRGB8ToLinear(px[0]),
			color.SRGB8ToLinear(px[1]),
			color.SRGB8ToLinear(px[2]),
		)
		px[0] = numeric.ClampUint8(encode(r))
		px[1] = numeric.ClampUint8(encode(g))
		px[2] = numeric.ClampUint8(encode(b))
	}
}

// encode clamps linear light to [0, 1] (NaN becomes 0) and returns the sRGB
// value scaled to [0, 255].
func encode(v float32) float32 {
	return color.LinearToSRGB(numeric.ClampUnit(v)) * 255
}

func encode4(v wide.F32x4) wide.F32x4 {
	for i := range v {
		v[i] = numeric.ClampUnit(v[i])
	}
	return color.LinearToSRGB4(v).MulScalar(255)
}
