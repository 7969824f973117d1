package tonemap

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/pixkern/internal/numeric"
	"github.com/gogpu/pixkern/internal/wide"
)

// qMax bounds the YIQ quadrature (green to magenta) component.
const qMax = 0.5226

// warmFilter is the overlay color mixed in by temperature.
var warmFilter = [3]float32{0.93, 0.54, 0}

var (
	rgbToYIQ = mat3{
		0.299, 0.587, 0.114,
		0.596, -0.274, -0.322,
		0.212, -0.523, 0.311,
	}
	yiqToRGB = invertMat3(rgbToYIQ)
)

func invertMat3(m mat3) mat3 {
	src := mat.NewDense(3, 3, nil)
	for i, v := range m {
		src.Set(i/3, i%3, float64(v))
	}
	var inv mat.Dense
	if err := inv.Inverse(src); err != nil {
		panic(err)
	}
	var out mat3
	for i := range out {
		out[i] = float32(inv.At(i/3, i%3))
	}
	return out
}

// WhiteBalance shifts tint along the YIQ quadrature axis and warms the image
// by blending an overlay of an amber filter.
type WhiteBalance struct {
	temperature float32
	shift       float32
}

// NewWhiteBalance returns the white balance curve. temperature is the blend
// toward the warm overlay, 0 leaving colors alone and 1 applying it fully.
// tint runs from -100 (green) to 100 (magenta).
func NewWhiteBalance(temperature, tint float32) *WhiteBalance {
	return &WhiteBalance{
		temperature: temperature,
		shift:       tint / 100 * qMax * 0.1,
	}
}

func (m *WhiteBalance) Execute(r, g, b float32) (float32, float32, float32) {
	y, i, q := rgbToYIQ.apply(r, g, b)
	q = numeric.Clamp(q+m.shift, -qMax, qMax)
	r, g, b = yiqToRGB.apply(y, i, q)

	t := m.temperature
	warm := func(c, filter float32) float32 {
		return numeric.Clamp(c+(overlay(c, filter)-c)*t, 0, 1)
	}
	return warm(r, warmFilter[0]), warm(g, warmFilter[1]), warm(b, warmFilter[2])
}

func (m *WhiteBalance) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	y, i, q := rgbToYIQ.apply4(r, g, b)
	q = q.Add(wide.Splat4(m.shift)).Clamp(-qMax, qMax)
	r, g, b = yiqToRGB.apply4(y, i, q)

	t := m.temperature
	warm := func(c wide.F32x4, filter float32) wide.F32x4 {
		return c.Add(overlay4(c, filter).Sub(c).MulScalar(t)).Clamp(0, 1)
	}
	return warm(r, warmFilter[0]), warm(g, warmFilter[1]), warm(b, warmFilter[2])
}
