package tonemap

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pixkern/internal/numeric"
	"github.com/gogpu/pixkern/internal/wide"
)

var (
	zero4 = wide.Splat4(0)
	one4  = wide.Splat4(1)
)

func luma(w [3]float32, r, g, b float32) float32 {
	return r*w[0] + g*w[1] + b*w[2]
}

func luma4(w [3]float32, r, g, b wide.F32x4) wide.F32x4 {
	return r.MulScalar(w[0]).Add(g.MulScalar(w[1])).Add(b.MulScalar(w[2]))
}

// Exposure scales every channel.
type Exposure struct {
	exposure float32
}

// NewExposure returns c' = c*exposure.
func NewExposure(exposure float32) *Exposure {
	return &Exposure{exposure: exposure}
}

func (m *Exposure) Execute(r, g, b float32) (float32, float32, float32) {
	e := m.exposure
	return r * e, g * e, b * e
}

func (m *Exposure) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	e := m.exposure
	return r.MulScalar(e), g.MulScalar(e), b.MulScalar(e)
}

// ACESFilm is the Narkowicz fit of the ACES reference curve.
type ACESFilm struct {
	exposure float32
}

const (
	acesA = 2.51
	acesB = 0.03
	acesC = 2.43
	acesD = 0.59
	acesE = 0.14
)

// NewACESFilm returns the curve x(ax+b)/(x(cx+d)+e) clamped to [0, 1].
func NewACESFilm(exposure float32) *ACESFilm {
	return &ACESFilm{exposure: exposure}
}

func (m *ACESFilm) curve(v float32) float32 {
	x := v * m.exposure
	return numeric.Clamp((x*(acesA*x+acesB))/(x*(acesC*x+acesD)+acesE), 0, 1)
}

func (m *ACESFilm) curve4(v wide.F32x4) wide.F32x4 {
	x := v.MulScalar(m.exposure)
	num := x.Mul(x.MulScalar(acesA).Add(wide.Splat4(acesB)))
	den := x.Mul(x.MulScalar(acesC).Add(wide.Splat4(acesD))).Add(wide.Splat4(acesE))
	return num.Div(den).Clamp(0, 1)
}

func (m *ACESFilm) Execute(r, g, b float32) (float32, float32, float32) {
	return m.curve(r), m.curve(g), m.curve(b)
}

func (m *ACESFilm) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	return m.curve4(r), m.curve4(g), m.curve4(b)
}

// mat3 is a row-major 3x3 color matrix.
type mat3 [9]float32

func (t *mat3) apply(r, g, b float32) (float32, float32, float32) {
	return t[0]*r + t[1]*g + t[2]*b,
		t[3]*r + t[4]*g + t[5]*b,
		t[6]*r + t[7]*g + t[8]*b
}

func (t *mat3) apply4(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	return r.MulScalar(t[0]).Add(g.MulScalar(t[1])).Add(b.MulScalar(t[2])),
		r.MulScalar(t[3]).Add(g.MulScalar(t[4])).Add(b.MulScalar(t[5])),
		r.MulScalar(t[6]).Add(g.MulScalar(t[7])).Add(b.MulScalar(t[8]))
}

// Stephen Hill's sRGB to ACES AP1 (with RRT saturation) and back.
var (
	acesInput = mat3{
		0.59719, 0.35458, 0.04823,
		0.07600, 0.90834, 0.01566,
		0.02840, 0.13383, 0.83777,
	}
	acesOutput = mat3{
		1.60475, -0.53108, -0.07367,
		-0.10208, 1.10813, -0.00605,
		-0.00327, -0.07276, 1.07602,
	}
)

// ACESHill fits the RRT and ODT in the ACES AP1 space.
type ACESHill struct {
	exposure float32
}

// NewACESHill returns the ACES fit by Stephen Hill.
func NewACESHill(exposure float32) *ACESHill {
	return &ACESHill{exposure: exposure}
}

func hillCurve(x float32) float32 {
	a := x*(x+0.0245786) - 0.000090537
	b := x*(0.983729*x+0.4329510) + 0.238081
	return a / b
}

func hillCurve4(x wide.F32x4) wide.F32x4 {
	a := x.Mul(x.Add(wide.Splat4(0.0245786))).Sub(wide.Splat4(0.000090537))
	b := x.Mul(x.MulScalar(0.983729).Add(wide.Splat4(0.4329510))).Add(wide.Splat4(0.238081))
	return a.Div(b)
}

func (m *ACESHill) Execute(r, g, b float32) (float32, float32, float32) {
	e := m.exposure
	r, g, b = acesInput.apply(r*e, g*e, b*e)
	return acesOutput.apply(hillCurve(r), hillCurve(g), hillCurve(b))
}

func (m *ACESHill) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	e := m.exposure
	r, g, b = acesInput.apply4(r.MulScalar(e), g.MulScalar(e), b.MulScalar(e))
	return acesOutput.apply4(hillCurve4(r), hillCurve4(g), hillCurve4(b))
}

// Hable is John Hable's Uncharted 2 filmic curve without white scaling.
type Hable struct {
	exposure float32
}

const (
	hableA = 0.15
	hableB = 0.50
	hableC = 0.10
	hableD = 0.20
	hableE = 0.02
	hableF = 0.30
)

// NewHable returns ((x(Ax+CB)+DE)/(x(Ax+B)+DF)) - E/F.
func NewHable(exposure float32) *Hable {
	return &Hable{exposure: exposure}
}

func (m *Hable) curve(v float32) float32 {
	x := v * m.exposure
	return (x*(hableA*x+hableC*hableB)+hableD*hableE)/(x*(hableA*x+hableB)+hableD*hableF) - hableE/hableF
}

func (m *Hable) curve4(v wide.F32x4) wide.F32x4 {
	x := v.MulScalar(m.exposure)
	num := x.Mul(x.MulScalar(hableA).Add(wide.Splat4(hableC * hableB))).Add(wide.Splat4(hableD * hableE))
	den := x.Mul(x.MulScalar(hableA).Add(wide.Splat4(hableB))).Add(wide.Splat4(hableD * hableF))
	return num.Div(den).Sub(wide.Splat4(hableE / hableF))
}

func (m *Hable) Execute(r, g, b float32) (float32, float32, float32) {
	return m.curve(r), m.curve(g), m.curve(b)
}

func (m *Hable) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	return m.curve4(r), m.curve4(g), m.curve4(b)
}

// hejl is the Hejl-Burgess-Dawson rational fit. It produces display
// encoded values, so the result is raised to 2.4 to return to linear light.
func hejl(x float32) float32 {
	c := (x * (6.2*x + 0.5)) / (x*(6.2*x+1.7) + 0.06)
	return math32.Pow(c, 2.4)
}

func hejl4(x wide.F32x4) wide.F32x4 {
	num := x.Mul(x.MulScalar(6.2).Add(wide.Splat4(0.5)))
	den := x.Mul(x.MulScalar(6.2).Add(wide.Splat4(1.7))).Add(wide.Splat4(0.06))
	return num.Div(den).Pow(2.4)
}

// HejlBurgess is the Jim Hejl and Richard Burgess-Dawson filmic curve.
type HejlBurgess struct {
	exposure float32
}

const hejlToe = 0.004

// NewHejlBurgess returns the filmic curve with its 0.004 black offset.
func NewHejlBurgess(exposure float32) *HejlBurgess {
	return &HejlBurgess{exposure: exposure}
}

func (m *HejlBurgess) curve(v float32) float32 {
	return hejl(max(0, v*m.exposure-hejlToe))
}

func (m *HejlBurgess) curve4(v wide.F32x4) wide.F32x4 {
	return hejl4(zero4.Max(v.MulScalar(m.exposure).Sub(wide.Splat4(hejlToe))))
}

func (m *HejlBurgess) Execute(r, g, b float32) (float32, float32, float32) {
	return m.curve(r), m.curve(g), m.curve(b)
}

func (m *HejlBurgess) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	return m.curve4(r), m.curve4(g), m.curve4(b)
}

// Aldridge is Graham Aldridge's variant of the Hejl-Burgess curve with a
// smooth toe of configurable width.
type Aldridge struct {
	exposure float32
	cutoff   float32
	toeScale float32
}

// NewAldridge returns the curve with the given toe cutoff (0.025 by default).
func NewAldridge(exposure, cutoff float32) *Aldridge {
	return &Aldridge{
		exposure: exposure,
		cutoff:   cutoff,
		toeScale: 0.25 * numeric.SafeReciprocal(cutoff),
	}
}

func (m *Aldridge) curve(v float32) float32 {
	in := v * m.exposure
	d := 2*m.cutoff - in
	x := in + d*numeric.Clamp(d, 0, 1)*m.toeScale - m.cutoff
	// The toe is in^2/(4*cutoff) analytically; rounding can take it below 0.
	return hejl(max(0, x))
}

func (m *Aldridge) curve4(v wide.F32x4) wide.F32x4 {
	in := v.MulScalar(m.exposure)
	d := wide.Splat4(2 * m.cutoff).Sub(in)
	x := in.Add(d.Mul(d.Clamp(0, 1)).MulScalar(m.toeScale)).Sub(wide.Splat4(m.cutoff))
	return hejl4(zero4.Max(x))
}

func (m *Aldridge) Execute(r, g, b float32) (float32, float32, float32) {
	return m.curve(r), m.curve(g), m.curve(b)
}

func (m *Aldridge) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	return m.curve4(r), m.curve4(g), m.curve4(b)
}

// Logarithmic maps luminance through log(1+L) normalized to the exposed
// white point and scales the channels by Lout/Lin.
type Logarithmic struct {
	luma     [3]float32
	exposure float32
	den      float32
}

// NewLogarithmic returns the logarithmic luminance curve.
func NewLogarithmic(luma [3]float32, exposure float32) *Logarithmic {
	const lmax = 1
	return &Logarithmic{
		luma:     luma,
		exposure: exposure,
		den:      numeric.SafeReciprocal(math32.Log(1 + lmax*exposure)),
	}
}

func (m *Logarithmic) Execute(r, g, b float32) (float32, float32, float32) {
	e := m.exposure
	r, g, b = r*e, g*e, b*e
	lin := luma(m.luma, r, g, b)
	if lin == 0 {
		return r, g, b
	}
	s := math32.Log(math32.Abs(lin+1))*m.den / lin
	return r * s, g * s, b * s
}

func (m *Logarithmic) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	e := m.exposure
	r, g, b = r.MulScalar(e), g.MulScalar(e), b.MulScalar(e)
	lin := luma4(m.luma, r, g, b)
	lout := lin.Add(one4).Abs().Log().MulScalar(m.den)
	s := lin.Eq(zero4).Select(one4, lout.Div(lin))
	return r.Mul(s), g.Mul(s), b.Mul(s)
}

// Drago is the adaptive logarithmic mapping of Drago et al. with a fixed
// world adaptation luminance of 1.
type Drago struct {
	luma     [3]float32
	exposure float32
	lwaP     float32
	lmaxP    float32
	exponent float32
	c1       float32
}

const (
	dragoLwa  = 1
	dragoBias = 0.85
)

// NewDrago returns the curve for a display of maxLd nits (250 by default).
// The scene maximum is maxLd scaled by exposure.
func NewDrago(luma [3]float32, exposure, maxLd float32) *Drago {
	lwaP := dragoLwa / math32.Pow(1+dragoBias-0.85, 5)
	lmaxP := maxLd * exposure / lwaP
	return &Drago{
		luma:     luma,
		exposure: exposure,
		lwaP:     lwaP,
		lmaxP:    lmaxP,
		exponent: math32.Log(dragoBias) / math32.Log(0.5),
		c1:       0.01 * maxLd * numeric.SafeReciprocal(math32.Log10(1+lmaxP)),
	}
}

func (m *Drago) Execute(r, g, b float32) (float32, float32, float32) {
	e := m.exposure
	r, g, b = r*e, g*e, b*e
	lin := luma(m.luma, r, g, b)
	linP := lin / m.lwaP
	c2 := math32.Log(linP+1) / math32.Log(math32.Pow(linP/m.lmaxP, m.exponent)*8+2)
	lout := c2 * m.c1
	s := lout
	if lin != 0 {
		s = lout / lin
	}
	if s == 1 {
		return r, g, b
	}
	return r * s, g * s, b * s
}

func (m *Drago) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	e := m.exposure
	r, g, b = r.MulScalar(e), g.MulScalar(e), b.MulScalar(e)
	lin := luma4(m.luma, r, g, b)
	linP := lin.Div(wide.Splat4(m.lwaP))
	den := linP.Div(wide.Splat4(m.lmaxP)).Pow(m.exponent).MulScalar(8).Add(wide.Splat4(2)).Log()
	c2 := linP.Add(one4).Log().Div(den)
	lout := c2.MulScalar(m.c1)
	s := lin.Eq(zero4).Select(lout, lout.Div(lin))
	return r.Mul(s), g.Mul(s), b.Mul(s)
}

// Mobius is linear up to transition and follows a Mobius transform above it
// that reaches peak asymptotically.
type Mobius struct {
	exposure   float32
	transition float32
	a, b, k    float32
}

// NewMobius returns the curve (0.9 transition and peak 1 by default).
func NewMobius(exposure, transition, peak float32) *Mobius {
	j := transition
	a := -j * j * (peak - 1) * numeric.SafeReciprocal(j*j-2*j+peak)
	b := (j*j - 2*j*peak + peak) / max(peak-1, 1e-6)
	k := (b*b + 2*b*j + j*j) * numeric.SafeReciprocal(b-a)
	return &Mobius{exposure: exposure, transition: j, a: a, b: b, k: k}
}

func (m *Mobius) curve(v float32) float32 {
	in := v * m.exposure
	if in <= m.transition {
		return in
	}
	return (in + m.a) * m.k / (in + m.b)
}

func (m *Mobius) curve4(v wide.F32x4) wide.F32x4 {
	in := v.MulScalar(m.exposure)
	shoulder := in.Add(wide.Splat4(m.a)).MulScalar(m.k).Div(in.Add(wide.Splat4(m.b)))
	return in.Le(wide.Splat4(m.transition)).Select(in, shoulder)
}

func (m *Mobius) Execute(r, g, b float32) (float32, float32, float32) {
	return m.curve(r), m.curve(g), m.curve(b)
}

func (m *Mobius) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	return m.curve4(r), m.curve4(g), m.curve4(b)
}

// Uchimura is the Gran Turismo curve by Hajime Uchimura with a toe, a
// linear section and an exponential shoulder.
type Uchimura struct {
	exposure float32
}

// Curve shape: peak 1, contrast 1, linear start 0.22, linear length 0.4,
// black tightness 1.33, black offset 0.
const (
	uchM = 0.22
	uchL = 0.4
	uchC = 1.33
)

var (
	uchL0 = (1 - float32(uchM)) * uchL
	uchS0 = uchM + uchL0
	uchS1 = uchM + uchL0
	uchCP = -1 / (1 - uchS1)
)

// NewUchimura returns the Gran Turismo curve.
func NewUchimura(exposure float32) *Uchimura {
	return &Uchimura{exposure: exposure}
}

func smoothstep(e0, e1, x float32) float32 {
	t := numeric.Clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

func smoothstep4(e0, e1 float32, x wide.F32x4) wide.F32x4 {
	t := x.Sub(wide.Splat4(e0)).Div(wide.Splat4(e1 - e0)).Clamp(0, 1)
	return t.Mul(t).Mul(wide.Splat4(3).Sub(t.MulScalar(2)))
}

func (m *Uchimura) curve(v float32) float32 {
	in := v * m.exposure

	w0 := 1 - smoothstep(0, uchM, in)
	var w2 float32
	if in >= uchS0 {
		w2 = 1
	}
	w1 := 1 - w0 - w2

	toe := uchM * math32.Pow(in/uchM, uchC)
	linear := uchM + (in - uchM)
	shoulder := 1 - (1-uchS1)*math32.Exp(uchCP*(in-uchS0))
	return toe*w0 + linear*w1 + shoulder*w2
}

func (m *Uchimura) curve4(v wide.F32x4) wide.F32x4 {
	in := v.MulScalar(m.exposure)

	w0 := one4.Sub(smoothstep4(0, uchM, in))
	w2 := in.Lt(wide.Splat4(uchS0)).Select(zero4, one4)
	w1 := one4.Sub(w0).Sub(w2)

	toe := in.Div(wide.Splat4(uchM)).Pow(uchC).MulScalar(uchM)
	linear := wide.Splat4(uchM).Add(in.Sub(wide.Splat4(uchM)))
	shoulder := one4.Sub(in.Sub(wide.Splat4(uchS0)).MulScalar(uchCP).Exp().MulScalar(1 - uchS1))
	return toe.Mul(w0).Add(linear.Mul(w1)).Add(shoulder.Mul(w2))
}

func (m *Uchimura) Execute(r, g, b float32) (float32, float32, float32) {
	return m.curve(r), m.curve(g), m.curve(b)
}

func (m *Uchimura) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	return m.curve4(r), m.curve4(g), m.curve4(b)
}

// Monochrome overlays a target color on the luminance of each pixel and
// blends the result with the original by the color's alpha.
type Monochrome struct {
	color    [4]float32
	luma     [3]float32
	exposure float32
}

// NewMonochrome returns the overlay toward color (RGB plus blend alpha).
func NewMonochrome(color [4]float32, luma [3]float32, exposure float32) *Monochrome {
	return &Monochrome{color: color, luma: luma, exposure: exposure}
}

func overlay(lin, c float32) float32 {
	if lin < 0.5 {
		return 2 * lin * c
	}
	return 1 - 2*(1-lin)*(1-c)
}

func overlay4(lin wide.F32x4, c float32) wide.F32x4 {
	low := lin.MulScalar(2).MulScalar(c)
	high := one4.Sub(one4.Sub(lin).MulScalar(2).MulScalar(1 - c))
	return lin.Lt(wide.Splat4(0.5)).Select(low, high)
}

func (m *Monochrome) Execute(r, g, b float32) (float32, float32, float32) {
	e := m.exposure
	r, g, b = r*e, g*e, b*e
	lin := luma(m.luma, r, g, b)
	alpha := m.color[3]
	blend := func(c, target float32) float32 {
		return numeric.Clamp(c*(1-alpha)+overlay(lin, target)*alpha, 0, 1)
	}
	return blend(r, m.color[0]), blend(g, m.color[1]), blend(b, m.color[2])
}

func (m *Monochrome) ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4) {
	e := m.exposure
	r, g, b = r.MulScalar(e), g.MulScalar(e), b.MulScalar(e)
	lin := luma4(m.luma, r, g, b)
	alpha := m.color[3]
	blend := func(c wide.F32x4, target float32) wide.F32x4 {
		return c.MulScalar(1 - alpha).Add(overlay4(lin, target).MulScalar(alpha)).Clamp(0, 1)
	}
	return blend(r, m.color[0]), blend(g, m.color[1]), blend(b, m.color[2])
}
