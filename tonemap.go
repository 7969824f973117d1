package pixkern

import "github.com/gogpu/pixkern/internal/tonemap"

// ToneMapper maps linear-light RGB into the displayable range, one pixel at
// a time or four at a time.
type ToneMapper = tonemap.Mapper

// ToneCurve identifies one of the built-in tone curves.
type ToneCurve = tonemap.Kind

// ToneParams holds the parameters of the built-in curves.
type ToneParams = tonemap.Params

// Built-in tone curves.
const (
	CurveExposure     = tonemap.KindExposure
	CurveLogarithmic  = tonemap.KindLogarithmic
	CurveACESFilm     = tonemap.KindACESFilm
	CurveACESHill     = tonemap.KindACESHill
	CurveHable        = tonemap.KindHable
	CurveHejlBurgess  = tonemap.KindHejlBurgess
	CurveAldridge     = tonemap.KindAldridge
	CurveDrago        = tonemap.KindDrago
	CurveMobius       = tonemap.KindMobius
	CurveUchimura     = tonemap.KindUchimura
	CurveMonochrome   = tonemap.KindMonochrome
	CurveWhiteBalance = tonemap.KindWhiteBalance
)

// ToneCurves lists every built-in curve.
func ToneCurves() []ToneCurve { return tonemap.Kinds() }

// ParseToneCurve resolves a curve name such as "aces-film" or "hable".
func ParseToneCurve(name string) (ToneCurve, error) { return tonemap.ParseKind(name) }

// DefaultToneParams returns exposure 1, Aldridge cutoff 0.025, Mobius
// transition 0.9 and peak 1, Drago display luminance 250, and white balance
// temperature 1 with no tint.
func DefaultToneParams() ToneParams { return tonemap.DefaultParams() }

// NewToneMapper builds a built-in curve.
func NewToneMapper(curve ToneCurve, p ToneParams) (ToneMapper, error) {
	return tonemap.New(curve, p)
}

// ToneMap decodes every pixel of an RGBA8 bitmap from sRGB to linear light,
// applies m, clamps to [0, 1] and encodes back to sRGB. Alpha is unchanged.
func ToneMap(b *Bitmap, m ToneMapper, opts ...Option) error {
	return tonemap.Apply(b.buf, m, buildOptions(opts).executor())
}
