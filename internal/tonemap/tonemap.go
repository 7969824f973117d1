// Package tonemap compresses linear-light RGB into the displayable range.
//
// Every curve implements Mapper twice: Execute maps one pixel and
// ExecuteBatch maps four pixels held channel-planar in wide.F32x4 lanes.
// Both follow the same arithmetic so their results agree to rounding.
// Mappers are immutable after construction and safe for concurrent use.
package tonemap

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/wide"
)

// Mapper is a tone curve over linear-light RGB.
type Mapper interface {
	// Execute maps one pixel.
	Execute(r, g, b float32) (float32, float32, float32)

	// ExecuteBatch maps four pixels; lane i of r, g and b is pixel i.
	ExecuteBatch(r, g, b wide.F32x4) (wide.F32x4, wide.F32x4, wide.F32x4)
}

// ErrUnknownKind is returned for curve names ParseKind does not recognize.
var ErrUnknownKind = errors.New("tonemap: unknown curve")

// Kind identifies a tone curve.
type Kind uint8

const (
	KindExposure Kind = iota
	KindLogarithmic
	KindACESFilm
	KindACESHill
	KindHable
	KindHejlBurgess
	KindAldridge
	KindDrago
	KindMobius
	KindUchimura
	KindMonochrome
	KindWhiteBalance

	kindCount
)

var kindNames = [kindCount]string{
	KindExposure:     "exposure",
	KindLogarithmic:  "logarithmic",
	KindACESFilm:     "aces-film",
	KindACESHill:     "aces-hill",
	KindHable:        "hable",
	KindHejlBurgess:  "hejl-burgess",
	KindAldridge:     "aldridge",
	KindDrago:        "drago",
	KindMobius:       "mobius",
	KindUchimura:     "uchimura",
	KindMonochrome:   "monochrome",
	KindWhiteBalance: "white-balance",
}

// String returns the curve name accepted by ParseKind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds lists every curve in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind resolves a curve name, ignoring case. "aces" is accepted for
// aces-film.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "aces" {
		return KindACESFilm, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// Luma weights used by the luminance-driven curves.
var (
	LumaRec601 = [3]float32{0.299, 0.587, 0.114}
	LumaRec709 = [3]float32{0.2125, 0.7154, 0.0721}
)

// Params holds the parameters of every curve. Each curve reads only the
// fields it needs.
type Params struct {
	Exposure float32

	// Cutoff is the Aldridge toe width.
	Cutoff float32

	// Transition and Peak shape the Mobius shoulder.
	Transition float32
	Peak       float32

	// MaxLd is the Drago display luminance.
	MaxLd float32

	// Luma weights for Logarithmic, Drago and Monochrome. Zero selects the
	// curve default.
	Luma [3]float32

	// Color is the Monochrome target color and blend alpha. Zero selects
	// neutral gray at full strength.
	Color [4]float32

	// Temperature and Tint drive WhiteBalance. Temperature blends toward a
	// warm overlay in [0, 1]; Tint is in [-100, 100].
	Temperature float32
	Tint        float32
}

// DefaultParams returns the documented defaults: exposure 1, cutoff 0.025,
// transition 0.9, peak 1, maxLd 250, temperature 1 and tint 0.
func DefaultParams() Params {
	return Params{
		Exposure:    1,
		Cutoff:      0.025,
		Transition:  0.9,
		Peak:        1,
		MaxLd:       250,
		Temperature: 1,
	}
}

// New builds the curve identified by kind from p.
func New(kind Kind, p Params) (Mapper, error) {
	luma := func(def [3]float32) [3]float32 {
		if p.Luma == [3]float32{} {
			return def
		}
		return p.Luma
	}

	switch kind {
	case KindExposure:
		return NewExposure(p.Exposure), nil
	case KindLogarithmic:
		return NewLogarithmic(luma(LumaRec601), p.Exposure), nil
	case KindACESFilm:
		return NewACESFilm(p.Exposure), nil
	case KindACESHill:
		return NewACESHill(p.Exposure), nil
	case KindHable:
		return NewHable(p.Exposure), nil
	case KindHejlBurgess:
		return NewHejlBurgess(p.Exposure), nil
	case KindAldridge:
		return NewAldridge(p.Exposure, p.Cutoff), nil
	case KindDrago:
		return NewDrago(luma(LumaRec601), p.Exposure, p.MaxLd), nil
	case KindMobius:
		return NewMobius(p.Exposure, p.Transition, p.Peak), nil
	case KindUchimura:
		return NewUchimura(p.Exposure), nil
	case KindMonochrome:
		c := p.Color
		if c == [4]float32{} {
			c = [4]float32{0.5, 0.5, 0.5, 1}
		}
		return NewMonochrome(c, luma(LumaRec709), p.Exposure), nil
	case KindWhiteBalance:
		return NewWhiteBalance(p.Temperature, p.Tint), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "kind %d", kind)
	}
}
