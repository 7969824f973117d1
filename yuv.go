package pixkern

import (
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/color"
	"github.com/gogpu/pixkern/internal/image"
)

// Planar describes a YUV frame with independent plane strides.
type Planar = image.Planar

// Subsampling is the chroma layout of a Planar frame.
type Subsampling = image.Subsampling

// Chroma layouts.
const (
	Sub444  = image.Sub444
	Sub422  = image.Sub422
	Sub420  = image.Sub420
	SubNV21 = image.SubNV21
)

// YUVMatrix selects the luma primaries Kr and Kb of a YUV encoding.
type YUVMatrix = color.Matrix

// Standard YUV matrices.
var (
	BT601  = color.BT601
	BT709  = color.BT709
	BT2020 = color.BT2020
)

// YUVRange is the quantization range of a YUV encoding.
type YUVRange = color.Range

// Quantization ranges.
const (
	RangeLimited = color.RangeLimited
	RangeFull    = color.RangeFull
)

// NewPlanar allocates a tightly packed frame.
func NewPlanar(width, height int, sub Subsampling) (*Planar, error) {
	return image.NewPlanar(width, height, sub)
}

// PlanarFromBytes splits a raw frame stored plane after plane (Y, U, V, or
// Y then interleaved VU for NV21) without copying.
func PlanarFromBytes(data []byte, width, height int, sub Subsampling) (*Planar, error) {
	return image.PlanarFromBytes(data, width, height, sub)
}

// YUVToRGBA converts src into dst with 6-bit fixed-point arithmetic. dst
// must be an RGBA8 bitmap of the same size; alpha is set to 255.
func YUVToRGBA(dst *Bitmap, src *Planar, m YUVMatrix, r YUVRange, opts ...Option) error {
	return errors.WithMessage(
		color.YUVToRGBA(dst.buf, src, m, r, buildOptions(opts).executor()),
		"pixkern: yuv to rgba")
}

// YUV420ToRGBAPrecise converts a 4:2:0 or NV21 frame with float arithmetic
// and bilinear chroma reconstruction.
func YUV420ToRGBAPrecise(dst *Bitmap, src *Planar, m YUVMatrix, r YUVRange, opts ...Option) error {
	return errors.WithMessage(
		color.YUV420ToRGBAPrecise(dst.buf, src, m, r, buildOptions(opts).executor()),
		"pixkern: precise yuv to rgba")
}
