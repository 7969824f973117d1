package color

import (
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/numeric"
	"github.com/gogpu/pixkern/internal/parallel"
)

// YUVToRGBA converts src into the RGBA8 buffer dst using the integer
// path. All subsamplings are supported; chroma of subsampled layouts is
// replicated over its luma block. Alpha is set to 255.
func YUVToRGBA(dst *image.Buffer, src *image.Planar, m Matrix, r Range, ex *parallel.Executor) error {
	if err := checkYUV(dst, src); err != nil {
		return err
	}
	c, err := NewCoefficients(m, r)
	if err != nil {
		return err
	}
	fixed := c.Fixed()

	shiftX, shiftY := chromaShift(src.Subsampling)
	nv21 := src.Subsampling == image.SubNV21

	ex.Rows(src.Width, src.Height, func(start, end int) {
		for y := start; y < end; y++ {
			yRow := src.Y[y*src.YStride:]
			cy := y >> shiftY
			uRow := src.U[cy*src.UStride:]
			var vRow []byte
			if !nv21 {
				vRow = src.V[cy*src.VStride:]
			}
			out := dst.Row(y)

			for x := 0; x < src.Width; x++ {
				cx := x >> shiftX
				var u, v uint8
				if nv21 {
					v, u = uRow[2*cx], uRow[2*cx+1]
				} else {
					u, v = uRow[cx], vRow[cx]
				}
				p := out[x*4 : x*4+4 : x*4+4]
				p[0], p[1], p[2] = fixed.Pixel(yRow[x], u, v)
				p[3] = 255
			}
		}
	})
	return nil
}

// YUV420ToRGBAPrecise converts a 4:2:0 or NV21 image with float arithmetic,
// reconstructing each pixel's chroma bilinearly from the four nearest
// chroma samples (weights 9/16, 3/16, 3/16, 1/16 for centered siting).
func YUV420ToRGBAPrecise(dst *image.Buffer, src *image.Planar, m Matrix, r Range, ex *parallel.Executor) error {
	if err := checkYUV(dst, src); err != nil {
		return err
	}
	if src.Subsampling != image.Sub420 && src.Subsampling != image.SubNV21 {
		return errors.Wrapf(image.ErrInvalidSubsampling, "precise path needs 420, got %s", src.Subsampling)
	}
	c, err := NewCoefficients(m, r)
	if err != nil {
		return err
	}

	cw, ch := src.Subsampling.ChromaSize(src.Width, src.Height)
	nv21 := src.Subsampling == image.SubNV21

	chroma := func(cx, cy int) (u, v float32) {
		if nv21 {
			row := src.U[cy*src.UStride:]
			return float32(row[2*cx+1]), float32(row[2*cx])
		}
		return float32(src.U[cy*src.UStride+cx]), float32(src.V[cy*src.VStride+cx])
	}

	ex.Rows(src.Width, src.Height, func(start, end int) {
		for y := start; y < end; y++ {
			yRow := src.Y[y*src.YStride:]
			cy := y >> 1
			ny := numeric.ClampInt(cy+neighbour(y), 0, ch-1)
			out := dst.Row(y)

			for x := 0; x < src.Width; x++ {
				cx := x >> 1
				nx := numeric.ClampInt(cx+neighbour(x), 0, cw-1)

				u00, v00 := chroma(cx, cy)
				u10, v10 := chroma(nx, cy)
				u01, v01 := chroma(cx, ny)
				u11, v11 := chroma(nx, ny)

				u := (9*u00 + 3*u10 + 3*u01 + u11) * (1.0 / 16)
				v := (9*v00 + 3*v10 + 3*v01 + v11) * (1.0 / 16)

				p := out[x*4 : x*4+4 : x*4+4]
				p[0], p[1], p[2] = c.PixelF(yRow[x], u, v)
				p[3] = 255
			}
		}
	})
	return nil
}

// neighbour returns the direction of the second-nearest chroma sample for
// a luma coordinate: even positions sit on the left/top half of their block.
func neighbour(i int) int {
	if i&1 == 0 {
		return -1
	}
	return 1
}

func chromaShift(s image.Subsampling) (int, int) {
	switch s {
	case image.Sub422:
		return 1, 0
	case image.Sub420, image.SubNV21:
		return 1, 1
	default:
		return 0, 0
	}
}

func checkYUV(dst *image.Buffer, src *image.Planar) error {
	if err := src.Validate(); err != nil {
		return err
	}
	if dst.Layout() != image.LayoutRGBA8 {
		return errors.Wrapf(image.ErrLayoutMismatch, "yuv to %s", dst.Layout())
	}
	if dst.Width() != src.Width || dst.Height() != src.Height {
		return errors.Wrapf(ErrSizeMismatch, "%dx%d yuv into %dx%d rgba",
			src.Width, src.Height, dst.Width(), dst.Height())
	}
	return nil
}
