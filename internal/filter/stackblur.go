package filter

import (
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/parallel"
)

// MaxStackRadius is the largest radius StackBlur accepts.
const MaxStackRadius = 254

// ErrInvalidRadius is returned for blur radii outside the supported range.
var ErrInvalidRadius = errors.New("filter: radius out of range")

// stackMul and stackShift replace the division by the window weight with a
// multiply and a shift: sum/weight ~= sum*stackMul[r] >> stackShift[r].
var stackMul = [255]int32{
	512, 512, 456, 512, 328, 456, 335, 512, 405, 328, 271, 456, 388, 335, 292, 512,
	454, 405, 364, 328, 298, 271, 496, 456, 420, 388, 360, 335, 312, 292, 273, 512,
	482, 454, 428, 405, 383, 364, 345, 328, 312, 298, 284, 271, 259, 496, 475, 456,
	437, 420, 404, 388, 374, 360, 347, 335, 323, 312, 302, 292, 282, 273, 265, 512,
	497, 482, 468, 454, 441, 428, 417, 405, 394, 383, 373, 364, 354, 345, 337, 328,
	320, 312, 305, 298, 291, 284, 278, 271, 265, 259, 507, 496, 485, 475, 465, 456,
	446, 437, 428, 420, 412, 404, 396, 388, 381, 374, 367, 360, 354, 347, 341, 335,
	329, 323, 318, 312, 307, 302, 297, 292, 287, 282, 278, 273, 269, 265, 261, 512,
	505, 497, 489, 482, 475, 468, 461, 454, 447, 441, 435, 428, 422, 417, 411, 405,
	399, 394, 389, 383, 378, 373, 368, 364, 359, 354, 350, 345, 341, 337, 332, 328,
	324, 320, 316, 312, 309, 305, 301, 298, 294, 291, 287, 284, 281, 278, 274, 271,
	268, 265, 262, 259, 257, 507, 501, 496, 491, 485, 480, 475, 470, 465, 460, 456,
	451, 446, 442, 437, 433, 428, 424, 420, 416, 412, 408, 404, 400, 396, 392, 388,
	385, 381, 377, 374, 370, 367, 363, 360, 357, 354, 350, 347, 344, 341, 338, 335,
	332, 329, 326, 323, 320, 318, 315, 312, 310, 307, 304, 302, 299, 297, 294, 292,
	289, 287, 285, 282, 280, 278, 275, 273, 271, 269, 267, 265, 263, 261, 259,
}

var stackShift = [255]uint8{
	9, 11, 12, 13, 13, 14, 14, 15, 15, 15, 15, 16, 16, 16, 16, 17,
	17, 17, 17, 17, 17, 17, 18, 18, 18, 18, 18, 18, 18, 18, 18, 19,
	19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 20, 20, 20,
	20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 21,
	21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21,
	21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 22, 22, 22, 22, 22, 22,
	22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22,
	22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
}

// rgb is one stack slot.
type rgb struct{ r, g, b int64 }

// stackState carries the running sums of one row or column. Sums are int64
// so sum*mul fits on 32-bit targets at radius 254.
type stackState struct {
	ring             []rgb
	sumR, sumG, sumB int64
	inR, inG, inB    int64
	outR, outG, outB int64
	mul              int64
	shift            uint
	radius, div      int
}

func newStackState(radius int) *stackState {
	return &stackState{
		ring:   make([]rgb, 2*radius+1),
		radius: radius,
		mul:    int64(stackMul[radius]),
		shift:  uint(stackShift[radius]),
		div:    2*radius + 1,
	}
}

func loadRGB(p []byte) rgb {
	return rgb{int64(p[0]), int64(p[1]), int64(p[2])}
}

// run blurs n pixels of one line. at returns the byte offset of pixel i in
// pix; reads only reach pixels ahead of the one being written, so the line is
// blurred in place.
func (s *stackState) run(pix []byte, n int, at func(i int) int) {
	r := s.radius
	rp1 := r + 1
	sumFactor := int64(rp1 * (rp1 + 1) / 2)
	last := n - 1

	first := loadRGB(pix[at(0):])
	s.inR, s.inG, s.inB = 0, 0, 0
	s.outR, s.outG, s.outB = int64(rp1)*first.r, int64(rp1)*first.g, int64(rp1)*first.b
	s.sumR, s.sumG, s.sumB = sumFactor*first.r, sumFactor*first.g, sumFactor*first.b

	for i := 0; i < rp1; i++ {
		s.ring[i] = first
	}
	for i := 1; i < rp1; i++ {
		c := loadRGB(pix[at(min(i, last)):])
		s.ring[i+r] = c
		w := int64(rp1 - i)
		s.sumR += c.r * w
		s.sumG += c.g * w
		s.sumB += c.b * w
		s.inR += c.r
		s.inG += c.g
		s.inB += c.b
	}

	stackIn, stackOut := 0, rp1%s.div
	for x := 0; x < n; x++ {
		d := pix[at(x):]
		d[0] = byte((s.sumR * s.mul) >> s.shift)
		d[1] = byte((s.sumG * s.mul) >> s.shift)
		d[2] = byte((s.sumB * s.mul) >> s.shift)

		s.sumR -= s.outR
		s.sumG -= s.outG
		s.sumB -= s.outB

		in := &s.ring[stackIn]
		s.outR -= in.r
		s.outG -= in.g
		s.outB -= in.b

		*in = loadRGB(pix[at(min(x+rp1, last)):])
		s.inR += in.r
		s.inG += in.g
		s.inB += in.b

		s.sumR += s.inR
		s.sumG += s.inG
		s.sumB += s.inB

		stackIn++
		if stackIn == s.div {
			stackIn = 0
		}

		out := s.ring[stackOut]
		s.outR += out.r
		s.outG += out.g
		s.outB += out.b
		s.inR -= out.r
		s.inG -= out.g
		s.inB -= out.b

		stackOut++
		if stackOut == s.div {
			stackOut = 0
		}
	}
}

// StackBlur blurs the RGB channels of an RGBA8 buffer in place with a
// sliding stack of 2*radius+1 running sums, first along rows and then along
// columns of the row-blurred image. Alpha is left untouched and radius 0 is
// the identity. Radii outside [0, MaxStackRadius] return ErrInvalidRadius.
func StackBlur(buf *image.Buffer, radius int, ex *parallel.Executor) error {
	return StackBlurXY(buf, radius, radius, ex)
}

// StackBlurXY is StackBlur with independent horizontal and vertical radii.
// A zero radius skips that pass.
func StackBlurXY(buf *image.Buffer, hRadius, vRadius int, ex *parallel.Executor) error {
	for _, radius := range [2]int{hRadius, vRadius} {
		if radius < 0 || radius > MaxStackRadius {
			return errors.Wrapf(ErrInvalidRadius, "stack blur radius %d", radius)
		}
	}
	if buf.Layout() != image.LayoutRGBA8 {
		return errors.Wrapf(image.ErrLayoutMismatch, "stack blur %s", buf.Layout())
	}

	width, height, stride := buf.Width(), buf.Height(), buf.Stride()
	pix := buf.Data()

	if hRadius > 0 {
		ex.Rows(width, height, func(start, end int) {
			s := newStackState(hRadius)
			for y := start; y < end; y++ {
				base := y * stride
				s.run(pix, width, func(i int) int { return base + i*4 })
			}
		})
	}

	// Columns are independent, so the vertical pass partitions x instead of y.
	if vRadius > 0 {
		ex.Rows(height, width, func(start, end int) {
			s := newStackState(vRadius)
			for x := start; x < end; x++ {
				col := x * 4
				s.run(pix, height, func(i int) int { return i*stride + col })
			}
		})
	}
	return nil
}
