package filter

import (
	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/parallel"
)

// GaussianBlur blurs buf with a size-tap Gaussian in both directions.
// A sigma of 0 or less is derived from size.
func GaussianBlur(buf *image.Buffer, size int, sigma float32, ex *parallel.Executor) error {
	kernel, err := CachedGaussianKernel(size, sigma)
	if err != nil {
		return err
	}
	return Convolve1D(buf, kernel, kernel, ex)
}

// TentBlur blurs buf with the separable tent kernel. This is the default
// tent path.
func TentBlur(buf *image.Buffer, size int, ex *parallel.Executor) error {
	kernel, err := CachedTentKernel(size)
	if err != nil {
		return err
	}
	return Convolve1D(buf, kernel, kernel, ex)
}

// TentBlur2D blurs an RGBA8 buffer with the size x size tent matrix.
// It is slower than TentBlur and kept for output compatibility.
func TentBlur2D(buf *image.Buffer, size int, ex *parallel.Executor) error {
	kernel, err := CachedTentKernel2D(size)
	if err != nil {
		return err
	}
	return Convolve2D(buf, kernel, size, ex)
}

// BoxBlur blurs buf with a uniform size-tap kernel in both directions.
func BoxBlur(buf *image.Buffer, size int, ex *parallel.Executor) error {
	kernel, err := CachedBoxKernel(size)
	if err != nil {
		return err
	}
	return Convolve1D(buf, kernel, kernel, ex)
}

// MotionBlur smears an RGBA8 buffer along a line of size taps at angle
// degrees.
func MotionBlur(buf *image.Buffer, size int, angle float32, ex *parallel.Executor) error {
	kernel, err := CachedMotionKernel(size, angle)
	if err != nil {
		return err
	}
	return Convolve2D(buf, kernel, size, ex)
}

// PoissonBlur blurs buf with a Poisson-sampled kernel drawn from seed.
func PoissonBlur(buf *image.Buffer, size int, seed uint64, ex *parallel.Executor) error {
	kernel, err := PoissonKernel(size, seed)
	if err != nil {
		return err
	}
	return Convolve1D(buf, kernel, kernel, ex)
}
