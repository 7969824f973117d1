package pixkern

import "github.com/gogpu/pixkern/internal/filter"

// Kernel size and radius limits.
const (
	MaxStackRadius  = filter.MaxStackRadius
	MaxMedianRadius = filter.MaxMedianRadius
)

// Convolve applies a separable convolution in place: a horizontal pass with
// horizontal followed by a vertical pass with vertical. Kernels are centered
// at len/2 and edges are clamped. RGBA8 results are rounded to nearest and
// clamped; RGBAF16 results are stored unclamped.
func Convolve(b *Bitmap, horizontal, vertical []float32, opts ...Option) error {
	return filter.Convolve1D(b.buf, horizontal, vertical, buildOptions(opts).executor())
}

// Convolve2D applies a square size x size kernel (row-major) to an RGBA8
// bitmap in place.
func Convolve2D(b *Bitmap, kernel []float32, size int, opts ...Option) error {
	return filter.Convolve2D(b.buf, kernel, size, buildOptions(opts).executor())
}

// GaussianBlur blurs b with a separable Gaussian kernel of odd size. A sigma
// of zero or less derives sigma from the size so the kernel spans three
// standard deviations on each side.
func GaussianBlur(b *Bitmap, size int, sigma float32, opts ...Option) error {
	return filter.GaussianBlur(b.buf, size, sigma, buildOptions(opts).executor())
}

// TentBlur blurs b with a separable triangular kernel of odd size.
func TentBlur(b *Bitmap, size int, opts ...Option) error {
	return filter.TentBlur(b.buf, size, buildOptions(opts).executor())
}

// TentBlur2D blurs b with the square tent kernel. It is slower than TentBlur
// and kept for output compatibility with the square-kernel formulation.
func TentBlur2D(b *Bitmap, size int, opts ...Option) error {
	return filter.TentBlur2D(b.buf, size, buildOptions(opts).executor())
}

// BoxBlur blurs b with a separable uniform kernel of odd size.
func BoxBlur(b *Bitmap, size int, opts ...Option) error {
	return filter.BoxBlur(b.buf, size, buildOptions(opts).executor())
}

// PoissonBlur blurs b with a separable kernel drawn from a Poisson
// distribution with lambda = size. The same seed gives the same kernel.
func PoissonBlur(b *Bitmap, size int, seed uint64, opts ...Option) error {
	return filter.PoissonBlur(b.buf, size, seed, buildOptions(opts).executor())
}

// StackBlur approximates a Gaussian blur of the given radius in [0, 254].
// Only the color channels are blurred; alpha is left unchanged.
func StackBlur(b *Bitmap, radius int, opts ...Option) error {
	return filter.StackBlur(b.buf, radius, buildOptions(opts).executor())
}

// StackBlurXY is StackBlur with separate horizontal and vertical radii. A
// zero radius skips that direction.
func StackBlurXY(b *Bitmap, hRadius, vRadius int, opts ...Option) error {
	return filter.StackBlurXY(b.buf, hRadius, vRadius, buildOptions(opts).executor())
}

// MedianBlur replaces each color channel with the median of its
// (2*radius+1)^2 neighborhood. Alpha is left unchanged.
func MedianBlur(b *Bitmap, radius int, opts ...Option) error {
	return filter.MedianBlur(b.buf, radius, buildOptions(opts).executor())
}

// BilateralBlur smooths b while preserving edges. Neighbors in the odd
// size x size window are weighted by their distance (spatialSigma, pixels)
// and by their luma difference to the center (rangeSigma, 0..255 units).
// Alpha is left unchanged.
func BilateralBlur(b *Bitmap, size int, spatialSigma, rangeSigma float32, opts ...Option) error {
	return filter.BilateralBlur(b.buf, size, spatialSigma, rangeSigma, buildOptions(opts).executor())
}

// MotionBlur smears b along a line of odd size taps at angle degrees,
// counterclockwise from the x axis.
func MotionBlur(b *Bitmap, size int, angle float32, opts ...Option) error {
	return filter.MotionBlur(b.buf, size, angle, buildOptions(opts).executor())
}

// GaussianKernel returns a normalized Gaussian kernel of odd size.
func GaussianKernel(size int, sigma float32) ([]float32, error) {
	return filter.GaussianKernel(size, sigma)
}

// TentKernel returns a normalized triangular kernel of odd size.
func TentKernel(size int) ([]float32, error) {
	return filter.TentKernel(size)
}

// BoxKernel returns a uniform kernel of odd size.
func BoxKernel(size int) ([]float32, error) {
	return filter.BoxKernel(size)
}

// MotionKernel returns the size x size row-major line kernel used by
// MotionBlur.
func MotionKernel(size int, angle float32) ([]float32, error) {
	return filter.MotionKernel(size, angle)
}

// PoissonKernel returns a normalized kernel sampled from a Poisson
// distribution with lambda = size.
func PoissonKernel(size int, seed uint64) ([]float32, error) {
	return filter.PoissonKernel(size, seed)
}

// SizeForSigma returns the odd kernel size covering three standard
// deviations on each side of the center.
func SizeForSigma(sigma float32) int {
	return filter.SizeForSigma(sigma)
}
