package filter

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gogpu/pixkern/internal/cache"
	"github.com/gogpu/pixkern/internal/logging"
)

var (
	// ErrInvalidKernelSize is returned for even, zero or negative kernel sizes.
	ErrInvalidKernelSize = errors.New("filter: kernel size must be odd and positive")

	// ErrEmptyKernel is returned when a convolution receives no taps.
	ErrEmptyKernel = errors.New("filter: empty kernel")
)

// poissonAttempts bounds the redraws of a Poisson kernel whose taps sum to zero.
const poissonAttempts = 50

func checkSize(size int) error {
	if size < 1 || size%2 == 0 {
		return errors.Wrapf(ErrInvalidKernelSize, "size %d", size)
	}
	return nil
}

// normalize scales k so its taps sum to one. A zero sum leaves k unchanged
// and reports false.
func normalize(k []float32) bool {
	var sum float64
	for _, v := range k {
		sum += float64(v)
	}
	if sum == 0 {
		return false
	}
	inv := float32(1 / sum)
	for i := range k {
		k[i] *= inv
	}
	return true
}

// GaussianKernel generates a normalized 1D Gaussian kernel of the given odd
// size centered at size/2. A sigma of 0 or less derives sigma = (size-1)/6 so
// the kernel spans three standard deviations on each side.
func GaussianKernel(size int, sigma float32) ([]float32, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if size == 1 {
		return []float32{1}, nil
	}
	if sigma <= 0 {
		sigma = float32(size-1) / 6
	}

	half := size / 2
	twoSigmaSq := 2 * float64(sigma) * float64(sigma)
	kernel := make([]float32, size)
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = float32(math.Exp(-(x * x) / twoSigmaSq))
	}
	normalize(kernel)
	return kernel, nil
}

// SizeForSigma returns the smallest odd kernel size covering three standard
// deviations on each side of the center.
func SizeForSigma(sigma float32) int {
	if sigma <= 0 {
		return 1
	}
	return int(math.Ceil(float64(sigma)*3))*2 + 1
}

// TentKernel generates a normalized triangular kernel with taps
// 1 - |i-center|/center. Size 1 is the identity.
func TentKernel(size int) ([]float32, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if size == 1 {
		return []float32{1}, nil
	}

	center := size / 2
	kernel := make([]float32, size)
	for i := range kernel {
		d := i - center
		if d < 0 {
			d = -d
		}
		kernel[i] = max(0, 1-float32(d)/float32(center))
	}
	normalize(kernel)
	return kernel, nil
}

// TentKernel2D generates the size x size row-major tent matrix used by the
// two-dimensional tent blur. Cells farther than (size-padding)/2 from the
// center are zero, padding being a fifth of the size for sizes above 4; the
// rest grow linearly with the distance to the nearest border.
func TentKernel2D(size int) ([]float32, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	padding := 0
	if size > 4 {
		padding = int(float32(size) * 0.2)
	}
	maxDistance := float64((size - padding) / 2)
	peak := float32(size)
	half := float32(size) / 2

	kernel := make([]float32, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			dx, dy := j-size/2, i-size/2
			if math.Sqrt(float64(dx*dx+dy*dy)) > maxDistance {
				continue
			}
			edge := min(i, j, size-1-i, size-1-j)
			kernel[i*size+j] = peak * float32(edge) / half
		}
	}
	if !normalize(kernel) {
		// Size 1 has no interior cell.
		kernel[size*size/2] = 1
	}
	return kernel, nil
}

// BoxKernel generates a uniform kernel of the given odd size.
func BoxKernel(size int) ([]float32, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	kernel := make([]float32, size)
	v := 1 / float32(size)
	for i := range kernel {
		kernel[i] = v
	}
	return kernel, nil
}

// motionSteps is the number of samples taken per kernel cell along the line.
const motionSteps = 4

// MotionKernel generates the size x size row-major kernel of a line through
// the center at angle degrees, counterclockwise from the positive x axis with
// y pointing down. The line is sampled motionSteps times per cell and each
// sample lands on its nearest cell. Size 1 is the identity.
func MotionKernel(size int, angle float32) ([]float32, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if size == 1 {
		return []float32{1}, nil
	}

	center := float64(size / 2)
	sin, cos := math.Sincos(float64(angle) * math.Pi / 180)
	kernel := make([]float32, size*size)
	steps := size * motionSteps
	for s := 0; s <= steps; s++ {
		t := -center + 2*center*float64(s)/float64(steps)
		x := int(math.Round(center + t*cos))
		y := int(math.Round(center - t*sin))
		x = min(max(x, 0), size-1)
		y = min(max(y, 0), size-1)
		kernel[y*size+x]++
	}
	normalize(kernel)
	return kernel, nil
}

// PoissonKernel draws size taps from a Poisson distribution with mean size
// and normalizes them. A draw summing to zero is repeated up to 50 times;
// after that the box kernel is returned. The same seed yields the same kernel.
func PoissonKernel(size int, seed uint64) ([]float32, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	dist := distuv.Poisson{
		Lambda: float64(size),
		Src:    rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
	kernel := make([]float32, size)
	for attempt := 0; attempt <= poissonAttempts; attempt++ {
		for i := range kernel {
			kernel[i] = float32(dist.Rand())
		}
		if normalize(kernel) {
			if attempt > 0 {
				logging.L().Debug("pixkern: poisson kernel redrawn",
					"size", size, "attempts", attempt)
			}
			return kernel, nil
		}
	}

	logging.L().Warn("pixkern: poisson kernel sums to zero, using box kernel",
		"size", size, "attempts", poissonAttempts)
	return BoxKernel(size)
}

type kernelKind uint8

const (
	kindGaussian kernelKind = iota
	kindTent
	kindTent2D
	kindBox
	kindMotion
)

type kernelKey struct {
	kind  kernelKind
	size  int
	sigma float32
	angle float32
}

// kernels memoizes deterministic kernels. Callers never mutate the returned
// slices.
var kernels = cache.New[kernelKey, []float32](64)

// cached validates size, then returns the memoized kernel for key or builds it.
func cached(key kernelKey, build func() ([]float32, error)) ([]float32, error) {
	if err := checkSize(key.size); err != nil {
		return nil, err
	}
	var buildErr error
	k := kernels.GetOrCreate(key, func() []float32 {
		logging.L().Debug("pixkern: kernel cache miss",
			"kind", key.kind, "size", key.size, "sigma", key.sigma)
		k, err := build()
		buildErr = err
		return k
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return k, nil
}

// CachedGaussianKernel returns a shared GaussianKernel(size, sigma).
// The result must not be modified.
func CachedGaussianKernel(size int, sigma float32) ([]float32, error) {
	return cached(kernelKey{kind: kindGaussian, size: size, sigma: sigma}, func() ([]float32, error) {
		return GaussianKernel(size, sigma)
	})
}

// CachedTentKernel returns a shared TentKernel(size).
func CachedTentKernel(size int) ([]float32, error) {
	return cached(kernelKey{kind: kindTent, size: size}, func() ([]float32, error) {
		return TentKernel(size)
	})
}

// CachedTentKernel2D returns a shared TentKernel2D(size).
func CachedTentKernel2D(size int) ([]float32, error) {
	return cached(kernelKey{kind: kindTent2D, size: size}, func() ([]float32, error) {
		return TentKernel2D(size)
	})
}

// CachedBoxKernel returns a shared BoxKernel(size).
func CachedBoxKernel(size int) ([]float32, error) {
	return cached(kernelKey{kind: kindBox, size: size}, func() ([]float32, error) {
		return BoxKernel(size)
	})
}

// CachedMotionKernel returns a shared MotionKernel(size, angle).
func CachedMotionKernel(size int, angle float32) ([]float32, error) {
	return cached(kernelKey{kind: kindMotion, size: size, angle: angle}, func() ([]float32, error) {
		return MotionKernel(size, angle)
	})
}

// KernelCacheStats reports the kernel memoization counters.
func KernelCacheStats() cache.Stats {
	return kernels.Stats()
}
