// Package filter implements the blur kernels of pixkern.
//
// Provided filters:
//   - Separable convolution (Convolve1D) over RGBA8 and RGBAF16 buffers
//   - Square 2D convolution (Convolve2D) over RGBA8 buffers
//   - Gaussian, tent, box and Poisson blurs built on the two convolutions
//   - Motion blur along an angled line kernel
//   - Stack blur, O(width*height) regardless of radius, with independent
//     horizontal and vertical radii
//   - Median and edge-preserving bilateral blurs over a square window
//
// Every filter works in place on an image.Buffer, clamps samples at the
// image edges and splits rows across workers through a parallel.Executor.
// Passes are separated by a barrier so a pass never reads rows another
// worker is still writing.
//
// Deterministic kernels are memoized in an LRU keyed by kind, size, sigma
// and angle.
package filter
