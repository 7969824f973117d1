// Package pixkern provides CPU image-processing kernels for 8-bit and
// half-float RGBA bitmaps.
//
// # Overview
//
// The kernels cover separable and square convolution with Gaussian, tent,
// box, motion and Poisson kernels, stack blur with per-axis radii, median
// and bilateral blurs, eleven tone-mapping curves plus white balance, YUV
// to RGBA conversion for 4:4:4, 4:2:2, 4:2:0 and NV21 frames, and
// conversion between sRGB bitmaps and CIE XYZ samples.
//
// # Quick Start
//
//	import "github.com/gogpu/pixkern"
//
//	bm, err := pixkern.Load("photo.jpg")
//	if err != nil {
//	    return err
//	}
//	if err := pixkern.GaussianBlur(bm, 9, 0); err != nil {
//	    return err
//	}
//	return bm.Save("photo-blur.png")
//
// # Bitmaps
//
// A Bitmap is a stride-addressed pixel buffer. FromRaw wraps caller-owned
// memory without copying; kernels write their results back in place.
// Layouts are LayoutRGBA8 (4 bytes per pixel) and LayoutRGBAF16 (8 bytes per
// pixel, little-endian IEEE 754 binary16). Convolve and the separable blurs
// (Gaussian, tent, box, Poisson) accept both; every other kernel requires
// LayoutRGBA8.
//
// # Concurrency
//
// Each kernel partitions rows into contiguous ranges and processes them in
// parallel. The worker count is min(workers, width*height/65536) clamped to
// [1, 12]. Separable passes are separated by a barrier: the second pass
// starts only after every range of the first pass has finished.
// WithWorkers overrides the hardware concurrency hint and WithPool runs the
// ranges on a long-lived Pool instead of fresh goroutines.
//
// Distinct bitmaps may be processed concurrently. A single bitmap must not
// be shared between concurrent kernel calls.
//
// # Logging
//
// pixkern is silent by default. SetLogger installs a *slog.Logger that
// receives debug records for row passes and kernel cache misses.
package pixkern
