// Package wide provides SIMD-friendly wide types for batch pixel processing.
//
// The types are fixed-size float32 arrays operated on by simple loops, which
// the Go compiler can lower to vector instructions on supported
// architectures (SSE, AVX, NEON).
//
// # Wide Types
//
// F32x4: 4 float32 lanes. One lane per RGBA channel when convolving, or one
// lane per pixel when tone mapping a batch of four pixels.
//
// F32x8: 8 float32 lanes. Holds two RGBA pixels so 8-lane hosts accumulate
// two output pixels per inner-loop step.
//
// # Dispatch
//
// Lanes reports the float32 vector width selected for the running CPU
// (8 on AVX2 capable x86, 4 elsewhere). Kernels pick their inner loop from
// it; every loop variant produces identical results.
package wide
