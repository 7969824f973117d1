// Package numeric provides the scalar building blocks shared by the pixel
// kernels: clamping, fixed-point coefficient derivation and order statistics.
package numeric
