package pixkern

import (
	"github.com/gogpu/pixkern/internal/color"
	"github.com/gogpu/pixkern/internal/filter"
	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/tonemap"
)

// Errors returned by pixkern. Returned errors may wrap these with context;
// test for them with errors.Is.
var (
	ErrInvalidDimensions  = image.ErrInvalidDimensions
	ErrInvalidLayout      = image.ErrInvalidLayout
	ErrInvalidStride      = image.ErrInvalidStride
	ErrDataTooSmall       = image.ErrDataTooSmall
	ErrLayoutMismatch     = image.ErrLayoutMismatch
	ErrInvalidSubsampling = image.ErrInvalidSubsampling
	ErrPlaneTooSmall      = image.ErrPlaneTooSmall
	ErrEmptyPath          = image.ErrEmptyPath

	ErrInvalidKernelSize = filter.ErrInvalidKernelSize
	ErrEmptyKernel       = filter.ErrEmptyKernel
	ErrInvalidRadius     = filter.ErrInvalidRadius
	ErrInvalidSigma      = filter.ErrInvalidSigma

	ErrInvalidPrimaries = color.ErrInvalidPrimaries
	ErrSingularGamut    = color.ErrSingularGamut
	ErrSizeMismatch     = color.ErrSizeMismatch

	ErrUnknownToneMapper = tonemap.ErrUnknownKind
)
