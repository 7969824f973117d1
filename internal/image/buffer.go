package image

import (
	stdimage "image"
	"image/color"

	"github.com/pkg/errors"
)

// Common errors for buffer construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidLayout is returned when the layout is not recognized.
	ErrInvalidLayout = errors.New("image: invalid layout")

	// ErrInvalidStride is returned when stride is less than the row size.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when data is smaller than stride*height.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrLayoutMismatch is returned when a kernel receives a layout it does
	// not support.
	ErrLayoutMismatch = errors.New("image: unsupported layout for operation")
)

// Buffer is a stride-addressed pixel buffer.
//
// A Buffer created with FromRaw borrows the caller's memory; kernels write
// results back into it in place. All row access goes through Stride so
// padded rows are supported.
//
// Thread safety: concurrent reads are safe. Kernels partition writes into
// disjoint row ranges.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	layout Layout
}

// NewBuffer allocates a zeroed buffer with a tight stride.
func NewBuffer(width, height int, layout Layout) (*Buffer, error) {
	if !layout.IsValid() {
		return nil, ErrInvalidLayout
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := layout.RowBytes(width)
	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		layout: layout,
	}, nil
}

// FromRaw wraps existing data without copying.
// The caller must keep data valid for the lifetime of the Buffer.
// Stride must be at least layout.RowBytes(width).
func FromRaw(data []byte, width, height int, layout Layout, stride int) (*Buffer, error) {
	if !layout.IsValid() {
		return nil, ErrInvalidLayout
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < layout.RowBytes(width) {
		return nil, errors.Wrapf(ErrInvalidStride, "stride %d, width %d %s", stride, width, layout)
	}
	required := stride * height
	if len(data) < required {
		return nil, errors.Wrapf(ErrDataTooSmall, "have %d bytes, need %d", len(data), required)
	}
	return &Buffer{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		layout: layout,
	}, nil
}

// Clone creates a deep copy of the buffer with the same stride.
func (b *Buffer) Clone() *Buffer {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &Buffer{
		data:   data,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		layout: b.layout,
	}
}

// Width returns the width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the number of bytes between row starts.
func (b *Buffer) Stride() int { return b.stride }

// Layout returns the channel layout.
func (b *Buffer) Layout() Layout { return b.layout }

// Data returns the underlying bytes.
func (b *Buffer) Data() []byte { return b.data }

// Row returns the pixel bytes of row y without stride padding.
func (b *Buffer) Row(y int) []byte {
	start := y * b.stride
	return b.data[start : start+b.layout.RowBytes(b.width)]
}

// RGBA returns the pixel at (x, y) of an RGBA8 buffer.
func (b *Buffer) RGBA(x, y int) (r, g, bl, a uint8) {
	i := y*b.stride + x*4
	p := b.data[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// SetRGBA writes the pixel at (x, y) of an RGBA8 buffer.
func (b *Buffer) SetRGBA(x, y int, r, g, bl, a uint8) {
	i := y*b.stride + x*4
	p := b.data[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = r, g, bl, a
}

// Fill sets every RGBA8 pixel to the given color.
func (b *Buffer) Fill(r, g, bl, a uint8) {
	for y := range b.height {
		row := b.Row(y)
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = r, g, bl, a
		}
	}
}

// Equal reports whether both buffers hold the same pixels, ignoring
// stride padding.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height || b.layout != o.layout {
		return false
	}
	for y := range b.height {
		if string(b.Row(y)) != string(o.Row(y)) {
			return false
		}
	}
	return true
}

// FromStdImage copies img into a new RGBA8 buffer (straight alpha).
func FromStdImage(img stdimage.Image) *Buffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	buf := &Buffer{
		data:   make([]byte, width*height*4),
		width:  width,
		height: height,
		stride: width * 4,
		layout: LayoutRGBA8,
	}

	if nrgba, ok := img.(*stdimage.NRGBA); ok {
		for y := range height {
			src := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(buf.Row(y), src[:width*4])
		}
		return buf
	}

	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buf.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return buf
}

// ToStdImage copies an RGBA8 buffer into a new *image.NRGBA.
func (b *Buffer) ToStdImage() *stdimage.NRGBA {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		copy(img.Pix[y*img.Stride:], b.Row(y))
	}
	return img
}
