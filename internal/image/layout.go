// Package image describes the pixel buffers the kernels operate on.
//
// A Buffer is a caller-owned byte region of Height rows, each Stride bytes
// long, holding Width interleaved RGBA pixels. A Planar value describes
// Y, U and V planes with independent strides for the YUV converters.
package image

// Layout is the channel layout of a Buffer.
type Layout uint8

const (
	// LayoutRGBA8 is 4x8-bit interleaved RGBA (4 bytes per pixel).
	LayoutRGBA8 Layout = iota

	// LayoutRGBAF16 is 4x16-bit IEEE 754 half floats, little endian
	// (8 bytes per pixel). Values are carried in extended range.
	LayoutRGBAF16

	layoutCount
)

// LayoutInfo contains metadata about a layout.
type LayoutInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of interleaved channels.
	Channels int

	// BitsPerChannel is the storage width of one channel.
	BitsPerChannel int

	// Float reports whether channels hold floating point values.
	Float bool
}

var layoutInfoTable = [layoutCount]LayoutInfo{
	LayoutRGBA8: {
		BytesPerPixel:  4,
		Channels:       4,
		BitsPerChannel: 8,
	},
	LayoutRGBAF16: {
		BytesPerPixel:  8,
		Channels:       4,
		BitsPerChannel: 16,
		Float:          true,
	},
}

// Info returns the LayoutInfo for this layout.
// Returns an empty LayoutInfo for an invalid layout.
func (l Layout) Info() LayoutInfo {
	if l >= layoutCount {
		return LayoutInfo{}
	}
	return layoutInfoTable[l]
}

// IsValid reports whether the layout is known.
func (l Layout) IsValid() bool {
	return l < layoutCount
}

// BytesPerPixel returns the number of bytes per pixel.
func (l Layout) BytesPerPixel() int {
	return l.Info().BytesPerPixel
}

// RowBytes returns the minimum number of bytes for a row of width pixels.
func (l Layout) RowBytes(width int) int {
	return width * l.BytesPerPixel()
}

// String returns a human-readable name.
func (l Layout) String() string {
	switch l {
	case LayoutRGBA8:
		return "RGBA8"
	case LayoutRGBAF16:
		return "RGBAF16"
	default:
		return "Unknown"
	}
}
