package pixkern

import (
	stdimage "image"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/gogpu/pixkern/internal/half"
	"github.com/gogpu/pixkern/internal/image"
	"github.com/gogpu/pixkern/internal/numeric"
)

// Layout is the channel layout of a Bitmap.
type Layout = image.Layout

// Supported layouts.
const (
	LayoutRGBA8   = image.LayoutRGBA8
	LayoutRGBAF16 = image.LayoutRGBAF16
)

// Format is an encoded image format for Encode.
type Format = imaging.Format

// Encoded formats.
const (
	PNG  = imaging.PNG
	JPEG = imaging.JPEG
	GIF  = imaging.GIF
	TIFF = imaging.TIFF
	BMP  = imaging.BMP
)

// Bitmap is a stride-addressed RGBA pixel buffer.
//
// Kernels modify a Bitmap in place. A Bitmap must not be passed to two
// kernel calls at the same time.
type Bitmap struct {
	buf *image.Buffer
}

// NewBitmap allocates a zeroed bitmap with a tight stride.
func NewBitmap(width, height int, layout Layout) (*Bitmap, error) {
	buf, err := image.NewBuffer(width, height, layout)
	if err != nil {
		return nil, errors.Wrapf(err, "pixkern: new %dx%d %s bitmap", width, height, layout)
	}
	return &Bitmap{buf: buf}, nil
}

// FromRaw wraps data without copying. Rows start every stride bytes and
// data must hold at least stride*height bytes.
func FromRaw(data []byte, width, height int, layout Layout, stride int) (*Bitmap, error) {
	buf, err := image.FromRaw(data, width, height, layout, stride)
	if err != nil {
		return nil, errors.Wrap(err, "pixkern: wrap raw pixels")
	}
	return &Bitmap{buf: buf}, nil
}

// FromImage copies img into a new RGBA8 bitmap with straight alpha.
func FromImage(img stdimage.Image) *Bitmap {
	return &Bitmap{buf: image.FromStdImage(img)}
}

// Load decodes the image file at path into an RGBA8 bitmap.
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognized; JPEG orientation
// metadata is applied.
func Load(path string) (*Bitmap, error) {
	buf, err := image.Load(path)
	if err != nil {
		return nil, err
	}
	return &Bitmap{buf: buf}, nil
}

// Decode reads an encoded image from r into an RGBA8 bitmap.
func Decode(r io.Reader) (*Bitmap, error) {
	buf, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &Bitmap{buf: buf}, nil
}

// Save encodes an RGBA8 bitmap to path in the format named by its extension.
func (b *Bitmap) Save(path string) error {
	return image.Save(b.buf, path)
}

// Encode writes an RGBA8 bitmap to w.
func (b *Bitmap) Encode(w io.Writer, format Format) error {
	return image.Encode(b.buf, w, format)
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int { return b.buf.Width() }

// Height returns the height in pixels.
func (b *Bitmap) Height() int { return b.buf.Height() }

// Stride returns the number of bytes between row starts.
func (b *Bitmap) Stride() int { return b.buf.Stride() }

// Layout returns the channel layout.
func (b *Bitmap) Layout() Layout { return b.buf.Layout() }

// Pix returns the underlying bytes, including stride padding.
func (b *Bitmap) Pix() []byte { return b.buf.Data() }

// Row returns the pixel bytes of row y without padding.
func (b *Bitmap) Row(y int) []byte { return b.buf.Row(y) }

// RGBA returns the pixel at (x, y) of an RGBA8 bitmap.
func (b *Bitmap) RGBA(x, y int) (r, g, bl, a uint8) { return b.buf.RGBA(x, y) }

// SetRGBA writes the pixel at (x, y) of an RGBA8 bitmap.
func (b *Bitmap) SetRGBA(x, y int, r, g, bl, a uint8) { b.buf.SetRGBA(x, y, r, g, bl, a) }

// Fill sets every pixel of an RGBA8 bitmap.
func (b *Bitmap) Fill(r, g, bl, a uint8) { b.buf.Fill(r, g, bl, a) }

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap { return &Bitmap{buf: b.buf.Clone()} }

// Equal reports whether both bitmaps hold the same pixels, ignoring stride
// padding.
func (b *Bitmap) Equal(o *Bitmap) bool { return b.buf.Equal(o.buf) }

// Image copies an RGBA8 bitmap into a new *image.NRGBA.
func (b *Bitmap) Image() *stdimage.NRGBA { return b.buf.ToStdImage() }

// Digest returns the xxHash64 of the pixel rows, excluding stride padding.
// Two bitmaps with equal pixels and layout have equal digests.
func (b *Bitmap) Digest() uint64 {
	d := xxhash.New()
	for y := range b.Height() {
		_, _ = d.Write(b.Row(y))
	}
	return d.Sum64()
}

// ToRGBAF16 returns a half-float copy of an RGBA8 bitmap with channels
// scaled to [0, 1]. No transfer function is applied.
func (b *Bitmap) ToRGBAF16() (*Bitmap, error) {
	if b.Layout() != LayoutRGBA8 {
		return nil, errors.Wrapf(ErrLayoutMismatch, "pixkern: convert %s to RGBAF16", b.Layout())
	}
	out, err := NewBitmap(b.Width(), b.Height(), LayoutRGBAF16)
	if err != nil {
		return nil, err
	}
	for y := range b.Height() {
		src, dst := b.Row(y), out.Row(y)
		for x := range b.Width() {
			p := src[x*4 : x*4+4 : x*4+4]
			half.StoreRGBA(dst[x*8:x*8+8], [4]float32{
				float32(p[0]) / 255, float32(p[1]) / 255, float32(p[2]) / 255, float32(p[3]) / 255,
			})
		}
	}
	return out, nil
}

// ToRGBA8 returns an 8-bit copy of a half-float bitmap. Channels are
// rounded to nearest and clamped to [0, 255].
func (b *Bitmap) ToRGBA8() (*Bitmap, error) {
	if b.Layout() != LayoutRGBAF16 {
		return nil, errors.Wrapf(ErrLayoutMismatch, "pixkern: convert %s to RGBA8", b.Layout())
	}
	out, err := NewBitmap(b.Width(), b.Height(), LayoutRGBA8)
	if err != nil {
		return nil, err
	}
	for y := range b.Height() {
		src, dst := b.Row(y), out.Row(y)
		for x := range b.Width() {
			v := half.LoadRGBA(src[x*8 : x*8+8])
			p := dst[x*4 : x*4+4 : x*4+4]
			for c := range 4 {
				p[c] = numeric.ClampUint8(v[c] * 255)
			}
		}
	}
	return out, nil
}
