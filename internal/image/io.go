package image

import (
	stdimage "image"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyPath is returned when a load or save path is empty.
var ErrEmptyPath = errors.New("image: empty path")

// Load decodes the image at path into a new RGBA8 buffer.
// EXIF orientation is applied for JPEG sources.
func Load(path string) (*Buffer, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	img, err := imaging.Open(filepath.Clean(path), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "image: open %s", path)
	}
	return FromStdImage(img), nil
}

// Decode decodes an image stream in any registered format
// (PNG, JPEG, GIF, BMP, TIFF, WebP).
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := stdimage.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "image: decode")
	}
	return FromStdImage(img), nil
}

// Save encodes an RGBA8 buffer to path. The format follows the file
// extension (png, jpg, gif, tif, bmp).
func Save(b *Buffer, path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if b.Layout() != LayoutRGBA8 {
		return errors.Wrapf(ErrLayoutMismatch, "save %s", b.Layout())
	}
	if err := imaging.Save(b.ToStdImage(), filepath.Clean(path)); err != nil {
		return errors.Wrapf(err, "image: save %s", path)
	}
	return nil
}

// Encode writes an RGBA8 buffer to w in the given format.
func Encode(b *Buffer, w io.Writer, format imaging.Format) error {
	if b.Layout() != LayoutRGBA8 {
		return errors.Wrapf(ErrLayoutMismatch, "encode %s", b.Layout())
	}
	return errors.Wrap(imaging.Encode(w, b.ToStdImage(), format), "image: encode")
}
