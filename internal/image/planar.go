package image

import "github.com/pkg/errors"

// Errors for planar YUV descriptors.
var (
	// ErrInvalidSubsampling is returned for an unknown chroma layout.
	ErrInvalidSubsampling = errors.New("image: invalid chroma subsampling")

	// ErrPlaneTooSmall is returned when a plane cannot hold its samples.
	ErrPlaneTooSmall = errors.New("image: plane too small")
)

// Subsampling is the chroma layout of a Planar image.
type Subsampling uint8

const (
	// Sub444 stores one U and one V sample per pixel.
	Sub444 Subsampling = iota

	// Sub422 halves chroma horizontally.
	Sub422

	// Sub420 halves chroma in both directions (I420 / YV12 planes).
	Sub420

	// SubNV21 halves chroma in both directions and interleaves it in a
	// single plane as V, U byte pairs. The plane is carried in Planar.U.
	SubNV21

	subsamplingCount
)

// IsValid reports whether s is a known subsampling.
func (s Subsampling) IsValid() bool { return s < subsamplingCount }

// String returns the conventional name.
func (s Subsampling) String() string {
	switch s {
	case Sub444:
		return "444"
	case Sub422:
		return "422"
	case Sub420:
		return "420"
	case SubNV21:
		return "nv21"
	default:
		return "unknown"
	}
}

// ChromaSize returns the chroma plane dimensions in samples.
func (s Subsampling) ChromaSize(width, height int) (int, int) {
	switch s {
	case Sub422:
		return (width + 1) / 2, height
	case Sub420, SubNV21:
		return (width + 1) / 2, (height + 1) / 2
	default:
		return width, height
	}
}

// Planar describes a YUV image with independent plane strides.
type Planar struct {
	Y, U, V []byte

	YStride int
	UStride int
	VStride int

	Width  int
	Height int

	Subsampling Subsampling
}

// NewPlanar allocates tightly packed planes.
func NewPlanar(width, height int, sub Subsampling) (*Planar, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !sub.IsValid() {
		return nil, ErrInvalidSubsampling
	}

	cw, ch := sub.ChromaSize(width, height)
	p := &Planar{
		Y:           make([]byte, width*height),
		YStride:     width,
		Width:       width,
		Height:      height,
		Subsampling: sub,
	}
	if sub == SubNV21 {
		p.U = make([]byte, 2*cw*ch)
		p.UStride = 2 * cw
		return p, nil
	}
	p.U = make([]byte, cw*ch)
	p.V = make([]byte, cw*ch)
	p.UStride, p.VStride = cw, cw
	return p, nil
}

// PlanarFromBytes splits a raw frame in the conventional file order
// (Y plane, then U and V planes, or Y then the VU plane for NV21) into a
// Planar view over data.
func PlanarFromBytes(data []byte, width, height int, sub Subsampling) (*Planar, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !sub.IsValid() {
		return nil, ErrInvalidSubsampling
	}

	cw, ch := sub.ChromaSize(width, height)
	ySize := width * height
	cSize := cw * ch
	need := ySize + 2*cSize
	if len(data) < need {
		return nil, errors.Wrapf(ErrDataTooSmall, "%s frame %dx%d needs %d bytes, have %d",
			sub, width, height, need, len(data))
	}

	p := &Planar{
		Y:           data[:ySize],
		YStride:     width,
		Width:       width,
		Height:      height,
		Subsampling: sub,
	}
	if sub == SubNV21 {
		p.U = data[ySize : ySize+2*cSize]
		p.UStride = 2 * cw
		return p, nil
	}
	p.U = data[ySize : ySize+cSize]
	p.V = data[ySize+cSize : ySize+2*cSize]
	p.UStride, p.VStride = cw, cw
	return p, nil
}

// Validate checks that every plane holds its declared geometry.
func (p *Planar) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return ErrInvalidDimensions
	}
	if !p.Subsampling.IsValid() {
		return ErrInvalidSubsampling
	}

	cw, ch := p.Subsampling.ChromaSize(p.Width, p.Height)
	if err := checkPlane("Y", p.Y, p.YStride, p.Width, p.Height); err != nil {
		return err
	}
	if p.Subsampling == SubNV21 {
		return checkPlane("VU", p.U, p.UStride, 2*cw, ch)
	}
	if err := checkPlane("U", p.U, p.UStride, cw, ch); err != nil {
		return err
	}
	return checkPlane("V", p.V, p.VStride, cw, ch)
}

func checkPlane(name string, plane []byte, stride, rowBytes, rows int) error {
	if stride < rowBytes {
		return errors.Wrapf(ErrInvalidStride, "%s plane stride %d < %d", name, stride, rowBytes)
	}
	if need := stride*(rows-1) + rowBytes; len(plane) < need {
		return errors.Wrapf(ErrPlaneTooSmall, "%s plane has %d bytes, needs %d", name, len(plane), need)
	}
	return nil
}
