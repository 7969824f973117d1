package image

import (
	"bytes"
	stdimage "image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutInfo(t *testing.T) {
	tests := []struct {
		layout Layout
		bpp    int
		float  bool
		name   string
	}{
		{LayoutRGBA8, 4, false, "RGBA8"},
		{LayoutRGBAF16, 8, true, "RGBAF16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.layout.IsValid())
			assert.Equal(t, tt.bpp, tt.layout.BytesPerPixel())
			assert.Equal(t, tt.float, tt.layout.Info().Float)
			assert.Equal(t, tt.bpp*10, tt.layout.RowBytes(10))
			assert.Equal(t, tt.name, tt.layout.String())
		})
	}

	assert.False(t, Layout(200).IsValid())
	assert.Equal(t, LayoutInfo{}, Layout(200).Info())
}

func TestFromRaw_Validation(t *testing.T) {
	tests := []struct {
		name   string
		data   int
		w, h   int
		layout Layout
		stride int
		want   error
	}{
		{"ok", 40, 2, 5, LayoutRGBA8, 8, nil},
		{"padded", 5 * 12, 2, 5, LayoutRGBA8, 12, nil},
		{"zero width", 40, 0, 5, LayoutRGBA8, 8, ErrInvalidDimensions},
		{"stride", 40, 3, 5, LayoutRGBA8, 8, ErrInvalidStride},
		{"short", 39, 2, 5, LayoutRGBA8, 8, ErrDataTooSmall},
		{"f16 stride", 80, 2, 5, LayoutRGBAF16, 8, ErrInvalidStride},
		{"layout", 40, 2, 5, Layout(9), 8, ErrInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromRaw(make([]byte, tt.data), tt.w, tt.h, tt.layout, tt.stride)
			if tt.want == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.stride, b.Stride())
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestBuffer_RowIgnoresPadding(t *testing.T) {
	data := make([]byte, 3*12)
	b, err := FromRaw(data, 2, 3, LayoutRGBA8, 12)
	require.NoError(t, err)

	b.Fill(1, 2, 3, 4)
	for y := range 3 {
		assert.Equal(t, []byte{1, 2, 3, 4, 1, 2, 3, 4}, b.Row(y))
		assert.Equal(t, []byte{0, 0, 0, 0}, data[y*12+8:y*12+12], "padding written")
	}

	b.SetRGBA(1, 2, 9, 8, 7, 6)
	r, g, bl, a := b.RGBA(1, 2)
	assert.Equal(t, [4]uint8{9, 8, 7, 6}, [4]uint8{r, g, bl, a})

	c := b.Clone()
	assert.True(t, c.Equal(b))
	c.SetRGBA(0, 0, 0, 0, 0, 0)
	assert.False(t, c.Equal(b))
}

func TestStdImageRoundTrip(t *testing.T) {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	b := FromStdImage(img)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Height())
	r, g, bl, a := b.RGBA(1, 1)
	assert.Equal(t, [4]uint8{10, 20, 30, 128}, [4]uint8{r, g, bl, a})

	back := b.ToStdImage()
	assert.Equal(t, img.Pix, back.Pix)

	gray := stdimage.NewGray(stdimage.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 77})
	gb := FromStdImage(gray)
	r, g, bl, a = gb.RGBA(0, 0)
	assert.Equal(t, [4]uint8{77, 77, 77, 255}, [4]uint8{r, g, bl, a})
}

func TestEncodeDecode(t *testing.T) {
	b, err := NewBuffer(4, 4, LayoutRGBA8)
	require.NoError(t, err)
	b.Fill(200, 100, 50, 255)

	var out bytes.Buffer
	require.NoError(t, Encode(b, &out, imaging.PNG))

	got, err := Decode(&out)
	require.NoError(t, err)
	assert.True(t, got.Equal(b))

	f16, err := NewBuffer(1, 1, LayoutRGBAF16)
	require.NoError(t, err)
	assert.True(t, errors.Is(Encode(f16, &out, imaging.PNG), ErrLayoutMismatch))
}

func TestSaveLoad(t *testing.T) {
	b, err := NewBuffer(5, 3, LayoutRGBA8)
	require.NoError(t, err)
	b.Fill(1, 2, 3, 255)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, Save(b, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.Equal(b))

	_, err = Load("")
	assert.True(t, errors.Is(err, ErrEmptyPath))
}
