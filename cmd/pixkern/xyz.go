package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/pixkern"
)

func newXYZCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "xyz <input> <output>",
		Short: "Round trip an image through CIE XYZ",
		Long: `Convert an sRGB image to CIE XYZ (D65) and back, write the result and
report the mean luminance and the largest channel difference.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := pixkern.Load(args[0])
			if err != nil {
				return err
			}
			xyz, err := pixkern.ToXYZ(src, pixkern.SRGB, g.options()...)
			if err != nil {
				return err
			}

			var lum float64
			for i := 1; i < len(xyz); i += pixkern.XYZChannels {
				lum += float64(xyz[i])
			}
			pixels := src.Width() * src.Height()

			dst, err := pixkern.NewBitmap(src.Width(), src.Height(), pixkern.LayoutRGBA8)
			if err != nil {
				return err
			}
			if err := pixkern.FromXYZ(xyz, dst, pixkern.SRGB, g.options()...); err != nil {
				return err
			}
			if err := dst.Save(args[1]); err != nil {
				return err
			}

			newPrinter().Fprintf(cmd.OutOrStdout(), "%s -> %s (%d pixels, mean Y %.4f, max diff %d)\n",
				args[0], args[1], pixels, lum/float64(pixels), maxDiff(src, dst))
			return nil
		},
	}
}

// maxDiff returns the largest absolute channel difference of two RGBA8
// bitmaps of equal size.
func maxDiff(a, b *pixkern.Bitmap) int {
	diff := 0
	for y := range a.Height() {
		ra, rb := a.Row(y), b.Row(y)
		for i := range ra {
			d := int(ra[i]) - int(rb[i])
			if d < 0 {
				d = -d
			}
			diff = max(diff, d)
		}
	}
	return diff
}
