package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixkern"
)

var subsamplings = map[string]pixkern.Subsampling{
	"444":  pixkern.Sub444,
	"422":  pixkern.Sub422,
	"420":  pixkern.Sub420,
	"nv21": pixkern.SubNV21,
}

var yuvMatrices = map[string]pixkern.YUVMatrix{
	"bt601":  pixkern.BT601,
	"bt709":  pixkern.BT709,
	"bt2020": pixkern.BT2020,
}

type yuvFlags struct {
	width, height int
	subsampling   string
	matrix        string
	fullRange     bool
	precise       bool
}

func newYUVCmd(g *globals) *cobra.Command {
	f := &yuvFlags{}
	cmd := &cobra.Command{
		Use:   "yuv <frame.yuv> <output>",
		Short: "Convert a raw YUV frame to an RGBA image",
		Long: `Convert a raw planar frame (Y plane, then U and V planes, or Y then the
interleaved VU plane for nv21) to an RGBA image.

--precise uses float arithmetic with bilinear chroma for 420 and nv21.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runYUV(cmd, g, f, args[0], args[1])
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.width, "width", 0, "frame width")
	fl.IntVar(&f.height, "height", 0, "frame height")
	fl.StringVar(&f.subsampling, "subsampling", "420", "444, 422, 420 or nv21")
	fl.StringVar(&f.matrix, "matrix", "bt601", "bt601, bt709 or bt2020")
	fl.BoolVar(&f.fullRange, "full-range", false, "full range instead of studio range")
	fl.BoolVar(&f.precise, "precise", false, "float path with bilinear chroma")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func runYUV(cmd *cobra.Command, g *globals, f *yuvFlags, in, out string) error {
	sub, ok := subsamplings[strings.ToLower(f.subsampling)]
	if !ok {
		return fmt.Errorf("unknown subsampling %q", f.subsampling)
	}
	m, ok := yuvMatrices[strings.ToLower(f.matrix)]
	if !ok {
		return fmt.Errorf("unknown matrix %q", f.matrix)
	}
	r := pixkern.RangeLimited
	if f.fullRange {
		r = pixkern.RangeFull
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read frame: %w", err)
	}
	src, err := pixkern.PlanarFromBytes(data, f.width, f.height, sub)
	if err != nil {
		return err
	}
	dst, err := pixkern.NewBitmap(f.width, f.height, pixkern.LayoutRGBA8)
	if err != nil {
		return err
	}

	if f.precise {
		err = pixkern.YUV420ToRGBAPrecise(dst, src, m, r, g.options()...)
	} else {
		err = pixkern.YUVToRGBA(dst, src, m, r, g.options()...)
	}
	if err != nil {
		return err
	}
	if err := dst.Save(out); err != nil {
		return err
	}

	newPrinter().Fprintf(cmd.OutOrStdout(), "%s -> %s (%d x %d %s, %d bytes)\n",
		in, out, f.width, f.height, sub, len(data))
	return nil
}
