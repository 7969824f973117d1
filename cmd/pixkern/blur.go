package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixkern"
)

var blurKinds = []string{
	"gaussian", "tent", "tent2d", "box", "poisson", "motion",
	"stack", "median", "bilateral",
}

type blurFlags struct {
	kind         string
	size         int
	sigma        float32
	radius       int
	vRadius      int
	seed         uint64
	angle        float32
	spatialSigma float32
	rangeSigma   float32
	half         bool
	outDir       string
}

func newBlurCmd(g *globals) *cobra.Command {
	f := &blurFlags{}
	cmd := &cobra.Command{
		Use:   "blur <input>...",
		Short: "Blur images",
		Long: `Blur one or more images and write <name>-<kind>.<ext> to the output
directory.

Kinds: ` + strings.Join(blurKinds, ", ") + `.
gaussian, tent, tent2d, box, poisson, motion and bilateral use --size
(odd). A gaussian --sigma of 0 derives sigma from the size. motion smears
along --angle degrees. bilateral weights neighbours by --spatial-sigma
pixels and --range-sigma luma levels. stack and median use --radius;
stack takes a separate vertical radius from --vradius.
--half runs the separable kinds on a half-float copy of the image.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := f.op(g)
			if err != nil {
				return err
			}
			return processFiles(cmd.Context(), g, cmd.OutOrStdout(), args, f.outDir, f.kind, op)
		},
	}
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "gaussian", "blur kind")
	cmd.Flags().IntVarP(&f.size, "size", "s", 9, "kernel size for separable kinds")
	cmd.Flags().Float32Var(&f.sigma, "sigma", 0, "gaussian sigma (0 = derive from size)")
	cmd.Flags().IntVarP(&f.radius, "radius", "r", 8, "radius for stack and median")
	cmd.Flags().IntVar(&f.vRadius, "vradius", -1, "vertical stack radius (-1 = --radius)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 1, "poisson kernel seed")
	cmd.Flags().Float32Var(&f.angle, "angle", 0, "motion angle in degrees")
	cmd.Flags().Float32Var(&f.spatialSigma, "spatial-sigma", 3, "bilateral spatial sigma")
	cmd.Flags().Float32Var(&f.rangeSigma, "range-sigma", 25, "bilateral range sigma")
	cmd.Flags().BoolVar(&f.half, "half", false, "process separable kinds in half float")
	cmd.Flags().StringVarP(&f.outDir, "out", "o", ".", "output directory")
	return cmd
}

// op resolves the flags to a per-file operation.
func (f *blurFlags) op(g *globals) (fileOp, error) {
	var run func(bm *pixkern.Bitmap, opts ...pixkern.Option) error
	separable := true
	switch strings.ToLower(f.kind) {
	case "gaussian":
		run = func(bm *pixkern.Bitmap, opts ...pixkern.Option) error {
			return pixkern.GaussianBlur(bm, f.size, f.sigma, opts...)
		}
	case "tent":
		run = func(bm *pixkern.Bitmap, opts ...pixkern.Option) error {
			return pixkern.TentBlur(bm, f.size, opts...)
		}
	case "box":
		run = func(bm *pixkern.Bitmap, opts ...pixkern.Option) error {
			return pixkern.BoxBlur(bm, f.size, opts...)
		}
	case "poisson":
		run = func(bm *pixkern.Bitmap, opts ...pixkern.Option) error {
			return pixkern.PoissonBlur(bm, f.size, f.seed, opts...)
		}
	case "tent2d":
		separable = false
		run = func(bm *pixkern.Bitmap, opts ...pixkern.Option) error {
			return pixkern.TentBlur2D(bm, f.size, opts...)
		}
	case "motion":
		separable = false
		run = func(bm *pixkern.Bitmap, opts ...pixkern.Option) error {
			return pixkern.MotionBlur(bm, f.size, f.angle, opts...)
		}
	case "stack":
		separable = false
		vRadius := f.vRadius
		if vRadius < 0 {
			vRadius = f.radius
		}
		run = func(bm *pixkern.Bitmap, opts ...pixkern.Option) error {
			return pixkern.StackBlurXY(bm, f.radius, vRadius, opts...)
		}
	case "median":
		separable = false
		run = func(bm *pixkern.Bitmap, opts ...pixkern.Option) error {
			return pixkern.MedianBlur(bm, f.radius, opts...)
		}
	case "bilateral":
		separable = false
		run = func(bm *pixkern.Bitmap, opts ...pixkern.Option) error {
			return pixkern.BilateralBlur(bm, f.size, f.spatialSigma, f.rangeSigma, opts...)
		}
	default:
		return nil, fmt.Errorf("unknown blur kind %q (want one of %s)", f.kind, strings.Join(blurKinds, ", "))
	}

	if f.half && !separable {
		return nil, fmt.Errorf("--half is not supported by %s", f.kind)
	}

	return func(bm *pixkern.Bitmap) error {
		if !f.half {
			return run(bm, g.options()...)
		}
		hf, err := bm.ToRGBAF16()
		if err != nil {
			return err
		}
		if err := run(hf, g.options()...); err != nil {
			return err
		}
		back, err := hf.ToRGBA8()
		if err != nil {
			return err
		}
		for y := range bm.Height() {
			copy(bm.Row(y), back.Row(y))
		}
		return nil
	}, nil
}
