package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixkern"
)

type toneFlags struct {
	curve  string
	params pixkern.ToneParams
	color  []float32
	outDir string
}

func newToneMapCmd(g *globals) *cobra.Command {
	f := &toneFlags{params: pixkern.DefaultToneParams()}

	names := make([]string, 0, len(pixkern.ToneCurves()))
	for _, c := range pixkern.ToneCurves() {
		names = append(names, c.String())
	}

	cmd := &cobra.Command{
		Use:   "tonemap <input>...",
		Short: "Apply a tone curve to images",
		Long: `Decode each image from sRGB to linear light, apply a tone curve and
encode the result back to sRGB. Alpha is preserved.

Curves: ` + strings.Join(names, ", ") + `.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := pixkern.ParseToneCurve(f.curve)
			if err != nil {
				return err
			}
			if len(f.color) > 0 {
				if len(f.color) != 4 {
					return fmt.Errorf("--color wants 4 values (r,g,b,alpha), got %d", len(f.color))
				}
				copy(f.params.Color[:], f.color)
			}
			m, err := pixkern.NewToneMapper(curve, f.params)
			if err != nil {
				return err
			}
			return processFiles(cmd.Context(), g, cmd.OutOrStdout(), args, f.outDir, curve.String(),
				func(bm *pixkern.Bitmap) error {
					return pixkern.ToneMap(bm, m, g.options()...)
				})
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.curve, "curve", "c", "aces-film", "tone curve")
	fl.Float32VarP(&f.params.Exposure, "exposure", "e", f.params.Exposure, "exposure multiplier")
	fl.Float32Var(&f.params.Cutoff, "cutoff", f.params.Cutoff, "aldridge toe cutoff")
	fl.Float32Var(&f.params.Transition, "transition", f.params.Transition, "mobius transition")
	fl.Float32Var(&f.params.Peak, "peak", f.params.Peak, "mobius peak")
	fl.Float32Var(&f.params.MaxLd, "max-ld", f.params.MaxLd, "drago display luminance")
	fl.Float32SliceVar(&f.color, "color", nil, "monochrome target r,g,b,alpha")
	fl.Float32Var(&f.params.Temperature, "temperature", f.params.Temperature, "white balance warmth in [0, 1]")
	fl.Float32Var(&f.params.Tint, "tint", f.params.Tint, "white balance tint in [-100, 100]")
	fl.StringVarP(&f.outDir, "out", "o", ".", "output directory")
	return cmd
}
