package main

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixkern"
)

var version = "0.1.0"

// globals holds the persistent flags and the pool shared by one command run.
type globals struct {
	verbose bool
	workers int
	jobs    int

	pool *pixkern.Pool
}

// options returns the kernel options selected by the global flags.
func (g *globals) options() []pixkern.Option {
	opts := []pixkern.Option{pixkern.WithWorkers(g.workers)}
	if g.pool != nil {
		opts = append(opts, pixkern.WithPool(g.pool))
	}
	return opts
}

// newPrinter formats counts with digit grouping.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "pixkern",
		Short: "Image kernels: blur, tone mapping, YUV and XYZ conversion",
		Long: `pixkern applies CPU image kernels to image files.

Blurs, tone curves and the XYZ round trip read PNG, JPEG, GIF, BMP, TIFF
or WebP and write the format named by the output extension. Raw YUV
frames are converted to RGBA with the fixed-point or the precise path.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if g.jobs <= 0 {
				return fmt.Errorf("--jobs must be positive, got %d", g.jobs)
			}
			if g.verbose {
				pixkern.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			g.pool = pixkern.NewPool(g.workers)
			pixkern.Logger().Debug("pixkern start",
				"simd", pixkern.SIMD(),
				"pool_workers", g.pool.Workers(),
				"jobs", g.jobs)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			stats := pixkern.KernelCacheStats()
			pixkern.Logger().Debug("kernel cache",
				"entries", stats.Entries,
				"hits", stats.Hits,
				"misses", stats.Misses,
				"hit_rate", stats.HitRate)
			if g.pool != nil {
				g.pool.Close()
				g.pool = nil
			}
			pixkern.SetLogger(nil)
		},
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "debug logging to stderr")
	root.PersistentFlags().IntVarP(&g.workers, "workers", "w", 0, "kernel concurrency hint (0 = NumCPU)")
	root.PersistentFlags().IntVarP(&g.jobs, "jobs", "j", 1, "files processed at once")
	root.SetVersionTemplate(fmt.Sprintf(
		"pixkern %s (%s/%s, %s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(), pixkern.SIMD(),
	))

	root.AddCommand(
		newBlurCmd(g),
		newToneMapCmd(g),
		newYUVCmd(g),
		newHashCmd(g),
		newXYZCmd(g),
	)
	return root
}
