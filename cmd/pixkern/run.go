package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/pixkern"
)

// fileOp transforms one loaded bitmap in place.
type fileOp func(bm *pixkern.Bitmap) error

// outputPath names the result of processing in under dir: the input's base
// name with suffix inserted before the extension.
func outputPath(dir, in, suffix string) string {
	base := filepath.Base(in)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+"-"+suffix+ext)
}

// processFiles loads every input, applies op and saves the result under
// outDir. Up to g.jobs files are processed at once; the first error cancels
// the files that have not started.
func processFiles(ctx context.Context, g *globals, out io.Writer, inputs []string, outDir, suffix string, op fileOp) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := newPrinter()
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.jobs)
	for _, in := range inputs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()

			bm, err := pixkern.Load(in)
			if err != nil {
				return err
			}
			if err := op(bm); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			dst := outputPath(outDir, in, suffix)
			if err := bm.Save(dst); err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			p.Fprintf(out, "%s -> %s (%d x %d, %d pixels, %v)\n",
				in, dst, bm.Width(), bm.Height(), bm.Width()*bm.Height(),
				time.Since(start).Round(time.Millisecond))
			return nil
		})
	}
	return eg.Wait()
}
