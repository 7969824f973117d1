// Command pixkern runs the pixkern image kernels on image files.
//
// Usage:
//
//	pixkern blur --kind gaussian --size 9 -o out photo.jpg
//	pixkern tonemap --curve aces-film --exposure 1.5 -o out hdr.png
//	pixkern yuv --width 1920 --height 1080 --subsampling nv21 frame.yuv frame.png
//	pixkern hash a.png b.png
//	pixkern xyz in.png out.png
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "pixkern:", err)
		os.Exit(1)
	}
}
