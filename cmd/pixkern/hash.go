package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/pixkern"
)

func newHashCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <image>...",
		Short: "Print the xxHash64 digest of decoded pixels",
		Long: `Decode each image to RGBA8 and print the xxHash64 of its pixels.
Images that decode to the same pixels have the same digest regardless of
their encoding.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digests := make([]uint64, len(args))

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(g.jobs)
			for i, path := range args {
				eg.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					bm, err := pixkern.Load(path)
					if err != nil {
						return err
					}
					digests[i] = bm.Digest()
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			for i, path := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%016x  %s\n", digests[i], path)
			}
			return nil
		},
	}
}
