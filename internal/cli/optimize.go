package cli

import (
	"github.com/spf13/cobra"

	"github.com/reoring/bsmap"
)

func newOptimizeCmd(a *app) *cobra.Command {
	var (
		out    string
		format int
	)
	cmd := &cobra.Command{
		Use:   "optimize FILE",
		Short: "Rewrite a difficulty without default-valued fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := a.load(ctx, args[0], nil)
			if err != nil {
				return err
			}
			return a.save(ctx, d, args[0], out, func(o *bsmap.SaveOptions) {
				o.Optimize.Enabled = bsmap.Bool(true)
				if cmd.Flags().Changed("format") {
					o.Format = format
				}
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; defaults to overwriting the input")
	cmd.Flags().IntVar(&format, "format", 0, "indent width; 0 writes compact JSON")
	return cmd
}
