package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/bsmap/colorscheme"
	"github.com/reoring/bsmap/convert"
)

func newChromaCmd(a *app) *cobra.Command {
	var (
		out string
		env string
	)
	cmd := &cobra.Command{
		Use:   "chroma FILE",
		Short: "Convert legacy chroma light values into color custom data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := a.load(ctx, args[0], nil)
			if err != nil {
				return err
			}
			n := convert.OgChromaToChromaV2(d, env)
			fmt.Fprintf(cmd.OutOrStdout(), "converted legacy chroma, removed %d color events\n", n)
			return a.save(ctx, d, args[0], out, nil)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; defaults to overwriting the input")
	cmd.Flags().StringVar(&env, "environment", "DefaultEnvironment", "environment whose colors fill unset events")
	_ = cmd.RegisterFlagCompletionFunc("environment", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return colorscheme.Environments(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
