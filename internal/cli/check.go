package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/bsmap"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate the shape of difficulty files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, p := range args {
				_, err := a.load(cmd.Context(), p, func(o *bsmap.LoadOptions) {
					o.DataCheck = bsmap.DataCheckOptions{Enable: bsmap.Bool(true), ThrowError: bsmap.Bool(true)}
				})
				if iss, ok := bsmap.AsIssues(err); ok {
					failed = true
					for _, it := range iss {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s: %s\n", p, it.Path, it.Code, it.Message)
					}
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", p)
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
}
