package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/bsmap/patch"
	"github.com/reoring/bsmap/timing"
)

func newFixCmd(a *app) *cobra.Command {
	var (
		out      string
		bpm      float64
		duration float64
		sortAll  bool
	)
	cmd := &cobra.Command{
		Use:   "fix FILE",
		Short: "Repair malformed values and drop objects outside the song",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := a.load(ctx, args[0], nil)
			if err != nil {
				return err
			}
			fixed := patch.Correct(d)
			fmt.Fprintf(cmd.OutOrStdout(), "corrected %d values\n", len(fixed))

			if bpm > 0 {
				tempo, err := timing.FromDifficulty(bpm, d)
				if err != nil {
					return fmt.Errorf("--bpm: %w", err)
				}
				n := patch.RemoveOutsidePlayable(d, tempo, duration)
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d objects outside the playable range\n", n)
			}
			if sortAll {
				d.Sort()
			}
			return a.save(ctx, d, args[0], out, nil)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; defaults to overwriting the input")
	cmd.Flags().Float64Var(&bpm, "bpm", 0, "song BPM; enables removing objects outside the playable range")
	cmd.Flags().Float64Var(&duration, "duration", 0, "audio length in seconds; 0 only drops negative times")
	cmd.Flags().BoolVar(&sortAll, "sort", true, "sort every collection by time")
	return cmd
}
