package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/stats"
)

type report struct {
	File        string               `yaml:"file"`
	Version     string               `yaml:"version"`
	Collections map[string]int      `yaml:"collections"`
	Color       map[int]stats.Count `yaml:"lightColorEventBoxGroups,omitempty"`
	Rotation    map[int]stats.Count `yaml:"lightRotationEventBoxGroups,omitempty"`
	Translation map[int]stats.Count `yaml:"lightTranslationEventBoxGroups,omitempty"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Count objects and light event box groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			r := report{
				File:        d.FileName(),
				Version:     d.Version(),
				Collections: map[string]int{},
				Color:       stats.CountColorEBG(d),
				Rotation:    stats.CountRotationEBG(d),
				Translation: stats.CountTranslationEBG(d),
			}
			for _, k := range beatmap.Kinds {
				r.Collections[k.String()] = beatmap.Count(d, k)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(r); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
