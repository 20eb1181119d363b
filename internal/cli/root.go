// Package cli implements the bsmap command line.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/bsmap"
	"github.com/reoring/bsmap/beatmap"
)

// errFailed is returned after the per-file failures were already printed.
var errFailed = errors.New("one or more files failed")

type app struct {
	configPath string
	logLevel   string
	dir        string
	cfg        bsmap.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "bsmap",
		Short:         "Inspect, repair and compact beatmap difficulty files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with save and load options")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.dir, "dir", "", "map directory; overrides the options file")

	root.AddCommand(
		newCheckCmd(a),
		newFixCmd(a),
		newOptimizeCmd(a),
		newChromaCmd(a),
		newStatsCmd(a),
		newVersionCmd(),
	)
	return root
}

func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		root.PrintErrln("Error:", err)
	}
	return err
}

func (a *app) setup() error {
	lvl, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	bsmap.SetLogLevel(lvl)
	if a.configPath != "" {
		cfg, err := bsmap.LoadConfigFile(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.dir != "" {
		a.cfg.Save.Directory = a.dir
		a.cfg.Load.Directory = a.dir
	}
	return nil
}

func (a *app) load(ctx context.Context, path string, edit func(*bsmap.LoadOptions)) (beatmap.Difficulty, error) {
	opt := a.cfg.Load
	if edit != nil {
		edit(&opt)
	}
	return bsmap.Load(ctx, path, opt)
}

// save writes d back to path unless out or the options file name a target.
func (a *app) save(ctx context.Context, d beatmap.Difficulty, path, out string, edit func(*bsmap.SaveOptions)) error {
	opt := a.cfg.Save
	switch {
	case out != "":
		opt.FilePath = out
	case opt.FilePath == "":
		opt.FilePath = path
	}
	if edit != nil {
		edit(&opt)
	}
	return bsmap.Save(ctx, d, opt)
}
