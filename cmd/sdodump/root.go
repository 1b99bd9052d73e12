package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jacoelho/sdo/internal/config"
)

type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	logger *log.Logger
}

func newRootCommand(a *app) *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:           "sdodump",
		Short:         "Inspect SDO type catalogs and data object graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: configFile,
				Flags:      cmd.Flags(),
			})
			if err != nil {
				return fail("load configuration", err)
			}
			level, err := cfg.Level()
			if err != nil {
				return fail("load configuration", err)
			}
			a.cfg = cfg
			a.logger = newLogger(a.stderr, level)
			a.logger.Debug("configuration loaded", "file", configFile, "cycle_policy", cfg.CyclePolicy, "max_depth", cfg.MaxDepth)
			return nil
		},
	}

	defaults := config.Default()
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "TOML configuration file")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.Bool("escape", defaults.Escape, "escape output as XML character data")

	root.AddCommand(
		newTypesCommand(a),
		newObjectCommand(a),
		newXSDCommand(a),
		newSDOCommand(a),
	)
	return root
}
