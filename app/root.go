// Package app implements the naptr-editor commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/config"
	"github.com/GoPowerDNS-Admin/naptr-editor/internal/logger"
	"github.com/GoPowerDNS-Admin/naptr-editor/internal/metrics"
)

// NewRootCmd builds the command tree. Every call returns independent
// commands and state.
func NewRootCmd() *cobra.Command {
	var (
		s          = &session{}
		configPath string // path to the TOML configuration file
		zoneFile   string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "naptr-editor",
		Short: "naptr-editor edits the NAPTR records of a DNS zone file",
		Long: `naptr-editor loads the NAPTR records of a zone file, keeps them sorted
by order and preference, and writes them back after creating, editing or
deleting records. Records can be checked against DNS rules and published
to a PowerDNS server.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfig(configPath)
			if err != nil {
				return err
			}

			if zoneFile != "" {
				cfg.Zone.File = zoneFile
			}

			if logLevel != "" {
				cfg.Log.LogLevel = logLevel
			}

			s.cfg = cfg
			s.metrics = metrics.New(cfg.Zone.File)

			return logger.Init(cfg.Log, s.metrics)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if s.cfg.Metrics.TextFile == "" {
				return nil
			}

			return s.metrics.WriteTextfile(s.cfg.Metrics.TextFile)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the TOML config file")
	rootCmd.PersistentFlags().StringVarP(&zoneFile, "file", "f", "", "zone file, overrides zone.file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides log.level")

	rootCmd.AddCommand(
		newDisplayCmd(s),
		newSaveCmd(s),
		newAddCmd(s),
		newEditCmd(s),
		newDeleteCmd(s),
		newCheckCmd(s),
		newPushCmd(s),
		newConfigCmd(s),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
