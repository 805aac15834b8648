// Package cli implements the log-archiver command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logtools/log-archiver/internal/archive"
	"github.com/logtools/log-archiver/internal/config"
	"github.com/logtools/log-archiver/internal/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	jsonOut   bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "log-archiver",
	Short: "log-archiver — log archive maintenance",
	Long: `log-archiver compresses aging log files, builds dated bundles,
prunes expired archives, and reports statistics over a log directory and its
archive store. One bad file never aborts a maintenance cycle.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "machine-readable JSON output")
}

// setup loads configuration and wires the logger and archive manager.
func setup() (*config.Config, logging.Logger, *archive.Manager, error) {
	var cfg *config.Config

	switch {
	case cfgFile != "":
		c, err := config.Load(cfgFile)
		if err != nil {
			return nil, nil, nil, err
		}
		cfg = c
	default:
		if _, err := os.Stat("config.yaml"); err == nil {
			c, err := config.Load("config.yaml")
			if err != nil {
				return nil, nil, nil, err
			}
			cfg = c
		} else {
			cfg = config.Default()
		}
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	mgr := archive.New(cfg.Archive, log, nil)
	return cfg, log, mgr, nil
}
