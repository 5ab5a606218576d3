// Package main provides the swinglab CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootOpts struct {
	logLevel   string
	configPath string
	catalog    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:   "swinglab",
		Short: "Swing quality scoring and drill prescription",
		Long: `swinglab scores a baseball swing from its segment velocity curves and
biomechanical measurements, grades the kinetic chain, and prescribes
corrective drills.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			logrus.SetLevel(level)
			logrus.SetOutput(os.Stderr)
			return nil
		},
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	f.StringVar(&opts.configPath, "config", "", "Path to config file (default: search for .swinglab/config.yaml)")
	f.StringVar(&opts.catalog, "catalog", "", "Drill catalog file, YAML or JSON (default: built-in catalog)")

	rootCmd.AddCommand(
		newScoreCmd(opts),
		newPrescribeCmd(opts),
		newCompareCmd(opts),
		newBatchCmd(opts),
		newServeCmd(opts),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
