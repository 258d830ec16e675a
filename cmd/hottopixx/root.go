// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// globalOpts are the persistent flags shared by every subcommand.
type globalOpts struct {
	configFile string
	logLevel   string
}

func newRootCommand(out io.Writer, log *logrus.Logger) *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:           "hottopixx",
		Short:         "Locate boundary rows of near-separable data with HOTTOPIXX",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newRunCommand(opts, log),
		newGenerateCommand(opts, log),
	)
	return cmd
}
