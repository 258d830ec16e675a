// SPDX-License-Identifier: MIT

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newGenerateCommand(global *globalOpts, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a row-normalised data matrix and print it as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), global.configFile)
			if err != nil {
				return err
			}
			x, err := cfg.loadData()
			if err != nil {
				return err
			}
			f, n := x.Dims()
			log.WithFields(logrus.Fields{"rows": f, "cols": n, "source": cfg.Source}).Info("generated data")
			return writeOutput(cmd.OutOrStdout(), cfg.Output, matrixDoc{Rows: rowsOf(x)})
		},
	}
	addDataFlags(cmd.Flags())
	return cmd
}
