// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/katalvlaran/hottopixx/solver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRunCommand(global *globalOpts, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the solver and print C, its diagonal, the boundary rows and X - C·X",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), global.configFile)
			if err != nil {
				return err
			}
			rep, err := runSolver(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), cfg.Output, rep)
		},
	}
	addSolverFlags(cmd.Flags())
	return cmd
}

// runSolver loads X, runs FindC with per-epoch logging and builds the report.
func runSolver(ctx context.Context, cfg runConfig, log *logrus.Logger) (runReport, error) {
	runID := uuid.NewString()
	entry := log.WithField("run", runID)

	x, err := cfg.loadData()
	if err != nil {
		return runReport{}, err
	}
	f, n := x.Dims()
	entry.WithFields(logrus.Fields{"rows": f, "cols": n, "target": cfg.Target}).Info("loaded data")

	opts, err := cfg.solverOptions()
	if err != nil {
		return runReport{}, err
	}

	var history []epochLine
	opts = append(opts,
		solver.WithContext(ctx),
		solver.WithOnEpoch(func(rep solver.EpochReport) error {
			entry.WithFields(logrus.Fields{
				"epoch": rep.Epoch,
				"err1":  rep.Err1,
				"err2":  rep.Err2,
				"err3":  rep.Err3,
				"beta":  rep.BetaAfter,
			}).Info("epoch done")
			if log.IsLevelEnabled(logrus.DebugLevel) {
				entry.WithField("epoch", rep.Epoch).Debugf("diagonal %v", rep.Diagonal)
			}
			history = append(history, newEpochLine(rep))
			return nil
		}),
	)

	res, err := solver.FindC(x, cfg.Target, opts...)
	if err != nil {
		return runReport{}, err
	}
	entry.WithFields(logrus.Fields{
		"epochs":   res.Epochs,
		"stopped":  res.Stopped,
		"boundary": res.Boundary(cfg.Target),
	}).Info("solver finished")

	return newRunReport(runID, cfg, x, res, history)
}
