// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/hottopixx/solver"
	"gonum.org/v1/gonum/mat"
)

// epochLine is one row of the per-epoch history.
type epochLine struct {
	Epoch int     `yaml:"epoch"`
	Err1  float64 `yaml:"err1"`
	Err2  float64 `yaml:"err2"`
	Err3  float64 `yaml:"err3"`
	Trace float64 `yaml:"trace"`
	Beta  float64 `yaml:"beta"`
}

func newEpochLine(rep solver.EpochReport) epochLine {
	return epochLine{
		Epoch: rep.Epoch,
		Err1:  rep.Err1,
		Err2:  rep.Err2,
		Err3:  rep.Err3,
		Trace: rep.Trace,
		Beta:  rep.BetaAfter,
	}
}

// runReport is the YAML document printed by "hottopixx run".
type runReport struct {
	RunID    string      `yaml:"run_id"`
	Rows     int         `yaml:"rows"`
	Cols     int         `yaml:"cols"`
	Target   int         `yaml:"target"`
	Seed     int64       `yaml:"seed"`
	Epochs   int         `yaml:"epochs"`
	Stopped  bool        `yaml:"stopped"`
	Beta     float64     `yaml:"beta"`
	Diagonal []float64   `yaml:"diagonal"`
	Boundary []int       `yaml:"boundary"`
	History  []epochLine `yaml:"history"`
	C        [][]float64 `yaml:"c"`
	Residual [][]float64 `yaml:"residual"`
}

func newRunReport(runID string, cfg runConfig, x mat.Matrix, res solver.Result, history []epochLine) (runReport, error) {
	resid, err := solver.Residual(x, res.C)
	if err != nil {
		return runReport{}, err
	}
	f, n := x.Dims()

	return runReport{
		RunID:    runID,
		Rows:     f,
		Cols:     n,
		Target:   res.Target,
		Seed:     cfg.Seed,
		Epochs:   res.Epochs,
		Stopped:  res.Stopped,
		Beta:     res.Beta,
		Diagonal: res.Diagonal(),
		Boundary: res.Boundary(res.Target),
		History:  history,
		C:        rowsOf(res.C),
		Residual: rowsOf(resid),
	}, nil
}
