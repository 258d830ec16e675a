// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hottopixx/adam"
	"github.com/katalvlaran/hottopixx/internal/rng"
	"github.com/katalvlaran/hottopixx/plateau"
	"gonum.org/v1/gonum/mat"
)

// FindC runs HOTTOPIXX on the f×n data matrix x and returns the f×f
// selection matrix C together with run metadata. See the package
// documentation for the epoch loop.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrBadShape / matrix.ErrNaNInf for bad x;
//   - ErrDegenerateTarget if r is outside [1, f-1];
//   - ErrOptionViolation for invalid options;
//   - the context error, wrapped, when the context ends before an epoch;
//   - an OnEpoch error, wrapped with the epoch number.
//
// On any error the partial result is discarded.
func FindC(x mat.Matrix, r int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if err := validateInput(x, r); err != nil {
		return Result{}, err
	}

	f, n := x.Dims()
	src := o.Rand
	if src == nil {
		src = rng.FromSeed(o.Seed)
	}
	st, err := adam.NewState(f, f, o.Adam)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	s := &solverRun{
		x:       mat.DenseCopyOf(x),
		r:       r,
		f:       f,
		n:       n,
		opts:    o,
		rand:    src,
		c:       mat.NewDense(f, f, nil),
		state:   st,
		penalty: rng.Uniform(src, f),
	}
	if err = s.loop(); err != nil {
		return Result{}, err
	}

	return Result{
		C:       s.c,
		Epochs:  s.epoch,
		Stopped: s.stopped,
		Target:  r,
		Beta:    s.beta,
		Penalty: s.penalty,
		Last:    s.last,
	}, nil
}

// solverRun holds the mutable state of one FindC call.
type solverRun struct {
	x       *mat.Dense
	r, f, n int
	opts    Options
	rand    *rand.Rand

	c       *mat.Dense
	state   adam.State
	beta    float64
	penalty []float64

	epoch   int
	stopped bool
	last    Diagnostics
}

// loop runs epochs until the budget is spent or the Predicate fires.
func (s *solverRun) loop() error {
	for s.epoch < s.opts.Epochs && !s.stopped {
		select {
		case <-s.opts.Ctx.Done():
			return fmt.Errorf("solver: canceled before epoch %d: %w", s.epoch+1, s.opts.Ctx.Err())
		default:
		}
		if err := s.runEpoch(); err != nil {
			return err
		}
	}

	return nil
}

// runEpoch performs one sampling pass, the projection, diagnostics,
// the stopping check and the dual step, then reports.
func (s *solverRun) runEpoch() error {
	col := make([]float64, s.f)
	for _, k := range rng.SampleWithReplacement(s.rand, s.n, s.n) {
		mat.Col(col, k, s.x)
		g, err := subgradient(s.c, col, s.beta, s.penalty)
		if err != nil {
			return fmt.Errorf("solver: epoch %d: %w", s.epoch+1, err)
		}
		s.c, s.state, err = adam.Step(g, s.c, s.state, s.opts.Adam, true)
		if err != nil {
			return fmt.Errorf("solver: epoch %d: %w", s.epoch+1, err)
		}
	}

	projected, err := plateau.ProjectRows(s.c)
	if err != nil {
		return fmt.Errorf("solver: epoch %d: %w", s.epoch+1, err)
	}
	s.c = projected

	diag, d, err := diagnose(s.c, s.r, s.beta)
	if err != nil {
		return fmt.Errorf("solver: epoch %d: %w", s.epoch+1, err)
	}
	s.last = diag
	s.stopped = s.opts.Stop(diag.Err1, diag.Err2, diag.Err3)

	before := s.beta
	s.beta = DualStep(s.beta, s.opts.DualStep, diag.Trace, s.r)
	s.epoch++

	rep := EpochReport{
		Epoch:       s.epoch,
		Diagnostics: diag,
		Diagonal:    d,
		BetaBefore:  before,
		BetaAfter:   s.beta,
		Stopped:     s.stopped,
	}
	if err = s.opts.OnEpoch(rep); err != nil {
		return fmt.Errorf("solver: OnEpoch error at epoch %d: %w", s.epoch, err)
	}

	return nil
}
