// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/hottopixx/adam"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for FindC.
var (
	// ErrDegenerateTarget is returned when r is outside [1, f-1]: with r >= f
	// the "rest" of the diagonal is empty and err2 has no meaning.
	ErrDegenerateTarget = errors.New("solver: target count must lie in [1, f-1]")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Default hyper-parameters.
const (
	DefaultEpochs   = 20
	DefaultDualStep = 0.01
)

// Option configures FindC via functional arguments. An invalid value is
// recorded and surfaced as ErrOptionViolation when FindC is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of one FindC call.
type Options struct {
	// Ctx is checked at every epoch boundary.
	Ctx context.Context

	// Epochs caps the number of epochs.
	Epochs int

	// Adam holds the primal step size, decay rates and floor.
	Adam adam.Params

	// DualStep is the ascent rate s_d of beta.
	DualStep float64

	// Stop is consulted once per epoch.
	Stop Predicate

	// Seed feeds the default RNG when Rand is nil (0 ⇒ seed 1).
	Seed int64

	// Rand, when set, is used for every random draw of the call.
	Rand *rand.Rand

	// OnEpoch is called after every epoch. A non-nil error aborts FindC.
	OnEpoch func(EpochReport) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference configuration: 20 epochs,
// s_p = s_d = 0.01, decays 0.9 / 0.999, eps 1e-8, DefaultStop, seed 0.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Epochs:   DefaultEpochs,
		Adam:     adam.DefaultParams(),
		DualStep: DefaultDualStep,
		Stop:     DefaultStop,
		OnEpoch:  func(EpochReport) error { return nil },
	}
}

// violate records the first option error only.
func (o *Options) violate(format string, a ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, a...)...)
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// WithContext sets a context checked before every epoch.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpochs sets the epoch cap; n must be > 0.
func WithEpochs(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.violate("Epochs must be > 0 (%d)", n)
			return
		}
		o.Epochs = n
	}
}

// WithPrimalStep sets the Adam learning rate s_p; s must be finite and > 0.
func WithPrimalStep(s float64) Option {
	return func(o *Options) {
		if !finite(s) || s <= 0 {
			o.violate("primal step must be finite and > 0 (%g)", s)
			return
		}
		o.Adam.StepSize = s
	}
}

// WithDualStep sets the ascent rate s_d of beta; s must be finite and > 0.
func WithDualStep(s float64) Option {
	return func(o *Options) {
		if !finite(s) || s <= 0 {
			o.violate("dual step must be finite and > 0 (%g)", s)
			return
		}
		o.DualStep = s
	}
}

// WithDecay sets the Adam decay rates; both must lie in [0, 1).
func WithDecay(coef1, coef2 float64) Option {
	return func(o *Options) {
		if !finite(coef1) || !finite(coef2) || coef1 < 0 || coef1 >= 1 || coef2 < 0 || coef2 >= 1 {
			o.violate("decay rates must lie in [0,1) (%g, %g)", coef1, coef2)
			return
		}
		o.Adam.Coef1, o.Adam.Coef2 = coef1, coef2
	}
}

// WithEpsilon sets the Adam denominator floor; eps must be finite and > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !finite(eps) || eps <= 0 {
			o.violate("epsilon must be finite and > 0 (%g)", eps)
			return
		}
		o.Adam.Eps = eps
	}
}

// WithStop sets the stopping Predicate; nil is a violation.
func WithStop(p Predicate) Option {
	return func(o *Options) {
		if p == nil {
			o.violate("stopping predicate is nil")
			return
		}
		o.Stop = p
	}
}

// WithSeed seeds the default RNG. Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand makes FindC draw from r. r must not be shared with another
// goroutine while FindC runs.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnEpoch registers a callback run after every epoch; returning an error
// stops FindC with that error.
func WithOnEpoch(fn func(EpochReport) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEpoch = fn
		}
	}
}

// Diagnostics are the three scalars fed to the stopping Predicate, plus the
// trace used by the dual step.
type Diagnostics struct {
	Err1  float64 // -mean of the r largest diagonal entries
	Err2  float64 // |mean| of the remaining f-r diagonal entries
	Err3  float64 // |beta|·|trace(C) - r|
	Trace float64 // trace(C) after projection
}

// EpochReport describes one finished epoch.
type EpochReport struct {
	Epoch int // 1-based
	Diagnostics
	Diagonal   []float64 // copy of diag(C) after projection
	BetaBefore float64
	BetaAfter  float64
	Stopped    bool // the Predicate fired this epoch
}

// Result is the outcome of FindC.
type Result struct {
	// C is the f×f selection matrix; every row j lies in Φ0 for index j.
	C *mat.Dense

	// Epochs is the number of epochs run, in [1, EPOCHS].
	Epochs int

	// Stopped reports whether the Predicate ended the run early.
	Stopped bool

	// Target is r as passed to FindC.
	Target int

	// Beta is the final dual variable.
	Beta float64

	// Penalty is the random tie-breaking vector p.
	Penalty []float64

	// Last holds the diagnostics of the final epoch.
	Last Diagnostics
}
