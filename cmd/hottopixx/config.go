// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/hottopixx/generator"
	"github.com/katalvlaran/hottopixx/internal/rng"
	"github.com/katalvlaran/hottopixx/solver"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"
)

// Configuration keys. Flags, env vars (HOTTOPIXX_PRIMAL_STEP, ...) and the
// YAML file all use these names.
const (
	keyRows       = "rows"
	keyCols       = "cols"
	keyTarget     = "target"
	keyEpochs     = "epochs"
	keySeed       = "seed"
	keyPrimalStep = "primal-step"
	keyDualStep   = "dual-step"
	keyCoef1      = "coef1"
	keyCoef2      = "coef2"
	keyEps        = "eps"
	keyStop       = "stop"
	keyGap        = "gap"
	keySource     = "source"
	keyAnchors    = "anchors"
	keyInput      = "input"
	keyOutput     = "output"
)

// Stopping strategies selectable by name.
const (
	stopDefault = "default"
	stopNever   = "never"
	stopGap     = "gap"
)

// Input sources for generated data.
const (
	sourceFixed = "fixed"
	sourceAll   = "all"
)

// streamData is the rng.Derive stream id of the data generator, kept apart
// from the solver's own stream.
const streamData = 1

var errBadConfig = errors.New("hottopixx: invalid configuration")

// runConfig is the decoded configuration of one invocation.
type runConfig struct {
	Rows       int         `mapstructure:"rows"`
	Cols       int         `mapstructure:"cols"`
	Target     int         `mapstructure:"target"`
	Epochs     int         `mapstructure:"epochs"`
	Seed       int64       `mapstructure:"seed"`
	PrimalStep float64     `mapstructure:"primal-step"`
	DualStep   float64     `mapstructure:"dual-step"`
	Coef1      float64     `mapstructure:"coef1"`
	Coef2      float64     `mapstructure:"coef2"`
	Eps        float64     `mapstructure:"eps"`
	Stop       string      `mapstructure:"stop"`
	Gap        float64     `mapstructure:"gap"`
	Source     string      `mapstructure:"source"`
	Anchors    [][]float64 `mapstructure:"anchors"`
	Input      string      `mapstructure:"input"`
	Output     string      `mapstructure:"output"`
}

// demoAnchors are the three boundary rows of the reference demo.
func demoAnchors() [][]float64 {
	return [][]float64{
		{.1, .1, .8, 0},
		{.1, .8, 0, .1},
		{.8, .1, 0, .1},
	}
}

// addDataFlags registers the flags that shape the data matrix.
func addDataFlags(fs *pflag.FlagSet) {
	fs.Int(keyRows, 10, "Number of rows f of X")
	fs.Int(keyCols, 4, "Number of columns n of X")
	fs.Int64(keySeed, 0, "RNG seed (0 means 1)")
	fs.String(keySource, sourceFixed, "Generated data: fixed (anchors + mixtures) or all (uniform rows)")
	fs.String(keyOutput, "", "Write the YAML result to this file instead of stdout")
}

// addSolverFlags registers the solver flags on top of the data flags.
func addSolverFlags(fs *pflag.FlagSet) {
	addDataFlags(fs)
	fs.Int(keyTarget, 2, "Number r of boundary rows to select")
	fs.Int(keyEpochs, 30, "Maximum number of epochs")
	fs.Float64(keyPrimalStep, 0.01, "Adam learning rate for C")
	fs.Float64(keyDualStep, solver.DefaultDualStep, "Ascent rate of the trace multiplier")
	fs.Float64(keyCoef1, 0.9, "Adam first-moment decay")
	fs.Float64(keyCoef2, 0.999, "Adam second-moment decay")
	fs.Float64(keyEps, 1e-8, "Adam denominator floor")
	fs.String(keyStop, stopDefault, "Stopping rule: default, never or gap")
	fs.Float64(keyGap, solver.DefaultGap, "Threshold of the gap stopping rule")
	fs.String(keyInput, "", "Read X from this YAML file instead of generating it")
}

// loadConfig merges defaults, the optional config file, HOTTOPIXX_* env vars
// and the flags in fs into a runConfig.
func loadConfig(fs *pflag.FlagSet, path string) (runConfig, error) {
	v := viper.New()
	v.SetDefault(keyAnchors, demoAnchors())
	v.SetEnvPrefix("HOTTOPIXX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return runConfig{}, fmt.Errorf("hottopixx: bind flags: %w", err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return runConfig{}, fmt.Errorf("hottopixx: read config %s: %w", path, err)
		}
	}

	var cfg runConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return runConfig{}, fmt.Errorf("hottopixx: decode config: %w", err)
	}
	cfg.Stop = strings.ToLower(strings.TrimSpace(cfg.Stop))
	cfg.Source = strings.ToLower(strings.TrimSpace(cfg.Source))
	if cfg.Stop == "" {
		cfg.Stop = stopDefault
	}
	if cfg.Source == "" {
		cfg.Source = sourceFixed
	}

	return cfg, nil
}

// predicate maps the configured stop name onto a solver.Predicate.
func (c runConfig) predicate() (solver.Predicate, error) {
	switch c.Stop {
	case stopDefault:
		return solver.DefaultStop, nil
	case stopNever:
		return solver.NeverStop, nil
	case stopGap:
		return solver.GapAbove(c.Gap), nil
	default:
		return nil, fmt.Errorf("%w: unknown stop rule %q", errBadConfig, c.Stop)
	}
}

// dataSource maps the configured source name onto a generator.Source.
func (c runConfig) dataSource() (generator.Source, error) {
	switch c.Source {
	case sourceAll:
		return generator.GenerateAll{}, nil
	case sourceFixed:
		anchors, err := denseFromRows(c.Anchors)
		if err != nil {
			return nil, fmt.Errorf("anchors: %w", err)
		}
		return generator.ExtendFixed{Anchors: anchors}, nil
	default:
		return nil, fmt.Errorf("%w: unknown source %q", errBadConfig, c.Source)
	}
}

// solverOptions turns the configuration into FindC options. Range checks
// are left to the solver.
func (c runConfig) solverOptions() ([]solver.Option, error) {
	stop, err := c.predicate()
	if err != nil {
		return nil, err
	}
	return []solver.Option{
		solver.WithEpochs(c.Epochs),
		solver.WithSeed(c.Seed),
		solver.WithPrimalStep(c.PrimalStep),
		solver.WithDualStep(c.DualStep),
		solver.WithDecay(c.Coef1, c.Coef2),
		solver.WithEpsilon(c.Eps),
		solver.WithStop(stop),
	}, nil
}

// dataRand is the generator's stream, derived from the seed so the solver's
// stream starts fresh.
func (c runConfig) dataRand() *rand.Rand {
	return rng.Derive(rng.FromSeed(c.Seed), streamData)
}

// loadData returns X: read from c.Input when set, generated otherwise.
func (c runConfig) loadData() (*mat.Dense, error) {
	if c.Input != "" {
		return readMatrixFile(c.Input)
	}
	src, err := c.dataSource()
	if err != nil {
		return nil, err
	}
	return generator.Generate(c.Rows, c.Cols, src, c.dataRand())
}
