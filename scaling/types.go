// Package scaling defines the sampler capability, dataset and fit
// types, sentinel errors, and analyzer options.
package scaling

import (
	"errors"

	"github.com/katalvlaran/qeclab/noise"
	"github.com/katalvlaran/qeclab/trial"
)

// Sentinel errors returned by the analyzer.
var (
	// ErrNilSampler indicates that New was called with a nil backend.
	ErrNilSampler = errors.New("scaling: sampler is nil")

	// ErrNilDecoder indicates that New was called with a nil decoder.
	ErrNilDecoder = errors.New("scaling: decoder is nil")

	// ErrNoRates indicates that Sweep received an empty rate list.
	ErrNoRates = errors.New("scaling: at least one physical rate is required")

	// ErrBadShots indicates a non-positive shot count option.
	ErrBadShots = errors.New("scaling: shot count must be positive")

	// ErrBadRounds indicates a non-positive round count option.
	ErrBadRounds = errors.New("scaling: round count must be positive")

	// ErrFitUnderdetermined indicates that fewer than two usable points
	// (positive logical rate, distinct positive physical rates) exist,
	// so no power law can be fitted honestly.
	ErrFitUnderdetermined = errors.New("scaling: fit underdetermined, need two distinct points with positive logical rates")
)

// Sampler is the capability interface of the external circuit backend:
// given a noise profile, a round count, and a shot count, produce a
// full batch of measurement samples. Any concrete backend — stabilizer
// simulator, state-vector simulator, hardware bridge, canned data —
// can satisfy it; pauliframe.Simulator is the in-repo reference.
//
// The call is synchronous and must return a complete batch: the
// analyzer never decodes a partial batch.
type Sampler interface {
	Sample(p *noise.Profile, rounds, shots int) ([]trial.Shot, error)
}

// Point is one sweep measurement: the configured physical rate, the
// observed post-selected logical error rate, the retained fraction,
// and the shot count behind the estimate.
type Point struct {
	PhysicalRate     float64
	LogicalRate      float64
	RetainedFraction float64
	Shots            int
}

// Dataset is the ordered sweep result; the order matches the rate
// sequence the caller supplied to Sweep.
type Dataset []Point

// PowerLawFit is the fitted model L = A · P^B.
//
// Residual is the residual sum of squares in (ln P, ln L) space, and
// Points is the number of sweep points that actually entered the
// regression (non-positive logical rates are excluded).
type PowerLawFit struct {
	A        float64
	B        float64
	Residual float64
	Points   int
}

// ProfileFor derives the noise profile for one physical rate.
type ProfileFor func(rate float64) (*noise.Profile, error)

// Options configures the analyzer.
//
// Shots      – shots requested per sweep point (default 1000).
// Rounds     – syndrome-extraction rounds per shot (default 1).
// Policy     – trial post-selection policy (default KeepAll).
// Workers    – trial-engine workers per batch (default 1).
// ProfileFor – rate → profile derivation (default noise.Uniform).
// Parallel   – evaluate sweep points concurrently (default false).
type Options struct {
	Shots      int
	Rounds     int
	Policy     trial.Policy
	Workers    int
	ProfileFor ProfileFor
	Parallel   bool
}

// Option is a functional option for configuring the analyzer.
type Option func(*Options)

// WithShots sets the per-point shot count. Must be positive;
// non-positive values panic with ErrBadShots.
func WithShots(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadShots.Error())
		}
		o.Shots = n
	}
}

// WithRounds sets the syndrome-extraction rounds per shot.
// Must be positive; non-positive values panic with ErrBadRounds.
func WithRounds(r int) Option {
	return func(o *Options) {
		if r < 1 {
			panic(ErrBadRounds.Error())
		}
		o.Rounds = r
	}
}

// WithPolicy selects the trial post-selection policy for every point.
func WithPolicy(p trial.Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithWorkers sets the trial-engine worker count used per batch.
// Validation is delegated to trial.WithWorkers at engine construction.
func WithWorkers(w int) Option {
	return func(o *Options) {
		o.Workers = w
	}
}

// WithProfileFor overrides how a physical rate maps to a noise profile.
func WithProfileFor(f ProfileFor) Option {
	return func(o *Options) {
		o.ProfileFor = f
	}
}

// WithParallelSweep evaluates sweep points concurrently. The returned
// dataset still follows the caller-supplied rate order.
func WithParallelSweep() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// DefaultOptions returns the analyzer defaults: 1000 shots, 1 round,
// keep-all policy, sequential evaluation, noise.Uniform profiles.
func DefaultOptions() Options {
	return Options{
		Shots:      1000,
		Rounds:     1,
		Policy:     trial.KeepAll,
		Workers:    1,
		ProfileFor: noise.Uniform,
		Parallel:   false,
	}
}
