// Package noise implements the Profile value object and its validation.
package noise

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by profile construction.
var (
	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("noise: probability outside [0,1]")

	// ErrNegativeBias indicates a negative Pauli-bias ratio.
	ErrNegativeBias = errors.New("noise: bias ratio must be non-negative")

	// ErrNegativeScale indicates a negative scaling factor passed to Scaled.
	ErrNegativeScale = errors.New("noise: scale factor must be non-negative")
)

// defaultBias is the unbiased depolarizing ratio (Z as likely as X).
const defaultBias = 1.0

// Profile is an immutable set of per-operation error probabilities.
// One instance describes one experiment configuration; backends read it
// to inject noise, engines echo it in their aggregates for provenance.
type Profile struct {
	singleQubit float64
	twoQubit    float64
	measurement float64
	bias        float64
}

// Option adjusts optional Profile parameters at construction.
type Option func(*Profile)

// WithBias sets the Z:X likelihood ratio (1 = unbiased). Negative
// ratios are rejected by NewProfile with ErrNegativeBias.
func WithBias(ratio float64) Option {
	return func(p *Profile) {
		p.bias = ratio
	}
}

// NewProfile validates and builds a Profile.
//
// Parameters (all probabilities in [0,1]):
//   - single — single-qubit operation error probability.
//   - two    — two-qubit operation error probability.
//   - meas   — measurement flip probability.
//
// Returns a wrapped ErrInvalidProbability naming the offending field,
// or ErrNegativeBias for a negative bias ratio.
func NewProfile(single, two, meas float64, opts ...Option) (*Profile, error) {
	p := &Profile{
		singleQubit: single,
		twoQubit:    two,
		measurement: meas,
		bias:        defaultBias,
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"single-qubit", p.singleQubit},
		{"two-qubit", p.twoQubit},
		{"measurement", p.measurement},
	} {
		if f.v < 0 || f.v > 1 {
			return nil, fmt.Errorf("%w: %s probability %v", ErrInvalidProbability, f.name, f.v)
		}
	}
	if p.bias < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeBias, p.bias)
	}

	return p, nil
}

// Uniform builds the standard sweep profile for physical rate p:
// single-qubit = p, two-qubit = 3p, measurement = p, all clamped to 1.
func Uniform(p float64) (*Profile, error) {
	return NewProfile(clamp01(p), clamp01(3*p), clamp01(p))
}

// SingleQubit returns the single-qubit operation error probability.
func (p *Profile) SingleQubit() float64 { return p.singleQubit }

// TwoQubit returns the two-qubit operation error probability.
func (p *Profile) TwoQubit() float64 { return p.twoQubit }

// Measurement returns the measurement flip probability.
func (p *Profile) Measurement() float64 { return p.measurement }

// Bias returns the Z:X likelihood ratio (1 = unbiased).
func (p *Profile) Bias() float64 { return p.bias }

// Scaled returns a new Profile with every probability multiplied by f
// and clamped to 1; the bias ratio is preserved. Returns
// ErrNegativeScale for f < 0.
func (p *Profile) Scaled(f float64) (*Profile, error) {
	if f < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeScale, f)
	}

	return NewProfile(
		clamp01(p.singleQubit*f),
		clamp01(p.twoQubit*f),
		clamp01(p.measurement*f),
		WithBias(p.bias),
	)
}

// String renders the profile compactly for reports and error context.
func (p *Profile) String() string {
	return fmt.Sprintf("noise{1q=%g 2q=%g meas=%g bias=%g}",
		p.singleQubit, p.twoQubit, p.measurement, p.bias)
}

// clamp01 caps v at 1 (inputs are already non-negative by validation).
func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}

	return v
}
