// Package trial defines the sample, policy, result, and aggregate types
// of the trial engine, plus its sentinel errors and options.
package trial

import (
	"errors"

	"github.com/katalvlaran/qeclab/code"
	"github.com/katalvlaran/qeclab/noise"
)

// Sentinel errors returned by the trial engine.
var (
	// ErrNilDecoder indicates that New was called with a nil decoder.
	ErrNilDecoder = errors.New("trial: decoder is nil")

	// ErrMalformedSample indicates a shot whose bit strings do not
	// match the code dimensions (or carry non-bit values). The whole
	// batch fails; aggregate state is left untouched.
	ErrMalformedSample = errors.New("trial: malformed sample")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("trial: worker count must be positive")
)

// Shot is one raw measurement sample from the circuit backend:
// the data-qubit readout (length n, values 0/1) and one ancilla
// bit-string per syndrome-extraction round (each of generator-count
// length). Bit i of a round corresponds to stabilizer generator i.
type Shot struct {
	Data    []byte
	Ancilla [][]byte
}

// Rounds returns the number of syndrome-extraction rounds in the shot.
func (s Shot) Rounds() int { return len(s.Ancilla) }

// Policy selects how non-trivial syndromes are treated.
type Policy uint8

const (
	// KeepAll never discards a shot; the raw data word is judged as-is.
	KeepAll Policy = iota

	// RejectNontrivial discards any shot (terminating multi-round
	// trials early) whose observed syndrome is non-zero.
	RejectNontrivial

	// CorrectAndKeep folds Exact corrections into the cumulative Pauli
	// frame and discards shots whose syndrome decodes to Unknown.
	CorrectAndKeep
)

// String names the policy for reports.
func (p Policy) String() string {
	switch p {
	case RejectNontrivial:
		return "reject-nontrivial-syndrome"
	case CorrectAndKeep:
		return "correct-and-keep"
	default:
		return "keep-all"
	}
}

// Outcome is the logical judgment of one shot.
type Outcome uint8

const (
	// Indeterminate marks a shot discarded by the post-selection policy.
	Indeterminate Outcome = iota

	// Correct marks a retained shot whose (possibly corrected) data
	// word is a valid logical-|0⟩ codeword.
	Correct

	// Incorrect marks a retained shot whose data word is not a valid
	// codeword: a logical error.
	Incorrect
)

// String names the outcome for reports.
func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "indeterminate"
	}
}

// Result is the per-shot record: the observed syndromes (one per round
// actually processed), the cumulative correction, the acceptance flag,
// and the final judgment. Created once per shot, never mutated.
type Result struct {
	Syndromes  []code.Syndrome
	Correction code.ErrorPattern
	Accepted   bool
	Outcome    Outcome
}

// BatchStats aggregates one batch of judged shots. Workers accumulate
// into private instances merged via Merge; no concurrent mutation.
type BatchStats struct {
	Correct       int
	Incorrect     int
	Indeterminate int
	Total         int

	// RoundsObserved counts every round whose syndrome was derived,
	// including rounds of shots later discarded; NontrivialRounds
	// counts those with a non-zero syndrome.
	RoundsObserved   int
	NontrivialRounds int

	// Profile echoes the engine's reference noise profile (may be nil);
	// carried for provenance only.
	Profile *noise.Profile
}

// LogicalErrorRate returns incorrect / (correct + incorrect), the
// post-selected logical error rate. Zero when no shots were retained.
func (b BatchStats) LogicalErrorRate() float64 {
	retained := b.Correct + b.Incorrect
	if retained == 0 {
		return 0
	}

	return float64(b.Incorrect) / float64(retained)
}

// RetainedFraction returns (correct + incorrect) / total, the share of
// shots surviving post-selection. Zero for an empty batch.
func (b BatchStats) RetainedFraction() float64 {
	if b.Total == 0 {
		return 0
	}

	return float64(b.Correct+b.Incorrect) / float64(b.Total)
}

// Merge folds other into b and returns the sum (profile kept from b).
func (b BatchStats) Merge(other BatchStats) BatchStats {
	b.Correct += other.Correct
	b.Incorrect += other.Incorrect
	b.Indeterminate += other.Indeterminate
	b.Total += other.Total
	b.RoundsObserved += other.RoundsObserved
	b.NontrivialRounds += other.NontrivialRounds

	return b
}

// Options configures the trial engine.
//
// Policy  – post-selection policy (default KeepAll).
// Workers – goroutines judging a batch (default 1, i.e. sequential).
// Profile – reference noise profile echoed in BatchStats (may be nil).
type Options struct {
	Policy  Policy
	Workers int
	Profile *noise.Profile
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// WithPolicy selects the post-selection policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithWorkers sets the number of parallel workers for Run.
// Must be positive; non-positive values panic with ErrBadWorkers.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = w
	}
}

// WithProfile attaches a reference noise profile to the engine's
// aggregates. Purely bookkeeping; the engine never reads probabilities.
func WithProfile(p *noise.Profile) Option {
	return func(o *Options) {
		o.Profile = p
	}
}

// DefaultOptions returns the engine defaults: KeepAll policy,
// sequential processing, no reference profile.
func DefaultOptions() Options {
	return Options{
		Policy:  KeepAll,
		Workers: 1,
		Profile: nil,
	}
}
