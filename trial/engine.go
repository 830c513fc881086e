package trial

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/qeclab/code"
	"github.com/katalvlaran/qeclab/decoder"
)

// Engine judges batches of measurement shots against a fixed decoder
// and policy. Immutable after New and safe for concurrent use; each
// shot's derivation is a pure function of the shot plus the decoder.
type Engine struct {
	dec  *decoder.Decoder
	c    *code.Code
	opts Options
}

// New builds a trial engine around dec. Returns ErrNilDecoder if dec is
// nil; option constructors panic on statically invalid arguments.
func New(dec *decoder.Decoder, opts ...Option) (*Engine, error) {
	if dec == nil {
		return nil, ErrNilDecoder
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		dec:  dec,
		c:    dec.Code(),
		opts: cfg,
	}, nil
}

// Policy returns the engine's post-selection policy.
func (e *Engine) Policy() Policy { return e.opts.Policy }

// Run judges a batch of shots.
//
// Procedure:
//  1. Validate every shot up front: data length n, at least one round,
//     every round of generator-count length, all values 0/1. Any
//     violation fails the whole batch with a wrapped ErrMalformedSample
//     naming the shot index — before any aggregation, so prior state is
//     never corrupted by a partial batch.
//  2. Partition the batch into contiguous chunks, one per worker; each
//     worker judges its chunk into a private BatchStats and writes
//     results by index (no shared mutable state).
//  3. Merge the per-partition tallies in one reduction.
//
// Returns the aggregate stats and the per-shot results in input order.
// An empty batch yields zero stats and no error.
//
// Complexity: O(shots · rounds · g) work, O(shots) space.
func (e *Engine) Run(shots []Shot) (BatchStats, []Result, error) {
	// 1) Fail-fast validation pass.
	for i := range shots {
		if err := e.validate(shots[i]); err != nil {
			return BatchStats{}, nil, fmt.Errorf("%w (shot %d)", err, i)
		}
	}

	results := make([]Result, len(shots))
	stats := BatchStats{Profile: e.opts.Profile}
	if len(shots) == 0 {
		return stats, results, nil
	}

	// 2) Partition across workers. A worker count above the shot count
	//    degenerates to one shot per worker.
	workers := e.opts.Workers
	if workers > len(shots) {
		workers = len(shots)
	}

	partStats := make([]BatchStats, workers)
	chunk := (len(shots) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(shots) {
			hi = len(shots)
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			local := BatchStats{}
			for i := lo; i < hi; i++ {
				res := e.judge(shots[i])
				results[i] = res
				tally(&local, res)
			}
			partStats[w] = local
		}(w, lo, hi)
	}
	wg.Wait()

	// 3) Single-point reduction preserving partition order.
	for _, ps := range partStats {
		stats = stats.Merge(ps)
	}

	return stats, results, nil
}

// validate checks one shot's dimensions and bit values.
func (e *Engine) validate(s Shot) error {
	if len(s.Data) != e.c.N() {
		return fmt.Errorf("%w: data length %d, code has n=%d", ErrMalformedSample, len(s.Data), e.c.N())
	}
	if len(s.Ancilla) == 0 {
		return fmt.Errorf("%w: shot carries no syndrome rounds", ErrMalformedSample)
	}
	for _, b := range s.Data {
		if b > 1 {
			return fmt.Errorf("%w: data carries non-bit value %d", ErrMalformedSample, b)
		}
	}
	for r, row := range s.Ancilla {
		if len(row) != e.c.Generators() {
			return fmt.Errorf("%w: round %d has %d ancilla bits, code has %d generators",
				ErrMalformedSample, r, len(row), e.c.Generators())
		}
		for _, b := range row {
			if b > 1 {
				return fmt.Errorf("%w: round %d carries non-bit value %d", ErrMalformedSample, r, b)
			}
		}
	}

	return nil
}

// judge runs the per-shot procedure: syndrome per round, decode,
// policy, cumulative correction, final logical judgment.
func (e *Engine) judge(s Shot) Result {
	res := Result{
		Syndromes:  make([]code.Syndrome, 0, len(s.Ancilla)),
		Correction: code.ErrorPattern{},
		Accepted:   true,
	}

	for _, row := range s.Ancilla {
		// 1) Ancilla bit i is generator i's outcome, bit for bit.
		syn := code.Syndrome(append([]byte(nil), row...))
		res.Syndromes = append(res.Syndromes, syn)

		// 2) Decode. Lengths were validated up front, so a decoder
		//    error here is impossible; discard it accordingly.
		corr, _ := e.dec.Decode(syn)

		// 3) Policy.
		switch e.opts.Policy {
		case RejectNontrivial:
			if !syn.IsZero() {
				res.Accepted = false
			}
		case CorrectAndKeep:
			if corr.Confidence == decoder.Exact {
				// Corrections compose across rounds; identical Paulis
				// on one qubit cancel.
				res.Correction = res.Correction.Compose(corr.Pattern)
			} else {
				res.Accepted = false
			}
		case KeepAll:
			// Never discard, never correct: the raw-word baseline.
		}

		// A round-level discard ends the trial early; the rounds seen
		// so far (this one included) still count toward syndrome
		// statistics via res.Syndromes.
		if !res.Accepted {
			break
		}
	}

	if !res.Accepted {
		res.Outcome = Indeterminate

		return res
	}

	// 4) Judge once, after the last round, against the cumulative
	//    correction: X/Y components flip computational-basis bits.
	word := append([]byte(nil), s.Data...)
	for q, p := range res.Correction {
		if p.BitFlip() {
			word[q] ^= 1
		}
	}

	ok, _ := e.c.IsZeroCodeword(word) // length validated up front
	if ok {
		res.Outcome = Correct
	} else {
		res.Outcome = Incorrect
	}

	return res
}

// tally folds one result into a private partition aggregate.
func tally(b *BatchStats, r Result) {
	b.Total++
	switch r.Outcome {
	case Correct:
		b.Correct++
	case Incorrect:
		b.Incorrect++
	default:
		b.Indeterminate++
	}
	b.RoundsObserved += len(r.Syndromes)
	for _, syn := range r.Syndromes {
		if !syn.IsZero() {
			b.NontrivialRounds++
		}
	}
}
