package decoder

import (
	"fmt"

	"github.com/katalvlaran/qeclab/code"
)

// Decoder maps an observed syndrome to a best-guess correction through
// a fixed-size direct-lookup table. Built once from a code model and
// immutable (and therefore safe for concurrent use) thereafter.
type Decoder struct {
	c     *code.Code
	gens  int
	table map[uint64]Entry
}

// New builds the weight-1 lookup table for c.
//
// Procedure:
//  1. For every qubit q and every Pauli type p, form the single-qubit
//     pattern {q: p} and compute its syndrome against the code model.
//  2. A zero syndrome means the error is undetectable — degenerate with
//     the identity — and construction fails with ErrDegenerateCode.
//  3. A syndrome already present in the table means two distinct
//     weight-1 errors are indistinguishable: ErrDegenerateCode, with
//     both colliding patterns named for reproduction.
//
// Complexity: O(n·g) build time, O(n) table entries.
func New(c *code.Code) (*Decoder, error) {
	if c == nil {
		return nil, ErrNilCode
	}

	d := &Decoder{
		c:     c,
		gens:  c.Generators(),
		table: make(map[uint64]Entry, 3*c.N()),
	}

	var q int
	for q = 0; q < c.N(); q++ {
		for _, p := range []code.Pauli{code.PauliX, code.PauliY, code.PauliZ} {
			e := code.ErrorPattern{q: p}
			syn := c.SyndromeOf(e)

			if syn.IsZero() {
				return nil, fmt.Errorf("%w: %s is undetectable (zero syndrome)", ErrDegenerateCode, e)
			}
			if prev, dup := d.table[syn.Key()]; dup {
				return nil, fmt.Errorf("%w: %s and %s both produce syndrome %s",
					ErrDegenerateCode, prev.Error, e, syn)
			}

			d.table[syn.Key()] = Entry{Syndrome: syn, Error: e}
		}
	}

	return d, nil
}

// Code returns the model the decoder was built from.
func (d *Decoder) Code() *code.Code { return d.c }

// Decode returns the correction for an observed syndrome.
//
// Results:
//   - zero syndrome  → identity pattern, Exact;
//   - table hit      → the unique weight-1 error, Exact;
//   - table miss     → identity pattern, Unknown (never guess).
//
// Returns ErrSyndromeLength if len(s) differs from the generator count.
// Complexity: O(1) after the O(g) length/zero scan.
func (d *Decoder) Decode(s code.Syndrome) (Correction, error) {
	if len(s) != d.gens {
		return Correction{}, fmt.Errorf("%w: got %d bits, code has %d generators",
			ErrSyndromeLength, len(s), d.gens)
	}

	if s.IsZero() {
		return Correction{Pattern: code.ErrorPattern{}, Confidence: Exact}, nil
	}

	if entry, ok := d.table[s.Key()]; ok {
		return Correction{Pattern: entry.Error.Clone(), Confidence: Exact}, nil
	}

	return Correction{Pattern: code.ErrorPattern{}, Confidence: Unknown}, nil
}

// Table returns a snapshot of all non-trivial table entries in
// unspecified order. Intended for diagnostics and reporting only.
func (d *Decoder) Table() []Entry {
	out := make([]Entry, 0, len(d.table))
	for _, e := range d.table {
		out = append(out, Entry{Syndrome: e.Syndrome.Clone(), Error: e.Error.Clone()})
	}

	return out
}
