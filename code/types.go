// Package code defines the core value types shared by every qeclab
// component: Pauli labels, syndromes, sparse error patterns, and the
// sentinel errors of the code model.
package code

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors returned by the code model.
var (
	// ErrMalformedCode indicates that a code specification violates a
	// construction-time invariant (generator count, commutation,
	// logical-operator structure, index ranges).
	ErrMalformedCode = errors.New("code: malformed code specification")

	// ErrWordLength indicates that a measurement word has a length
	// different from the code's physical qubit count.
	ErrWordLength = errors.New("code: word length does not match qubit count")
)

// Pauli labels a non-identity single-qubit Pauli operator.
// The zero value is reserved for "identity / no error" and never
// appears inside an ErrorPattern.
type Pauli uint8

const (
	// PauliX is a bit-flip error: it flips computational-basis
	// measurement outcomes and triggers Z-type stabilizer checks.
	PauliX Pauli = iota + 1

	// PauliY combines a bit flip and a phase flip; it triggers checks
	// in both sectors.
	PauliY

	// PauliZ is a phase-flip error: invisible to computational-basis
	// measurement of the data qubits, it triggers X-type checks.
	PauliZ
)

// String returns "X", "Y", or "Z" ("I" for the reserved zero value).
func (p Pauli) String() string {
	switch p {
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	default:
		return "I"
	}
}

// Valid reports whether p is one of the three non-identity Paulis.
func (p Pauli) Valid() bool { return p >= PauliX && p <= PauliZ }

// BitFlip reports whether p has an X component (X or Y), i.e. whether
// it flips a computational-basis measurement bit and the Z-type checks.
func (p Pauli) BitFlip() bool { return p == PauliX || p == PauliY }

// PhaseFlip reports whether p has a Z component (Z or Y), i.e. whether
// it triggers the X-type checks.
func (p Pauli) PhaseFlip() bool { return p == PauliZ || p == PauliY }

// Mul returns the product of two Pauli operators up to global phase:
// equal factors cancel to identity (the zero value), the identity is
// neutral, and two distinct non-identity factors yield the third.
func (p Pauli) Mul(q Pauli) Pauli {
	switch {
	case p == 0:
		return q
	case q == 0:
		return p
	case p == q:
		return 0
	default:
		// X·Y=Z, Y·Z=X, X·Z=Y (phases discarded): the three labels
		// XOR-compose under the encoding X=1, Y=2, Z=3.
		return p ^ q
	}
}

// Syndrome is the ordered bit vector of stabilizer measurement
// outcomes, one byte (0 or 1) per generator, X-sector generators first.
// A Syndrome is created fresh per measurement round and never mutated.
type Syndrome []byte

// IsZero reports whether every bit is clear (no detected error).
func (s Syndrome) IsZero() bool {
	for _, b := range s {
		if b != 0 {
			return false
		}
	}

	return true
}

// Weight returns the number of set bits (triggered checks).
func (s Syndrome) Weight() int {
	w := 0
	for _, b := range s {
		if b != 0 {
			w++
		}
	}

	return w
}

// Key packs the syndrome into a uint64 for O(1) table lookup
// (bit i of the key ↔ generator i). Codes are limited to 64 generators
// by construction, so the packing is always exact.
func (s Syndrome) Key() uint64 {
	var k uint64
	for i, b := range s {
		if b != 0 {
			k |= 1 << uint(i)
		}
	}

	return k
}

// Clone returns an independent copy of s.
func (s Syndrome) Clone() Syndrome {
	c := make(Syndrome, len(s))
	copy(c, s)

	return c
}

// String renders the syndrome as a bit string, generator 0 leftmost.
func (s Syndrome) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, b := range s {
		if b != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// ErrorPattern is a sparse mapping from qubit index to the Pauli error
// acting on it. The empty pattern is the identity (no error).
type ErrorPattern map[int]Pauli

// Weight returns the number of affected qubits.
func (e ErrorPattern) Weight() int { return len(e) }

// IsIdentity reports whether the pattern affects no qubits.
func (e ErrorPattern) IsIdentity() bool { return len(e) == 0 }

// Clone returns an independent copy of e.
func (e ErrorPattern) Clone() ErrorPattern {
	c := make(ErrorPattern, len(e))
	for q, p := range e {
		c[q] = p
	}

	return c
}

// Compose returns the product e·other up to global phase: per-qubit
// Pauli factors multiply via Pauli.Mul, and qubits whose factors cancel
// (same Pauli applied twice) drop out of the result entirely. Neither
// receiver nor argument is modified.
func (e ErrorPattern) Compose(other ErrorPattern) ErrorPattern {
	out := e.Clone()
	for q, p := range other {
		if m := out[q].Mul(p); m == 0 {
			delete(out, q)
		} else {
			out[q] = m
		}
	}

	return out
}

// String renders the pattern deterministically as "X2 Z5 ..." sorted by
// qubit index, or "I" for the identity.
func (e ErrorPattern) String() string {
	if len(e) == 0 {
		return "I"
	}

	qubits := make([]int, 0, len(e))
	for q := range e {
		qubits = append(qubits, q)
	}
	sort.Ints(qubits)

	parts := make([]string, 0, len(qubits))
	for _, q := range qubits {
		parts = append(parts, e[q].String()+strconv.Itoa(q))
	}

	return strings.Join(parts, " ")
}

// Support is a sorted set of qubit indices acted on by one operator
// (a stabilizer generator or a logical operator) with a single Pauli
// type.
type Support []int
