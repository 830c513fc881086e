// Package code provides the declarative model of a CSS stabilizer
// quantum error-correcting code: its parity-check structure, stabilizer
// generators, logical operators, syndromes, and sparse Pauli error
// patterns.
//
// Overview:
//
//   - A Code is a purely declarative, immutable description of a
//     self-dual CSS-type block code: n physical qubits, k logical
//     qubits, a distance, ordered X-type and Z-type generator supports,
//     and logical X/Z operator supports. It performs no simulation.
//   - A Syndrome is the ordered bit vector of all stabilizer
//     measurement outcomes (X-sector generators first, then Z-sector).
//   - An ErrorPattern is a sparse qubit→Pauli mapping; its weight is
//     the number of affected qubits.
//
// Construction-time validation:
//
//	NewCode fails fast with a wrapped ErrMalformedCode when any code
//	invariant is violated: wrong generator count (must equal n−k),
//	out-of-range or duplicated qubit indices, non-commuting generators
//	(an X-type and a Z-type generator commute iff their supports
//	overlap on an even number of qubits), logical operators that do not
//	centralize the stabilizer group, or logical X/Z that fail to
//	anticommute.
//
// Derived structure:
//
//   - XChecksOn/ZChecksOn expose the parity-check incidence: which
//     generators of each sector touch a given qubit.
//   - SyndromeOf computes the syndrome any ErrorPattern would produce:
//     the X component of an error flips the Z-type checks containing
//     that qubit, the Z component flips the X-type checks, and Y flips
//     both.
//   - ZeroCodewords enumerates the GF(2) span of the X-generator
//     supports — exactly the computational-basis measurement outcomes
//     of an ideal logical |0⟩. IsZeroCodeword answers membership.
//
// Complexity:
//
//   - NewCode: O(g² · n) validation over g = n−k generators.
//   - SyndromeOf: O(weight · g) via the cached check incidence.
//   - ZeroCodewords: O(2^x · n) for x X-type generators, computed once
//     and cached; intended for small block codes.
//
// Errors (sentinel):
//
//   - ErrMalformedCode — any construction-time invariant violation.
//   - ErrWordLength    — a word passed to IsZeroCodeword has length ≠ n.
//
// Example usage:
//
//	c := code.Steane() // the built-in [[7,1,3]] instance
//	syn := c.SyndromeOf(code.ErrorPattern{2: code.PauliX})
//	fmt.Println(syn) // 000101 — X on qubit 2 flips Z-checks 0 and 2
package code
