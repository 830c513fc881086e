// Package decoder translates observed syndromes into best-guess Pauli
// corrections via a direct-lookup table built from a stabilizer code
// model.
//
// Build phase:
//
//	New enumerates every single-qubit error of every Pauli type — 3n
//	candidate patterns for an n-qubit code (21 for the Steane code) —
//	computes the syndrome each would produce, and records the
//	syndrome → error association marked Exact. Together with the
//	trivial all-zero syndrome this yields 3n+1 addressable entries.
//
//	If two distinct single-qubit errors map to the same syndrome (or a
//	weight-1 error maps to the zero syndrome), the code cannot
//	distinguish them and construction fails with ErrDegenerateCode.
//	A valid distance-3 code guarantees this cannot happen.
//
// Lookup:
//
//	Decode is O(1) via the packed-syndrome key. The zero syndrome
//	decodes to the identity pattern (Exact). A syndrome absent from the
//	table — possible for weight ≥ 2 errors — returns an empty pattern
//	marked Unknown: "detected but not uniquely decodable". The decoder
//	never guesses an arbitrary weight-1 correction in that case, since
//	a wrong guess can introduce a new error; the caller's post-selection
//	policy decides how Unknown is treated.
//
// Complexity:
//
//   - Build:  O(n·g) over g generators, one-time.
//   - Decode: O(1) table lookup plus an O(g) length check.
//
// Errors (sentinel):
//
//   - ErrNilCode        — New received a nil code model.
//   - ErrDegenerateCode — two weight-1 errors share a syndrome.
//   - ErrSyndromeLength — Decode received a syndrome of the wrong length.
//
// Known limitation: weight ≥ 2 errors intentionally fall through to
// Unknown; this package does not implement a general-distance decoder.
//
// Example usage:
//
//	dec, err := decoder.New(code.Steane())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	corr, _ := dec.Decode(syn)
//	if corr.Confidence == decoder.Exact {
//	    // apply corr.Pattern
//	}
package decoder
