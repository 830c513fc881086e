// Package pauliframe is the in-repo reference sampling backend: a
// purely classical Pauli-frame simulator producing measurement samples
// for logical-|0⟩ memory experiments on a CSS stabilizer code.
//
// Overview:
//
//	Stabilizer memory experiments under Pauli noise never require
//	amplitude simulation: it suffices to track which X/Z error
//	components have accumulated on each data qubit (the "Pauli frame")
//	and read syndromes and data bits off that frame. Per shot:
//
//	 1. Draw an ideal codeword uniformly from the code's logical-|0⟩
//	    codeword set — the measurement statistics of the ideal state.
//	 2. Per round: depolarize each data qubit with the single-qubit
//	    probability (the Pauli type drawn with the profile's Z:X bias,
//	    Y weighted as the geometric middle); during syndrome
//	    extraction, each support CX propagates an error onto the
//	    touched data qubit with the two-qubit probability; read the
//	    syndrome of the accumulated frame; flip each ancilla bit with
//	    the measurement probability. Frame errors persist across
//	    rounds.
//	 3. Data bits = codeword XOR the accumulated bit-flip frame.
//
// Simplification: a round's two-qubit injections land before its
// syndrome is read, rather than interleaved mid-extraction. This keeps
// each round's syndrome a pure function of the frame; the coarse
// per-CX rate still exercises the two-qubit noise channel.
//
// Determinism:
//
//	WithSeed(s) fixes the batch exactly (seed==0 means a fixed default
//	seed, never a time-based one). Each shot samples from its own
//	SplitMix64-derived stream, so a batch is reproducible and
//	independent of evaluation order.
//
// Simulator satisfies the scaling.Sampler capability and is the
// backend used by the package examples and end-to-end tests. Real
// experiments would substitute a stabilizer-circuit simulator or a
// hardware bridge behind the same interface.
//
// Errors (sentinel):
//
//   - ErrNilCode    — New received a nil code model.
//   - ErrNilProfile — Sample received a nil noise profile.
//   - ErrBadRounds  — Sample received a non-positive round count.
//   - ErrBadShots   — Sample received a negative shot count.
package pauliframe
