// Package noise defines validated noise profiles: the per-operation
// error probabilities a circuit backend consumes to parameterize its
// noise injection, and the trial/scaling layers carry for bookkeeping.
//
// A Profile is deliberately the simplest component in qeclab — a pure
// configuration value object. It holds four named parameters:
//
//   - SingleQubit — depolarizing probability per single-qubit operation.
//   - TwoQubit    — depolarizing probability per two-qubit operation
//     (typically several× the single-qubit rate).
//   - Measurement — probability of a flipped measurement outcome.
//   - Bias        — Z:X likelihood ratio for biased noise
//     (1 = unbiased depolarizing; 10 mimics dephasing-dominant
//     hardware).
//
// Construction fails with ErrInvalidProbability if any probability is
// outside [0,1], or ErrNegativeBias if the bias ratio is negative.
// Profiles are immutable once constructed; derive variants via Scaled.
//
// Conveniences:
//
//   - Uniform(p) — the common sweep shape: single=p, two=3p, meas=p,
//     clamped to 1.
//   - Profile.Scaled(f) — every probability multiplied by f and
//     clamped, bias preserved.
//
// Example usage:
//
//	p, err := noise.NewProfile(0.001, 0.003, 0.005, noise.WithBias(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	harsh, _ := p.Scaled(5)
package noise
