// Package scaling characterizes how logical error probability scales
// with physical error probability: it sweeps a sequence of physical
// rates through a sampling backend and the trial engine, collects one
// dataset point per rate, and fits a power law L = a·Pᵇ.
//
// Sweep:
//
//	For each caller-supplied rate, the analyzer derives a noise profile
//	(noise.Uniform by default, overridable via WithProfileFor),
//	requests a batch of shots from the Sampler capability, judges the
//	batch, and records (physical rate, logical rate, retained fraction,
//	shot count). Sweep points are statistically independent; with
//	WithParallelSweep they are evaluated concurrently, and the final
//	dataset always preserves the caller's rate ordering either way.
//
// Power-law fit:
//
//	Ordinary least squares on (ln P, ln L) via gonum's
//	stat.LinearRegression: the slope is the exponent b, and
//	a = exp(intercept). The residual sum of squares in log-log space is
//	reported as a fit-quality indicator. Points with a non-positive
//	logical rate carry no log-space information and are excluded from
//	the regression; if fewer than two points with distinct positive
//	physical rates remain, Fit fails with ErrFitUnderdetermined rather
//	than extrapolating a misleading curve through zero.
//
// Interpretation (reporting convention, not a code invariant): b < 1
// at an operating point indicates net error suppression relative to
// linear scaling.
//
// Errors (sentinel):
//
//   - ErrNilSampler         — New received a nil backend.
//   - ErrNilDecoder         — New received a nil decoder.
//   - ErrNoRates            — Sweep received an empty rate list.
//   - ErrFitUnderdetermined — insufficient usable points for the fit.
//
// Backend failures surface as a single wrapped error naming the
// physical rate of the affected batch; the analyzer never retries
// (backend I/O is the collaborator's responsibility).
//
// Example usage:
//
//	an, err := scaling.New(backend, dec,
//	    scaling.WithShots(5000),
//	    scaling.WithRounds(3),
//	    scaling.WithPolicy(trial.CorrectAndKeep),
//	)
//	ds, fit, err := an.Analyze([]float64{0.001, 0.005, 0.01, 0.02, 0.05})
//	fmt.Printf("L ≈ %.3f · P^%.3f\n", fit.A, fit.B)
package scaling
