// Package trial converts raw per-shot measurement samples into judged
// logical outcomes, optionally across multiple sequential rounds of
// syndrome extraction, under a caller-selected post-selection policy.
//
// Per-shot procedure (single round):
//
//  1. Derive the observed Syndrome from the ancilla bits: ancilla bit i
//     is the outcome of stabilizer generator i, bit for bit.
//  2. Decode via the lookup decoder.
//  3. Apply the post-selection policy:
//     – KeepAll:          never discard; judge the raw data word.
//     – RejectNontrivial: discard any shot whose syndrome is non-zero.
//     – CorrectAndKeep:   fold an Exact correction into the cumulative
//     Pauli frame; discard on Unknown.
//  4. Judge the (possibly corrected) data word against the logical-|0⟩
//     codeword set: Correct, Incorrect, or Indeterminate if discarded.
//
// Multi-round shots repeat steps 1–3 per round; corrections from
// earlier rounds compose (the same Pauli twice on one qubit cancels),
// and the judgment runs once after the last round against the
// cumulative frame. A round-level discard terminates the shot early and
// marks it Indeterminate, but the rounds observed up to and including
// the rejecting round still feed the aggregate syndrome statistics.
//
// Aggregation:
//
//	Run returns BatchStats with correct/incorrect/indeterminate counts.
//	Logical error rate = incorrect / (correct + incorrect): under
//	post-selection, indeterminate shots never enter the denominator,
//	so the retained fraction (correct+incorrect)/total is always
//	reported beside it.
//
// Concurrency:
//
//	Shots are statistically independent, and each shot's derivation is
//	a pure function of its sample plus the immutable decoder. With
//	WithWorkers(w), the batch is partitioned into w contiguous chunks
//	processed by separate goroutines; each worker tallies into its own
//	BatchStats, and the partitions are merged in a single reduction.
//	No mutable counter is ever shared between workers.
//
// Failure semantics:
//
//	A malformed sample (wrong bit-string length, non-bit values, zero
//	rounds) fails the whole batch with a wrapped ErrMalformedSample
//	naming the shot — never a silent drop, which would bias the
//	statistics. Validation runs before any judgment, so a failed batch
//	leaves no partial aggregate behind.
//
// Example usage:
//
//	eng, err := trial.New(dec, trial.WithPolicy(trial.CorrectAndKeep), trial.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stats, results, err := eng.Run(shots)
//	fmt.Println(stats.LogicalErrorRate(), stats.RetainedFraction())
package trial
