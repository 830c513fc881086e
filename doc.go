// Package qeclab is your in-memory laboratory for analyzing the reliability
// of stabilizer quantum error-correcting codes under noise — from the code
// model and syndrome decoding to multi-round memory trials and error-scaling
// fits.
//
// 🚀 What is qeclab?
//
//	A focused, thread-aware library that brings together:
//		• Code model: CSS stabilizer codes with construction-time validation
//		• Syndrome decoding: direct-lookup tables for single-qubit errors
//		• Noise profiles: validated per-operation error probabilities
//		• Trial engine: per-shot judgment with selectable post-selection policies
//		• Scaling analysis: physical-rate sweeps and power-law fits (L = a·Pᵇ)
//		• Reference backend: a classical Pauli-frame sampler for memory experiments
//
// ✨ Why choose qeclab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable models, sentinel errors, in-code docs
//   - Deterministic – seeded RNG streams, reproducible sweeps
//   - Extensible – any sampling backend can satisfy the scaling.Sampler capability
//
// Under the hood, everything is organized per concern:
//
//	code/       — stabilizer code model, syndromes, Pauli error patterns
//	decoder/    — syndrome → correction lookup decoding
//	noise/      — validated noise profiles consumed by backends and engines
//	trial/      — shot judgment, post-selection, batch aggregation
//	scaling/    — error-rate sweeps and power-law fitting
//	pauliframe/ — classical reference sampler for logical-|0⟩ memory runs
//
// Quick ASCII picture of the data flow:
//
//	noise.Profile ──► backend (scaling.Sampler) ──► trial.Shot batch
//	      trial.Engine ──► BatchStats ──► scaling.Analyzer ──► PowerLawFit
//
// Dive into the per-package doc.go files for full contracts, complexity
// notes, and examples.
//
//	go get github.com/katalvlaran/qeclab
package qeclab
