// Package pauliframe - RNG utilities for deterministic sampling.
//
// This file centralizes random generation for the reference backend.
//
// Goals:
//   - Determinism: same seed ⇒ identical batches across platforms.
//   - Independence: every shot draws from its own derived stream, so
//     batches are reproducible regardless of evaluation order.
//   - Encapsulation: a single RNG factory; no time-based sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each shot builds its own
//     *rand.Rand from deriveSeed; nothing is shared between shots.
package pauliframe

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass
// seed==0. The value is arbitrary but stable for reproducible defaults.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the seed==0 ⇒ defaultRNGSeed policy.
//
// Complexity: O(1).
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed via a SplitMix64-style avalanche finalizer, eliminating
// correlations between per-shot streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shotRNG creates the independent deterministic stream for one shot.
//
// Complexity: O(1).
func shotRNG(seed int64, shot int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), uint64(shot))))
}
