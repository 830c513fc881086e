// Package pauliframe_test verifies the reference backend: argument
// validation, determinism, noise-free behavior, bias structure, and
// the statistical end-to-end properties of full memory experiments.
package pauliframe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qeclab/code"
	"github.com/katalvlaran/qeclab/decoder"
	"github.com/katalvlaran/qeclab/noise"
	"github.com/katalvlaran/qeclab/pauliframe"
	"github.com/katalvlaran/qeclab/scaling"
	"github.com/katalvlaran/qeclab/trial"
)

// The simulator must satisfy the analyzer's backend capability.
var _ scaling.Sampler = (*pauliframe.Simulator)(nil)

func TestNew_NilCode(t *testing.T) {
	_, err := pauliframe.New(nil)
	require.ErrorIs(t, err, pauliframe.ErrNilCode)
}

func TestSample_ArgumentValidation(t *testing.T) {
	sim, err := pauliframe.New(code.Steane())
	require.NoError(t, err)
	p, err := noise.Uniform(0.01)
	require.NoError(t, err)

	_, err = sim.Sample(nil, 1, 10)
	require.ErrorIs(t, err, pauliframe.ErrNilProfile)

	_, err = sim.Sample(p, 0, 10)
	require.ErrorIs(t, err, pauliframe.ErrBadRounds)

	_, err = sim.Sample(p, 1, -1)
	require.ErrorIs(t, err, pauliframe.ErrBadShots)
}

func TestSample_Shape(t *testing.T) {
	c := code.Steane()
	sim, err := pauliframe.New(c)
	require.NoError(t, err)
	p, err := noise.Uniform(0.05)
	require.NoError(t, err)

	batch, err := sim.Sample(p, 3, 25)
	require.NoError(t, err)
	require.Len(t, batch, 25)
	for _, shot := range batch {
		require.Len(t, shot.Data, c.N())
		require.Len(t, shot.Ancilla, 3)
		for _, row := range shot.Ancilla {
			require.Len(t, row, c.Generators())
		}
	}
}

func TestSample_DeterministicPerSeed(t *testing.T) {
	c := code.Steane()
	p, err := noise.Uniform(0.02)
	require.NoError(t, err)

	simA, err := pauliframe.New(c, pauliframe.WithSeed(42))
	require.NoError(t, err)
	simB, err := pauliframe.New(c, pauliframe.WithSeed(42))
	require.NoError(t, err)
	simC, err := pauliframe.New(c, pauliframe.WithSeed(43))
	require.NoError(t, err)

	a, err := simA.Sample(p, 2, 100)
	require.NoError(t, err)
	b, err := simB.Sample(p, 2, 100)
	require.NoError(t, err)
	cBatch, err := simC.Sample(p, 2, 100)
	require.NoError(t, err)

	require.Equal(t, a, b, "same seed must reproduce the batch exactly")
	require.NotEqual(t, a, cBatch, "different seeds must diverge")
}

// TestSample_NoiseFreeIsPerfect is the end-to-end zero-noise scenario:
// 1000 shots with every probability zero yield valid codewords, silent
// syndromes, and zero incorrect/indeterminate outcomes under every
// post-selection policy.
func TestSample_NoiseFreeIsPerfect(t *testing.T) {
	c := code.Steane()
	sim, err := pauliframe.New(c, pauliframe.WithSeed(7))
	require.NoError(t, err)
	quiet, err := noise.NewProfile(0, 0, 0)
	require.NoError(t, err)

	batch, err := sim.Sample(quiet, 2, 1000)
	require.NoError(t, err)

	dec, err := decoder.New(c)
	require.NoError(t, err)

	for _, policy := range []trial.Policy{trial.KeepAll, trial.RejectNontrivial, trial.CorrectAndKeep} {
		eng, err := trial.New(dec, trial.WithPolicy(policy))
		require.NoError(t, err)

		stats, _, err := eng.Run(batch)
		require.NoError(t, err)
		require.Equal(t, 1000, stats.Correct, "policy %s", policy)
		require.Zero(t, stats.Incorrect, "policy %s", policy)
		require.Zero(t, stats.Indeterminate, "policy %s", policy)
		require.Zero(t, stats.NontrivialRounds, "policy %s", policy)
	}
}

// TestSample_PureBitFlipBiasKeepsXSectorSilent pins the frame
// structure: with bias 0 every error event is an X, so no Z component
// ever accumulates and the X-sector checks stay silent (measurement
// noise disabled).
func TestSample_PureBitFlipBiasKeepsXSectorSilent(t *testing.T) {
	c := code.Steane()
	sim, err := pauliframe.New(c, pauliframe.WithSeed(11))
	require.NoError(t, err)
	p, err := noise.NewProfile(0.3, 0, 0, noise.WithBias(0))
	require.NoError(t, err)

	batch, err := sim.Sample(p, 2, 200)
	require.NoError(t, err)

	xSector := len(c.XStabilizers())
	for _, shot := range batch {
		for _, row := range shot.Ancilla {
			for g := 0; g < xSector; g++ {
				require.Zero(t, row[g], "X-sector check fired under pure bit-flip noise")
			}
		}
	}
}

// TestRetention_MonotoneUnderRejectNontrivial sweeps the physical rate
// with fixed shots and requires the reject-nontrivial retained fraction
// to decrease (within a small statistical tolerance).
func TestRetention_MonotoneUnderRejectNontrivial(t *testing.T) {
	c := code.Steane()
	sim, err := pauliframe.New(c, pauliframe.WithSeed(3))
	require.NoError(t, err)
	dec, err := decoder.New(c)
	require.NoError(t, err)
	eng, err := trial.New(dec, trial.WithPolicy(trial.RejectNontrivial))
	require.NoError(t, err)

	rates := []float64{0.002, 0.01, 0.03, 0.08}
	retained := make([]float64, 0, len(rates))
	for _, rate := range rates {
		p, err := noise.Uniform(rate)
		require.NoError(t, err)

		batch, err := sim.Sample(p, 1, 2000)
		require.NoError(t, err)
		stats, _, err := eng.Run(batch)
		require.NoError(t, err)
		retained = append(retained, stats.RetainedFraction())
	}

	const tolerance = 0.02 // statistical slack on 2000-shot estimates
	for i := 1; i < len(retained); i++ {
		require.LessOrEqual(t, retained[i], retained[i-1]+tolerance,
			"retention must fall as the physical rate grows: %v", retained)
	}
}

// TestLogicalRate_ReproducibleInDistribution runs the same 10,000-shot
// experiment (single-qubit 0.01, two-qubit 0.03) under two independent
// seeds and requires the two logical-rate estimates to agree within the
// summed 95% normal-approximation half-widths — reproducible in
// distribution, not bit for bit.
func TestLogicalRate_ReproducibleInDistribution(t *testing.T) {
	c := code.Steane()
	dec, err := decoder.New(c)
	require.NoError(t, err)
	p, err := noise.NewProfile(0.01, 0.03, 0.01)
	require.NoError(t, err)

	run := func(seed int64) (rate float64, retained int) {
		sim, err := pauliframe.New(c, pauliframe.WithSeed(seed))
		require.NoError(t, err)
		eng, err := trial.New(dec, trial.WithPolicy(trial.KeepAll), trial.WithWorkers(4))
		require.NoError(t, err)

		batch, err := sim.Sample(p, 1, 10000)
		require.NoError(t, err)
		stats, _, err := eng.Run(batch)
		require.NoError(t, err)

		return stats.LogicalErrorRate(), stats.Correct + stats.Incorrect
	}

	l1, m1 := run(101)
	l2, m2 := run(202)

	half := func(l float64, m int) float64 {
		return 1.96 * math.Sqrt(l*(1-l)/float64(m))
	}
	require.LessOrEqual(t, math.Abs(l1-l2), half(l1, m1)+half(l2, m2),
		"independent runs must agree in distribution: %v vs %v", l1, l2)
}
