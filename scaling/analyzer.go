package scaling

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/qeclab/decoder"
	"github.com/katalvlaran/qeclab/trial"
)

// Analyzer orchestrates the trial engine across a sweep of physical
// error rates. Immutable after New; a single Analyzer may run multiple
// sweeps, sequentially or concurrently.
type Analyzer struct {
	sampler Sampler
	dec     *decoder.Decoder
	opts    Options
}

// New builds an analyzer around a sampling backend and a decoder.
// Returns ErrNilSampler / ErrNilDecoder on missing collaborators;
// option constructors panic on statically invalid arguments.
func New(sampler Sampler, dec *decoder.Decoder, opts ...Option) (*Analyzer, error) {
	if sampler == nil {
		return nil, ErrNilSampler
	}
	if dec == nil {
		return nil, ErrNilDecoder
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Analyzer{
		sampler: sampler,
		dec:     dec,
		opts:    cfg,
	}, nil
}

// Sweep measures one dataset point per physical rate, in the order
// given. Points are independent; with WithParallelSweep they run
// concurrently, each writing its own slot, so the dataset order always
// mirrors rates.
//
// A backend or engine failure aborts the sweep with an error naming
// the physical rate of the affected batch. No retries: backend I/O
// faults are the collaborator's responsibility.
func (a *Analyzer) Sweep(rates []float64) (Dataset, error) {
	if len(rates) == 0 {
		return nil, ErrNoRates
	}

	ds := make(Dataset, len(rates))
	if !a.opts.Parallel {
		for i, rate := range rates {
			p, err := a.point(rate)
			if err != nil {
				return nil, err
			}
			ds[i] = p
		}

		return ds, nil
	}

	// Parallel evaluation: per-slot writes plus one error reduction.
	errs := make([]error, len(rates))
	var wg sync.WaitGroup
	for i, rate := range rates {
		wg.Add(1)
		go func(i int, rate float64) {
			defer wg.Done()
			ds[i], errs[i] = a.point(rate)
		}(i, rate)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// point runs one sweep point: profile, batch, judgment, record.
func (a *Analyzer) point(rate float64) (Point, error) {
	// 1) Derive the noise profile for this physical rate.
	profile, err := a.opts.ProfileFor(rate)
	if err != nil {
		return Point{}, fmt.Errorf("scaling: profile for rate %g: %w", rate, err)
	}

	// 2) Request a complete batch from the backend.
	shots, err := a.sampler.Sample(profile, a.opts.Rounds, a.opts.Shots)
	if err != nil {
		return Point{}, fmt.Errorf("scaling: sampling at rate %g: %w", rate, err)
	}

	// 3) Judge the batch with a fresh engine carrying this profile.
	eng, err := trial.New(a.dec,
		trial.WithPolicy(a.opts.Policy),
		trial.WithWorkers(a.opts.Workers),
		trial.WithProfile(profile),
	)
	if err != nil {
		return Point{}, fmt.Errorf("scaling: engine at rate %g: %w", rate, err)
	}
	stats, _, err := eng.Run(shots)
	if err != nil {
		return Point{}, fmt.Errorf("scaling: judging batch at rate %g: %w", rate, err)
	}

	// 4) One immutable dataset point per rate.
	return Point{
		PhysicalRate:     rate,
		LogicalRate:      stats.LogicalErrorRate(),
		RetainedFraction: stats.RetainedFraction(),
		Shots:            stats.Total,
	}, nil
}

// Analyze runs Sweep and Fit in one call. When the fit is
// underdetermined the dataset is still returned alongside the error so
// the caller can report the raw points.
func (a *Analyzer) Analyze(rates []float64) (Dataset, PowerLawFit, error) {
	ds, err := a.Sweep(rates)
	if err != nil {
		return nil, PowerLawFit{}, err
	}

	fit, err := Fit(ds)
	if err != nil {
		return ds, PowerLawFit{}, err
	}

	return ds, fit, nil
}
