package pauliframe

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/qeclab/code"
	"github.com/katalvlaran/qeclab/noise"
	"github.com/katalvlaran/qeclab/trial"
)

// Sentinel errors returned by the simulator.
var (
	// ErrNilCode indicates that New was called with a nil code model.
	ErrNilCode = errors.New("pauliframe: code model is nil")

	// ErrNilProfile indicates that Sample received a nil noise profile.
	ErrNilProfile = errors.New("pauliframe: noise profile is nil")

	// ErrBadRounds indicates a non-positive round count.
	ErrBadRounds = errors.New("pauliframe: round count must be positive")

	// ErrBadShots indicates a negative shot count.
	ErrBadShots = errors.New("pauliframe: shot count must be non-negative")
)

// Simulator samples logical-|0⟩ memory-experiment shots for one code.
// Immutable after New; Sample never mutates shared state, so one
// Simulator may serve concurrent sweeps.
type Simulator struct {
	c         *code.Code
	seed      int64
	codewords [][]byte
}

// Option is a functional option for configuring the simulator.
type Option func(*Simulator)

// WithSeed fixes the base RNG seed. Seed 0 selects the stable default
// seed (the batches stay deterministic either way).
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.seed = seed
	}
}

// New builds a simulator for the code model c.
func New(c *code.Code, opts ...Option) (*Simulator, error) {
	if c == nil {
		return nil, ErrNilCode
	}

	s := &Simulator{
		c:         c,
		codewords: c.ZeroCodewords(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Sample produces a complete batch of shots under profile p.
//
// Per shot: uniform ideal codeword, then per round single-qubit
// depolarizing on the frame, per-CX two-qubit propagation, syndrome
// readout of the frame, and measurement flips on the ancilla bits.
// Errors persist across rounds; the data word is the codeword XOR the
// accumulated bit-flip frame.
//
// Complexity: O(shots · rounds · n·g) worst case.
func (s *Simulator) Sample(p *noise.Profile, rounds, shots int) ([]trial.Shot, error) {
	if p == nil {
		return nil, ErrNilProfile
	}
	if rounds < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRounds, rounds)
	}
	if shots < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadShots, shots)
	}

	xStabs := s.c.XStabilizers()
	zStabs := s.c.ZStabilizers()

	batch := make([]trial.Shot, shots)
	var i int
	for i = 0; i < shots; i++ {
		batch[i] = s.shot(shotRNG(s.seed, i), p, rounds, xStabs, zStabs)
	}

	return batch, nil
}

// shot draws one complete sample from its private RNG stream.
func (s *Simulator) shot(rng *rand.Rand, p *noise.Profile, rounds int, xStabs, zStabs []code.Support) trial.Shot {
	n := s.c.N()

	// 1) Ideal codeword: measurement statistics of logical |0⟩.
	word := s.codewords[rng.Intn(len(s.codewords))]

	// The Pauli frame: accumulated X and Z error components per qubit.
	xFrame := make([]byte, n)
	zFrame := make([]byte, n)

	anc := make([][]byte, rounds)
	var r, q int
	for r = 0; r < rounds; r++ {
		// 2) Storage noise: depolarize each data qubit independently.
		for q = 0; q < n; q++ {
			if rng.Float64() < p.SingleQubit() {
				applyPauli(drawPauli(rng, p.Bias()), q, xFrame, zFrame)
			}
		}

		// 3) Extraction noise: each support CX may propagate an error
		//    onto the data qubit it touches.
		if p.TwoQubit() > 0 {
			for _, sup := range xStabs {
				for _, dq := range sup {
					if rng.Float64() < p.TwoQubit() {
						applyPauli(drawPauli(rng, p.Bias()), dq, xFrame, zFrame)
					}
				}
			}
			for _, sup := range zStabs {
				for _, dq := range sup {
					if rng.Float64() < p.TwoQubit() {
						applyPauli(drawPauli(rng, p.Bias()), dq, xFrame, zFrame)
					}
				}
			}
		}

		// 4) Syndrome of the accumulated frame: X-sector checks see Z
		//    components, Z-sector checks see X components.
		bits := make([]byte, len(xStabs)+len(zStabs))
		for gi, sup := range xStabs {
			var parity byte
			for _, dq := range sup {
				parity ^= zFrame[dq]
			}
			bits[gi] = parity
		}
		for gi, sup := range zStabs {
			var parity byte
			for _, dq := range sup {
				parity ^= xFrame[dq]
			}
			bits[len(xStabs)+gi] = parity
		}

		// 5) Ancilla readout noise.
		if p.Measurement() > 0 {
			for b := range bits {
				if rng.Float64() < p.Measurement() {
					bits[b] ^= 1
				}
			}
		}
		anc[r] = bits
	}

	// 6) Final data readout: only the bit-flip components are visible
	//    in the computational basis.
	data := make([]byte, n)
	for q = 0; q < n; q++ {
		data[q] = word[q] ^ xFrame[q]
	}

	return trial.Shot{Data: data, Ancilla: anc}
}

// drawPauli selects the Pauli type of one error event. The weights are
// wX=1, wZ=bias, wY=√bias (Y = XZ sits at the geometric middle), so
// bias=1 reduces to uniform depolarizing and bias=0 to pure bit-flip
// noise.
func drawPauli(rng *rand.Rand, bias float64) code.Pauli {
	wY := math.Sqrt(bias)
	u := rng.Float64() * (1 + wY + bias)
	switch {
	case u < 1:
		return code.PauliX
	case u < 1+wY:
		return code.PauliY
	default:
		return code.PauliZ
	}
}

// applyPauli folds one error event into the frame (X²=Z²=I, so the
// components toggle).
func applyPauli(p code.Pauli, q int, xFrame, zFrame []byte) {
	if p.BitFlip() {
		xFrame[q] ^= 1
	}
	if p.PhaseFlip() {
		zFrame[q] ^= 1
	}
}
