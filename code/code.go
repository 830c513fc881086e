package code

import (
	"fmt"
	"sort"
	"sync"
)

// maxGenerators bounds the total generator count so that a Syndrome
// always packs into a single uint64 lookup key.
const maxGenerators = 64

// CodeSpec is the declarative input to NewCode. All slices are copied
// on construction; the caller keeps ownership of the spec.
//
// Fields:
//   - N, K, Distance  — the [[n,k,d]] parameters of the block code.
//   - XStabilizers    — ordered supports of the X-type generators.
//   - ZStabilizers    — ordered supports of the Z-type generators.
//   - LogicalX/Z      — supports of the logical X and Z operators
//     (single logical qubit; k=1 codes).
type CodeSpec struct {
	N            int
	K            int
	Distance     int
	XStabilizers []Support
	ZStabilizers []Support
	LogicalX     Support
	LogicalZ     Support
}

// Code is the immutable stabilizer-code model. Construct via NewCode
// (or the Steane preset); all accessors are read-only and safe for
// concurrent use.
type Code struct {
	n        int
	k        int
	distance int

	xStabs []Support // X-type generator supports, in declaration order
	zStabs []Support // Z-type generator supports, in declaration order

	logicalX Support
	logicalZ Support

	// Parity-check incidence derived at construction: for each qubit,
	// the generator indices (per sector) whose support contains it.
	xOn [][]int
	zOn [][]int

	zeroOnce sync.Once
	zeroSet  map[string]struct{}
	zeroList [][]byte
}

// NewCode validates spec and builds the immutable model.
//
// Validation (in order), each failure wrapped around ErrMalformedCode:
//  1. n ≥ 2, 1 ≤ k < n, distance ≥ 1.
//  2. Total generator count equals n − k and does not exceed 64.
//  3. Every support is non-empty with unique indices in [0, n).
//  4. Every X-type generator commutes with every Z-type generator
//     (even support overlap). Same-sector generators always commute.
//  5. Logical X overlaps every Z-type generator evenly; logical Z
//     overlaps every X-type generator evenly (centralizer condition).
//  6. Logical X and logical Z overlap on an odd number of qubits
//     (they must anticommute).
//
// Complexity: O(g²·n) with g = n−k.
func NewCode(spec CodeSpec) (*Code, error) {
	// 1) Basic parameter sanity.
	if spec.N < 2 {
		return nil, fmt.Errorf("%w: n=%d, need at least 2 physical qubits", ErrMalformedCode, spec.N)
	}
	if spec.K < 1 || spec.K >= spec.N {
		return nil, fmt.Errorf("%w: k=%d outside [1, n)", ErrMalformedCode, spec.K)
	}
	if spec.Distance < 1 {
		return nil, fmt.Errorf("%w: distance=%d, need at least 1", ErrMalformedCode, spec.Distance)
	}

	// 2) Generator count must match n−k exactly; the syndrome key
	//    packing additionally caps the count at 64.
	gens := len(spec.XStabilizers) + len(spec.ZStabilizers)
	if gens != spec.N-spec.K {
		return nil, fmt.Errorf("%w: %d generators, need n-k=%d", ErrMalformedCode, gens, spec.N-spec.K)
	}
	if gens > maxGenerators {
		return nil, fmt.Errorf("%w: %d generators exceed the %d-generator limit", ErrMalformedCode, gens, maxGenerators)
	}

	// 3) Normalize and validate every support.
	xStabs, err := normalizeSupports(spec.XStabilizers, spec.N, "X stabilizer")
	if err != nil {
		return nil, err
	}
	zStabs, err := normalizeSupports(spec.ZStabilizers, spec.N, "Z stabilizer")
	if err != nil {
		return nil, err
	}
	logicalX, err := normalizeSupport(spec.LogicalX, spec.N, "logical X")
	if err != nil {
		return nil, err
	}
	logicalZ, err := normalizeSupport(spec.LogicalZ, spec.N, "logical Z")
	if err != nil {
		return nil, err
	}

	// 4) Pairwise commutation: an X-type and a Z-type Pauli product
	//    commute iff their supports intersect on an even qubit count.
	var i, j int
	for i = range xStabs {
		for j = range zStabs {
			if overlap(xStabs[i], zStabs[j])%2 != 0 {
				return nil, fmt.Errorf("%w: X stabilizer %d and Z stabilizer %d anticommute (odd overlap)",
					ErrMalformedCode, i, j)
			}
		}
	}

	// 5) Logical operators must centralize the stabilizer group.
	for j = range zStabs {
		if overlap(logicalX, zStabs[j])%2 != 0 {
			return nil, fmt.Errorf("%w: logical X anticommutes with Z stabilizer %d", ErrMalformedCode, j)
		}
	}
	for i = range xStabs {
		if overlap(logicalZ, xStabs[i])%2 != 0 {
			return nil, fmt.Errorf("%w: logical Z anticommutes with X stabilizer %d", ErrMalformedCode, i)
		}
	}

	// 6) Logical X and Z act on the same encoded qubit: odd overlap.
	if overlap(logicalX, logicalZ)%2 != 1 {
		return nil, fmt.Errorf("%w: logical X and logical Z must anticommute (even overlap found)", ErrMalformedCode)
	}

	// 7) Derive the parity-check incidence once; SyndromeOf and the
	//    decoder build phase read it on their hot paths.
	xOn := make([][]int, spec.N)
	zOn := make([][]int, spec.N)
	for i = range xStabs {
		for _, q := range xStabs[i] {
			xOn[q] = append(xOn[q], i)
		}
	}
	for i = range zStabs {
		for _, q := range zStabs[i] {
			zOn[q] = append(zOn[q], i)
		}
	}

	return &Code{
		n:        spec.N,
		k:        spec.K,
		distance: spec.Distance,
		xStabs:   xStabs,
		zStabs:   zStabs,
		logicalX: logicalX,
		logicalZ: logicalZ,
		xOn:      xOn,
		zOn:      zOn,
	}, nil
}

// N returns the physical qubit count.
func (c *Code) N() int { return c.n }

// K returns the logical qubit count.
func (c *Code) K() int { return c.k }

// Distance returns the code distance.
func (c *Code) Distance() int { return c.distance }

// Generators returns the total stabilizer generator count (n − k),
// which is also the syndrome length.
func (c *Code) Generators() int { return len(c.xStabs) + len(c.zStabs) }

// XStabilizers returns defensive copies of the X-type generator
// supports, in declaration order.
func (c *Code) XStabilizers() []Support { return cloneSupports(c.xStabs) }

// ZStabilizers returns defensive copies of the Z-type generator
// supports, in declaration order.
func (c *Code) ZStabilizers() []Support { return cloneSupports(c.zStabs) }

// LogicalX returns a defensive copy of the logical X support.
func (c *Code) LogicalX() Support { return append(Support(nil), c.logicalX...) }

// LogicalZ returns a defensive copy of the logical Z support.
func (c *Code) LogicalZ() Support { return append(Support(nil), c.logicalZ...) }

// XChecksOn returns the indices of the X-type generators whose support
// contains qubit q (empty for out-of-range q).
func (c *Code) XChecksOn(q int) []int {
	if q < 0 || q >= c.n {
		return nil
	}

	return append([]int(nil), c.xOn[q]...)
}

// ZChecksOn returns the indices of the Z-type generators whose support
// contains qubit q (empty for out-of-range q).
func (c *Code) ZChecksOn(q int) []int {
	if q < 0 || q >= c.n {
		return nil
	}

	return append([]int(nil), c.zOn[q]...)
}

// SyndromeOf computes the syndrome the error pattern e would produce:
// the Z component of each single-qubit factor toggles the X-sector bits
// of the checks containing that qubit, and the X component toggles the
// Z-sector bits. Qubits outside [0, n) are ignored (they cannot trigger
// any check of this code).
//
// Complexity: O(weight(e) · g).
func (c *Code) SyndromeOf(e ErrorPattern) Syndrome {
	s := make(Syndrome, c.Generators())
	xCount := len(c.xStabs)
	for q, p := range e {
		if q < 0 || q >= c.n {
			continue
		}
		if p.PhaseFlip() {
			for _, g := range c.xOn[q] {
				s[g] ^= 1
			}
		}
		if p.BitFlip() {
			for _, g := range c.zOn[q] {
				s[xCount+g] ^= 1
			}
		}
	}

	return s
}

// ZeroCodewords returns the computational-basis words an ideal logical
// |0⟩ can produce when all data qubits are measured: the GF(2) span of
// the X-type generator supports. The enumeration (2^x words for x
// X-type generators) runs once and is cached.
func (c *Code) ZeroCodewords() [][]byte {
	c.buildZeroSet()
	out := make([][]byte, len(c.zeroList))
	for i, w := range c.zeroList {
		out[i] = append([]byte(nil), w...)
	}

	return out
}

// IsZeroCodeword reports whether word (one byte per qubit, values 0/1)
// is a valid logical-|0⟩ measurement outcome. Returns ErrWordLength if
// len(word) ≠ n.
func (c *Code) IsZeroCodeword(word []byte) (bool, error) {
	if len(word) != c.n {
		return false, fmt.Errorf("%w: got %d bits, code has n=%d", ErrWordLength, len(word), c.n)
	}
	c.buildZeroSet()
	_, ok := c.zeroSet[packWord(word)]

	return ok, nil
}

// buildZeroSet enumerates the X-generator span exactly once.
func (c *Code) buildZeroSet() {
	c.zeroOnce.Do(func() {
		x := len(c.xStabs)
		total := 1 << uint(x)
		c.zeroList = make([][]byte, 0, total)
		c.zeroSet = make(map[string]struct{}, total)

		var mask, i int
		for mask = 0; mask < total; mask++ {
			w := make([]byte, c.n)
			for i = 0; i < x; i++ {
				if mask&(1<<uint(i)) == 0 {
					continue
				}
				for _, q := range c.xStabs[i] {
					w[q] ^= 1
				}
			}
			key := packWord(w)
			if _, dup := c.zeroSet[key]; dup {
				// Linearly dependent X generators collapse the span;
				// keep the set deduplicated.
				continue
			}
			c.zeroSet[key] = struct{}{}
			c.zeroList = append(c.zeroList, w)
		}
	})
}

// packWord encodes a bit word as a compact map key.
func packWord(w []byte) string {
	b := make([]byte, len(w))
	for i, v := range w {
		if v != 0 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}

	return string(b)
}

// overlap counts the common qubits of two sorted supports.
func overlap(a, b Support) int {
	var i, j, n int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}

// normalizeSupport copies, sorts, and validates a single support.
func normalizeSupport(s Support, n int, what string) (Support, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: %s support is empty", ErrMalformedCode, what)
	}
	out := append(Support(nil), s...)
	sort.Ints(out)
	for i, q := range out {
		if q < 0 || q >= n {
			return nil, fmt.Errorf("%w: %s touches qubit %d outside [0,%d)", ErrMalformedCode, what, q, n)
		}
		if i > 0 && out[i-1] == q {
			return nil, fmt.Errorf("%w: %s lists qubit %d twice", ErrMalformedCode, what, q)
		}
	}

	return out, nil
}

// normalizeSupports applies normalizeSupport across a generator list.
func normalizeSupports(list []Support, n int, what string) ([]Support, error) {
	out := make([]Support, len(list))
	for i, s := range list {
		ns, err := normalizeSupport(s, n, fmt.Sprintf("%s %d", what, i))
		if err != nil {
			return nil, err
		}
		out[i] = ns
	}

	return out, nil
}

// cloneSupports deep-copies a support list for defensive accessors.
func cloneSupports(list []Support) []Support {
	out := make([]Support, len(list))
	for i, s := range list {
		out[i] = append(Support(nil), s...)
	}

	return out
}
