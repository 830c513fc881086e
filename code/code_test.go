// Package code_test contains unit tests for the stabilizer code model:
// construction-time validation, syndrome computation, logical-zero
// codeword enumeration, and the Pauli algebra helpers.
package code_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/qeclab/code"
)

// ------------------------------------------------------------------------
// 1. Validation: every malformed specification must fail construction.
// ------------------------------------------------------------------------

// validSpec returns a fresh copy of the Steane specification that tests
// can break one field at a time.
func validSpec() code.CodeSpec {
	return code.CodeSpec{
		N:        7,
		K:        1,
		Distance: 3,
		XStabilizers: []code.Support{
			{0, 1, 2, 3},
			{0, 1, 4, 5},
			{0, 2, 4, 6},
		},
		ZStabilizers: []code.Support{
			{0, 1, 2, 3},
			{0, 1, 4, 5},
			{0, 2, 4, 6},
		},
		LogicalX: code.Support{0, 1, 2, 3, 4, 5, 6},
		LogicalZ: code.Support{0, 1, 2, 3, 4, 5, 6},
	}
}

func TestNewCode_Valid(t *testing.T) {
	c, err := code.NewCode(validSpec())
	if err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}
	if got, want := c.N(), 7; got != want {
		t.Errorf("N() = %d; want %d", got, want)
	}
	if got, want := c.Generators(), 6; got != want {
		t.Errorf("Generators() = %d; want %d", got, want)
	}
}

func TestNewCode_WrongGeneratorCount(t *testing.T) {
	spec := validSpec()
	spec.XStabilizers = spec.XStabilizers[:2] // 5 generators for n-k=6
	if _, err := code.NewCode(spec); !errors.Is(err, code.ErrMalformedCode) {
		t.Fatalf("expected ErrMalformedCode, got %v", err)
	}
}

func TestNewCode_IndexOutOfRange(t *testing.T) {
	spec := validSpec()
	spec.ZStabilizers[2] = code.Support{0, 2, 4, 7} // qubit 7 does not exist
	if _, err := code.NewCode(spec); !errors.Is(err, code.ErrMalformedCode) {
		t.Fatalf("expected ErrMalformedCode, got %v", err)
	}
}

func TestNewCode_DuplicateIndex(t *testing.T) {
	spec := validSpec()
	spec.XStabilizers[0] = code.Support{0, 1, 2, 2}
	if _, err := code.NewCode(spec); !errors.Is(err, code.ErrMalformedCode) {
		t.Fatalf("expected ErrMalformedCode, got %v", err)
	}
}

func TestNewCode_NonCommutingGenerators(t *testing.T) {
	// Shrink one Z generator to overlap an X generator on 3 qubits.
	spec := validSpec()
	spec.ZStabilizers[0] = code.Support{0, 1, 2}
	spec.ZStabilizers[1] = code.Support{0, 1, 4, 5, 2, 3} // keep count at n-k
	spec.ZStabilizers = spec.ZStabilizers[:3]
	if _, err := code.NewCode(spec); !errors.Is(err, code.ErrMalformedCode) {
		t.Fatalf("expected ErrMalformedCode for odd overlap, got %v", err)
	}
}

func TestNewCode_LogicalNotCentralizing(t *testing.T) {
	spec := validSpec()
	spec.LogicalX = code.Support{0, 1, 2} // odd overlap with Z generator {0,1,2,3}
	if _, err := code.NewCode(spec); !errors.Is(err, code.ErrMalformedCode) {
		t.Fatalf("expected ErrMalformedCode for non-centralizing logical X, got %v", err)
	}
}

func TestNewCode_LogicalsMustAnticommute(t *testing.T) {
	spec := validSpec()
	// Even overlap between logical X and logical Z: both on {0,1,2,3}
	// would also break centralizing, so use supports engineered to pass
	// the centralizer checks but overlap evenly: full support vs. a
	// weight-4 stabilizer-like support.
	spec.LogicalZ = code.Support{0, 1, 2, 3} // overlap with LogicalX = 4 (even)
	if _, err := code.NewCode(spec); !errors.Is(err, code.ErrMalformedCode) {
		t.Fatalf("expected ErrMalformedCode for commuting logicals, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Syndromes: spot-check against the canonical Steane lookup values.
// ------------------------------------------------------------------------

func TestSyndromeOf_SingleErrors(t *testing.T) {
	c := code.Steane()

	cases := []struct {
		name    string
		pattern code.ErrorPattern
		want    string
	}{
		{"identity", code.ErrorPattern{}, "000000"},
		{"X on qubit 0", code.ErrorPattern{0: code.PauliX}, "000111"},
		{"X on qubit 2", code.ErrorPattern{2: code.PauliX}, "000101"},
		{"X on qubit 6", code.ErrorPattern{6: code.PauliX}, "000001"},
		{"Z on qubit 1", code.ErrorPattern{1: code.PauliZ}, "110000"},
		{"Z on qubit 3", code.ErrorPattern{3: code.PauliZ}, "100000"},
		{"Y on qubit 4", code.ErrorPattern{4: code.PauliY}, "011011"},
	}

	for _, tc := range cases {
		if got := c.SyndromeOf(tc.pattern).String(); got != tc.want {
			t.Errorf("%s: syndrome = %s; want %s", tc.name, got, tc.want)
		}
	}
}

func TestSyndromeOf_PairCancellation(t *testing.T) {
	// Two X errors inside one Z-generator support cancel on that check.
	c := code.Steane()
	syn := c.SyndromeOf(code.ErrorPattern{0: code.PauliX, 1: code.PauliX})
	// Qubits 0 and 1 share Z checks 0 and 1; only check 2 (qubit 0) fires.
	if got, want := syn.String(), "000001"; got != want {
		t.Errorf("syndrome = %s; want %s", got, want)
	}
}

func TestSyndromeOf_AllSingleErrorsDistinct(t *testing.T) {
	c := code.Steane()
	seen := make(map[uint64]string, 3*c.N())
	for q := 0; q < c.N(); q++ {
		for _, p := range []code.Pauli{code.PauliX, code.PauliY, code.PauliZ} {
			e := code.ErrorPattern{q: p}
			syn := c.SyndromeOf(e)
			if syn.IsZero() {
				t.Fatalf("weight-1 error %s is undetectable", e)
			}
			if prev, dup := seen[syn.Key()]; dup {
				t.Fatalf("errors %s and %s share syndrome %s", prev, e, syn)
			}
			seen[syn.Key()] = e.String()
		}
	}
	if got, want := len(seen), 21; got != want {
		t.Fatalf("distinct syndromes = %d; want %d", got, want)
	}
}

// ------------------------------------------------------------------------
// 3. Logical-zero codewords.
// ------------------------------------------------------------------------

func TestZeroCodewords_SpanSizeAndMembership(t *testing.T) {
	c := code.Steane()
	words := c.ZeroCodewords()
	if got, want := len(words), 8; got != want {
		t.Fatalf("codeword count = %d; want %d", got, want)
	}

	// The all-zero word is always a member; every member passes the
	// membership test; each member has even overlap with every Z check.
	zero := make([]byte, c.N())
	if ok, err := c.IsZeroCodeword(zero); err != nil || !ok {
		t.Fatalf("all-zero word rejected: ok=%v err=%v", ok, err)
	}
	for _, w := range words {
		ok, err := c.IsZeroCodeword(w)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("enumerated codeword %v fails membership", w)
		}
		for gi, sup := range c.ZStabilizers() {
			parity := byte(0)
			for _, q := range sup {
				parity ^= w[q]
			}
			if parity != 0 {
				t.Errorf("codeword %v violates Z check %d", w, gi)
			}
		}
	}
}

func TestIsZeroCodeword_WrongLength(t *testing.T) {
	c := code.Steane()
	if _, err := c.IsZeroCodeword([]byte{0, 1, 0}); !errors.Is(err, code.ErrWordLength) {
		t.Fatalf("expected ErrWordLength, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 4. Pauli algebra and pattern composition.
// ------------------------------------------------------------------------

func TestPauli_Mul(t *testing.T) {
	cases := []struct {
		a, b, want code.Pauli
	}{
		{code.PauliX, code.PauliX, 0},
		{code.PauliZ, code.PauliZ, 0},
		{code.PauliX, code.PauliY, code.PauliZ},
		{code.PauliX, code.PauliZ, code.PauliY},
		{code.PauliY, code.PauliZ, code.PauliX},
		{0, code.PauliZ, code.PauliZ},
	}
	for _, tc := range cases {
		if got := tc.a.Mul(tc.b); got != tc.want {
			t.Errorf("%s·%s = %s; want %s", tc.a, tc.b, got, tc.want)
		}
		if got := tc.b.Mul(tc.a); got != tc.want {
			t.Errorf("%s·%s = %s; want %s (commuted)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestErrorPattern_ComposeCancels(t *testing.T) {
	e := code.ErrorPattern{2: code.PauliX, 5: code.PauliZ}
	twice := e.Compose(e)
	if !twice.IsIdentity() {
		t.Fatalf("e∘e = %s; want identity", twice)
	}
	// Composition with a different Pauli on a shared qubit yields the third.
	f := e.Compose(code.ErrorPattern{2: code.PauliZ})
	if got, want := f[2], code.PauliY; got != want {
		t.Fatalf("X∘Z on qubit 2 = %s; want %s", got, want)
	}
}

func TestErrorPattern_StringDeterministic(t *testing.T) {
	e := code.ErrorPattern{5: code.PauliZ, 0: code.PauliX, 3: code.PauliY}
	if got, want := e.String(), "X0 Y3 Z5"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if got, want := (code.ErrorPattern{}).String(), "I"; got != want {
		t.Errorf("identity String() = %q; want %q", got, want)
	}
}

func TestSyndrome_KeyAndZero(t *testing.T) {
	s := code.Syndrome{1, 0, 1, 0, 0, 0}
	if got, want := s.Key(), uint64(0b101); got != want {
		t.Errorf("Key() = %b; want %b", got, want)
	}
	if s.IsZero() {
		t.Error("non-zero syndrome reported as zero")
	}
	if got, want := s.Weight(), 2; got != want {
		t.Errorf("Weight() = %d; want %d", got, want)
	}
}
