package code_test

import (
	"fmt"

	"github.com/katalvlaran/qeclab/code"
)

// ExampleSteane demonstrates the built-in [[7,1,3]] model: inspecting
// the parity-check incidence and computing the syndrome of a known
// single-qubit error.
//
// Scenario:
//
//	An X error on qubit 2 must trigger exactly the Z-type checks whose
//	support contains qubit 2 (checks 0 and 2), leaving the X sector
//	silent — the classic Steane signature (0,0,0,1,0,1).
func ExampleSteane() {
	c := code.Steane()

	fmt.Println("n:", c.N(), "k:", c.K(), "distance:", c.Distance())
	fmt.Println("Z checks on qubit 2:", c.ZChecksOn(2))

	syn := c.SyndromeOf(code.ErrorPattern{2: code.PauliX})
	fmt.Println("syndrome:", syn)
	// Output:
	// n: 7 k: 1 distance: 3
	// Z checks on qubit 2: [0 2]
	// syndrome: 000101
}

// ExampleCode_ZeroCodewords shows the measurement outcomes an ideal
// logical |0⟩ can produce: the 2³ = 8 words spanned by the X-type
// generator supports.
func ExampleCode_ZeroCodewords() {
	c := code.Steane()
	fmt.Println("codewords:", len(c.ZeroCodewords()))

	ok, _ := c.IsZeroCodeword([]byte{1, 1, 1, 1, 0, 0, 0})
	fmt.Println("1111000 valid:", ok)
	// Output:
	// codewords: 8
	// 1111000 valid: true
}
