package code

// Steane returns the built-in [[7,1,3]] Steane code: the smallest
// self-dual CSS code, with identical X-type and Z-type generator
// supports derived from the Hamming parity structure and transversal
// logical operators on all seven qubits.
//
// Generator layout (both sectors, declaration order):
//
//	g0: {0, 1, 2, 3}
//	g1: {0, 1, 4, 5}
//	g2: {0, 2, 4, 6}
//
// Every single-qubit Pauli error on this code produces a distinct
// non-zero syndrome, so the weight-1 lookup decoder is exact.
//
// Steane never fails: the specification is fixed and valid by
// construction (covered by the package tests).
func Steane() *Code {
	spec := CodeSpec{
		N:        7,
		K:        1,
		Distance: 3,
		XStabilizers: []Support{
			{0, 1, 2, 3},
			{0, 1, 4, 5},
			{0, 2, 4, 6},
		},
		ZStabilizers: []Support{
			{0, 1, 2, 3},
			{0, 1, 4, 5},
			{0, 2, 4, 6},
		},
		LogicalX: Support{0, 1, 2, 3, 4, 5, 6},
		LogicalZ: Support{0, 1, 2, 3, 4, 5, 6},
	}

	c, err := NewCode(spec)
	if err != nil {
		// Unreachable for the fixed spec above; a panic here means the
		// validator itself regressed.
		panic("code: Steane preset failed validation: " + err.Error())
	}

	return c
}
