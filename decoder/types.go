// Package decoder defines the result types and sentinel errors of the
// syndrome lookup decoder.
package decoder

import (
	"errors"

	"github.com/katalvlaran/qeclab/code"
)

// Sentinel errors returned by the decoder.
var (
	// ErrNilCode indicates that New was called with a nil code model.
	ErrNilCode = errors.New("decoder: code model is nil")

	// ErrDegenerateCode indicates that two distinct single-qubit errors
	// produce the same syndrome, so no weight-1 lookup table can be
	// built. A valid distance-3 code never triggers this.
	ErrDegenerateCode = errors.New("decoder: degenerate code, weight-1 syndromes collide")

	// ErrSyndromeLength indicates that Decode received a syndrome whose
	// length differs from the code's generator count.
	ErrSyndromeLength = errors.New("decoder: syndrome length does not match generator count")
)

// Confidence qualifies a decoded correction.
type Confidence uint8

const (
	// Unknown marks a syndrome that is detected but not uniquely
	// decodable within the weight-1 table (weight ≥ 2 error). The
	// correction pattern is empty; the caller decides the policy.
	Unknown Confidence = iota

	// Exact marks a correction covered by the table construction:
	// either the identity (zero syndrome) or a unique weight-1 error.
	Exact
)

// String returns "exact" or "unknown".
func (c Confidence) String() string {
	if c == Exact {
		return "exact"
	}

	return "unknown"
}

// Correction is the decode result: the inferred error pattern to undo
// and the confidence of the inference. For Unknown the pattern is
// always the identity.
type Correction struct {
	Pattern    code.ErrorPattern
	Confidence Confidence
}

// Entry is one immutable row of the lookup table: the syndrome a
// specific single-qubit error produces. Exposed for diagnostics and
// reporting; the table itself is read-only after construction.
type Entry struct {
	Syndrome code.Syndrome
	Error    code.ErrorPattern
}
