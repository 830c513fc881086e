package scaling

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Fit performs the power-law regression L = A · P^B over a dataset.
//
// Procedure:
//  1. Keep only points with PhysicalRate > 0 and LogicalRate > 0: a
//     non-positive logical rate carries no log-space information (zero
//     observed logical errors says "below resolution", not "zero").
//  2. Require at least two remaining points with distinct physical
//     rates; otherwise ErrFitUnderdetermined — never extrapolate a
//     curve through zero.
//  3. Ordinary least squares on (ln P, ln L) via stat.LinearRegression:
//     slope = B, A = exp(intercept).
//  4. Residual sum of squares in log-log space as the quality figure.
//
// Complexity: O(len(ds)).
func Fit(ds Dataset) (PowerLawFit, error) {
	// 1) Filter to log-representable points.
	logP := make([]float64, 0, len(ds))
	logL := make([]float64, 0, len(ds))
	for _, p := range ds {
		if p.PhysicalRate <= 0 || p.LogicalRate <= 0 {
			continue
		}
		logP = append(logP, math.Log(p.PhysicalRate))
		logL = append(logL, math.Log(p.LogicalRate))
	}

	// 2) Underdetermined inputs are rejected, not extrapolated.
	if len(logP) < 2 || !hasDistinct(logP) {
		return PowerLawFit{}, fmt.Errorf("%w: %d usable of %d points", ErrFitUnderdetermined, len(logP), len(ds))
	}

	// 3) OLS in log-log space; unweighted, with intercept.
	intercept, slope := stat.LinearRegression(logP, logL, nil, false)

	// 4) Residual sum of squares of the fitted line.
	var rss float64
	for i := range logP {
		r := logL[i] - (intercept + slope*logP[i])
		rss += r * r
	}

	return PowerLawFit{
		A:        math.Exp(intercept),
		B:        slope,
		Residual: rss,
		Points:   len(logP),
	}, nil
}

// hasDistinct reports whether xs contains at least two distinct values.
func hasDistinct(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return true
		}
	}

	return false
}
