package gauss

import (
	"fmt"
	"math"
)

// ModifiedChebyshev runs Wheeler's variant of the modified Chebyshev
// algorithm: given the first 2m modified moments nu of a target weight
// relative to the orthonormal reference family with coefficients (a,b),
// it derives the target family's recurrence coefficients.
//
// Requirements: len(nu) = 2m even with m >= 1, len(a) >= 2m-1,
// len(b) >= 2m. The returned alpha has length m and beta length m+1;
// beta[m] is not determined by 2m moments and is left zero (callers
// that need a full set run the transform one order high, as
// LogWeightCoefficients does). sigma is the triangular array of mixed
// inner products, sigma[k][l] = integral of w*q_k*qref_l, returned for
// diagnostics; row k is populated for columns k..2m-k-1.
//
// A non-positive radicand means the moments are not consistent with a
// positive-definite measure at working precision and construction
// fails with ErrAlgorithmBreakdown. Entries of sigma lose relative
// precision as m grows; conditioning for large m is a known limitation
// of the transform, not detected here.
func ModifiedChebyshev(a, b, nu []float64) (alpha, beta []float64, sigma [][]float64, err error) {
	mm := len(nu)
	m := mm / 2
	if mm < 2 || mm%2 != 0 {
		return nil, nil, nil, fmt.Errorf("%w: need a positive even number of moments, got %d",
			ErrInvalidDomain, mm)
	}
	if len(a) < 2*m-1 || len(b) < 2*m {
		return nil, nil, nil, fmt.Errorf("%w: reference coefficients too short for %d moments (len(a) = %d, len(b) = %d)",
			ErrInvalidDomain, mm, len(a), len(b))
	}
	alpha = make([]float64, m)
	beta = make([]float64, m+1)
	sigma = make([][]float64, m)
	for k := range sigma {
		sigma[k] = make([]float64, mm)
	}

	if nu[0] <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: zeroth moment %v is not positive",
			ErrAlgorithmBreakdown, nu[0])
	}
	beta[0] = math.Sqrt(nu[0])
	for l := 0; l < mm; l++ {
		sigma[0][l] = nu[l] / beta[0]
	}
	alpha[0] = a[0] + b[1]*sigma[0][1]/sigma[0][0]

	for k := 1; k < m; k++ {
		prev2 := func(c int) float64 {
			if k >= 2 {
				return sigma[k-2][c]
			}
			return 0
		}
		// New normalization from the diagonal band, then the row, then
		// the next shift coefficient.
		top := b[k+1]*sigma[k-1][k+1] + (a[k]-alpha[k-1])*sigma[k-1][k] +
			b[k]*sigma[k-1][k-1] - beta[k-1]*prev2(k)
		t := top / (b[k] * sigma[k-1][k-1])
		if t <= 0 {
			return nil, nil, nil, fmt.Errorf("%w: non-positive radicand %v at order %d",
				ErrAlgorithmBreakdown, t, k)
		}
		beta[k] = b[k] * math.Sqrt(t)
		for c := k; c <= mm-k-1; c++ {
			sigma[k][c] = (b[c+1]*sigma[k-1][c+1] + (a[c]-alpha[k-1])*sigma[k-1][c] +
				b[c]*sigma[k-1][c-1] - beta[k-1]*prev2(c)) / beta[k]
		}
		alpha[k] = a[k] + b[k+1]*sigma[k][k+1]/sigma[k][k] -
			beta[k]*sigma[k-1][k]/sigma[k][k]
	}
	return alpha, beta, sigma, nil
}
