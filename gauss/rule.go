package gauss

import (
	"fmt"
	"math"
	"sort"
)

// AssembleRule builds an n-point Gauss-type rule on (lo,hi) from the
// recurrence coefficients a (length n) and b (length n+1) of the
// weight's orthogonal polynomials: it applies the requested endpoint
// constraint, eigensolves the Jacobi matrix, rescales the eigenvector
// first components into weights w_i = (b[0]*z_i)^2, and returns nodes
// and weights sorted by node. Constrained endpoint nodes are snapped to
// the exact lo/hi values to remove the round-off of the constraint
// solve. Classical weight functions have distinct nodes, so the sort
// needs no tie-break.
//
// The inputs are copied before the endpoint perturbation, so callers
// keep their coefficient arrays intact. This is the generic entry point
// behind every family constructor and the one contract external code
// should depend on.
func AssembleRule(lo, hi float64, a, b []float64, endpt EndPt, cfg Config) (x, w []float64, err error) {
	n := len(a)
	if err = checkN(n); err != nil {
		return nil, nil, err
	}
	if len(b) != n+1 {
		return nil, nil, fmt.Errorf("%w: len(b) = %d, want len(a)+1 = %d",
			ErrInvalidDomain, len(b), n+1)
	}
	for i := 1; i < n; i++ {
		if b[i] <= 0 {
			return nil, nil, fmt.Errorf("%w: b[%d] = %v, the measure is not positive definite",
				ErrInvalidDomain, i, b[i])
		}
	}

	d := append([]float64(nil), a...)
	bb := append([]float64(nil), b...)
	if err = applyEndpoint(lo, hi, d, bb, endpt); err != nil {
		return nil, nil, err
	}

	e := make([]float64, n)
	copy(e, bb[1:n])
	z := make([]float64, n)
	if err = symTriEig(d, e, z, cfg.eps(), cfg.MaxIter); err != nil {
		return nil, nil, err
	}
	for i := range z {
		z[i] = bb[0] * z[i]
		z[i] *= z[i]
	}
	sort.Sort(byNode{d, z})

	if endpt == Left || endpt == Both {
		d[0] = lo
	}
	if endpt == Right || endpt == Both {
		d[n-1] = hi
	}
	return d, z, nil
}

type byNode struct{ x, w []float64 }

func (p byNode) Len() int           { return len(p.x) }
func (p byNode) Less(i, j int) bool { return p.x[i] < p.x[j] }
func (p byNode) Swap(i, j int) {
	p.x[i], p.x[j] = p.x[j], p.x[i]
	p.w[i], p.w[j] = p.w[j], p.w[i]
}

// LegendreRule returns the n-point Gauss-Legendre rule on (-1,1), with
// optional Radau/Lobatto endpoint constraints.
func LegendreRule(n int, endpt EndPt) (x, w []float64, err error) {
	a, b, err := LegendreCoefficients(n)
	if err != nil {
		return nil, nil, err
	}
	return AssembleRule(-1, 1, a, b, endpt, Double())
}

// ChebyshevRule returns the n-point Gauss-Chebyshev rule of the first
// (kind 1) or second (kind 2) kind on (-1,1).
func ChebyshevRule(kind, n int, endpt EndPt) (x, w []float64, err error) {
	a, b, err := ChebyshevCoefficients(kind, n)
	if err != nil {
		return nil, nil, err
	}
	return AssembleRule(-1, 1, a, b, endpt, Double())
}

// JacobiRule returns the n-point Gauss-Jacobi rule for the weight
// (1-x)^alpha*(1+x)^beta on (-1,1), alpha, beta > -1.
func JacobiRule(alpha, beta float64, n int, endpt EndPt) (x, w []float64, err error) {
	a, b, err := JacobiCoefficients(alpha, beta, n)
	if err != nil {
		return nil, nil, err
	}
	return AssembleRule(-1, 1, a, b, endpt, Double())
}

// LaguerreRule returns the n-point Gauss-Laguerre rule for the weight
// x^alpha*exp(-x) on (0,inf). Only the left endpoint exists, so Right
// and Both are rejected.
func LaguerreRule(alpha float64, n int, endpt EndPt) (x, w []float64, err error) {
	if endpt == Right || endpt == Both {
		return nil, nil, fmt.Errorf("%w: the Laguerre interval has no right endpoint to fix",
			ErrInvalidDomain)
	}
	a, b, err := LaguerreCoefficients(alpha, n)
	if err != nil {
		return nil, nil, err
	}
	return AssembleRule(0, math.Inf(1), a, b, endpt, Double())
}

// HermiteRule returns the n-point Gauss-Hermite rule for the weight
// exp(-x^2) on (-inf,inf). Neither endpoint is finite, so only the
// unconstrained rule exists.
func HermiteRule(n int, endpt EndPt) (x, w []float64, err error) {
	if endpt != Neither {
		return nil, nil, fmt.Errorf("%w: the Hermite interval has no finite endpoint to fix",
			ErrInvalidDomain)
	}
	a, b, err := HermiteCoefficients(n)
	if err != nil {
		return nil, nil, err
	}
	return AssembleRule(math.Inf(-1), math.Inf(1), a, b, endpt, Double())
}

// ShiftedLegendreRule returns the n-point Gauss rule for the unit
// weight on (0,1).
func ShiftedLegendreRule(n int, endpt EndPt) (x, w []float64, err error) {
	a, b, err := ShiftedLegendreCoefficients(n)
	if err != nil {
		return nil, nil, err
	}
	return AssembleRule(0, 1, a, b, endpt, Double())
}

// LogWeightRule returns the n-point Gauss rule for the weight
// x^rho*log(1/x) on (0,1), rho > -1.
func LogWeightRule(rho float64, n int, endpt EndPt) (x, w []float64, err error) {
	a, b, err := LogWeightCoefficients(rho, n)
	if err != nil {
		return nil, nil, err
	}
	return AssembleRule(0, 1, a, b, endpt, Double())
}

// LogWeightIntRule is LogWeightRule for integer exponents r >= 0, built
// on the exact integer moment recursion. For rho = r the two agree to
// within rounding.
func LogWeightIntRule(r, n int, endpt EndPt) (x, w []float64, err error) {
	a, b, err := LogWeightIntCoefficients(r, n)
	if err != nil {
		return nil, nil, err
	}
	return AssembleRule(0, 1, a, b, endpt, Double())
}
