package gauss

import (
	"fmt"
	"math"
)

func checkN(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: need at least one node, got n = %d", ErrInvalidDomain, n)
	}
	return nil
}

// LegendreCoefficients returns the recurrence coefficients for the
// Legendre weight w(x) = 1 on (-1,1).
func LegendreCoefficients(n int) (a, b []float64, err error) {
	if err = checkN(n); err != nil {
		return nil, nil, err
	}
	a = make([]float64, n)
	b = make([]float64, n+1)
	b[0] = math.Sqrt2
	for i := 1; i <= n; i++ {
		k := i + 1
		b[i] = float64(k-1) / math.Sqrt(float64((2*k-1)*(2*k-3)))
	}
	return a, b, nil
}

// ChebyshevCoefficients returns the recurrence coefficients for the
// Chebyshev weights on (-1,1): kind 1 is w(x) = 1/sqrt(1-x^2), kind 2
// is w(x) = sqrt(1-x^2).
func ChebyshevCoefficients(kind, n int) (a, b []float64, err error) {
	if err = checkN(n); err != nil {
		return nil, nil, err
	}
	a = make([]float64, n)
	b = make([]float64, n+1)
	for i := 1; i <= n; i++ {
		b[i] = 0.5
	}
	switch kind {
	case 1:
		b[0] = math.Sqrt(math.Pi)
		// The first off-diagonal of T_n is 1/sqrt(2); a 1x1 matrix has
		// none, so the trailing entry keeps the generic 1/2.
		if n >= 2 {
			b[1] = math.Sqrt(0.5)
		}
	case 2:
		b[0] = math.Sqrt(math.Pi / 2)
	default:
		return nil, nil, fmt.Errorf("%w: Chebyshev kind must be 1 or 2, got %d",
			ErrInvalidDomain, kind)
	}
	return a, b, nil
}

// JacobiCoefficients returns the recurrence coefficients for the Jacobi
// weight w(x) = (1-x)^alpha*(1+x)^beta on (-1,1), alpha, beta > -1. The
// zeroth moment 2^(alpha+beta+1)*B(alpha+1,beta+1) is evaluated through
// log-gamma to avoid overflow for large parameters.
func JacobiCoefficients(alpha, beta float64, n int) (a, b []float64, err error) {
	if err = checkN(n); err != nil {
		return nil, nil, err
	}
	if alpha <= -1 || beta <= -1 {
		return nil, nil, fmt.Errorf("%w: Jacobi requires alpha > -1 and beta > -1, got alpha = %v, beta = %v",
			ErrInvalidDomain, alpha, beta)
	}
	a = make([]float64, n)
	b = make([]float64, n+1)
	ab := alpha + beta
	lgA, _ := math.Lgamma(alpha + 1)
	lgB, _ := math.Lgamma(beta + 1)
	lgAB, _ := math.Lgamma(ab + 2)
	b[0] = math.Exp(0.5 * ((ab+1)*math.Ln2 + lgA + lgB - lgAB))
	a[0] = (beta - alpha) / (ab + 2)
	b[1] = math.Sqrt(4 * (alpha + 1) * (beta + 1) / ((ab + 2) * (ab + 2) * (ab + 3)))
	for i := 2; i <= n; i++ {
		fi := float64(i)
		abi := ab + 2*fi
		a[i-1] = (beta*beta - alpha*alpha) / ((abi - 2) * abi)
		b[i] = math.Sqrt(4 * fi * (alpha + fi) * (beta + fi) * (ab + fi) /
			((abi*abi - 1) * abi * abi))
	}
	return a, b, nil
}

// LaguerreCoefficients returns the recurrence coefficients for the
// generalized Laguerre weight w(x) = x^alpha*exp(-x) on (0,inf),
// alpha > -1.
func LaguerreCoefficients(alpha float64, n int) (a, b []float64, err error) {
	if err = checkN(n); err != nil {
		return nil, nil, err
	}
	if alpha <= -1 {
		return nil, nil, fmt.Errorf("%w: Laguerre requires alpha > -1, got alpha = %v",
			ErrInvalidDomain, alpha)
	}
	a = make([]float64, n)
	b = make([]float64, n+1)
	lg, _ := math.Lgamma(alpha + 1)
	b[0] = math.Exp(0.5 * lg)
	for i := 1; i <= n; i++ {
		fi := float64(i)
		a[i-1] = 2*fi - 1 + alpha
		b[i] = math.Sqrt(fi * (alpha + fi))
	}
	return a, b, nil
}

// HermiteCoefficients returns the recurrence coefficients for the
// Hermite weight w(x) = exp(-x^2) on (-inf,inf).
func HermiteCoefficients(n int) (a, b []float64, err error) {
	if err = checkN(n); err != nil {
		return nil, nil, err
	}
	a = make([]float64, n)
	b = make([]float64, n+1)
	b[0] = math.Pow(math.Pi, 0.25)
	for i := 1; i <= n; i++ {
		b[i] = math.Sqrt(float64(i) / 2)
	}
	return a, b, nil
}

// ShiftedLegendreCoefficients returns the recurrence coefficients for
// the unit weight on (0,1). This family is the reference basis for the
// modified Chebyshev transform.
func ShiftedLegendreCoefficients(n int) (a, b []float64, err error) {
	if err = checkN(n); err != nil {
		return nil, nil, err
	}
	a = make([]float64, n)
	b = make([]float64, n+1)
	for i := range a {
		a[i] = 0.5
	}
	b[0] = 1
	for i := 1; i <= n; i++ {
		k := i + 1
		b[i] = float64(k-1) / (2 * math.Sqrt(float64((2*k-1)*(2*k-3))))
	}
	return a, b, nil
}

// LogWeightCoefficients returns the recurrence coefficients for the
// weight w(x) = x^rho*log(1/x) on (0,1), rho > -1, by the modified
// Chebyshev transform of the shifted-Legendre modified moments. The
// transform is run one order high so that all n+1 entries of b are
// determined.
func LogWeightCoefficients(rho float64, n int) (a, b []float64, err error) {
	if err = checkN(n); err != nil {
		return nil, nil, err
	}
	nu, err := LogWeightMoments(rho, n+1)
	if err != nil {
		return nil, nil, err
	}
	return logWeightFromMoments(nu, n)
}

// LogWeightIntCoefficients is LogWeightCoefficients for integer
// exponents r >= 0, using the exact integer moment recursion.
func LogWeightIntCoefficients(r, n int) (a, b []float64, err error) {
	if err = checkN(n); err != nil {
		return nil, nil, err
	}
	nu, err := LogWeightIntMoments(r, n+1)
	if err != nil {
		return nil, nil, err
	}
	return logWeightFromMoments(nu, n)
}

func logWeightFromMoments(nu []float64, n int) (a, b []float64, err error) {
	m := n + 1
	aRef, bRef, err := ShiftedLegendreCoefficients(2*m - 1)
	if err != nil {
		return nil, nil, err
	}
	alpha, beta, _, err := ModifiedChebyshev(aRef, bRef, nu)
	if err != nil {
		return nil, nil, err
	}
	return alpha[:n], beta[:n+1], nil
}
