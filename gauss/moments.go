package gauss

import (
	"fmt"
	"math"
)

// LogWeightIntMoments returns the first 2n modified moments of the
// weight w(x) = x^r*log(1/x) on (0,1), r >= 0 integer, relative to the
// orthonormal shifted-Legendre polynomials. Closed form for degree k:
//
//	M_k = c_k*S_k                                   k <= r
//	M_k = (-1)^(k-r) r!^2 (k-r-1)!/(k+r+1)!         k >= r+1
//
// with c_k = r!^2/((r-k)!(k+r+1)!) and S_k the digamma combination
// psi(r-k+1)+psi(r+k+2)-2psi(r+1). Both pieces are evaluated by exact
// recursions: c as a running product of rational factors, S as a
// running sum of reciprocal differences, so no gamma or digamma
// evaluations (and none of their cancellation) enter the result. The
// k = r+1 crossover term is a closed form in the last product value.
func LogWeightIntMoments(r, n int) ([]float64, error) {
	if r < 0 {
		return nil, fmt.Errorf("%w: log weight requires integer exponent r >= 0, got %d",
			ErrInvalidDomain, r)
	}
	if err := checkN(n); err != nil {
		return nil, err
	}
	m := 2 * n
	nu := make([]float64, m)
	c := 1 / float64(r+1)
	s := c
	kmax := min(r, m-1)
	for k := 0; k <= kmax; k++ {
		if k > 0 {
			c *= float64(r-k+1) / float64(r+k+1)
			s += 1/float64(r+k+1) - 1/float64(r-k+1)
		}
		nu[k] = math.Sqrt(float64(2*k+1)) * c * s
	}
	if r+1 <= m-1 {
		mk := -c / float64(2*r+2)
		nu[r+1] = math.Sqrt(float64(2*r+3)) * mk
		for k := r + 2; k <= m-1; k++ {
			mk *= -float64(k-r-1) / float64(k+r+1)
			nu[k] = math.Sqrt(float64(2*k+1)) * mk
		}
	}
	return nu, nil
}

// LogWeightMoments is the general-exponent companion of
// LogWeightIntMoments: the first 2n modified moments of
// w(x) = x^rho*log(1/x) on (0,1) for real rho > -1.
//
// The recursion has the same structure as the integer one, with the
// crossover index taken at r = round(rho) (half-integers round away
// from zero, so rho = 2.5 crosses at r = 3) while rho itself stays in
// the arithmetic. At the crossover the product accumulator carries a
// factor delta = rho - r that would cancel catastrophically against
// the diverging reciprocal sum, so the delta part is split out as an
// explicit correction term; past the crossover the moment itself is
// advanced multiplicatively with the same correction.
func LogWeightMoments(rho float64, n int) ([]float64, error) {
	if rho <= -1 {
		return nil, fmt.Errorf("%w: log weight requires rho > -1, got %v",
			ErrInvalidDomain, rho)
	}
	if err := checkN(n); err != nil {
		return nil, err
	}
	m := 2 * n
	nu := make([]float64, m)
	r := int(math.Round(rho))
	if r < 0 {
		r = 0
	}
	c := 1 / (rho + 1)
	s := c
	kmax := min(r, m-1)
	for k := 0; k <= kmax; k++ {
		if k > 0 {
			fk := float64(k)
			c *= (rho - fk + 1) / (rho + fk + 1)
			s += 1/(rho+fk+1) - 1/(rho-fk+1)
		}
		nu[k] = math.Sqrt(float64(2*k+1)) * c * s
	}
	if r+1 <= m-1 {
		delta := rho - float64(r)
		q := rho + float64(r) + 2
		x := delta * (s + 1/q)
		mk := (c / q) * (x - 1)
		c *= delta / q
		nu[r+1] = math.Sqrt(float64(2*r+3)) * mk
		for k := r + 2; k <= m-1; k++ {
			fk := float64(k)
			u := (rho - fk + 1) / (rho + fk + 1)
			mk = u*mk + c/(rho+fk+1)*(u-1)
			c *= u
			nu[k] = math.Sqrt(float64(2*k+1)) * mk
		}
	}
	return nu, nil
}
