package gauss

import "gonum.org/v1/gonum/mat"

// OrthonormalPoly evaluates the orthonormal polynomial sequence defined
// by the recurrence coefficients a (length n) and b (length n+1) at the
// given points. The result has one row per point and one column per
// degree 0..n, with
//
//	P(i,0) = 1/b[0]
//	P(i,j) = ((x_i - a[j-1])*P(i,j-1) - b[j-1]*P(i,j-2)) / b[j]
//
// Pure function; the coefficient slices are read only. All b entries
// must be positive (the generators guarantee this), otherwise the
// columns degenerate.
func OrthonormalPoly(x []float64, a, b []float64) *mat.Dense {
	n := len(a)
	p := mat.NewDense(len(x), n+1, nil)
	for i, xi := range x {
		p.Set(i, 0, 1/b[0])
		if n >= 1 {
			p.Set(i, 1, (xi-a[0])*p.At(i, 0)/b[1])
		}
		for j := 2; j <= n; j++ {
			p.Set(i, j, ((xi-a[j-1])*p.At(i, j-1)-b[j-1]*p.At(i, j-2))/b[j])
		}
	}
	return p
}
