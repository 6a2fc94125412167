package gauss

import (
	"fmt"
	"math"
)

// symTriEig computes all eigenvalues of the symmetric tridiagonal
// matrix with diagonal d and sub-diagonal e[0..n-2], together with the
// first component of each normalized eigenvector, by implicit QL
// iteration with Wilkinson shifts. On return d holds the eigenvalues
// (indexed by deflation order, not sorted by value) and z the matching
// first components; e is overwritten, with e[n-1] used as workspace.
//
// A sub-diagonal entry counts as negligible when |e_i| <= eps*(|d_i| +
// |d_{i+1}|). Each eigenvalue gets at most maxits QL sweeps before the
// iteration fails.
func symTriEig(d, e, z []float64, eps float64, maxits int) error {
	n := len(d)
	for i := range z {
		z[i] = 0
	}
	z[0] = 1
	if n == 1 {
		return nil
	}
	e[n-1] = 0
	for l := 0; l < n; l++ {
		for its := 0; ; its++ {
			// Look for a single small sub-diagonal element to split
			// the matrix.
			m := l
			for ; m < n-1; m++ {
				dd := math.Abs(d[m]) + math.Abs(d[m+1])
				if math.Abs(e[m]) <= eps*dd {
					break
				}
			}
			if m == l {
				break
			}
			if its >= maxits {
				return fmt.Errorf("%w: eigenvalue %d did not converge after %d QL iterations (raise Config.MaxIter)",
					ErrConvergenceFailure, l, maxits)
			}
			// Implicit shift from the leading 2x2 block.
			g := (d[l+1] - d[l]) / (2 * e[l])
			r := math.Hypot(g, 1)
			g = d[m] - d[l] + e[l]/(g+math.Copysign(r, g))
			s, c := 1.0, 1.0
			p := 0.0
			i := m - 1
			for ; i >= l; i-- {
				f := s * e[i]
				bb := c * e[i]
				r = math.Hypot(f, g)
				e[i+1] = r
				if r == 0 {
					// Recover from underflow: deflate and restart the
					// sweep.
					d[i+1] -= p
					e[m] = 0
					break
				}
				s = f / r
				c = g / r
				g = d[i+1] - p
				r = (d[i]-g)*s + 2*c*bb
				p = s * r
				d[i+1] = g + p
				g = c*r - bb

				// Rotate z so it keeps tracking the eigenvectors'
				// first components.
				f = z[i+1]
				z[i+1] = s*z[i] + c*f
				z[i] = c*z[i] - s*f
			}
			if r == 0 && i >= l {
				continue
			}
			d[l] -= p
			e[l] = g
			e[m] = 0
		}
	}
	return nil
}
