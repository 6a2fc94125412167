package gauss

import (
	"fmt"
	"math"
	"strings"
)

// EndPt selects which interval endpoints are forced to appear as
// quadrature nodes.
type EndPt uint8

const (
	Neither EndPt = iota // plain Gauss rule, all nodes interior
	Left                 // Radau rule pinned at lo
	Right                // Radau rule pinned at hi
	Both                 // Lobatto rule pinned at lo and hi
)

func (e EndPt) String() string {
	switch e {
	case Neither:
		return "neither"
	case Left:
		return "left"
	case Right:
		return "right"
	case Both:
		return "both"
	}
	return fmt.Sprintf("EndPt(%d)", uint8(e))
}

// ParseEndPt maps the YAML/CLI spellings onto an EndPt. The empty
// string means Neither.
func ParseEndPt(s string) (EndPt, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "neither", "gauss":
		return Neither, nil
	case "left", "radau-left":
		return Left, nil
	case "right", "radau-right":
		return Right, nil
	case "both", "lobatto":
		return Both, nil
	}
	return Neither, fmt.Errorf("%w: unknown endpoint mode %q", ErrInvalidDomain, s)
}

// solveShift performs unpivoted forward elimination on the continuant
// of (J_n - shift*I) and returns the reciprocal of the final pivot,
//
//	t_1 = a_1 - shift,  t_i = a_i - shift - b_i^2/t_{i-1},  i = 2..n-1.
//
// A zero pivot means the shift already coincides with an eigenvalue of
// a leading principal submatrix, which the perturbation formulas cannot
// absorb.
func solveShift(n int, shift float64, a, b []float64) (float64, error) {
	t := a[0] - shift
	for i := 1; i < n-1; i++ {
		if t == 0 {
			return 0, fmt.Errorf("%w: zero pivot at row %d eliminating shift %v",
				ErrAlgorithmBreakdown, i, shift)
		}
		t = a[i] - shift - b[i]*b[i]/t
	}
	if t == 0 {
		return 0, fmt.Errorf("%w: zero final pivot eliminating shift %v",
			ErrAlgorithmBreakdown, shift)
	}
	return 1 / t, nil
}

// applyEndpoint perturbs (a,b) in place so that the requested boundary
// values become exact eigenvalues of the tridiagonal matrix. For Radau
// rules only a[n-1] moves; for Lobatto rules b[n-1] moves as well.
func applyEndpoint(lo, hi float64, a, b []float64, endpt EndPt) error {
	n := len(a)
	switch endpt {
	case Neither:
	case Left:
		if n == 1 {
			a[0] = lo
			return nil
		}
		g, err := solveShift(n, lo, a, b)
		if err != nil {
			return err
		}
		a[n-1] = g*b[n-1]*b[n-1] + lo
	case Right:
		if n == 1 {
			a[0] = hi
			return nil
		}
		g, err := solveShift(n, hi, a, b)
		if err != nil {
			return err
		}
		a[n-1] = g*b[n-1]*b[n-1] + hi
	case Both:
		if n == 1 {
			return fmt.Errorf("%w: a Lobatto rule needs at least two nodes", ErrInvalidDomain)
		}
		g, err := solveShift(n, lo, a, b)
		if err != nil {
			return err
		}
		gh, err := solveShift(n, hi, a, b)
		if err != nil {
			return err
		}
		if g == gh {
			return fmt.Errorf("%w: degenerate Lobatto system for interval (%v,%v)",
				ErrAlgorithmBreakdown, lo, hi)
		}
		t1 := (hi - lo) / (g - gh)
		if t1 <= 0 {
			return fmt.Errorf("%w: negative radicand %v in Lobatto adjustment",
				ErrAlgorithmBreakdown, t1)
		}
		b[n-1] = math.Sqrt(t1)
		a[n-1] = lo + g*t1
	default:
		return fmt.Errorf("%w: unknown endpoint mode %v", ErrInvalidDomain, endpt)
	}
	return nil
}
