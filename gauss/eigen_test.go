package gauss

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// symTriDense builds the dense symmetric tridiagonal matrix with
// diagonal d and sub-diagonal e, for cross-checking against gonum.
func symTriDense(d, e []float64) *mat.SymDense {
	n := len(d)
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, d[i])
		if i < n-1 {
			s.SetSym(i, i+1, e[i])
		}
	}
	return s
}

func TestSymTriEigAgainstGonum(t *testing.T) {
	const tol = 1e-12
	cases := []struct {
		name  string
		coefs func() ([]float64, []float64, error)
	}{
		{"legendre-8", func() ([]float64, []float64, error) { return LegendreCoefficients(8) }},
		{"jacobi-6", func() ([]float64, []float64, error) { return JacobiCoefficients(0.3, 0.7, 6) }},
		{"laguerre-7", func() ([]float64, []float64, error) { return LaguerreCoefficients(1.5, 7) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b, err := tc.coefs()
			require.NoError(t, err)
			n := len(a)

			d := append([]float64(nil), a...)
			e := make([]float64, n)
			copy(e, b[1:n])
			z := make([]float64, n)
			require.NoError(t, symTriEig(d, e, z, DoubleEps, DoubleMaxIter))

			var eig mat.EigenSym
			ok := eig.Factorize(symTriDense(a, b[1:n]), true)
			require.True(t, ok, "gonum eigen decomposition failed")
			want := eig.Values(nil)
			vecs := mat.NewDense(n, n, nil)
			eig.VectorsTo(vecs)

			// gonum returns ascending eigenvalues; sort ours along with
			// the first components to match.
			sort.Sort(byNode{d, z})
			wantZ := append([]float64(nil), vecs.RawRowView(0)...)
			for i := 0; i < n; i++ {
				assert.InDelta(t, want[i], d[i], tol, "eigenvalue %d", i)
				assert.InDelta(t, wantZ[i]*wantZ[i], z[i]*z[i], tol,
					"first eigenvector component %d", i)
			}
		})
	}
}

func TestSymTriEigSingle(t *testing.T) {
	d := []float64{3.5}
	e := []float64{0}
	z := []float64{0}
	require.NoError(t, symTriEig(d, e, z, DoubleEps, DoubleMaxIter))
	assert.Equal(t, 3.5, d[0])
	assert.Equal(t, 1.0, z[0])
}

func TestSymTriEigDiagonal(t *testing.T) {
	// Already-split matrix converges without any sweeps, even with a
	// zero iteration budget.
	d := []float64{2, -1, 5}
	e := []float64{0, 0, 0}
	z := make([]float64, 3)
	require.NoError(t, symTriEig(d, e, z, DoubleEps, 0))
	assert.Equal(t, []float64{2, -1, 5}, d)
	assert.Equal(t, 1.0, z[0])
}

func TestSymTriEigIterationBudget(t *testing.T) {
	a, b, err := LegendreCoefficients(4)
	require.NoError(t, err)
	d := append([]float64(nil), a...)
	e := make([]float64, 4)
	copy(e, b[1:4])
	z := make([]float64, 4)
	err = symTriEig(d, e, z, DoubleEps, 0)
	require.ErrorIs(t, err, ErrConvergenceFailure)
	assert.Contains(t, err.Error(), "0 QL iterations")
}

func TestSymTriEigFirstComponentsSumToOne(t *testing.T) {
	// The z values are rows of an orthogonal transform of e_1, so their
	// squares always sum to 1 regardless of the matrix.
	a, b, err := HermiteCoefficients(12)
	require.NoError(t, err)
	d := append([]float64(nil), a...)
	e := make([]float64, 12)
	copy(e, b[1:12])
	z := make([]float64, 12)
	require.NoError(t, symTriEig(d, e, z, DoubleEps, DoubleMaxIter))
	var sum float64
	for _, zi := range z {
		sum += zi * zi
	}
	assert.InDelta(t, 1, sum, 1e-13)
}
