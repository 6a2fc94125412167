package gauss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWeightIntMomentsLowOrders(t *testing.T) {
	const tol = 1e-15

	// r = 0: M_0 = 1, M_1 = -1/2, M_2 = 1/6 against the shifted
	// Legendre polynomials 1, 2x-1, 6x^2-6x+1, each scaled by
	// sqrt(2k+1) for the orthonormal basis.
	ν, err := LogWeightIntMoments(0, 2)
	require.NoError(t, err)
	require.Len(t, ν, 4)
	assert.InDelta(t, 1, ν[0], tol)
	assert.InDelta(t, -math.Sqrt(3)/2, ν[1], tol)
	assert.InDelta(t, math.Sqrt(5)/6, ν[2], tol)

	// r = 1: M_0 = 1/4, M_1 = -1/36, M_2 = -1/24.
	ν, err = LogWeightIntMoments(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ν[0], tol)
	assert.InDelta(t, -math.Sqrt(3)/36, ν[1], tol)
	assert.InDelta(t, -math.Sqrt(5)/24, ν[2], tol)
}

func TestLogWeightMomentsDirectValues(t *testing.T) {
	// rho = 1/2, exact rationals worked out from
	// M_k = Γ(ρ+1)^2/(Γ(ρ-k+1)Γ(ρ+k+2)) * (ψ(ρ-k+1)+ψ(ρ+k+2)-2ψ(ρ+1)).
	const tol = 1e-14
	ν, err := LogWeightMoments(0.5, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4./9, ν[0], tol)
	assert.InDelta(t, math.Sqrt(3)*(-28./225), ν[1], tol)
	assert.InDelta(t, math.Sqrt(5)*(-284./11025), ν[2], tol)
}

func TestLogWeightMomentsMatchIntegerRecursion(t *testing.T) {
	const tol = 1e-13
	for _, r := range []int{0, 1, 2, 3, 7} {
		νInt, err := LogWeightIntMoments(r, 6)
		require.NoError(t, err)
		νReal, err := LogWeightMoments(float64(r), 6)
		require.NoError(t, err)
		for k := range νInt {
			assert.InDelta(t, νInt[k], νReal[k], tol*math.Max(1, math.Abs(νInt[k])),
				"r = %d, moment %d", r, k)
		}
	}
}

func TestLogWeightMomentsHalfIntegerRho(t *testing.T) {
	// rho = 2.5 rounds away from zero, so the crossover index moves at
	// the half-integer boundary; the computed moments must still be
	// continuous in rho across it.
	const δ = 1e-9
	lo, err := LogWeightMoments(2.5-δ, 5)
	require.NoError(t, err)
	hi, err := LogWeightMoments(2.5+δ, 5)
	require.NoError(t, err)
	for k := range lo {
		assert.InDelta(t, lo[k], hi[k], 1e-7, "moment %d", k)
	}
}

func TestLogWeightRuleTwoPoint(t *testing.T) {
	// Classical tabulated 2-point rule for w(x) = log(1/x) on (0,1).
	const tol = 1e-9
	x, w, err := LogWeightIntRule(0, 2, Neither)
	require.NoError(t, err)
	assert.InDelta(t, 0.112008806, x[0], tol)
	assert.InDelta(t, 0.602276908, x[1], tol)
	assert.InDelta(t, 0.718539319, w[0], tol)
	assert.InDelta(t, 0.281460681, w[1], tol)
}

func TestLogWeightMomentProperty(t *testing.T) {
	// The weighted monomial integrals have the closed form
	// ∫_0^1 x^(ρ+k) log(1/x) dx = 1/(ρ+k+1)^2, so an n-point rule must
	// reproduce them through degree 2n-1.
	for _, ρ := range []float64{-0.9, -0.25, 0, 0.5, 2, 3.75} {
		for _, n := range []int{1, 2, 3, 5, 8} {
			x, w, err := LogWeightRule(ρ, n, Neither)
			require.NoError(t, err, "rho = %v, n = %d", ρ, n)
			for k := 0; k <= 2*n-1; k++ {
				assertClose(t, logWeightMoment(k, ρ), quadSum(x, w, k), 1e-9,
					"rho = %v, n = %d: moment %d", ρ, n, k)
			}
		}
	}
}

func TestLogWeightIntMomentProperty(t *testing.T) {
	for _, r := range []int{0, 1, 4} {
		for _, n := range []int{1, 2, 5, 8} {
			x, w, err := LogWeightIntRule(r, n, Neither)
			require.NoError(t, err, "r = %d, n = %d", r, n)
			for k := 0; k <= 2*n-1; k++ {
				assertClose(t, logWeightMoment(k, float64(r)), quadSum(x, w, k), 1e-10,
					"r = %d, n = %d: moment %d", r, n, k)
			}
		}
	}
}

func TestLogWeightIntAgreesWithGeneral(t *testing.T) {
	// The two independent recursions must agree when rho is the same
	// integer.
	for _, r := range []int{0, 2, 5} {
		xi, wi, err := LogWeightIntRule(r, 6, Neither)
		require.NoError(t, err)
		xg, wg, err := LogWeightRule(float64(r), 6, Neither)
		require.NoError(t, err)
		for i := range xi {
			assert.InDelta(t, xi[i], xg[i], 1e-12, "r = %d: node %d", r, i)
			assert.InDelta(t, wi[i], wg[i], 1e-12, "r = %d: weight %d", r, i)
		}
	}
}

func TestLogWeightRadau(t *testing.T) {
	// Radau at the singular endpoint x = 0 is still a valid rule.
	const n = 5
	x, w, err := LogWeightIntRule(0, n, Left)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x[0])
	for k := 0; k <= 2*n-2; k++ {
		assertClose(t, logWeightMoment(k, 0), quadSum(x, w, k), 1e-9, "moment %d", k)
	}
}

func TestLogWeightMomentsInvalidDomain(t *testing.T) {
	_, err := LogWeightMoments(-1, 3)
	assert.ErrorIs(t, err, ErrInvalidDomain)
	_, err = LogWeightIntMoments(-2, 3)
	assert.ErrorIs(t, err, ErrInvalidDomain)
	_, err = LogWeightIntMoments(0, 0)
	assert.ErrorIs(t, err, ErrInvalidDomain)
}
