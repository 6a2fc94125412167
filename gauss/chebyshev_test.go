package gauss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifiedChebyshevSelfConsistency(t *testing.T) {
	// Moments of the reference weight against its own orthonormal basis
	// are (mu0, 0, 0, ...), so the transform must hand back the
	// reference coefficients.
	const (
		m   = 5
		tol = 1e-14
	)
	a, b, err := ShiftedLegendreCoefficients(2*m - 1)
	require.NoError(t, err)
	ν := make([]float64, 2*m)
	ν[0] = 1
	α, β, σ, err := ModifiedChebyshev(a, b, ν)
	require.NoError(t, err)
	require.Len(t, α, m)
	require.Len(t, β, m+1)
	assert.InDelta(t, 1, σ[0][0], tol)
	for k := 0; k < m; k++ {
		assert.InDelta(t, 0.5, α[k], tol, "alpha[%d]", k)
		assert.InDelta(t, b[k], β[k], tol, "beta[%d]", k)
	}
	assert.Zero(t, β[m]) // undetermined by 2m moments
}

func TestModifiedChebyshevBreakdown(t *testing.T) {
	a, b, err := ShiftedLegendreCoefficients(7)
	require.NoError(t, err)
	// nu[1] far too large for a positive measure with nu[0] = 1: the
	// order-1 radicand goes negative.
	ν := []float64{1, 10, 0, 0, 0, 0, 0, 0}
	_, _, _, err = ModifiedChebyshev(a, b, ν)
	assert.ErrorIs(t, err, ErrAlgorithmBreakdown)

	ν[0] = -1
	_, _, _, err = ModifiedChebyshev(a, b, ν)
	assert.ErrorIs(t, err, ErrAlgorithmBreakdown)
}

func TestModifiedChebyshevArgValidation(t *testing.T) {
	a, b, err := ShiftedLegendreCoefficients(7)
	require.NoError(t, err)
	_, _, _, err = ModifiedChebyshev(a, b, make([]float64, 5))
	assert.ErrorIs(t, err, ErrInvalidDomain)
	_, _, _, err = ModifiedChebyshev(a[:2], b[:3], make([]float64, 8))
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestLogWeightCoefficientsFirstShift(t *testing.T) {
	// For w = log(1/x): mu0 = 1 and alpha_1 = 1/4; the 2-point rule has
	// trace alpha_1 + alpha_2 = 5/7.
	const tol = 1e-14
	a, b, err := LogWeightIntCoefficients(0, 2)
	require.NoError(t, err)
	require.Len(t, a, 2)
	require.Len(t, b, 3)
	assert.InDelta(t, 1, b[0], tol)
	assert.InDelta(t, 0.25, a[0], tol)
	assert.InDelta(t, 5./7, a[0]+a[1], 1e-13)
	for i := 1; i < len(b); i++ {
		assert.True(t, b[i] > 0, "b[%d] = %g must be positive", i, b[i])
	}
}
