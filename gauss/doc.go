// Package gauss computes nodes and weights for Gauss-type quadrature
// rules by the Golub-Welsch method: the recurrence coefficients of the
// orthogonal polynomial family are assembled into a symmetric
// tridiagonal Jacobi matrix, its eigenvalues are the nodes, and the
// squared first components of its normalized eigenvectors (scaled by
// the zeroth moment) are the weights. Radau and Lobatto variants are
// obtained by perturbing the last recurrence coefficients so that one
// or both interval endpoints become exact eigenvalues.
//
// INDEXING NOTE: the quadrature literature writes the monic three-term
// recurrence with 1-based arrays,
//
//	p_k(x) = (x - a_k) p_{k-1}(x) - b_k^2 p_{k-2}(x),
//
// with b_1^2 equal to the zeroth moment of the weight function. This
// package uses standard 0-based Go slices throughout: a[0..n-1] holds
// a_1..a_n and b[0..n] holds b_1..b_(n+1), so b[0]*b[0] is the zeroth
// moment and b[i] for i >= 1 couples polynomial degrees i-1 and i.
//
// Supported weight families are Legendre, Chebyshev (first and second
// kind), Jacobi, Laguerre, Hermite, shifted Legendre on (0,1), and the
// logarithmic weight x^rho*log(1/x) on (0,1), whose coefficients are
// bootstrapped from modified moments via the modified Chebyshev
// (Wheeler) algorithm.
//
// All operations are synchronous and share no state between calls;
// independent rule constructions are safe to run concurrently.
package gauss
