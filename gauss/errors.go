package gauss

import "errors"

// Sentinel errors returned by rule construction. All are unrecoverable
// at the point of detection: InvalidDomain indicates misuse, the other
// two indicate numerical infeasibility of the request. Wrap context is
// added with fmt.Errorf("%w: ..."), so callers discriminate with
// errors.Is.
var (
	// ErrInvalidDomain reports family parameters outside their valid
	// range, an unsupported Chebyshev kind, or an endpoint mode the
	// weight function cannot support.
	ErrInvalidDomain = errors.New("gauss: invalid domain")

	// ErrAlgorithmBreakdown reports a negative radicand in the modified
	// Chebyshev transform or a degenerate pivot in the endpoint solver:
	// the moment data or shift is not realizable by a positive-definite
	// measure at working precision.
	ErrAlgorithmBreakdown = errors.New("gauss: algorithm breakdown")

	// ErrConvergenceFailure reports that the QL iteration exhausted its
	// iteration budget for some eigenvalue.
	ErrConvergenceFailure = errors.New("gauss: convergence failure")
)
