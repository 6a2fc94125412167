package gauss

// Unit roundoff per IEEE precision.
const (
	SingleEps = 0x1p-23
	DoubleEps = 0x1p-52
)

// QL iteration caps per eigenvalue. The reference algorithm uses 30 for
// hardware precisions and 40 for extended precision; float64 is the
// widest type gonum supports, so 40 is not reachable here.
const (
	SingleMaxIter = 30
	DoubleMaxIter = 30
)

// Config carries the numeric tolerances for one rule construction. It
// is passed explicitly through AssembleRule; there is no process-wide
// precision state.
type Config struct {
	// Eps is the convergence tolerance for the QL iteration. Zero means
	// DoubleEps.
	Eps float64

	// MaxIter caps the QL iterations per eigenvalue and is taken
	// literally: a zero cap fails with ErrConvergenceFailure on any
	// matrix that needs at least one sweep.
	MaxIter int
}

// Double returns the float64 configuration used by the per-family rule
// constructors.
func Double() Config { return Config{Eps: DoubleEps, MaxIter: DoubleMaxIter} }

// Single returns a configuration with float32-scale tolerances, for
// callers that only need single-precision accuracy.
func Single() Config { return Config{Eps: SingleEps, MaxIter: SingleMaxIter} }

func (c Config) eps() float64 {
	if c.Eps == 0 {
		return DoubleEps
	}
	return c.Eps
}
