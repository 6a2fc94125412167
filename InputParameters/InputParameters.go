package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file describing a batch of
// quadrature rules to construct
type QuadParameters struct {
	Title string           `json:"Title"`
	Rules []RuleParameters `json:"Rules"`
}

// RuleParameters describes one rule. Family is one of legendre,
// chebyshev1, chebyshev2, jacobi, laguerre, hermite, shifted-legendre,
// logweight; Alpha/Beta/Rho apply to the families that take them.
//
// Documents are decoded through ghodss/yaml, which converts YAML to
// JSON and matches the json tags. The node count is keyed "Nodes"
// rather than a bare "N", which YAML 1.1 resolves to the boolean false
// before any tag is consulted.
type RuleParameters struct {
	Title         string  `json:"Title"`
	Family        string  `json:"Family"`
	Alpha         float64 `json:"Alpha"`
	Beta          float64 `json:"Beta"`
	Rho           float64 `json:"Rho"`
	N             int     `json:"Nodes"`
	EndPoint      string  `json:"EndPoint"` // neither | left | right | both
	MaxIterations int     `json:"MaxIterations"`
	Epsilon       float64 `json:"Epsilon"`
}

func (qp *QuadParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, qp)
}

func (qp *QuadParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", qp.Title)
	fmt.Printf("[%d]\t\t\t= Number of Rules\n", len(qp.Rules))
	for i, rp := range qp.Rules {
		fmt.Printf("Rules[%d] = %s\n", i, rp.Describe())
	}
}

func (rp *RuleParameters) Describe() string {
	s := fmt.Sprintf("%s n=%d", rp.Family, rp.N)
	switch rp.Family {
	case "jacobi":
		s += fmt.Sprintf(" alpha=%g beta=%g", rp.Alpha, rp.Beta)
	case "laguerre":
		s += fmt.Sprintf(" alpha=%g", rp.Alpha)
	case "logweight":
		s += fmt.Sprintf(" rho=%g", rp.Rho)
	}
	if rp.EndPoint != "" {
		s += fmt.Sprintf(" endpoint=%s", rp.EndPoint)
	}
	return s
}
