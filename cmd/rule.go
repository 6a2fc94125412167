/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/quadrature/InputParameters"
	"github.com/notargets/quadrature/gauss"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

// RuleCmd represents the rule command
var RuleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Print the nodes and weights of a single quadrature rule",
	Long: `
Builds one Gauss-type rule from command line flags and prints its node
and weight table,

quadrature rule --family legendre -n 10 --endpoint lobatto`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rp InputParameters.RuleParameters
		rp.Family, _ = cmd.Flags().GetString("family")
		rp.Alpha, _ = cmd.Flags().GetFloat64("alpha")
		rp.Beta, _ = cmd.Flags().GetFloat64("beta")
		rp.Rho, _ = cmd.Flags().GetFloat64("rho")
		rp.N, _ = cmd.Flags().GetInt("n")
		rp.EndPoint, _ = cmd.Flags().GetString("endpoint")
		rp.MaxIterations, _ = cmd.Flags().GetInt("maxits")
		rp.Epsilon, _ = cmd.Flags().GetFloat64("eps")
		x, w, err := BuildRule(rp)
		if err != nil {
			return err
		}
		PrintRule(rp, x, w)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(RuleCmd)
	RuleCmd.Flags().StringP("family", "f", "legendre", "weight function family: legendre, chebyshev1, chebyshev2, jacobi, laguerre, hermite, shifted-legendre, logweight")
	RuleCmd.Flags().IntP("n", "n", 5, "number of quadrature nodes")
	RuleCmd.Flags().StringP("endpoint", "e", "neither", "fixed endpoints: neither, left, right, both")
	RuleCmd.Flags().Float64P("alpha", "a", 0, "alpha parameter (jacobi, laguerre)")
	RuleCmd.Flags().Float64P("beta", "b", 0, "beta parameter (jacobi)")
	RuleCmd.Flags().Float64P("rho", "r", 0, "exponent of the logweight family")
	RuleCmd.Flags().Int("maxits", 0, "override the QL iteration cap")
	RuleCmd.Flags().Float64("eps", 0, "override the QL convergence tolerance")
}

// familyCoefficients resolves rp.Family to recurrence coefficients and
// the support interval of the weight function.
func familyCoefficients(rp InputParameters.RuleParameters) (a, b []float64, lo, hi float64, err error) {
	switch strings.ToLower(rp.Family) {
	case "legendre":
		a, b, err = gauss.LegendreCoefficients(rp.N)
		lo, hi = -1, 1
	case "chebyshev1":
		a, b, err = gauss.ChebyshevCoefficients(1, rp.N)
		lo, hi = -1, 1
	case "chebyshev2":
		a, b, err = gauss.ChebyshevCoefficients(2, rp.N)
		lo, hi = -1, 1
	case "jacobi":
		a, b, err = gauss.JacobiCoefficients(rp.Alpha, rp.Beta, rp.N)
		lo, hi = -1, 1
	case "laguerre":
		a, b, err = gauss.LaguerreCoefficients(rp.Alpha, rp.N)
		lo, hi = 0, math.Inf(1)
	case "hermite":
		a, b, err = gauss.HermiteCoefficients(rp.N)
		lo, hi = math.Inf(-1), math.Inf(1)
	case "shifted-legendre":
		a, b, err = gauss.ShiftedLegendreCoefficients(rp.N)
		lo, hi = 0, 1
	case "logweight":
		a, b, err = gauss.LogWeightCoefficients(rp.Rho, rp.N)
		lo, hi = 0, 1
	default:
		err = fmt.Errorf("%w: unknown weight family %q",
			gauss.ErrInvalidDomain, rp.Family)
	}
	return
}

// BuildRule constructs the rule described by rp through the generic
// AssembleRule entry point, so YAML batches and flag invocations share
// one code path.
func BuildRule(rp InputParameters.RuleParameters) (x, w []float64, err error) {
	endpt, err := gauss.ParseEndPt(rp.EndPoint)
	if err != nil {
		return nil, nil, err
	}
	cfg := gauss.Double()
	if rp.Epsilon > 0 {
		cfg.Eps = rp.Epsilon
	}
	if rp.MaxIterations > 0 {
		cfg.MaxIter = rp.MaxIterations
	}
	a, b, lo, hi, err := familyCoefficients(rp)
	if err != nil {
		return nil, nil, err
	}
	if math.IsInf(lo, -1) && (endpt == gauss.Left || endpt == gauss.Both) {
		return nil, nil, fmt.Errorf("%w: %s has no finite left endpoint to fix",
			gauss.ErrInvalidDomain, rp.Family)
	}
	if math.IsInf(hi, 1) && (endpt == gauss.Right || endpt == gauss.Both) {
		return nil, nil, fmt.Errorf("%w: %s has no finite right endpoint to fix",
			gauss.ErrInvalidDomain, rp.Family)
	}
	return gauss.AssembleRule(lo, hi, a, b, endpt, cfg)
}

func PrintRule(rp InputParameters.RuleParameters, x, w []float64) {
	fmt.Printf("%s\n", rp.Describe())
	fmt.Printf("%4s %24s %24s\n", "i", "node", "weight")
	for i := range x {
		fmt.Printf("%4d %24.16e %24.16e\n", i, x[i], w[i])
	}
	fmt.Printf("sum(w) = %.16e\n", floats.Sum(w))
}
