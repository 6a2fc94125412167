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

	"github.com/notargets/quadrature/InputParameters"
	"github.com/notargets/quadrature/gauss"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// OrthoCmd represents the ortho command
var OrthoCmd = &cobra.Command{
	Use:   "ortho",
	Short: "Tabulate the orthonormal polynomials of a weight family",
	Long: `
Evaluates the orthonormal polynomials q_0..q_n of the chosen weight
family on a uniform grid of sample points and prints the resulting
Vandermonde matrix,

quadrature ortho --family legendre -n 4 --samples 9`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rp InputParameters.RuleParameters
		rp.Family, _ = cmd.Flags().GetString("family")
		rp.Alpha, _ = cmd.Flags().GetFloat64("alpha")
		rp.Beta, _ = cmd.Flags().GetFloat64("beta")
		rp.Rho, _ = cmd.Flags().GetFloat64("rho")
		rp.N, _ = cmd.Flags().GetInt("n")
		samples, _ := cmd.Flags().GetInt("samples")
		if samples < 2 {
			return fmt.Errorf("need at least 2 sample points, got %d", samples)
		}
		a, b, lo, hi, err := familyCoefficients(rp)
		if err != nil {
			return err
		}
		// Infinite supports get a finite plotting window that covers
		// the extreme Gauss nodes of the family.
		if math.IsInf(hi, 1) {
			hi = 2*float64(rp.N) + 2
		}
		if math.IsInf(lo, -1) {
			lo = -hi
		}
		x := floats.Span(make([]float64, samples), lo, hi)
		P := gauss.OrthonormalPoly(x, a, b)
		fmt.Printf("%s, q_0..q_%d at %d points on [%g,%g]\n",
			rp.Describe(), rp.N, samples, lo, hi)
		fmt.Printf("P = %.8v\n", mat.Formatted(P, mat.Squeeze()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(OrthoCmd)
	OrthoCmd.Flags().StringP("family", "f", "legendre", "weight function family")
	OrthoCmd.Flags().IntP("n", "n", 4, "highest polynomial degree")
	OrthoCmd.Flags().Float64P("alpha", "a", 0, "alpha parameter (jacobi, laguerre)")
	OrthoCmd.Flags().Float64P("beta", "b", 0, "beta parameter (jacobi)")
	OrthoCmd.Flags().Float64P("rho", "r", 0, "exponent of the logweight family")
	OrthoCmd.Flags().Int("samples", 11, "number of uniform sample points")
}
