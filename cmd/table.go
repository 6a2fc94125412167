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
	"os"

	"github.com/notargets/quadrature/InputParameters"
	"github.com/spf13/cobra"
)

// TableCmd represents the table command
var TableCmd = &cobra.Command{
	Use:   "table",
	Short: "Build a batch of quadrature rules from a YAML file",
	Long: `
Reads a YAML description of one or more rules and prints each rule's
node and weight table,

quadrature table -I rules.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fileName, _ := cmd.Flags().GetString("input")
		if len(fileName) == 0 {
			return fmt.Errorf("must supply an input YAML file with -I")
		}
		data, err := os.ReadFile(fileName)
		if err != nil {
			return err
		}
		var qp InputParameters.QuadParameters
		if err = qp.Parse(data); err != nil {
			return err
		}
		qp.Print()
		for _, rp := range qp.Rules {
			x, w, err := BuildRule(rp)
			if err != nil {
				return fmt.Errorf("rule %q: %w", rp.Describe(), err)
			}
			fmt.Println()
			PrintRule(rp, x, w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(TableCmd)
	TableCmd.Flags().StringP("input", "I", "", "YAML file with rule parameters")
}
