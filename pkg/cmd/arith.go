// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"

	"github.com/consensys/go-polynomial/pkg/calc"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var arithDescriptions = map[calc.Operator]string{
	calc.ADD: "add two polynomials.",
	calc.SUB: "subtract one polynomial from another.",
	calc.MUL: "multiply two polynomials.",
	calc.DIV: "divide one polynomial by another, giving the quotient.",
	calc.MOD: "divide one polynomial by another, giving the remainder.",
}

// Construct a command for a given binary operator.
func newArithCmd(op calc.Operator) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] lhs rhs", op),
		Short: arithDescriptions[op],
		Long: fmt.Sprintf(`Apply the "%s" operator to two polynomials, each given as
	whitespace-separated coefficients (constant term first).`, op),
		Run: func(cmd *cobra.Command, args []string) {
			checkArgs(cmd, args, 2)
			//
			config := getConfig(cmd)
			calculator := getCalculator(config)
			//
			log.Debug(fmt.Sprintf("computing (%s) %s (%s)", args[0], op, args[1]))
			//
			result, err := calculator.Apply(op, args[0], args[1])
			if err != nil {
				fail(err)
			}
			//
			printPolynomial(config, result)
		},
	}
}

var divmodCmd = &cobra.Command{
	Use:   "divmod [flags] lhs rhs",
	Short: "divide one polynomial by another, giving quotient and remainder.",
	Long: `Divide one polynomial by another using long division, printing
	the quotient followed by the remainder.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2)
		//
		config := getConfig(cmd)
		calculator := getCalculator(config)
		//
		quotient, remainder, err := calculator.DivMod(args[0], args[1])
		if err != nil {
			fail(err)
		}
		//
		printPolynomial(config, quotient)
		printPolynomial(config, remainder)
	},
}

func init() {
	for _, op := range calc.OPERATORS {
		rootCmd.AddCommand(newArithCmd(op))
	}
	//
	rootCmd.AddCommand(divmodCmd)
}
