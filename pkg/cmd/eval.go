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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] polynomial x...",
	Short: "evaluate a polynomial at one or more points.",
	Long: `Evaluate a polynomial at one or more points, printing one
	result per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2)
		//
		config := getConfig(cmd)
		calculator := getCalculator(config)
		quiet := getFlag(cmd, "quiet")
		//
		results, err := calculator.Evaluate(args[0], args[1:]...)
		if err != nil {
			fail(err)
		}
		//
		for i, r := range results {
			log.Debug(fmt.Sprintf("evaluated (%s) at %s", args[0], args[i+1]))
			//
			if quiet {
				fmt.Println(r)
			} else {
				fmt.Printf("p(%s) = %s\n", args[i+1], r)
			}
		}
	},
}

var equalCmd = &cobra.Command{
	Use:   "equal [flags] lhs rhs",
	Short: "compare two polynomials.",
	Long: `Compare two polynomials for equality.  By default, polynomials are
	considered equal when one is a non-zero scalar multiple of the other.
	Use --identical to require identical coefficients.  Exits with status 3
	when the polynomials differ.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2)
		//
		config := getConfig(cmd)
		calculator := getCalculator(config)
		//
		eq, err := calculator.Equal(args[0], args[1], getFlag(cmd, "identical"))
		if err != nil {
			fail(err)
		}
		//
		fmt.Println(eq)
		//
		if !eq {
			os.Exit(3)
		}
	},
}

var printCmd = &cobra.Command{
	Use:   "print [flags] polynomial",
	Short: "print a polynomial in normalised form.",
	Long:  `Print a polynomial in normalised form, along with its degree.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		config := getConfig(cmd)
		calculator := getCalculator(config)
		//
		p, degree, err := calculator.Normalise(args[0])
		if err != nil {
			fail(err)
		}
		//
		if getFlag(cmd, "degree") {
			fmt.Printf("degree %d\n", degree)
		}
		//
		printPolynomial(config, p)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(equalCmd)
	rootCmd.AddCommand(printCmd)
	evalCmd.Flags().BoolP("quiet", "q", false, "print only the computed values")
	equalCmd.Flags().Bool("identical", false, "require identical coefficients")
	printCmd.Flags().Bool("degree", false, "also print the degree")
}
