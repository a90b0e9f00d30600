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
	"strings"

	"github.com/consensys/go-polynomial/pkg/calc"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Separator between terms of a rendered polynomial, at which point lines can
// be wrapped.
const TERM_SEPARATOR = " + "

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer, or exit if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Construct a calculator for the configured field, or exit if the field is not
// recognised.
func getCalculator(config Config) calc.Calculator {
	calculator, err := calc.New(config.Field)
	//
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	return calculator
}

// Check the expected number of arguments was given, or print usage and exit.
func checkArgs(cmd *cobra.Command, args []string, min int) {
	if len(args) < min {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}

// Report an error arising from a computation, and exit.
func fail(err error) {
	log.Error(err)
	os.Exit(1)
}

// Print a rendered polynomial to stdout, wrapping it as necessary.
func printPolynomial(config Config, p string) {
	for _, line := range wrap(p, textWidth(config)) {
		fmt.Println(line)
	}
}

// Determine the width at which to wrap output.  When none is configured, this
// is the width of the terminal or, if stdout is not a terminal, unbounded.
func textWidth(config Config) uint {
	if config.TextWidth != 0 {
		return config.TextWidth
	}
	//
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return 0
}

// Wrap a rendered polynomial into lines of at most the given width, breaking
// only between terms.  Continuation lines begin with the separator, such that a
// term is never split.  A width of 0 means no wrapping.
func wrap(p string, width uint) []string {
	var (
		lines []string
		line  strings.Builder
		terms = strings.Split(p, TERM_SEPARATOR)
	)
	//
	if width == 0 {
		return []string{p}
	}
	//
	for i, ith := range terms {
		if i != 0 {
			ith = TERM_SEPARATOR + ith
		}
		//
		if line.Len() > 0 && uint(line.Len()+len(ith)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		//
		line.WriteString(ith)
	}
	//
	return append(lines, line.String())
}
