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
package poly

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// String constructs a suitable string representation for this polynomial.  For
// example, 1 + 2x^2 + 5x^3 is rendered as "1 + x ^ 2 * 2 + x ^ 3 * 5".  Zero
// terms are omitted, except for the leading term which is always present.
func (p *Polynomial[T]) String() string {
	var (
		buf    bytes.Buffer
		degree = p.Degree()
	)
	//
	if degree == 0 {
		return p.Coefficient(0).String()
	}
	// Constant term
	if c := p.Coefficient(0); !isZero(c) {
		buf.WriteString(c.String())
		buf.WriteString(" + ")
	}
	// Intermediate terms
	for i := uint(1); i < degree; i++ {
		if c := p.Coefficient(i); !isZero(c) {
			fmt.Fprintf(&buf, "x ^ %d * %s + ", i, c.String())
		}
	}
	// Leading term
	fmt.Fprintf(&buf, "x ^ %d * %s", degree, p.Leading().String())
	//
	return buf.String()
}

// WriteTo writes the string representation of this polynomial to a given
// writer.
func (p *Polynomial[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	//
	return int64(n), err
}

// Read a polynomial from a given reader, which provides a whitespace-separated
// sequence of coefficients in ascending order of degree.  Coefficients are
// read until the input is exhausted and constructed using the given parse
// function.  Empty input gives the zero polynomial.
func Read[T Coefficient[T]](r io.Reader, parse func(string) (T, error)) (*Polynomial[T], error) {
	var (
		scanner      = bufio.NewScanner(r)
		coefficients []T
	)
	//
	scanner.Split(bufio.ScanWords)
	//
	for scanner.Scan() {
		token := scanner.Text()
		c, err := parse(token)
		// Check for errors
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient \"%s\" (degree %d): %w", token, len(coefficients), err)
		}
		//
		coefficients = append(coefficients, c)
	}
	//
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// NOTE: coefficients is owned here, hence no need to copy.
	p := &Polynomial[T]{coefficients}
	p.normalize()
	//
	return p, nil
}

// Parse a polynomial from a string of whitespace-separated coefficients, given
// in ascending order of degree.
func Parse[T Coefficient[T]](input string, parse func(string) (T, error)) (*Polynomial[T], error) {
	return Read(strings.NewReader(input), parse)
}
