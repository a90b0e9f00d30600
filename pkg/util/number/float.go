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
package number

import (
	"fmt"
	"math"
	"strconv"
)

// Float is a double precision floating point coefficient.
type Float float64

// ParseFloat parses a floating point coefficient.
func ParseFloat(s string) (Float, error) {
	val, err := strconv.ParseFloat(s, 64)
	//
	if err != nil {
		return 0, fmt.Errorf("invalid float: %w", err)
	}
	//
	return Float(val), nil
}

// Add x + y
func (x Float) Add(y Float) Float {
	return x + y
}

// Sub x - y
func (x Float) Sub(y Float) Float {
	return x - y
}

// Mul x * y
func (x Float) Mul(y Float) Float {
	return x * y
}

// Div x / y
func (x Float) Div(y Float) Float {
	return x / y
}

// Equals returns true if x == y exactly.
func (x Float) Equals(y Float) bool {
	return x == y
}

// ApproxEquals returns true if x and y are within a given relative tolerance
// of each other.
func (x Float) ApproxEquals(y Float, epsilon float64) bool {
	var (
		a     = float64(x)
		b     = float64(y)
		scale = max(1, math.Abs(a), math.Abs(b))
	)
	//
	return math.Abs(a-b) <= epsilon*scale
}

func (x Float) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}
