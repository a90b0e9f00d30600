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
	"strconv"
)

// Int is a 64bit signed integer coefficient.  Observe that division truncates
// towards zero and, hence, polynomial division over Int is only correct when
// every intermediate division happens to be exact (e.g. for monic divisors).
type Int int64

// ParseInt parses a decimal integer coefficient.
func ParseInt(s string) (Int, error) {
	val, err := strconv.ParseInt(s, 10, 64)
	//
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}
	//
	return Int(val), nil
}

// Add x + y
func (x Int) Add(y Int) Int {
	return x + y
}

// Sub x - y
func (x Int) Sub(y Int) Int {
	return x - y
}

// Mul x * y
func (x Int) Mul(y Int) Int {
	return x * y
}

// Div x / y, truncated towards zero.  This panics if y is zero.
func (x Int) Div(y Int) Int {
	return x / y
}

// Equals returns true if x == y.
func (x Int) Equals(y Int) bool {
	return x == y
}

func (x Int) String() string {
	return strconv.FormatInt(int64(x), 10)
}
