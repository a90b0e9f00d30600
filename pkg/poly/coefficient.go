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

import "fmt"

// Coefficient captures the arithmetic required of a polynomial coefficient.
// Observe that the Go zero value of any coefficient type is required to be the
// additive identity, since that is what is used when padding or normalising a
// polynomial.
type Coefficient[T any] interface {
	fmt.Stringer
	// Add returns x + y
	Add(T) T
	// Sub returns x - y
	Sub(T) T
	// Mul returns x * y
	Mul(T) T
	// Div returns x / y.  Polynomial division is only correct when this is
	// exact (i.e. for a field), though nothing checks this.
	Div(T) T
	// Equals determines whether two coefficients are the same.
	Equals(T) bool
}

// isZero checks whether a given coefficient is the additive identity.
func isZero[T Coefficient[T]](c T) bool {
	var zero T
	//
	return c.Equals(zero)
}
