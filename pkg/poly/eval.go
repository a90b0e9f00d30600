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

// Evaluate this polynomial at a given point using Horner's scheme.
func (p *Polynomial[T]) Evaluate(x T) T {
	var result T
	//
	for i := int(p.Degree()); i >= 0; i-- {
		result = result.Mul(x).Add(p.Coefficient(uint(i)))
	}
	//
	return result
}

// Equal determines whether two polynomials are equal up to a scalar multiple.
// That is, they have the same degree and p[i]*lead(q) == q[i]*lead(p) holds for
// every i.  For example, 1+2x and 2+4x are considered equal.  Observe that,
// under this relation, the zero polynomial equals every constant polynomial.
// Use Identical for coefficient-wise equality.
func (p *Polynomial[T]) Equal(other *Polynomial[T]) bool {
	if p.Degree() != other.Degree() {
		return false
	}
	//
	var (
		top1 = p.Leading()
		top2 = other.Leading()
	)
	//
	for i := range p.Degree() + 1 {
		if !p.Coefficient(i).Mul(top2).Equals(other.Coefficient(i).Mul(top1)) {
			return false
		}
	}
	//
	return true
}

// Identical determines whether two polynomials have exactly the same
// coefficients.
func (p *Polynomial[T]) Identical(other *Polynomial[T]) bool {
	if p.Degree() != other.Degree() {
		return false
	}
	//
	for i := range p.Degree() + 1 {
		if !p.Coefficient(i).Equals(other.Coefficient(i)) {
			return false
		}
	}
	//
	return true
}
