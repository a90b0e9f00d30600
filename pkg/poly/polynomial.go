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

import "slices"

// Polynomial represents a univariate polynomial whose coefficients are drawn
// from some type T.  Coefficients are held in ascending order of degree, such
// that the first coefficient is the constant term.  A polynomial is always kept
// in normalised form, meaning that it has no leading zero coefficients (except
// for the zero polynomial itself, which is held as a single zero coefficient).
// Observe that an unitialised Polynomial variable corresponds with zero.
type Polynomial[T Coefficient[T]] struct {
	coefficients []T
}

// Zero constructs the zero polynomial.
func Zero[T Coefficient[T]]() *Polynomial[T] {
	var zero T
	//
	return &Polynomial[T]{[]T{zero}}
}

// Constant constructs a polynomial of degree zero from a given value.
func Constant[T Coefficient[T]](value T) *Polynomial[T] {
	return &Polynomial[T]{[]T{value}}
}

// Monomial constructs the polynomial value*x^degree.  If the value is zero,
// then this collapses to the zero polynomial.
func Monomial[T Coefficient[T]](value T, degree uint) *Polynomial[T] {
	var p Polynomial[T]
	//
	p.coefficients = make([]T, 0, degree+1)
	p.extend(degree)
	p.coefficients = append(p.coefficients, value)
	p.normalize()
	//
	return &p
}

// New constructs a polynomial from zero or more coefficients, given in
// ascending order of degree.  For example, New(1,0,2) gives 1 + 2x^2.
func New[T Coefficient[T]](coefficients ...T) *Polynomial[T] {
	return FromSlice(coefficients)
}

// FromSlice constructs a polynomial from a slice of coefficients, given in
// ascending order of degree.  The slice is copied and, hence, can be safely
// reused by the caller.
func FromSlice[T Coefficient[T]](coefficients []T) *Polynomial[T] {
	p := &Polynomial[T]{slices.Clone(coefficients)}
	p.normalize()
	//
	return p
}

// Clone performs a deep copy of this polynomial.
func (p *Polynomial[T]) Clone() *Polynomial[T] {
	if len(p.coefficients) == 0 {
		return Zero[T]()
	}
	//
	return &Polynomial[T]{slices.Clone(p.coefficients)}
}

// Set assigns this polynomial to be a copy of another, returning this.
func (p *Polynomial[T]) Set(other *Polynomial[T]) *Polynomial[T] {
	p.coefficients = append(p.coefficients[:0], other.coefficients...)
	p.normalize()
	//
	return p
}

// Degree returns the degree of this polynomial.  By convention, the zero
// polynomial has degree 0.
func (p *Polynomial[T]) Degree() uint {
	if len(p.coefficients) == 0 {
		return 0
	}
	//
	return uint(len(p.coefficients) - 1)
}

// Coefficient returns the coefficient of the term with the given degree.  The
// index must be at most the degree of this polynomial, otherwise this panics
// with an index out of range error.
func (p *Polynomial[T]) Coefficient(degree uint) T {
	if len(p.coefficients) == 0 && degree == 0 {
		var zero T
		return zero
	}
	//
	return p.coefficients[degree]
}

// Leading returns the coefficient of the highest degree term.
func (p *Polynomial[T]) Leading() T {
	return p.Coefficient(p.Degree())
}

// Coefficients returns a copy of the coefficients of this polynomial, in
// ascending order of degree.
func (p *Polynomial[T]) Coefficients() []T {
	if len(p.coefficients) == 0 {
		return []T{p.Coefficient(0)}
	}
	//
	return slices.Clone(p.coefficients)
}

// IsZero checks whether or not this is the zero polynomial.
func (p *Polynomial[T]) IsZero() bool {
	return p.Degree() == 0 && isZero(p.Coefficient(0))
}

// Pad the coefficients with zeros on the high-degree end until there are at
// least n of them.  This never truncates.
func (p *Polynomial[T]) extend(n uint) {
	var zero T
	//
	for uint(len(p.coefficients)) < n {
		p.coefficients = append(p.coefficients, zero)
	}
}

// Remove leading zero coefficients, whilst ensuring at least one coefficient
// remains.
func (p *Polynomial[T]) normalize() {
	n := len(p.coefficients)
	//
	for n > 1 && isZero(p.coefficients[n-1]) {
		n--
	}
	// Clear out dropped slots, so they don't hold onto anything.
	clear(p.coefficients[n:])
	p.coefficients = p.coefficients[:n]
	//
	if n == 0 {
		var zero T
		p.coefficients = append(p.coefficients, zero)
	}
}
