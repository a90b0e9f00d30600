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

import "errors"

// ErrDivisionByZero is the panic value raised when dividing by the zero
// polynomial.
var ErrDivisionByZero = errors.New("division by zero polynomial")

// AddAssign adds another polynomial onto this polynomial, such that this
// polynomial is updated in place.  The other polynomial is not modified.
func (p *Polynomial[T]) AddAssign(other *Polynomial[T]) *Polynomial[T] {
	return p.combine(other, func(x, y T) T { return x.Add(y) })
}

// SubAssign subtracts another polynomial from this polynomial, such that this
// polynomial is updated in place.  The other polynomial is not modified.
func (p *Polynomial[T]) SubAssign(other *Polynomial[T]) *Polynomial[T] {
	return p.combine(other, func(x, y T) T { return x.Sub(y) })
}

// MulAssign multiplies this polynomial by another polynomial, such that this
// polynomial is updated in place.
func (p *Polynomial[T]) MulAssign(other *Polynomial[T]) *Polynomial[T] {
	var (
		lhs = p.Coefficients()
		rhs = other.Coefficients()
		res = make([]T, len(lhs)+len(rhs)-1)
	)
	//
	for i, a := range lhs {
		for j, b := range rhs {
			res[i+j] = res[i+j].Add(a.Mul(b))
		}
	}
	//
	p.coefficients = res
	p.normalize()
	//
	return p
}

// DivAssign divides this polynomial by another polynomial, such that this
// polynomial is updated in place to hold the quotient (and the remainder is
// discarded).  This panics with ErrDivisionByZero if the divisor is zero.
//
// NOTE: the quotient is only correct when division of coefficients is exact.
// For example, with integer coefficients, division truncates and the quotient
// produced is silently wrong.
func (p *Polynomial[T]) DivAssign(divisor *Polynomial[T]) *Polynomial[T] {
	quotient := p.reduce(divisor)
	//
	p.coefficients = quotient
	p.normalize()
	//
	return p
}

// Add returns the sum of this polynomial and another.  Neither polynomial is
// modified.
func (p *Polynomial[T]) Add(other *Polynomial[T]) *Polynomial[T] {
	return p.Clone().AddAssign(other)
}

// Sub returns the difference of this polynomial and another.  Neither
// polynomial is modified.
func (p *Polynomial[T]) Sub(other *Polynomial[T]) *Polynomial[T] {
	return p.Clone().SubAssign(other)
}

// Mul returns the product of this polynomial and another.  Neither polynomial
// is modified.
func (p *Polynomial[T]) Mul(other *Polynomial[T]) *Polynomial[T] {
	return p.Clone().MulAssign(other)
}

// Div returns the quotient of this polynomial divided by another.  Neither
// polynomial is modified.
func (p *Polynomial[T]) Div(divisor *Polynomial[T]) *Polynomial[T] {
	return p.Clone().DivAssign(divisor)
}

// Mod returns the remainder of this polynomial divided by another.  This is
// computed as p - (p/q)*q and, hence, satisfies p == (p/q)*q + p%q whenever
// coefficient division is exact.
func (p *Polynomial[T]) Mod(divisor *Polynomial[T]) *Polynomial[T] {
	quotient := p.Div(divisor)
	//
	return p.Sub(quotient.MulAssign(divisor))
}

// DivMod returns both the quotient and remainder of this polynomial divided by
// another, using a single pass of long division.
func (p *Polynomial[T]) DivMod(divisor *Polynomial[T]) (*Polynomial[T], *Polynomial[T]) {
	remainder := p.Clone()
	quotient := &Polynomial[T]{remainder.reduce(divisor)}
	quotient.normalize()
	//
	return quotient, remainder
}

// Combine this polynomial with another on a coefficient-by-coefficient basis.
func (p *Polynomial[T]) combine(other *Polynomial[T], op func(T, T) T) *Polynomial[T] {
	var (
		// Copy ensures other is left untouched, even when other == p.
		tmp = other.Clone()
		n   = max(p.Degree(), tmp.Degree()) + 1
	)
	//
	p.extend(n)
	tmp.extend(n)
	//
	for i := range n {
		p.coefficients[i] = op(p.coefficients[i], tmp.coefficients[i])
	}
	//
	p.normalize()
	//
	return p
}

// Perform long division of this polynomial by a given divisor.  Upon return,
// this polynomial holds the remainder and the coefficients of the quotient are
// returned.  At each step, the leading term is cancelled by subtracting an
// appropriately scaled and shifted copy of the divisor.  The leading term is
// then dropped outright, since it is (assumed to be) exactly cancelled.  This
// ensures termination even when coefficient division is inexact.
func (p *Polynomial[T]) reduce(divisor *Polynomial[T]) []T {
	var zero T
	//
	if divisor.IsZero() {
		panic(ErrDivisionByZero)
	}
	// Take copies up front, as divisor may alias p.
	var (
		d    = divisor.Coefficients()
		r    = p.Coefficients()
		n    = len(d) - 1
		lead = d[n]
	)
	// Check whether there is anything to do
	if len(r) <= n {
		p.coefficients = r
		return []T{zero}
	}
	//
	quotient := make([]T, len(r)-n)
	//
	for k := len(r) - 1 - n; k >= 0; k-- {
		value := r[k+n].Div(lead)
		quotient[k] = value
		// r -= value * x^k * d
		for j := range n {
			r[k+j] = r[k+j].Sub(value.Mul(d[j]))
		}
		//
		r[k+n] = zero
	}
	//
	p.coefficients = r
	p.normalize()
	//
	return quotient
}
