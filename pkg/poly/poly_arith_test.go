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
	"testing"

	"github.com/consensys/go-polynomial/pkg/util/assert"
	"github.com/consensys/go-polynomial/pkg/util/field/bls12_377"
	"github.com/consensys/go-polynomial/pkg/util/number"
)

// ============================================================================
// Addition / Subtraction
// ============================================================================

func Test_PolyAdd_01(t *testing.T) {
	checkStruct(t, poly(1, 1, -2, 1).Add(poly(0, 1, 2, -1)), 1, 2)
}

func Test_PolyAdd_02(t *testing.T) {
	checkStruct(t, poly(1, 2).Add(poly(0, 0, 0, 3)), 1, 2, 0, 3)
}

func Test_PolyAdd_03(t *testing.T) {
	checkStruct(t, poly(1, 2, 3).Add(poly(-1, -2, -3)), 0)
}

func Test_PolyAdd_04(t *testing.T) {
	var p = poly(1, 2)
	// Aliasing is fine
	checkStruct(t, p.AddAssign(p), 2, 4)
}

func Test_PolySub_01(t *testing.T) {
	checkStruct(t, poly(1, 2, 3).Sub(poly(1, 2, 3)), 0)
}

func Test_PolySub_02(t *testing.T) {
	checkStruct(t, poly(1).Sub(poly(0, 0, 2)), 1, 0, -2)
}

func Test_PolySub_03(t *testing.T) {
	var p = poly(1, 2)
	//
	checkStruct(t, p.SubAssign(p), 0)
}

// ============================================================================
// Multiplication
// ============================================================================

func Test_PolyMul_01(t *testing.T) {
	checkStruct(t, poly(1, 1, 0).Mul(poly(-1, 1, -1, 1)), -1, 0, 0, 0, 1)
}

func Test_PolyMul_02(t *testing.T) {
	checkStruct(t, poly(1, 2, 3).Mul(poly()), 0)
}

func Test_PolyMul_03(t *testing.T) {
	checkStruct(t, poly(1, 2, 3).Mul(poly(2)), 2, 4, 6)
}

func Test_PolyMul_04(t *testing.T) {
	var p = poly(1, 1)
	// (1+x)^2
	checkStruct(t, p.MulAssign(p), 1, 2, 1)
}

func Test_PolyMul_05(t *testing.T) {
	var (
		result = Constant[number.Int](1)
		p1     = Monomial[number.Int](1, 1).Add(Constant[number.Int](-1))
		p2     = Monomial[number.Int](1, 1).Add(Constant[number.Int](1))
	)
	// (x-1)(x+1) = x^2 - 1
	result.MulAssign(p1)
	result.MulAssign(p2)
	checkStruct(t, result, -1, 0, 1)
}

// ============================================================================
// Division / Modulo
// ============================================================================

func Test_PolyDiv_01(t *testing.T) {
	checkDivision(t, poly(0, 0, 0, 1), poly(-1, 1), poly(1, 1, 1), poly(1))
}

func Test_PolyDiv_02(t *testing.T) {
	// x^3 / x = x^2
	checkDivision(t, poly(0, 0, 0, 1), poly(0, 1), poly(0, 0, 1), poly(0))
}

func Test_PolyDiv_03(t *testing.T) {
	// Constant divisors
	checkDivision(t, poly(2, 4, 6), poly(2), poly(1, 2, 3), poly(0))
}

func Test_PolyDiv_04(t *testing.T) {
	// Divisor of larger degree
	checkDivision(t, poly(1, 2), poly(0, 0, 1), poly(0), poly(1, 2))
}

func Test_PolyDiv_05(t *testing.T) {
	// Zero dividend
	checkDivision(t, poly(), poly(1, 1), poly(0), poly(0))
}

func Test_PolyDiv_06(t *testing.T) {
	// (2x+3)(x^2+5) + 7
	checkDivision(t, poly(22, 10, 3, 2), poly(3, 2), poly(5, 0, 1), poly(7))
}

func Test_PolyDiv_07(t *testing.T) {
	// Non-integral quotient
	checkDivision(t, poly(1, 0, 1), poly(0, 2), poly(0, 0.5), poly(1))
}

func Test_PolyDiv_08(t *testing.T) {
	var p = poly(1, 2, 3)
	// Aliasing is fine
	checkStruct(t, p.DivAssign(p), 1)
}

func Test_PolyDiv_09(t *testing.T) {
	var p = poly(1, 2, 3)
	//
	assert.Panics(t, ErrDivisionByZero, func() { p.Div(poly()) })
	assert.Panics(t, ErrDivisionByZero, func() { p.Mod(poly(0, 0)) })
	assert.Panics(t, ErrDivisionByZero, func() { p.DivMod(Zero[number.Float]()) })
	// Dividend left untouched
	checkStruct(t, p, 1, 2, 3)
}

func Test_PolyDiv_10(t *testing.T) {
	var (
		p = bls(0, 0, 0, 1)
		q = bls(-1, 1)
	)
	// Exact over a prime field
	checkDivision(t, p, q, bls(1, 1, 1), bls(1))
	checkDivision(t, bls(22, 10, 3, 2), bls(3, 2), bls(5, 0, 1), bls(7))
}

func Test_PolyDiv_11(t *testing.T) {
	// Monic divisors are fine for integers, since every division is exact.
	var (
		p = New[number.Int](0, 0, 0, 1)
		q = New[number.Int](-1, 1)
	)
	//
	checkDivision(t, p, q, New[number.Int](1, 1, 1), New[number.Int](1))
}

func Test_PolyDiv_12(t *testing.T) {
	// Truncating division gives a quotient which is technically computed, but
	// mathematically wrong (i.e. 3x / 2x = 1 rather than 3/2).  Likewise the
	// remainder has the same degree as the divisor.
	var (
		p = New[number.Int](0, 3)
		q = New[number.Int](0, 2)
	)
	//
	checkStruct(t, p.Div(q), 1)
	checkStruct(t, p.Mod(q), 0, 1)
}

func Test_PolyDiv_13(t *testing.T) {
	t.Skip("polynomial division over truncating integer coefficients is not supported")
	//
	var (
		p = New[number.Int](0, 3)
		q = New[number.Int](0, 2)
	)
	// A true remainder always has degree less than its divisor.
	assert.True(t, p.Mod(q).Degree() < q.Degree())
}

func Test_PolyOperands_01(t *testing.T) {
	var (
		p = poly(1, 2, 3)
		q = poly(-1, 1)
	)
	// Binary operations never modify their operands.
	p.Add(q)
	p.Sub(q)
	p.Mul(q)
	p.Div(q)
	p.Mod(q)
	p.DivMod(q)
	//
	checkStruct(t, p, 1, 2, 3)
	checkStruct(t, q, -1, 1)
}

// Check that dividing a given dividend by a given divisor produces the expected
// quotient and remainder, via all available routes.
func checkDivision[T Coefficient[T]](t *testing.T, dividend, divisor, quotient, remainder *Polynomial[T]) {
	t.Helper()
	//
	q := dividend.Div(divisor)
	r := dividend.Mod(divisor)
	assert.True(t, q.Identical(quotient), "(%s) / (%s) = %s, expected %s", dividend, divisor, q, quotient)
	assert.True(t, r.Identical(remainder), "(%s) %% (%s) = %s, expected %s", dividend, divisor, r, remainder)
	//
	q, r = dividend.DivMod(divisor)
	assert.True(t, q.Identical(quotient), "divmod quotient %s, expected %s", q, quotient)
	assert.True(t, r.Identical(remainder), "divmod remainder %s, expected %s", r, remainder)
	// Check the division identity
	check := q.Mul(divisor).AddAssign(r)
	assert.True(t, check.Identical(dividend), "(%s)*(%s) + %s = %s, expected %s", q, divisor, r, check, dividend)
}

func bls(coefficients ...int64) *Polynomial[bls12_377.Element] {
	var elements = make([]bls12_377.Element, len(coefficients))
	//
	for i, c := range coefficients {
		elements[i] = bls12_377.New(c)
	}
	//
	return FromSlice(elements)
}
