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
package gf251

import (
	"fmt"
	"strconv"

	"github.com/consensys/go-polynomial/pkg/util/field"
)

// N defines the modulus for the GF251 prime field.
const N = 251

// R is determined by the bitwidth used for holding field elements.  In this
// case, we store our field elements in a single byte, so the bitwidth is 8.
const R = 256

// BITWIDTH identifies the bitwidth used for holding field elements.  In this
// case, we store field elements in a single byte for efficiency.
const BITWIDTH = 8

// negInvN represents -1/N mod R.
const negInvN = 205

// Element type for the GF251 prime field.  This is defined as an array of one
// element to prevent accidental use of native arithmetic operators (+,*).  An
// Element value represents an encoded form of some integer value X.
// Specifically, for some integer X, the value stored in an Element is always
// (X*R) % N.  Observe that the encoded form of zero is zero and, hence, an
// uninitialised Element corresponds with zero.
type Element [1]uint8

// New constructs a new field element from a given unsigned integer.  This will
// panic if the supplised value is too large.
func New(val uint8) Element {
	if val >= N {
		panic("invalid GF251 element")
	}
	// Encode our integer val into the form (val*R) % N.
	element := (uint16(val) << BITWIDTH) % N
	//
	return Element{uint8(element)}
}

// Parse a (possibly negative) decimal integer into a field element, reducing it
// modulo N.
func Parse(s string) (Element, error) {
	val, err := strconv.ParseInt(s, 10, 64)
	//
	if err != nil {
		return Element{}, fmt.Errorf("invalid GF251 element: %w", err)
	}
	// Reduce into the range 0..N-1
	val %= N
	if val < 0 {
		val += N
	}
	//
	return New(uint8(val)), nil
}

// Add two elements together
func (p Element) Add(q Element) Element {
	// Add to give ((p+q)*R) % 2N
	val := uint16(p[0]) + uint16(q[0])
	// Reduce to give ((p+q)*R) % N
	if val >= N {
		val -= N
	}
	// Done
	return Element{uint8(val)}
}

// Sub subtracts one element from another
func (p Element) Sub(q Element) Element {
	val := uint16(p[0])
	// Avoid underflow
	if p[0] < q[0] {
		val += N
	}
	//
	return Element{uint8(val - uint16(q[0]))}
}

// Mul multiplies two elements together
func (p Element) Mul(q Element) Element {
	// Multiply to give (p*q*R*R) mod N^2
	val := uint16(p[0]) * uint16(q[0])
	//
	return Element{reduce(val)}
}

// Inverse computes p⁻¹ using Fermat's little theorem, or 0 if p = 0.
func (p Element) Inverse() Element {
	return field.Pow(p, N-2)
}

// Div divides one element by another, giving 0 if q = 0.
func (p Element) Div(q Element) Element {
	return p.Mul(q.Inverse())
}

// Equals returns true if p = q.
func (p Element) Equals(q Element) bool {
	return p == q
}

// IsZero checks whether this element is zero.
func (p Element) IsZero() bool {
	return p[0] == 0
}

// SetUint64 constructs an element from an arbitrary unsigned integer, reducing
// it modulo N.
func (p Element) SetUint64(val uint64) Element {
	return New(uint8(val % N))
}

// ToByte decodes an element into the integer value it represents.
func (p Element) ToByte() uint8 {
	return reduce(uint16(p[0]))
}

func (p Element) String() string {
	return strconv.Itoa(int(p.ToByte()))
}

// Montgomery reduction.  Value on entry has the form (x*R) mod R*N.  The goal
// is to return the value "x mod N".
func reduce(val uint16) uint8 {
	// Divide by -N
	quot := uint8(val) * negInvN
	// Determine remainder
	rem := uint32(val) + (uint32(quot) * N)
	// Divide by R
	rem = rem >> BITWIDTH
	// Reduce to (x*R) % N.
	if rem >= N {
		rem -= N
	}
	// Done
	return uint8(rem)
}
