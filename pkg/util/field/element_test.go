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
package field_test

import (
	"testing"

	"github.com/consensys/go-polynomial/pkg/poly"
	"github.com/consensys/go-polynomial/pkg/util/assert"
	"github.com/consensys/go-polynomial/pkg/util/field"
	"github.com/consensys/go-polynomial/pkg/util/field/bls12_377"
	"github.com/consensys/go-polynomial/pkg/util/field/bn254"
	"github.com/consensys/go-polynomial/pkg/util/field/gf251"
)

func init() {
	// make sure the interfaces are adhered to.
	_ = field.Element[gf251.Element](gf251.Element{})
	_ = field.Element[bls12_377.Element](bls12_377.Element{})
	_ = field.Element[bn254.Element](bn254.Element{})
	_ = poly.Coefficient[gf251.Element](gf251.Element{})
	_ = poly.Coefficient[bls12_377.Element](bls12_377.Element{})
	_ = poly.Coefficient[bn254.Element](bn254.Element{})
}

func TestIdentities_GF251(t *testing.T) {
	checkIdentities[gf251.Element](t)
}

func TestIdentities_BLS12_377(t *testing.T) {
	checkIdentities[bls12_377.Element](t)
}

func TestIdentities_BN254(t *testing.T) {
	checkIdentities[bn254.Element](t)
}

func checkIdentities[F field.Element[F]](t *testing.T) {
	var (
		zero = field.Zero[F]()
		one  = field.One[F]()
	)
	//
	assert.True(t, zero.IsZero())
	assert.False(t, one.IsZero())
	assert.True(t, zero.Inverse().IsZero())
	//
	for i := uint64(1); i < 200; i++ {
		x := field.Uint64[F](i)
		// x + -x = 0
		assert.True(t, x.Add(field.Neg(x)).IsZero(), "%s + -%s", x, x)
		// x * x⁻¹ = 1
		assert.True(t, x.Mul(x.Inverse()).Equals(one), "%s * %s⁻¹", x, x)
		// x / x = 1
		assert.True(t, x.Div(x).Equals(one), "%s / %s", x, x)
		// x^2 = x * x
		assert.True(t, field.Pow(x, 2).Equals(x.Mul(x)), "%s^2", x)
		// x - x = 0
		assert.True(t, x.Sub(x).Equals(zero), "%s - %s", x, x)
	}
}
