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
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/consensys/go-polynomial/pkg/util/field/bls12_377"
	"github.com/consensys/go-polynomial/pkg/util/field/gf251"
	"github.com/consensys/go-polynomial/pkg/util/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		poly     Poly
		expected string
	}{
		{"zero", poly(), "0"},
		{"constant", poly(7), "7"},
		{"negative constant", poly(-2.5), "-2.5"},
		{"linear", poly(1, 2), "1 + x ^ 1 * 2"},
		{"cubic", poly(1, 0, 2, 5, 0), "1 + x ^ 2 * 2 + x ^ 3 * 5"},
		{"no constant", poly(0, 0, 3), "x ^ 2 * 3"},
		{"negative terms", poly(0.5, -1), "0.5 + x ^ 1 * -1"},
		{"monomial", Monomial[number.Float](4, 3), "x ^ 3 * 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.poly.String())
			// WriteTo produces the same
			var buf bytes.Buffer
			n, err := tt.poly.WriteTo(&buf)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.expected)), n)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestStringField(t *testing.T) {
	p := New(gf251.New(3), gf251.New(0), gf251.New(250))
	assert.Equal(t, "3 + x ^ 2 * 250", p.String())
	// gnark-crypto renders small negative values as such
	q := New(bls12_377.New(-1), bls12_377.New(2))
	assert.Equal(t, "-1 + x ^ 1 * 2", q.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []number.Float
	}{
		{"empty", "", []number.Float{0}},
		{"blank", " \n\t ", []number.Float{0}},
		{"constant", "3", []number.Float{3}},
		{"cubic", "1 0 2 5 0", []number.Float{1, 0, 2, 5}},
		{"multiline", "1\n-2\t 0.5\n", []number.Float{1, -2, 0.5}},
		{"all zero", "0 0 0", []number.Float{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input, number.ParseFloat)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Coefficients())
			assert.Equal(t, uint(len(tt.expected)-1), p.Degree())
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("1 2 x 4", number.ParseFloat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "\"x\"")
	assert.Contains(t, err.Error(), "degree 2")
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestReadField(t *testing.T) {
	p, err := Read(strings.NewReader("-1 1"), gf251.Parse)
	require.NoError(t, err)
	assert.Equal(t, "250 + x ^ 1 * 1", p.String())
	// x^3 / (x - 1) over GF251
	q, err := Read(strings.NewReader("0 0 0 1"), gf251.Parse)
	require.NoError(t, err)
	assert.Equal(t, "1 + x ^ 1 * 1 + x ^ 2 * 1", q.Div(p).String())
	assert.Equal(t, "1", q.Mod(p).String())
}

func TestRoundTrip(t *testing.T) {
	p := poly(1, 0, -2, 0.25)
	// Serialise coefficients and read them back
	var parts []string
	for _, c := range p.Coefficients() {
		parts = append(parts, c.String())
	}
	//
	q, err := Parse(strings.Join(parts, " "), number.ParseFloat)
	require.NoError(t, err)
	assert.True(t, p.Identical(q))
}
