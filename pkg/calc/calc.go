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
package calc

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/consensys/go-polynomial/pkg/poly"
	"github.com/consensys/go-polynomial/pkg/util/field/bls12_377"
	"github.com/consensys/go-polynomial/pkg/util/field/bn254"
	"github.com/consensys/go-polynomial/pkg/util/field/gf251"
	"github.com/consensys/go-polynomial/pkg/util/number"
)

// FIELDS identifies the names of all supported coefficient types.
var FIELDS = []string{"float", "int", "gf251", "bls12-377", "bn254"}

// Operator identifies a binary polynomial operation.
type Operator string

const (
	// ADD computes p + q
	ADD Operator = "add"
	// SUB computes p - q
	SUB Operator = "sub"
	// MUL computes p * q
	MUL Operator = "mul"
	// DIV computes p / q
	DIV Operator = "div"
	// MOD computes p % q
	MOD Operator = "mod"
)

// OPERATORS lists all supported binary operators.
var OPERATORS = []Operator{ADD, SUB, MUL, DIV, MOD}

// Calculator provides polynomial arithmetic over some underlying coefficient
// type, where all polynomials are given as strings of whitespace-separated
// coefficients (lowest degree first).  Results are returned in their rendered
// form.
type Calculator interface {
	// Field returns the name of the coefficient type in use.
	Field() string
	// Apply a binary operator to two polynomials.
	Apply(op Operator, lhs string, rhs string) (string, error)
	// DivMod returns both quotient and remainder of dividing two polynomials.
	DivMod(lhs string, rhs string) (string, string, error)
	// Evaluate a polynomial at zero or more points.
	Evaluate(p string, points ...string) ([]string, error)
	// Equal compares two polynomials, either using scaled equality or
	// (if identical holds) coefficient-wise equality.
	Equal(lhs string, rhs string, identical bool) (bool, error)
	// Normalise a polynomial, returning its rendered form and degree.
	Normalise(p string) (string, uint, error)
}

// New constructs a calculator for the coefficient type with the given name.
func New(field string) (Calculator, error) {
	switch strings.ToLower(field) {
	case "float":
		return &calculator[number.Float]{field, number.ParseFloat}, nil
	case "int":
		return &calculator[number.Int]{field, number.ParseInt}, nil
	case "gf251":
		return &calculator[gf251.Element]{field, gf251.Parse}, nil
	case "bls12-377", "bls12_377":
		return &calculator[bls12_377.Element]{field, bls12_377.Parse}, nil
	case "bn254":
		return &calculator[bn254.Element]{field, bn254.Parse}, nil
	}
	//
	return nil, fmt.Errorf("unknown field \"%s\" (expected one of %s)", field, strings.Join(FIELDS, ", "))
}

// ParseOperator parses a given operator name.
func ParseOperator(name string) (Operator, error) {
	op := Operator(strings.ToLower(name))
	//
	if !slices.Contains(OPERATORS, op) {
		return op, fmt.Errorf("unknown operator \"%s\"", name)
	}
	//
	return op, nil
}

type calculator[T poly.Coefficient[T]] struct {
	field string
	parse func(string) (T, error)
}

func (c *calculator[T]) Field() string {
	return c.field
}

func (c *calculator[T]) Apply(op Operator, lhs string, rhs string) (res string, err error) {
	p, q, err := c.operands(lhs, rhs)
	if err != nil {
		return "", err
	}
	// Division by zero panics, hence we catch it here.
	defer recoverDivision(&err)
	//
	switch op {
	case ADD:
		return p.Add(q).String(), nil
	case SUB:
		return p.Sub(q).String(), nil
	case MUL:
		return p.Mul(q).String(), nil
	case DIV:
		return p.Div(q).String(), nil
	case MOD:
		return p.Mod(q).String(), nil
	}
	//
	return "", fmt.Errorf("unknown operator \"%s\"", op)
}

func (c *calculator[T]) DivMod(lhs string, rhs string) (quot string, rem string, err error) {
	p, q, err := c.operands(lhs, rhs)
	if err != nil {
		return "", "", err
	}
	//
	defer recoverDivision(&err)
	//
	quotient, remainder := p.DivMod(q)
	//
	return quotient.String(), remainder.String(), nil
}

func (c *calculator[T]) Evaluate(input string, points ...string) ([]string, error) {
	p, err := c.polynomial(input)
	if err != nil {
		return nil, err
	}
	//
	results := make([]string, len(points))
	//
	for i, pnt := range points {
		x, err := c.parse(pnt)
		if err != nil {
			return nil, fmt.Errorf("invalid point \"%s\": %w", pnt, err)
		}
		//
		results[i] = p.Evaluate(x).String()
	}
	//
	return results, nil
}

func (c *calculator[T]) Equal(lhs string, rhs string, identical bool) (bool, error) {
	p, q, err := c.operands(lhs, rhs)
	if err != nil {
		return false, err
	}
	//
	if identical {
		return p.Identical(q), nil
	}
	//
	return p.Equal(q), nil
}

func (c *calculator[T]) Normalise(input string) (string, uint, error) {
	p, err := c.polynomial(input)
	if err != nil {
		return "", 0, err
	}
	//
	return p.String(), p.Degree(), nil
}

func (c *calculator[T]) operands(lhs string, rhs string) (*poly.Polynomial[T], *poly.Polynomial[T], error) {
	p, err := c.polynomial(lhs)
	if err != nil {
		return nil, nil, err
	}
	//
	q, err := c.polynomial(rhs)
	if err != nil {
		return nil, nil, err
	}
	//
	return p, q, nil
}

func (c *calculator[T]) polynomial(input string) (*poly.Polynomial[T], error) {
	p, err := poly.Parse(input, c.parse)
	if err != nil {
		return nil, fmt.Errorf("polynomial \"%s\": %w", input, err)
	}
	//
	return p, nil
}

// Convert a division by zero panic into an error, leaving all other panics
// untouched.
func recoverDivision(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok && errors.Is(e, poly.ErrDivisionByZero) {
			*err = e
			return
		}
		//
		panic(r)
	}
}
