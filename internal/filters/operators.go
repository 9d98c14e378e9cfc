// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"sort"
	"strings"
)

// Operator is one of the comparison operators understood by conditions.
type Operator int

const (
	OpEquals Operator = iota
	OpNotEquals
	OpGreaterThanEquals
	OpLessThanEquals
	OpGreaterThan
	OpLessThan
	OpContains
)

// operatorSymbols is indexed by Operator.
var operatorSymbols = [...]string{
	OpEquals:            "==",
	OpNotEquals:         "!=",
	OpGreaterThanEquals: ">=",
	OpLessThanEquals:    "<=",
	OpGreaterThan:       ">",
	OpLessThan:          "<",
	OpContains:          "~=",
}

// detectionOrder lists operators longest symbol first so that ">=" is never
// mistaken for ">". Equal lengths keep declaration order.
var detectionOrder = func() []Operator {
	ops := Operators()
	sort.SliceStable(ops, func(i, j int) bool {
		return len(ops[i].Symbol()) > len(ops[j].Symbol())
	})
	return ops
}()

// Operators returns every operator in declaration order.
func Operators() []Operator {
	ops := make([]Operator, len(operatorSymbols))
	for i := range operatorSymbols {
		ops[i] = Operator(i)
	}
	return ops
}

// DetectOperator returns the first operator, longest symbol first, whose
// symbol occurs anywhere in condition. The second result is false when the
// condition carries no operator at all.
func DetectOperator(condition string) (Operator, bool) {
	for _, op := range detectionOrder {
		if strings.Contains(condition, op.Symbol()) {
			return op, true
		}
	}
	return OpEquals, false
}

// Symbol returns the operator as written in a filter expression.
func (o Operator) Symbol() string {
	if o < 0 || int(o) >= len(operatorSymbols) {
		return ""
	}
	return operatorSymbols[o]
}

func (o Operator) String() string {
	return o.Symbol()
}

// holds reports whether a three-way comparison result satisfies the operator.
// Contains has no ordering meaning and always holds.
func (o Operator) holds(c int) bool {
	switch o {
	case OpEquals:
		return c == 0
	case OpNotEquals:
		return c != 0
	case OpGreaterThan:
		return c > 0
	case OpLessThan:
		return c < 0
	case OpGreaterThanEquals:
		return c >= 0
	case OpLessThanEquals:
		return c <= 0
	default:
		return true
	}
}
