// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/apex/log"

	"github.com/bgarena/bgarena/internal/game"
)

// Delimiter separates the conditions of a filter expression.
const Delimiter = ","

// Condition is a single parsed COLUMN OP VALUE clause. A Condition only exists
// when all three parts were understood; anything else is dropped at parse
// time and behaves as if it had never been written.
type Condition struct {
	Raw      string      `yaml:"raw" json:"Raw"`
	Column   game.Column `yaml:"column" json:"Column"`
	Operator Operator    `yaml:"operator" json:"Operator"`
	Value    string      `yaml:"value" json:"Value"`
}

// BuildConditions parses a filter expression into its conditions. All
// whitespace is removed first. Conditions without an operator, with an
// unknown column or with an unusable value are skipped, so a malformed
// expression narrows less rather than failing.
func BuildConditions(expr string) []Condition {
	//nolint:prealloc
	var conditions []Condition

	expr = StripSpace(expr)
	if expr == "" {
		return conditions
	}

	for _, text := range strings.Split(expr, Delimiter) {
		cond, ok := ParseCondition(text)
		if !ok {
			continue
		}
		conditions = append(conditions, cond)
	}

	return conditions
}

// ParseCondition parses one condition. The second result is false when the
// condition should be ignored.
func ParseCondition(text string) (Condition, bool) {
	text = StripSpace(text)

	op, found := DetectOperator(text)
	if !found {
		log.Debugf("condition ignored, no operator: %q", text)
		return Condition{}, false
	}

	// Exactly one occurrence of the operator, with something on its right.
	parts := strings.Split(text, op.Symbol())
	if len(parts) != 2 || parts[1] == "" {
		log.Debugf("condition ignored, malformed: %q", text)
		return Condition{}, false
	}

	column, err := game.ResolveColumn(parts[0])
	if err != nil {
		log.Debugf("condition ignored: %v", err)
		return Condition{}, false
	}

	if column.Kind() == game.KindNumeric {
		if _, err := strconv.ParseFloat(parts[1], 64); err != nil {
			log.Debugf("condition ignored, not a number: %q", text)
			return Condition{}, false
		}
	}

	return Condition{
		Raw:      text,
		Column:   column,
		Operator: op,
		Value:    parts[1],
	}, true
}

// Apply returns the candidates matching every condition, in input order.
func Apply(candidates []game.Game, conditions []Condition) []game.Game {
	result := make([]game.Game, 0, len(candidates))
	for _, g := range candidates {
		if MatchAll(g, conditions) {
			result = append(result, g)
		}
	}
	return result
}

// MatchAll reports whether g satisfies every condition.
func MatchAll(g game.Game, conditions []Condition) bool {
	for _, c := range conditions {
		if !c.Match(g) {
			return false
		}
	}
	return true
}

// Match reports whether g satisfies the condition.
func (c Condition) Match(g game.Game) bool {
	switch c.Column.Kind() {
	case game.KindString:
		return checkStringOperand(NormalizeName(g.Name), c)
	case game.KindNumeric:
		value, _ := c.Column.Numeric(g)
		return checkNumericOperand(value, c)
	default:
		// ID and anything else without a comparable value always passes.
		return true
	}
}

// String renders the condition back into expression form.
func (c Condition) String() string {
	return c.Column.String() + c.Operator.Symbol() + c.Value
}

// checkStringOperand compares an already normalized name against the
// condition value using case-insensitive, space-insensitive semantics.
func checkStringOperand(name string, c Condition) bool {
	target := NormalizeName(c.Value)
	switch c.Operator {
	case OpContains:
		return strings.Contains(name, target)
	case OpEquals:
		return name == target
	case OpNotEquals:
		return name != target
	default:
		return c.Operator.holds(strings.Compare(name, target))
	}
}

// checkNumericOperand compares value against the condition value. A value
// that does not parse never excludes anything.
func checkNumericOperand(value float64, c Condition) bool {
	tgt, err := strconv.ParseFloat(c.Value, 64)
	if err != nil {
		log.Debugf("invalid numeric value: %s", c.Value)
		return true
	}

	switch c.Operator {
	case OpEquals:
		return value == tgt
	case OpNotEquals:
		return value != tgt
	case OpGreaterThan:
		return value > tgt
	case OpLessThan:
		return value < tgt
	case OpGreaterThanEquals:
		return value >= tgt
	case OpLessThanEquals:
		return value <= tgt
	default:
		return true
	}
}

// NormalizeName lower-cases s and removes all whitespace from it.
func NormalizeName(s string) string {
	return strings.ToLower(StripSpace(s))
}

// StripSpace removes every whitespace rune from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
