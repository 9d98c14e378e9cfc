// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package game

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColumn is returned when a column token does not resolve.
var ErrUnknownColumn = errors.New("unknown column")

// Column identifies one filterable/sortable attribute of a Game.
type Column int

const (
	ColumnID Column = iota
	ColumnName
	ColumnMinPlayers
	ColumnMaxPlayers
	ColumnMinTime
	ColumnMaxTime
	ColumnYear
	ColumnRating
	ColumnDifficulty
	ColumnRank
)

// Kind is the value type a column compares as.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindNumeric
)

type columnInfo struct {
	name   string
	header string
	kind   Kind
}

// columnTable is indexed by Column and must list every column exactly once.
var columnTable = [...]columnInfo{
	ColumnID:         {name: "id", header: "id", kind: KindNone},
	ColumnName:       {name: "name", header: "objectname", kind: KindString},
	ColumnMinPlayers: {name: "min_players", header: "minplayers", kind: KindNumeric},
	ColumnMaxPlayers: {name: "max_players", header: "maxplayers", kind: KindNumeric},
	ColumnMinTime:    {name: "min_time", header: "minplaytime", kind: KindNumeric},
	ColumnMaxTime:    {name: "max_time", header: "maxplaytime", kind: KindNumeric},
	ColumnYear:       {name: "year", header: "yearpublished", kind: KindNumeric},
	ColumnRating:     {name: "rating", header: "average", kind: KindNumeric},
	ColumnDifficulty: {name: "difficulty", header: "avgweight", kind: KindNumeric},
	ColumnRank:       {name: "rank", header: "rank", kind: KindNumeric},
}

// lookup maps every accepted lower-case token to its column.
var lookup = func() map[string]Column {
	m := make(map[string]Column)
	for i, info := range columnTable {
		c := Column(i)
		m[info.name] = c
		m[info.header] = c
		m[strings.ReplaceAll(info.name, "_", "")] = c
	}
	return m
}()

// Columns returns every column in declaration order.
func Columns() []Column {
	cols := make([]Column, len(columnTable))
	for i := range columnTable {
		cols[i] = Column(i)
	}
	return cols
}

// ResolveColumn maps a user supplied token to a Column. Matching ignores case
// and surrounding whitespace.
func ResolveColumn(name string) (Column, error) {
	if c, ok := lookup[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return ColumnID, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// ResolveSortColumn is ResolveColumn for sort specs. An empty spec means
// sort by name, and columns that cannot be sorted on are rejected.
func ResolveSortColumn(name string) (Column, error) {
	if strings.TrimSpace(name) == "" {
		return ColumnName, nil
	}
	c, err := ResolveColumn(name)
	if err != nil {
		return c, err
	}
	if !c.Sortable() {
		return c, fmt.Errorf("%w: %q cannot be sorted on", ErrUnknownColumn, name)
	}
	return c, nil
}

// String returns the canonical column name.
func (c Column) String() string {
	if !c.valid() {
		return fmt.Sprintf("column(%d)", int(c))
	}
	return columnTable[c].name
}

// Header returns the catalog export header for the column.
func (c Column) Header() string {
	if !c.valid() {
		return ""
	}
	return columnTable[c].header
}

// Kind reports how values of the column compare.
func (c Column) Kind() Kind {
	if !c.valid() {
		return KindNone
	}
	return columnTable[c].kind
}

// Sortable reports whether the column can order a result set.
func (c Column) Sortable() bool {
	return c.Kind() != KindNone
}

// Numeric returns the column value of g as a float64. Integer backed columns
// are widened. The second result is false for non-numeric columns.
func (c Column) Numeric(g Game) (float64, bool) {
	switch c {
	case ColumnMinPlayers:
		return float64(g.MinPlayers), true
	case ColumnMaxPlayers:
		return float64(g.MaxPlayers), true
	case ColumnMinTime:
		return float64(g.MinPlayTime), true
	case ColumnMaxTime:
		return float64(g.MaxPlayTime), true
	case ColumnYear:
		return float64(g.YearPublished), true
	case ColumnRating:
		return g.Rating, true
	case ColumnDifficulty:
		return g.Difficulty, true
	case ColumnRank:
		return float64(g.Rank), true
	default:
		return 0, false
	}
}

// Compare orders a and b on the column: case-insensitively for names,
// numerically otherwise. ID compares by id.
func (c Column) Compare(a, b Game) int {
	switch c.Kind() {
	case KindString:
		return CompareNames(a.Name, b.Name)
	case KindNumeric:
		av, _ := c.Numeric(a)
		bv, _ := c.Numeric(b)
		return cmp.Compare(av, bv)
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}

// CompareNames is a case-insensitive lexicographic comparison.
func CompareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func (c Column) valid() bool {
	return c >= 0 && int(c) < len(columnTable)
}
