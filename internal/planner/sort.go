// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package planner

import (
	"sort"
	"strings"

	"github.com/bgarena/bgarena/internal/game"
)

// tieBreakers settle games that compare equal on the requested column, so
// that the resulting order is total and flipping the direction yields the
// exact reverse.
var tieBreakers = []game.Column{
	game.ColumnName,
	game.ColumnID,
	game.ColumnYear,
	game.ColumnRank,
	game.ColumnRating,
	game.ColumnDifficulty,
	game.ColumnMinPlayers,
	game.ColumnMaxPlayers,
	game.ColumnMinTime,
	game.ColumnMaxTime,
}

// SortGames orders games in place on the given column. Names compare
// case-insensitively and every other sortable column numerically. Columns
// that cannot be sorted on fall back to name order.
func SortGames(games []game.Game, sortOn game.Column, ascending bool) {
	if !sortOn.Sortable() {
		sortOn = game.ColumnName
	}

	sort.SliceStable(games, func(one, two int) bool {
		c := compareGames(games[one], games[two], sortOn)
		if ascending {
			return c < 0
		}
		return c > 0
	})
}

// compareGames is a three-way comparison on sortOn followed by the tie
// breakers. Only identical games compare equal.
func compareGames(a, b game.Game, sortOn game.Column) int {
	if c := sortOn.Compare(a, b); c != 0 {
		return c
	}
	for _, col := range tieBreakers {
		if c := col.Compare(a, b); c != 0 {
			return c
		}
	}
	// Names differing only in case.
	return strings.Compare(a.Name, b.Name)
}

// ParseSortSpec reads a sort spec of the form "column" or "-column". A leading
// "-" requests descending order. An empty spec sorts by name ascending.
func ParseSortSpec(spec string) (game.Column, bool, error) {
	spec = strings.TrimSpace(spec)
	ascending := true
	if strings.HasPrefix(spec, "-") {
		spec = strings.TrimPrefix(spec, "-")
		ascending = false
	}

	col, err := game.ResolveSortColumn(spec)
	if err != nil {
		return game.ColumnName, true, err
	}
	return col, ascending, nil
}
