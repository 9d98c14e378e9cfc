// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package planner

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgarena/bgarena/internal/game"
)

var (
	dominion    = game.Game{ID: 36218, Name: "Dominion", MinPlayers: 2, MaxPlayers: 4, MinPlayTime: 30, MaxPlayTime: 30, YearPublished: 2008, Rank: 20, Difficulty: 2.35, Rating: 7.6}
	catan       = game.Game{ID: 13, Name: "Catan", MinPlayers: 3, MaxPlayers: 4, MinPlayTime: 60, MaxPlayTime: 120, YearPublished: 1995, Rank: 10, Difficulty: 2.29, Rating: 7.1}
	gloomhaven  = game.Game{ID: 174430, Name: "Gloomhaven", MinPlayers: 1, MaxPlayers: 4, MinPlayTime: 60, MaxPlayTime: 120, YearPublished: 2017, Rank: 1, Difficulty: 3.91, Rating: 8.7}
	carcassonne = game.Game{ID: 822, Name: "Carcassonne", MinPlayers: 2, MaxPlayers: 5, MinPlayTime: 30, MaxPlayTime: 45, YearPublished: 2000, Rank: 15, Difficulty: 1.9, Rating: 7.4}
	azul        = game.Game{ID: 230802, Name: "azul", MinPlayers: 2, MaxPlayers: 4, MinPlayTime: 30, MaxPlayTime: 45, YearPublished: 2017, Rank: 25, Difficulty: 1.77, Rating: 7.8}
	ticket      = game.Game{ID: 9209, Name: "Ticket to Ride", MinPlayers: 2, MaxPlayers: 5, MinPlayTime: 30, MaxPlayTime: 60, YearPublished: 2004, Rank: 30, Difficulty: 1.83, Rating: 7.4}
)

func testCatalog() []game.Game {
	return []game.Game{dominion, catan, gloomhaven, carcassonne, azul, ticket}
}

func names(games []game.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Name
	}
	return out
}

func TestFilterExample(t *testing.T) {
	p := New([]game.Game{dominion, catan, gloomhaven, carcassonne})

	got := p.FilterSorted("rank>10", game.ColumnRank, true)
	assert.Equal(t, []game.Game{carcassonne, dominion}, got)
}

func TestFilterEmptyReturnsCatalogByName(t *testing.T) {
	p := New(testCatalog())
	p.Filter("minplayers>2")
	p.Reset()

	got := p.Filter("")
	assert.Equal(t, []string{"azul", "Carcassonne", "Catan", "Dominion", "Gloomhaven", "Ticket to Ride"}, names(got))
	assert.Equal(t, p.CatalogSize(), len(got))
}

func TestFilterNarrowsProgressively(t *testing.T) {
	p := New(testCatalog())

	first := p.Filter("maxplayers>=4")
	assert.Len(t, first, 6)

	second := p.Filter("rating>7.5")
	assert.Equal(t, []string{"azul", "Dominion", "Gloomhaven"}, names(second))
	assert.Equal(t, 3, p.Size())

	// A looser filter cannot bring games back.
	third := p.Filter("rating>0")
	assert.Equal(t, names(second), names(third))

	p.Reset()
	assert.Equal(t, 6, p.Size())
}

func TestFilterPermissive(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{name: "non numeric value", expr: "rank>abc"},
		{name: "unknown column", expr: "publisher==zman"},
		{name: "no operator", expr: "rank"},
		{name: "empty value", expr: "rank>="},
		{name: "id column", expr: "id==1"},
		{name: "garbage", expr: ",,,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(testCatalog())
			before := p.Size()
			got := p.Filter(tt.expr)
			assert.Equal(t, before, len(got))
			assert.Equal(t, before, p.Size())
		})
	}
}

func TestFilterSkipsOnlyBadConditions(t *testing.T) {
	p := New(testCatalog())
	got := p.Filter("rank>abc, name ~= CA, bogus<3")
	assert.Equal(t, []string{"Carcassonne", "Catan"}, names(got))
}

func TestFilterNameOperators(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{expr: "name==ticket to ride", want: []string{"Ticket to Ride"}},
		{expr: "name!=catan", want: []string{"azul", "Carcassonne", "Dominion", "Gloomhaven", "Ticket to Ride"}},
		{expr: "name>d", want: []string{"Dominion", "Gloomhaven", "Ticket to Ride"}},
		{expr: "name<carcassonne", want: []string{"azul"}},
		{expr: "name<=carcassonne", want: []string{"azul", "Carcassonne"}},
		{expr: "name>=TICKETTORIDE", want: []string{"Ticket to Ride"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p := New(testCatalog())
			assert.Equal(t, tt.want, names(p.Filter(tt.expr)))
		})
	}
}

func TestFilterSortDirections(t *testing.T) {
	for _, col := range game.Columns() {
		if !col.Sortable() {
			continue
		}
		t.Run(col.String(), func(t *testing.T) {
			asc := New(testCatalog()).FilterSorted("", col, true)
			desc := New(testCatalog()).FilterSorted("", col, false)

			reversed := slices.Clone(desc)
			slices.Reverse(reversed)
			assert.Equal(t, asc, reversed)

			for i := 1; i < len(asc); i++ {
				assert.LessOrEqual(t, col.Compare(asc[i-1], asc[i]), 0)
			}
		})
	}
}

func TestFilterByDefaultsAscending(t *testing.T) {
	p := New(testCatalog())
	got := p.FilterBy("", game.ColumnRank)
	assert.Equal(t, []string{"Gloomhaven", "Catan", "Carcassonne", "Dominion", "azul", "Ticket to Ride"}, names(got))
}

func TestFilterTiesAreDeterministic(t *testing.T) {
	// Carcassonne and Ticket to Ride share a rating.
	p := New(testCatalog())
	got := p.FilterSorted("rating==7.4", game.ColumnRating, false)
	assert.Equal(t, []string{"Ticket to Ride", "Carcassonne"}, names(got))
}

func TestFilterSortOnIDFallsBackToName(t *testing.T) {
	p := New(testCatalog())
	got := p.FilterBy("", game.ColumnID)
	assert.Equal(t, names(p.Filter("")), names(got))
}

func TestNewCollapsesDuplicates(t *testing.T) {
	p := New([]game.Game{catan, catan, dominion})
	assert.Equal(t, 2, p.CatalogSize())
	assert.Equal(t, []game.Game{catan, dominion}, p.Current())
}

func TestResetIsIdempotent(t *testing.T) {
	p := New(testCatalog())
	p.Filter("rank<5")
	require.Equal(t, 1, p.Size())

	p.Reset()
	p.Reset()
	assert.Equal(t, p.CatalogSize(), p.Size())
}

func TestParseSortSpec(t *testing.T) {
	tests := []struct {
		spec    string
		col     game.Column
		asc     bool
		wantErr bool
	}{
		{spec: "", col: game.ColumnName, asc: true},
		{spec: "rank", col: game.ColumnRank, asc: true},
		{spec: "-rating", col: game.ColumnRating, asc: false},
		{spec: " -MinPlayers ", col: game.ColumnMinPlayers, asc: false},
		{spec: "id", wantErr: true},
		{spec: "-bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			col, asc, err := ParseSortSpec(tt.spec)
			if tt.wantErr {
				assert.ErrorIs(t, err, game.ErrUnknownColumn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.col, col)
			assert.Equal(t, tt.asc, asc)
		})
	}
}
