// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package planner

import (
	"github.com/apex/log"

	"github.com/bgarena/bgarena/internal/filters"
	"github.com/bgarena/bgarena/internal/game"
)

// Planner holds the full catalog and the current view of it. Each filter call
// narrows the current view further until Reset restores the whole catalog.
// A Planner is not safe for concurrent use.
type Planner struct {
	catalog map[game.Game]struct{}
	current map[game.Game]struct{}
}

// New builds a Planner over games. Duplicate games collapse into one.
func New(games []game.Game) *Planner {
	catalog := toSet(games)
	log.Debugf("planner catalog: games=%d unique=%d", len(games), len(catalog))
	return &Planner{
		catalog: catalog,
		current: toSet(games),
	}
}

// Filter applies expr to the current view and returns the survivors sorted by
// name, ascending.
func (p *Planner) Filter(expr string) []game.Game {
	return p.FilterSorted(expr, game.ColumnName, true)
}

// FilterBy is Filter with an explicit sort column, ascending.
func (p *Planner) FilterBy(expr string, sortOn game.Column) []game.Game {
	return p.FilterSorted(expr, sortOn, true)
}

// FilterSorted applies each condition of expr in turn to the current view,
// sorts what survives on sortOn and makes it the new current view. Conditions
// that cannot be understood are skipped; an empty expr re-sorts the current
// view unchanged.
func (p *Planner) FilterSorted(expr string, sortOn game.Column, ascending bool) []game.Game {
	candidates := fromSet(p.current)

	for _, cond := range filters.BuildConditions(expr) {
		before := len(candidates)
		candidates = filters.Apply(candidates, []filters.Condition{cond})
		log.Debugf("condition applied: cond=%s before=%d after=%d", cond, before, len(candidates))
	}

	SortGames(candidates, sortOn, ascending)
	p.current = toSet(candidates)

	return candidates
}

// Reset restores the current view to the full catalog.
func (p *Planner) Reset() {
	p.current = make(map[game.Game]struct{}, len(p.catalog))
	for g := range p.catalog {
		p.current[g] = struct{}{}
	}
}

// Current returns the current view sorted by name without changing it.
func (p *Planner) Current() []game.Game {
	games := fromSet(p.current)
	SortGames(games, game.ColumnName, true)
	return games
}

// Size returns the number of games in the current view.
func (p *Planner) Size() int {
	return len(p.current)
}

// CatalogSize returns the number of distinct games in the catalog.
func (p *Planner) CatalogSize() int {
	return len(p.catalog)
}

func toSet(games []game.Game) map[game.Game]struct{} {
	set := make(map[game.Game]struct{}, len(games))
	for _, g := range games {
		set[g] = struct{}{}
	}
	return set
}

func fromSet(set map[game.Game]struct{}) []game.Game {
	games := make([]game.Game, 0, len(set))
	for g := range set {
		games = append(games, g)
	}
	return games
}
