// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package gamelist

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/bgarena/bgarena/internal/game"
	"github.com/bgarena/bgarena/internal/log"
)

var (
	// ErrInvalidSelector is returned for any selector that cannot be applied:
	// out of range indexes, malformed ranges, unmatched names, empty input.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrInvalidArgument is returned for an empty export path.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO wraps filesystem failures during export.
	ErrIO = errors.New("i/o failure")
)

// selectAll is the selector that addresses every game.
const selectAll = "all"

// indexRegex matches a 1-based index ("3") or inclusive range ("2-5").
var indexRegex = regexp.MustCompile(`^(\d+)(?:-(\d+))?$`)

// List is the user's plan: an ordered set of games. A List is not safe for
// concurrent use.
type List struct {
	games []game.Game
}

// New returns an empty List.
func New() *List {
	return &List{}
}

// Add adds games from candidates to the list. The selector is one of:
//
//   - "all": every candidate
//   - "N" or "N-M": the 1-based index or inclusive range into candidates
//   - anything else: the first candidate whose name matches, ignoring case
//
// The selector is trimmed of surrounding whitespace first, so " 1 " is an
// index and " Catan " matches Catan. Games already in the list are not added
// again. Indexes refer to candidates, not to the list.
func (l *List) Add(selector string, candidates []game.Game) error {
	selector = strings.TrimSpace(selector)

	if strings.EqualFold(selector, selectAll) {
		l.appendAll(candidates)
		return nil
	}

	if parts := indexRegex.FindStringSubmatch(selector); parts != nil {
		start, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidSelector, selector, err)
		}
		end := start
		if parts[2] != "" {
			if end, err = strconv.Atoi(parts[2]); err != nil {
				return fmt.Errorf("%w: %q: %v", ErrInvalidSelector, selector, err)
			}
		}
		if start < 1 || end > len(candidates) || start > end {
			return fmt.Errorf("%w: range %q outside 1-%d", ErrInvalidSelector, selector, len(candidates))
		}
		l.appendAll(candidates[start-1 : end])
		return nil
	}

	for _, g := range candidates {
		if strings.EqualFold(g.Name, selector) {
			l.appendAll([]game.Game{g})
			return nil
		}
	}

	return fmt.Errorf("%w: no game named %q", ErrInvalidSelector, selector)
}

// Remove removes games from the list. The selector is, in order of priority:
//
//   - "all": clears the list
//   - a game name, ignoring case: the first such game
//   - "N": the game at 1-based position N of the list
//   - "N-M": the games at positions N through M inclusive
//
// Positions refer to the list's own order as returned by Games.
func (l *List) Remove(selector string) error {
	selector = strings.ToLower(strings.TrimSpace(selector))
	if selector == "" {
		return fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	}

	if selector == selectAll {
		l.Clear()
		return nil
	}

	for i, g := range l.games {
		if strings.EqualFold(g.Name, selector) {
			l.games = slices.Delete(l.games, i, i+1)
			return nil
		}
	}

	if index, err := strconv.Atoi(selector); err == nil {
		if index < 1 || index > len(l.games) {
			return fmt.Errorf("%w: index %d outside 1-%d", ErrInvalidSelector, index, len(l.games))
		}
		l.games = slices.Delete(l.games, index-1, index)
		return nil
	}

	if strings.Contains(selector, "-") {
		start, end, err := parseRange(selector)
		if err != nil {
			return err
		}
		if start > end || start < 1 {
			return fmt.Errorf("%w: range %q must run from 1 upwards", ErrInvalidSelector, selector)
		}
		if end > len(l.games) {
			return fmt.Errorf("%w: range %q outside 1-%d", ErrInvalidSelector, selector, len(l.games))
		}
		l.games = slices.Delete(l.games, start-1, end)
		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidSelector, selector)
}

// Games returns the list in plan order. Remove positions refer to this order.
func (l *List) Games() []game.Game {
	return slices.Clone(l.games)
}

// Names returns the names in the list sorted case-insensitively.
func (l *List) Names() []string {
	names := make([]string, len(l.games))
	for i, g := range l.games {
		names[i] = g.Name
	}
	sort.SliceStable(names, func(i, j int) bool {
		return game.CompareNames(names[i], names[j]) < 0
	})
	return names
}

// Contains reports whether g is in the list.
func (l *List) Contains(g game.Game) bool {
	return slices.Contains(l.games, g)
}

// Count returns the number of games in the list.
func (l *List) Count() int {
	return len(l.games)
}

// Clear empties the list.
func (l *List) Clear() {
	l.games = nil
}

// appendAll appends each game not already present, preserving order.
func (l *List) appendAll(games []game.Game) {
	added := 0
	for _, g := range games {
		if l.Contains(g) {
			continue
		}
		l.games = append(l.games, g)
		added++
	}
	log.Debugf("plan add: offered=%d added=%d count=%d", len(games), added, len(l.games))
}

// parseRange splits "start-end" into its two integers.
func parseRange(selector string) (int, int, error) {
	parts := strings.Split(selector, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: malformed range %q", ErrInvalidSelector, selector)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed range %q", ErrInvalidSelector, selector)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed range %q", ErrInvalidSelector, selector)
	}
	return start, end, nil
}
