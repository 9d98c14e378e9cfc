// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bgarena/bgarena/internal/game"
	"github.com/bgarena/bgarena/internal/gamelist"
	"github.com/bgarena/bgarena/internal/log"
	"github.com/bgarena/bgarena/internal/output"
	"github.com/bgarena/bgarena/internal/planner"
)

// session is the state of one interactive shell: the planner over the
// catalog, the plan, and the sequence most recently shown, which is what add
// selectors index into.
type session struct {
	planner   *planner.Planner
	plan      *gamelist.List
	shown     []game.Game
	sortOn    game.Column
	ascending bool
	opts      output.Options
}

func newSession(games []game.Game, sortOn game.Column, ascending bool, opts output.Options) *session {
	opts.Format = output.FormatText
	opts.Index = true
	return &session{
		planner:   planner.New(games),
		plan:      gamelist.New(),
		sortOn:    sortOn,
		ascending: ascending,
		opts:      opts,
	}
}

// Exec runs one shell line and returns its output. quit is true when the
// session should end.
func (s *session) Exec(line string) (out string, quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	log.Debugf("shell: verb=%s rest=%q", verb, rest)

	switch strings.ToLower(verb) {
	case "exit", "quit":
		return "", true
	case "help":
		return shellHelp(), false
	case "filter":
		return s.filter(rest), false
	case "sort":
		return s.sort(rest), false
	case "reset":
		s.planner.Reset()
		s.shown = nil
		return fmt.Sprintf("Catalog reset: %d games.", s.planner.CatalogSize()), false
	case "add":
		return s.add(rest), false
	case "remove", "rm":
		if err := s.plan.Remove(rest); err != nil {
			return errorLine(err), false
		}
		return s.planCount(), false
	case "list", "ls":
		return s.list(), false
	case "names":
		names := s.plan.Names()
		if len(names) == 0 {
			return "Plan is empty.", false
		}
		return strings.Join(names, "\n"), false
	case "count":
		return s.planCount(), false
	case "clear":
		s.plan.Clear()
		return s.planCount(), false
	case "save":
		if err := s.plan.Save(rest); err != nil {
			return errorLine(err), false
		}
		return fmt.Sprintf("Saved %d games to %s.", s.plan.Count(), rest), false
	default:
		return fmt.Sprintf("Unknown command %q. Type 'help' for commands.", verb), false
	}
}

// filter handles "filter EXPR [sort COL [asc|desc]]".
func (s *session) filter(rest string) string {
	expr, sortSpec, hasSort := splitSortClause(rest)
	if hasSort {
		if msg := s.setSort(sortSpec); msg != "" {
			return msg
		}
	}
	s.shown = s.planner.FilterSorted(expr, s.sortOn, s.ascending)
	return s.render(s.shown, "")
}

// sort handles "sort COL [asc|desc]" over the current view.
func (s *session) sort(rest string) string {
	if msg := s.setSort(rest); msg != "" {
		return msg
	}
	s.shown = s.planner.FilterSorted("", s.sortOn, s.ascending)
	return s.render(s.shown, "")
}

func (s *session) add(rest string) string {
	if s.shown == nil {
		return "Nothing shown to add from. Run 'filter' first."
	}
	if err := s.plan.Add(rest, s.shown); err != nil {
		return errorLine(err)
	}
	return s.planCount()
}

func (s *session) list() string {
	if s.plan.Count() == 0 {
		return "Plan is empty."
	}
	return s.render(s.plan.Games(), "Plan")
}

// setSort parses "COL [asc|desc]". A leading "-" on COL means descending.
func (s *session) setSort(spec string) string {
	fields := strings.Fields(spec)
	if len(fields) == 0 || len(fields) > 2 {
		return "Usage: sort COLUMN [asc|desc]"
	}

	col, ascending, err := planner.ParseSortSpec(fields[0])
	if err != nil {
		return errorLine(err)
	}
	if len(fields) == 2 {
		switch strings.ToLower(fields[1]) {
		case "asc":
			ascending = true
		case "desc":
			ascending = false
		default:
			return "Usage: sort COLUMN [asc|desc]"
		}
	}

	s.sortOn, s.ascending = col, ascending
	return ""
}

func (s *session) planCount() string {
	n := s.plan.Count()
	if n == 1 {
		return "Plan: 1 game."
	}
	return fmt.Sprintf("Plan: %d games.", n)
}

func (s *session) render(games []game.Game, header string) string {
	opts := s.opts
	opts.Header = header
	if header == "" {
		opts.Footer = output.Footer(len(games), s.planner.CatalogSize())
	}

	var buf bytes.Buffer
	output.TableWriter(&buf, games, opts)
	return strings.TrimSuffix(buf.String(), "\n")
}

// splitSortClause splits "EXPR sort COL [DIR]" at the last standalone "sort"
// word. A trailing "sort" with no column yields an empty sortSpec, which
// setSort rejects with its usage line.
func splitSortClause(rest string) (expr string, sortSpec string, ok bool) {
	fields := strings.Fields(rest)
	for i := len(fields) - 1; i >= 0; i-- {
		if strings.EqualFold(fields[i], "sort") {
			return strings.Join(fields[:i], " "), strings.Join(fields[i+1:], " "), true
		}
	}
	return rest, "", false
}

func errorLine(err error) string {
	return "Error: " + err.Error()
}

func shellHelp() string {
	return `Commands:
  filter EXPR [sort COL [asc|desc]]  narrow the current view, e.g. filter rating>7,max_players>=4
  sort COL [asc|desc]                re-sort the current view (-COL sorts descending)
  reset                              restore the full catalog
  add SEL                            add from the last shown list: all, N, N-M or a name
  remove SEL                         remove from the plan: all, a name, N or N-M
  list                               show the plan with its positions
  names                              show the plan's names, sorted
  count                              number of games in the plan
  clear                              empty the plan
  save PATH                          write the plan's names to PATH
  help                               this text
  exit                               leave the shell

Columns: name, year, min_players, max_players, min_time, max_time, rating,
difficulty, rank. Operators: == != >= <= > < ~=

Navigation:
  ↑/↓ arrows                         command history
  Ctrl+C                             exit`
}
