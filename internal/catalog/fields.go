// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bgarena/bgarena/internal/game"
)

// setField stores a raw cell into the attribute of g named by c. Empty cells
// leave the zero value.
func setField(g *game.Game, c game.Column, raw string) error {
	raw = strings.TrimSpace(raw)
	if c == game.ColumnName {
		g.Name = raw
		return nil
	}
	if raw == "" {
		return nil
	}

	switch c {
	case game.ColumnRating, game.ColumnDifficulty:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", c, raw)
		}
		if c == game.ColumnRating {
			g.Rating = f
		} else {
			g.Difficulty = f
		}
		return nil
	}

	n, err := parseInt(raw)
	if err != nil {
		return fmt.Errorf("%s: %q is not a whole number", c, raw)
	}

	switch c {
	case game.ColumnID:
		g.ID = n
	case game.ColumnMinPlayers:
		g.MinPlayers = n
	case game.ColumnMaxPlayers:
		g.MaxPlayers = n
	case game.ColumnMinTime:
		g.MinPlayTime = n
	case game.ColumnMaxTime:
		g.MaxPlayTime = n
	case game.ColumnYear:
		g.YearPublished = n
	case game.ColumnRank:
		g.Rank = n
	}
	return nil
}

// parseInt accepts integers and integral decimals such as "12.0".
func parseInt(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}
