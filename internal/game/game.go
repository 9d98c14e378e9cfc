// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package game

import "fmt"

// Game is a single catalog entry. Games are plain values: they are never
// mutated after loading and two Games with identical fields are the same game.
// Game is comparable, so it can be used directly as a map key.
type Game struct {
	ID            int     `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	MinPlayers    int     `yaml:"minPlayers" json:"minPlayers"`
	MaxPlayers    int     `yaml:"maxPlayers" json:"maxPlayers"`
	MinPlayTime   int     `yaml:"minPlayTime" json:"minPlayTime"`
	MaxPlayTime   int     `yaml:"maxPlayTime" json:"maxPlayTime"`
	YearPublished int     `yaml:"yearPublished" json:"yearPublished"`
	Rank          int     `yaml:"rank" json:"rank"`
	Difficulty    float64 `yaml:"difficulty" json:"difficulty"`
	Rating        float64 `yaml:"rating" json:"rating"`
}

// String renders the game in a compact, log friendly form.
func (g Game) String() string {
	return fmt.Sprintf("%s (%d)", g.Name, g.YearPublished)
}
