// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/bgarena/bgarena/internal/game"
)

var (
	catan = game.Game{
		ID: 13, Name: "Catan", Rank: 429, Rating: 7.1, Difficulty: 2.29,
		MinPlayers: 3, MaxPlayers: 4, MinPlayTime: 60, MaxPlayTime: 120, YearPublished: 1995,
	}
	azul = game.Game{
		ID: 230802, Name: "Azul", Rank: 77, Rating: 7.7, Difficulty: 1.77,
		MinPlayers: 2, MaxPlayers: 4, MinPlayTime: 30, MaxPlayTime: 45, YearPublished: 2017,
	}
)

func TestCell(t *testing.T) {
	tests := []struct {
		name   string
		g      game.Game
		column game.Column
		want   string
	}{
		{name: "name", g: catan, column: game.ColumnName, want: "Catan"},
		{name: "id", g: catan, column: game.ColumnID, want: "13"},
		{name: "rating", g: catan, column: game.ColumnRating, want: "7.10"},
		{name: "difficulty", g: azul, column: game.ColumnDifficulty, want: "1.77"},
		{name: "year", g: azul, column: game.ColumnYear, want: "2017"},
		{name: "zero rank", g: game.Game{Name: "x"}, column: game.ColumnRank, want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cell(tt.g, tt.column))
		})
	}
}

func TestSpan(t *testing.T) {
	assert.Equal(t, "3-4", span(3, 4))
	assert.Equal(t, "2", span(2, 2))
	assert.Equal(t, "5", span(5, 0))
	assert.Equal(t, "8", span(0, 8))
	assert.Equal(t, "-", span(0, 0))
}

func TestRow(t *testing.T) {
	assert.Equal(t,
		[]string{"Catan", "1995", "3-4", "60-120", "7.10", "2.29", "429"},
		Row(catan))
}

func TestFooter(t *testing.T) {
	assert.Equal(t, "2 of 21,345 games", Footer(2, 21345))
	assert.Equal(t, "1 of 1 game", Footer(1, 1))
	assert.Equal(t, "0 of 0 games", Footer(0, 0))
}

func TestGamesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Games(&buf, []game.Game{catan, azul}, Options{Format: FormatJSON}))

	parsed := gjson.Parse(buf.String())
	require.True(t, parsed.IsArray())
	assert.Equal(t, "Catan", parsed.Get("0.name").String())
	assert.Equal(t, int64(230802), parsed.Get("1.id").Int())
	assert.Equal(t, 1.77, parsed.Get("1.difficulty").Float())
	assert.Equal(t, int64(45), parsed.Get("1.maxPlayTime").Int())
}

func TestGamesJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Games(&buf, nil, Options{Format: FormatJSON}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestGamesYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Games(&buf, []game.Game{azul}, Options{Format: FormatYAML}))

	var got []game.Game
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []game.Game{azul}, got)
	assert.Contains(t, buf.String(), "minPlayers: 2")
}

func TestGamesNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Games(&buf, []game.Game{catan, azul}, Options{Format: FormatNames}))
	assert.Equal(t, "Catan\nAzul\n", buf.String())
}

func TestGamesUnknownFormat(t *testing.T) {
	assert.Error(t, Games(&bytes.Buffer{}, nil, Options{Format: "xml"}))
}

func TestTableWriter(t *testing.T) {
	tests := []struct {
		name    string
		games   []game.Game
		opts    Options
		want    []string
		notWant []string
		lines   int
	}{
		{
			name:  "indexed rows",
			games: []game.Game{catan, azul},
			opts:  Options{Index: true},
			want:  []string{"1", "Catan", "60-120", "2", "Azul", "2017"},
			lines: 2,
		},
		{
			name:    "titles",
			games:   []game.Game{catan},
			opts:    Options{Titles: true},
			want:    []string{"NAME", "PLAYERS", "WEIGHT", "Catan"},
			notWant: []string{"#"},
		},
		{
			name:  "titles with index",
			games: []game.Game{catan},
			opts:  Options{Titles: true, Index: true},
			want:  []string{"#", "NAME"},
		},
		{
			name:  "header and footer",
			games: []game.Game{azul},
			opts:  Options{Header: "Plan", Footer: Footer(1, 2)},
			want:  []string{"Plan", "Azul", "1 of 2 games"},
			lines: 3,
		},
		{
			name:    "empty prints only footer",
			games:   nil,
			opts:    Options{Titles: true, Footer: Footer(0, 5)},
			want:    []string{"0 of 5 games"},
			notWant: []string{"NAME"},
			lines:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			TableWriter(&buf, tt.games, tt.opts)
			out := buf.String()

			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
			if tt.lines > 0 {
				assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), tt.lines)
			}
		})
	}
}

func TestGetColors(t *testing.T) {
	header, even, odd := getColors("colors")

	assert.NotNil(t, header)
	assert.NotNil(t, even)
	assert.NotNil(t, odd)
}

func TestOptionsFromCommand(t *testing.T) {
	var got Options
	cmd := &cli.Command{
		Name: "games",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.BoolFlag{Name: "titles"},
			&cli.BoolFlag{Name: "color"},
			&cli.IntFlag{Name: "padding", Value: 2},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			got = OptionsFromCommand(cmd)
			return nil
		},
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"games", "--output", "yaml", "--titles"}))
	assert.Equal(t, Options{Format: FormatYAML, Titles: true, Padding: 2, Index: true}, got)
}

func TestDumpSchema(t *testing.T) {
	var buf bytes.Buffer
	DumpSchema(&buf)
	out := buf.String()

	assert.Contains(t, out, "min_players")
	assert.Contains(t, out, "avgweight")
	assert.Contains(t, out, "id           id             - (ignored)")
	assert.Contains(t, out, "== != >= <= > < ~=")
}
