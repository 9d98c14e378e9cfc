// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/bgarena/bgarena/internal/config"
	"github.com/bgarena/bgarena/internal/game"
	"github.com/bgarena/bgarena/internal/log"
)

// Formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatNames = "names"
)

// Formats lists every accepted output format.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatNames}

// Options control how a game sequence is emitted.
type Options struct {
	Format  string
	Titles  bool
	Color   bool
	Padding int
	// Index prefixes each row with its 1-based position, the coordinate used
	// by add and remove selectors.
	Index  bool
	Header string
	Footer string
}

// OptionsFromCommand reads the shared output flags of cmd.
func OptionsFromCommand(cmd *cli.Command) Options {
	format := cmd.String("output")
	if format == "" {
		format = FormatText
	}
	return Options{
		Format:  format,
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
		Padding: cmd.Int("padding"),
		Index:   true,
	}
}

// Games writes games to w in the format selected by opts. If w is nil,
// os.Stdout is used.
func Games(w io.Writer, games []game.Game, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case FormatJSON:
		if games == nil {
			games = []game.Game{}
		}
		out, err := json.MarshalIndent(games, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		out, err := yaml.Marshal(games)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(out)
		return err
	case FormatNames:
		names := make([]string, len(games))
		for i, g := range games {
			names[i] = g.Name
		}
		return Names(w, names)
	case FormatText, "":
		TableWriter(w, games, opts)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// Names writes one name per line.
func Names(w io.Writer, names []string) error {
	if w == nil {
		w = os.Stdout
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

// Footer summarizes how many games are shown out of how many.
func Footer(shown, total int) string {
	noun := "games"
	if total == 1 {
		noun = "game"
	}
	return fmt.Sprintf("%s of %s %s", humanize.Comma(int64(shown)), humanize.Comma(int64(total)), noun)
}

// tableHeaders are the text table column titles.
var tableHeaders = []string{"NAME", "YEAR", "PLAYERS", "TIME", "RATING", "WEIGHT", "RANK"}

// Row returns the text table cells for g.
func Row(g game.Game) []string {
	return []string{
		g.Name,
		Cell(g, game.ColumnYear),
		span(g.MinPlayers, g.MaxPlayers),
		span(g.MinPlayTime, g.MaxPlayTime),
		Cell(g, game.ColumnRating),
		Cell(g, game.ColumnDifficulty),
		Cell(g, game.ColumnRank),
	}
}

// Cell renders a single column of g. Zero numbers render as "-".
func Cell(g game.Game, c game.Column) string {
	switch c {
	case game.ColumnName:
		return g.Name
	case game.ColumnID:
		return strconv.Itoa(g.ID)
	}

	v, ok := c.Numeric(g)
	if !ok || v == 0 {
		return "-"
	}
	if c == game.ColumnRating || c == game.ColumnDifficulty {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// span renders a min-max pair, collapsing equal bounds.
func span(lo, hi int) string {
	switch {
	case lo == 0 && hi == 0:
		return "-"
	case lo == hi || hi == 0:
		return strconv.Itoa(lo)
	case lo == 0:
		return strconv.Itoa(hi)
	default:
		return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
	}
}

// TableWriter renders games in a tabular form honoring color, titles and
// padding options. Output is written to w. If w is nil, os.Stdout is used.
func TableWriter(w io.Writer, games []game.Game, opts Options) {
	if w == nil {
		w = os.Stdout
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	if opts.Header != "" {
		fmt.Fprintln(w, headerStyle.Render(opts.Header))
	}

	if len(games) > 0 {
		rows := make([][]string, 0, len(games))
		for i, g := range games {
			row := Row(g)
			if opts.Index {
				row = append([]string{strconv.Itoa(i + 1)}, row...)
			}
			rows = append(rows, row)
		}

		pad := opts.Padding
		t := table.New().
			BorderBottom(false).
			BorderTop(false).
			BorderLeft(false).
			BorderRight(false).
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				var style lipgloss.Style
				switch {
				case row == table.HeaderRow:
					style = headerStyle
				case row%2 == 0:
					style = evenRowStyle
				default:
					style = oddRowStyle
				}

				if col > 0 {
					style = style.PaddingLeft(pad)
				}
				if opts.Index && col == 0 && row != table.HeaderRow {
					style = style.Align(lipgloss.Right)
				}

				return style
			}).
			Headers().
			Rows(rows...)

		if opts.Titles {
			headers := tableHeaders
			if opts.Index {
				headers = append([]string{"#"}, headers...)
			}
			// https://github.com/charmbracelet/lipgloss/issues/261
			t = t.Headers(headers...).BorderHeader(false)
		}
		fmt.Fprintln(w, t)
	}

	if opts.Footer != "" {
		fmt.Fprintln(w, headerStyle.Render(opts.Footer))
	}
}

// getColors returns configured color values for table rendering. Each color is
// selected based on terminal background color and brightness so that output is
// reasonably visible for light and dark terminal themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// An explicit color from the config wins. Otherwise pick a default for the
	// terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil && strings.TrimSpace(colorCfg) != "" {
			return lipgloss.Color(colorCfg)
		}
		log.Tracef("no color configured for %s", key)

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
