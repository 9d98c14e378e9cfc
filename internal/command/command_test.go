// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/bgarena/bgarena/internal/cacheutil"
	"github.com/bgarena/bgarena/internal/config"
	"github.com/bgarena/bgarena/internal/gamelist"
)

// testCatalog is the absolute path of the fixture catalog.
func testCatalog(t *testing.T) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("testdata", "games.csv"))
	require.NoError(t, err)
	return p
}

// useConfig writes body as the config file and isolates env driven defaults.
func useConfig(t *testing.T, body string) {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "bgarena.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(body), 0o600))
	t.Setenv(config.EnvCfgFile, cfgFile)
	t.Setenv(cacheutil.EnvCacheDir, t.TempDir())
	t.Setenv(EnvCatalog, "")
	require.NoError(t, os.Unsetenv(EnvCatalog))

	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

type result struct {
	stdout string
	stderr string
	err    error
}

// runApp builds and runs the app for args, feeding stdin.
func runApp(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	args = append([]string{"bgarena"}, args...)

	app, err := InitApp(context.Background(), args)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Reader = strings.NewReader(stdin)

	err = app.Run(context.Background(), args)
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGamesCommand(t *testing.T) {
	useConfig(t, "history:\n  size: 10\n")
	catalog := testCatalog(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "filter sorted by name",
			args: []string{"games", "--catalog", catalog, "--filter", "rating>7.5", "--output", "names"},
			want: []string{"Azul", "Dominion", "Gloomhaven"},
		},
		{
			name: "sort descending flag",
			args: []string{"games", "-k", catalog, "-f", "rating>7.5", "-s", "rating", "--desc", "-o", "names"},
			want: []string{"Gloomhaven", "Azul", "Dominion"},
		},
		{
			name: "sort descending prefix",
			args: []string{"games", "-k", catalog, "-f", "rating>7.5", "--sort=-rating", "-o", "names"},
			want: []string{"Gloomhaven", "Azul", "Dominion"},
		},
		{
			name: "conjunction",
			args: []string{"games", "-k", catalog, "-f", "max_players>=5, min_time<=30, name~=ticket", "-o", "names"},
			want: []string{"Ticket to Ride"},
		},
		{
			name: "bad condition is ignored",
			args: []string{"games", "-k", catalog, "-f", "rank>abc,year>=2010", "-o", "names"},
			want: []string{"Azul", "Gloomhaven"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runApp(t, "", tt.args...)
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, lines(r.stdout))
		})
	}
}

func TestGamesCommandFormats(t *testing.T) {
	useConfig(t, "colors:\n  title: '#ffffff'\n")
	catalog := testCatalog(t)

	t.Run("json", func(t *testing.T) {
		r := runApp(t, "", "games", "-k", catalog, "-o", "json")
		require.NoError(t, r.err)
		parsed := gjson.Parse(r.stdout)
		assert.Equal(t, int64(6), parsed.Get("#").Int())
		assert.Equal(t, "Azul", parsed.Get("0.name").String())
	})

	t.Run("text with titles", func(t *testing.T) {
		r := runApp(t, "", "games", "-k", catalog, "-f", "year<2000", "--titles")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "NAME")
		assert.Contains(t, r.stdout, "Catan")
		assert.Contains(t, r.stdout, "1 of 6 games")
	})

	t.Run("schema needs no catalog", func(t *testing.T) {
		r := runApp(t, "", "games", "--schema")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "max_players")
	})
}

func TestGamesCommandErrors(t *testing.T) {
	useConfig(t, "history:\n  size: 10\n")
	catalog := testCatalog(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no catalog", args: []string{"games"}, want: "no catalog"},
		{name: "bad output", args: []string{"games", "-k", catalog, "-o", "xml"}, want: "must be one of"},
		{name: "unsortable column", args: []string{"games", "-k", catalog, "-s", "id"}, want: "cannot be sorted on"},
		{name: "unknown column", args: []string{"games", "-k", catalog, "-s", "weight"}, want: "unknown column"},
		{name: "unsupported catalog", args: []string{"games", "-k", "games.txt"}, want: "unsupported catalog source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runApp(t, "", tt.args...)
			require.Error(t, r.err)
			assert.Contains(t, r.err.Error(), tt.want)
		})
	}
}

func TestCatalogFromStdin(t *testing.T) {
	useConfig(t, "history:\n  size: 10\n")

	r := runApp(t, "name,rating\nAzul,7.7\nCatan,7.1\n", "games", "--catalog=-", "-f", "rating>=7.5", "-o", "names")
	require.NoError(t, r.err)
	assert.Equal(t, []string{"Azul"}, lines(r.stdout))
}

func TestCatalogFromConfig(t *testing.T) {
	useConfig(t, "games:\n  catalog: "+testCatalog(t)+"\n  sort: -year\n")

	r := runApp(t, "", "games", "-f", "year>=2008", "-o", "names")
	require.NoError(t, r.err)
	assert.Equal(t, []string{"Gloomhaven", "Azul", "Dominion"}, lines(r.stdout))
}

func TestCatalogFromEnv(t *testing.T) {
	useConfig(t, "history:\n  size: 10\n")
	t.Setenv(EnvCatalog, testCatalog(t))

	r := runApp(t, "", "games", "-f", "year<2000", "-o", "names")
	require.NoError(t, r.err)
	assert.Equal(t, []string{"Catan"}, lines(r.stdout))
}

func TestPlanCommand(t *testing.T) {
	useConfig(t, "history:\n  size: 10\n")
	catalog := testCatalog(t)

	t.Run("add all", func(t *testing.T) {
		r := runApp(t, "", "plan", "-k", catalog, "-f", "max_players>=5", "--add", "all", "-o", "names")
		require.NoError(t, r.err)
		assert.Equal(t, []string{"Carcassonne", "Ticket to Ride"}, lines(r.stdout))
	})

	t.Run("add range remove index save", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "plans", "friday.txt")
		r := runApp(t, "", "plan", "-k", catalog, "-f", "year>=2000", "-s", "year",
			"--add", "1-3", "--remove", "2", "--save", out, "-o", "names")
		require.NoError(t, r.err)
		assert.Equal(t, []string{"Carcassonne", "Dominion"}, lines(r.stdout))
		assert.Contains(t, r.stderr, "saved 2 games to "+out)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "Carcassonne\nDominion\n", string(data))
	})

	t.Run("names with commas are one selector", func(t *testing.T) {
		in := "name,rating\n\"Love Letter, Premium\",7.2\nAzul,7.7\n"
		r := runApp(t, in, "plan", "--catalog=-", "--add", "love letter, premium", "-o", "names")
		require.NoError(t, r.err)
		assert.Equal(t, []string{"Love Letter, Premium"}, lines(r.stdout))
	})

	t.Run("plan order with text output", func(t *testing.T) {
		r := runApp(t, "", "plan", "-k", catalog, "-s", "rank", "--add", "Catan", "--add", "1", "--titles")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "2 of 6 games")
		assert.Less(t, strings.Index(r.stdout, "Catan"), strings.Index(r.stdout, "Gloomhaven"))
	})

	t.Run("bad add selector", func(t *testing.T) {
		r := runApp(t, "", "plan", "-k", catalog, "-f", "year<2000", "--add", "2")
		require.Error(t, r.err)
		assert.ErrorIs(t, r.err, gamelist.ErrInvalidSelector)
	})

	t.Run("bad remove selector", func(t *testing.T) {
		r := runApp(t, "", "plan", "-k", catalog, "--add", "1-2", "--remove", "3-1")
		require.Error(t, r.err)
		assert.ErrorIs(t, r.err, gamelist.ErrInvalidSelector)
	})
}

func TestShellLineMode(t *testing.T) {
	useConfig(t, "history:\n  size: 10\n")

	script := strings.Join([]string{
		"filter rating>7.5 sort rating desc",
		"add 1-2",
		"names",
		"filter year>=2017",
		"add 1",
		"count",
		"exit",
		"count",
	}, "\n")

	r := runApp(t, script, "shell", "-k", testCatalog(t))
	require.NoError(t, r.err)

	out := r.stdout
	assert.Contains(t, out, "Gloomhaven")
	assert.Contains(t, out, "3 of 6 games")
	assert.Contains(t, out, "Azul\nGloomhaven")
	assert.Contains(t, out, "Plan: 2 games.")
	assert.Equal(t, 3, strings.Count(out, "Plan: 2 games."))
}

func TestCompletionCommand(t *testing.T) {
	useConfig(t, "history:\n  size: 10\n")

	r := runApp(t, "", "completion", "bash")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "complete -F _bgarena bgarena")

	r = runApp(t, "", "completion", "zsh")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "#compdef bgarena")

	t.Setenv("SHELL", "/bin/fish")
	r = runApp(t, "", "completion")
	require.NoError(t, r.err)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "usage: bgarena completion")
}

func TestSubcommandsKeepCommasInSliceFlags(t *testing.T) {
	useConfig(t, "history:\n  size: 10\n")

	app, err := InitApp(context.Background(), []string{"bgarena", "plan"})
	require.NoError(t, err)
	for _, cmd := range app.Commands {
		if cmd.Name == "completion" {
			continue
		}
		assert.True(t, cmd.DisableSliceFlagSeparator, cmd.Name)
	}

	in := "name,rating\n\"Love Letter, Premium\",7.2\n\"Kingdomino, Age of Giants\",7.3\nAzul,7.7\n"
	r := runApp(t, in, "plan", "--catalog=-",
		"--add", "Kingdomino, Age of Giants", "--add", "love letter, premium", "--add", "azul",
		"--remove", "LOVE LETTER, PREMIUM", "-o", "names")
	require.NoError(t, r.err)
	assert.Equal(t, []string{"Azul", "Kingdomino, Age of Giants"}, lines(r.stdout))
}

func TestCatalogSpecFromConfig(t *testing.T) {
	useConfig(t, "aws:\n  profile: games\n  region: eu-west-1\ncache:\n  clean: 12\n  enabled: false\n")
	_, err := config.Load()
	require.NoError(t, err)

	spec := catalogSpecFromConfig()
	assert.Equal(t, "games", spec.Profile)
	assert.Equal(t, "eu-west-1", spec.Region)
	assert.Equal(t, 12, spec.CacheClean)
	assert.True(t, spec.NoCache)

	useConfig(t, "history:\n  size: 10\n")
	_, err = config.Load()
	require.NoError(t, err)
	assert.False(t, catalogSpecFromConfig().NoCache)
}
