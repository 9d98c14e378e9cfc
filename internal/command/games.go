// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bgarena/bgarena/internal/config"
	"github.com/bgarena/bgarena/internal/log"
	"github.com/bgarena/bgarena/internal/meta"
	"github.com/bgarena/bgarena/internal/output"
	"github.com/bgarena/bgarena/internal/planner"
)

// gamesCommandAction is the action handler for the "games" subcommand. It
// loads the catalog, applies --filter and --sort and emits the result.
func gamesCommandAction(ctx context.Context, cmd *cli.Command) error {
	config.Config.Namespace = "games"

	if DumpSchemaIfRequested(cmd) {
		return nil
	}

	col, ascending, err := SortFromCommand(cmd)
	if err != nil {
		return err
	}

	games, err := LoadCatalog(ctx, cmd)
	if err != nil {
		return err
	}

	p := planner.New(games)
	result := p.FilterSorted(cmd.String("filter"), col, ascending)
	log.Debugf("games: shown=%d catalog=%d", len(result), p.CatalogSize())

	opts := output.OptionsFromCommand(cmd)
	if opts.Titles {
		opts.Footer = output.Footer(len(result), p.CatalogSize())
	}
	return output.Games(writer(cmd), result, opts)
}

// gamesCommandBuilder constructs the cli.Command for "games".
func gamesCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "games",
		Usage:     "filter and sort the game catalog",
		UsageText: "bgarena games [options]",
		Action:    gamesCommandAction,
		Meta:      meta,
	}).Build()
}
