// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bgarena/bgarena/internal/config"
	"github.com/bgarena/bgarena/internal/gamelist"
	"github.com/bgarena/bgarena/internal/log"
	"github.com/bgarena/bgarena/internal/meta"
	"github.com/bgarena/bgarena/internal/output"
	"github.com/bgarena/bgarena/internal/planner"
)

// planCommandAction is the action handler for the "plan" subcommand. It runs
// the filter and sort, adds each --add selection from the result, removes
// each --remove selection from the plan, prints the plan and optionally saves
// it.
func planCommandAction(ctx context.Context, cmd *cli.Command) error {
	config.Config.Namespace = "plan"

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

	plan := gamelist.New()
	for _, sel := range cmd.StringSlice("add") {
		if err := plan.Add(sel, result); err != nil {
			return fmt.Errorf("--add %s: %w", sel, err)
		}
	}
	for _, sel := range cmd.StringSlice("remove") {
		if err := plan.Remove(sel); err != nil {
			return fmt.Errorf("--remove %s: %w", sel, err)
		}
	}
	log.Debugf("plan: games=%d", plan.Count())

	opts := output.OptionsFromCommand(cmd)
	if opts.Format == output.FormatNames {
		// Names in export order, matching what --save writes.
		err = output.Names(writer(cmd), plan.Names())
	} else {
		if opts.Titles {
			opts.Footer = output.Footer(plan.Count(), len(result))
		}
		err = output.Games(writer(cmd), plan.Games(), opts)
	}
	if err != nil {
		return err
	}

	if path := cmd.String("save"); path != "" {
		if err := plan.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(errWriter(cmd), "saved %d games to %s\n", plan.Count(), path)
	}

	return nil
}

// planCommandBuilder constructs the cli.Command for "plan".
func planCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "plan",
		Usage:     "build a plan from the filtered catalog",
		UsageText: "bgarena plan [options] --add SELECTOR [--remove SELECTOR] [--save PATH]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "add",
				Aliases: []string{"a"},
				Usage:   "add games from the result: all, N, N-M or a name (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "remove",
				Aliases: []string{"r"},
				Usage:   "remove games from the plan: all, a name, N or N-M (repeatable)",
			},
			&cli.StringFlag{
				Name:  "save",
				Usage: "write the plan's names to PATH, one per line",
			},
		},
		Action: planCommandAction,
		Meta:   meta,
	}).Build()
}
