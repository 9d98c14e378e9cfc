// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bgarena/bgarena/internal/meta"
)

// QueryCommandBuilder constructs the one-shot catalog commands (games, plan).
// Every such command loads a catalog, narrows it with --filter and orders it
// with --sort/--desc before its own Action runs; the builder supplies those
// flags, the output flags and the catalog validator, and Flags adds anything
// command specific.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	cfgPath := qcb.Meta.Config.Source

	flags := append([]cli.Flag{}, qcb.Flags...)
	flags = append(flags,
		NewCatalogFlag(qcb.Name, cfgPath),
		newSchemaFlag(),
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated conditions, e.g. rating>7,max_players>=4",
		},
		NewSortFlag(qcb.Name, cfgPath),
		newDescFlag(),
	)
	flags = append(flags, NewGlobalFlags(qcb.Name, cfgPath)...)

	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: flags,
		// Game names may contain commas, so --add/--remove values are never
		// split. The setting is per command, not inherited from the root.
		DisableSliceFlagSeparator: true,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}
