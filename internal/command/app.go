// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/bgarena/bgarena/internal/config"
	"github.com/bgarena/bgarena/internal/log"
	"github.com/bgarena/bgarena/internal/meta"
)

// InitApp builds the bgarena command tree for args.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the bgarena
	// subcommand and also the namespace used when retrieving config values.
	// arg[1] could be -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	config.Config.Namespace = ns
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: %v", err)
		cfg = config.Type{Namespace: ns}
	}

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		CatalogSpec: catalogSpecFromConfig(),
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "bgarena",
		Usage: "board game arena planner",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "bgarena version info",
				HideDefault: true,
			},
		},
		DisableSliceFlagSeparator: true,
	}

	app.Commands = append(app.Commands,
		gamesCommandBuilder(meta),
		planCommandBuilder(meta),
		shellCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// catalogSpecFromConfig reads the S3 and cache settings used when loading a
// remote catalog.
func catalogSpecFromConfig() meta.CatalogSpec {
	var spec meta.CatalogSpec
	spec.Profile, _ = config.GetString("aws.profile", "")
	spec.Region, _ = config.GetString("aws.region", "")
	spec.Endpoint, _ = config.GetString("aws.endpoint", "")
	spec.CacheClean, _ = config.GetInt("cache.clean", 0)
	enabled, err := config.GetBool("cache.enabled", true)
	if err != nil {
		log.Warnf("cache.enabled ignored: %v", err)
		enabled = true
	}
	spec.NoCache = !enabled
	return spec
}
