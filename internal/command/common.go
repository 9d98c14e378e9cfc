// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/bgarena/bgarena/internal/catalog"
	"github.com/bgarena/bgarena/internal/game"
	"github.com/bgarena/bgarena/internal/log"
	"github.com/bgarena/bgarena/internal/meta"
	"github.com/bgarena/bgarena/internal/output"
	"github.com/bgarena/bgarena/internal/planner"
)

// LoadCatalog loads the catalog named by --catalog using the AWS and cache
// settings carried in meta.
func LoadCatalog(ctx context.Context, cmd *cli.Command) ([]game.Game, error) {
	spec := metaOf(cmd).CatalogSpec
	spec.Source = cmd.String("catalog")
	log.Debugf("catalog spec: %+v", spec)

	opts := []catalog.Option{
		catalog.WithStdin(reader(cmd)),
		catalog.WithCacheClean(spec.CacheClean),
		catalog.WithCache(!spec.NoCache),
	}
	if spec.Profile != "" {
		opts = append(opts, catalog.WithProfile(spec.Profile))
	}
	if spec.Region != "" {
		opts = append(opts, catalog.WithRegion(spec.Region))
	}
	if spec.Endpoint != "" {
		opts = append(opts, catalog.WithEndpoint(spec.Endpoint))
	}
	if getter, ok := cmd.Root().Metadata["s3"].(catalog.ObjectGetter); ok {
		opts = append(opts, catalog.WithObjectGetter(getter))
	}

	return catalog.Load(ctx, spec.Source, opts...)
}

// SortFromCommand resolves --sort and --desc into a column and direction.
func SortFromCommand(cmd *cli.Command) (game.Column, bool, error) {
	col, ascending, err := planner.ParseSortSpec(cmd.String("sort"))
	if err != nil {
		return col, ascending, err
	}
	if cmd.Bool("desc") {
		ascending = false
	}
	return col, ascending, nil
}

// DumpSchemaIfRequested writes the column and operator listing when --schema
// is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(writer(cmd))
		return true
	}
	return false
}

// reader returns where command input comes from.
func reader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

// writer returns where command output goes.
func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// errWriter returns where diagnostics go.
func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func metaOf(cmd *cli.Command) meta.Meta {
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
