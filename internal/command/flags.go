// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// EnvCatalog names the environment variable holding the default catalog.
const EnvCatalog = "BGARENA_CATALOG"

// newSchemaFlag constructs the --schema flag.
func newSchemaFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "schema",
		Usage:       "list the columns and operators usable in filters",
		HideDefault: true,
	}
}

// NewCatalogFlag constructs the --catalog flag. Its value comes from the
// command line, then BGARENA_CATALOG, then the namespaced and global
// "catalog" keys of the config file at cfgPath.
func NewCatalogFlag(ns string, cfgPath string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"k"},
		Usage:   "game catalog: path to .csv/.json, s3://bucket/key, or - for stdin",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar(EnvCatalog),
		),
	}
	flag.Sources.Chain = append(flag.Sources.Chain, configSources(ns, flag.Name, cfgPath)...)
	return flag
}

// NewDisplayFlags returns the flags controlling text output. Color and titles
// may default from the config file.
func NewDisplayFlags(ns string, cfgPath string) []cli.Flag {
	color := &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Value:   false,
	}
	color.Sources.Chain = configSources(ns, color.Name, cfgPath)

	titles := &cli.BoolFlag{
		Name:    "titles",
		Aliases: []string{"t"},
		Usage:   "show titles with text output",
		Value:   false,
	}
	titles.Sources.Chain = configSources(ns, titles.Name, cfgPath)

	return []cli.Flag{
		color,
		titles,
		&cli.IntFlag{
			Name:  "padding",
			Usage: "extra left padding between text columns",
			Value: 0,
		},
	}
}

// NewGlobalFlags returns the output and display flags shared by the one-shot
// commands.
func NewGlobalFlags(ns string, cfgPath string) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml, names)",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
	}

	return append(flags, NewDisplayFlags(ns, cfgPath)...)
}

// newDescFlag constructs the --desc flag.
func newDescFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "desc",
		Aliases: []string{"d"},
		Usage:   "sort descending",
		Value:   false,
	}
}

// NewSortFlag constructs the --sort flag, optionally defaulted from the
// namespaced or global "sort" config key.
func NewSortFlag(ns string, cfgPath string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "sort",
		Aliases: []string{"s"},
		Usage:   "column to sort by; prefix with - for descending",
		Validator: func(value string) error {
			return FlagValidators(value, SortValidator)
		},
	}
	flag.Sources.Chain = configSources(ns, flag.Name, cfgPath)
	return flag
}

// configSources returns the namespaced and global config file sources for key.
// Without a config file there are none.
func configSources(ns string, key string, path string) []cli.ValueSource {
	if path == "" {
		return nil
	}

	var sources []cli.ValueSource
	if ns != "" {
		sources = append(sources, yaml.YAML(ns+"."+key, altsrc.StringSourcer(path)))
	}
	return append(sources, yaml.YAML(key, altsrc.StringSourcer(path)))
}
