// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen renders the bgarena command reference from the live command
// tree: one markdown page per subcommand plus a YAML index of every flag.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/bgarena/bgarena/internal/command"
	"github.com/bgarena/bgarena/internal/version"
)

type Reference struct {
	Version     string       `yaml:"version"`
	Subcommands []Subcommand `yaml:"subcommands"`
}

type Subcommand struct {
	ID          string `yaml:"id"`
	Short       string `yaml:"short"`
	Usage       string `yaml:"usage"`
	Description string `yaml:"description,omitempty"`
	Flags       []Flag `yaml:"flags"`
}

type Flag struct {
	ID          string `yaml:"id"`
	Syntax      string `yaml:"syntax"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
	IDUpper string
}

const pageTemplate = `# bgarena {{ .ID }}

{{ .Short }}

## Usage

` + "```" + `
{{ .Usage }}
` + "```" + `
{{ if .Description }}
{{ .Description }}
{{ end }}
## Flags
{{ range .Flags }}
- ` + "`{{ .Syntax }}`" + `{{ if .Description }}: {{ .Description }}{{ end }}{{ end }}

_BGARENA-{{ .IDUpper }} {{ .Version }}, generated {{ .Date }}_
`

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen DOCS_DIR")
		os.Exit(2)
	}

	app, err := command.InitApp(context.Background(), []string{"bgarena"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	files, err := generate(app, os.Args[1], version.Version, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, f := range files {
		fmt.Println("Generated", f)
	}
}

// generate writes docs/commands/<id>.md for every subcommand of app and
// docs/commands.yaml describing all of them. It returns the files written.
func generate(app *cli.Command, docs string, ver string, now time.Time) ([]string, error) {
	ref := Reference{Version: ver, Subcommands: describe(app)}

	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, sub := range ref.Subcommands {
		path := filepath.Join(folder, sub.ID+".md")
		file, err := os.Create(path)
		if err != nil {
			return written, err
		}

		data := TemplateData{
			Subcommand: sub,
			Date:       now.Format("January 2, 2006"),
			Version:    ver,
			IDUpper:    strings.ToUpper(sub.ID),
		}
		err = tmpl.Execute(file, data)
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	index, err := yaml.Marshal(ref)
	if err != nil {
		return written, err
	}
	path := filepath.Join(docs, "commands.yaml")
	if err := os.WriteFile(path, index, 0o644); err != nil {
		return written, err
	}

	return append(written, path), nil
}

// describe flattens the subcommands of app into their reference form, with
// flags sorted by name.
func describe(app *cli.Command) []Subcommand {
	subs := make([]Subcommand, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		sub := Subcommand{
			ID:          cmd.Name,
			Short:       cmd.Usage,
			Usage:       cmd.UsageText,
			Description: cmd.Description,
		}
		if sub.Usage == "" {
			sub.Usage = "bgarena " + cmd.Name + " [options]"
		}

		for _, f := range cmd.Flags {
			sub.Flags = append(sub.Flags, describeFlag(f))
		}
		sort.Slice(sub.Flags, func(i, j int) bool {
			return sub.Flags[i].ID < sub.Flags[j].ID
		})

		subs = append(subs, sub)
	}
	return subs
}

func describeFlag(f cli.Flag) Flag {
	names := f.Names()
	syntax := make([]string, len(names))
	for i, n := range names {
		if len(n) == 1 {
			syntax[i] = "-" + n
		} else {
			syntax[i] = "--" + n
		}
	}

	flag := Flag{ID: names[0], Syntax: strings.Join(syntax, ", ")}
	if u, ok := f.(interface{ GetUsage() string }); ok {
		flag.Description = u.GetUsage()
	}
	return flag
}
