// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bgarena/bgarena/internal/cacheutil"
	"github.com/bgarena/bgarena/internal/command"
	"github.com/bgarena/bgarena/internal/config"
	"github.com/bgarena/bgarena/internal/log"
	"github.com/bgarena/bgarena/internal/version"
)

var ctx = context.Background()

// repeatableFlags may legitimately appear more than once and are never
// deduplicated.
var repeatableFlags = map[string]bool{
	"--add":    true,
	"-a":       true,
	"--remove": true,
	"-r":       true,
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs expands @set references and collapses repeated flags.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	args = deduplicateFlags(args)
	log.Debugf("args after dedup: args=%v", args)
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	// Pre-create cache directory when caching is enabled.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands an @set argument into the flags listed under the
// "<command>.<set>" config key, at the position of the @set argument. Without
// an explicit @set, "<command>.defaults" is injected right after the command.
func processSetOnly(args []string) []string {
	if len(args) < 2 {
		return args
	}

	idx := 2
	set := "defaults"
	insertIdx := idx
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			insertIdx = idx + i
			// Remove the @set argument.
			args = append(args[:insertIdx:insertIdx], args[insertIdx+1:]...)
			break
		}
	}

	entries, _ := config.GetStringSlice(args[1] + "." + set)
	return injectConfigSet(args, entries, insertIdx)
}

// injectConfigSet splits each entry on whitespace and inserts the fields into
// args at insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// argGroup is a positional argument, or a flag with its value if any.
type argGroup struct {
	key    string
	tokens []string
}

// deduplicateFlags keeps only the last occurrence of each flag after the
// command so that later flags override earlier ones, such as those injected
// from a config set. A flag followed by a token isFlagValue accepts is taken
// to carry that token as its value. Repeatable flags and everything
// after "--" are left alone.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	var groups []argGroup
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if a == "--" {
			groups = append(groups, argGroup{tokens: rest[i:]})
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			groups = append(groups, argGroup{tokens: []string{a}})
			continue
		}

		key, _, hasValue := strings.Cut(a, "=")
		g := argGroup{key: key, tokens: []string{a}}
		if !hasValue && i+1 < len(rest) && isFlagValue(rest[i+1]) {
			g.tokens = append(g.tokens, rest[i+1])
			i++
		}
		groups = append(groups, g)
	}

	last := make(map[string]int)
	for i, g := range groups {
		if g.key != "" {
			last[g.key] = i
		}
	}

	out := make([]string, 0, len(args))
	out = append(out, args[:2]...)
	for i, g := range groups {
		if g.key != "" && !repeatableFlags[g.key] && last[g.key] != i {
			continue
		}
		out = append(out, g.tokens...)
	}
	return out
}

// isFlagValue reports whether a token following a flag is that flag's value:
// anything not starting with "-", the stdin marker "-", or a single-dash word
// such as the descending sort spec "-rating". Short flags are one letter.
func isFlagValue(token string) bool {
	switch {
	case !strings.HasPrefix(token, "-"), token == "-":
		return true
	case strings.HasPrefix(token, "--"):
		return false
	default:
		return len(token) > 2
	}
}
