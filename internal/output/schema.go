// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bgarena/bgarena/internal/filters"
	"github.com/bgarena/bgarena/internal/game"
)

var kindNames = map[game.Kind]string{
	game.KindNone:    "-",
	game.KindString:  "text",
	game.KindNumeric: "number",
}

// DumpSchema writes the columns usable in --filter and --sort, and the filter
// operators, to w. If w is nil, os.Stdout is used.
func DumpSchema(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w,
		`Columns available to --filter and --sort. Each column also accepts its
compact form (minplayers) and its catalog header (avgweight).`)
	fmt.Fprintln(w, "")

	for _, c := range game.Columns() {
		note := ""
		if !c.Sortable() {
			note = " (ignored)"
		}
		fmt.Fprintf(w, "  %-12s %-14s %s%s\n", c, c.Header(), kindNames[c.Kind()], note)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Operators:")
	symbols := make([]string, 0, len(filters.Operators()))
	for _, op := range filters.Operators() {
		symbols = append(symbols, op.Symbol())
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(symbols, " "))
}
