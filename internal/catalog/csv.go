// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bgarena/bgarena/internal/game"
	"github.com/bgarena/bgarena/internal/log"
)

const bom = "\ufeff"

// ParseCSV reads a CSV catalog. The first record is the header; it must name
// the game column (objectname or name).
func ParseCSV(r io.Reader) ([]game.Game, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty csv", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	columns, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var games []game.Game
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		line, _ := reader.FieldPos(0)

		if isBlank(record) {
			continue
		}

		var g game.Game
		for i, cell := range record {
			c, ok := columns[i]
			if !ok {
				continue
			}
			if err := setField(&g, c, cell); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
			}
		}
		log.Tracef("csv line %d: %s", line, g)
		games = append(games, g)
	}

	return games, nil
}

// mapHeader maps record positions to columns, ignoring unknown headers.
func mapHeader(header []string) (map[int]game.Column, error) {
	columns := make(map[int]game.Column, len(header))
	hasName := false
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		c, err := game.ResolveColumn(h)
		if err != nil {
			log.Debugf("ignoring csv column %q", h)
			continue
		}
		columns[i] = c
		if c == game.ColumnName {
			hasName = true
		}
	}
	if !hasName {
		return nil, fmt.Errorf("%w: header has no name column", ErrMalformed)
	}
	return columns, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
