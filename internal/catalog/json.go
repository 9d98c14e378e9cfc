// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/bgarena/bgarena/internal/game"
	"github.com/bgarena/bgarena/internal/log"
)

// ParseJSON reads a JSON catalog: either an array of game objects or an object
// holding that array under "games".
func ParseJSON(data []byte) ([]game.Game, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformed)
	}

	doc := gjson.ParseBytes(data)
	if doc.IsObject() {
		doc = doc.Get("games")
	}
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of games", ErrMalformed)
	}

	var (
		games []game.Game
		err   error
	)
	n := 0
	doc.ForEach(func(_, item gjson.Result) bool {
		n++
		if !item.IsObject() {
			err = fmt.Errorf("%w: game %d is not an object", ErrMalformed, n)
			return false
		}

		var g game.Game
		item.ForEach(func(key, value gjson.Result) bool {
			c, cerr := game.ResolveColumn(key.String())
			if cerr != nil {
				log.Tracef("ignoring json key %q", key.String())
				return true
			}
			if value.Type == gjson.Null {
				return true
			}
			if ferr := setField(&g, c, value.String()); ferr != nil {
				err = fmt.Errorf("%w: game %d: %w", ErrMalformed, n, ferr)
				return false
			}
			return true
		})
		if err != nil {
			return false
		}

		games = append(games, g)
		return true
	})
	if err != nil {
		return nil, err
	}

	return games, nil
}
