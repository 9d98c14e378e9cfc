// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package game defines the board game entity and the closed set of columns
// that filter expressions and sort specs may refer to.
//
// Column names are resolved case-insensitively. Each column answers to its
// canonical name (min_players), a compact name (minplayers) and the header
// used by BoardGameGeek catalog exports (minplayers, objectname, average,
// avgweight, ...), so a filter may be written with whichever a user knows:
//
//   - "minplayers>=3"
//   - "min_players>=3"
//   - "average>7.5" (same as "rating>7.5")
//
// The ID column exists so that catalogs can carry it, but it can be neither
// filtered nor sorted on.
package game
