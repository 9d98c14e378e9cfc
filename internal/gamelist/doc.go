// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package gamelist holds the user's plan, an ordered list of distinct games,
// and the selector language used to change it.
//
// Selectors:
//
//   - "all"   : every game
//   - "3"     : the third game
//   - "2-5"   : the second through fifth games, inclusive
//   - "Catan" : the game with that name, ignoring case
//
// Add resolves indexes against the candidate slice it is given (typically the
// result of the last filter), while Remove resolves them against the plan's
// own order. Unlike filtering, a selector that cannot be applied is an error
// (ErrInvalidSelector) and leaves the plan untouched.
package gamelist
