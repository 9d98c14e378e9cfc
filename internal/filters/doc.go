// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters parses and evaluates the filter expressions used to narrow
// the game catalog.
//
// An expression is a comma separated list of column-operator-value
// conditions. Whitespace anywhere in the expression is ignored and every
// condition must hold for a game to survive.
//
// Operators include:
//
//   - == : equal
//   - != : not equal
//   - >= : greater than or equal
//   - <= : less than or equal
//   - >  : greater than
//   - <  : less than
//   - ~= : name contains (numeric columns ignore it)
//
// Operators are detected longest symbol first, so "rank>=5" is read with >=
// and never as "rank" > "=5".
//
// Examples:
//
//   - "name~=catan" : names containing "catan"
//   - "minplayers>=3,maxplayers<=5" : three to five player games
//   - "rating>7.5,difficulty<3" : highly rated light games
//   - "name>m" : names sorting after "m"
//
// Name Comparison:
//
// Names are compared lower-cased with whitespace removed on both sides, so
// "name==tickettoride" matches "Ticket to Ride".
//
// Permissive Parsing:
//
// Filtering never fails. A condition without an operator, with an unknown
// column, with an empty value or with a numeric column and a non-numeric value
// is dropped (and logged at debug level), leaving the other conditions to do
// their work. Conditions on the id column always pass.
package filters
