// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package planner narrows and orders the game catalog.
//
// A Planner keeps the immutable catalog and a current view. Every call to
// Filter, FilterBy or FilterSorted starts from the current view, never from
// the catalog, so successive filters stack:
//
//	p.Filter("minplayers>=3")     // three or more players
//	p.Filter("rating>7.5")        // ...and well rated
//	p.Reset()                     // back to everything
//
// The returned slice is a fresh, sorted copy the caller may index into (the
// plan list resolves "add 1-3" against it).
package planner
