// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders game sequences as text tables, JSON, YAML or bare
// names, and describes the filterable columns.
package output
