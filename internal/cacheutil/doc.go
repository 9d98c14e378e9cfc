// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cacheutil keeps fetched remote catalogs on disk so repeated runs
// do not download them again. Entries are addressed by a clear-text key and
// optional subdirectories and are stored under a SHA-256 file name.
package cacheutil
