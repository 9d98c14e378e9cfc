// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for bgarena's user
// configuration. The configuration is a YAML document located through
// BGARENA_CFG_FILE or in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/bgarena.yaml or $HOME/.config/bgarena.yaml
//   - macOS: $HOME/Library/Application Support/bgarena.yaml
//   - Windows: %APPDATA%/bgarena.yaml
//
// A typical file:
//
//	catalog: ~/games/bgg.csv
//	games:
//	  sort: -rating
//	history:
//	  size: 500
//	cache:
//	  clean: 24
//	aws:
//	  region: us-east-1
package config
