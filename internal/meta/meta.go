// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/bgarena/bgarena/internal/config"
)

// CatalogSpec names where the game catalog comes from and the AWS settings
// used when it lives in S3.
type CatalogSpec struct {
	Source     string
	Profile    string
	Region     string
	Endpoint   string
	CacheClean int
	NoCache    bool
}

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the resolved catalog specification, and the
// starting working directory.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	CatalogSpec
	StartingDir string
}
