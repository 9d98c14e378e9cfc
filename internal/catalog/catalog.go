// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bgarena/bgarena/internal/game"
	"github.com/bgarena/bgarena/internal/log"
)

var (
	// ErrUnsupportedSource is returned for sources Load cannot read.
	ErrUnsupportedSource = errors.New("unsupported catalog source")
	// ErrMalformed is returned when catalog content cannot be parsed.
	ErrMalformed = errors.New("malformed catalog")
)

// Stdin is the source name that reads CSV from standard input.
const Stdin = "-"

// Format is the encoding of catalog content.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatOf infers the format from a path or object key extension.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// options holds optional overrides for catalog loading.
type options struct {
	stdin      io.Reader
	getter     ObjectGetter
	profile    string
	region     string
	endpoint   string
	cacheClean int
	cache      bool
}

// Option customizes how a catalog is loaded.
type Option func(*options)

// WithStdin sets the reader used for the "-" source. Defaults to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// WithObjectGetter injects the S3 client. When unset a client is built from
// the default AWS config chain.
func WithObjectGetter(g ObjectGetter) Option {
	return func(o *options) { o.getter = g }
}

// WithProfile sets the shared AWS config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the AWS region override.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpoint points the S3 client at an S3 compatible endpoint.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithCacheClean purges cached remote catalogs older than hours before
// loading. Zero disables purging.
func WithCacheClean(hours int) Option {
	return func(o *options) { o.cacheClean = hours }
}

// WithCache turns the on-disk cache of remote catalogs on or off. It is on by
// default, and BGARENA_CACHE=0 still disables it.
func WithCache(enabled bool) Option {
	return func(o *options) { o.cache = enabled }
}

// Load reads the catalog named by source.
func Load(ctx context.Context, source string, opts ...Option) ([]game.Game, error) {
	o := options{stdin: os.Stdin, cache: true}
	for _, opt := range opts {
		opt(&o)
	}

	source = strings.TrimSpace(source)
	log.Debugf("catalog source: %s", source)

	switch {
	case source == "":
		return nil, fmt.Errorf("%w: no catalog given", ErrUnsupportedSource)

	case source == Stdin:
		return ParseCSV(o.stdin)

	case strings.HasPrefix(source, s3Scheme):
		loc, err := parseS3URI(source)
		if err != nil {
			return nil, err
		}
		format := FormatOf(loc.key)
		if format == FormatUnknown {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
		}
		data, err := fetchS3(ctx, loc, &o)
		if err != nil {
			return nil, err
		}
		return Decode(data, format)

	default:
		path, err := expandHome(source)
		if err != nil {
			return nil, err
		}
		format := FormatOf(path)
		if format == FormatUnknown {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		return Decode(data, format)
	}
}

// Decode parses catalog content in the given format.
func Decode(data []byte, format Format) ([]game.Game, error) {
	var (
		games []game.Game
		err   error
	)
	switch format {
	case FormatCSV:
		games, err = ParseCSV(bytes.NewReader(data))
	case FormatJSON:
		games, err = ParseJSON(data)
	default:
		return nil, fmt.Errorf("%w: format %s", ErrUnsupportedSource, format)
	}
	if err != nil {
		return nil, err
	}
	log.Debugf("catalog decoded: format=%s games=%d", format, len(games))
	return games, nil
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
