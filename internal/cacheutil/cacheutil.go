// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bgarena/bgarena/internal/log"
)

const (
	// EnvCacheDir overrides the cache base directory.
	EnvCacheDir = "BGARENA_CACHE_DIR"
	// EnvCache disables caching when set to "0" or "false".
	EnvCache = "BGARENA_CACHE"

	appDir = "bgarena"
)

// Entry is a cached artifact on disk. Key is the clear-text key; the file
// name is its SHA-256 digest.
type Entry struct {
	Key     string
	Path    string
	Data    []byte
	ModTime time.Time
}

// Age reports how long ago the entry was written.
func (e *Entry) Age() time.Duration {
	return time.Since(e.ModTime)
}

// Dir resolves the base cache directory: BGARENA_CACHE_DIR when set and
// non-empty, otherwise os.UserCacheDir()/bgarena. Returns ("", false) when no
// base can be resolved, which callers treat as caching disabled.
func Dir() (string, bool) {
	if c, ok := os.LookupEnv(EnvCacheDir); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, appDir), true
	}
	return "", false
}

// Enabled returns true unless BGARENA_CACHE is "0" or "false".
func Enabled() bool {
	v := os.Getenv(EnvCache)
	return v != "0" && v != "false"
}

// EnsureBaseDir creates the base cache directory. Returns the path, whether it
// is usable, and an error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}

	base, ok := Dir()
	if !ok {
		return "", false, nil
	}

	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	return base, true, nil
}

// EntryPath returns where the entry for clearKey under subdirs lives and
// whether a file exists there now.
func EntryPath(subdirs []string, clearKey string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}
	parts := append([]string{base}, subdirs...)
	p := filepath.Join(append(parts, encodeKey(clearKey))...)
	if info, err := os.Stat(p); err == nil && !info.IsDir() {
		return p, true
	}
	return p, false
}

// Purge removes cache files older than hours. hours <= 0 disables purging.
func Purge(hours int) error {
	if hours <= 0 {
		log.Debugf("cache purge disabled")
		return nil
	}

	base, ok := Dir()
	if !ok {
		return nil
	}

	maxAge := time.Duration(hours) * time.Hour
	removed := 0
	err := filepath.Walk(base, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}
		if info == nil || info.IsDir() || time.Since(info.ModTime()) <= maxAge {
			return nil
		}
		if err := os.Remove(path); err != nil {
			log.WithError(err).Warnf("failed to remove cache file %s", path)
			return nil
		}
		removed++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}

	log.Debugf("cache purge: removed=%d maxAge=%s", removed, maxAge)
	return nil
}

// Read returns the cached entry for clearKey, if any.
func Read(subdirs []string, clearKey string) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}
	p, ok := EntryPath(subdirs, clearKey)
	if !ok {
		return nil, false
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	log.Debugf("cache hit: key=%s", clearKey)
	return &Entry{Key: clearKey, Path: p, Data: b, ModTime: info.ModTime()}, true
}

// Write stores data for clearKey beneath subdirs. The file is written to a
// temporary name first and renamed into place.
func Write(subdirs []string, clearKey string, data []byte) error {
	if !Enabled() {
		return nil
	}
	p, ok := EntryPath(subdirs, clearKey)
	if !ok && p == "" {
		return nil
	}

	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	log.Debugf("cache write: key=%s bytes=%d", clearKey, len(data))
	return nil
}

func encodeKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
