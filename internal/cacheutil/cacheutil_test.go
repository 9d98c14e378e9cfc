// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useCache points the cache at a fresh temp dir with caching enabled.
func useCache(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvCacheDir, dir)
	t.Setenv(EnvCache, "")
	return dir
}

// age backdates path by the given duration.
func age(t *testing.T, path string, d time.Duration) {
	t.Helper()
	past := time.Now().Add(-d)
	require.NoError(t, os.Chtimes(path, past, past))
}

func TestDir(t *testing.T) {
	dir := useCache(t)
	got, ok := Dir()
	assert.True(t, ok)
	assert.Equal(t, dir, got)

	t.Setenv(EnvCacheDir, "")
	got, ok = Dir()
	if ok {
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, appDir, filepath.Base(got))
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvCache, tt.value)
			assert.Equal(t, tt.want, Enabled())
		})
	}
}

func TestEnsureBaseDir(t *testing.T) {
	dir := filepath.Join(useCache(t), "nested", "cache")
	t.Setenv(EnvCacheDir, dir)

	base, ok, err := EnsureBaseDir()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, dir, base)
	assert.DirExists(t, dir)

	t.Setenv(EnvCache, "0")
	base, ok, err = EnsureBaseDir()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, base)
}

func TestWriteRead(t *testing.T) {
	dir := useCache(t)
	key := "s3://games/bgg.csv"
	data := []byte("objectname,id\nCatan,13\n")

	require.NoError(t, Write([]string{"catalog"}, key, data))

	path, exists := EntryPath([]string{"catalog"}, key)
	assert.True(t, exists)
	assert.Equal(t, filepath.Join(dir, "catalog", encodeKey(key)), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entry, ok := Read([]string{"catalog"}, key)
	require.True(t, ok)
	assert.Equal(t, key, entry.Key)
	assert.Equal(t, path, entry.Path)
	assert.Equal(t, data, entry.Data)
	assert.Less(t, entry.Age(), time.Minute)

	leftovers, err := filepath.Glob(filepath.Join(dir, "catalog", ".tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWriteOverwrites(t *testing.T) {
	useCache(t)
	require.NoError(t, Write(nil, "k", []byte("old")))
	require.NoError(t, Write(nil, "k", []byte("new")))

	entry, ok := Read(nil, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), entry.Data)
}

func TestDisabled(t *testing.T) {
	dir := useCache(t)
	t.Setenv(EnvCache, "false")

	require.NoError(t, Write([]string{"catalog"}, "k", []byte("data")))
	assert.NoDirExists(t, filepath.Join(dir, "catalog"))

	entry, ok := Read([]string{"catalog"}, "k")
	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestReadMissing(t *testing.T) {
	useCache(t)
	entry, ok := Read([]string{"catalog"}, "nope")
	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestPurge(t *testing.T) {
	dir := useCache(t)
	require.NoError(t, Write([]string{"catalog"}, "old", []byte("old")))
	require.NoError(t, Write([]string{"catalog"}, "new", []byte("new")))

	oldPath, _ := EntryPath([]string{"catalog"}, "old")
	age(t, oldPath, 3*time.Hour)

	require.NoError(t, Purge(0))
	assert.FileExists(t, oldPath)

	require.NoError(t, Purge(1))
	assert.NoFileExists(t, oldPath)

	newPath, exists := EntryPath([]string{"catalog"}, "new")
	assert.True(t, exists)
	assert.FileExists(t, newPath)
	assert.DirExists(t, filepath.Join(dir, "catalog"))
}

func TestPurgeMissingBase(t *testing.T) {
	t.Setenv(EnvCacheDir, filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, Purge(1))
}

func TestEncodeKey(t *testing.T) {
	a := encodeKey("s3://games/a.csv")
	assert.Len(t, a, 64)
	assert.Equal(t, a, encodeKey("s3://games/a.csv"))
	assert.NotEqual(t, a, encodeKey("s3://games/b.csv"))
}
