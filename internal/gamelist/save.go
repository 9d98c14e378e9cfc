// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package gamelist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bgarena/bgarena/internal/log"
)

// Save writes the sorted game names, one per line, to path. The file is
// created or truncated and missing parent directories are created. A failure
// part way through can leave a partially written file behind.
func (l *List) Save(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: export path is empty", ErrInvalidArgument)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("%w: failed to create directory for %s: %w", ErrIO, path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", ErrIO, path, err)
	}
	defer func() { _ = file.Close() }()

	writer := bufio.NewWriter(file)
	for _, name := range l.Names() {
		if _, err := fmt.Fprintln(writer, name); err != nil {
			return fmt.Errorf("%w: failed to write %s: %w", ErrIO, path, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIO, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %w", ErrIO, path, err)
	}

	log.Debugf("plan saved: path=%s count=%d", path, l.Count())
	return nil
}
