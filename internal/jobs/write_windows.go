// SPDX-License-Identifier: MIT

//go:build windows

package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nutek/blender-export-svg/internal/log"
)

// writeFileAtomic replaces path with data via a temp file in the same
// directory and a rename, which is best-effort atomic on Windows.
func writeFileAtomic(ctx context.Context, path string, data []byte) error {
	logger := log.FromContext(ctx)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".viewsvg-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp SVG file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write SVG data: %w", err)
	}

	// Windows requires the handle closed before the rename.
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp SVG file: %w", err)
	}
	tmp = nil

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename SVG file: %w", err)
	}

	logger.Debug().Str("path", path).Msg("wrote SVG file")
	return nil
}
