// SPDX-License-Identifier: MIT

//go:build !windows

package jobs

import (
	"context"
	"fmt"

	"github.com/google/renameio/v2"

	"github.com/Nutek/blender-export-svg/internal/log"
)

// writeFileAtomic replaces path with data using renameio: the pending
// file is fsynced before the rename, so a crash leaves either the old
// document or the complete new one.
func writeFileAtomic(ctx context.Context, path string, data []byte) error {
	logger := log.FromContext(ctx)

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending SVG file: %w", err)
	}
	defer func() {
		// renameio removes the temp file if it was not committed
		if err := pending.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending SVG file")
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write SVG data: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace SVG file: %w", err)
	}
	return nil
}
