// SPDX-License-Identifier: MIT

package jobs

import (
	"context"
	"fmt"
	"os"

	"github.com/skratchdot/open-golang/open"

	"github.com/Nutek/blender-export-svg/internal/log"
)

// Open hands the document at path to the desktop's registered viewer.
func Open(ctx context.Context, path string) error {
	logger := log.WithComponentFromContext(ctx, "jobs")

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	logger.Info().
		Str("event", "open.viewer").
		Str("path", path).
		Msg("opening in default viewer")
	if err := open.Run(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
