// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nutek/blender-export-svg/internal/watch"
)

// runWatch re-exports on every scene change until interrupted.
func runWatch(args []string) int {
	fl, fs := newFlagSet("viewsvg watch")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, code := resolveConfig(fs, fl)
	if code != 0 {
		return code
	}
	if code := validateConfig(cfg); code != 0 {
		return code
	}
	if code := requireScene(cfg); code != 0 {
		return code
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watch.New(cfg)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "watch failed: %v\n", err)
		return 1
	}
	return 0
}
