// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Nutek/blender-export-svg/internal/server"
)

// runServe hosts the live preview server until interrupted.
func runServe(args []string) int {
	fl, fs := newFlagSet("viewsvg serve")
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
	if strings.TrimSpace(cfg.Listen) == "" {
		fmt.Fprintln(os.Stderr, "a listen address is required (--listen or VSVG_LISTEN)")
		return 2
	}
	if cfg.Frames.Active() {
		fmt.Fprintln(os.Stderr, "serve previews a single frame; drop the frame range")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "serve failed: %v\n", err)
		return 1
	}
	return 0
}
