// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nutek/blender-export-svg/internal/config"
	"github.com/Nutek/blender-export-svg/internal/jobs"
)

func runExport(args []string) int {
	fl, fs := newFlagSet("viewsvg export")
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
	return export(cfg)
}

// runAdd exports one frame and appends it as a new session layer to an
// existing document.
func runAdd(args []string) int {
	fl, fs := newFlagSet("viewsvg add")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, code := resolveConfig(fs, fl)
	if code != 0 {
		return code
	}
	cfg.Append = true
	if code := validateConfig(cfg); code != 0 {
		return code
	}
	if code := requireScene(cfg); code != 0 {
		return code
	}
	return export(cfg)
}

func export(cfg config.Config) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := jobs.Export(ctx, cfg)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "export interrupted")
			return 1
		}
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		return 1
	}

	if st.Frames > 1 {
		fmt.Printf("wrote %d frames of %s (%d objects, last seed %d)\n",
			st.Frames, st.Output, st.Objects, st.Seed)
	} else {
		fmt.Printf("wrote %s (%d objects, %d faces, seed %d)\n",
			st.Output, st.Objects, st.Faces, st.Seed)
	}
	return 0
}
