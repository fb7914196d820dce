// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nutek/blender-export-svg/internal/jobs"
)

// runCompress gzips an exported document into a .svgz next to it.
func runCompress(args []string) int {
	fl, fs := newFlagSet("viewsvg compress")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "compress takes at most one file argument")
		return 2
	}
	// No validation: only the document path matters here, and the file may
	// well outlive the scene it was exported from.
	cfg, code := resolveConfig(fs, fl)
	if code != 0 {
		return code
	}
	path := fs.Arg(0)
	if path == "" {
		path = cfg.Out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	packed, err := jobs.Compress(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compress failed: %v\n", err)
		return 1
	}
	fmt.Printf("wrote %s\n", packed)
	return 0
}

// runOpen hands an exported document to the desktop's default viewer.
func runOpen(args []string) int {
	fl, fs := newFlagSet("viewsvg open")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "open takes at most one file argument")
		return 2
	}
	cfg, code := resolveConfig(fs, fl)
	if code != 0 {
		return code
	}
	path := fs.Arg(0)
	if path == "" {
		path = cfg.Out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := jobs.Open(ctx, path); err != nil {
		fmt.Fprintf(os.Stderr, "open failed: %v\n", err)
		return 1
	}
	return 0
}
