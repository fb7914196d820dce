// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/Nutek/blender-export-svg/internal/config"
)

// runConfigCLI dispatches the config subcommands.
func runConfigCLI(args []string) int {
	if len(args) == 0 {
		printConfigUsage()
		return 0
	}
	switch args[0] {
	case "validate":
		return runConfigValidate(args[1:])
	case "dump":
		return runConfigDump(args[1:])
	case "help", "-h", "--help":
		printConfigUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown config subcommand: %s\n\n", args[0])
		printConfigUsage()
		return 2
	}
}

func runConfigValidate(args []string) int {
	fl, fs := newFlagSet("viewsvg config validate")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, code := resolveConfig(fs, fl)
	if code != 0 {
		return code
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error:\n  %v\n", err)
		return 1
	}
	fmt.Println("configuration is valid")
	return 0
}

func runConfigDump(args []string) int {
	fl, fs := newFlagSet("viewsvg config dump")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	// Dump without validating: the point is inspecting a partial setup.
	cfg, code := resolveConfig(fs, fl)
	if code != 0 {
		return code
	}
	if err := config.Dump(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "dump failed: %v\n", err)
		return 1
	}
	return 0
}

func printConfigUsage() {
	fmt.Fprint(os.Stderr, `Usage: viewsvg config <subcommand> [flags]

Subcommands:
  validate   resolve the configuration and report the first problem
  dump       print the effective configuration as YAML

Both subcommands resolve defaults, the config file and VSVG_* environment
variables, then layer any flags on top, exactly like the export commands.
`)
}
