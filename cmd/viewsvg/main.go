// SPDX-License-Identifier: MIT

// viewsvg exports scene documents to layered SVG in the spirit of a
// viewport screenshot: flat-shaded faces, stylized edges, strokes and
// vertex marks, organized in Inkscape layers.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Nutek/blender-export-svg/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	version.Resolve()

	if len(args) == 0 {
		return runExport(nil)
	}

	switch args[0] {
	case "export":
		return runExport(args[1:])
	case "add":
		return runAdd(args[1:])
	case "watch":
		return runWatch(args[1:])
	case "serve":
		return runServe(args[1:])
	case "compress":
		return runCompress(args[1:])
	case "open":
		return runOpen(args[1:])
	case "config":
		return runConfigCLI(args[1:])
	case "version", "--version", "-version":
		fmt.Println(version.String())
		return 0
	case "help", "--help", "-h":
		printUsage(os.Stdout)
		return 0
	}

	// Bare flags select the default command.
	if strings.HasPrefix(args[0], "-") {
		return runExport(args)
	}

	fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
	printUsage(os.Stderr)
	return 2
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  viewsvg [export] [flags]     export the scene to an SVG document")
	fmt.Fprintln(w, "  viewsvg add [flags]          append a session layer to an existing document")
	fmt.Fprintln(w, "  viewsvg watch [flags]        re-export whenever the scene changes")
	fmt.Fprintln(w, "  viewsvg serve [flags]        live preview server with re-export on change")
	fmt.Fprintln(w, "  viewsvg compress [file.svg]  gzip a document to .svgz")
	fmt.Fprintln(w, "  viewsvg open [file.svg]      open a document in the default viewer")
	fmt.Fprintln(w, "  viewsvg config <validate|dump> [flags]")
	fmt.Fprintln(w, "  viewsvg version")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'viewsvg <command> -h' for command flags. Every flag can also")
	fmt.Fprintln(w, "come from a config file (--config, VSVG_CONFIG, or ./viewsvg.yaml)")
	fmt.Fprintln(w, "or from VSVG_* environment variables; flags win.")
}
