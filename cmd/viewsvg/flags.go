// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Nutek/blender-export-svg/internal/config"
	"github.com/Nutek/blender-export-svg/internal/log"
	"github.com/Nutek/blender-export-svg/internal/style"
	"github.com/Nutek/blender-export-svg/internal/version"
)

// cliFlags holds the flag values shared by every subcommand. Only
// flags the user actually set are applied over the resolved config.
type cliFlags struct {
	configPath string
	scene      string
	out        string
	frames     string
	width      int
	height     int
	listen     string
	debounce   int
	logLevel   string
	logFormat  string

	color     string
	shade     string
	edge      string
	stroke    string
	vertex    string
	effect    string
	scale     float64
	precision int
	opacity   float64
	seed      int64
	fixedSeed bool
	bisect    string
}

func newFlagSet(name string) (*cliFlags, *flag.FlagSet) {
	fl := &cliFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&fl.configPath, "config", "", "path to YAML configuration file")
	fs.StringVar(&fl.scene, "scene", "", "scene document to export (YAML)")
	fs.StringVar(&fl.out, "out", "", "output SVG path")
	fs.StringVar(&fl.frames, "frames", "", "frame range start:end (end exclusive), or a single frame")
	fs.IntVar(&fl.width, "width", 0, "override render width in px")
	fs.IntVar(&fl.height, "height", 0, "override render height in px")
	fs.StringVar(&fl.listen, "listen", "", "preview server listen address")
	fs.IntVar(&fl.debounce, "debounce", 0, "watch debounce in milliseconds")
	fs.StringVar(&fl.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	fs.StringVar(&fl.logFormat, "log-format", "", "log format (console|json)")

	fs.StringVar(&fl.color, "color", "", "fill color source (object|material|faces|...)")
	fs.StringVar(&fl.shade, "shade", "", "shading mode (soft|back_light|depth|...)")
	fs.StringVar(&fl.edge, "edge", "", "edge mode (match_fill|linear|dashed|none)")
	fs.StringVar(&fl.stroke, "stroke", "", "stroke mode (none|extend|curved|contour|brush)")
	fs.StringVar(&fl.vertex, "vertex", "", "vertex mark mode (none|constant|normal_in|normal_out|axis)")
	fs.StringVar(&fl.effect, "effect", "", "effect mode (none|explode|squares|circles)")
	fs.Float64Var(&fl.scale, "scale", 0, "drawing scale factor")
	fs.IntVar(&fl.precision, "precision", 0, "coordinate decimal places")
	fs.Float64Var(&fl.opacity, "opacity", 0, "fill opacity (0..1)")
	fs.Int64Var(&fl.seed, "seed", 0, "random seed, used when -fixed-seed is set")
	fs.BoolVar(&fl.fixedSeed, "fixed-seed", false, "reuse the configured seed instead of drawing one")
	fs.StringVar(&fl.bisect, "bisect", "", "name of the bisect plane object")

	return fl, fs
}

// configPath resolves the config file location: explicit flag, then
// VSVG_CONFIG, then ./viewsvg.yaml when present.
func configPath(fl *cliFlags) string {
	if p := strings.TrimSpace(fl.configPath); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv("VSVG_CONFIG")); p != "" {
		return p
	}
	if _, err := os.Stat("viewsvg.yaml"); err == nil {
		return "viewsvg.yaml"
	}
	return ""
}

// resolveConfig loads defaults, file and environment, layers the
// explicitly set flags on top, and configures logging from the result.
// Validation is left to the caller, which may still adjust the config.
func resolveConfig(fs *flag.FlagSet, fl *cliFlags) (config.Config, int) {
	loader := config.NewLoader(configPath(fl), version.Version)
	cfg, err := loader.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return cfg, 1
	}

	if err := applyFlags(fs, fl, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flag: %v\n", err)
		return cfg, 2
	}

	log.Configure(log.Config{
		Level:   cfg.LogLevel,
		Service: "viewsvg",
		Console: cfg.LogFormat != "json",
	})
	return cfg, 0
}

// validateConfig reports configuration problems as exit code 1.
func validateConfig(cfg config.Config) int {
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 1
	}
	return 0
}

// requireScene rejects commands that cannot run without a scene.
func requireScene(cfg config.Config) int {
	if strings.TrimSpace(cfg.Scene) != "" {
		return 0
	}
	fmt.Fprintln(os.Stderr, "a scene document is required (--scene, VSVG_SCENE, or the config file)")
	return 2
}

// applyFlags copies explicitly set flags over cfg: the final
// precedence layer, above defaults, file and environment.
func applyFlags(fs *flag.FlagSet, fl *cliFlags, cfg *config.Config) error {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["scene"] {
		cfg.Scene = fl.scene
	}
	if set["out"] {
		cfg.Out = fl.out
	}
	if set["frames"] {
		r, err := config.ParseFrameRange(fl.frames)
		if err != nil {
			return err
		}
		cfg.Frames = r
	}
	if set["width"] {
		cfg.Width = fl.width
	}
	if set["height"] {
		cfg.Height = fl.height
	}
	if set["listen"] {
		cfg.Listen = fl.listen
	}
	if set["debounce"] {
		cfg.DebounceMS = fl.debounce
	}
	if set["log-level"] {
		cfg.LogLevel = fl.logLevel
	}
	if set["log-format"] {
		cfg.LogFormat = fl.logFormat
	}

	// Enum values are cast as-is; Validate rejects anything unknown.
	if set["color"] {
		cfg.Style.Color = style.ColorMode(fl.color)
	}
	if set["shade"] {
		cfg.Style.Shade = style.ShadeMode(fl.shade)
	}
	if set["edge"] {
		cfg.Style.Edge = style.EdgeMode(fl.edge)
	}
	if set["stroke"] {
		cfg.Style.Stroke = style.StrokeMode(fl.stroke)
	}
	if set["vertex"] {
		cfg.Style.Vertex = style.VertexMode(fl.vertex)
	}
	if set["effect"] {
		cfg.Style.Effect = style.EffectMode(fl.effect)
	}
	if set["scale"] {
		cfg.Style.Scale = fl.scale
	}
	if set["precision"] {
		cfg.Style.Precision = fl.precision
	}
	if set["opacity"] {
		cfg.Style.Opacity = fl.opacity
	}
	if set["seed"] {
		cfg.Style.Seed = fl.seed
	}
	if set["fixed-seed"] {
		cfg.Style.FixedSeed = fl.fixedSeed
	}
	if set["bisect"] {
		cfg.Style.BisectObject = fl.bisect
	}
	return nil
}
