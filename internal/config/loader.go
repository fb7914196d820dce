// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Nutek/blender-export-svg/internal/log"
	"github.com/Nutek/blender-export-svg/internal/style"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Out:        "export.svg",
		Listen:     ":8080",
		DebounceMS: 500,
		LogLevel:   "info",
		LogFormat:  "console",
		Style:      style.Defaults(),
	}
}

// Loader resolves the effective configuration from the optional config
// file at path and the process environment.
type Loader struct {
	path    string
	version string
}

func NewLoader(path, version string) *Loader {
	return &Loader{path: path, version: version}
}

// Load resolves defaults, file and environment in that order and
// validates the result. The returned Config is complete even on
// validation failure so callers can report what was resolved.
func (l *Loader) Load() (Config, error) {
	cfg, err := l.Resolve()
	if err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Resolve builds the effective configuration without validating it,
// for callers that still have overrides of their own to layer on top
// (the CLI applies command-line flags before validating).
func (l *Loader) Resolve() (Config, error) {
	cfg := Defaults()
	if l.path != "" {
		if err := loadFile(l.path, &cfg); err != nil {
			return cfg, err
		}
	}
	applyEnv(&cfg)
	cfg.Version = l.version
	return cfg, nil
}

// loadFile decodes a strict YAML document over cfg. Unknown keys are
// rejected so typos fail loudly instead of silently keeping defaults;
// keys absent from the file keep their current values.
func loadFile(path string, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("config file %s: unsupported extension %q (want .yaml or .yml)", path, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty file keeps the defaults.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("config file %s: unexpected content after first document", path)
	}
	return nil
}

// applyEnv overrides cfg from VSVG_* variables, the highest-precedence
// layer. Only per-invocation knobs are exposed here; the long tail of
// style settings needs the config file.
func applyEnv(cfg *Config) {
	cfg.Scene = ParseString("VSVG_SCENE", cfg.Scene)
	cfg.Out = ParseString("VSVG_OUT", cfg.Out)
	if raw := os.Getenv("VSVG_FRAMES"); raw != "" {
		r, err := ParseFrameRange(raw)
		if err != nil {
			log.WithComponent("config").Warn().
				Str("key", "VSVG_FRAMES").
				Str("value", raw).
				Err(err).
				Msg("ignoring invalid frame range")
		} else {
			cfg.Frames = r
		}
	}
	cfg.Append = ParseBool("VSVG_APPEND", cfg.Append)
	cfg.Width = ParseInt("VSVG_WIDTH", cfg.Width)
	cfg.Height = ParseInt("VSVG_HEIGHT", cfg.Height)
	cfg.Listen = ParseString("VSVG_LISTEN", cfg.Listen)
	cfg.DebounceMS = ParseInt("VSVG_DEBOUNCE_MS", cfg.DebounceMS)
	cfg.LogLevel = ParseString("VSVG_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = ParseString("VSVG_LOG_FORMAT", cfg.LogFormat)

	// Enum values are cast as-is; Validate rejects anything unknown.
	cfg.Style.Color = style.ColorMode(ParseString("VSVG_COLOR", string(cfg.Style.Color)))
	cfg.Style.Shade = style.ShadeMode(ParseString("VSVG_SHADE", string(cfg.Style.Shade)))
	cfg.Style.Edge = style.EdgeMode(ParseString("VSVG_EDGE", string(cfg.Style.Edge)))
	cfg.Style.Stroke = style.StrokeMode(ParseString("VSVG_STROKE", string(cfg.Style.Stroke)))
	cfg.Style.Vertex = style.VertexMode(ParseString("VSVG_VERTEX", string(cfg.Style.Vertex)))
	cfg.Style.Effect = style.EffectMode(ParseString("VSVG_EFFECT", string(cfg.Style.Effect)))
	cfg.Style.Scale = ParseFloat("VSVG_SCALE", cfg.Style.Scale)
	cfg.Style.Precision = ParseInt("VSVG_PRECISION", cfg.Style.Precision)
	cfg.Style.Opacity = ParseFloat("VSVG_OPACITY", cfg.Style.Opacity)
	cfg.Style.Seed = ParseInt64("VSVG_SEED", cfg.Style.Seed)
	cfg.Style.FixedSeed = ParseBool("VSVG_FIXED_SEED", cfg.Style.FixedSeed)
	cfg.Style.BisectObject = ParseString("VSVG_BISECT_OBJECT", cfg.Style.BisectObject)
}
